package component

import (
	"fmt"
	"math"
	"strings"

	"github.com/milk9111/drugtest/common"
)

// Direction is one of the four facings used for sprites and sight cones.
type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// Vector returns the unit vector pointing in d.
func (d Direction) Vector() common.Vec2 {
	switch d {
	case DirectionDown:
		return common.V(0, -1)
	case DirectionLeft:
		return common.V(-1, 0)
	case DirectionRight:
		return common.V(1, 0)
	}
	return common.V(0, 1)
}

// DirectionFromAngle maps a clockwise angle from "up" into one of four 90
// degree sectors centred on the axes.
func DirectionFromAngle(rad float64) Direction {
	deg := rad * 180 / math.Pi
	switch {
	case deg >= -45 && deg < 45:
		return DirectionUp
	case deg >= 45 && deg < 135:
		return DirectionRight
	case deg >= -135 && deg < -45:
		return DirectionLeft
	}
	return DirectionDown
}

// DirectionFromVector quantizes v. The zero vector maps to up.
func DirectionFromVector(v common.Vec2) Direction {
	return DirectionFromAngle(common.AngleFromUp(v))
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "up":
		return DirectionUp, nil
	case "down":
		return DirectionDown, nil
	case "left":
		return DirectionLeft, nil
	case "right":
		return DirectionRight, nil
	}
	return DirectionUp, fmt.Errorf("component: unknown direction %q", s)
}

// Facing is the direction an entity currently looks at.
type Facing struct {
	Direction Direction
}

var FacingComponent = NewComponent[Facing]()
