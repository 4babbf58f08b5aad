package component

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/milk9111/drugtest/common"
)

type MovementKind uint8

const (
	MovementStatic MovementKind = iota
	MovementAlongPath
	MovementGuardArea
)

func (k MovementKind) String() string {
	switch k {
	case MovementStatic:
		return "static"
	case MovementAlongPath:
		return "along_path"
	case MovementGuardArea:
		return "guard_area"
	}
	return fmt.Sprintf("movement(%d)", uint8(k))
}

// MovementType is the idle behaviour of an enemy: stand on a point, patrol a
// closed loop of waypoints, or wander inside a rectangle pausing at each
// sampled point.
type MovementType struct {
	kind MovementKind

	target common.Vec2

	waypoints []common.Vec2
	current   int

	area  common.Rect
	guard common.Vec2
	wait  Timer
}

func NewStatic(target common.Vec2) MovementType {
	return MovementType{kind: MovementStatic, target: target}
}

// NewAlongPath patrols waypoints in order. The cursor starts on the last
// waypoint so the first Advance selects waypoint 0.
func NewAlongPath(waypoints []common.Vec2) (MovementType, error) {
	if len(waypoints) == 0 {
		return MovementType{}, fmt.Errorf("component: along_path needs at least one waypoint")
	}
	return MovementType{
		kind:      MovementAlongPath,
		waypoints: append([]common.Vec2(nil), waypoints...),
		current:   len(waypoints) - 1,
	}, nil
}

// NewGuardArea wanders inside area, waiting `wait` at every point. The first
// point is the area centre.
func NewGuardArea(area common.Rect, wait time.Duration) MovementType {
	return MovementType{
		kind:  MovementGuardArea,
		area:  area,
		guard: area.Center(),
		wait:  NewTimer(wait, TimerRepeating),
	}
}

func (m *MovementType) Kind() MovementKind { return m.kind }

// Advance moves the cursor to the next target.
func (m *MovementType) Advance(rng *rand.Rand) {
	switch m.kind {
	case MovementAlongPath:
		if len(m.waypoints) == 0 {
			return
		}
		m.current = (m.current + 1) % len(m.waypoints)
	case MovementGuardArea:
		var fx, fy float64
		if rng != nil {
			fx, fy = rng.Float64(), rng.Float64()
		} else {
			fx, fy = rand.Float64(), rand.Float64()
		}
		m.guard = common.V(
			m.area.Min.X+fx*m.area.Width(),
			m.area.Min.Y+fy*m.area.Height(),
		)
	}
}

// CurrentTarget returns where the enemy should walk next, if anywhere. Guard
// areas only hand out a target on the tick their wait timer completes.
func (m *MovementType) CurrentTarget() (common.Vec2, bool) {
	switch m.kind {
	case MovementStatic:
		return m.target, true
	case MovementAlongPath:
		if len(m.waypoints) == 0 {
			return common.Vec2{}, false
		}
		return m.waypoints[m.current], true
	case MovementGuardArea:
		if m.wait.JustFinished() {
			return m.guard, true
		}
	}
	return common.Vec2{}, false
}

// Index returns the patrol cursor of an along-path movement.
func (m *MovementType) Index() int {
	return m.current
}

func (m *MovementType) Waypoints() []common.Vec2 {
	return m.waypoints
}

func (m *MovementType) Area() common.Rect {
	return m.area
}

// WaitTimer returns the guard-area pause timer, or nil for other kinds.
func (m *MovementType) WaitTimer() *Timer {
	if m.kind != MovementGuardArea {
		return nil
	}
	return &m.wait
}

var MovementTypeComponent = NewComponent[MovementType]()
