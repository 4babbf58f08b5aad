package component

import "github.com/milk9111/drugtest/common"

// Transform is an entity's position in world units, y up. Movement and
// avoidance write it; PhysicsSyncSystem mirrors it into the physics world.
type Transform struct {
	X float64
	Y float64
}

func (t *Transform) Position() common.Vec2 {
	return common.V(t.X, t.Y)
}

func (t *Transform) SetPosition(p common.Vec2) {
	t.X, t.Y = p.X, p.Y
}

var TransformComponent = NewComponent[Transform]()
