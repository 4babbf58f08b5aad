package system

import (
	"github.com/milk9111/drugtest/ecs"
	"github.com/milk9111/drugtest/ecs/component"
)

// PhysicsSyncSystem mirrors entity transforms into the physics world and
// steps it so ray casts see bodies where the game last put them.
type PhysicsSyncSystem struct{}

func NewPhysicsSyncSystem() *PhysicsSyncSystem {
	return &PhysicsSyncSystem{}
}

func (s *PhysicsSyncSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.ColliderComponent.Kind(), func(e ecs.Entity, tr *component.Transform, col *component.Collider) {
		pos := tr.Position()
		pw.EnsureBody(e, pos, col.Width, col.Height, col.Sensor)
		pw.SyncBody(e, pos)
	})
	pw.Step(w.DeltaSeconds())
}
