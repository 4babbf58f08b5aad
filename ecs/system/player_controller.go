package system

import (
	"github.com/milk9111/drugtest/common"
	"github.com/milk9111/drugtest/ecs"
	"github.com/milk9111/drugtest/ecs/component"
)

// PlayerControllerSystem moves the player from its Input, scaled by any
// MovementBoost and reversed while Dizziness lasts, and keeps it on the
// navmesh.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	nav := w.Pathfinder()
	dt := w.DeltaSeconds()

	ecs.ForEach4(w,
		component.PlayerTagComponent.Kind(),
		component.InputComponent.Kind(),
		component.MovementComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, _ *component.PlayerTag, in *component.Input, mv *component.Movement, tr *component.Transform) {
			dir := common.Direction(common.V(in.MoveX, in.MoveY))
			if dir == (common.Vec2{}) {
				return
			}
			if ecs.Has(w, e, component.DizzinessComponent.Kind()) {
				dir = dir.Neg()
			}
			speed := mv.Speed
			if boost, ok := ecs.Get(w, e, component.MovementBoostComponent.Kind()); ok && boost.Multiplier > 0 {
				speed *= boost.Multiplier
			}

			next := tr.Position().Add(dir.Mult(speed * dt))
			if nav != nil {
				snapped, ok := nav.ClosestPoint(next)
				if !ok {
					return
				}
				next = snapped
			}
			tr.SetPosition(next)
			if facing, ok := ecs.Get(w, e, component.FacingComponent.Kind()); ok {
				facing.Direction = component.DirectionFromVector(dir)
			}
		})
}
