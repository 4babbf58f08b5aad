package system

import (
	"github.com/milk9111/drugtest/ecs"
	"github.com/milk9111/drugtest/ecs/component"
)

// GuardAreaTimerSystem runs the pause of guard-area enemies. The wait timer
// only advances while the enemy stands still on its guard point and restarts
// as soon as it has somewhere else to be.
type GuardAreaTimerSystem struct{}

func NewGuardAreaTimerSystem() *GuardAreaTimerSystem {
	return &GuardAreaTimerSystem{}
}

func (s *GuardAreaTimerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach4(w,
		component.EnemyStateComponent.Kind(),
		component.MovementTypeComponent.Kind(),
		component.MovementTargetComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, st *component.EnemyState, mt *component.MovementType, queue *component.MovementTarget, tr *component.Transform) {
			timer := mt.WaitTimer()
			if timer == nil || !st.IsIdle() {
				return
			}
			if front, ok := queue.Front(); ok && front != tr.Position() {
				timer.Reset()
				return
			}
			timer.Tick(dt)
		})
}
