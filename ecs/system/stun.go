package system

import (
	"time"

	"github.com/milk9111/drugtest/ecs"
	"github.com/milk9111/drugtest/ecs/component"
)

// StunSystem counts down running stuns and then applies pending stun
// requests. A stun applied this tick is not counted down until the next one.
type StunSystem struct{}

func NewStunSystem() *StunSystem {
	return &StunSystem{}
}

func (s *StunSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach(w, component.EnemyStateComponent.Kind(), func(e ecs.Entity, st *component.EnemyState) {
		if !st.IsStunned() {
			return
		}
		*st = NextEnemyState(*st, Perception{}, dt)
	})

	ecs.ForEach2(w, component.StunRequestComponent.Kind(), component.EnemyStateComponent.Kind(), func(e ecs.Entity, req *component.StunRequest, st *component.EnemyState) {
		d := req.Duration
		_ = ecs.Remove(w, e, component.StunRequestComponent.Kind())
		if d <= 0 {
			return
		}
		if remaining, ok := st.StunRemaining(); ok && remaining >= d {
			return
		}
		*st = component.Stunned(d)
	})
}

// Stun queues a stun of duration d on e for the next StunSystem update. When
// several requests land in the same tick the longest wins.
func Stun(w *ecs.World, e ecs.Entity, d time.Duration) error {
	if req, ok := ecs.Get(w, e, component.StunRequestComponent.Kind()); ok {
		req.Duration = max(req.Duration, d)
		return nil
	}
	return ecs.Add(w, e, component.StunRequestComponent.Kind(), &component.StunRequest{Duration: d})
}
