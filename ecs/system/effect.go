package system

import (
	"github.com/milk9111/drugtest/ecs"
	"github.com/milk9111/drugtest/ecs/component"
)

// EffectSystem expires temporary player effects.
type EffectSystem struct{}

func NewEffectSystem() *EffectSystem {
	return &EffectSystem{}
}

func (s *EffectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	expire(w, component.InvisibilityComponent.Kind(), func(v *component.Invisibility) *component.Timer { return &v.Timer })
	expire(w, component.InvincibilityComponent.Kind(), func(v *component.Invincibility) *component.Timer { return &v.Timer })
	expire(w, component.MovementBoostComponent.Kind(), func(v *component.MovementBoost) *component.Timer { return &v.Timer })
	expire(w, component.DizzinessComponent.Kind(), func(v *component.Dizziness) *component.Timer { return &v.Timer })
	expire(w, component.VulnerabilityComponent.Kind(), func(v *component.Vulnerability) *component.Timer { return &v.Timer })
}

func expire[T any](w *ecs.World, kind component.ComponentKind[T], timer func(*T) *component.Timer) {
	dt := w.Delta()
	ecs.ForEach(w, kind, func(e ecs.Entity, v *T) {
		if t := timer(v).Tick(dt); t.JustFinished() || t.Finished() {
			_ = ecs.Remove(w, e, kind)
		}
	})
}
