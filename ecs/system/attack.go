package system

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/milk9111/drugtest/ecs"
	"github.com/milk9111/drugtest/ecs/component"
)

// EnemyAttackSystem lets alert enemies in range hit the player every time
// their attack timer completes. An invincible player takes no damage and a
// vulnerable one takes damage scaled by its multiplier.
type EnemyAttackSystem struct {
	log *zap.Logger
	rng *rand.Rand
}

func NewEnemyAttackSystem(log *zap.Logger, rng *rand.Rand) *EnemyAttackSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &EnemyAttackSystem{log: log, rng: rng}
}

func (s *EnemyAttackSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	player, playerPos, ok := playerPosition(w)
	if !ok {
		return
	}
	health, ok := ecs.Get(w, player, component.HealthComponent.Kind())
	if !ok {
		return
	}
	dt := w.Delta()

	dead := false
	ecs.ForEach3(w,
		component.EnemyStateComponent.Kind(),
		component.TransformComponent.Kind(),
		component.EnemyAttackComponent.Kind(),
		func(e ecs.Entity, st *component.EnemyState, tr *component.Transform, atk *component.EnemyAttack) {
			if dead || !st.IsAlert() {
				return
			}
			if tr.Position().Distance(playerPos) >= atk.Range {
				return
			}
			if !atk.Timer.Tick(dt).JustFinished() {
				return
			}
			if ecs.Has(w, player, component.InvincibilityComponent.Kind()) {
				return
			}

			damage := atk.MinDamage + s.float64()*atk.DamageSpread
			if vuln, ok := ecs.Get(w, player, component.VulnerabilityComponent.Kind()); ok && vuln.Multiplier > 0 {
				damage *= vuln.Multiplier
			}
			dead = health.TakeDamage(damage)
			s.log.Debug("enemy hit player",
				zap.Stringer("enemy", e),
				zap.Float64("damage", damage),
				zap.Float64("health", health.Current),
			)
		})

	if dead {
		s.log.Info("player died", zap.Stringer("player", player))
		w.Events().Push(ecs.Event{Type: ecs.EventGameOver, Data: player})
	}
}

func (s *EnemyAttackSystem) float64() float64 {
	if s.rng != nil {
		return s.rng.Float64()
	}
	return rand.Float64()
}
