package system

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/milk9111/drugtest/ecs"
)

// Settings tunes the gameplay systems. Zero fields fall back to the system
// defaults.
type Settings struct {
	ArriveEpsilon    float64
	SeparationRadius float64
	RepulsionRate    float64
	NavTolerance     float64
}

func DefaultSettings() Settings {
	return Settings{
		ArriveEpsilon:    defaultArriveEpsilon,
		SeparationRadius: 25,
		RepulsionRate:    400,
		NavTolerance:     0.5,
	}
}

// Gameplay returns the per-tick systems in update order. Stuns resolve
// before anything moves and the guard timer sees last tick's arrival. Pills
// are picked up once bodies are synced, and sight looks at this tick's
// positions with attacks following it.
func Gameplay(log *zap.Logger, rng *rand.Rand, settings Settings) []ecs.System {
	if log == nil {
		log = zap.NewNop()
	}

	movement := NewEnemyMovementSystem(log.Named("movement"), rng)
	if settings.ArriveEpsilon > 0 {
		movement.ArriveEpsilon = settings.ArriveEpsilon
	}

	avoidance := NewOverlapAvoidanceSystem()
	if settings.SeparationRadius > 0 {
		avoidance.Radius = settings.SeparationRadius
	}
	if settings.RepulsionRate > 0 {
		avoidance.Rate = settings.RepulsionRate
	}
	if settings.NavTolerance > 0 {
		avoidance.NavTolerance = settings.NavTolerance
	}

	return []ecs.System{
		NewPlayerControllerSystem(),
		NewEffectSystem(),
		NewStunSystem(),
		NewGuardAreaTimerSystem(),
		movement,
		NewPhysicsSyncSystem(),
		NewPillSystem(log.Named("pill")),
		NewSightSystem(),
		NewEnemyAttackSystem(log.Named("attack"), rng),
		avoidance,
	}
}

// Install appends the gameplay systems to w.
func Install(w *ecs.World, log *zap.Logger, rng *rand.Rand, settings Settings) {
	for _, s := range Gameplay(log, rng, settings) {
		w.AddSystem(s)
	}
}
