package system

import (
	"github.com/milk9111/drugtest/common"
	"github.com/milk9111/drugtest/ecs"
	"github.com/milk9111/drugtest/ecs/component"
)

const defaultSightDistance = 35000.0

// SightInput is everything a single enemy needs to decide whether it sees
// the player.
type SightInput struct {
	Enemy           ecs.Entity
	EnemyPos        common.Vec2
	Facing          component.Direction
	State           component.EnemyState
	Player          ecs.Entity
	PlayerPos       common.Vec2
	PlayerInvisible bool
	Sight           component.Sight
}

// SeePlayer reports whether the enemy sees the player this tick. Inside the
// always-detect radius the player is seen unconditionally. Otherwise an idle
// enemy only looks along its facing quadrant, an invisible player is never
// seen, and the first solid shape on the ray toward the player must be the
// player itself.
func SeePlayer(in SightInput, rays ecs.RayCaster) bool {
	if in.State.IsStunned() {
		return false
	}

	toPlayer := in.PlayerPos.Sub(in.EnemyPos)
	if toPlayer.Length() < in.Sight.AlwaysDetectRadius {
		return true
	}

	if in.State.IsIdle() && component.DirectionFromVector(toPlayer) != in.Facing {
		return false
	}

	if in.PlayerInvisible || rays == nil {
		return false
	}

	maxDistance := in.Sight.MaxDistance
	if maxDistance <= 0 {
		maxDistance = defaultSightDistance
	}
	hit, ok := rays.CastRay(in.EnemyPos, toPlayer, maxDistance, ecs.RayFilter{
		ExcludeSensors: true,
		Exclude:        in.Enemy,
	})
	return ok && hit.Entity == in.Player
}

// SightSystem flips enemies between Idle and Alert from what they see.
// Stunned enemies are skipped.
type SightSystem struct{}

func NewSightSystem() *SightSystem {
	return &SightSystem{}
}

func (s *SightSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	rays := w.RayCaster()
	if rays == nil {
		return
	}
	player, playerPos, ok := playerPosition(w)
	if !ok {
		return
	}
	invisible := ecs.Has(w, player, component.InvisibilityComponent.Kind())

	ecs.ForEach4(w,
		component.EnemyStateComponent.Kind(),
		component.TransformComponent.Kind(),
		component.FacingComponent.Kind(),
		component.SightComponent.Kind(),
		func(e ecs.Entity, st *component.EnemyState, tr *component.Transform, facing *component.Facing, sight *component.Sight) {
			if st.IsStunned() {
				return
			}
			visible := SeePlayer(SightInput{
				Enemy:           e,
				EnemyPos:        tr.Position(),
				Facing:          facing.Direction,
				State:           *st,
				Player:          player,
				PlayerPos:       playerPos,
				PlayerInvisible: invisible,
				Sight:           *sight,
			}, rays)
			*st = NextEnemyState(*st, Perception{Evaluated: true, Visible: visible, PlayerPos: playerPos}, 0)
		})
}

func playerPosition(w *ecs.World) (ecs.Entity, common.Vec2, bool) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return 0, common.Vec2{}, false
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return 0, common.Vec2{}, false
	}
	return player, t.Position(), true
}
