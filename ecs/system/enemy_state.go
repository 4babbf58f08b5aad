package system

import (
	"time"

	"github.com/milk9111/drugtest/common"
	"github.com/milk9111/drugtest/ecs/component"
)

// Perception is the outcome of one sight check. Evaluated is false when no
// check ran this tick (stunned, or no player in the world).
type Perception struct {
	Evaluated bool
	Visible   bool
	PlayerPos common.Vec2
}

// NextEnemyState advances the enemy state machine by one tick. A stun always
// wins over perception and counts down by elapsed; it yields Idle on the first
// tick its remaining time reaches zero.
func NextEnemyState(state component.EnemyState, p Perception, elapsed time.Duration) component.EnemyState {
	if remaining, ok := state.StunRemaining(); ok {
		remaining -= elapsed
		if remaining <= 0 {
			return component.Idle()
		}
		return component.Stunned(remaining)
	}

	if !p.Evaluated {
		return state
	}
	if p.Visible {
		return component.Alert(p.PlayerPos)
	}
	if state.IsAlert() {
		return component.Idle()
	}
	return state
}
