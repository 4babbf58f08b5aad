package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/drugtest/common"
	"github.com/milk9111/drugtest/ecs"
	"github.com/milk9111/drugtest/ecs/component"
)

func TestNextEnemyState(t *testing.T) {
	player := common.V(3, 4)
	seen := Perception{Evaluated: true, Visible: true, PlayerPos: player}
	lost := Perception{Evaluated: true}

	tests := []struct {
		name    string
		state   component.EnemyState
		p       Perception
		elapsed time.Duration
		want    component.EnemyState
	}{
		{"idle_sees", component.Idle(), seen, 0, component.Alert(player)},
		{"idle_nothing", component.Idle(), lost, 0, component.Idle()},
		{"alert_retargets", component.Alert(common.V(0, 0)), seen, 0, component.Alert(player)},
		{"alert_loses_sight", component.Alert(player), lost, 0, component.Idle()},
		{"not_evaluated_keeps_alert", component.Alert(player), Perception{}, 0, component.Alert(player)},
		{"stun_ignores_sight", component.Stunned(time.Second), seen, 100 * time.Millisecond, component.Stunned(900 * time.Millisecond)},
		{"stun_expires", component.Stunned(time.Second), seen, time.Second, component.Idle()},
		{"stun_overshoot", component.Stunned(time.Second), lost, 2 * time.Second, component.Idle()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextEnemyState(tc.state, tc.p, tc.elapsed))
		})
	}
}

func TestStunCountsDownToIdleOnce(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(NewStunSystem())
	e := spawnEnemy(t, w, common.V(0, 0), component.Stunned(1500*time.Millisecond), component.NewStatic(common.V(0, 0)))

	var kinds []component.EnemyStateKind
	for i := 0; i < 5; i++ {
		w.Update(500 * time.Millisecond)
		kinds = append(kinds, state(t, w, e).Kind())
	}
	assert.Equal(t, []component.EnemyStateKind{
		component.EnemyStun,
		component.EnemyStun,
		component.EnemyIdle,
		component.EnemyIdle,
		component.EnemyIdle,
	}, kinds)
}

func TestStunRequest(t *testing.T) {
	t.Run("overrides_alert", func(t *testing.T) {
		w := ecs.NewWorld()
		w.AddSystem(NewStunSystem())
		e := spawnEnemy(t, w, common.V(0, 0), component.Alert(common.V(5, 5)), component.NewStatic(common.V(0, 0)))

		require.NoError(t, Stun(w, e, 2*time.Second))
		w.Update(500 * time.Millisecond)

		remaining, ok := state(t, w, e).StunRemaining()
		require.True(t, ok)
		assert.Equal(t, 2*time.Second, remaining, "a new stun starts counting next tick")
		assert.False(t, ecs.Has(w, e, component.StunRequestComponent.Kind()))
	})

	t.Run("keeps_longer_stun", func(t *testing.T) {
		w := ecs.NewWorld()
		w.AddSystem(NewStunSystem())
		e := spawnEnemy(t, w, common.V(0, 0), component.Stunned(3*time.Second), component.NewStatic(common.V(0, 0)))

		require.NoError(t, Stun(w, e, time.Second))
		w.Update(time.Second)

		remaining, _ := state(t, w, e).StunRemaining()
		assert.Equal(t, 2*time.Second, remaining)
	})

	t.Run("same_tick_requests_take_longest", func(t *testing.T) {
		w := ecs.NewWorld()
		w.AddSystem(NewStunSystem())
		e := spawnEnemy(t, w, common.V(0, 0), component.Idle(), component.NewStatic(common.V(0, 0)))

		require.NoError(t, Stun(w, e, time.Second))
		require.NoError(t, Stun(w, e, 4*time.Second))
		require.NoError(t, Stun(w, e, 2*time.Second))
		w.Update(0)

		remaining, _ := state(t, w, e).StunRemaining()
		assert.Equal(t, 4*time.Second, remaining)
	})

	t.Run("non_positive_ignored", func(t *testing.T) {
		w := ecs.NewWorld()
		w.AddSystem(NewStunSystem())
		e := spawnEnemy(t, w, common.V(0, 0), component.Idle(), component.NewStatic(common.V(0, 0)))

		require.NoError(t, Stun(w, e, 0))
		w.Update(0)
		assert.True(t, state(t, w, e).IsIdle())
	})
}
