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

func newMovementWorld(nav ecs.Pathfinder) *ecs.World {
	w := ecs.NewWorld()
	w.SetPathfinder(nav)
	w.AddSystem(NewEnemyMovementSystem(nil, testRNG()))
	return w
}

func TestPatrolAlongPath(t *testing.T) {
	w := newMovementWorld(newFakeNav())
	mt, err := component.NewAlongPath([]common.Vec2{common.V(10, 0), common.V(10, 10)})
	require.NoError(t, err)
	e := spawnEnemy(t, w, common.V(0, 0), component.Idle(), mt)

	w.Update(time.Second)
	assert.InDelta(t, 5, position(t, w, e).X, 1e-9)
	assert.InDelta(t, 0, position(t, w, e).Y, 1e-9)
	facing, _ := ecs.Get(w, e, component.FacingComponent.Kind())
	assert.Equal(t, component.DirectionRight, facing.Direction)

	w.Update(time.Second)
	assert.Equal(t, common.V(10, 0), position(t, w, e))
	assert.True(t, queue(t, w, e).Empty(), "reached waypoint is popped")

	w.Update(time.Second)
	got, _ := ecs.Get(w, e, component.MovementTypeComponent.Kind())
	assert.Equal(t, 1, got.Index())
	assert.Equal(t, common.V(10, 5), position(t, w, e))
	assert.Equal(t, component.DirectionUp, facing.Direction)
}

func TestPatrolWrapsAround(t *testing.T) {
	w := newMovementWorld(newFakeNav())
	points := []common.Vec2{common.V(10, 0), common.V(10, 10), common.V(0, 10)}
	mt, err := component.NewAlongPath(points)
	require.NoError(t, err)
	e := spawnEnemy(t, w, common.V(0, 0), component.Idle(), mt)

	var visited []common.Vec2
	for i := 0; i < 40; i++ {
		w.Update(time.Second)
		pos := position(t, w, e)
		for _, p := range points {
			if pos == p && (len(visited) == 0 || visited[len(visited)-1] != p) {
				visited = append(visited, p)
			}
		}
	}
	require.GreaterOrEqual(t, len(visited), 4)
	assert.Equal(t, append(points, points[0]), visited[:4])
}

func TestStaticStaysPut(t *testing.T) {
	nav := newFakeNav()
	w := newMovementWorld(nav)
	e := spawnEnemy(t, w, common.V(3, 3), component.Idle(), component.NewStatic(common.V(3, 3)))

	for i := 0; i < 3; i++ {
		w.Update(time.Second)
	}
	assert.Equal(t, common.V(3, 3), position(t, w, e))
	assert.Zero(t, nav.calls, "already at target, no path requested")
}

func TestAlertChasesAndReturnsToIdle(t *testing.T) {
	w := newMovementWorld(newFakeNav())
	e := spawnEnemy(t, w, common.V(0, 0), component.Alert(common.V(20, 0)), component.NewStatic(common.V(0, 0)))

	w.Update(time.Second)
	assert.Equal(t, common.V(10, 0), position(t, w, e), "alert uses run speed")

	w.Update(time.Second)
	assert.Equal(t, common.V(20, 0), position(t, w, e))
	assert.True(t, state(t, w, e).IsAlert())

	w.Update(time.Second)
	assert.True(t, state(t, w, e).IsIdle(), "target reached")
}

func TestAlertTargetSnappedToNavmesh(t *testing.T) {
	nav := newFakeNav()
	nav.bounds = common.NewRect(common.V(0, 0), common.V(100, 100))
	w := newMovementWorld(nav)
	e := spawnEnemy(t, w, common.V(0, 0), component.Alert(common.V(5, -50)), component.NewStatic(common.V(0, 0)))

	w.Update(time.Second)
	assert.Equal(t, common.V(5, 0), position(t, w, e))
}

func TestAlertRepathsWhenTargetMoves(t *testing.T) {
	nav := newFakeNav()
	w := newMovementWorld(nav)
	e := spawnEnemy(t, w, common.V(0, 0), component.Alert(common.V(100, 0)), component.NewStatic(common.V(0, 0)))

	w.Update(time.Second)
	w.Update(time.Second)
	assert.Equal(t, 1, nav.calls, "same target reuses the queue")

	st, _ := ecs.Get(w, e, component.EnemyStateComponent.Kind())
	*st = component.Alert(common.V(20, 100))
	w.Update(time.Second)
	assert.Equal(t, 2, nav.calls)
	last, _ := queue(t, w, e).Last()
	assert.Equal(t, common.V(20, 100), last)
}

func TestPathNotFound(t *testing.T) {
	nav := newFakeNav()
	nav.noPath = true
	w := newMovementWorld(nav)
	e := spawnEnemy(t, w, common.V(0, 0), component.Idle(), component.NewStatic(common.V(50, 0)))
	other := spawnEnemy(t, w, common.V(5, 5), component.Idle(), component.NewStatic(common.V(5, 5)))

	w.Update(time.Second)
	assert.Equal(t, common.V(0, 0), position(t, w, e))
	assert.True(t, queue(t, w, e).Empty())
	assert.Equal(t, common.V(5, 5), position(t, w, other))

	events := w.Events().Drain()
	require.Len(t, events, 1)
	assert.Equal(t, ecs.EventPathNotFound, events[0].Type)
	payload, ok := events[0].Data.(ecs.PathNotFound)
	require.True(t, ok)
	assert.Equal(t, e, payload.Entity)
	assert.Equal(t, 50.0, payload.ToX)
}

func TestStunnedEnemyDoesNotMove(t *testing.T) {
	nav := newFakeNav()
	w := newMovementWorld(nav)
	e := spawnEnemy(t, w, common.V(0, 0), component.Stunned(time.Second), component.NewStatic(common.V(50, 0)))
	q := queue(t, w, e)
	q.Replace([]common.Vec2{common.V(50, 0)})

	w.Update(time.Second)
	assert.Equal(t, common.V(0, 0), position(t, w, e))
	assert.Zero(t, nav.calls)
}

func TestWithoutPathfinderWalksStraight(t *testing.T) {
	w := newMovementWorld(nil)
	e := spawnEnemy(t, w, common.V(0, 0), component.Idle(), component.NewStatic(common.V(0, -20)))

	w.Update(time.Second)
	assert.Equal(t, common.V(0, -5), position(t, w, e))
	facing, _ := ecs.Get(w, e, component.FacingComponent.Kind())
	assert.Equal(t, component.DirectionDown, facing.Direction)
}

func TestStepTowardNeverOvershoots(t *testing.T) {
	tests := []struct {
		name    string
		pos     common.Vec2
		goal    common.Vec2
		maxStep float64
		want    common.Vec2
	}{
		{"partial", common.V(0, 0), common.V(10, 0), 4, common.V(4, 0)},
		{"exact", common.V(0, 0), common.V(3, 4), 5, common.V(3, 4)},
		{"clamped", common.V(0, 0), common.V(3, 4), 50, common.V(3, 4)},
		{"zero_step", common.V(1, 1), common.V(3, 4), 0, common.V(1, 1)},
		{"at_goal", common.V(2, 2), common.V(2, 2), 1, common.V(2, 2)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := StepToward(tc.pos, tc.goal, tc.maxStep)
			assert.InDelta(t, tc.want.X, got.X, 1e-9)
			assert.InDelta(t, tc.want.Y, got.Y, 1e-9)
			assert.LessOrEqual(t, got.Distance(tc.goal), tc.pos.Distance(tc.goal)+1e-9)
		})
	}
}
