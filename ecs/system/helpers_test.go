package system

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/drugtest/common"
	"github.com/milk9111/drugtest/ecs"
	"github.com/milk9111/drugtest/ecs/component"
)

// fakeNav is an open rectangle: every path is a straight line and closest
// points are clamped to the bounds.
type fakeNav struct {
	bounds common.Rect
	noPath bool
	calls  int
}

func newFakeNav() *fakeNav {
	return &fakeNav{bounds: common.NewRect(common.V(-1000, -1000), common.V(1000, 1000))}
}

func (n *fakeNav) FindPath(from, to common.Vec2) ([]common.Vec2, bool) {
	n.calls++
	if n.noPath || !n.bounds.Contains(from) || !n.bounds.Contains(to) {
		return nil, false
	}
	return []common.Vec2{from, to}, true
}

func (n *fakeNav) ClosestPoint(p common.Vec2) (common.Vec2, bool) {
	return common.V(
		math.Min(math.Max(p.X, n.bounds.Min.X), n.bounds.Max.X),
		math.Min(math.Max(p.Y, n.bounds.Min.Y), n.bounds.Max.Y),
	), true
}

type fakeRays struct {
	hit   ecs.RayHit
	ok    bool
	calls int
	last  ecs.RayFilter
}

func (r *fakeRays) CastRay(origin, dir common.Vec2, maxDistance float64, filter ecs.RayFilter) (ecs.RayHit, bool) {
	r.calls++
	r.last = filter
	return r.hit, r.ok
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 1))
}

func add[T any](t *testing.T, w *ecs.World, e ecs.Entity, h component.ComponentHandle[T], v T) {
	t.Helper()
	require.NoError(t, ecs.Add(w, e, h.Kind(), &v))
}

func spawnEnemy(t *testing.T, w *ecs.World, pos common.Vec2, st component.EnemyState, mt component.MovementType) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	add(t, w, e, component.EnemyTagComponent, component.EnemyTag{})
	add(t, w, e, component.TransformComponent, component.Transform{X: pos.X, Y: pos.Y})
	add(t, w, e, component.EnemyStateComponent, st)
	add(t, w, e, component.MovementTypeComponent, mt)
	add(t, w, e, component.MovementTargetComponent, component.MovementTarget{})
	add(t, w, e, component.MovementComponent, component.Movement{Speed: 5, RunSpeed: 10})
	add(t, w, e, component.FacingComponent, component.Facing{Direction: component.DirectionUp})
	add(t, w, e, component.SightComponent, component.Sight{AlwaysDetectRadius: 20, MaxDistance: 1000})
	return e
}

func spawnPlayer(t *testing.T, w *ecs.World, pos common.Vec2) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	add(t, w, e, component.PlayerTagComponent, component.PlayerTag{})
	add(t, w, e, component.TransformComponent, component.Transform{X: pos.X, Y: pos.Y})
	add(t, w, e, component.HealthComponent, component.NewHealth(100))
	return e
}

func position(t *testing.T, w *ecs.World, e ecs.Entity) common.Vec2 {
	t.Helper()
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	require.True(t, ok)
	return tr.Position()
}

func state(t *testing.T, w *ecs.World, e ecs.Entity) component.EnemyState {
	t.Helper()
	st, ok := ecs.Get(w, e, component.EnemyStateComponent.Kind())
	require.True(t, ok)
	return *st
}

func queue(t *testing.T, w *ecs.World, e ecs.Entity) *component.MovementTarget {
	t.Helper()
	q, ok := ecs.Get(w, e, component.MovementTargetComponent.Kind())
	require.True(t, ok)
	return q
}
