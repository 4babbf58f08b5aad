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

func TestPhysicsSyncFollowsMovedBodies(t *testing.T) {
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())
	w.AddSystem(NewPhysicsSyncSystem())

	target := ecs.CreateEntity(w)
	add(t, w, target, component.TransformComponent, component.Transform{X: 100, Y: 0})
	add(t, w, target, component.ColliderComponent, component.Collider{Width: 10, Height: 10})

	cast := func(dir common.Vec2) (ecs.RayHit, bool) {
		return w.RayCaster().CastRay(common.V(0, 0), dir, 1000, ecs.RayFilter{ExcludeSensors: true})
	}

	w.Update(time.Second / 60)
	hit, ok := cast(common.V(1, 0))
	require.True(t, ok)
	assert.Equal(t, target, hit.Entity)

	tr, ok := ecs.Get(w, target, component.TransformComponent.Kind())
	require.True(t, ok)
	tr.SetPosition(common.V(0, 100))
	w.Update(time.Second / 60)

	_, ok = cast(common.V(1, 0))
	assert.False(t, ok, "old position must not block rays")
	hit, ok = cast(common.V(0, 1))
	require.True(t, ok)
	assert.Equal(t, target, hit.Entity)
	assert.InDelta(t, 95, hit.Distance, 1e-6)

	// A paused tick still refreshes the index.
	tr.SetPosition(common.V(-100, 0))
	w.Update(0)
	hit, ok = cast(common.V(-1, 0))
	require.True(t, ok)
	assert.Equal(t, target, hit.Entity)
}
