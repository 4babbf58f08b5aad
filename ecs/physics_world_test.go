package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/drugtest/common"
)

func TestCastRay(t *testing.T) {
	newWorld := func() (*PhysicsWorld, Entity, Entity) {
		pw := NewPhysicsWorld()
		w := NewWorld()
		caster := CreateEntity(w)
		target := CreateEntity(w)
		pw.EnsureBody(caster, common.V(0, 0), 10, 10, false)
		pw.EnsureBody(target, common.V(100, 0), 10, 10, false)
		return pw, caster, target
	}

	t.Run("hits_target_excluding_caster", func(t *testing.T) {
		pw, caster, target := newWorld()
		hit, ok := pw.CastRay(common.V(0, 0), common.V(1, 0), 1000, RayFilter{Exclude: caster})
		require.True(t, ok)
		assert.Equal(t, target, hit.Entity)
		assert.InDelta(t, 95, hit.Distance, 1e-6)
	})

	t.Run("wall_blocks", func(t *testing.T) {
		pw, caster, _ := newWorld()
		pw.AddWall(common.NewRect(common.V(40, -20), common.V(50, 20)))
		hit, ok := pw.CastRay(common.V(0, 0), common.V(1, 0), 1000, RayFilter{Exclude: caster, ExcludeSensors: true})
		require.True(t, ok)
		assert.False(t, hit.Entity.Valid(), "level geometry has no entity")
		assert.InDelta(t, 40, hit.Point.X, 1e-6)
	})

	t.Run("sensor_skipped", func(t *testing.T) {
		pw, caster, target := newWorld()
		pw.AddSensor(common.NewRect(common.V(40, -20), common.V(50, 20)))
		hit, ok := pw.CastRay(common.V(0, 0), common.V(1, 0), 1000, RayFilter{Exclude: caster, ExcludeSensors: true})
		require.True(t, ok)
		assert.Equal(t, target, hit.Entity)
	})

	t.Run("out_of_range", func(t *testing.T) {
		pw, caster, _ := newWorld()
		_, ok := pw.CastRay(common.V(0, 0), common.V(1, 0), 50, RayFilter{Exclude: caster})
		assert.False(t, ok)
	})

	t.Run("zero_direction", func(t *testing.T) {
		pw, caster, _ := newWorld()
		_, ok := pw.CastRay(common.V(0, 0), common.Vec2{}, 50, RayFilter{Exclude: caster})
		assert.False(t, ok)
	})
}

func TestSyncAndRemoveBody(t *testing.T) {
	pw := NewPhysicsWorld()
	w := NewWorld()
	w.SetPhysicsWorld(pw)
	caster := CreateEntity(w)
	target := CreateEntity(w)
	pw.EnsureBody(target, common.V(100, 0), 10, 10, false)

	pw.SyncBody(target, common.V(0, 100))
	pw.Step(1.0 / 60)
	_, ok := w.RayCaster().CastRay(common.V(0, 0), common.V(1, 0), 1000, RayFilter{Exclude: caster})
	assert.False(t, ok, "body moved out of the ray")

	hit, ok := w.RayCaster().CastRay(common.V(0, 0), common.V(0, 1), 1000, RayFilter{Exclude: caster})
	require.True(t, ok)
	assert.Equal(t, target, hit.Entity)

	pw.SyncBody(target, common.V(-100, 0))
	pw.Step(0)
	hit, ok = w.RayCaster().CastRay(common.V(0, 0), common.V(-1, 0), 1000, RayFilter{Exclude: caster})
	require.True(t, ok, "a zero step still reindexes")
	assert.Equal(t, target, hit.Entity)
	assert.InDelta(t, 95, hit.Distance, 1e-6)

	require.True(t, DestroyEntity(w, target))
	_, ok = w.RayCaster().CastRay(common.V(0, 0), common.V(-1, 0), 1000, RayFilter{Exclude: caster})
	assert.False(t, ok)
}

func TestOverlapping(t *testing.T) {
	pw := NewPhysicsWorld()
	w := NewWorld()
	w.SetPhysicsWorld(pw)
	player := CreateEntity(w)
	pill := CreateEntity(w)
	far := CreateEntity(w)

	pw.AddSensor(common.NewRect(common.V(-50, -50), common.V(50, 50)))
	pw.EnsureBody(player, common.V(0, 0), 20, 20, false)
	pw.EnsureBody(pill, common.V(100, 0), 10, 10, true)
	pw.EnsureBody(far, common.V(300, 0), 10, 10, true)

	assert.Empty(t, pw.Overlapping(player), "level sensors are not entities")

	pw.SyncBody(player, common.V(90, 0))
	pw.Step(1.0 / 60)
	assert.Equal(t, []Entity{pill}, pw.Overlapping(player))
	assert.Equal(t, []Entity{player}, pw.Overlapping(pill))

	assert.Nil(t, pw.Overlapping(CreateEntity(w)), "no body")
}
