package entity

import (
	"fmt"
	"math/rand/v2"

	"github.com/milk9111/drugtest/common"
	"github.com/milk9111/drugtest/ecs"
	"github.com/milk9111/drugtest/ecs/component"
	"github.com/milk9111/drugtest/levels"
	"github.com/milk9111/drugtest/navmesh"
)

// LevelOptions carries the per-run tunables that are not part of the level
// file.
type LevelOptions struct {
	Sight component.Sight
	// Rand rolls pill side effects. Nil uses the global source.
	Rand *rand.Rand
}

// LoadedLevel is what LoadLevelToWorld built.
type LoadedLevel struct {
	Level   *levels.Level
	Mesh    *navmesh.Mesh
	Physics *ecs.PhysicsWorld
	Player  ecs.Entity
	Enemies []ecs.Entity
	Pills   []ecs.Entity
}

// BakeNavmesh builds the walkable surface of lvl.
func BakeNavmesh(lvl *levels.Level) (*navmesh.Mesh, error) {
	b := navmesh.NewBuilder()
	for _, r := range lvl.Navmesh.Rects {
		b.InsertBox(r.Rect())
	}
	for _, tri := range lvl.Navmesh.Triangles {
		b.InsertTriangle(tri[0].Vec(), tri[1].Vec(), tri[2].Vec())
	}
	mesh, err := b.Bake()
	if err != nil {
		return nil, fmt.Errorf("level: bake navmesh: %w", err)
	}
	return mesh, nil
}

// LoadLevelToWorld installs the navmesh and physics world of lvl into world
// and spawns the player, every enemy and every pill. Spawns outside the navmesh are moved
// onto it.
func LoadLevelToWorld(world *ecs.World, lvl *levels.Level, opts LevelOptions) (*LoadedLevel, error) {
	mesh, err := BakeNavmesh(lvl)
	if err != nil {
		return nil, err
	}

	pw := ecs.NewPhysicsWorld()
	for _, r := range lvl.Walls {
		pw.AddWall(r.Rect())
	}
	for _, r := range lvl.Sensors {
		pw.AddSensor(r.Rect())
	}

	world.SetPathfinder(mesh)
	world.SetPhysicsWorld(pw)

	snap := func(p common.Vec2) common.Vec2 {
		if q, ok := mesh.ClosestPoint(p); ok {
			return q
		}
		return p
	}

	player, err := NewPlayer(world, snap(lvl.Player.Vec()))
	if err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}

	loaded := &LoadedLevel{
		Level:   lvl,
		Mesh:    mesh,
		Physics: pw,
		Player:  player,
	}
	for i, spawn := range lvl.Enemies {
		e, err := NewEnemy(world, snap(spawn.Position()), spawn, opts.Sight)
		if err != nil {
			return nil, fmt.Errorf("level: enemy %d: %w", i, err)
		}
		loaded.Enemies = append(loaded.Enemies, e)
	}
	for i, spawn := range lvl.Pills {
		main, err := component.ParsePillEffect(spawn.Effect)
		if err != nil {
			return nil, fmt.Errorf("level: pill %d: %w", i, err)
		}
		e, err := NewPill(world, snap(spawn.Position()), component.NewPill(main, opts.Rand))
		if err != nil {
			return nil, fmt.Errorf("level: pill %d: %w", i, err)
		}
		loaded.Pills = append(loaded.Pills, e)
	}
	return loaded, nil
}
