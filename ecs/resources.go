package ecs

import "github.com/milk9111/drugtest/common"

// Pathfinder answers walkable-surface queries. navmesh.Mesh is the default
// implementation.
type Pathfinder interface {
	// FindPath returns the points to walk from `from` to `to`, both included.
	FindPath(from, to common.Vec2) ([]common.Vec2, bool)
	// ClosestPoint snaps p onto the walkable surface.
	ClosestPoint(p common.Vec2) (common.Vec2, bool)
}

// RayFilter narrows which shapes a ray may hit.
type RayFilter struct {
	ExcludeSensors bool
	// Exclude ignores every shape owned by this entity, usually the caster.
	Exclude Entity
}

// RayHit is the first shape hit by a ray.
type RayHit struct {
	// Entity is zero for level geometry.
	Entity   Entity
	Point    common.Vec2
	Distance float64
}

// RayCaster casts rays against solid and sensor volumes.
type RayCaster interface {
	CastRay(origin, dir common.Vec2, maxDistance float64, filter RayFilter) (RayHit, bool)
}

// SetPathfinder installs the navmesh used by AI movement.
func (w *World) SetPathfinder(p Pathfinder) {
	if w == nil {
		return
	}
	w.pathfinder = p
}

// Pathfinder returns the installed pathfinder, if any.
func (w *World) Pathfinder() Pathfinder {
	if w == nil {
		return nil
	}
	return w.pathfinder
}

// SetRayCaster installs the ray-cast service. SetPhysicsWorld does this too.
func (w *World) SetRayCaster(r RayCaster) {
	if w == nil {
		return
	}
	w.rayCaster = r
}

// RayCaster returns the installed ray-cast service, if any.
func (w *World) RayCaster() RayCaster {
	if w == nil {
		return nil
	}
	return w.rayCaster
}

// SetPhysicsWorld attaches a physics world and uses it as the ray caster.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physicsWorld = pw
	if pw == nil {
		w.rayCaster = nil
		return
	}
	w.rayCaster = pw
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}
