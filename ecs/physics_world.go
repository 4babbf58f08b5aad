package ecs

import (
	"math"
	"slices"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/drugtest/common"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeSensor
	collisionTypeBody
)

// PhysicsWorld owns the Chipmunk space used for line-of-sight queries. Level
// geometry lives on the static body; every entity body is kinematic and is
// moved by the game, never by the solver.
type PhysicsWorld struct {
	space *cp.Space

	shapeToEntity map[*cp.Shape]Entity
	bodies        map[Entity]*cp.Body
	shapes        map[Entity]*cp.Shape
}

// NewPhysicsWorld creates an empty physics world.
func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	return &PhysicsWorld{
		space:         space,
		shapeToEntity: make(map[*cp.Shape]Entity),
		bodies:        make(map[Entity]*cp.Body),
		shapes:        make(map[Entity]*cp.Shape),
	}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// AddWall adds a solid static box that blocks rays.
func (pw *PhysicsWorld) AddWall(r common.Rect) {
	pw.addStatic(r, false)
}

// AddSensor adds a static sensor volume. Sensors never block rays cast with
// ExcludeSensors.
func (pw *PhysicsWorld) AddSensor(r common.Rect) {
	pw.addStatic(r, true)
}

func (pw *PhysicsWorld) addStatic(r common.Rect, sensor bool) {
	if pw == nil || pw.space == nil {
		return
	}
	shape := cp.NewBox2(pw.space.StaticBody, cp.BB{L: r.Min.X, B: r.Min.Y, R: r.Max.X, T: r.Max.Y}, 0)
	shape.SetSensor(sensor)
	if sensor {
		shape.SetCollisionType(collisionTypeSensor)
	} else {
		shape.SetCollisionType(collisionTypeSolid)
	}
	pw.space.AddShape(shape)
}

// EnsureBody creates a kinematic box body for e centred on pos if it has none.
func (pw *PhysicsWorld) EnsureBody(e Entity, pos common.Vec2, width, height float64, sensor bool) *cp.Body {
	if pw == nil || pw.space == nil || !e.Valid() {
		return nil
	}
	if body, ok := pw.bodies[e]; ok {
		return body
	}
	if width <= 0 {
		width = 24
	}
	if height <= 0 {
		height = 24
	}

	body := cp.NewKinematicBody()
	body.SetPosition(pos)
	shape := cp.NewBox(body, width, height, 0)
	shape.SetSensor(sensor)
	shape.SetCollisionType(collisionTypeBody)

	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pw.bodies[e] = body
	pw.shapes[e] = shape
	pw.shapeToEntity[shape] = e
	return body
}

// SyncBody moves e's body to pos. The shapes' bounds and the spatial index
// only follow on the next Step.
func (pw *PhysicsWorld) SyncBody(e Entity, pos common.Vec2) {
	if pw == nil || pw.space == nil {
		return
	}
	body, ok := pw.bodies[e]
	if !ok {
		return
	}
	if body.Position() == pos {
		return
	}
	body.SetPosition(pos)
}

// minStep keeps Step from being a no-op; cp ignores a zero timestep.
const minStep = 1e-6

// Step advances the space so moved bodies are reindexed. Every body is
// kinematic with zero velocity, so nothing moves on its own.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.Step(max(dt, minStep))
}

// RemoveEntity drops e's body and shapes.
func (pw *PhysicsWorld) RemoveEntity(e Entity) {
	if pw == nil || pw.space == nil {
		return
	}
	body, ok := pw.bodies[e]
	if !ok {
		return
	}
	for shape, owner := range pw.shapeToEntity {
		if owner != e {
			continue
		}
		pw.space.RemoveShape(shape)
		delete(pw.shapeToEntity, shape)
	}
	pw.space.RemoveBody(body)
	delete(pw.bodies, e)
	delete(pw.shapes, e)
}

// Overlapping returns the entities whose boxes touch e's box, sensors
// included. Level geometry is not reported. Bounds are as of the last Step.
func (pw *PhysicsWorld) Overlapping(e Entity) []Entity {
	if pw == nil || pw.space == nil {
		return nil
	}
	shape, ok := pw.shapes[e]
	if !ok {
		return nil
	}
	var out []Entity
	pw.space.BBQuery(shape.BB(), cp.SHAPE_FILTER_ALL, func(other *cp.Shape, data interface{}) {
		owner, ok := pw.shapeToEntity[other]
		if !ok || owner == e || slices.Contains(out, owner) {
			return
		}
		out = append(out, owner)
	}, nil)
	return out
}

// CastRay returns the nearest shape hit along dir within maxDistance.
func (pw *PhysicsWorld) CastRay(origin, dir common.Vec2, maxDistance float64, filter RayFilter) (RayHit, bool) {
	if pw == nil || pw.space == nil || maxDistance <= 0 {
		return RayHit{}, false
	}
	dir = common.Direction(dir)
	if dir == (common.Vec2{}) {
		return RayHit{}, false
	}
	end := origin.Add(dir.Mult(maxDistance))

	best := RayHit{}
	bestAlpha := math.Inf(1)
	pw.space.SegmentQuery(origin, end, 0, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, point, normal cp.Vector, alpha float64, data interface{}) {
		if filter.ExcludeSensors && shape.Sensor() {
			return
		}
		owner := pw.shapeToEntity[shape]
		if filter.Exclude.Valid() && owner == filter.Exclude {
			return
		}
		if alpha >= bestAlpha {
			return
		}
		bestAlpha = alpha
		best = RayHit{Entity: owner, Point: point, Distance: alpha * maxDistance}
	}, nil)

	if math.IsInf(bestAlpha, 1) {
		return RayHit{}, false
	}
	return best, true
}
