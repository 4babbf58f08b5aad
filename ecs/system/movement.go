package system

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/milk9111/drugtest/common"
	"github.com/milk9111/drugtest/ecs"
	"github.com/milk9111/drugtest/ecs/component"
)

const defaultArriveEpsilon = 0.1

// EnemyMovementSystem plans and walks enemy paths. Idle enemies follow their
// MovementType once their queue runs dry; alert enemies chase the last point
// the player was seen at, snapped onto the navmesh.
type EnemyMovementSystem struct {
	ArriveEpsilon float64

	log *zap.Logger
	rng *rand.Rand
}

func NewEnemyMovementSystem(log *zap.Logger, rng *rand.Rand) *EnemyMovementSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &EnemyMovementSystem{
		ArriveEpsilon: defaultArriveEpsilon,
		log:           log,
		rng:           rng,
	}
}

func (s *EnemyMovementSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	nav := w.Pathfinder()
	dt := w.DeltaSeconds()
	eps := s.ArriveEpsilon
	if eps <= 0 {
		eps = defaultArriveEpsilon
	}

	ecs.ForEach4(w,
		component.EnemyStateComponent.Kind(),
		component.TransformComponent.Kind(),
		component.MovementTargetComponent.Kind(),
		component.MovementTypeComponent.Kind(),
		func(e ecs.Entity, st *component.EnemyState, tr *component.Transform, queue *component.MovementTarget, mt *component.MovementType) {
			if st.IsStunned() {
				return
			}

			pos := tr.Position()
			switch {
			case st.IsIdle():
				if !queue.Empty() {
					break
				}
				mt.Advance(s.rng)
				target, ok := mt.CurrentTarget()
				if !ok || pos.Distance(target) < eps {
					return
				}
				if !s.requestPath(w, nav, e, pos, target, queue) {
					return
				}
			case st.IsAlert():
				target, _ := st.AlertTarget()
				if nav != nil {
					if snapped, ok := nav.ClosestPoint(target); ok {
						target = snapped
					}
				}
				if queue.Empty() && pos.Distance(target) < eps {
					*st = component.Idle()
					return
				}
				if last, ok := queue.Last(); !ok || last != target {
					if !s.requestPath(w, nav, e, pos, target, queue) {
						return
					}
				}
			}

			mv, ok := ecs.Get(w, e, component.MovementComponent.Kind())
			if !ok {
				return
			}
			speed := mv.Speed
			if st.IsAlert() && mv.RunSpeed > 0 {
				speed = mv.RunSpeed
			}

			front, ok := queue.Front()
			if !ok {
				return
			}
			next := StepToward(pos, front, speed*dt)
			if delta := next.Sub(pos); delta != (common.Vec2{}) {
				if facing, ok := ecs.Get(w, e, component.FacingComponent.Kind()); ok {
					facing.Direction = component.DirectionFromVector(delta)
				}
			}
			tr.SetPosition(next)
			if next.Distance(front) < eps {
				queue.Pop()
			}
		})
}

// requestPath replaces queue with a path from pos to goal. Points the enemy
// already stands on are dropped. Without a pathfinder the enemy walks
// straight at goal.
func (s *EnemyMovementSystem) requestPath(w *ecs.World, nav ecs.Pathfinder, e ecs.Entity, pos, goal common.Vec2, queue *component.MovementTarget) bool {
	if nav == nil {
		queue.Replace([]common.Vec2{goal})
		return true
	}

	// Avoidance may leave the enemy slightly off the mesh.
	start := pos
	if snapped, ok := nav.ClosestPoint(pos); ok {
		start = snapped
	}
	path, ok := nav.FindPath(start, goal)
	if !ok {
		queue.Clear()
		s.log.Warn("no path found",
			zap.Stringer("entity", e),
			zap.Float64("from_x", pos.X), zap.Float64("from_y", pos.Y),
			zap.Float64("to_x", goal.X), zap.Float64("to_y", goal.Y),
		)
		w.Events().Push(ecs.Event{
			Type: ecs.EventPathNotFound,
			Data: ecs.PathNotFound{Entity: e, FromX: pos.X, FromY: pos.Y, ToX: goal.X, ToY: goal.Y},
		})
		return false
	}

	eps := s.ArriveEpsilon
	if eps <= 0 {
		eps = defaultArriveEpsilon
	}
	for len(path) > 0 && path[0].Distance(pos) < eps {
		path = path[1:]
	}
	queue.Replace(path)
	return len(path) > 0
}

// StepToward moves pos toward goal by at most maxStep and never past it.
func StepToward(pos, goal common.Vec2, maxStep float64) common.Vec2 {
	delta := goal.Sub(pos)
	dist := delta.Length()
	if maxStep <= 0 || dist == 0 {
		return pos
	}
	if dist <= maxStep {
		return goal
	}
	return pos.Add(delta.Mult(maxStep / dist))
}
