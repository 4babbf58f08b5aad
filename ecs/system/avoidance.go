package system

import (
	"github.com/milk9111/drugtest/common"
	"github.com/milk9111/drugtest/ecs"
	"github.com/milk9111/drugtest/ecs/component"
)

// OverlapAvoidanceSystem pushes enemies that crowd each other apart along
// the line between their centres. Pushes are computed from positions at the
// start of the update. A move is committed only when the result stays on the
// navmesh and, with a ray caster installed, does not cross level geometry.
type OverlapAvoidanceSystem struct {
	Radius float64
	Rate   float64
	// NavTolerance is how far a pushed position may sit from its closest
	// navmesh point.
	NavTolerance float64
}

func NewOverlapAvoidanceSystem() *OverlapAvoidanceSystem {
	return &OverlapAvoidanceSystem{
		Radius:       25,
		Rate:         400,
		NavTolerance: 0.5,
	}
}

func (s *OverlapAvoidanceSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	nav := w.Pathfinder()
	if nav == nil {
		return
	}
	dt := w.DeltaSeconds()
	if dt <= 0 {
		return
	}

	rays := w.RayCaster()

	type entInfo struct {
		e       ecs.Entity
		tr      *component.Transform
		pos     common.Vec2
		stunned bool
		push    common.Vec2
	}

	list := make([]entInfo, 0)
	ecs.ForEach3(w,
		component.EnemyTagComponent.Kind(),
		component.EnemyStateComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, _ *component.EnemyTag, st *component.EnemyState, tr *component.Transform) {
			list = append(list, entInfo{e: e, tr: tr, pos: tr.Position(), stunned: st.IsStunned()})
		})

	n := len(list)
	if n < 2 {
		return
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := &list[i], &list[j]
			if a.stunned && b.stunned {
				continue
			}
			push, ok := s.separation(a.pos, b.pos, dt)
			if !ok {
				continue
			}
			a.push = a.push.Add(push)
			b.push = b.push.Sub(push)
		}
	}

	for i := range list {
		ent := &list[i]
		if ent.push == (common.Vec2{}) {
			continue
		}
		proposed := ent.pos.Add(ent.push)
		snapped, ok := nav.ClosestPoint(proposed)
		if !ok || snapped.Distance(proposed) > s.NavTolerance {
			continue
		}
		if blockedByGeometry(rays, ent.e, ent.pos, ent.push) {
			continue
		}
		ent.tr.SetPosition(proposed)
	}
}

// blockedByGeometry reports whether a wall lies between pos and pos+push.
// Other bodies do not block.
func blockedByGeometry(rays ecs.RayCaster, self ecs.Entity, pos, push common.Vec2) bool {
	if rays == nil {
		return false
	}
	length := push.Length()
	hit, ok := rays.CastRay(pos, push, length, ecs.RayFilter{ExcludeSensors: true, Exclude: self})
	return ok && !hit.Entity.Valid() && hit.Distance <= length
}

// separation returns the push applied to a (b receives the opposite) when the
// two are closer than Radius. The magnitude is Rate*dt/dist, capped at half
// the radius. Coincident centres take the cap along the x axis.
func (s *OverlapAvoidanceSystem) separation(a, b common.Vec2, dt float64) (common.Vec2, bool) {
	d := a.Sub(b)
	dist := d.Length()
	if dist >= s.Radius {
		return common.Vec2{}, false
	}
	maxPush := s.Radius / 2
	if dist == 0 {
		return common.V(maxPush, 0), true
	}
	mag := min(s.Rate*dt/dist, maxPush)
	return d.Mult(mag / dist), true
}
