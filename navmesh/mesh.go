package navmesh

import (
	"math"

	"github.com/milk9111/drugtest/common"
)

const containsEpsilon = 1e-6

type edgeKey struct {
	lo, hi int
}

func makeEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{lo: a, hi: b}
}

// link is a traversable edge from one triangle into a neighbour. Left and
// right are seen when walking out of the owning triangle.
type link struct {
	to    int
	left  common.Vec2
	right common.Vec2
}

// Mesh is a baked navigation mesh. It is read-only and safe to share.
type Mesh struct {
	vertices  []common.Vec2
	triangles []Triangle
	links     [][]link
}

func newMesh(vertices []common.Vec2, triangles []Triangle) *Mesh {
	m := &Mesh{
		vertices:  vertices,
		triangles: triangles,
		links:     make([][]link, len(triangles)),
	}

	owners := make(map[edgeKey][]int, len(triangles)*3)
	for i, t := range triangles {
		for _, e := range [3][2]int{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}} {
			k := makeEdgeKey(e[0], e[1])
			owners[k] = append(owners[k], i)
		}
	}

	for i, t := range triangles {
		// Counter-clockwise edge p->q keeps the triangle on its left, so when
		// leaving through it q is on the walker's left.
		for _, e := range [3][2]int{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}} {
			for _, other := range owners[makeEdgeKey(e[0], e[1])] {
				if other == i {
					continue
				}
				m.links[i] = append(m.links[i], link{
					to:    other,
					left:  vertices[e[1]],
					right: vertices[e[0]],
				})
			}
		}
	}
	return m
}

func (m *Mesh) Vertices() []common.Vec2 {
	if m == nil {
		return nil
	}
	return m.vertices
}

func (m *Mesh) Triangles() []Triangle {
	if m == nil {
		return nil
	}
	return m.triangles
}

func (m *Mesh) corners(i int) (common.Vec2, common.Vec2, common.Vec2) {
	t := m.triangles[i]
	return m.vertices[t.A], m.vertices[t.B], m.vertices[t.C]
}

func (m *Mesh) centroid(i int) common.Vec2 {
	a, b, c := m.corners(i)
	return common.V((a.X+b.X+c.X)/3, (a.Y+b.Y+c.Y)/3)
}

// locate returns the index of a triangle containing p, or -1.
func (m *Mesh) locate(p common.Vec2) int {
	if m == nil {
		return -1
	}
	for i := range m.triangles {
		a, b, c := m.corners(i)
		if cross(a, b, p) >= -containsEpsilon && cross(b, c, p) >= -containsEpsilon && cross(c, a, p) >= -containsEpsilon {
			return i
		}
	}
	return -1
}

// Contains reports whether p lies on the walkable surface.
func (m *Mesh) Contains(p common.Vec2) bool {
	return m.locate(p) >= 0
}

// ClosestPoint returns p when it is on the mesh, otherwise the nearest point
// on any triangle edge.
func (m *Mesh) ClosestPoint(p common.Vec2) (common.Vec2, bool) {
	if m == nil || len(m.triangles) == 0 {
		return common.Vec2{}, false
	}
	if m.locate(p) >= 0 {
		return p, true
	}

	best := common.Vec2{}
	bestDist := math.Inf(1)
	for i := range m.triangles {
		a, b, c := m.corners(i)
		for _, e := range [3][2]common.Vec2{{a, b}, {b, c}, {c, a}} {
			q := closestOnSegment(p, e[0], e[1])
			if d := q.DistanceSq(p); d < bestDist {
				bestDist = d
				best = q
			}
		}
	}
	return best, true
}

func closestOnSegment(p, a, b common.Vec2) common.Vec2 {
	ab := b.Sub(a)
	l := ab.LengthSq()
	if l == 0 {
		return a
	}
	t := p.Sub(a).Dot(ab) / l
	t = math.Max(0, math.Min(1, t))
	return a.Add(ab.Mult(t))
}
