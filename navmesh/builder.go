package navmesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/milk9111/drugtest/common"
)

var (
	ErrEmptyMesh          = errors.New("navmesh: empty mesh")
	ErrDegenerateTriangle = errors.New("navmesh: degenerate triangle")
)

// Triangle indexes three mesh vertices in counter-clockwise order.
type Triangle struct {
	A, B, C int
}

// Builder collects walkable triangles, sharing vertices between them so that
// neighbouring triangles can be linked when the mesh is baked.
type Builder struct {
	vertices  []common.Vec2
	triangles []Triangle
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) vertexIndex(v common.Vec2) int {
	for i, existing := range b.vertices {
		if existing == v {
			return i
		}
	}
	b.vertices = append(b.vertices, v)
	return len(b.vertices) - 1
}

func (b *Builder) InsertTriangle(p1, p2, p3 common.Vec2) {
	b.triangles = append(b.triangles, Triangle{
		A: b.vertexIndex(p1),
		B: b.vertexIndex(p2),
		C: b.vertexIndex(p3),
	})
}

// InsertRect adds the quad p1 p2 p3 p4 as the triangles (p1 p2 p3) and
// (p1 p4 p3).
func (b *Builder) InsertRect(p1, p2, p3, p4 common.Vec2) {
	i1 := b.vertexIndex(p1)
	i2 := b.vertexIndex(p2)
	i3 := b.vertexIndex(p3)
	i4 := b.vertexIndex(p4)
	b.triangles = append(b.triangles, Triangle{A: i1, B: i2, C: i3}, Triangle{A: i1, B: i4, C: i3})
}

// InsertBox adds an axis-aligned rectangle.
func (b *Builder) InsertBox(r common.Rect) {
	c := r.Corners()
	b.InsertRect(c[0], c[1], c[2], c[3])
}

// Bake validates the collected triangles and links neighbours.
func (b *Builder) Bake() (*Mesh, error) {
	if len(b.triangles) == 0 {
		return nil, ErrEmptyMesh
	}

	vertices := append([]common.Vec2(nil), b.vertices...)
	triangles := make([]Triangle, len(b.triangles))
	for i, t := range b.triangles {
		area := cross(vertices[t.A], vertices[t.B], vertices[t.C])
		if math.Abs(area) < 1e-9 {
			return nil, fmt.Errorf("%w: triangle %d", ErrDegenerateTriangle, i)
		}
		if area < 0 {
			t.B, t.C = t.C, t.B
		}
		triangles[i] = t
	}

	return newMesh(vertices, triangles), nil
}

// cross returns the z component of (b-a) x (c-a). Positive means c lies to
// the left of a->b.
func cross(a, b, c common.Vec2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
