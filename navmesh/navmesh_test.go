package navmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/drugtest/common"
)

func box(minX, minY, maxX, maxY float64) common.Rect {
	return common.NewRect(common.V(minX, minY), common.V(maxX, maxY))
}

func bakeBoxes(t *testing.T, boxes ...common.Rect) *Mesh {
	t.Helper()
	b := NewBuilder()
	for _, r := range boxes {
		b.InsertBox(r)
	}
	m, err := b.Bake()
	require.NoError(t, err)
	return m
}

func TestBakeErrors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := NewBuilder().Bake()
		assert.ErrorIs(t, err, ErrEmptyMesh)
	})
	t.Run("degenerate", func(t *testing.T) {
		b := NewBuilder()
		b.InsertTriangle(common.V(0, 0), common.V(1, 1), common.V(2, 2))
		_, err := b.Bake()
		assert.ErrorIs(t, err, ErrDegenerateTriangle)
	})
	t.Run("clockwise_is_reordered", func(t *testing.T) {
		b := NewBuilder()
		b.InsertTriangle(common.V(0, 0), common.V(0, 10), common.V(10, 0))
		m, err := b.Bake()
		require.NoError(t, err)
		assert.True(t, m.Contains(common.V(2, 2)))
	})
}

func TestBuilderSharesVertices(t *testing.T) {
	b := NewBuilder()
	b.InsertBox(box(0, 0, 10, 10))
	b.InsertBox(box(0, 10, 10, 20))
	m, err := b.Bake()
	require.NoError(t, err)
	assert.Len(t, m.Vertices(), 6)
	assert.Len(t, m.Triangles(), 4)
}

func TestFindPath(t *testing.T) {
	lShape := []common.Rect{box(0, 0, 10, 10), box(0, 10, 10, 20), box(10, 10, 20, 20)}

	cases := []struct {
		name   string
		boxes  []common.Rect
		from   common.Vec2
		to     common.Vec2
		ok     bool
		expect []common.Vec2
	}{
		{
			name:   "same_triangle",
			boxes:  []common.Rect{box(0, 0, 10, 10)},
			from:   common.V(6, 1),
			to:     common.V(9, 2),
			ok:     true,
			expect: []common.Vec2{common.V(6, 1), common.V(9, 2)},
		},
		{
			name:   "convex_crosses_diagonal",
			boxes:  []common.Rect{box(0, 0, 10, 10)},
			from:   common.V(8, 2),
			to:     common.V(2, 8),
			ok:     true,
			expect: []common.Vec2{common.V(8, 2), common.V(2, 8)},
		},
		{
			name:   "bends_around_corner",
			boxes:  lShape,
			from:   common.V(5, 2),
			to:     common.V(18, 15),
			ok:     true,
			expect: []common.Vec2{common.V(5, 2), common.V(10, 10), common.V(18, 15)},
		},
		{
			name:  "off_mesh",
			boxes: lShape,
			from:  common.V(5, 2),
			to:    common.V(15, 5),
			ok:    false,
		},
		{
			name:  "disconnected",
			boxes: []common.Rect{box(0, 0, 10, 10), box(20, 0, 30, 10)},
			from:  common.V(5, 5),
			to:    common.V(25, 5),
			ok:    false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := bakeBoxes(t, tc.boxes...)
			path, ok := m.FindPath(tc.from, tc.to)
			require.Equal(t, tc.ok, ok)
			if !tc.ok {
				assert.Nil(t, path)
				return
			}
			require.Len(t, path, len(tc.expect))
			for i := range tc.expect {
				assert.InDelta(t, tc.expect[i].X, path[i].X, 1e-9, "point %d x", i)
				assert.InDelta(t, tc.expect[i].Y, path[i].Y, 1e-9, "point %d y", i)
			}
		})
	}
}

func TestFindPathStaysOnMesh(t *testing.T) {
	m := bakeBoxes(t,
		box(0, 0, 10, 30),
		box(0, 30, 10, 40),
		box(10, 30, 30, 40),
		box(30, 30, 40, 40),
		box(30, 0, 40, 30),
	)
	path, ok := m.FindPath(common.V(5, 5), common.V(35, 5))
	require.True(t, ok)
	require.GreaterOrEqual(t, len(path), 3)
	for _, p := range path {
		assert.True(t, m.Contains(p), "waypoint %v off mesh", p)
	}
	assert.Equal(t, common.V(5, 5), path[0])
	assert.Equal(t, common.V(35, 5), path[len(path)-1])
}

func TestClosestPoint(t *testing.T) {
	m := bakeBoxes(t, box(0, 0, 10, 10))

	p, ok := m.ClosestPoint(common.V(3, 4))
	require.True(t, ok)
	assert.Equal(t, common.V(3, 4), p)

	p, ok = m.ClosestPoint(common.V(15, 5))
	require.True(t, ok)
	assert.InDelta(t, 10, p.X, 1e-9)
	assert.InDelta(t, 5, p.Y, 1e-9)

	p, ok = m.ClosestPoint(common.V(-3, -4))
	require.True(t, ok)
	assert.InDelta(t, 0, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)

	var empty *Mesh
	_, ok = empty.ClosestPoint(common.V(0, 0))
	assert.False(t, ok)
}
