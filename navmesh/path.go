package navmesh

import (
	"container/heap"
	"math"

	"github.com/milk9111/drugtest/common"
)

// FindPath returns a smoothed path from `from` to `to`, both included. It
// fails when either point is off the mesh or no triangle corridor connects
// them.
func (m *Mesh) FindPath(from, to common.Vec2) ([]common.Vec2, bool) {
	start := m.locate(from)
	goal := m.locate(to)
	if start < 0 || goal < 0 {
		return nil, false
	}
	if start == goal {
		return []common.Vec2{from, to}, true
	}

	corridor := m.corridor(start, goal, from, to)
	if corridor == nil {
		return nil, false
	}

	portals := make([]portal, 0, len(corridor)+1)
	portals = append(portals, portal{left: from, right: from})
	for _, l := range corridor {
		portals = append(portals, portal{left: l.left, right: l.right})
	}
	portals = append(portals, portal{left: to, right: to})

	return funnel(portals), true
}

// corridor runs A* over the triangle graph. Each triangle is entered at the
// midpoint of the portal used to reach it.
func (m *Mesh) corridor(start, goal int, from, to common.Vec2) []link {
	n := len(m.triangles)
	cameFrom := make([]int, n)
	via := make([]link, n)
	entry := make([]common.Vec2, n)
	gScore := make([]float64, n)
	closed := make([]bool, n)
	for i := range cameFrom {
		cameFrom[i] = -1
		gScore[i] = math.Inf(1)
	}

	gScore[start] = 0
	entry[start] = from

	open := &openSet{}
	heap.Init(open)
	heap.Push(open, &openItem{tri: start, f: from.Distance(to)})

	for open.Len() > 0 {
		cur := heap.Pop(open).(*openItem).tri
		if closed[cur] {
			continue
		}
		closed[cur] = true
		if cur == goal {
			return reconstructCorridor(cameFrom, via, start, goal)
		}

		for _, l := range m.links[cur] {
			if closed[l.to] {
				continue
			}
			mid := l.left.Add(l.right).Mult(0.5)
			g := gScore[cur] + entry[cur].Distance(mid)
			if g >= gScore[l.to] {
				continue
			}
			gScore[l.to] = g
			cameFrom[l.to] = cur
			via[l.to] = l
			entry[l.to] = mid
			heap.Push(open, &openItem{tri: l.to, f: g + mid.Distance(to)})
		}
	}
	return nil
}

func reconstructCorridor(cameFrom []int, via []link, start, goal int) []link {
	out := make([]link, 0, 16)
	for cur := goal; cur != start; cur = cameFrom[cur] {
		if cameFrom[cur] < 0 {
			return nil
		}
		out = append(out, via[cur])
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

type openItem struct {
	tri   int
	f     float64
	index int
}

type openSet []*openItem

func (o openSet) Len() int           { return len(o) }
func (o openSet) Less(i, j int) bool { return o[i].f < o[j].f }
func (o openSet) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].index = i
	o[j].index = j
}
func (o *openSet) Push(x any) {
	item := x.(*openItem)
	item.index = len(*o)
	*o = append(*o, item)
}
func (o *openSet) Pop() any {
	old := *o
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*o = old[:n-1]
	return item
}
