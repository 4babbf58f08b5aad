package navmesh

import "github.com/milk9111/drugtest/common"

type portal struct {
	left  common.Vec2
	right common.Vec2
}

// funnel pulls a string through the portal corridor. The first and last
// portals are degenerate and hold the start and goal points.
func funnel(portals []portal) []common.Vec2 {
	if len(portals) == 0 {
		return nil
	}
	apex := portals[0].left
	left, right := apex, apex
	apexIdx, leftIdx, rightIdx := 0, 0, 0
	path := []common.Vec2{apex}

	for i := 1; i < len(portals); i++ {
		l, r := portals[i].left, portals[i].right

		if cross(apex, right, r) >= 0 {
			if apex == right || cross(apex, left, r) < 0 {
				right = r
				rightIdx = i
			} else {
				path = appendPoint(path, left)
				apex = left
				apexIdx = leftIdx
				left, right = apex, apex
				leftIdx, rightIdx = apexIdx, apexIdx
				i = apexIdx
				continue
			}
		}

		if cross(apex, left, l) <= 0 {
			if apex == left || cross(apex, right, l) > 0 {
				left = l
				leftIdx = i
			} else {
				path = appendPoint(path, right)
				apex = right
				apexIdx = rightIdx
				left, right = apex, apex
				leftIdx, rightIdx = apexIdx, apexIdx
				i = apexIdx
				continue
			}
		}
	}

	return appendPoint(path, portals[len(portals)-1].left)
}

func appendPoint(path []common.Vec2, p common.Vec2) []common.Vec2 {
	if len(path) > 0 && path[len(path)-1] == p {
		return path
	}
	return append(path, p)
}
