package component

import "github.com/milk9111/drugtest/common"

// Movement holds walking speeds in world units per second. RunSpeed is used
// while chasing.
type Movement struct {
	Speed    float64
	RunSpeed float64
}

var MovementComponent = NewComponent[Movement]()

// MovementTarget is the waypoint queue an enemy is walking. Only the enemy
// movement system writes it.
type MovementTarget struct {
	Path []common.Vec2
}

func (m *MovementTarget) Empty() bool {
	return len(m.Path) == 0
}

func (m *MovementTarget) Front() (common.Vec2, bool) {
	if len(m.Path) == 0 {
		return common.Vec2{}, false
	}
	return m.Path[0], true
}

func (m *MovementTarget) Last() (common.Vec2, bool) {
	if len(m.Path) == 0 {
		return common.Vec2{}, false
	}
	return m.Path[len(m.Path)-1], true
}

func (m *MovementTarget) Pop() {
	if len(m.Path) == 0 {
		return
	}
	m.Path = m.Path[1:]
}

func (m *MovementTarget) Replace(path []common.Vec2) {
	m.Path = append([]common.Vec2(nil), path...)
}

func (m *MovementTarget) Clear() {
	m.Path = nil
}

var MovementTargetComponent = NewComponent[MovementTarget]()
