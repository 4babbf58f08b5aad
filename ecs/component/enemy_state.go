package component

import (
	"fmt"
	"time"

	"github.com/milk9111/drugtest/common"
)

type EnemyStateKind uint8

const (
	EnemyIdle EnemyStateKind = iota
	EnemyAlert
	EnemyStun
)

func (k EnemyStateKind) String() string {
	switch k {
	case EnemyIdle:
		return "idle"
	case EnemyAlert:
		return "alert"
	case EnemyStun:
		return "stun"
	}
	return fmt.Sprintf("enemy_state(%d)", uint8(k))
}

// EnemyState is Idle, Alert{target} or Stun{remaining}. Fields are private so
// a state can only ever carry the payload of its own tag.
type EnemyState struct {
	kind      EnemyStateKind
	target    common.Vec2
	remaining time.Duration
}

func Idle() EnemyState {
	return EnemyState{kind: EnemyIdle}
}

func Alert(target common.Vec2) EnemyState {
	return EnemyState{kind: EnemyAlert, target: target}
}

func Stunned(remaining time.Duration) EnemyState {
	return EnemyState{kind: EnemyStun, remaining: remaining}
}

func (s EnemyState) Kind() EnemyStateKind { return s.kind }

func (s EnemyState) IsIdle() bool    { return s.kind == EnemyIdle }
func (s EnemyState) IsAlert() bool   { return s.kind == EnemyAlert }
func (s EnemyState) IsStunned() bool { return s.kind == EnemyStun }

// AlertTarget returns the chase target while Alert.
func (s EnemyState) AlertTarget() (common.Vec2, bool) {
	if s.kind != EnemyAlert {
		return common.Vec2{}, false
	}
	return s.target, true
}

// StunRemaining returns the remaining stun time while stunned.
func (s EnemyState) StunRemaining() (time.Duration, bool) {
	if s.kind != EnemyStun {
		return 0, false
	}
	return s.remaining, true
}

func (s EnemyState) String() string {
	switch s.kind {
	case EnemyAlert:
		return fmt.Sprintf("alert(%.1f, %.1f)", s.target.X, s.target.Y)
	case EnemyStun:
		return fmt.Sprintf("stun(%s)", s.remaining)
	}
	return s.kind.String()
}

var EnemyStateComponent = NewComponent[EnemyState]()

// StunRequest is a one-shot event asking StunSystem to stun the entity.
// Combat code adds it; StunSystem consumes and removes it.
type StunRequest struct {
	Duration time.Duration
}

var StunRequestComponent = NewComponent[StunRequest]()
