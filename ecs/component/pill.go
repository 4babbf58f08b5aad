package component

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

var ErrUnknownPillEffect = errors.New("pill: unknown effect")

type PillEffectKind uint8

const (
	PillHeal PillEffectKind = iota + 1
	PillSpeed
	PillToxicFart
	PillInvisibility
	PillInvincibility
	PillSneeze
	PillDizziness
	PillVulnerability
)

func (k PillEffectKind) String() string {
	switch k {
	case PillHeal:
		return "heal"
	case PillSpeed:
		return "speed"
	case PillToxicFart:
		return "toxic_fart"
	case PillInvisibility:
		return "invisibility"
	case PillInvincibility:
		return "invincibility"
	case PillSneeze:
		return "sneeze"
	case PillDizziness:
		return "dizziness"
	case PillVulnerability:
		return "vulnerability"
	}
	return fmt.Sprintf("pill_effect(%d)", uint8(k))
}

// PillEffect is one effect of a pill. Amount is health for heal, a speed or
// damage multiplier for speed and vulnerability, and unused otherwise.
type PillEffect struct {
	Kind     PillEffectKind
	Amount   float64
	Duration time.Duration
}

// PositivePillEffects lists the effects a pill can be found with.
func PositivePillEffects() []PillEffect {
	return []PillEffect{
		{Kind: PillHeal, Amount: 15},
		{Kind: PillSpeed, Amount: 1.5, Duration: 5 * time.Second},
		{Kind: PillToxicFart},
		{Kind: PillInvisibility, Duration: 3 * time.Second},
		{Kind: PillInvincibility, Duration: 3 * time.Second},
	}
}

// NegativePillEffects lists the side effects a pill can carry.
func NegativePillEffects() []PillEffect {
	return []PillEffect{
		{Kind: PillHeal, Amount: -10},
		{Kind: PillSpeed, Amount: 0.5, Duration: 5 * time.Second},
		{Kind: PillSneeze},
		{Kind: PillDizziness, Duration: 5 * time.Second},
		{Kind: PillVulnerability, Amount: 2, Duration: 5 * time.Second},
	}
}

// ParsePillEffect returns the positive effect with the given name.
func ParsePillEffect(name string) (PillEffect, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, fx := range PositivePillEffects() {
		if fx.Kind.String() == name {
			return fx, nil
		}
	}
	return PillEffect{}, fmt.Errorf("%w %q", ErrUnknownPillEffect, name)
}

// Pill is a pickup. Swallowing it applies Main and then Side.
type Pill struct {
	Main PillEffect
	Side PillEffect
}

// NewPill pairs main with a random negative effect of a different kind. A nil
// rng uses the global source.
func NewPill(main PillEffect, rng *rand.Rand) Pill {
	var sides []PillEffect
	for _, fx := range NegativePillEffects() {
		if fx.Kind != main.Kind {
			sides = append(sides, fx)
		}
	}
	var i int
	if rng != nil {
		i = rng.IntN(len(sides))
	} else {
		i = rand.IntN(len(sides))
	}
	return Pill{Main: main, Side: sides[i]}
}

var PillComponent = NewComponent[Pill]()

// PillRequest holds inventory slots the player asked to swallow this tick, in
// the order asked.
type PillRequest struct {
	Slots []int
}

var PillRequestComponent = NewComponent[PillRequest]()
