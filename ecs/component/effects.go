package component

// Temporary effects on the player. Each is removed by EffectSystem when its
// timer finishes.

type Invisibility struct {
	Timer Timer
}

var InvisibilityComponent = NewComponent[Invisibility]()

type Invincibility struct {
	Timer Timer
}

var InvincibilityComponent = NewComponent[Invincibility]()

type MovementBoost struct {
	Multiplier float64
	Timer      Timer
}

var MovementBoostComponent = NewComponent[MovementBoost]()

// Dizziness inverts the player's movement input.
type Dizziness struct {
	Timer Timer
}

var DizzinessComponent = NewComponent[Dizziness]()

// Vulnerability multiplies the damage the player takes.
type Vulnerability struct {
	Multiplier float64
	Timer      Timer
}

var VulnerabilityComponent = NewComponent[Vulnerability]()
