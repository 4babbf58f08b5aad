package component

// Sight configures enemy perception.
type Sight struct {
	// AlwaysDetectRadius detects the player regardless of facing, line of
	// sight or invisibility.
	AlwaysDetectRadius float64
	MaxDistance        float64
}

var SightComponent = NewComponent[Sight]()
