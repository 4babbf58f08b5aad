package component

// Collider describes the box registered in the physics world for an entity.
type Collider struct {
	Width  float64
	Height float64
	Sensor bool
}

var ColliderComponent = NewComponent[Collider]()
