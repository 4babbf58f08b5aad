package component

// PlayerTag marks the single player entity. Systems find it with ecs.First.
type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// EnemyTag marks every AI-driven enemy, stunned ones included.
type EnemyTag struct{}

var EnemyTagComponent = NewComponent[EnemyTag]()
