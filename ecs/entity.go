package ecs

import "strconv"

// Entity packs a slot id in the low 32 bits and the slot's generation in the
// high 32 bits. A handle to a destroyed entity keeps its old generation and so
// never aliases the slot's next occupant.
type Entity uint64

type (
	entityID   uint32
	generation uint32
)

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<32 | uint64(id))
}

func (e Entity) id() entityID           { return entityID(e & 0xffffffff) }
func (e Entity) generation() generation { return generation(e >> 32) }

// Valid reports whether e names a slot at all. Slot 0 is never allocated.
func (e Entity) Valid() bool {
	return e.id() != 0
}

// String renders the handle as id or id.gen for recycled slots.
func (e Entity) String() string {
	s := strconv.FormatUint(uint64(e.id()), 10)
	if g := e.generation(); g > 0 {
		s += "." + strconv.FormatUint(uint64(g), 10)
	}
	return s
}
