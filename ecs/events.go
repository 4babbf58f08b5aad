package ecs

// EventType names what happened. Payload types are documented per constant.
type EventType string

const (
	// EventGameOver carries the player Entity whose health reached zero.
	EventGameOver EventType = "game_over"
	// EventPathNotFound carries a PathNotFound.
	EventPathNotFound EventType = "path_not_found"
)

type Event struct {
	Type EventType
	Data any
}

type PathNotFound struct {
	Entity Entity
	FromX  float64
	FromY  float64
	ToX    float64
	ToY    float64
}

// EventQueue collects what systems report during one World.Update. The host
// drains it after the update; anything left over is dropped by the next one.
type EventQueue struct {
	pending []Event
}

func (q *EventQueue) Push(evt Event) {
	if q != nil {
		q.pending = append(q.pending, evt)
	}
}

// Drain hands the pending events to the caller in push order.
func (q *EventQueue) Drain() []Event {
	if q == nil {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}

// Len reports how many events are pending.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.pending)
}

func (q *EventQueue) reset() {
	if q != nil {
		q.pending = q.pending[:0]
	}
}
