package ecs

// Event is a frame-scoped signal between systems. Producers push, a single
// downstream system drains; anything left at the end of the tick is dropped.
type Event struct {
	Type string
	Data any
}

// EventHostileDied carries the dead hostile's Entity as Data.
const EventHostileDied = "hostile_died"

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
