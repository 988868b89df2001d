package pentoface

import "time"

// EventType identifies a kind of face event.
type EventType uint8

const (
	EventDigitSpawn  EventType = iota // a slot fired and spawned a tiling
	EventPieceEnter                   // a piece started its enter animation
	EventPieceFinish                  // a piece finished exiting and went back to its pool
)

// Event carries face activity to an optional EventSink.
type Event struct {
	Type  EventType
	Slot  Source
	Digit int
	// Shape is set for piece events.
	Shape Shape
	// Bootstrap is set on the spawn that ends a slot's bootstrap wait.
	Bootstrap bool
	// Time is the wall-clock time of the tick that produced the event.
	Time time.Time
}

// EventSink receives face events synchronously from inside Face.Update.
// Implementations must not call back into the Face.
type EventSink interface {
	Emit(event Event)
}

// MultiSink fans events out to several sinks in order.
type MultiSink []EventSink

// Emit forwards event to every sink.
func (m MultiSink) Emit(event Event) {
	for _, s := range m {
		s.Emit(event)
	}
}
