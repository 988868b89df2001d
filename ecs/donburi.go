package ecs

import (
	"time"

	"github.com/phanxgames/pentoface"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// FaceEventType is the Donburi event type for face events. Subscribe to it
// in your ECS systems and drain it with ProcessEvents.
var FaceEventType = events.NewEventType[pentoface.Event]()

// DigitState is the last digit a slot spawned.
type DigitState struct {
	Slot pentoface.Source
	// Digit is the displayed digit; -1 until the slot first spawns.
	Digit int
	// Spawns counts digit spawns on the slot.
	Spawns int
	// Changed is the wall-clock time of the last spawn.
	Changed time.Time
}

// DigitComponent holds a slot's DigitState.
var DigitComponent = donburi.NewComponentType[DigitState]()

var digitQuery = donburi.NewQuery(filter.Contains(DigitComponent))

// DonburiSink is a pentoface.EventSink backed by a Donburi world.
type DonburiSink struct {
	world donburi.World
	slots [pentoface.NumSources]donburi.Entity
}

// NewDonburiSink creates the slot entities in world and returns a sink that
// publishes face events to FaceEventType.
func NewDonburiSink(world donburi.World) *DonburiSink {
	s := &DonburiSink{world: world}
	for i := range s.slots {
		e := world.Create(DigitComponent)
		DigitComponent.SetValue(world.Entry(e), DigitState{Slot: pentoface.Source(i), Digit: -1})
		s.slots[i] = e
	}
	return s
}

// Emit implements pentoface.EventSink. Spawns update the slot entity
// immediately; the event itself is queued until ProcessEvents.
func (s *DonburiSink) Emit(event pentoface.Event) {
	if event.Type == pentoface.EventDigitSpawn && int(event.Slot) < pentoface.NumSources {
		st := DigitComponent.Get(s.world.Entry(s.slots[event.Slot]))
		st.Digit = event.Digit
		st.Spawns++
		st.Changed = event.Time
	}
	FaceEventType.Publish(s.world, event)
}

// Entity returns the entity holding slot's DigitState.
func (s *DonburiSink) Entity(slot pentoface.Source) donburi.Entity {
	return s.slots[slot]
}

// Digits returns the displayed digit of every slot in the world, hour tens
// first; -1 marks a slot that has not spawned yet.
func Digits(world donburi.World) [pentoface.NumSources]int {
	var out [pentoface.NumSources]int
	for i := range out {
		out[i] = -1
	}
	digitQuery.Each(world, func(entry *donburi.Entry) {
		st := DigitComponent.Get(entry)
		if int(st.Slot) < pentoface.NumSources {
			out[st.Slot] = st.Digit
		}
	})
	return out
}
