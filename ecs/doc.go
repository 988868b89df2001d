// Package ecs bridges pentoface face events into a [Donburi] world.
//
// [NewDonburiSink] returns a pentoface.EventSink that publishes every face
// event as a typed Donburi event and keeps one entity per digit slot with a
// [DigitState] component, so ECS systems can react to the clock without
// touching the face.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	face.SetEventSink(sink)
//	// in a system:
//	ecs.FaceEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
