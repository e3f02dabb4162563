// Package ecs exposes the orbit controller to a Donburi world: camera entities carry the
// OrbitCameraComponent and TransformComponent pair, pointer input arrives as Donburi events, and
// OrbitSystem runs the controller over every matching entity once per tick.
//
// Usage:
//
//	world := donburi.NewWorld()
//	sys := ecs.NewOrbitSystem()
//	sys.Install(world)
//	ecs.SpawnOrbitCamera(world, orbit.DefaultOrbitCamera(), tf)
//
//	// each tick
//	ecs.PublishInput(world, acc.Drain())
//	sys.Update(world, dt)
package ecs

import (
	"github.com/Carmen-Shannon/oxy-orbit/engine/orbit"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// Components.
var (
	OrbitCameraComponent  = donburi.NewComponentType[orbit.OrbitCamera]()
	TransformComponent    = donburi.NewComponentType[orbit.Transform]()
	PointerStateComponent = donburi.NewComponentType[orbit.ButtonSet]()
)

// MotionEvent carries relative pointer motion. Events are queued on Publish and delivered to
// subscribers on ProcessEvents, so each event is seen once per subscriber.
var MotionEvent = events.NewEventType[orbit.MouseMotion]()

// WheelEvent carries scroll wheel input.
var WheelEvent = events.NewEventType[orbit.MouseWheel]()

var (
	rigQuery     = donburi.NewQuery(filter.Contains(OrbitCameraComponent, TransformComponent))
	pointerQuery = donburi.NewQuery(filter.Contains(PointerStateComponent))
)

// SpawnOrbitCamera creates an entity carrying an orbit controller and the transform it drives.
//
// Parameters:
//   - w: the world to create the entity in
//   - cam: initial controller state
//   - tf: initial camera transform
//
// Returns:
//   - donburi.Entity: the new entity
func SpawnOrbitCamera(w donburi.World, cam orbit.OrbitCamera, tf orbit.Transform) donburi.Entity {
	e := w.Create(OrbitCameraComponent, TransformComponent)
	entry := w.Entry(e)
	OrbitCameraComponent.SetValue(entry, cam)
	TransformComponent.SetValue(entry, tf)
	return e
}

// PublishInput queues a frame's motion and wheel events and records the held buttons on the
// world's pointer-state singleton, creating it on first use.
//
// Parameters:
//   - w: the world to publish into
//   - frame: the drained input for this tick
func PublishInput(w donburi.World, frame orbit.FrameInput) {
	for _, m := range frame.Motion {
		MotionEvent.Publish(w, m)
	}
	for _, e := range frame.Wheel {
		WheelEvent.Publish(w, e)
	}

	entry, ok := pointerQuery.First(w)
	if !ok {
		entry = w.Entry(w.Create(PointerStateComponent))
	}
	PointerStateComponent.SetValue(entry, frame.Buttons)
}

// HeldButtons returns the buttons recorded by the last PublishInput, or the empty set.
//
// Parameters:
//   - w: the world to read from
//
// Returns:
//   - orbit.ButtonSet: the held buttons
func HeldButtons(w donburi.World) orbit.ButtonSet {
	entry, ok := pointerQuery.First(w)
	if !ok {
		return 0
	}
	return *PointerStateComponent.Get(entry)
}
