package ecs

import (
	"github.com/Carmen-Shannon/oxy-orbit/engine/orbit"

	"github.com/yohamta/donburi"
)

// System is a unit of per-tick logic installed into a world.
type System interface {
	// Install subscribes the system to the world's events. Called once before the first Update.
	//
	// Parameters:
	//   - w: the world the system will run against
	Install(w donburi.World)

	// Update runs one tick.
	//
	// Parameters:
	//   - w: the world to update
	//   - dt: elapsed seconds since the previous tick
	Update(w donburi.World, dt float32)
}

// OrbitSystem drives every entity carrying both an OrbitCameraComponent and a TransformComponent.
type OrbitSystem struct {
	motion []orbit.MouseMotion
	wheel  []orbit.MouseWheel
}

var _ System = &OrbitSystem{}

// NewOrbitSystem creates an orbit system. Install it into a world before calling Update.
//
// Returns:
//   - *OrbitSystem: the new system
func NewOrbitSystem() *OrbitSystem {
	return &OrbitSystem{}
}

// Install subscribes to MotionEvent and WheelEvent on w.
func (s *OrbitSystem) Install(w donburi.World) {
	MotionEvent.Subscribe(w, s.onMotion)
	WheelEvent.Subscribe(w, s.onWheel)
}

// Update drains the queued pointer events, then runs the rotate/pan and zoom step for every camera
// entity using the summed input and the buttons recorded by PublishInput.
func (s *OrbitSystem) Update(w donburi.World, dt float32) {
	s.motion = s.motion[:0]
	s.wheel = s.wheel[:0]
	MotionEvent.ProcessEvents(w)
	WheelEvent.ProcessEvents(w)

	frame := orbit.FrameInput{
		Motion:  s.motion,
		Wheel:   s.wheel,
		Buttons: HeldButtons(w),
	}

	var rigs []orbit.Rig
	rigQuery.Each(w, func(entry *donburi.Entry) {
		rigs = append(rigs, orbit.Rig{
			Camera:    OrbitCameraComponent.Get(entry),
			Transform: TransformComponent.Get(entry),
		})
	})
	orbit.Update(frame, dt, rigs...)
}

func (s *OrbitSystem) onMotion(_ donburi.World, e orbit.MouseMotion) {
	s.motion = append(s.motion, e)
}

func (s *OrbitSystem) onWheel(_ donburi.World, e orbit.MouseWheel) {
	s.wheel = append(s.wheel, e)
}
