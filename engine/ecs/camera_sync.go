package ecs

import (
	"github.com/Carmen-Shannon/oxy-orbit/engine/orbit"

	"github.com/yohamta/donburi"
)

// TransformSink receives a camera transform. camera.Camera satisfies it.
type TransformSink interface {
	SetTransform(tf orbit.Transform)
}

// CameraSyncSystem copies one entity's TransformComponent into a render camera each tick.
// Install it after OrbitSystem so the camera sees the transform written in the same tick.
type CameraSyncSystem struct {
	entity donburi.Entity
	sink   TransformSink
}

var _ System = &CameraSyncSystem{}

// NewCameraSyncSystem creates a system that mirrors entity's transform into sink.
//
// Parameters:
//   - entity: the camera entity to follow
//   - sink: the destination, usually the renderer's camera
//
// Returns:
//   - *CameraSyncSystem: the new system
func NewCameraSyncSystem(entity donburi.Entity, sink TransformSink) *CameraSyncSystem {
	return &CameraSyncSystem{entity: entity, sink: sink}
}

// Install is a no-op; the system subscribes to nothing.
func (s *CameraSyncSystem) Install(donburi.World) {}

// Update copies the transform. Entities that no longer exist or carry no transform are skipped.
func (s *CameraSyncSystem) Update(w donburi.World, _ float32) {
	if !w.Valid(s.entity) {
		return
	}
	entry := w.Entry(s.entity)
	if !entry.HasComponent(TransformComponent) {
		return
	}
	s.sink.SetTransform(*TransformComponent.Get(entry))
}

// EachOrbitCamera calls fn for every entity carrying both controller components. fn may mutate
// the camera and transform in place.
//
// Parameters:
//   - w: the world to iterate
//   - fn: callback receiving the entity's controller and transform
func EachOrbitCamera(w donburi.World, fn func(cam *orbit.OrbitCamera, tf *orbit.Transform)) {
	rigQuery.Each(w, func(entry *donburi.Entry) {
		fn(OrbitCameraComponent.Get(entry), TransformComponent.Get(entry))
	})
}
