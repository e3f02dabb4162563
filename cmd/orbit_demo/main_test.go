package main

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/ecs"
	"github.com/Carmen-Shannon/oxy-orbit/engine/orbit"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

type recordingSink struct {
	calls int
	last  orbit.Transform
}

func (s *recordingSink) SetTransform(tf orbit.Transform) {
	s.calls++
	s.last = tf
}

func TestResetKeyRestoresViewImmediately(t *testing.T) {
	w := donburi.NewWorld()
	spawn := orbit.NewTransform(mgl32.Vec3{-3, 3, 5}).LookingAt(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	initial := orbit.DefaultOrbitCamera()

	moved := initial
	moved.Yaw = 2
	moved.Distance = 9
	e := ecs.SpawnOrbitCamera(w, moved, orbit.NewTransform(mgl32.Vec3{9, 0, 0}))
	sink := &recordingSink{}

	handleKey(w, sink, common.KeyR, initial, spawn)

	entry := w.Entry(e)
	if got := *ecs.OrbitCameraComponent.Get(entry); got != initial {
		t.Errorf("camera = %+v, want %+v", got, initial)
	}
	if got := *ecs.TransformComponent.Get(entry); got != spawn {
		t.Errorf("transform = %+v, want %+v", got, spawn)
	}
	if sink.calls != 1 || sink.last != spawn {
		t.Errorf("render camera got %d updates, last %+v, want spawn pose once", sink.calls, sink.last)
	}
}

func TestSpaceTogglesController(t *testing.T) {
	w := donburi.NewWorld()
	e := ecs.SpawnOrbitCamera(w, orbit.DefaultOrbitCamera(), orbit.NewTransform(mgl32.Vec3{0, 0, 5}))
	sink := &recordingSink{}

	handleKey(w, sink, common.KeySpace, orbit.DefaultOrbitCamera(), orbit.Transform{})
	if ecs.OrbitCameraComponent.Get(w.Entry(e)).Enabled {
		t.Error("expected controller disabled after first Space")
	}
	handleKey(w, sink, common.KeySpace, orbit.DefaultOrbitCamera(), orbit.Transform{})
	if !ecs.OrbitCameraComponent.Get(w.Entry(e)).Enabled {
		t.Error("expected controller enabled after second Space")
	}
	if sink.calls != 0 {
		t.Errorf("Space pushed %d transforms to the render camera, want 0", sink.calls)
	}
}
