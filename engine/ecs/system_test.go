package ecs

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/orbit"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

func spawnTransform() orbit.Transform {
	return orbit.NewTransform(mgl32.Vec3{-3, 3, 5}).LookingAt(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
}

func newWorld(t *testing.T) (donburi.World, *OrbitSystem) {
	t.Helper()
	w := donburi.NewWorld()
	sys := NewOrbitSystem()
	sys.Install(w)
	return w, sys
}

func TestSpawnOrbitCamera(t *testing.T) {
	w := donburi.NewWorld()
	tf := spawnTransform()
	e := SpawnOrbitCamera(w, orbit.DefaultOrbitCamera(), tf)

	entry := w.Entry(e)
	if !entry.HasComponent(OrbitCameraComponent) || !entry.HasComponent(TransformComponent) {
		t.Fatal("spawned entity is missing components")
	}
	if got := *OrbitCameraComponent.Get(entry); got != orbit.DefaultOrbitCamera() {
		t.Errorf("camera = %+v, want defaults", got)
	}
	if got := *TransformComponent.Get(entry); got != tf {
		t.Errorf("transform = %+v, want %+v", got, tf)
	}
}

func TestOrbitSystemRotatesAndZooms(t *testing.T) {
	w, sys := newWorld(t)
	e := SpawnOrbitCamera(w, orbit.DefaultOrbitCamera(), spawnTransform())

	PublishInput(w, orbit.FrameInput{
		Motion:  []orbit.MouseMotion{{Delta: mgl32.Vec2{4, 0}}, {Delta: mgl32.Vec2{6, 0}}},
		Wheel:   []orbit.MouseWheel{{Unit: orbit.ScrollUnitPixel, Y: 10}},
		Buttons: orbit.Buttons(common.MouseButtonPrimary),
	})
	sys.Update(w, 1)

	cam := OrbitCameraComponent.Get(w.Entry(e))
	if cam.Yaw != -10 {
		t.Errorf("Yaw = %f, want -10", cam.Yaw)
	}
	if cam.Pitch != orbit.MinPitch {
		t.Errorf("Pitch = %f, want %f", cam.Pitch, orbit.MinPitch)
	}
	if math.Abs(float64(cam.Distance-4)) > 1e-4 {
		t.Errorf("Distance = %f, want 4", cam.Distance)
	}
	tf := TransformComponent.Get(w.Entry(e))
	if d := tf.Translation.Len(); math.Abs(float64(d-4)) > 1e-4 {
		t.Errorf("camera distance from pivot = %f, want 4", d)
	}
}

func TestOrbitSystemConsumesEventsOnce(t *testing.T) {
	w, sys := newWorld(t)
	e := SpawnOrbitCamera(w, orbit.DefaultOrbitCamera(), spawnTransform())

	PublishInput(w, orbit.FrameInput{
		Wheel: []orbit.MouseWheel{{Unit: orbit.ScrollUnitLine, Y: 1}},
	})
	sys.Update(w, 1)
	after := *OrbitCameraComponent.Get(w.Entry(e))

	sys.Update(w, 1)
	if got := *OrbitCameraComponent.Get(w.Entry(e)); got != after {
		t.Errorf("second update without input changed the camera: %+v -> %+v", after, got)
	}
}

func TestOrbitSystemSkipsDisabledAndIncomplete(t *testing.T) {
	w, sys := newWorld(t)
	disabled := orbit.DefaultOrbitCamera()
	disabled.Enabled = false
	off := SpawnOrbitCamera(w, disabled, spawnTransform())

	// A camera without a transform is not a rig.
	loose := w.Create(OrbitCameraComponent)
	OrbitCameraComponent.SetValue(w.Entry(loose), orbit.DefaultOrbitCamera())

	PublishInput(w, orbit.FrameInput{
		Motion:  []orbit.MouseMotion{{Delta: mgl32.Vec2{5, 5}}},
		Wheel:   []orbit.MouseWheel{{Unit: orbit.ScrollUnitLine, Y: 2}},
		Buttons: orbit.Buttons(common.MouseButtonPrimary, common.MouseButtonSecondary),
	})
	sys.Update(w, 1)

	if got := *OrbitCameraComponent.Get(w.Entry(off)); got != disabled {
		t.Errorf("disabled camera changed: %+v", got)
	}
	if got := *TransformComponent.Get(w.Entry(off)); got != spawnTransform() {
		t.Errorf("disabled transform changed: %+v", got)
	}
	if got := *OrbitCameraComponent.Get(w.Entry(loose)); got != orbit.DefaultOrbitCamera() {
		t.Errorf("camera without transform changed: %+v", got)
	}
}

func TestHeldButtons(t *testing.T) {
	w := donburi.NewWorld()
	if HeldButtons(w) != 0 {
		t.Error("fresh world should report no held buttons")
	}

	PublishInput(w, orbit.FrameInput{Buttons: orbit.Buttons(common.MouseButtonSecondary)})
	PublishInput(w, orbit.FrameInput{Buttons: orbit.Buttons(common.MouseButtonTertiary)})

	if got := HeldButtons(w); got != orbit.Buttons(common.MouseButtonTertiary) {
		t.Errorf("HeldButtons = %b, want tertiary only", got)
	}
	if n := pointerQuery.Count(w); n != 1 {
		t.Errorf("pointer state entities = %d, want 1", n)
	}
}

type recordingSink struct {
	calls int
	last  orbit.Transform
}

func (r *recordingSink) SetTransform(tf orbit.Transform) {
	r.calls++
	r.last = tf
}

func TestCameraSyncSystemMirrorsTransform(t *testing.T) {
	w, orbitSys := newWorld(t)
	e := SpawnOrbitCamera(w, orbit.DefaultOrbitCamera(), spawnTransform())
	sink := &recordingSink{}
	follow := NewCameraSyncSystem(e, sink)
	follow.Install(w)

	PublishInput(w, orbit.FrameInput{
		Motion:  []orbit.MouseMotion{{Delta: mgl32.Vec2{3, 1}}},
		Buttons: orbit.Buttons(common.MouseButtonPrimary),
	})
	orbitSys.Update(w, 0.1)
	follow.Update(w, 0.1)

	if sink.calls != 1 {
		t.Fatalf("SetTransform called %d times, want 1", sink.calls)
	}
	if want := *TransformComponent.Get(w.Entry(e)); sink.last != want {
		t.Errorf("sink transform = %+v, want %+v", sink.last, want)
	}

	w.Remove(e)
	follow.Update(w, 0.1)
	if sink.calls != 1 {
		t.Errorf("SetTransform called after entity removal")
	}
}

func TestEachOrbitCamera(t *testing.T) {
	w := donburi.NewWorld()
	a := SpawnOrbitCamera(w, orbit.DefaultOrbitCamera(), spawnTransform())
	b := SpawnOrbitCamera(w, orbit.DefaultOrbitCamera(), spawnTransform())
	w.Create(OrbitCameraComponent)

	visited := 0
	EachOrbitCamera(w, func(cam *orbit.OrbitCamera, _ *orbit.Transform) {
		visited++
		cam.Enabled = false
	})
	if visited != 2 {
		t.Errorf("visited %d entities, want 2", visited)
	}
	for _, e := range []donburi.Entity{a, b} {
		if OrbitCameraComponent.Get(w.Entry(e)).Enabled {
			t.Errorf("entity %v still enabled", e)
		}
	}
}
