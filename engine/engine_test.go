package engine

import (
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/ecs"
	"github.com/Carmen-Shannon/oxy-orbit/engine/orbit"

	"github.com/go-gl/mathgl/mgl32"
)

type fakeRenderer struct {
	mu       sync.Mutex
	uniforms []camera.GPUCameraUniform
	draws    int
	resizes  [][2]int
	released bool
	err      error
}

func (f *fakeRenderer) WriteCamera(u camera.GPUCameraUniform) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uniforms = append(f.uniforms, u)
}

func (f *fakeRenderer) Resize(width, height int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resizes = append(f.resizes, [2]int{width, height})
}

func (f *fakeRenderer) DrawFrame() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draws++
	return f.err
}

func (f *fakeRenderer) Release() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.released = true
}

func newHeadless(t *testing.T, options ...EngineBuilderOption) *engine {
	t.Helper()
	return NewEngine(options...).(*engine)
}

func TestStepDrivesOrbitCamera(t *testing.T) {
	spawn := orbit.NewTransform(mgl32.Vec3{-3, 3, 5}).LookingAt(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	cam := camera.NewCamera(camera.WithTransform(spawn))
	e := newHeadless(t, WithCamera(cam))

	entity := ecs.SpawnOrbitCamera(e.World(), orbit.DefaultOrbitCamera(), spawn)
	e.AddSystem(ecs.NewOrbitSystem())
	e.AddSystem(ecs.NewCameraSyncSystem(entity, cam))

	var ticks []float32
	e.SetTickCallback(func(dt float32) { ticks = append(ticks, dt) })

	acc := e.Input()
	acc.ButtonChanged(common.MouseButtonPrimary, true)
	acc.Moved(4, 0)
	acc.Moved(6, 0)
	acc.Scrolled(orbit.ScrollUnitLine, 0, 1)
	e.step(1)

	oc := ecs.OrbitCameraComponent.Get(e.World().Entry(entity))
	if oc.Yaw != -10 {
		t.Errorf("Yaw = %v, want -10", oc.Yaw)
	}
	if math.Abs(float64(oc.Distance-4)) > 1e-5 {
		t.Errorf("Distance = %v, want 4", oc.Distance)
	}
	if got := cam.Transform(); got != *ecs.TransformComponent.Get(e.World().Entry(entity)) {
		t.Errorf("camera transform %+v not synced from entity", got)
	}
	if len(ticks) != 1 || ticks[0] != 1 {
		t.Errorf("tick callback calls = %v, want [1]", ticks)
	}

	// Input is consumed once; the held button alone moves nothing.
	before := cam.Transform()
	e.step(1)
	if cam.Transform() != before {
		t.Error("second tick without new input moved the camera")
	}
}

func TestRenderFrameUploadsCameraAndDraws(t *testing.T) {
	r := &fakeRenderer{}
	cam := camera.NewCamera()
	e := newHeadless(t, WithRenderer(r), WithCamera(cam))

	frames := 0
	e.SetRenderCallback(func(float32) { frames++ })
	e.renderFrame(0.016)

	if r.draws != 1 || len(r.uniforms) != 1 {
		t.Fatalf("draws = %d, uniforms = %d, want 1 and 1", r.draws, len(r.uniforms))
	}
	if r.uniforms[0].ViewProj != cam.ViewProjectionMatrix() {
		t.Error("uploaded uniform does not match the camera")
	}
	if frames != 1 {
		t.Errorf("render callback calls = %d, want 1", frames)
	}

	r.err = errors.New("surface outdated")
	e.renderFrame(0.016)
	if frames != 2 {
		t.Error("render callback skipped after a failed draw")
	}
}

func TestResize(t *testing.T) {
	r := &fakeRenderer{}
	cam := camera.NewCamera()
	e := newHeadless(t, WithRenderer(r), WithCamera(cam))

	e.resize(1600, 800)
	e.resize(0, 0)

	if len(r.resizes) != 1 || r.resizes[0] != [2]int{1600, 800} {
		t.Errorf("resizes = %v, want [[1600 800]]", r.resizes)
	}
	if cam.Aspect() != 2 {
		t.Errorf("Aspect = %v, want 2", cam.Aspect())
	}
}

func TestRunHeadlessUntilQuit(t *testing.T) {
	r := &fakeRenderer{}
	e := newHeadless(t, WithRenderer(r), WithTickRate(1000), WithRenderFrameLimit(1000))

	ticked := make(chan struct{}, 1)
	e.SetTickCallback(func(float32) {
		select {
		case ticked <- struct{}{}:
		default:
		}
	})

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()

	select {
	case <-ticked:
	case <-time.After(5 * time.Second):
		t.Fatal("engine never ticked")
	}
	e.Quit()
	e.Quit()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Quit")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.released {
		t.Error("renderer not released on shutdown")
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		fps  float64
		want time.Duration
	}{
		{60, time.Second / 60},
		{0, time.Second / 60},
		{-5, time.Second / 60},
		{144, time.Duration(float64(time.Second) / 144)},
	}
	for _, tt := range tests {
		if got := tickInterval(tt.fps); got != tt.want {
			t.Errorf("tickInterval(%v) = %v, want %v", tt.fps, got, tt.want)
		}
	}

	e := newHeadless(t)
	e.SetTickRate(30)
	if e.engineTickRate != time.Second/30 {
		t.Errorf("engineTickRate = %v, want %v", e.engineTickRate, time.Second/30)
	}
}
