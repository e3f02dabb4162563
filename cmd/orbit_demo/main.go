// Command orbit_demo opens a window showing a lit cube and a camera driven by the orbit controller.
//
// Drag with the left button to orbit, the right button to pan, and scroll to zoom.
// Space toggles the controller and R resets the view. Escape quits.
package main

import (
	"flag"
	"log"
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/config"
	"github.com/Carmen-Shannon/oxy-orbit/engine/ecs"
	"github.com/Carmen-Shannon/oxy-orbit/engine/light"
	"github.com/Carmen-Shannon/oxy-orbit/engine/orbit"
	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer"
	"github.com/Carmen-Shannon/oxy-orbit/engine/window"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

func main() {
	configPath := flag.String("config", "", "YAML orbit tuning file, reloaded on change")
	profile := flag.Bool("profile", false, "log frame rate and memory statistics")
	software := flag.Bool("software", false, "force the software fallback adapter")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("[Config] %v", err)
		}
		cfg = loaded
	}

	// ── Window + Renderer ───────────────────────────────────────────
	win := window.NewWindow(
		window.WithTitle("Oxy Orbit"),
		window.WithSize(1280, 720),
		window.WithSizeLimits(320, 240, 3840, 2160),
	)
	r := renderer.NewRenderer(win,
		renderer.WithPresentMode(renderer.PresentModeVSync),
		renderer.WithMesh(renderer.CubeMesh(2, mgl32.Vec3{0.8, 0.7, 0.6})),
		renderer.WithLight(light.NewLight(light.WithPosition(4, 8, 4))),
		renderer.WithForceSoftwareRenderer(*software),
	)

	// ── Camera ──────────────────────────────────────────────────────
	spawn := orbit.NewTransform(mgl32.Vec3{-3, 3, 5}).LookingAt(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	cam := camera.NewCamera(
		camera.WithFov(float32(45.0*math.Pi/180.0)),
		camera.WithNear(0.1),
		camera.WithFar(1000),
		camera.WithTransform(spawn),
	)

	eng := engine.NewEngine(
		engine.WithProfiling(*profile),
		engine.WithTickRate(60),
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithCamera(cam),
	)

	// ── Orbit controller ────────────────────────────────────────────
	initial := cfg.NewOrbitCamera()
	entity := ecs.SpawnOrbitCamera(eng.World(), initial, spawn)
	eng.AddSystem(ecs.NewOrbitSystem())
	eng.AddSystem(ecs.NewCameraSyncSystem(entity, cam))

	var reloads <-chan string
	var watchErrors <-chan error
	if *configPath != "" {
		watcher, err := config.NewWatcher(*configPath)
		if err != nil {
			log.Printf("[Config] hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
			reloads = watcher.Events
			watchErrors = watcher.Errors
		}
	}

	// Key events arrive on the window thread; the world is only touched from the tick.
	keys := make(chan uint32, 16)
	win.SetKeyDownCallback(func(keyCode uint32) {
		select {
		case keys <- keyCode:
		default:
		}
	})

	eng.SetTickCallback(func(float32) {
		for {
			select {
			case key := <-keys:
				handleKey(eng.World(), cam, key, initial, spawn)
			case path := <-reloads:
				reload(eng, path)
			case err := <-watchErrors:
				log.Printf("[Config] watch error: %v", err)
			default:
				return
			}
		}
	})

	eng.Run()
}

// handleKey toggles the controller on Space and restores the initial view on R. The tick callback
// runs after the camera sync system, so a reset pose is pushed to the render camera directly.
func handleKey(w donburi.World, sink ecs.TransformSink, key uint32, initial orbit.OrbitCamera, spawn orbit.Transform) {
	switch key {
	case common.KeySpace:
		ecs.EachOrbitCamera(w, func(c *orbit.OrbitCamera, _ *orbit.Transform) {
			c.Enabled = !c.Enabled
			log.Printf("[Orbit] controller enabled: %t", c.Enabled)
		})
	case common.KeyR:
		ecs.EachOrbitCamera(w, func(c *orbit.OrbitCamera, tf *orbit.Transform) {
			*c = initial
			*tf = spawn
		})
		sink.SetTransform(spawn)
	}
}

// reload applies tuning from a changed config file to every orbit camera.
func reload(eng engine.Engine, path string) {
	cfg, err := config.Load(path)
	if err != nil {
		log.Printf("[Config] reload failed, keeping previous tuning: %v", err)
		return
	}
	ecs.EachOrbitCamera(eng.World(), func(c *orbit.OrbitCamera, _ *orbit.Transform) {
		cfg.ApplyTuning(c)
	})
	log.Printf("[Config] reloaded %s", path)
}
