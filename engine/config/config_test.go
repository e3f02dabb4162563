package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/orbit"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDefaultMatchesOrbitDefaults(t *testing.T) {
	got := Default().NewOrbitCamera()
	want := orbit.DefaultOrbitCamera()
	if got != want {
		t.Errorf("Default().NewOrbitCamera() = %+v, want %+v", got, want)
	}
}

func TestParse(t *testing.T) {
	doc := `
distance: 8
center: {x: 1, y: 2, z: 3}
yaw: 0.5
pitch: 1.2
rotate_sensitivity: 0.25
zoom_sensitivity: 0.9
rotate_button: left
pan_button: middle
enabled: false
`
	c, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cam := c.NewOrbitCamera()
	if cam.Distance != 8 {
		t.Errorf("Distance = %v, want 8", cam.Distance)
	}
	if cam.Center != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("Center = %v", cam.Center)
	}
	if cam.Yaw != 0.5 || cam.Pitch != 1.2 {
		t.Errorf("angles = (%v, %v), want (0.5, 1.2)", cam.Yaw, cam.Pitch)
	}
	if cam.RotateSensitivity != 0.25 {
		t.Errorf("RotateSensitivity = %v", cam.RotateSensitivity)
	}
	if cam.PanSensitivity != orbit.DefaultPanSensitivity {
		t.Errorf("PanSensitivity = %v, want default", cam.PanSensitivity)
	}
	if cam.ZoomSensitivity != 0.9 {
		t.Errorf("ZoomSensitivity = %v", cam.ZoomSensitivity)
	}
	if cam.RotateButton != common.MouseButtonPrimary || cam.PanButton != common.MouseButtonTertiary {
		t.Errorf("buttons = (%v, %v)", cam.RotateButton, cam.PanButton)
	}
	if cam.Enabled {
		t.Error("expected camera to be disabled")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", "distance: [1, 2"},
		{"negative distance", "distance: -1"},
		{"negative sensitivity", "zoom_sensitivity: -0.5"},
		{"unknown rotate button", "rotate_button: thumb"},
		{"unknown pan button", "pan_button: fourth"},
		{"empty", ""},
		{"blank", "  \n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tt.doc)
			}
		})
	}

	_, err := Parse([]byte("distance: -2"))
	if !errors.Is(err, errNegative) {
		t.Errorf("negative distance error = %v, want errNegative", err)
	}
	_, err = Parse(nil)
	if !errors.Is(err, errEmpty) {
		t.Errorf("empty document error = %v, want errEmpty", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.yaml")
	if err := os.WriteFile(path, []byte("distance: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Distance != 3 {
		t.Errorf("Distance = %v, want 3", c.Distance)
	}

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(empty); !errors.Is(err, errEmpty) {
		t.Errorf("Load(empty) error = %v, want errEmpty", err)
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestApplyTuningKeepsSphericalState(t *testing.T) {
	cam := orbit.NewOrbitCamera(7, mgl32.Vec3{1, 0, 0}, orbit.WithYaw(1), orbit.WithPitch(2))
	c, err := Parse([]byte("distance: 2\nyaw: 3\npan_sensitivity: 4\npan_button: primary\nenabled: false\n"))
	if err != nil {
		t.Fatal(err)
	}
	c.ApplyTuning(&cam)

	if cam.Distance != 7 || cam.Yaw != 1 || cam.Pitch != 2 || cam.Center != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("spherical state changed: %+v", cam)
	}
	if cam.PanSensitivity != 4 || cam.PanButton != common.MouseButtonPrimary || cam.Enabled {
		t.Errorf("tuning not applied: %+v", cam)
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orbit.yaml")
	other := filepath.Join(dir, "other.yaml")
	if err := os.WriteFile(path, []byte("distance: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(other, []byte("distance: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("distance: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got != path {
			t.Errorf("event for %q, want %q", got, path)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for write event")
	}
}

func TestWatcherWaitsForSaveToSettle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.yaml")
	if err := os.WriteFile(path, []byte("rotate_sensitivity: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cam := orbit.DefaultOrbitCamera()
	initial, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	initial.ApplyTuning(&cam)

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	// Truncate first, then write the new content well inside the debounce window.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(debounceWindow / 5)
	if _, err := f.WriteString("rotate_sensitivity: 0.5\npan_button: middle\n"); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		c, err := Load(got)
		if err != nil {
			t.Fatalf("Load after change: %v", err)
		}
		c.ApplyTuning(&cam)
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change event")
	}

	if cam.RotateSensitivity != 0.5 || cam.PanButton != common.MouseButtonTertiary {
		t.Errorf("applied tuning = %+v, want the final file contents", cam)
	}

	select {
	case got := <-w.Events:
		t.Errorf("unexpected second event for %q", got)
	case <-time.After(3 * debounceWindow):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Error("Events should be closed")
	}
}
