// Package config loads orbit camera tuning from YAML and watches the file for edits.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/orbit"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Vec3 is the YAML form of a point.
type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// Vec3 converts to the mgl32 form.
func (v Vec3) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// Config is the orbit tuning document. Zero or missing numeric fields fall back to the
// orbit package defaults; missing button names fall back to primary (rotate) and secondary (pan).
//
// Example:
//
//	distance: 8
//	center: {x: 0, y: 1, z: 0}
//	pitch: 1.2
//	rotate_sensitivity: 0.5
//	zoom_sensitivity: 0.9
//	rotate_button: left
//	pan_button: middle
type Config struct {
	Distance          float32 `yaml:"distance"`
	Center            Vec3    `yaml:"center"`
	Yaw               float32 `yaml:"yaw"`
	Pitch             float32 `yaml:"pitch"`
	RotateSensitivity float32 `yaml:"rotate_sensitivity"`
	PanSensitivity    float32 `yaml:"pan_sensitivity"`
	ZoomSensitivity   float32 `yaml:"zoom_sensitivity"`
	RotateButton      string  `yaml:"rotate_button"`
	PanButton         string  `yaml:"pan_button"`
	// Enabled is a pointer so an absent key keeps the camera enabled.
	Enabled *bool `yaml:"enabled"`

	rotateButton common.MouseButton
	panButton    common.MouseButton
}

var (
	errNegative = errors.New("must not be negative")
	errEmpty    = errors.New("empty document")
)

// Default returns the configuration equivalent to orbit.DefaultOrbitCamera.
//
// Returns:
//   - Config: the default document
func Default() Config {
	c := Config{}
	if err := c.normalize(); err != nil {
		panic(fmt.Sprintf("default config invalid: %v", err))
	}
	return c
}

// Load reads and parses the YAML file at path.
//
// Parameters:
//   - path: file system path to the YAML document
//
// Returns:
//   - Config: the parsed, defaulted configuration
//   - error: error if the file cannot be read or fails validation
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML document and applies defaults. A document with no content is an error,
// so a file caught mid-save never silently resets every value to its default.
//
// Parameters:
//   - data: the raw YAML bytes
//
// Returns:
//   - Config: the parsed, defaulted configuration
//   - error: error if the document is malformed or a value is out of range
func Parse(data []byte) (Config, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Config{}, fmt.Errorf("failed to decode yaml: %w", err)
	}
	if len(root.Content) == 0 {
		return Config{}, errEmpty
	}

	var c Config
	if err := root.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("failed to decode yaml: %w", err)
	}
	if err := c.normalize(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) normalize() error {
	checks := []struct {
		name  string
		value float32
	}{
		{"distance", c.Distance},
		{"rotate_sensitivity", c.RotateSensitivity},
		{"pan_sensitivity", c.PanSensitivity},
		{"zoom_sensitivity", c.ZoomSensitivity},
	}
	for _, check := range checks {
		if check.value < 0 {
			return fmt.Errorf("%s %v: %w", check.name, check.value, errNegative)
		}
	}

	c.Distance = common.Coalesce(c.Distance, orbit.DefaultDistance)
	c.RotateSensitivity = common.Coalesce(c.RotateSensitivity, orbit.DefaultRotateSensitivity)
	c.PanSensitivity = common.Coalesce(c.PanSensitivity, orbit.DefaultPanSensitivity)
	c.ZoomSensitivity = common.Coalesce(c.ZoomSensitivity, orbit.DefaultZoomSensitivity)
	c.RotateButton = common.Coalesce(c.RotateButton, common.MouseButtonPrimary.String())
	c.PanButton = common.Coalesce(c.PanButton, common.MouseButtonSecondary.String())
	if c.Enabled == nil {
		c.Enabled = common.Ptr(true)
	}

	var ok bool
	if c.rotateButton, ok = common.ParseMouseButton(c.RotateButton); !ok {
		return fmt.Errorf("unknown rotate_button %q", c.RotateButton)
	}
	if c.panButton, ok = common.ParseMouseButton(c.PanButton); !ok {
		return fmt.Errorf("unknown pan_button %q", c.PanButton)
	}
	return nil
}

// Options converts the document into orbit camera options. Distance and center are passed to
// orbit.NewOrbitCamera directly; see NewOrbitCamera.
//
// Returns:
//   - []orbit.OrbitCameraOption: options for angles, tuning, buttons and enabled state
func (c Config) Options() []orbit.OrbitCameraOption {
	return []orbit.OrbitCameraOption{
		orbit.WithYaw(c.Yaw),
		orbit.WithPitch(c.Pitch),
		orbit.WithRotateSensitivity(c.RotateSensitivity),
		orbit.WithPanSensitivity(c.PanSensitivity),
		orbit.WithZoomSensitivity(c.ZoomSensitivity),
		orbit.WithRotateButton(c.rotateButton),
		orbit.WithPanButton(c.panButton),
		orbit.WithEnabled(c.enabled()),
	}
}

// NewOrbitCamera builds a controller from the document.
//
// Returns:
//   - orbit.OrbitCamera: the configured controller state
func (c Config) NewOrbitCamera() orbit.OrbitCamera {
	return orbit.NewOrbitCamera(c.Distance, c.Center.Vec3(), c.Options()...)
}

// ApplyTuning copies sensitivities, button bindings and the enabled flag onto a live camera.
// The spherical state (angles, distance, pivot) is left alone so a reload does not jump the view.
//
// Parameters:
//   - cam: the camera to update
func (c Config) ApplyTuning(cam *orbit.OrbitCamera) {
	cam.RotateSensitivity = c.RotateSensitivity
	cam.PanSensitivity = c.PanSensitivity
	cam.ZoomSensitivity = c.ZoomSensitivity
	cam.RotateButton = c.rotateButton
	cam.PanButton = c.panButton
	cam.Enabled = c.enabled()
}

func (c Config) enabled() bool {
	return c.Enabled == nil || *c.Enabled
}
