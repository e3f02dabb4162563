// Package orbit maps accumulated pointer input onto an orbiting camera.
//
// An OrbitCamera holds the spherical state (yaw, pitch, distance) around a pivot point and the
// tuning that converts pointer deltas into that state. Each frame the embedding application calls
// Update (or OrbitCamera.Step for a single camera) with the frame's input and elapsed time; the
// controller rewrites the paired Transform so the camera sits on the orbit sphere looking at the pivot.
//
// The package is purely numeric: it holds no locks, starts no goroutines and never fails.
package orbit

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"

	"github.com/go-gl/mathgl/mgl32"
)

// Pitch limits in radians. Pitch is measured from the +Y axis, so the limits keep the camera just
// short of straight overhead and straight underneath where the look-at basis degenerates.
const (
	MinPitch float32 = 0.01
	MaxPitch float32 = 3.13
)

// Default tuning used by DefaultOrbitCamera and NewOrbitCamera.
const (
	DefaultDistance          float32 = 5.0
	DefaultRotateSensitivity float32 = 1.0
	DefaultPanSensitivity    float32 = 1.0
	DefaultZoomSensitivity   float32 = 0.8
)

var (
	worldUp   = mgl32.Vec3{0, 1, 0}
	pitchAxis = mgl32.Vec3{-1, 0, 0}
)

// OrbitCamera is the per-camera controller state. It is a plain value type: the embedding
// application owns it (directly, or as an ECS component) and the update functions mutate it in place.
type OrbitCamera struct {
	// Yaw is the horizontal orbit angle around +Y in radians.
	Yaw float32
	// Pitch is the angle from +Y in radians, kept within [MinPitch, MaxPitch] while rotating.
	Pitch float32
	// Distance is the orbit radius. Zoom scales it multiplicatively so it stays positive.
	Distance float32
	// Center is the world-space pivot the camera orbits and looks at.
	Center mgl32.Vec3

	RotateSensitivity float32
	PanSensitivity    float32
	// ZoomSensitivity is the base of the exponential zoom. Values below 1 zoom in on positive scroll.
	ZoomSensitivity float32

	// RotateButton and PanButton should differ; holding a button bound to both applies both.
	RotateButton common.MouseButton
	PanButton    common.MouseButton

	// Enabled gates every update. Disabled cameras are never mutated.
	Enabled bool
}

// DefaultOrbitCamera returns an enabled camera orbiting the origin at distance 5 with unit
// rotate/pan sensitivity, zoom sensitivity 0.8, rotate on the primary button and pan on the secondary.
//
// Returns:
//   - OrbitCamera: the default controller state
func DefaultOrbitCamera() OrbitCamera {
	return OrbitCamera{
		Distance:          DefaultDistance,
		Center:            mgl32.Vec3{0, 0, 0},
		RotateSensitivity: DefaultRotateSensitivity,
		PanSensitivity:    DefaultPanSensitivity,
		ZoomSensitivity:   DefaultZoomSensitivity,
		RotateButton:      common.MouseButtonPrimary,
		PanButton:         common.MouseButtonSecondary,
		Enabled:           true,
	}
}

// NewOrbitCamera creates a camera with the default tuning, seeded with an orbit distance and pivot.
// Options are applied after the seed values.
//
// Parameters:
//   - distance: initial orbit radius (should be > 0)
//   - center: initial pivot point
//   - options: functional options to adjust tuning
//
// Returns:
//   - OrbitCamera: the configured controller state
func NewOrbitCamera(distance float32, center mgl32.Vec3, options ...OrbitCameraOption) OrbitCamera {
	c := DefaultOrbitCamera()
	c.Distance = distance
	c.Center = center
	for _, option := range options {
		option(&c)
	}
	return c
}

// Rotation returns the orbit rotation Ry(yaw) * Rx(-pitch).
//
// Returns:
//   - mgl32.Quat: the composed orbit rotation
func (c *OrbitCamera) Rotation() mgl32.Quat {
	return mgl32.QuatRotate(c.Yaw, worldUp).Mul(mgl32.QuatRotate(c.Pitch, pitchAxis))
}

// OrbitPosition returns the world-space point on the orbit sphere for the current angles and distance.
//
// Returns:
//   - mgl32.Vec3: center + rotation * (0,1,0) * distance
func (c *OrbitCamera) OrbitPosition() mgl32.Vec3 {
	return c.Rotation().Rotate(worldUp).Mul(c.Distance).Add(c.Center)
}

// Place snaps tf onto the orbit sphere and orients it toward the pivot. Pitch is clamped first.
// Used when attaching a controller to a camera spawned elsewhere, and by the rotation updater.
//
// Parameters:
//   - tf: the transform to overwrite
func (c *OrbitCamera) Place(tf *Transform) {
	c.Pitch = common.Clamp(c.Pitch, MinPitch, MaxPitch)
	tf.Translation = c.OrbitPosition()
	tf.LookAt(c.Center, worldUp)
}
