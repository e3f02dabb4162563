package orbit

import "github.com/Carmen-Shannon/oxy-orbit/common"

// OrbitCameraOption is a functional option for configuring an OrbitCamera.
type OrbitCameraOption func(*OrbitCamera)

// WithYaw sets the initial horizontal orbit angle.
//
// Parameters:
//   - yaw: angle around +Y in radians
//
// Returns:
//   - OrbitCameraOption: functional option to set the yaw
func WithYaw(yaw float32) OrbitCameraOption {
	return func(c *OrbitCamera) {
		c.Yaw = yaw
	}
}

// WithPitch sets the initial vertical orbit angle. It is not clamped until the camera first rotates.
//
// Parameters:
//   - pitch: angle from +Y in radians
//
// Returns:
//   - OrbitCameraOption: functional option to set the pitch
func WithPitch(pitch float32) OrbitCameraOption {
	return func(c *OrbitCamera) {
		c.Pitch = pitch
	}
}

// WithRotateSensitivity sets the multiplier applied to pointer motion while rotating.
//
// Parameters:
//   - sensitivity: radians per pixel per second
//
// Returns:
//   - OrbitCameraOption: functional option to set rotate sensitivity
func WithRotateSensitivity(sensitivity float32) OrbitCameraOption {
	return func(c *OrbitCamera) {
		c.RotateSensitivity = sensitivity
	}
}

// WithPanSensitivity sets the multiplier applied to pointer motion while panning.
//
// Parameters:
//   - sensitivity: world units per pixel per second
//
// Returns:
//   - OrbitCameraOption: functional option to set pan sensitivity
func WithPanSensitivity(sensitivity float32) OrbitCameraOption {
	return func(c *OrbitCamera) {
		c.PanSensitivity = sensitivity
	}
}

// WithZoomSensitivity sets the base of the exponential zoom. Zero or negative values disable zooming.
//
// Parameters:
//   - sensitivity: distance factor per scroll line, must be positive (< 1 zooms in on positive scroll)
//
// Returns:
//   - OrbitCameraOption: functional option to set zoom sensitivity
func WithZoomSensitivity(sensitivity float32) OrbitCameraOption {
	return func(c *OrbitCamera) {
		c.ZoomSensitivity = sensitivity
	}
}

// WithRotateButton binds rotation to a mouse button.
//
// Parameters:
//   - button: the button that rotates while held
//
// Returns:
//   - OrbitCameraOption: functional option to set the rotate button
func WithRotateButton(button common.MouseButton) OrbitCameraOption {
	return func(c *OrbitCamera) {
		c.RotateButton = button
	}
}

// WithPanButton binds panning to a mouse button.
//
// Parameters:
//   - button: the button that pans while held
//
// Returns:
//   - OrbitCameraOption: functional option to set the pan button
func WithPanButton(button common.MouseButton) OrbitCameraOption {
	return func(c *OrbitCamera) {
		c.PanButton = button
	}
}

// WithEnabled sets whether the camera responds to input.
//
// Parameters:
//   - enabled: false to freeze the camera
//
// Returns:
//   - OrbitCameraOption: functional option to set the enabled flag
func WithEnabled(enabled bool) OrbitCameraOption {
	return func(c *OrbitCamera) {
		c.Enabled = enabled
	}
}
