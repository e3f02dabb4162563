package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyR     = 82  // R key (ASCII)
	KeySpace = 32  // Spacebar (ASCII)
	KeyEsc   = 256 // Escape key (GLFW)
)

// MouseButton identifies a pointer button. The set is closed: buttons are compared by value
// and any code outside the known range is ignored by the input layer.
type MouseButton uint8

// Mouse button codes. Values match GLFW's MouseButton1..3 so window callbacks can convert directly.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#MouseButton
const (
	MouseButtonPrimary   MouseButton = 0 // left button
	MouseButtonSecondary MouseButton = 1 // right button
	MouseButtonTertiary  MouseButton = 2 // middle button

	mouseButtonCount = 3
)

// Valid reports whether b is one of the known mouse buttons.
//
// Returns:
//   - bool: true for primary, secondary and tertiary
func (b MouseButton) Valid() bool {
	return b < mouseButtonCount
}

// String returns the lowercase name of the button.
func (b MouseButton) String() string {
	switch b {
	case MouseButtonPrimary:
		return "primary"
	case MouseButtonSecondary:
		return "secondary"
	case MouseButtonTertiary:
		return "tertiary"
	default:
		return "unknown"
	}
}

// ParseMouseButton converts a button name to a MouseButton.
// Accepts the canonical names and the physical aliases "left", "right" and "middle".
//
// Parameters:
//   - name: the button name (case sensitive, lowercase)
//
// Returns:
//   - MouseButton: the parsed button
//   - bool: false if the name is not recognized
func ParseMouseButton(name string) (MouseButton, bool) {
	switch name {
	case "primary", "left":
		return MouseButtonPrimary, true
	case "secondary", "right":
		return MouseButtonSecondary, true
	case "tertiary", "middle":
		return MouseButtonTertiary, true
	default:
		return 0, false
	}
}
