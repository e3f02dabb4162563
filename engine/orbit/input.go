package orbit

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"

	"github.com/go-gl/mathgl/mgl32"
)

// PixelToLineRatio converts pixel-unit scroll deltas into line units.
const PixelToLineRatio float32 = 0.1

// ScrollUnit tags how a wheel delta was reported.
type ScrollUnit uint8

const (
	// ScrollUnitLine is a delta measured in lines (notched wheels).
	ScrollUnitLine ScrollUnit = iota
	// ScrollUnitPixel is a delta measured in pixels (touchpads, smooth wheels).
	ScrollUnitPixel
)

// Lines returns the number of lines a delta of v in this unit represents.
//
// Parameters:
//   - v: the raw delta
//
// Returns:
//   - float32: the delta in line units
func (u ScrollUnit) Lines(v float32) float32 {
	if u == ScrollUnitPixel {
		return v * PixelToLineRatio
	}
	return v
}

// MouseMotion is a single relative pointer movement in screen pixels (+Y down).
type MouseMotion struct {
	Delta mgl32.Vec2
}

// MouseWheel is a single scroll event. Y is the vertical component (positive = away from the user).
type MouseWheel struct {
	Unit ScrollUnit
	X, Y float32
}

// ButtonSet is the set of mouse buttons currently held.
type ButtonSet uint8

// Buttons builds a set from the given buttons. Invalid buttons are ignored.
//
// Parameters:
//   - buttons: the held buttons
//
// Returns:
//   - ButtonSet: the set
func Buttons(buttons ...common.MouseButton) ButtonSet {
	var s ButtonSet
	for _, b := range buttons {
		s = s.With(b)
	}
	return s
}

// With returns the set with b added.
func (s ButtonSet) With(b common.MouseButton) ButtonSet {
	if !b.Valid() {
		return s
	}
	return s | 1<<b
}

// Without returns the set with b removed.
func (s ButtonSet) Without(b common.MouseButton) ButtonSet {
	if !b.Valid() {
		return s
	}
	return s &^ (1 << b)
}

// Pressed reports whether b is held.
func (s ButtonSet) Pressed(b common.MouseButton) bool {
	return b.Valid() && s&(1<<b) != 0
}

// FrameInput is everything the controller reads for one frame: every motion and wheel event
// reported since the previous frame plus the buttons held now.
type FrameInput struct {
	Motion  []MouseMotion
	Wheel   []MouseWheel
	Buttons ButtonSet
}

// SumMotion adds up the deltas of all motion events.
//
// Parameters:
//   - events: the frame's motion events
//
// Returns:
//   - mgl32.Vec2: the total pointer delta
func SumMotion(events []MouseMotion) mgl32.Vec2 {
	var total mgl32.Vec2
	for _, e := range events {
		total = total.Add(e.Delta)
	}
	return total
}

// SumScroll adds up the vertical components of all wheel events in line units.
// Pixel deltas are scaled by PixelToLineRatio; line deltas pass through.
//
// Parameters:
//   - events: the frame's wheel events
//
// Returns:
//   - float32: the total scroll in lines
func SumScroll(events []MouseWheel) float32 {
	var total float32
	for _, e := range events {
		total += e.Unit.Lines(e.Y)
	}
	return total
}
