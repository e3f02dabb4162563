// Package input collects raw pointer events from the window thread and hands them to the
// simulation once per tick.
package input

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/orbit"

	"github.com/go-gl/mathgl/mgl32"
)

// Source is the subset of window callbacks the accumulator listens to.
// window.Window satisfies it.
type Source interface {
	// SetMouseButtonCallback registers the function called on mouse button press and release.
	SetMouseButtonCallback(callback func(button common.MouseButton, pressed bool))

	// SetMouseMoveCallback registers the function called with the absolute cursor position.
	SetMouseMoveCallback(callback func(x, y float64))

	// SetScrollCallback registers the function called with scroll offsets in lines.
	SetScrollCallback(callback func(xoff, yoff float32))
}

// Accumulator buffers pointer events between ticks.
// Event producers (window callbacks) and the consumer (the tick loop) may run on different threads.
type Accumulator interface {
	// Attach registers the accumulator's handlers on a window.
	//
	// Parameters:
	//   - src: the event source (typically a window.Window)
	Attach(src Source)

	// CursorMoved records an absolute cursor position. The delta from the previous position
	// is queued as a motion event; the first position only establishes the reference.
	//
	// Parameters:
	//   - x, y: cursor position in screen pixels
	CursorMoved(x, y float64)

	// Moved queues a relative motion event directly.
	//
	// Parameters:
	//   - dx, dy: pointer delta in screen pixels
	Moved(dx, dy float32)

	// ButtonChanged updates the held state of a mouse button. Unknown buttons are ignored.
	//
	// Parameters:
	//   - button: the button that changed
	//   - pressed: true on press, false on release
	ButtonChanged(button common.MouseButton, pressed bool)

	// Scrolled queues a wheel event.
	//
	// Parameters:
	//   - unit: the unit the offsets are reported in
	//   - x, y: horizontal and vertical scroll offsets
	Scrolled(unit orbit.ScrollUnit, x, y float32)

	// Buttons returns the buttons currently held.
	//
	// Returns:
	//   - orbit.ButtonSet: the held buttons
	Buttons() orbit.ButtonSet

	// Drain returns every motion and wheel event queued since the previous Drain together with the
	// current button state, and clears the queues. Each event is returned exactly once.
	//
	// Returns:
	//   - orbit.FrameInput: the frame's input
	Drain() orbit.FrameInput
}

type accumulatorImpl struct {
	mu *sync.Mutex

	motion  []orbit.MouseMotion
	wheel   []orbit.MouseWheel
	buttons orbit.ButtonSet

	lastX, lastY float64
	hasCursor    bool
}

var _ Accumulator = &accumulatorImpl{}

// NewAccumulator creates an empty accumulator with no buttons held.
//
// Returns:
//   - Accumulator: the new accumulator
func NewAccumulator() Accumulator {
	return &accumulatorImpl{
		mu: &sync.Mutex{},
	}
}

func (a *accumulatorImpl) Attach(src Source) {
	src.SetMouseButtonCallback(a.ButtonChanged)
	src.SetMouseMoveCallback(a.CursorMoved)
	src.SetScrollCallback(func(xoff, yoff float32) {
		a.Scrolled(orbit.ScrollUnitLine, xoff, yoff)
	})
}

func (a *accumulatorImpl) CursorMoved(x, y float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.hasCursor {
		dx := float32(x - a.lastX)
		dy := float32(y - a.lastY)
		if dx != 0 || dy != 0 {
			a.motion = append(a.motion, orbit.MouseMotion{Delta: mgl32.Vec2{dx, dy}})
		}
	}
	a.lastX, a.lastY = x, y
	a.hasCursor = true
}

func (a *accumulatorImpl) Moved(dx, dy float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.motion = append(a.motion, orbit.MouseMotion{Delta: mgl32.Vec2{dx, dy}})
}

func (a *accumulatorImpl) ButtonChanged(button common.MouseButton, pressed bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if pressed {
		a.buttons = a.buttons.With(button)
	} else {
		a.buttons = a.buttons.Without(button)
	}
}

func (a *accumulatorImpl) Scrolled(unit orbit.ScrollUnit, x, y float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.wheel = append(a.wheel, orbit.MouseWheel{Unit: unit, X: x, Y: y})
}

func (a *accumulatorImpl) Buttons() orbit.ButtonSet {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.buttons
}

func (a *accumulatorImpl) Drain() orbit.FrameInput {
	a.mu.Lock()
	defer a.mu.Unlock()
	frame := orbit.FrameInput{
		Motion:  a.motion,
		Wheel:   a.wheel,
		Buttons: a.buttons,
	}
	a.motion = nil
	a.wheel = nil
	return frame
}
