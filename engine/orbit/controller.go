package orbit

import (
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/common"

	"github.com/go-gl/mathgl/mgl32"
)

// Rig pairs a controller with the transform it drives. Both are updated together within a frame.
type Rig struct {
	Camera    *OrbitCamera
	Transform *Transform
}

// Update runs one frame of orbit control for every rig. Motion and scroll are summed once and the
// same totals are applied to each enabled camera, rotation/pan first and zoom second.
//
// Parameters:
//   - frame: the input reported since the previous frame
//   - dt: elapsed seconds since the previous frame
//   - rigs: the cameras to update
func Update(frame FrameInput, dt float32, rigs ...Rig) {
	delta := SumMotion(frame.Motion)
	scroll := SumScroll(frame.Wheel)
	for _, r := range rigs {
		if r.Camera == nil || r.Transform == nil {
			continue
		}
		r.Camera.step(r.Transform, delta, scroll, frame.Buttons, dt)
	}
}

// Step runs one frame of orbit control for a single camera.
//
// Parameters:
//   - tf: the transform driven by this camera
//   - frame: the input reported since the previous frame
//   - dt: elapsed seconds since the previous frame
func (c *OrbitCamera) Step(tf *Transform, frame FrameInput, dt float32) {
	c.step(tf, SumMotion(frame.Motion), SumScroll(frame.Wheel), frame.Buttons, dt)
}

func (c *OrbitCamera) step(tf *Transform, delta mgl32.Vec2, scroll float32, buttons ButtonSet, dt float32) {
	c.RotatePan(tf, delta, buttons, dt)
	c.Zoom(tf, scroll)
}

// RotatePan applies a frame's summed pointer delta. While the rotate button is held the angles
// advance and the camera is re-placed on the orbit sphere. While the pan button is held the pivot
// and the camera translate together along the camera's local axes, so the offset between them is
// preserved. Both may apply in the same frame. Nothing changes when the camera is disabled, the
// delta is zero or neither button is held.
//
// Parameters:
//   - tf: the transform driven by this camera
//   - delta: summed pointer motion in pixels
//   - buttons: the buttons held this frame
//   - dt: elapsed seconds since the previous frame
func (c *OrbitCamera) RotatePan(tf *Transform, delta mgl32.Vec2, buttons ButtonSet, dt float32) {
	if !c.Enabled || delta == (mgl32.Vec2{}) {
		return
	}

	if buttons.Pressed(c.RotateButton) {
		c.Yaw -= delta.X() * c.RotateSensitivity * dt
		c.Pitch -= delta.Y() * c.RotateSensitivity * dt
		c.Place(tf)
	}

	if buttons.Pressed(c.PanButton) {
		// Drag-to-grab: the scene follows the pointer, so X pans along the local -X axis.
		right := tf.Rotation.Rotate(mgl32.Vec3{-1, 0, 0})
		up := tf.Rotation.Rotate(worldUp)
		pan := right.Mul(delta.X()).Add(up.Mul(delta.Y())).Mul(c.PanSensitivity * dt)
		c.Center = c.Center.Add(pan)
		tf.Translation = tf.Translation.Add(pan)
	}
}

// Zoom rescales the orbit distance by ZoomSensitivity^scroll and moves the camera along its current
// direction from the pivot. If the camera sits on the pivot the direction is undefined and the
// camera is re-placed from its orbit angles instead. A zero scroll total changes nothing, and so
// does a ZoomSensitivity that is not positive, since no finite distance follows from it.
//
// Parameters:
//   - tf: the transform driven by this camera
//   - scroll: summed scroll in line units
func (c *OrbitCamera) Zoom(tf *Transform, scroll float32) {
	if !c.Enabled || scroll == 0 || c.ZoomSensitivity <= 0 {
		return
	}

	c.Distance *= float32(math.Pow(float64(c.ZoomSensitivity), float64(scroll)))

	dir, ok := common.NormalizeOrZero(tf.Translation.Sub(c.Center))
	if !ok {
		c.Place(tf)
		return
	}
	tf.Translation = dir.Mul(c.Distance).Add(c.Center)
}
