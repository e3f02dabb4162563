package orbit

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"

	"github.com/go-gl/mathgl/mgl32"
)

// Transform is the spatial state of a camera entity: a world-space translation and orientation.
// The local axes follow the usual right-handed view convention: +X right, +Y up and +Z pointing
// away from whatever the transform looks at.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
}

// NewTransform creates a transform at translation with identity rotation.
//
// Parameters:
//   - translation: world-space position
//
// Returns:
//   - Transform: the new transform
func NewTransform(translation mgl32.Vec3) Transform {
	return Transform{
		Translation: translation,
		Rotation:    mgl32.QuatIdent(),
	}
}

// LookingAt returns a copy of the transform oriented toward target.
//
// Parameters:
//   - target: world-space point to face
//   - up: approximate up direction
//
// Returns:
//   - Transform: the re-oriented copy
func (t Transform) LookingAt(target, up mgl32.Vec3) Transform {
	t.LookAt(target, up)
	return t
}

// LookAt rotates the transform so its local -Z axis points at target with local +Y as close to up
// as possible. The rotation is left untouched when target coincides with the translation or when
// the view direction is parallel to up, since neither case defines a basis.
//
// Parameters:
//   - target: world-space point to face
//   - up: approximate up direction
func (t *Transform) LookAt(target, up mgl32.Vec3) {
	back, ok := common.NormalizeOrZero(t.Translation.Sub(target))
	if !ok {
		return
	}
	right, ok := common.NormalizeOrZero(up.Cross(back))
	if !ok {
		return
	}
	trueUp := back.Cross(right)
	t.Rotation = mgl32.Mat4ToQuat(mgl32.Mat3FromCols(right, trueUp, back).Mat4()).Normalize()
}

// Right returns the local +X axis in world space.
func (t *Transform) Right() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
}

// Up returns the local +Y axis in world space.
func (t *Transform) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
}

// Back returns the local +Z axis in world space (opposite the view direction).
func (t *Transform) Back() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, 1})
}

// Matrix returns the local-to-world matrix (translation * rotation).
//
// Returns:
//   - mgl32.Mat4: the column-major model matrix
func (t *Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z()).Mul4(t.Rotation.Mat4())
}
