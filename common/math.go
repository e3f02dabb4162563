package common

import (
	"cmp"
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the squared-length threshold below which a vector is treated as degenerate.
const Epsilon = 1e-12

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// Clamp limits v to the closed range [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound
//   - hi: upper bound (must be >= lo)
//
// Returns:
//   - T: v limited to [lo, hi]
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// NormalizeOrZero returns the unit vector in the direction of v.
// If v is shorter than sqrt(Epsilon) the zero vector is returned along with false,
// so callers can pick a fallback direction instead of propagating NaN.
//
// Parameters:
//   - v: the vector to normalize
//
// Returns:
//   - mgl32.Vec3: the normalized vector, or zero
//   - bool: false if v is degenerate
func NormalizeOrZero(v mgl32.Vec3) (mgl32.Vec3, bool) {
	lenSq := float64(v.Dot(v))
	if lenSq < Epsilon || math.IsNaN(lenSq) {
		return mgl32.Vec3{}, false
	}
	return v.Mul(float32(1 / math.Sqrt(lenSq))), true
}

// Perspective creates a perspective projection matrix.
// Maps depth into the WebGPU clip space range [0, 1] (mgl32.Perspective targets OpenGL's [-1, 1]).
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the column-major projection matrix
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))

	var out mgl32.Mat4
	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	return out
}
