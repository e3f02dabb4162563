package light

import (
	"unsafe"

	"github.com/Carmen-Shannon/oxy-orbit/common"

	"github.com/go-gl/mathgl/mgl32"
)

// GPULight is the point light uniform. Layout matches the WGSL Light struct:
// two vec3<f32> fields, each padded to 16 bytes.
type GPULight struct {
	Position  mgl32.Vec3
	Intensity float32
	Color     mgl32.Vec3
	Ambient   float32
}

// Size returns the size of the uniform in bytes.
//
// Returns:
//   - int: the byte size (32)
func (g *GPULight) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal converts the uniform into a byte slice for GPU upload.
//
// Returns:
//   - []byte: the raw uniform bytes
func (g *GPULight) Marshal() []byte {
	return common.SliceToBytes([]GPULight{*g})
}
