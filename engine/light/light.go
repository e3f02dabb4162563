// Package light describes the point light that shades the demo scene.
package light

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	mu        *sync.Mutex
	position  mgl32.Vec3
	color     mgl32.Vec3
	intensity float32
	ambient   float32
}

// Light is a point light with inverse-square falloff plus a flat ambient term.
// Safe for concurrent use.
type Light interface {
	// Position returns the world-space position of the light.
	//
	// Returns:
	//   - mgl32.Vec3: position
	Position() mgl32.Vec3

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - mgl32.Vec3: color as (r, g, b)
	Color() mgl32.Vec3

	// Intensity returns the scale applied before distance falloff.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// Ambient returns the fraction of surface color shown regardless of lighting.
	//
	// Returns:
	//   - float32: ambient term in [0, 1]
	Ambient() float32

	// SetPosition moves the light.
	//
	// Parameters:
	//   - position: the new world-space position
	SetPosition(position mgl32.Vec3)

	// Uniform returns the GPU representation of the light.
	//
	// Returns:
	//   - GPULight: the uniform ready to marshal
	Uniform() GPULight
}

var _ Light = &lightImpl{}

// NewLight creates a white point light at (4, 8, 4) with intensity 100 and ambient 0.1.
//
// Parameters:
//   - options: functional options to configure the light
//
// Returns:
//   - Light: the configured light
func NewLight(options ...LightBuilderOption) Light {
	l := &lightImpl{
		mu:        &sync.Mutex{},
		position:  mgl32.Vec3{4, 8, 4},
		color:     mgl32.Vec3{1, 1, 1},
		intensity: 100,
		ambient:   0.1,
	}
	for _, opt := range options {
		opt(l)
	}
	return l
}

func (l *lightImpl) Position() mgl32.Vec3 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.position
}

func (l *lightImpl) Color() mgl32.Vec3 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.intensity
}

func (l *lightImpl) Ambient() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ambient
}

func (l *lightImpl) SetPosition(position mgl32.Vec3) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.position = position
}

func (l *lightImpl) Uniform() GPULight {
	l.mu.Lock()
	defer l.mu.Unlock()
	return GPULight{
		Position:  l.position,
		Intensity: l.intensity,
		Color:     l.color,
		Ambient:   l.ambient,
	}
}
