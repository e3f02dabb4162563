package renderer

import (
	"github.com/Carmen-Shannon/oxy-orbit/engine/light"

	"github.com/cogentcore/webgpu/wgpu"
)

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*rendererImpl)

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option to a renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *rendererImpl) {
		r.presentMode = mode
	}
}

// WithMSAA sets the multisample anti-aliasing sample count. Defaults to MSAA4x.
//
// Parameters:
//   - count: MSAAOff or MSAA4x
//
// Returns:
//   - RendererBuilderOption: a function that applies the MSAA option to a renderer
func WithMSAA(count MSAASampleCount) RendererBuilderOption {
	return func(r *rendererImpl) {
		r.msaa = count
	}
}

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback adapter. Requires a software
// Vulkan ICD such as lavapipe to be installed.
//
// Parameters:
//   - force: true to force the software fallback adapter
//
// Returns:
//   - RendererBuilderOption: a function that applies the option to a renderer
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *rendererImpl) {
		r.forceFallbackAdapter = force
	}
}

// WithClearColor sets the background color.
//
// Parameters:
//   - red, green, blue: color channels in [0, 1]
//
// Returns:
//   - RendererBuilderOption: a function that applies the clear color to a renderer
func WithClearColor(red, green, blue float64) RendererBuilderOption {
	return func(r *rendererImpl) {
		r.clearColor = wgpu.Color{R: red, G: green, B: blue, A: 1.0}
	}
}

// WithMesh replaces the default cube with custom geometry.
//
// Parameters:
//   - mesh: the geometry to draw
//
// Returns:
//   - RendererBuilderOption: a function that applies the mesh to a renderer
func WithMesh(mesh Mesh) RendererBuilderOption {
	return func(r *rendererImpl) {
		r.meshData = mesh
	}
}

// WithLight sets the initial point light.
//
// Parameters:
//   - l: the light whose uniform is uploaded at construction
//
// Returns:
//   - RendererBuilderOption: a function that applies the light to a renderer
func WithLight(l light.Light) RendererBuilderOption {
	return func(r *rendererImpl) {
		r.light = l.Uniform()
	}
}
