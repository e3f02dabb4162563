// Package renderer draws the demo scene: a single lit mesh viewed through the orbit camera.
package renderer

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/light"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed assets/lit.wgsl
var litShaderSource string

// LitShaderSource returns the complete lit shader: the camera uniform struct followed by the lit stages.
//
// Returns:
//   - string: WGSL source
func LitShaderSource() string {
	return camera.GPUCameraUniformSource + "\n" + litShaderSource
}

// Surface is the window-side collaborator the renderer presents into.
type Surface interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	Width() int
	Height() int
}

// rendererImpl is the implementation of the Renderer interface.
type rendererImpl struct {
	mu      *sync.Mutex
	backend rendererBackend

	pipeline litPipeline
	mesh     meshBuffers

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	presentMode          PresentMode
	msaa                 MSAASampleCount
	clearColor           wgpu.Color
	meshData             Mesh
	light                light.GPULight
}

// Renderer draws one lit mesh per frame using the most recent camera uniform.
type Renderer interface {
	// WriteCamera uploads the camera uniform used by the next frame.
	//
	// Parameters:
	//   - u: the camera uniform, typically camera.Camera.Uniform()
	WriteCamera(u camera.GPUCameraUniform)

	// SetLight uploads new point light parameters.
	//
	// Parameters:
	//   - u: the light uniform, typically light.Light.Uniform()
	SetLight(u light.GPULight)

	// Resize reconfigures the surface for a new window size.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// DrawFrame clears the surface, draws the mesh and presents.
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	DrawFrame() error

	// Release frees all GPU resources. The renderer must not be used afterwards.
	Release()
}

var _ Renderer = &rendererImpl{}

// NewRenderer creates a WebGPU renderer presenting into surface. Panics if the adapter, device or
// pipeline cannot be created, since nothing can be drawn without them.
//
// Parameters:
//   - surface: the window to present into
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a ready-to-draw renderer
func NewRenderer(surface Surface, options ...RendererBuilderOption) Renderer {
	r := &rendererImpl{
		mu:          &sync.Mutex{},
		presentMode: PresentModeVSync,
		msaa:        MSAA4x,
		clearColor:  wgpu.Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0},
		meshData:    CubeMesh(2, mgl32.Vec3{0.8, 0.7, 0.6}),
		light:       light.NewLight().Uniform(),
	}

	// Options first so forceFallbackAdapter is known before the adapter is requested.
	for _, opt := range options {
		opt(r)
	}

	backend := newWGPURendererBackend(surface.SurfaceDescriptor(), r.forceFallbackAdapter, r.msaa)
	backend.SetPresentMode(r.presentMode)
	backend.SetClearColor(r.clearColor)
	backend.ConfigureSurface(surface.Width(), surface.Height())
	r.backend = backend

	if err := r.init(); err != nil {
		panic(fmt.Sprintf("failed to initialize renderer: %v", err))
	}
	return r
}

// init creates the pipeline and uploads the mesh and initial light.
func (r *rendererImpl) init() error {
	var cam camera.GPUCameraUniform
	p, err := r.backend.CreateLitPipeline(LitShaderSource(), uint64(cam.Size()), uint64(r.light.Size()))
	if err != nil {
		return err
	}
	r.pipeline = p

	mesh, err := r.backend.CreateMeshBuffers("Mesh", r.meshData)
	if err != nil {
		return fmt.Errorf("failed to upload mesh: %w", err)
	}
	r.mesh = mesh

	r.backend.WriteBuffer(r.pipeline.lightBuffer, r.light.Marshal())
	return nil
}

func (r *rendererImpl) WriteCamera(u camera.GPUCameraUniform) {
	r.backend.WriteBuffer(r.pipeline.cameraBuffer, u.Marshal())
}

func (r *rendererImpl) SetLight(u light.GPULight) {
	r.mu.Lock()
	r.light = u
	r.mu.Unlock()
	r.backend.WriteBuffer(r.pipeline.lightBuffer, u.Marshal())
}

func (r *rendererImpl) Resize(width, height int) {
	r.backend.ConfigureSurface(width, height)
}

func (r *rendererImpl) DrawFrame() error {
	if err := r.backend.BeginFrame(); err != nil {
		return err
	}
	r.backend.Draw(r.pipeline, r.mesh)
	r.backend.EndFrame()
	r.backend.Present()
	return nil
}

func (r *rendererImpl) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, buf := range []*wgpu.Buffer{r.mesh.vertex, r.mesh.index, r.pipeline.cameraBuffer, r.pipeline.lightBuffer} {
		if buf != nil {
			buf.Release()
		}
	}
	if r.pipeline.bindGroup != nil {
		r.pipeline.bindGroup.Release()
	}
	if r.pipeline.pipeline != nil {
		r.pipeline.pipeline.Release()
	}
	r.backend.Release()
}
