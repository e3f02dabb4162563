package renderer

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	PresentModeUncapped
)

// MSAASampleCount controls the number of samples used for multisample anti-aliasing.
// WebGPU guarantees support for 1 (off) and 4.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing.
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4x multisample anti-aliasing. This is the default.
	MSAA4x MSAASampleCount = 4
)

// litPipeline groups the GPU objects needed to draw one lit mesh.
type litPipeline struct {
	pipeline     *wgpu.RenderPipeline
	bindGroup    *wgpu.BindGroup
	cameraBuffer *wgpu.Buffer
	lightBuffer  *wgpu.Buffer
}

// meshBuffers holds the uploaded geometry of one mesh.
type meshBuffers struct {
	vertex     *wgpu.Buffer
	index      *wgpu.Buffer
	indexCount uint32
}

// rendererBackend is the GPU API surface the renderer drives. The only implementation is WebGPU.
type rendererBackend interface {
	// ConfigureSurface (re)configures the swapchain and the depth/MSAA targets for a new size.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	ConfigureSurface(width, height int)

	// SetPresentMode sets the present mode used by the next ConfigureSurface.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// SetClearColor sets the color the main pass clears to.
	//
	// Parameters:
	//   - color: the clear color
	SetClearColor(color wgpu.Color)

	// CreateMeshBuffers uploads a mesh's vertex and index data.
	//
	// Parameters:
	//   - label: debug label prefix
	//   - mesh: the geometry to upload
	//
	// Returns:
	//   - meshBuffers: the created GPU buffers
	//   - error: an error if buffer creation fails
	CreateMeshBuffers(label string, mesh Mesh) (meshBuffers, error)

	// CreateLitPipeline compiles the lit shader and creates its uniform buffers and bind group.
	//
	// Parameters:
	//   - source: complete WGSL source with vs_main and fs_main entry points
	//   - cameraSize: camera uniform size in bytes
	//   - lightSize: light uniform size in bytes
	//
	// Returns:
	//   - litPipeline: the created pipeline objects
	//   - error: an error if shader compilation or pipeline creation fails
	CreateLitPipeline(source string, cameraSize, lightSize uint64) (litPipeline, error)

	// WriteBuffer queues a write of data into buf at offset 0.
	//
	// Parameters:
	//   - buf: the destination buffer
	//   - data: the bytes to write
	WriteBuffer(buf *wgpu.Buffer, data []byte)

	// BeginFrame acquires the next swapchain texture and begins the main render pass.
	// Must be paired with EndFrame.
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	BeginFrame() error

	// Draw encodes an indexed draw of mesh with p inside the current render pass.
	//
	// Parameters:
	//   - p: the pipeline and bind group to use
	//   - mesh: the geometry to draw
	Draw(p litPipeline, mesh meshBuffers)

	// EndFrame ends the render pass and submits the command buffer.
	EndFrame()

	// Present presents the surface and releases the swapchain texture.
	Present()

	// Release frees every GPU object owned by the backend.
	Release()
}
