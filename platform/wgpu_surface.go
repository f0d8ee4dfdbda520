package platform

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// WGPUSurface is the presentation surface of a GLFW window. It satisfies
// rendiation.Surface so the camera resize module can reconfigure it, and owns
// the camera uniform buffer a render pass binds.
type WGPUSurface struct {
	surface *wgpu.Surface
	adapter *wgpu.Adapter
	device  *wgpu.Device
	queue   *wgpu.Queue
	config  wgpu.SurfaceConfiguration

	cameraBuffer *wgpu.Buffer
}

// cameraUniformSize is one column-major mat4x4<f32>.
const cameraUniformSize = 16 * 4

func NewWGPUSurface(win *glfw.Window, width, height uint32) (*WGPUSurface, error) {
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	surface := instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(win))
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		surface.Release()
		return nil, fmt.Errorf("request adapter: %w", err)
	}
	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{Label: "Main Device"})
	if err != nil {
		adapter.Release()
		surface.Release()
		return nil, fmt.Errorf("request device: %w", err)
	}

	caps := surface.GetCapabilities(adapter)
	if len(caps.Formats) == 0 || len(caps.AlphaModes) == 0 {
		device.Release()
		adapter.Release()
		surface.Release()
		return nil, fmt.Errorf("surface reports no formats for this adapter")
	}

	cameraBuffer, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Camera Uniform",
		Size:  cameraUniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		device.Release()
		adapter.Release()
		surface.Release()
		return nil, fmt.Errorf("camera buffer: %w", err)
	}

	s := &WGPUSurface{
		surface: surface,
		adapter: adapter,
		device:  device,
		queue:   device.GetQueue(),
		config: wgpu.SurfaceConfiguration{
			Usage:       wgpu.TextureUsageRenderAttachment,
			Format:      caps.Formats[0],
			PresentMode: wgpu.PresentModeFifo, // vsync
			AlphaMode:   caps.AlphaModes[0],
		},
		cameraBuffer: cameraBuffer,
	}
	s.Configure(width, height)
	return s, nil
}

// Configure resizes the swapchain. Zero sizes, reported while the window is
// minimized, are ignored.
func (s *WGPUSurface) Configure(width, height uint32) {
	if width == 0 || height == 0 {
		return
	}
	s.config.Width = width
	s.config.Height = height
	s.surface.Configure(s.adapter, s.device, &s.config)
}

func (s *WGPUSurface) Size() (uint32, uint32) {
	return s.config.Width, s.config.Height
}

// CameraBuffer is the uniform buffer holding the current view-projection.
func (s *WGPUSurface) CameraBuffer() *wgpu.Buffer {
	return s.cameraBuffer
}

// WriteViewProjection uploads viewProj to the camera uniform. mgl32 matrices are
// column-major like WGSL, so the layout is copied as is.
func (s *WGPUSurface) WriteViewProjection(viewProj mgl32.Mat4) error {
	if err := s.queue.WriteBuffer(s.cameraBuffer, 0, wgpu.ToBytes(viewProj[:])); err != nil {
		return fmt.Errorf("write camera uniform: %w", err)
	}
	return nil
}

// Clear renders one frame that only clears the swapchain image to the given
// color, then presents it.
func (s *WGPUSurface) Clear(c wgpu.Color) error {
	if s.config.Width == 0 || s.config.Height == 0 {
		return nil
	}
	next, err := s.surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("acquire frame: %w", err)
	}
	view, err := next.CreateView(nil)
	if err != nil {
		return fmt.Errorf("frame view: %w", err)
	}
	defer view.Release()

	encoder, err := s.device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("command encoder: %w", err)
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: c,
			},
		},
	})
	defer pass.Release()
	if err := pass.End(); err != nil {
		return fmt.Errorf("render pass: %w", err)
	}

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("finish encoder: %w", err)
	}
	defer cmd.Release()

	s.queue.Submit(cmd)
	s.surface.Present()
	return nil
}

func (s *WGPUSurface) Release() {
	if s.cameraBuffer != nil {
		s.cameraBuffer.Release()
	}
	if s.queue != nil {
		s.queue.Release()
	}
	if s.device != nil {
		s.device.Release()
	}
	if s.adapter != nil {
		s.adapter.Release()
	}
	if s.surface != nil {
		s.surface.Release()
	}
	*s = WGPUSurface{}
}
