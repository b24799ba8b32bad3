package duskgfx

import (
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

// frameTexture bundles the acquired surface texture/view/encoder/pass for
// one frame, so Renderer can finish and present it without reaching back
// into WGPUDevice internals.
type frameTexture struct {
	surfaceTexture *wgpu.SurfaceTexture
	view           *wgpu.TextureView
	encoder        *wgpu.CommandEncoder
	pass           *wgpu.RenderPassEncoder
}

// AcquireFrame gets the current swapchain texture, begins a command
// encoder and a render pass cleared to clearColor, and returns a
// RenderPass ready for RenderState.Draw plus a finish callback. Failures
// are classified per errors.go: ErrSurfaceLost and ErrOutOfMemory are
// returned as such (the caller — Renderer — decides what to do), anything
// else comes back as ErrTransientRender.
func (d *WGPUDevice) AcquireFrame(clearColor Color) (RenderPass, func() error, error) {
	surfaceTexture, err := d.Surface.GetCurrentTexture()
	if err != nil {
		return nil, nil, classifySurfaceError(err)
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return nil, nil, &EngineError{Kind: ErrTransientRender, Detail: err.Error()}
	}

	encoder, err := d.Device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return nil, nil, &EngineError{Kind: ErrTransientRender, Detail: err.Error()}
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{R: float64(clearColor.R), G: float64(clearColor.G), B: float64(clearColor.B), A: float64(clearColor.A)},
			},
		},
	})

	ft := &frameTexture{surfaceTexture: surfaceTexture, view: view, encoder: encoder, pass: pass}

	finish := func() error {
		if err := pass.End(); err != nil {
			return &EngineError{Kind: ErrTransientRender, Detail: err.Error()}
		}
		pass.Release()

		cmdBuffer, err := encoder.Finish(nil)
		if err != nil {
			return &EngineError{Kind: ErrTransientRender, Detail: err.Error()}
		}
		defer cmdBuffer.Release()

		d.Queue.Submit(cmdBuffer)
		encoder.Release()
		view.Release()
		d.Surface.Present()
		surfaceTexture.Release()
		return nil
	}

	return &wgpuRenderPass{pass: ft.pass}, finish, nil
}

// Resize reconfigures the surface at the given physical size. A zero
// dimension (minimized window) is a caller error to avoid, not something
// this method guards — RenderState/Renderer callers check for nonzero
// dimensions before calling.
func (d *WGPUDevice) Resize(width, height uint32) {
	d.Config.Width = width
	d.Config.Height = height
	d.Surface.Configure(d.Adapter, d.Device, d.Config)
}

// RecreateSurface allocates a fresh surface against the existing device
// (platform-suspend recovery) and atomically replaces the stored handle.
// The device must still be valid; this does not re-request an adapter.
func (d *WGPUDevice) RecreateSurface(source SurfaceDescriptorSource, width, height uint32) error {
	surface := d.Instance.CreateSurface(source.SurfaceDescriptor())
	if surface == nil {
		return &EngineError{Kind: ErrSurfaceCreation}
	}

	config := *d.Config
	config.Width = width
	config.Height = height
	surface.Configure(d.Adapter, d.Device, &config)

	d.Surface = surface
	d.Config = &config
	return nil
}

// classifySurfaceError maps a driver error into the taxonomy's recoverable
// (SurfaceLost), fatal (OutOfMemory), and catch-all (TransientRenderError)
// buckets. The underlying wgpu binding doesn't expose a typed status enum
// at this call site, only an error value, so the classification goes by
// the message — best-effort, but the three outcomes are all the caller
// needs to branch on.
func classifySurfaceError(err error) *EngineError {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "lost") || strings.Contains(msg, "outdated") || strings.Contains(msg, "timeout"):
		return &EngineError{Kind: ErrSurfaceLost, Detail: err.Error()}
	case strings.Contains(msg, "out of memory") || strings.Contains(msg, "oom"):
		return &EngineError{Kind: ErrOutOfMemory, Detail: err.Error()}
	default:
		return &EngineError{Kind: ErrTransientRender, Detail: err.Error()}
	}
}
