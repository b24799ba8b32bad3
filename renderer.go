package duskgfx

// Renderer is the public facade a host application drives: it owns the
// GPU device/surface and the RenderState, and translates window-level
// events (resize, DPI change, frame request) into the lower-level calls.
// Grounded on the teacher's renderer_select.go/renderer_guard.go split
// between device ownership and draw orchestration, and on the original's
// bootstrap/src/runner.rs event loop (translated here into a synchronous
// RenderFrame callers drive themselves, rather than a callback-based loop).
type Renderer struct {
	gpu         FrameDevice
	state       *RenderState
	log         Logger
	scaleFactor float32
	physicalW   uint32
	physicalH   uint32
}

// RendererConfig groups everything NewRenderer needs up front, mirroring
// the teacher's config-by-struct idiom (ClientModule{WindowWidth,
// WindowHeight, WindowTitle}). Title is informational for this package —
// it's passed through untouched for a host's own window-creation call —
// since this package never creates a window itself.
type RendererConfig struct {
	Title           string
	PhysicalWidth   uint32
	PhysicalHeight  uint32
	ScaleFactor     float32
	ClearColor      Color
	PresentModeFifo bool
}

// DefaultRendererConfig returns a config with vsync on (FIFO present mode)
// and the engine's default clear color, at the given physical size and a
// 1.0 scale factor.
func DefaultRendererConfig(title string, physicalW, physicalH uint32) RendererConfig {
	return RendererConfig{
		Title:           title,
		PhysicalWidth:   physicalW,
		PhysicalHeight:  physicalH,
		ScaleFactor:     1.0,
		ClearColor:      DefaultClearColor,
		PresentModeFifo: true,
	}
}

// NewRenderer requests a GPU context against source, configures the
// surface per cfg, and builds the default RenderState sized to the
// corresponding logical dimensions. Diagnostics go to a no-op logger
// until SetLogger is called.
func NewRenderer(source SurfaceDescriptorSource, cfg RendererConfig) (*Renderer, error) {
	gpu, err := NewWGPUDevice(source, cfg.PhysicalWidth, cfg.PhysicalHeight)
	if err != nil {
		return nil, err
	}
	if !cfg.PresentModeFifo {
		gpu.SetPresentModeImmediate()
	}

	logicalW := float32(cfg.PhysicalWidth) / cfg.ScaleFactor
	logicalH := float32(cfg.PhysicalHeight) / cfg.ScaleFactor

	state, err := NewRenderState(gpu, logicalW, logicalH)
	if err != nil {
		return nil, err
	}
	state.SetClearColor(cfg.ClearColor)

	return &Renderer{
		gpu:         gpu,
		state:       state,
		log:         NewNopLogger(),
		scaleFactor: cfg.ScaleFactor,
		physicalW:   cfg.PhysicalWidth,
		physicalH:   cfg.PhysicalHeight,
	}, nil
}

// SetLogger installs the logger RenderFrame reports swallowed transient
// errors through.
func (r *Renderer) SetLogger(log Logger) {
	r.log = log
}

// SetViewport reconfigures the surface at a new physical size and
// recomputes the projection from the corresponding logical size. A zero
// dimension (window minimized) is a no-op: reconfiguring wgpu to a zero
// extent is a driver error on every backend we've seen used in the pack.
func (r *Renderer) SetViewport(physicalW, physicalH uint32) {
	if physicalW == 0 || physicalH == 0 {
		return
	}
	r.physicalW, r.physicalH = physicalW, physicalH
	r.gpu.Resize(physicalW, physicalH)
	r.state.UpdateProjection(r.gpu, float32(physicalW)/r.scaleFactor, float32(physicalH)/r.scaleFactor)
}

// SetScaleFactor updates the DPI scale and re-derives the projection from
// the current physical size, without touching the surface configuration.
func (r *Renderer) SetScaleFactor(scaleFactor float32) {
	r.scaleFactor = scaleFactor
	r.state.UpdateProjection(r.gpu, float32(r.physicalW)/scaleFactor, float32(r.physicalH)/scaleFactor)
}

// RecreateSurface rebuilds the surface against source at (physicalW,
// physicalH) and reapplies the projection. Used to recover from a
// platform-level surface loss (e.g. Android Activity recreation) where the
// old surface handle is gone rather than merely outdated.
func (r *Renderer) RecreateSurface(source SurfaceDescriptorSource, physicalW, physicalH uint32) error {
	if err := r.gpu.RecreateSurface(source, physicalW, physicalH); err != nil {
		return err
	}
	r.physicalW, r.physicalH = physicalW, physicalH
	r.state.UpdateProjection(r.gpu, float32(physicalW)/r.scaleFactor, float32(physicalH)/r.scaleFactor)
	return nil
}

// RenderFrame draws one frame: it acquires the swapchain texture, prepares
// and draws every batch, and submits and presents. Failures are handled
// per the taxonomy's policy: SurfaceLost recreates the surface and drops
// the frame (returns nil); TransientRenderError is logged and dropped
// (returns nil); OutOfMemory and anything else are fatal and returned to
// the caller.
func (r *Renderer) RenderFrame(source SurfaceDescriptorSource) error {
	pass, finish, err := r.gpu.AcquireFrame(r.state.ClearColor())
	if err != nil {
		return r.handleFrameError(source, err)
	}

	r.state.Draw(r.gpu, pass)

	if err := finish(); err != nil {
		return r.handleFrameError(source, err)
	}
	return nil
}

func (r *Renderer) handleFrameError(source SurfaceDescriptorSource, err error) error {
	engErr, ok := err.(*EngineError)
	if !ok {
		return err
	}

	switch engErr.Kind {
	case ErrSurfaceLost:
		return r.RecreateSurface(source, r.physicalW, r.physicalH)
	case ErrTransientRender:
		r.log.Warnf("dropped frame: %v", engErr)
		return nil
	default:
		return engErr
	}
}

// Store exposes the scene store for host-side mutation helpers that want
// direct access rather than going through the pass-through methods below.
func (r *Renderer) Store() *ObjectStore { return r.state.Store }

// NewRect forwards to the scene store.
func (r *Renderer) NewRect() ObjectId {
	return r.state.Store.NewRect()
}

// SetPosition forwards to the scene store.
func (r *Renderer) SetPosition(id ObjectId, x, y float32) {
	r.state.Store.SetPosition(id, x, y)
}

// SetSize forwards to the scene store.
func (r *Renderer) SetSize(id ObjectId, w, h float32) {
	r.state.Store.SetSize(id, w, h)
}

// SetColor forwards to the scene store.
func (r *Renderer) SetColor(id ObjectId, r2, g, b, a float32) {
	r.state.Store.SetColor(id, r2, g, b, a)
}

// SetRotation forwards to the scene store.
func (r *Renderer) SetRotation(id ObjectId, radians float32) {
	r.state.Store.SetRotation(id, radians)
}

// SetZIndex forwards to the scene store.
func (r *Renderer) SetZIndex(id ObjectId, z float32) {
	r.state.Store.SetZIndex(id, z)
}

// SetRounded forwards to the scene store.
func (r *Renderer) SetRounded(id ObjectId, tl, tr, br, bl float32) {
	r.state.Store.SetRounded(id, tl, tr, br, bl)
}

// SetClearColor overrides the color RenderFrame clears to.
func (r *Renderer) SetClearColor(c Color) {
	r.state.SetClearColor(c)
}
