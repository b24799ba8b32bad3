package duskgfx

// RenderState owns the scene store, the batch group, the shader registry,
// the projection matrix/uniform, and drives one frame's worth of drawing.
// It has no idea about windows or surfaces — that's Renderer's job.
type RenderState struct {
	Store   *ObjectStore
	Batches *BatchGroup
	Shaders *ShaderStore

	matrixStack   *MatrixStack
	uniformBuffer GPUBuffer
	projBindGroup GPUBindGroup
	rectShader    ShaderId
	clearColor    Color
}

// DefaultClearColor matches the engine default: a dark neutral gray.
var DefaultClearColor = Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0}

// NewRenderState builds the orthographic projection for (logicalW,
// logicalH), uploads it, compiles the default rect pipeline, and wires the
// projection bind group. A failure compiling the built-in shader is fatal
// — it's the one pipeline this package can't function without.
func NewRenderState(gpu GPU, logicalW, logicalH float32) (*RenderState, error) {
	shaderStore := NewShaderStore(gpu)

	rectShader, err := shaderStore.CreateDefaultRect(gpu, gpu.SurfaceFormat())
	if err != nil {
		return nil, err
	}

	matrixStack := NewMatrixStack(logicalW, logicalH)
	uniform := matrixStack.ToUniform()
	uniformBuffer := gpu.CreateBuffer("global uniform", toBytes([]GlobalUniform{uniform}), BufferUsageUniform)
	projBindGroup := shaderStore.GetProjBindGroup(gpu, uniformBuffer)

	return &RenderState{
		Store:         NewObjectStore(),
		Batches:       NewBatchGroup(gpu),
		Shaders:       shaderStore,
		matrixStack:   matrixStack,
		uniformBuffer: uniformBuffer,
		projBindGroup: projBindGroup,
		rectShader:    rectShader,
		clearColor:    DefaultClearColor,
	}, nil
}

// UpdateProjection recomputes the orthographic matrix for the given
// logical size and writes it into the uniform buffer in place. Called on
// resize or DPI change.
func (rs *RenderState) UpdateProjection(gpu GPU, logicalW, logicalH float32) {
	rs.matrixStack.SetOrtho(logicalW, logicalH)
	uniform := rs.matrixStack.ToUniform()
	gpu.WriteBuffer(rs.uniformBuffer, 0, toBytes([]GlobalUniform{uniform}))
}

// Draw prepares every batch, clears the store's dirty flags on success,
// binds the projection, and issues each batch's draw into pass. The
// caller owns the render pass's lifetime (begin/end) — Draw only issues
// commands into it.
func (rs *RenderState) Draw(gpu GPU, pass RenderPass) {
	rs.Batches.Prepare(gpu, rs.Store)

	// An early return inside Prepare because the store wasn't dirty still
	// counts as success: both flags clear unconditionally here, and only
	// together — partial clearing would desync Dirty from ZDirty.
	rs.Store.clearDirty()

	pass.SetBindGroup(0, rs.projBindGroup)

	if pipeline, ok := rs.Shaders.GetPipeline(rs.rectShader); ok {
		pass.SetPipeline(pipeline)
		rs.Batches.Rects.Render(pass)
	}
}

// ClearColor returns the color the next frame's render pass should clear
// to.
func (rs *RenderState) ClearColor() Color {
	return rs.clearColor
}

// SetClearColor overrides the default clear color.
func (rs *RenderState) SetClearColor(c Color) {
	rs.clearColor = c
}
