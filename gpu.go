package duskgfx

// This file defines the abstract GPU capability surface the core pipeline
// is written against: create a buffer from bytes, write into one in place,
// build bind groups and pipelines, drive a render pass, submit, and
// acquire/present a surface. Everything above this line (ObjectStore,
// BatchBuffer, RectBatch, ShaderStore, RenderState) only ever talks to
// these interfaces, never to *wgpu.Device directly — the same split the
// teacher draws between its GpuState and the systems that use it.
//
// wgpu.go provides the concrete WGPUDevice implementation; tests use a
// fakeGPU (see fakegpu_test.go) so store/batch/prepare logic is verifiable
// without a real adapter.

// BufferUsage is a small, renderer-local mirror of wgpu's buffer usage
// bitflags, keeping callers of GPU from importing wgpu directly.
type BufferUsage uint32

const (
	BufferUsageVertex BufferUsage = 1 << iota
	BufferUsageIndex
	BufferUsageUniform
)

// GPUBuffer is an opaque handle to a GPU-resident buffer. Implementations
// must report their allocated byte size so BatchBuffer can decide whether
// an in-place overwrite fits.
type GPUBuffer interface {
	Size() uint64
}

// GPUBindGroupLayout and GPUBindGroup are opaque handles produced by GPU
// and consumed by RenderPass.SetBindGroup.
type GPUBindGroupLayout interface{}
type GPUBindGroup interface{}

// GPUPipeline is an opaque compiled render pipeline handle.
type GPUPipeline interface{}

// VertexAttribute describes one shader-visible field of a vertex or
// instance record, in the wgpu sense of shader location + byte offset +
// scalar format.
type VertexAttribute struct {
	ShaderLocation uint32
	Offset         uint64
	Format         VertexFormat
}

// VertexFormat enumerates the scalar/vector formats this renderer's
// vertex layouts use. It mirrors the subset of wgpu.VertexFormat the rect
// pipeline needs.
type VertexFormat int

const (
	VertexFormatFloat32x2 VertexFormat = iota
	VertexFormatFloat32x4
	VertexFormatUint32
)

// VertexStepMode selects whether a buffer's attributes advance per vertex
// or per instance.
type VertexStepMode int

const (
	VertexStepModeVertex VertexStepMode = iota
	VertexStepModeInstance
)

// VertexBufferLayout is one entry of a pipeline's vertex state: the byte
// stride between records, the step mode, and the attributes read from it.
type VertexBufferLayout struct {
	ArrayStride uint64
	StepMode    VertexStepMode
	Attributes  []VertexAttribute
}

// PipelineDescriptor is everything needed to compile a render pipeline:
// a label, WGSL source, the vertex buffer layouts (typically one
// per-vertex + one per-instance), and the bind group layouts used by the
// shader, in group-index order.
type PipelineDescriptor struct {
	Label         string
	ShaderSource  string
	VertexBuffers []VertexBufferLayout
	BindGroups    []GPUBindGroupLayout
}

// TextureFormat identifies a surface/render-target pixel format, as
// reported by SurfaceFormat; callers never branch on it. CompilePipeline
// does not take one: pipelines target the GPU's own surface format.
type TextureFormat int

// GPU is the capability surface the core pipeline depends on.
type GPU interface {
	CreateBuffer(label string, data []byte, usage BufferUsage) GPUBuffer
	WriteBuffer(buf GPUBuffer, offset uint64, data []byte)
	CreateBindGroupLayout(visibilityVertex bool) GPUBindGroupLayout
	CreateBindGroup(layout GPUBindGroupLayout, buf GPUBuffer) GPUBindGroup
	CompilePipeline(desc PipelineDescriptor) (GPUPipeline, error)
	SurfaceFormat() TextureFormat
}

// FrameDevice extends GPU with the per-frame acquire/present and surface
// lifecycle operations Renderer drives. Separating it from GPU keeps
// RenderState's dependency (GPU alone) unchanged while letting Renderer
// depend on an interface rather than *WGPUDevice directly, so it can be
// driven in tests against a fake (see renderer_test.go) the same way
// RenderState is driven against fakeGPU.
type FrameDevice interface {
	GPU
	AcquireFrame(clearColor Color) (RenderPass, func() error, error)
	Resize(width, height uint32)
	RecreateSurface(source SurfaceDescriptorSource, width, height uint32) error
}

// RenderPass is the subset of a wgpu render pass the batchers issue
// commands against.
type RenderPass interface {
	SetPipeline(p GPUPipeline)
	SetBindGroup(index uint32, group GPUBindGroup)
	SetVertexBuffer(slot uint32, buf GPUBuffer)
	SetIndexBuffer(buf GPUBuffer)
	DrawIndexedInstanced(indexCount, instanceCount uint32)
}

// Color is a clear color / per-frame tint, components in [0,1].
type Color struct {
	R, G, B, A float32
}
