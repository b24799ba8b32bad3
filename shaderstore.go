package duskgfx

import (
	"unsafe"

	"github.com/duskgfx/duskgfx/shaders"
	"github.com/google/uuid"
)

// ShaderId identifies a compiled pipeline in a ShaderStore. The built-in
// rect shader always gets the well-known id below; shaders compiled from
// host-supplied WGSL get a UUID-backed id so callers can't collide with it
// by guessing small integers.
type ShaderId string

// RectShaderId is the well-known id of the built-in rect pipeline,
// returned by CreateDefaultRect.
const RectShaderId ShaderId = "duskgfx.rect"

// ShaderStore is a registry of compiled pipelines plus the single
// projection bind group layout every pipeline shares at group 0.
type ShaderStore struct {
	pipelines  map[ShaderId]GPUPipeline
	projLayout GPUBindGroupLayout
}

// NewShaderStore creates the shared projection bind group layout (one
// uniform buffer, vertex-stage visibility) used by every pipeline this
// store compiles.
func NewShaderStore(gpu GPU) *ShaderStore {
	return &ShaderStore{
		pipelines:  make(map[ShaderId]GPUPipeline),
		projLayout: gpu.CreateBindGroupLayout(true),
	}
}

// rectVertexLayout describes QuadVertex: one vec2 position at location 0.
func rectVertexLayout() VertexBufferLayout {
	return VertexBufferLayout{
		ArrayStride: uint64(unsafe.Sizeof(QuadVertex{})),
		StepMode:    VertexStepModeVertex,
		Attributes: []VertexAttribute{
			{ShaderLocation: 0, Offset: 0, Format: VertexFormatFloat32x2},
		},
	}
}

// rectInstanceLayout describes RectInstance: pos_size, radii, extra as
// vec4s at locations 1-3, then the packed color as a uint32 at location 4.
// Offsets must track RectInstance's field order exactly.
func rectInstanceLayout() VertexBufferLayout {
	return VertexBufferLayout{
		ArrayStride: uint64(unsafe.Sizeof(RectInstance{})),
		StepMode:    VertexStepModeInstance,
		Attributes: []VertexAttribute{
			{ShaderLocation: 1, Offset: 0, Format: VertexFormatFloat32x4},
			{ShaderLocation: 2, Offset: 16, Format: VertexFormatFloat32x4},
			{ShaderLocation: 3, Offset: 32, Format: VertexFormatFloat32x4},
			{ShaderLocation: 4, Offset: 48, Format: VertexFormatUint32},
		},
	}
}

// CreateDefaultRect compiles the built-in rect shader and registers it
// under RectShaderId. The format argument is not read: the pipeline
// targets whatever surface format the GPU itself is configured with. It
// must succeed at startup — a failure here is fatal to construction (spec: the default
// shader compiling is not allowed to be a soft failure).
func (s *ShaderStore) CreateDefaultRect(gpu GPU, format TextureFormat) (ShaderId, error) {
	pipeline, err := gpu.CompilePipeline(PipelineDescriptor{
		Label:         "rect pipeline",
		ShaderSource:  shaders.Rect,
		VertexBuffers: []VertexBufferLayout{rectVertexLayout(), rectInstanceLayout()},
		BindGroups:    []GPUBindGroupLayout{s.projLayout},
	})
	if err != nil {
		return "", &EngineError{Kind: ErrShaderCompilation, Detail: err.Error()}
	}

	s.pipelines[RectShaderId] = pipeline
	return RectShaderId, nil
}

// CompileShader compiles host-supplied WGSL against an explicit vertex
// layout and the shared projection bind group, returning a fresh
// UUID-backed id. Unlike CreateDefaultRect, a compile failure here is
// returned to the caller rather than being fatal — only the built-in
// shader is load-bearing for construction.
func (s *ShaderStore) CompileShader(gpu GPU, source string, layouts []VertexBufferLayout) (ShaderId, error) {
	pipeline, err := gpu.CompilePipeline(PipelineDescriptor{
		Label:         "custom pipeline",
		ShaderSource:  source,
		VertexBuffers: layouts,
		BindGroups:    []GPUBindGroupLayout{s.projLayout},
	})
	if err != nil {
		return "", &EngineError{Kind: ErrShaderCompilation, Detail: err.Error()}
	}

	id := ShaderId(uuid.NewString())
	s.pipelines[id] = pipeline
	return id, nil
}

// GetPipeline looks up a compiled pipeline. ok is false if id is unknown.
func (s *ShaderStore) GetPipeline(id ShaderId) (pipeline GPUPipeline, ok bool) {
	pipeline, ok = s.pipelines[id]
	return
}

// GetProjBindGroup builds a bind group binding buffer to this store's
// shared projection layout.
func (s *ShaderStore) GetProjBindGroup(gpu GPU, buffer GPUBuffer) GPUBindGroup {
	return gpu.CreateBindGroup(s.projLayout, buffer)
}
