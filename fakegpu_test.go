package duskgfx

// fakeGPU implements GPU without touching a real driver, so store/batch/
// render-state logic is testable without a GPU adapter. It records every
// call a test cares about asserting on (buffer writes, pipeline compiles).
type fakeGPU struct {
	buffers       []*fakeBuffer
	writeCalls    int
	createCalls   int
	compileCalls  int
	compileErr    error
}

type fakeBuffer struct {
	data []byte
}

func (b *fakeBuffer) Size() uint64 { return uint64(len(b.data)) }

func newFakeGPU() *fakeGPU { return &fakeGPU{} }

func (g *fakeGPU) CreateBuffer(label string, data []byte, usage BufferUsage) GPUBuffer {
	g.createCalls++
	buf := &fakeBuffer{data: append([]byte(nil), data...)}
	g.buffers = append(g.buffers, buf)
	return buf
}

func (g *fakeGPU) WriteBuffer(buf GPUBuffer, offset uint64, data []byte) {
	g.writeCalls++
	fb := buf.(*fakeBuffer)
	end := int(offset) + len(data)
	if end > len(fb.data) {
		grown := make([]byte, end)
		copy(grown, fb.data)
		fb.data = grown
	}
	copy(fb.data[offset:end], data)
}

func (g *fakeGPU) CreateBindGroupLayout(visibilityVertex bool) GPUBindGroupLayout {
	return struct{}{}
}

func (g *fakeGPU) CreateBindGroup(layout GPUBindGroupLayout, buf GPUBuffer) GPUBindGroup {
	return struct{}{}
}

func (g *fakeGPU) CompilePipeline(desc PipelineDescriptor) (GPUPipeline, error) {
	g.compileCalls++
	if g.compileErr != nil {
		return nil, g.compileErr
	}
	return struct{}{}, nil
}

func (g *fakeGPU) SurfaceFormat() TextureFormat { return TextureFormat(0) }

// fakeRenderPass records every command issued against it without driving a
// real render pass.
type fakeRenderPass struct {
	pipelineSets    int
	bindGroupSets   int
	vertexBufferSet map[uint32]GPUBuffer
	indexBufferSet  GPUBuffer
	drawCalls       []fakeDrawCall
}

type fakeDrawCall struct {
	indexCount    uint32
	instanceCount uint32
}

func newFakeRenderPass() *fakeRenderPass {
	return &fakeRenderPass{vertexBufferSet: make(map[uint32]GPUBuffer)}
}

func (p *fakeRenderPass) SetPipeline(pipeline GPUPipeline)               { p.pipelineSets++ }
func (p *fakeRenderPass) SetBindGroup(index uint32, group GPUBindGroup)  { p.bindGroupSets++ }
func (p *fakeRenderPass) SetVertexBuffer(slot uint32, buf GPUBuffer)     { p.vertexBufferSet[slot] = buf }
func (p *fakeRenderPass) SetIndexBuffer(buf GPUBuffer)                   { p.indexBufferSet = buf }

func (p *fakeRenderPass) DrawIndexedInstanced(indexCount, instanceCount uint32) {
	p.drawCalls = append(p.drawCalls, fakeDrawCall{indexCount: indexCount, instanceCount: instanceCount})
}
