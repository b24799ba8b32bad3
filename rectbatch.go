package duskgfx

// RectBatch owns the static quad geometry shared by every rect instance
// and the BatchBuffer that stages and uploads the per-frame instance
// stream.
type RectBatch struct {
	staticVBO GPUBuffer
	staticIBO GPUBuffer
	instances *BatchBuffer[RectInstance]
}

// NewRectBatch creates the static quad VBO/IBO once (they never change
// again) and an empty instance batch.
func NewRectBatch(gpu GPU) *RectBatch {
	return &RectBatch{
		staticVBO: gpu.CreateBuffer("rect quad vertices", toBytes(quadVertices[:]), BufferUsageVertex),
		staticIBO: gpu.CreateBuffer("rect quad indices", toBytes(quadIndices[:]), BufferUsageIndex),
		instances: NewBatchBuffer[RectInstance]("rect instances", BufferUsageVertex),
	}
}

// Prepare reads store state into the instance stream and uploads it. It is
// a no-op — no GPU work at all — when the store isn't dirty, leaving
// whatever was uploaded last frame valid for this frame's render.
func (rb *RectBatch) Prepare(gpu GPU, store *ObjectStore) {
	if !store.Dirty {
		return
	}

	rb.instances.Clear()
	for _, id := range store.RectIds {
		rb.instances.Push(encodeRect(store, id.Index()))
	}

	// Only a z change forces a resort. Positions/colors/etc. changing
	// alone leaves relative order intact because RectIds is append-only,
	// so the previous ordering (by z) is still correct — skipping the
	// sort here is the whole point of tracking ZDirty separately from
	// Dirty.
	if store.ZDirty {
		rb.instances.Sort()
	}

	rb.instances.Upload(gpu)
}

// Render issues one indexed-instanced draw covering every staged rect, or
// does nothing if there is no GPU buffer or it is empty.
func (rb *RectBatch) Render(pass RenderPass) {
	count := rb.instances.Len()
	if rb.instances.GPUBuffer() == nil || count == 0 {
		return
	}

	pass.SetVertexBuffer(0, rb.staticVBO)
	pass.SetVertexBuffer(1, rb.instances.GPUBuffer())
	pass.SetIndexBuffer(rb.staticIBO)
	pass.DrawIndexedInstanced(uint32(len(quadIndices)), uint32(count))
}
