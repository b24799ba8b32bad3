package duskgfx

import (
	"math"
	"sort"
)

// SortableInstance is implemented by any GPU instance record that can be
// depth-sorted for a batch.
type SortableInstance interface {
	GetZIndex() float32
}

// BatchBuffer is the CPU staging vector plus lazily-(re)allocated GPU
// buffer shared by every shape-specific batcher. It only knows how to
// stage, sort, and upload a flat instance slice — it has no idea what a
// rect or a store is.
type BatchBuffer[T SortableInstance] struct {
	cpu   []T
	gpu   GPUBuffer
	label string
	usage BufferUsage
}

// NewBatchBuffer returns an empty buffer; label and usage describe the GPU
// buffer that upload will eventually allocate.
func NewBatchBuffer[T SortableInstance](label string, usage BufferUsage) *BatchBuffer[T] {
	const initialCapacity = 1024
	return &BatchBuffer[T]{
		cpu:   make([]T, 0, initialCapacity),
		label: label,
		usage: usage,
	}
}

// Clear empties the CPU staging list, retaining its allocated capacity.
func (b *BatchBuffer[T]) Clear() {
	b.cpu = b.cpu[:0]
}

// Push appends one instance to the staging list.
func (b *BatchBuffer[T]) Push(instance T) {
	b.cpu = append(b.cpu, instance)
}

// Len reports the current staging list length, i.e. the instance count the
// next upload/draw will use.
func (b *BatchBuffer[T]) Len() int {
	return len(b.cpu)
}

// Sort reorders the staging list ascending by the total ordering on the
// z index's IEEE-754 bit pattern (NaN-safe, -0 < +0), not the IEEE
// comparison operators, matching total_cmp on the far side of this
// buffer's grounding. The sort is intentionally unstable: it's faster, and
// scene ordering between objects with equal z is undefined by contract, so
// no caller may observe (or depend on) tie-break order.
func (b *BatchBuffer[T]) Sort() {
	sort.Slice(b.cpu, func(i, j int) bool {
		return totalOrderKey(b.cpu[i].GetZIndex()) < totalOrderKey(b.cpu[j].GetZIndex())
	})
}

// totalOrderKey maps a float32's bit pattern to a uint32 that sorts, under
// plain unsigned comparison, in the same total order as Rust's
// f32::total_cmp: flip all bits for negatives, set just the sign bit for
// non-negatives, so -0 sorts before +0 and NaNs sort consistently at either
// end by payload/sign instead of comparing unordered. Must stay a uint32
// comparison — reinterpreting as int32 would put the sign-bit-set half of
// the range (everything this function maps non-negatives into) below zero
// and invert the order again.
func totalOrderKey(f float32) uint32 {
	bits := math.Float32bits(f)
	if bits&0x80000000 != 0 {
		return ^bits
	}
	return bits | 0x80000000
}

// Upload pushes the staging list to the GPU. If the list is empty it does
// nothing and returns false — callers must treat false as "do not draw
// this batch this frame". Otherwise it overwrites the existing GPU buffer
// in place if it's large enough, or allocates a new one sized to the
// current list and replaces the prior handle.
func (b *BatchBuffer[T]) Upload(gpu GPU) bool {
	if len(b.cpu) == 0 {
		return false
	}

	data := toBytes(b.cpu)

	if b.gpu != nil && b.gpu.Size() >= uint64(len(data)) {
		gpu.WriteBuffer(b.gpu, 0, data)
		return true
	}

	b.gpu = gpu.CreateBuffer(b.label, data, b.usage)
	return true
}

// GPUBuffer returns the most recently allocated GPU buffer, or nil if
// Upload has never succeeded.
func (b *BatchBuffer[T]) GPUBuffer() GPUBuffer {
	return b.gpu
}
