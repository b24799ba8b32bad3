package duskgfx

import "unsafe"

// toBytes reinterprets a slice of fixed-layout structs as a byte slice
// without copying, the same trick the teacher's particle pipeline uses
// (voxelrt/rt/gpu/manager.go's UpdateParticles) to hand wgpu a raw upload
// payload. T must have no pointers and a stable, packed layout — true of
// every instance/vertex/uniform type in this package.
func toBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), size*len(s))
}
