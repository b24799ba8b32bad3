package duskgfx

import "github.com/go-gl/mathgl/mgl32"

// QuadVertex is the static per-vertex geometry shared by every rect
// instance: a unit quad in [0,1]^2, scaled and positioned per-instance in
// the vertex shader from RectInstance.PosSize.
type QuadVertex struct {
	Position [2]float32
}

// quadVertices and quadIndices never change after RectBatch construction;
// they describe one unit square as two triangles.
var quadVertices = [4]QuadVertex{
	{Position: [2]float32{0, 0}},
	{Position: [2]float32{0, 1}},
	{Position: [2]float32{1, 1}},
	{Position: [2]float32{1, 0}},
}

var quadIndices = [6]uint32{0, 1, 2, 0, 2, 3}

// RectInstance is the fixed-layout, GPU-facing per-instance record. Its
// field order and widths are a contract with the shader's vertex attribute
// layout (see ShaderStore) — changing either without the other breaks
// rendering silently.
type RectInstance struct {
	PosSize [4]float32 // x, y, w, h
	Radii   [4]float32 // top-left, top-right, bottom-right, bottom-left
	Extra   [4]float32 // z, rotation, pad, pad
	Color   uint32     // packed AABBGGRR, channel 0 in the low byte
}

// GetZIndex implements SortableInstance.
func (r RectInstance) GetZIndex() float32 {
	return r.Extra[0]
}

// packColor converts a [0,1]-ish RGBA color into AABBGGRR, each channel
// rounded to the nearest byte (halves round up: 0.5*255=127.5 -> 128) with
// no clamp — a channel above 1 or below 0 keeps whatever out-of-range
// product results (for a negative product, adding 0.5 and converting to
// int32 truncates toward zero rather than rounding to nearest). int32 is the rounding target (then masked
// to a byte) so the behavior is the same on every platform, unlike a
// direct float-to-uint8 conversion of an out-of-range value.
func packColor(c mgl32.Vec4) uint32 {
	toByte := func(ch float32) uint32 {
		return uint32(int32(ch*255+0.5)) & 0xFF
	}
	r := toByte(c[0])
	g := toByte(c[1])
	b := toByte(c[2])
	a := toByte(c[3])
	return a<<24 | b<<16 | g<<8 | r
}

// encodeRect builds the RectInstance for the rect row at idx, reading
// directly from the store's columns.
func encodeRect(s *ObjectStore, idx int) RectInstance {
	pos := s.positions[idx]
	size := s.sizes[idx]
	radii := s.rectRadii[idx]

	return RectInstance{
		PosSize: [4]float32{pos.X(), pos.Y(), size.X(), size.Y()},
		Radii:   [4]float32{radii.X(), radii.Y(), radii.Z(), radii.W()},
		Extra:   [4]float32{s.zIndices[idx], s.rotations[idx], 0, 0},
		Color:   packColor(s.colors[idx]),
	}
}
