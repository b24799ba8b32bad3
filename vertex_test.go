package duskgfx

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

// Seed scenario 5.
func TestPackColor_SeedScenarios(t *testing.T) {
	assert.Equal(t, uint32(0xFF0000FF), packColor(mgl32.Vec4{1.0, 0.0, 0.0, 1.0}))
	assert.Equal(t, uint32(0x8000FF00), packColor(mgl32.Vec4{0.0, 1.0, 0.0, 0.5}))
}

func TestPackColor_White(t *testing.T) {
	assert.Equal(t, uint32(0xFFFFFFFF), packColor(mgl32.Vec4{1, 1, 1, 1}))
}

func TestPackColor_Black(t *testing.T) {
	assert.Equal(t, uint32(0), packColor(mgl32.Vec4{0, 0, 0, 0}))
}

func TestEncodeRect_ReadsColumnsAtIndex(t *testing.T) {
	s := NewObjectStore()
	id := s.NewRect()
	s.SetPosition(id, 10, 20)
	s.SetSize(id, 30, 40)
	s.SetColor(id, 1, 0, 0, 1)
	s.SetRotation(id, 1.5)
	s.SetZIndex(id, 7)
	s.SetRounded(id, 1, 2, 3, 4)

	inst := encodeRect(s, id.Index())

	assert.Equal(t, [4]float32{10, 20, 30, 40}, inst.PosSize)
	assert.Equal(t, [4]float32{1, 2, 3, 4}, inst.Radii)
	assert.Equal(t, float32(7), inst.Extra[0])
	assert.Equal(t, float32(1.5), inst.Extra[1])
	assert.Equal(t, uint32(0xFF0000FF), inst.Color)
	assert.Equal(t, float32(7), inst.GetZIndex())
}
