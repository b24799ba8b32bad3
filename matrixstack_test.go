package duskgfx

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

// Seed scenario 4: a 1000x500 logical viewport (the size the projection
// itself is built from, after any physical/scale-factor division upstream
// in Renderer.SetViewport). Logical (0,0) maps to clip (-1,+1); logical
// (500,250), the center of that viewport, maps to clip (0,0).
func TestMatrixStack_OrthoMapsCorners(t *testing.T) {
	const logicalW, logicalH = 1000, 500

	ms := NewMatrixStack(logicalW, logicalH)

	origin := ms.Projection.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, -1.0, origin.X(), 1e-5)
	assert.InDelta(t, 1.0, origin.Y(), 1e-5)

	center := ms.Projection.Mul4x1(mgl32.Vec4{logicalW / 2, logicalH / 2, 0, 1})
	assert.InDelta(t, 0.0, center.X(), 1e-5)
	assert.InDelta(t, 0.0, center.Y(), 1e-5)
}

func TestMatrixStack_SetOrthoRecomputesProjection(t *testing.T) {
	ms := NewMatrixStack(800, 600)
	first := ms.ToUniform()

	ms.SetOrtho(1024, 768)
	second := ms.ToUniform()

	assert.NotEqual(t, first.ViewProj, second.ViewProj)
}
