package duskgfx

import "github.com/go-gl/mathgl/mgl32"

// MatrixStack owns the orthographic view-projection matrix used by every
// pipeline this renderer draws with. "Stack" matches the teacher/original
// naming; there is exactly one matrix in scope today (no camera transform
// stacking, no model matrix — rects carry their own position/rotation).
type MatrixStack struct {
	Projection mgl32.Mat4
}

// NewMatrixStack builds the stack with an orthographic projection sized to
// logicalW x logicalH.
func NewMatrixStack(logicalW, logicalH float32) *MatrixStack {
	m := &MatrixStack{}
	m.SetOrtho(logicalW, logicalH)
	return m
}

// SetOrtho recomputes the projection so that logical (0,0) maps to clip
// (-1,+1) (top-left origin) and logical (logicalW, logicalH) maps to clip
// (+1,-1).
func (m *MatrixStack) SetOrtho(logicalW, logicalH float32) {
	m.Projection = mgl32.Ortho(0, logicalW, logicalH, 0, -1, 1)
}

// GlobalUniform is the single uniform buffer contents shared by every
// pipeline: a column-major view-projection matrix, nothing else (no model
// matrix is sent, to halve uniform traffic — rects already carry position
// in their instance record).
type GlobalUniform struct {
	ViewProj [16]float32
}

// ToUniform packs the current projection into upload-ready bytes.
func (m *MatrixStack) ToUniform() GlobalUniform {
	return GlobalUniform{ViewProj: [16]float32(m.Projection)}
}
