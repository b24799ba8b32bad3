package duskgfx

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestHashUniforms_OrderIndependent(t *testing.T) {
	a := map[string]UniformValue{
		"alpha": FloatUniform(0.5),
		"tint":  Vec4Uniform(mgl32.Vec4{1, 0, 0, 1}),
	}
	b := map[string]UniformValue{
		"tint":  Vec4Uniform(mgl32.Vec4{1, 0, 0, 1}),
		"alpha": FloatUniform(0.5),
	}

	assert.Equal(t, HashUniforms(a), HashUniforms(b))
}

func TestHashUniforms_DifferentValuesDifferentHash(t *testing.T) {
	a := map[string]UniformValue{"alpha": FloatUniform(0.5)}
	b := map[string]UniformValue{"alpha": FloatUniform(0.6)}

	assert.NotEqual(t, HashUniforms(a), HashUniforms(b))
}

func TestHashUniforms_Empty(t *testing.T) {
	assert.Equal(t, HashUniforms(nil), HashUniforms(map[string]UniformValue{}))
}
