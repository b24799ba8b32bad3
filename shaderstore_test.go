package duskgfx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderStore_CreateDefaultRect(t *testing.T) {
	gpu := newFakeGPU()
	store := NewShaderStore(gpu)

	id, err := store.CreateDefaultRect(gpu, gpu.SurfaceFormat())
	require.NoError(t, err)
	assert.Equal(t, RectShaderId, id)

	pipeline, ok := store.GetPipeline(id)
	assert.True(t, ok)
	assert.NotNil(t, pipeline)
}

func TestShaderStore_CreateDefaultRectFailureIsReturned(t *testing.T) {
	gpu := newFakeGPU()
	gpu.compileErr = errors.New("boom")
	store := NewShaderStore(gpu)

	_, err := store.CreateDefaultRect(gpu, gpu.SurfaceFormat())

	require.Error(t, err)
	var engErr *EngineError
	require.ErrorAs(t, err, &engErr)
	assert.Equal(t, ErrShaderCompilation, engErr.Kind)
}

func TestShaderStore_CompileShaderAssignsUniqueIds(t *testing.T) {
	gpu := newFakeGPU()
	store := NewShaderStore(gpu)

	id1, err := store.CompileShader(gpu, "shader source a", nil)
	require.NoError(t, err)
	id2, err := store.CompileShader(gpu, "shader source b", nil)
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
	assert.NotEqual(t, RectShaderId, id1)

	_, ok := store.GetPipeline(id1)
	assert.True(t, ok)
}

func TestShaderStore_GetPipelineUnknownIdNotOk(t *testing.T) {
	gpu := newFakeGPU()
	store := NewShaderStore(gpu)

	_, ok := store.GetPipeline(ShaderId("nope"))
	assert.False(t, ok)
}
