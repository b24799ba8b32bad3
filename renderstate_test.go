package duskgfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Seed scenario 6: fresh renderer, empty scene, one render pass, zero
// indexed-instanced draws.
func TestRenderState_DrawEmptySceneIssuesNoDraws(t *testing.T) {
	gpu := newFakeGPU()
	rs, err := NewRenderState(gpu, 800, 600)
	require.NoError(t, err)

	pass := newFakeRenderPass()
	rs.Draw(gpu, pass)

	assert.Empty(t, pass.drawCalls)
	assert.Equal(t, 1, pass.bindGroupSets)
}

func TestRenderState_DrawClearsBothDirtyFlagsTogether(t *testing.T) {
	gpu := newFakeGPU()
	rs, err := NewRenderState(gpu, 800, 600)
	require.NoError(t, err)

	rs.Store.NewRect()
	assert.True(t, rs.Store.Dirty)

	rs.Draw(gpu, newFakeRenderPass())

	assert.False(t, rs.Store.Dirty)
	assert.False(t, rs.Store.ZDirty)
}

// After draw on a clean store, no GPU buffer write occurs.
func TestRenderState_DrawOnCleanStoreWritesNothing(t *testing.T) {
	gpu := newFakeGPU()
	rs, err := NewRenderState(gpu, 800, 600)
	require.NoError(t, err)

	rs.Store.NewRect()
	rs.Draw(gpu, newFakeRenderPass())
	writesAfterFirstDraw := gpu.writeCalls
	createsAfterFirstDraw := gpu.createCalls

	rs.Draw(gpu, newFakeRenderPass())

	assert.Equal(t, writesAfterFirstDraw, gpu.writeCalls)
	assert.Equal(t, createsAfterFirstDraw, gpu.createCalls)
}

func TestRenderState_DrawIssuesOneDrawPerNonEmptyBatch(t *testing.T) {
	gpu := newFakeGPU()
	rs, err := NewRenderState(gpu, 800, 600)
	require.NoError(t, err)

	rs.Store.NewRect()
	rs.Store.NewRect()
	rs.Store.NewRect()

	pass := newFakeRenderPass()
	rs.Draw(gpu, pass)

	require.Len(t, pass.drawCalls, 1)
	assert.Equal(t, uint32(3), pass.drawCalls[0].instanceCount)
}

func TestRenderState_UpdateProjectionWritesUniformInPlace(t *testing.T) {
	gpu := newFakeGPU()
	rs, err := NewRenderState(gpu, 800, 600)
	require.NoError(t, err)

	before := rs.matrixStack.ToUniform()
	writesBefore := gpu.writeCalls

	rs.UpdateProjection(gpu, 1024, 768)

	assert.Equal(t, writesBefore+1, gpu.writeCalls)
	assert.NotEqual(t, before.ViewProj, rs.matrixStack.ToUniform().ViewProj)
}

func TestRenderState_ClearColorDefaultAndOverride(t *testing.T) {
	gpu := newFakeGPU()
	rs, err := NewRenderState(gpu, 800, 600)
	require.NoError(t, err)

	assert.Equal(t, DefaultClearColor, rs.ClearColor())

	rs.SetClearColor(Color{R: 1, G: 0, B: 0, A: 1})
	assert.Equal(t, Color{R: 1, G: 0, B: 0, A: 1}, rs.ClearColor())
}
