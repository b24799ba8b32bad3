package duskgfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngineError_FatalClassification(t *testing.T) {
	fatalKinds := []ErrorKind{
		ErrAdapterUnavailable, ErrDeviceCreation, ErrSurfaceCreation,
		ErrNoSuitableSurfaceFormat, ErrShaderCompilation, ErrOutOfMemory,
	}
	for _, k := range fatalKinds {
		err := &EngineError{Kind: k}
		assert.True(t, err.Fatal(), "%v should be fatal", k)
	}

	recoverableKinds := []ErrorKind{ErrSurfaceLost, ErrTransientRender}
	for _, k := range recoverableKinds {
		err := &EngineError{Kind: k}
		assert.False(t, err.Fatal(), "%v should not be fatal", k)
	}
}

func TestEngineError_ErrorStringIncludesDetail(t *testing.T) {
	err := &EngineError{Kind: ErrDeviceCreation, Detail: "no compatible adapter"}
	assert.Equal(t, "DeviceCreation: no compatible adapter", err.Error())

	bare := &EngineError{Kind: ErrSurfaceLost}
	assert.Equal(t, "SurfaceLost", bare.Error())
}
