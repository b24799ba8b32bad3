package duskgfx

import (
	"hash/fnv"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// UniformValue is a scalar or vector value a custom shader (registered via
// ShaderStore.CompileShader) can bind under a name, for shape kinds beyond
// the built-in rect whose uniforms aren't fixed columns in ObjectStore.
// Grounded on the original's objects/mod.rs UniformValue enum; this package
// doesn't attach uniforms to anything itself (rects have none), it only
// exports the type and HashUniforms for a host's own shape kinds to use.
type UniformValue struct {
	kind uniformKind
	i    int32
	f    float32
	v2   mgl32.Vec2
	v3   mgl32.Vec3
	v4   mgl32.Vec4
	m4   mgl32.Mat4
	b    bool
}

type uniformKind uint8

const (
	uniformInt uniformKind = iota
	uniformFloat
	uniformVec2
	uniformVec3
	uniformVec4
	uniformMat4
	uniformBool
)

func IntUniform(v int32) UniformValue       { return UniformValue{kind: uniformInt, i: v} }
func FloatUniform(v float32) UniformValue   { return UniformValue{kind: uniformFloat, f: v} }
func Vec2Uniform(v mgl32.Vec2) UniformValue { return UniformValue{kind: uniformVec2, v2: v} }
func Vec3Uniform(v mgl32.Vec3) UniformValue { return UniformValue{kind: uniformVec3, v3: v} }
func Vec4Uniform(v mgl32.Vec4) UniformValue { return UniformValue{kind: uniformVec4, v4: v} }
func Mat4Uniform(v mgl32.Mat4) UniformValue { return UniformValue{kind: uniformMat4, m4: v} }
func BoolUniform(v bool) UniformValue       { return UniformValue{kind: uniformBool, b: v} }

// HashUniforms returns a deterministic 64-bit digest of a uniform bag, keys
// sorted before hashing so the result doesn't depend on map iteration
// order. Intended for cache-key use (e.g. "has this custom material's
// uniform set changed since last upload") the same way the original uses
// it to dedupe pipeline variants.
func HashUniforms(uniforms map[string]UniformValue) uint64 {
	keys := make([]string, 0, len(uniforms))
	for k := range uniforms {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := fnv.New64a()
	var buf [8]byte

	writeUint64 := func(v uint64) {
		for i := 0; i < 8; i++ {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}
	writeFloat := func(f float32) { writeUint64(uint64(math.Float32bits(f))) }

	for _, k := range keys {
		h.Write([]byte(k))
		u := uniforms[k]
		switch u.kind {
		case uniformInt:
			writeUint64(uint64(uint32(u.i)))
		case uniformFloat:
			writeFloat(u.f)
		case uniformVec2:
			writeFloat(u.v2[0])
			writeFloat(u.v2[1])
		case uniformVec3:
			writeFloat(u.v3[0])
			writeFloat(u.v3[1])
			writeFloat(u.v3[2])
		case uniformVec4:
			writeFloat(u.v4[0])
			writeFloat(u.v4[1])
			writeFloat(u.v4[2])
			writeFloat(u.v4[3])
		case uniformMat4:
			for _, f := range u.m4 {
				writeFloat(f)
			}
		case uniformBool:
			if u.b {
				writeUint64(1)
			} else {
				writeUint64(0)
			}
		}
	}

	return h.Sum64()
}
