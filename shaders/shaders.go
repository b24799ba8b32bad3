// Package shaders embeds the engine's built-in WGSL source, mirroring how
// the teacher's voxelrt/rt/shaders package embeds its own pipeline shaders.
package shaders

import _ "embed"

//go:embed rect.wgsl
var Rect string
