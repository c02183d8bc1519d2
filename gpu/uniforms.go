//go:build !nogpu

package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/glyphatlas"
)

// SDFTextUniformSize is the byte size of the text uniform buffer.
// Layout: transform (mat4x4<f32>) = 64 bytes +
// color (vec4<f32>) = 16 bytes + params (vec4<f32>) = 16 bytes = 96 bytes.
const SDFTextUniformSize = 96

// sdfEdge is the normalized atlas value on the glyph outline.
const sdfEdge = 0.5

// SDFTextUniforms mirrors the shader's TextUniforms struct.
type SDFTextUniforms struct {
	// Transform maps pixel coordinates to clip space, column-major.
	Transform [16]float32

	// Color is premultiplied RGBA.
	Color [4]float32

	// Params holds the SDF radius (0 for coverage atlases), the outline
	// value, and the atlas width and height.
	Params [4]float32
}

// NewSDFTextUniforms builds uniforms for drawing into a viewport of the
// given size with y pointing down. color is straight (non-premultiplied)
// RGBA.
func NewSDFTextUniforms(viewWidth, viewHeight float32, color [4]float32, s glyphatlas.Settings) SDFTextUniforms {
	a := color[3]
	return SDFTextUniforms{
		Transform: OrthoTransform(viewWidth, viewHeight),
		Color:     [4]float32{color[0] * a, color[1] * a, color[2] * a, a},
		Params:    [4]float32{s.SDFRadius, sdfEdge, float32(s.AtlasWidth), float32(s.AtlasHeight)},
	}
}

// OrthoTransform returns the column-major matrix mapping (0,0)-(width,height)
// pixel coordinates, y down, onto clip space.
func OrthoTransform(width, height float32) [16]float32 {
	if width == 0 || height == 0 {
		return [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	}
	return [16]float32{
		2 / width, 0, 0, 0,
		0, -2 / height, 0, 0,
		0, 0, 1, 0,
		-1, 1, 0, 1,
	}
}

// Bytes encodes the uniforms in the little-endian std140 layout of the
// shader.
func (u *SDFTextUniforms) Bytes() []byte {
	buf := make([]byte, SDFTextUniformSize)
	off := 0
	put := func(v float32) {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
		off += 4
	}
	for _, v := range u.Transform {
		put(v)
	}
	for _, v := range u.Color {
		put(v)
	}
	for _, v := range u.Params {
		put(v)
	}
	return buf
}
