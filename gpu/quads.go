//go:build !nogpu

package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/glyphatlas"
)

// TextVertexStride is the byte stride per vertex.
// Layout per vertex:
//
//	position  (vec2<f32>) = 8 bytes  (location 0)
//	tex_coord (vec2<f32>) = 8 bytes  (location 1)
const TextVertexStride = 16

// TextVertex is one corner of a glyph quad.
type TextVertex struct {
	X, Y float32 // pixels, y down
	U, V float32
}

// GlyphCache is the part of *glyphatlas.FontCache used for layout.
type GlyphCache interface {
	Glyph(r rune) glyphatlas.GlyphInfo
	Kerning(left, right rune) float32
}

// AppendGlyphQuad appends the four corners of info's atlas cell, drawn with
// the pen at (x, baseline) and scaled by scale, in the order top-left,
// top-right, bottom-right, bottom-left. Glyphs without an atlas cell append
// nothing.
func AppendGlyphQuad(dst []TextVertex, info glyphatlas.GlyphInfo, x, baseline, scale float32) []TextVertex {
	if info.Kind != glyphatlas.GlyphDefault {
		return dst
	}
	m := info.Metrics
	x0 := x + m.XMin*scale
	x1 := x0 + m.Width*scale
	y1 := baseline - m.YMin*scale
	y0 := y1 - m.Height*scale
	uv := info.UV
	return append(dst,
		TextVertex{x0, y0, uv.MinX, uv.MinY},
		TextVertex{x1, y0, uv.MaxX, uv.MinY},
		TextVertex{x1, y1, uv.MaxX, uv.MaxY},
		TextVertex{x0, y1, uv.MinX, uv.MaxY},
	)
}

// AppendTextQuads lays s out on one line starting at (x, baseline), adding
// any new glyphs to cache, and appends one quad per visible glyph. It
// returns the extended slice and the pen position after the last glyph.
func AppendTextQuads(dst []TextVertex, cache GlyphCache, s string, x, baseline, scale float32) ([]TextVertex, float32) {
	prev := rune(-1)
	for _, r := range s {
		if prev >= 0 {
			x += cache.Kerning(prev, r) * scale
		}
		info := cache.Glyph(r)
		dst = AppendGlyphQuad(dst, info, x, baseline, scale)
		x += info.Metrics.Advance * scale
		prev = r
	}
	return dst, x
}

// QuadIndices returns triangle-list indices for n quads built by
// AppendGlyphQuad: two triangles (0,1,2) and (0,2,3) per quad.
// n is limited to 16384 so every index fits in 16 bits.
func QuadIndices(n int) []uint16 {
	n = min(max(n, 0), 16384)
	idx := make([]uint16, 0, n*6)
	for q := 0; q < n; q++ {
		b := uint16(q * 4)
		idx = append(idx, b, b+1, b+2, b, b+2, b+3)
	}
	return idx
}

// VertexBytes encodes vertices for the vertex buffer.
func VertexBytes(verts []TextVertex) []byte {
	buf := make([]byte, len(verts)*TextVertexStride)
	for i, v := range verts {
		o := buf[i*TextVertexStride:]
		binary.LittleEndian.PutUint32(o[0:4], math.Float32bits(v.X))
		binary.LittleEndian.PutUint32(o[4:8], math.Float32bits(v.Y))
		binary.LittleEndian.PutUint32(o[8:12], math.Float32bits(v.U))
		binary.LittleEndian.PutUint32(o[12:16], math.Float32bits(v.V))
	}
	return buf
}
