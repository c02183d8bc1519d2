package capi

import "github.com/gogpu/glyphatlas"

// Settings mirrors glyphatlas.Settings with a C-compatible layout (24 bytes).
type Settings struct {
	FontSize                    uint32
	PadSize                     uint32
	SDFRadius                   float32
	AtlasWidth                  uint32
	AtlasHeight                 uint32
	InitializeWithDefaultGlyphs bool
}

func (s Settings) toCache() glyphatlas.Settings {
	return glyphatlas.Settings{
		FontSize:                    s.FontSize,
		PadSize:                     s.PadSize,
		SDFRadius:                   s.SDFRadius,
		AtlasWidth:                  s.AtlasWidth,
		AtlasHeight:                 s.AtlasHeight,
		InitializeWithDefaultGlyphs: s.InitializeWithDefaultGlyphs,
	}
}

// GlyphInfo is the flattened glyph record (40 bytes).
// Kind holds a glyphatlas.GlyphKind value.
type GlyphInfo struct {
	Kind    uint8
	_       [3]byte
	XMin    float32
	YMin    float32
	Width   float32
	Height  float32
	Advance float32
	UVMinX  float32
	UVMinY  float32
	UVMaxX  float32
	UVMaxY  float32
}

func fromGlyphInfo(g glyphatlas.GlyphInfo) GlyphInfo {
	return GlyphInfo{
		Kind:    uint8(g.Kind),
		XMin:    g.Metrics.XMin,
		YMin:    g.Metrics.YMin,
		Width:   g.Metrics.Width,
		Height:  g.Metrics.Height,
		Advance: g.Metrics.Advance,
		UVMinX:  g.UV.MinX,
		UVMinY:  g.UV.MinY,
		UVMaxX:  g.UV.MaxX,
		UVMaxY:  g.UV.MaxY,
	}
}

// LineMetrics mirrors glyphatlas.LineMetrics (12 bytes).
type LineMetrics struct {
	Ascent  float32
	Descent float32
	LineGap float32
}

// AtlasImage describes the atlas pixels. Pix aliases the cache's buffer and
// stays valid until the next glyph is added or the handle is freed.
type AtlasImage struct {
	Width  uint32
	Height uint32
	Pix    []byte
}
