package glyphatlas

// GlyphKind classifies a cached character.
type GlyphKind uint8

const (
	// GlyphNotContained means the font has no glyph for the character.
	GlyphNotContained GlyphKind = iota
	// GlyphWhitespace is a whitespace character; it has an advance but
	// nothing to draw.
	GlyphWhitespace
	// GlyphDefault is a visible glyph stored in the atlas.
	GlyphDefault
)

// String returns the kind name.
func (k GlyphKind) String() string {
	switch k {
	case GlyphNotContained:
		return "NotContained"
	case GlyphWhitespace:
		return "Whitespace"
	case GlyphDefault:
		return "Default"
	default:
		return "Unknown"
	}
}

// GlyphMetrics positions an atlas cell relative to the pen on the baseline,
// in pixels with y pointing up. The box includes PadSize on every side.
type GlyphMetrics struct {
	XMin    float32
	YMin    float32
	Width   float32
	Height  float32
	Advance float32
}

// UVRect is a normalized rectangle inside the atlas; (0,0) is the first
// pixel of the first row.
type UVRect struct {
	MinX float32
	MinY float32
	MaxX float32
	MaxY float32
}

// GlyphInfo is the cached record for one character.
//
// Whitespace glyphs carry only Metrics.Advance. NotContained glyphs are the
// zero value. A record never changes once created.
type GlyphInfo struct {
	Kind    GlyphKind
	Metrics GlyphMetrics
	UV      UVRect
}

// LineMetrics holds the horizontal line metrics at the cache's font size,
// in pixels. Descent is negative for fonts that reach below the baseline.
type LineMetrics struct {
	Ascent  float32
	Descent float32
	LineGap float32
}

// LineHeight returns the recommended distance between consecutive baselines.
func (m LineMetrics) LineHeight() float32 {
	return m.Ascent - m.Descent + m.LineGap
}

// AtlasImage is a read-only view of the atlas pixels: Width*Height bytes,
// one byte per pixel, row-major from the top. Pix aliases the cache and is
// only valid until the next call that adds a glyph.
type AtlasImage struct {
	Width  int
	Height int
	Pix    []byte
}
