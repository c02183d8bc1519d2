package glyphatlas

import (
	"image"

	"github.com/gogpu/glyphatlas/text/sdf"
)

// glyphEntry is an internal cache entry.
type glyphEntry struct {
	info  GlyphInfo
	alloc sdf.AllocID // zero unless info.Kind == GlyphDefault
}

// glyphCache maps characters to their resolved records.
// Entries are only ever added; runes keeps insertion order so kerning
// completion and introspection are deterministic.
type glyphCache struct {
	entries map[rune]glyphEntry
	runes   []rune
}

func newGlyphCache() glyphCache {
	return glyphCache{
		entries: make(map[rune]glyphEntry, 128),
		runes:   make([]rune, 0, 128),
	}
}

func (c *glyphCache) get(r rune) (GlyphInfo, bool) {
	e, ok := c.entries[r]
	return e.info, ok
}

func (c *glyphCache) insert(r rune, e glyphEntry) {
	c.entries[r] = e
	c.runes = append(c.runes, r)
}

func (c *glyphCache) len() int {
	return len(c.runes)
}

// resolveGlyph computes the record for a character that is not cached yet,
// writing its cell into the atlas when it is visible.
func (fc *FontCache) resolveGlyph(r rune) glyphEntry {
	if !fc.src.HasGlyph(r) {
		if isWhitespace(r) {
			return glyphEntry{info: GlyphInfo{Kind: GlyphWhitespace}}
		}
		return glyphEntry{info: GlyphInfo{Kind: GlyphNotContained}}
	}

	bm, m, err := fc.src.Rasterize(r, float64(fc.settings.FontSize))
	if err != nil {
		Logger().Warn("glyphatlas: rasterize failed", "rune", string(r), "err", err)
		return glyphEntry{info: GlyphInfo{Kind: GlyphNotContained}}
	}

	if isWhitespace(r) {
		return glyphEntry{info: GlyphInfo{
			Kind:    GlyphWhitespace,
			Metrics: GlyphMetrics{Advance: m.Advance},
		}}
	}

	pad := int(fc.settings.PadSize)
	cell, err := fc.encodeCell(sdf.Gray(bm), pad)
	if err != nil {
		Logger().Warn("glyphatlas: encode failed", "rune", string(r), "err", err)
		return glyphEntry{info: GlyphInfo{Kind: GlyphNotContained}}
	}

	alloc, ok := fc.alloc.Allocate(cell.Width, cell.Height)
	if !ok {
		fc.atlasFull(r, cell.Width, cell.Height)
	}
	fc.canvas.Blit(cell, alloc.Rect.Min)
	fc.canvas.MarkChanged()
	fc.checkUtilization()

	// The allocation is at least 1x1; the UV spans only the cell.
	cellMax := alloc.Rect.Min.Add(image.Pt(cell.Width, cell.Height))

	aw := float32(fc.settings.AtlasWidth)
	ah := float32(fc.settings.AtlasHeight)
	return glyphEntry{
		alloc: alloc.ID,
		info: GlyphInfo{
			Kind: GlyphDefault,
			Metrics: GlyphMetrics{
				XMin:    float32(m.XMin - pad),
				YMin:    float32(m.YMin - pad),
				Width:   float32(m.Width + 2*pad),
				Height:  float32(m.Height + 2*pad),
				Advance: m.Advance,
			},
			UV: UVRect{
				MinX: float32(alloc.Rect.Min.X) / aw,
				MinY: float32(alloc.Rect.Min.Y) / ah,
				MaxX: float32(cellMax.X) / aw,
				MaxY: float32(cellMax.Y) / ah,
			},
		},
	}
}

// encodeCell produces the atlas cell for a glyph bitmap: a distance field,
// or the bitmap itself surrounded by pad empty pixels when SDFRadius is 0.
// A distance field aliases fc.ws and must be copied before the next call.
func (fc *FontCache) encodeCell(bm sdf.Gray, pad int) (sdf.Gray, error) {
	if fc.settings.SDFRadius == 0 {
		w, h := bm.Width+2*pad, bm.Height+2*pad
		cell := sdf.Gray{Width: w, Height: h, Pix: make([]byte, w*h)}
		for y := 0; y < bm.Height; y++ {
			copy(cell.Pix[(y+pad)*w+pad:], bm.Pix[y*bm.Width:(y+1)*bm.Width])
		}
		return cell, nil
	}
	return sdf.Encode(bm, sdf.DefaultParams(pad, float64(fc.settings.SDFRadius)), &fc.ws)
}

// atlasFull logs and panics with *AtlasFullError.
func (fc *FontCache) atlasFull(r rune, w, h int) {
	err := &AtlasFullError{
		Rune:        r,
		Width:       w,
		Height:      h,
		AtlasWidth:  int(fc.settings.AtlasWidth),
		AtlasHeight: int(fc.settings.AtlasHeight),
		Glyphs:      fc.alloc.Count(),
	}
	Logger().Error("glyphatlas: atlas exhausted",
		"rune", string(r),
		"cell", [2]int{w, h},
		"atlas", [2]int{err.AtlasWidth, err.AtlasHeight},
		"glyphs", err.Glyphs)
	panic(err)
}

// checkUtilization warns once when the atlas passes 90% coverage.
func (fc *FontCache) checkUtilization() {
	if fc.warnedFull {
		return
	}
	if u := fc.alloc.Utilization(); u >= 0.9 {
		fc.warnedFull = true
		Logger().Warn("glyphatlas: atlas nearly full",
			"utilization", u,
			"glyphs", fc.alloc.Count())
	}
}
