package glyphatlas

import (
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/gogpu/glyphatlas/text"
	"github.com/gogpu/glyphatlas/text/sdf"
)

// FontCache is an on-demand glyph atlas for one font at one size.
//
// FontCache is not safe for concurrent use.
type FontCache struct {
	settings Settings
	src      *text.FontSource
	metrics  LineMetrics

	canvas *sdf.Canvas
	alloc  *sdf.ShelfAllocator
	ws     sdf.Workspace

	glyphs  glyphCache
	kern    kerningResolver
	kerning map[runePair]float32

	warnedFull bool
	closed     bool
}

// New parses fontData and creates an empty cache for it.
//
// Errors:
//   - settings rejected by Validate: *SettingsError (errors.Is ErrInvalidSettings)
//   - unparseable font container: ErrFontParse
//   - outlines the rasterizer refuses: *RasterizerError
//   - no horizontal line metrics: ErrNoLineMetrics
//
// When s.InitializeWithDefaultGlyphs is set, DefaultGlyphSet is added
// before New returns, which panics if the atlas cannot hold it.
func New(fontData []byte, s Settings, opts ...text.SourceOption) (*FontCache, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	src, err := text.NewFontSource(fontData, opts...)
	if err != nil {
		return nil, classifySourceError(err)
	}

	lm, err := src.LineMetrics(float64(s.FontSize))
	if err != nil {
		_ = src.Close()
		return nil, fmt.Errorf("%w: %w", ErrNoLineMetrics, err)
	}

	fc := &FontCache{
		settings: s,
		src:      src,
		metrics: LineMetrics{
			Ascent:  lm.Ascent,
			Descent: lm.Descent,
			LineGap: lm.LineGap,
		},
		canvas:  sdf.NewCanvas(int(s.AtlasWidth), int(s.AtlasHeight)),
		alloc:   sdf.NewShelfAllocator(int(s.AtlasWidth), int(s.AtlasHeight), 0),
		glyphs:  newGlyphCache(),
		kern:    newKerningResolver(src, s.FontSize),
		kerning: make(map[runePair]float32),
	}

	Logger().Info("glyphatlas: font cache created",
		"font", src.Name(),
		"size", s.FontSize,
		"atlas", fmt.Sprintf("%dx%d", s.AtlasWidth, s.AtlasHeight),
		"sdf", s.SDFRadius > 0,
		"gpos", src.HasPairPositioning())

	if s.InitializeWithDefaultGlyphs {
		fc.WarmUp(DefaultGlyphSet)
	}
	return fc, nil
}

// classifySourceError maps font loading failures onto the package errors.
func classifySourceError(err error) error {
	var pe *text.ParseError
	if errors.As(err, &pe) && pe.Stage == text.StageRasterizer {
		return &RasterizerError{Err: pe.Err}
	}
	return fmt.Errorf("%w: %w", ErrFontParse, err)
}

// Glyph returns the record for r, adding it to the cache and the atlas on
// first use. Invalid code points (surrogates, values above U+10FFFF) are
// reported as GlyphNotContained without being cached.
//
// Glyph panics with *AtlasFullError when a new visible glyph does not fit.
func (fc *FontCache) Glyph(r rune) GlyphInfo {
	if fc == nil || fc.closed || !utf8.ValidRune(r) {
		return GlyphInfo{}
	}
	if info, ok := fc.glyphs.get(r); ok {
		return info
	}

	e := fc.resolveGlyph(r)
	fc.glyphs.insert(r, e)
	fc.completeKerning(r)

	Logger().Debug("glyphatlas: glyph added",
		"rune", string(r),
		"kind", e.info.Kind,
		"width", e.info.Metrics.Width,
		"height", e.info.Metrics.Height)
	return e.info
}

// Kerning returns the horizontal adjustment, in pixels, between left and
// right when left is drawn first. Pairs involving characters that were
// never passed to Glyph report 0.
func (fc *FontCache) Kerning(left, right rune) float32 {
	if fc == nil || fc.closed {
		return 0
	}
	return fc.kerning[runePair{left, right}]
}

// WarmUp adds every character of chars to the cache.
func (fc *FontCache) WarmUp(chars string) {
	if fc == nil || fc.closed {
		return
	}
	before := fc.glyphs.len()
	for _, r := range chars {
		fc.Glyph(r)
	}
	Logger().Info("glyphatlas: warmup done",
		"added", fc.glyphs.len()-before,
		"glyphs", fc.glyphs.len(),
		"utilization", fc.alloc.Utilization())
}

// HasAtlasChanged reports whether the atlas was written since the last
// AtlasImage call. It does not clear the flag.
func (fc *FontCache) HasAtlasChanged() bool {
	if fc == nil || fc.closed {
		return false
	}
	return fc.canvas.Changed()
}

// AtlasImage returns the atlas pixels and clears the changed flag.
func (fc *FontCache) AtlasImage() AtlasImage {
	if fc == nil || fc.closed {
		return AtlasImage{}
	}
	return AtlasImage{
		Width:  fc.canvas.Width(),
		Height: fc.canvas.Height(),
		Pix:    fc.canvas.Acquire(),
	}
}

// LineMetrics returns the font's line metrics at the cache's font size.
func (fc *FontCache) LineMetrics() LineMetrics {
	if fc == nil || fc.closed {
		return LineMetrics{}
	}
	return fc.metrics
}

// Settings returns the settings the cache was created with.
func (fc *FontCache) Settings() Settings {
	if fc == nil {
		return Settings{}
	}
	return fc.settings
}

// GlyphCount returns the number of cached characters of any kind.
func (fc *FontCache) GlyphCount() int {
	if fc == nil || fc.closed {
		return 0
	}
	return fc.glyphs.len()
}

// Characters returns the cached characters in the order they were added.
func (fc *FontCache) Characters() []rune {
	if fc == nil || fc.closed {
		return nil
	}
	return slices.Clone(fc.glyphs.runes)
}

// KerningPairCount returns the number of stored non-zero kerning pairs.
func (fc *FontCache) KerningPairCount() int {
	if fc == nil || fc.closed {
		return 0
	}
	return len(fc.kerning)
}

// Utilization returns the fraction of atlas area occupied by glyph cells.
func (fc *FontCache) Utilization() float64 {
	if fc == nil || fc.closed {
		return 0
	}
	return fc.alloc.Utilization()
}

// Close releases the font and the atlas. It is safe to call more than once.
// A closed cache answers every query with zero values.
func (fc *FontCache) Close() error {
	if fc == nil || fc.closed {
		return nil
	}
	fc.closed = true

	err := fc.src.Close()
	fc.canvas.Release()
	fc.glyphs = glyphCache{}
	fc.kerning = nil
	fc.ws = sdf.Workspace{}
	return err
}
