package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype/tables"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontSource represents a loaded font file.
//
// The font bytes are copied once and every parsed view (cmap, outlines,
// GPOS) borrows from that copy, so they live and die together.
//
// FontSource is safe for concurrent use; Close must not overlap other calls.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	// Font data
	data  []byte
	face  *gotext.Face // cmap, extents, upem, GPOS
	outl  *sfnt.Font   // outlines, legacy kern
	pairs pairTables

	// Metadata
	name string

	// mu protects the rasterizer state below and the closed flag.
	mu       sync.Mutex
	closed   bool
	raster   font.Face
	rasterPx float64
	buf      sfnt.Buffer

	// Configuration
	config sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
//
// Parsing failures are reported as *ParseError; the Stage field tells
// whether the font container or the rasterizer rejected the bytes.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	face, err := gotext.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, &ParseError{Stage: StageContainer, Err: err}
	}

	outl, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, &ParseError{Stage: StageRasterizer, Err: err}
	}

	s := &FontSource{
		data:   dataCopy,
		face:   face,
		outl:   outl,
		config: config,
	}
	s.addr = s // Self-reference for copy detection

	if !config.skipGPOS {
		s.pairs = collectPairTables(face.GPOS)
	}
	s.name = extractFontName(outl)

	slogger().Debug("text: font source loaded",
		"name", s.name,
		"glyphs", outl.NumGlyphs(),
		"pairSubtables", len(s.pairs),
		"gpos", !config.skipGPOS)

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// UnitsPerEm returns the design units per em.
func (s *FontSource) UnitsPerEm() int {
	s.copyCheck()
	if s.face == nil {
		return 0
	}
	return int(s.face.Upem())
}

// GlyphIndex returns the glyph mapped to r by the cmap.
// It reports false when the font has no glyph for r (including a mapping
// to .notdef).
func (s *FontSource) GlyphIndex(r rune) (uint16, bool) {
	s.copyCheck()
	if s.face == nil {
		return 0, false
	}
	gid, ok := s.face.NominalGlyph(r)
	if !ok || gid == 0 {
		return 0, false
	}
	return uint16(gid), true
}

// HasGlyph reports whether the font maps r to a real glyph.
func (s *FontSource) HasGlyph(r rune) bool {
	_, ok := s.GlyphIndex(r)
	return ok
}

// HasPairPositioning reports whether the GPOS table has pair adjustment
// subtables.
func (s *FontSource) HasPairPositioning() bool {
	s.copyCheck()
	return len(s.pairs) > 0
}

// LineMetrics returns the horizontal line metrics scaled to ppem.
// Fonts without horizontal header metrics yield a *ParseError with
// Stage StageMetrics.
func (s *FontSource) LineMetrics(ppem float64) (LineMetrics, error) {
	s.copyCheck()
	if s.face == nil {
		return LineMetrics{}, ErrClosed
	}
	ext, ok := s.face.FontHExtents()
	if !ok {
		return LineMetrics{}, &ParseError{
			Stage: StageMetrics,
			Err:   &FontError{Reason: "font does not have horizontal line metrics"},
		}
	}
	return scaleExtents(ext.Ascender, ext.Descender, ext.LineGap, s.UnitsPerEm(), ppem), nil
}

// PairAdjustment returns the GPOS horizontal advance adjustment, in font
// units, applied to left when it is followed by right. ok is false when no
// pair rule covers the two glyphs. The first matching rule decides, even if
// its adjustment is zero.
func (s *FontSource) PairAdjustment(left, right rune) (adj int16, ok bool) {
	s.copyCheck()
	if len(s.pairs) == 0 {
		return 0, false
	}
	l, ok := s.GlyphIndex(left)
	if !ok {
		return 0, false
	}
	r, ok := s.GlyphIndex(right)
	if !ok {
		return 0, false
	}
	return s.pairs.lookup(tables.GlyphID(l), tables.GlyphID(r))
}

// Kern returns the legacy kern table adjustment between left and right at
// ppem, in pixels. ok is false when the table has no entry for the pair.
func (s *FontSource) Kern(left, right rune, ppem float64) (float32, bool) {
	s.copyCheck()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, false
	}

	l, err := s.outl.GlyphIndex(&s.buf, left)
	if err != nil || l == 0 {
		return 0, false
	}
	r, err := s.outl.GlyphIndex(&s.buf, right)
	if err != nil || r == 0 {
		return 0, false
	}
	k, err := s.outl.Kern(&s.buf, l, r, fixed.Int26_6(ppem*64), s.config.hinting.toXImage())
	if err != nil || k == 0 {
		return 0, false
	}
	return float32(k) / 64, true
}

// Close releases resources associated with the FontSource.
// Later calls on the source report missing glyphs and zero metrics.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	var err error
	if s.raster != nil {
		err = s.raster.Close()
		s.raster = nil
	}
	s.data = nil
	s.face = nil
	s.pairs = nil
	return err
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name from the name table.
func extractFontName(f *sfnt.Font) string {
	var buf sfnt.Buffer
	if name, err := f.Name(&buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(&buf, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}
