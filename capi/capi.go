package capi

import (
	"errors"
	"sync"
	"unicode/utf8"

	"github.com/gogpu/glyphatlas"
)

// Handle identifies a live FontCache. 0 is the null handle.
type Handle uintptr

// Error messages returned by Create.
const (
	MsgFontParse       = "Font Parsing Error"
	MsgNoLineMetrics   = "font does not have horizontal line metrics"
	MsgInvalidSettings = "invalid font cache settings"
)

type entry struct {
	mu sync.Mutex
	fc *glyphatlas.FontCache
}

var (
	registryMu sync.Mutex
	registry   = make(map[Handle]*entry)
	lastHandle Handle
)

func lookup(h Handle) *entry {
	if h == 0 {
		return nil
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	return registry[h]
}

// Create parses fontData and registers a new cache. On failure it returns
// the null handle and a non-empty message from a fixed set: MsgFontParse,
// MsgNoLineMetrics, MsgInvalidSettings, or the rasterizer's own error text.
//
// fontData is copied; the caller may release it once Create returns.
func Create(fontData []byte, s Settings) (Handle, string) {
	fc, err := glyphatlas.New(fontData, s.toCache())
	if err != nil {
		return 0, errorMessage(err)
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	lastHandle++
	h := lastHandle
	registry[h] = &entry{fc: fc}
	return h, ""
}

func errorMessage(err error) string {
	var re *glyphatlas.RasterizerError
	switch {
	case errors.Is(err, glyphatlas.ErrInvalidSettings):
		return MsgInvalidSettings
	case errors.As(err, &re):
		if msg := re.Err.Error(); msg != "" {
			return msg
		}
		return MsgFontParse
	case errors.Is(err, glyphatlas.ErrNoLineMetrics):
		return MsgNoLineMetrics
	default:
		return MsgFontParse
	}
}

// Free releases the cache behind h. Unknown and null handles are ignored.
func Free(h Handle) {
	if h == 0 {
		return
	}
	registryMu.Lock()
	e := registry[h]
	delete(registry, h)
	registryMu.Unlock()
	if e == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	_ = e.fc.Close()
	e.fc = nil
}

// Live returns the number of handles that have not been freed.
func Live() int {
	registryMu.Lock()
	defer registryMu.Unlock()
	return len(registry)
}

// HasAtlasChanged reports whether the atlas was written since the last
// GetAtlasImage call.
func HasAtlasChanged(h Handle) bool {
	e := lookup(h)
	if e == nil {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fc.HasAtlasChanged()
}

// GetAtlasImage returns the atlas and clears its changed flag.
func GetAtlasImage(h Handle) AtlasImage {
	e := lookup(h)
	if e == nil {
		return AtlasImage{}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	img := e.fc.AtlasImage()
	return AtlasImage{
		Width:  uint32(img.Width),
		Height: uint32(img.Height),
		Pix:    img.Pix,
	}
}

// GetOrAddGlyph returns the record for code point ch, adding it on first use.
// It panics like FontCache.Glyph when the atlas is full.
func GetOrAddGlyph(h Handle, ch uint32) GlyphInfo {
	r, ok := toRune(ch)
	if !ok {
		return GlyphInfo{}
	}
	e := lookup(h)
	if e == nil {
		return GlyphInfo{}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fromGlyphInfo(e.fc.Glyph(r))
}

// GetHorizontalKerning returns the adjustment between left and right in pixels.
func GetHorizontalKerning(h Handle, left, right uint32) float32 {
	l, ok1 := toRune(left)
	r, ok2 := toRune(right)
	if !ok1 || !ok2 {
		return 0
	}
	e := lookup(h)
	if e == nil {
		return 0
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fc.Kerning(l, r)
}

// GetLineMetrics returns the line metrics of the cache's font.
func GetLineMetrics(h Handle) LineMetrics {
	e := lookup(h)
	if e == nil {
		return LineMetrics{}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	m := e.fc.LineMetrics()
	return LineMetrics{Ascent: m.Ascent, Descent: m.Descent, LineGap: m.LineGap}
}

func toRune(ch uint32) (rune, bool) {
	if ch > utf8.MaxRune {
		return 0, false
	}
	r := rune(ch)
	return r, utf8.ValidRune(r)
}
