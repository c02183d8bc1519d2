// Package glyphatlas builds a single-channel glyph atlas on demand.
//
// # Overview
//
// A FontCache owns one font and one atlas texture. The first request for a
// character rasterizes its glyph, turns the bitmap into a signed distance
// field (or keeps it as grayscale when SDFRadius is 0), packs it into the
// atlas and records where it went. Later requests are plain map reads.
//
// # Quick Start
//
//	import "github.com/gogpu/glyphatlas"
//
//	fc, err := glyphatlas.New(fontBytes, glyphatlas.DefaultSettings())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer fc.Close()
//
//	info := fc.Glyph('A')
//	kern := fc.Kerning('A', 'V')
//
//	if fc.HasAtlasChanged() {
//	    img := fc.AtlasImage() // clears the changed flag
//	    upload(img.Pix, img.Width, img.Height)
//	}
//
// # Kerning
//
// Kerning is cached eagerly: adding a character computes its adjustment
// against every character already in the cache, in both orders. The value
// comes from the GPOS pair tables when they have a non-zero rule, otherwise
// from the legacy kern table.
//
// # Atlas Sizing
//
// The atlas never grows and glyphs are never evicted. Running out of space
// panics with *AtlasFullError. Size the atlas for the working set:
//
//	area >= distinct characters × (FontSize + 2·PadSize)² × 1.3
//
// For the 95 printable ASCII characters at the default settings
// (32px, pad 4) that is about 200,000 pixels, so 512×512 is enough.
//
// # Concurrency
//
// FontCache is not safe for concurrent use. Guard it with a sync.Mutex when
// it is shared between goroutines.
package glyphatlas
