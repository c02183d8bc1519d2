// Package text loads fonts and answers the per-glyph questions a glyph atlas
// needs: is a rune mapped, what does it look like at a given size, and how
// far apart should two glyphs sit.
//
// A FontSource owns the font bytes and two parsed views of them:
//
//   - github.com/go-text/typesetting for the container, cmap, line metrics
//     and the raw GPOS table
//   - golang.org/x/image/font/opentype for outline rasterization and the
//     legacy kern table
//
// # Example usage
//
//	source, err := text.NewFontSource(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	bitmap, m, err := source.Rasterize('A', 32)
//
// Pair adjustments come from GPOS lookups of type 2 (directly or wrapped in
// a type 9 extension). Only the horizontal advance of the first glyph is
// read; vertical and mark positioning are ignored.
package text
