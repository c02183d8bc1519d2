package text

import (
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Bitmap is a tightly packed 8-bit coverage image (stride == Width).
// Row 0 is the top of the glyph.
type Bitmap struct {
	Width  int
	Height int
	Pix    []byte
}

// RasterMetrics places a rasterized glyph relative to its origin on the
// baseline, in whole pixels with y pointing up.
type RasterMetrics struct {
	// XMin is the left edge of the bitmap.
	XMin int
	// YMin is the bottom edge of the bitmap.
	YMin int
	// Width and Height are the bitmap dimensions.
	Width  int
	Height int
	// Advance is the horizontal pen advance in (fractional) pixels.
	Advance float32
}

// Rasterize renders the glyph for r at ppem pixels per em.
//
// Glyphs without an outline, such as a space, produce an empty bitmap with
// a non-zero advance. The returned Pix is freshly allocated and owned by the
// caller.
func (s *FontSource) Rasterize(r rune, ppem float64) (Bitmap, RasterMetrics, error) {
	s.copyCheck()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return Bitmap{}, RasterMetrics{}, ErrClosed
	}

	if err := s.rasterAt(ppem); err != nil {
		return Bitmap{}, RasterMetrics{}, err
	}

	dr, mask, maskp, advance, ok := s.raster.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return Bitmap{}, RasterMetrics{}, &FontError{Reason: "cannot rasterize glyph " + string(r)}
	}

	m := RasterMetrics{
		XMin:    dr.Min.X,
		YMin:    -dr.Max.Y,
		Width:   dr.Dx(),
		Height:  dr.Dy(),
		Advance: float32(advance) / 64,
	}
	if dr.Empty() {
		m.Width, m.Height = 0, 0
		m.XMin, m.YMin = 0, 0
		return Bitmap{}, m, nil
	}

	// The face reuses its mask between calls; copy it out.
	dst := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	xdraw.Draw(dst, dst.Bounds(), mask, maskp, xdraw.Src)

	return Bitmap{Width: m.Width, Height: m.Height, Pix: dst.Pix}, m, nil
}

// rasterAt makes sure s.raster renders at ppem. Callers hold s.mu.
func (s *FontSource) rasterAt(ppem float64) error {
	if s.raster != nil && s.rasterPx == ppem {
		return nil
	}
	face, err := opentype.NewFace(s.outl, &opentype.FaceOptions{
		Size:    ppem,
		DPI:     72,
		Hinting: s.config.hinting.toXImage(),
	})
	if err != nil {
		return &ParseError{Stage: StageRasterizer, Err: err}
	}
	if s.raster != nil {
		_ = s.raster.Close()
	}
	s.raster = face
	s.rasterPx = ppem
	slogger().Debug("text: rasterizer ready", "font", s.name, "ppem", ppem)
	return nil
}
