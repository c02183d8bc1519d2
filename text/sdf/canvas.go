package sdf

import "image"

// Canvas is a single-channel 8-bit image that glyph cells are written into.
//
// Every write sets the changed flag; Acquire is the only way to clear it.
// The intended upload loop is: poll Changed, and when it reports true call
// Acquire exactly once and upload the returned pixels.
type Canvas struct {
	pix     []byte
	width   int
	height  int
	changed bool
}

// NewCanvas allocates a zeroed canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		pix:    make([]byte, width*height),
		width:  width,
		height: height,
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Changed reports whether the canvas was written since the last Acquire.
func (c *Canvas) Changed() bool { return c.changed }

// Acquire returns the pixel buffer and clears the changed flag.
// The returned slice aliases the canvas; callers must not modify it and
// must copy it if they keep it across further writes.
func (c *Canvas) Acquire() []byte {
	c.changed = false
	return c.pix
}

// MarkChanged sets the changed flag without writing pixels. A cell with no
// pixels still changes what the atlas holds.
func (c *Canvas) MarkChanged() { c.changed = true }

// Pix returns the pixel buffer without touching the changed flag.
func (c *Canvas) Pix() []byte { return c.pix }

// Blit copies src into the canvas with its top-left corner at dst.
// Pixels falling outside the canvas are dropped.
func (c *Canvas) Blit(src Gray, dst image.Point) {
	r := image.Rect(dst.X, dst.Y, dst.X+src.Width, dst.Y+src.Height).
		Intersect(image.Rect(0, 0, c.width, c.height))
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		sy := y - dst.Y
		so := sy*src.Width + (r.Min.X - dst.X)
		do := y*c.width + r.Min.X
		copy(c.pix[do:do+r.Dx()], src.Pix[so:so+r.Dx()])
	}
	c.changed = true
}

// Image returns the canvas as an *image.Gray sharing its pixels.
func (c *Canvas) Image() *image.Gray {
	return &image.Gray{
		Pix:    c.pix,
		Stride: c.width,
		Rect:   image.Rect(0, 0, c.width, c.height),
	}
}

// Release drops the pixel buffer. Further calls see an empty canvas.
func (c *Canvas) Release() {
	c.pix = nil
	c.width, c.height = 0, 0
	c.changed = false
}
