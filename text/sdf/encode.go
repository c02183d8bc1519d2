package sdf

import (
	"math"
)

// inf stands in for "no source pixel seen yet" in the squared distance grids.
const inf = 1e20

// Gray is a tightly packed single-channel 8-bit bitmap (stride == Width).
type Gray struct {
	Width  int
	Height int
	Pix    []byte
}

// Valid reports whether the pixel buffer matches the dimensions.
func (g Gray) Valid() bool {
	return g.Width >= 0 && g.Height >= 0 && len(g.Pix) >= g.Width*g.Height
}

// Params controls the distance-field transform.
type Params struct {
	// Pad is the number of pixels added on every side of the input before
	// the transform, so the field can fall off outside the glyph outline.
	Pad int

	// Radius is the distance, in pixels, mapped onto the full 0..255 range.
	Radius float64

	// Cutoff places the outline inside the 0..1 range of the output.
	// 0.5 puts the edge at 127.5.
	Cutoff float64

	// Solidify forces interior pixels to full coverage before the transform,
	// removing faint seams left by overlapping contours.
	Solidify bool

	// Preprocess uses partial coverage to place the edge with subpixel
	// precision. Without it the input is thresholded at 0.5.
	Preprocess bool
}

// DefaultParams returns the parameters used for glyph atlases:
// cutoff 0.5 with solidification and subpixel preprocessing.
func DefaultParams(pad int, radius float64) Params {
	return Params{
		Pad:        pad,
		Radius:     radius,
		Cutoff:     0.5,
		Solidify:   true,
		Preprocess: true,
	}
}

// Workspace holds scratch buffers reused across Encode calls.
// A zero Workspace is ready to use. It is not safe for concurrent use.
type Workspace struct {
	alpha []float64
	outer []float64
	inner []float64
	f     []float64
	z     []float64
	v     []int
	out   []byte
}

// grow makes sure every buffer can hold a grid of n cells whose longest
// side is side.
func (ws *Workspace) grow(srcN, n, side int) {
	ws.alpha = growFloats(ws.alpha, srcN)
	ws.outer = growFloats(ws.outer, n)
	ws.inner = growFloats(ws.inner, n)
	ws.f = growFloats(ws.f, side)
	ws.z = growFloats(ws.z, side+1)
	if cap(ws.v) < side {
		ws.v = make([]int, side)
	}
	ws.v = ws.v[:side]
	if cap(ws.out) < n {
		ws.out = make([]byte, n)
	}
	ws.out = ws.out[:n]
}

func growFloats(b []float64, n int) []float64 {
	if cap(b) < n {
		return make([]float64, n)
	}
	return b[:n]
}

// Encode converts a coverage bitmap into a signed distance field of size
// (src.Width+2*Pad) x (src.Height+2*Pad). Values above Cutoff*255 lie inside
// the outline.
//
// The returned bitmap aliases ws and stays valid until the next Encode call
// with the same workspace. A nil ws allocates a private one.
func Encode(src Gray, p Params, ws *Workspace) (Gray, error) {
	if !src.Valid() {
		return Gray{}, ErrInvalidBitmap
	}
	if p.Pad < 0 || !(p.Radius > 0) || math.IsInf(p.Radius, 0) {
		return Gray{}, &ParamsError{Params: p}
	}
	if ws == nil {
		ws = &Workspace{}
	}

	w := src.Width + 2*p.Pad
	h := src.Height + 2*p.Pad
	n := w * h
	ws.grow(src.Width*src.Height, n, max(w, h))

	alpha := ws.alpha
	for i := range alpha {
		alpha[i] = float64(src.Pix[i]) / 255
	}
	if p.Solidify {
		solidify(alpha, src.Width, src.Height)
	}

	outer, inner := ws.outer, ws.inner
	for i := range outer {
		outer[i] = inf
		inner[i] = 0
	}

	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			a := alpha[y*src.Width+x]
			j := (y+p.Pad)*w + x + p.Pad
			switch {
			case !p.Preprocess:
				if a >= 0.5 {
					outer[j], inner[j] = 0, inf
				}
			case a <= 0:
			case a >= 1:
				outer[j], inner[j] = 0, inf
			default:
				d := 0.5 - a
				if d > 0 {
					outer[j], inner[j] = d*d, 0
				} else {
					outer[j], inner[j] = 0, d*d
				}
			}
		}
	}

	edt(outer, w, h, ws)
	edt(inner, w, h, ws)

	out := ws.out
	for i := range out {
		d := math.Sqrt(outer[i]) - math.Sqrt(inner[i])
		v := math.Round(255 - 255*(d/p.Radius+p.Cutoff))
		out[i] = byte(min(max(v, 0), 255))
	}

	return Gray{Width: w, Height: h, Pix: out}, nil
}

// solidify raises pixels to full coverage when they and their four
// neighbours are at least half covered. Pixels outside the bitmap count
// as empty, so the outermost ring keeps its antialiasing.
func solidify(alpha []float64, w, h int) {
	at := func(x, y int) float64 {
		if x < 0 || y < 0 || x >= w || y >= h {
			return 0
		}
		return alpha[y*w+x]
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if alpha[i] >= 1 || alpha[i] < 0.5 {
				continue
			}
			if at(x-1, y) >= 0.5 && at(x+1, y) >= 0.5 && at(x, y-1) >= 0.5 && at(x, y+1) >= 0.5 {
				alpha[i] = 1
			}
		}
	}
}

// edt runs the Felzenszwalb–Huttenlocher squared Euclidean distance
// transform over a w x h grid in place, columns first then rows.
func edt(grid []float64, w, h int, ws *Workspace) {
	for x := 0; x < w; x++ {
		edt1d(grid, x, w, h, ws)
	}
	for y := 0; y < h; y++ {
		edt1d(grid, y*w, 1, w, ws)
	}
}

// edt1d transforms length samples of grid starting at offset and spaced by
// stride, using the lower envelope of parabolas.
func edt1d(grid []float64, offset, stride, length int, ws *Workspace) {
	f, z, v := ws.f, ws.z, ws.v
	v[0] = 0
	z[0] = -inf
	z[1] = inf
	f[0] = grid[offset]

	k := 0
	for q := 1; q < length; q++ {
		f[q] = grid[offset+q*stride]
		var s float64
		for {
			r := v[k]
			s = (f[q] - f[r] + float64(q*q-r*r)) / float64(2*(q-r))
			if s > z[k] {
				break
			}
			k--
			if k < 0 {
				break
			}
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = inf
	}

	k = 0
	for q := 0; q < length; q++ {
		for z[k+1] < float64(q) {
			k++
		}
		r := v[k]
		qr := float64(q - r)
		grid[offset+q*stride] = f[r] + qr*qr
	}
}
