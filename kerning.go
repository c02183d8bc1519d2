package glyphatlas

import "github.com/gogpu/glyphatlas/text"

// runePair is an ordered (left, right) key; left is rendered first.
type runePair struct {
	left, right rune
}

// kerningSource is the part of *text.FontSource the resolver needs.
type kerningSource interface {
	PairAdjustment(left, right rune) (int16, bool)
	Kern(left, right rune, ppem float64) (float32, bool)
}

// kerningResolver looks up the horizontal adjustment between two glyphs:
// GPOS pair positioning first, the legacy kern table second.
type kerningResolver struct {
	src   kerningSource
	ppem  float64
	scale float32 // font units to pixels
}

func newKerningResolver(src *text.FontSource, fontSize uint32) kerningResolver {
	k := kerningResolver{src: src, ppem: float64(fontSize)}
	if upem := src.UnitsPerEm(); upem > 0 {
		k.scale = float32(fontSize) / float32(upem)
	}
	return k
}

// resolve returns the adjustment in pixels, or false if neither table has
// a non-zero entry for the pair.
func (k kerningResolver) resolve(left, right rune) (float32, bool) {
	if adj, ok := k.src.PairAdjustment(left, right); ok && adj != 0 {
		return float32(adj) * k.scale, true
	}
	return k.src.Kern(left, right, k.ppem)
}

// completeKerning records the kerning between r and every cached character,
// in both orders, including the pair (r, r). r must already be in the cache.
func (fc *FontCache) completeKerning(r rune) {
	added := 0
	for _, o := range fc.glyphs.runes {
		if v, ok := fc.kern.resolve(r, o); ok {
			fc.kerning[runePair{r, o}] = v
			added++
		}
		if o == r {
			continue
		}
		if v, ok := fc.kern.resolve(o, r); ok {
			fc.kerning[runePair{o, r}] = v
			added++
		}
	}
	if added > 0 {
		Logger().Debug("glyphatlas: kerning pairs added", "rune", string(r), "pairs", added)
	}
}
