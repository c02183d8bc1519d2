package glyphatlas

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphatlas/internal/fonttest"
	"github.com/gogpu/glyphatlas/text"
)

// fakeKerning serves fixed GPOS and kern table answers.
type fakeKerning struct {
	gpos  map[runePair]int16
	kern  map[runePair]float32
	calls int
}

func (f *fakeKerning) PairAdjustment(left, right rune) (int16, bool) {
	f.calls++
	v, ok := f.gpos[runePair{left, right}]
	return v, ok
}

func (f *fakeKerning) Kern(left, right rune, _ float64) (float32, bool) {
	v, ok := f.kern[runePair{left, right}]
	return v, ok
}

func newFakeKerning() *fakeKerning {
	return &fakeKerning{
		gpos: map[runePair]int16{
			{'A', 'V'}: -100,
			{'T', 'o'}: 0, // zero rule defers to the kern table
			{'L', 'L'}: 40,
		},
		kern: map[runePair]float32{
			{'V', 'A'}: -2.5,
			{'T', 'o'}: 1.5,
			{'A', 'V'}: -9, // shadowed by GPOS
		},
	}
}

func TestKerningResolver(t *testing.T) {
	k := kerningResolver{src: newFakeKerning(), ppem: 32, scale: 0.5}

	tests := []struct {
		name        string
		left, right rune
		want        float32
		found       bool
	}{
		{"gpos wins over kern", 'A', 'V', -50, true},
		{"kern fallback", 'V', 'A', -2.5, true},
		{"zero gpos rule falls back", 'T', 'o', 1.5, true},
		{"self pair", 'L', 'L', 20, true},
		{"no entry", 'o', 'T', 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := k.resolve(tt.left, tt.right)
			if got != tt.want || ok != tt.found {
				t.Errorf("resolve(%q, %q) = (%v, %v), want (%v, %v)", tt.left, tt.right, got, ok, tt.want, tt.found)
			}
		})
	}
}

func TestNewKerningResolver_Scale(t *testing.T) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()

	k := newKerningResolver(src, 32)
	if want := float32(32) / 2048; k.scale != want {
		t.Errorf("scale = %v, want %v", k.scale, want)
	}
	if k.ppem != 32 {
		t.Errorf("ppem = %v, want 32", k.ppem)
	}
}

func cacheWithFakeKerning(t *testing.T) *FontCache {
	t.Helper()
	fc := newTestCache(t, DefaultSettings())
	fc.kern = kerningResolver{src: newFakeKerning(), ppem: 32, scale: 0.5}
	return fc
}

func TestFontCache_KerningNotSymmetric(t *testing.T) {
	fc := cacheWithFakeKerning(t)
	fc.WarmUp("AV")

	if got := fc.Kerning('A', 'V'); got != -50 {
		t.Errorf("Kerning('A','V') = %v, want -50", got)
	}
	if got := fc.Kerning('V', 'A'); got != -2.5 {
		t.Errorf("Kerning('V','A') = %v, want -2.5", got)
	}
}

func TestFontCache_KerningCompleteInEitherOrder(t *testing.T) {
	for _, order := range []string{"AVToL", "LoTVA", "oVLAT"} {
		t.Run(order, func(t *testing.T) {
			fc := cacheWithFakeKerning(t)
			for _, r := range order {
				fc.Glyph(r)
			}

			want := map[runePair]float32{
				{'A', 'V'}: -50,
				{'V', 'A'}: -2.5,
				{'T', 'o'}: 1.5,
				{'L', 'L'}: 20,
			}
			for p, v := range want {
				if got := fc.Kerning(p.left, p.right); got != v {
					t.Errorf("Kerning(%q, %q) = %v, want %v", p.left, p.right, got, v)
				}
			}
			if n := fc.KerningPairCount(); n != len(want) {
				t.Errorf("KerningPairCount() = %d, want %d", n, len(want))
			}
		})
	}
}

func TestFontCache_KerningOnlyForSeenCharacters(t *testing.T) {
	fc := cacheWithFakeKerning(t)
	fc.Glyph('A')

	if got := fc.Kerning('A', 'V'); got != 0 {
		t.Errorf("Kerning('A','V') before 'V' was added = %v, want 0", got)
	}
	fc.Glyph('V')
	if got := fc.Kerning('A', 'V'); got != -50 {
		t.Errorf("Kerning('A','V') after 'V' was added = %v, want -50", got)
	}
}

func TestFontCache_KerningWorkPerInsert(t *testing.T) {
	fake := newFakeKerning()
	fc := newTestCache(t, DefaultSettings())
	fc.kern = kerningResolver{src: fake, ppem: 32, scale: 0.5}

	fc.WarmUp("abcd")
	// Inserting the n-th character resolves 2n-1 pairs.
	if want := 1 + 3 + 5 + 7; fake.calls != want {
		t.Errorf("resolved %d pairs, want %d", fake.calls, want)
	}
	fake.calls = 0
	fc.WarmUp("abcd")
	if fake.calls != 0 {
		t.Errorf("cached characters resolved %d pairs, want 0", fake.calls)
	}
}

func TestFontCache_KerningMatchesResolver(t *testing.T) {
	fc := newTestCache(t, DefaultSettings())
	const chars = "AVToWaLy. "
	fc.WarmUp(chars)

	for _, l := range chars {
		for _, r := range chars {
			want, _ := fc.kern.resolve(l, r)
			if got := fc.Kerning(l, r); got != want {
				t.Errorf("Kerning(%q, %q) = %v, want %v", l, r, got, want)
			}
		}
	}
}

func TestFontCache_KerningFromFontTables(t *testing.T) {
	plain, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	id := make(map[rune]int)
	for _, r := range "AVTo" {
		gid, ok := plain.GlyphIndex(r)
		if !ok {
			t.Fatalf("Go Regular has no glyph for %q", r)
		}
		id[r] = int(gid)
	}
	_ = plain.Close()

	gpos := fonttest.GPOS(fonttest.Lookup(fonttest.LookupPairPos, fonttest.PairPosFormat1(
		fonttest.PairSet{First: id['A'], Pairs: []fonttest.Pair{{Right: id['V'], Adv: -128}}},
		fonttest.PairSet{First: id['T'], Pairs: []fonttest.Pair{{Right: id['o'], Adv: 0}}},
	)))
	kern := fonttest.Kern(
		fonttest.KernPair{Left: id['A'], Right: id['V'], Value: 64},
		fonttest.KernPair{Left: id['V'], Right: id['A'], Value: -64},
		fonttest.KernPair{Left: id['T'], Right: id['o'], Value: -192},
	)
	data, err := fonttest.WithTables(goregular.TTF, map[string][]byte{"GPOS": gpos, "kern": kern})
	if err != nil {
		t.Fatalf("WithTables failed: %v", err)
	}

	fc, err := New(data, DefaultSettings())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer fc.Close()
	fc.WarmUp("AVTo")

	// 32 px per em over 2048 units per em.
	want := map[runePair]float32{
		{'A', 'V'}: -2, // GPOS shadows the kern table
		{'V', 'A'}: -1, // kern table only
		{'T', 'o'}: -3, // zero GPOS rule falls back to the kern table
	}
	for p, v := range want {
		if got := fc.Kerning(p.left, p.right); got != v {
			t.Errorf("Kerning(%q, %q) = %v, want %v", p.left, p.right, got, v)
		}
	}
	if got := fc.Kerning('o', 'T'); got != 0 {
		t.Errorf("Kerning('o','T') = %v, want 0", got)
	}
	if n := fc.KerningPairCount(); n != len(want) {
		t.Errorf("KerningPairCount() = %d, want %d", n, len(want))
	}
}
