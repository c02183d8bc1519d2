package fonttest

import "slices"

// BE16 encodes each value as a big-endian uint16 (negative values as int16).
func BE16(vals ...int) []byte {
	out := make([]byte, 0, 2*len(vals))
	for _, v := range vals {
		out = append(out, byte(v>>8), byte(v))
	}
	return out
}

// GPOS builds a version 1.0 GPOS table with empty script and feature
// lists and the given lookups. With no scripts, x/image/font/sfnt finds
// no kern feature and falls back to the kern table.
func GPOS(lookups ...[]byte) []byte {
	out := BE16(1, 0, 10, 12, 14, 0, 0)
	out = append(out, BE16(len(lookups))...)
	off := 2 + 2*len(lookups)
	for _, l := range lookups {
		out = append(out, BE16(off)...)
		off += len(l)
	}
	for _, l := range lookups {
		out = append(out, l...)
	}
	return out
}

// Lookup builds a lookup table of the given type.
func Lookup(kind int, subtables ...[]byte) []byte {
	out := BE16(kind, 0, len(subtables))
	off := 6 + 2*len(subtables)
	for _, s := range subtables {
		out = append(out, BE16(off)...)
		off += len(s)
	}
	for _, s := range subtables {
		out = append(out, s...)
	}
	return out
}

// Coverage builds a format 1 coverage table. Glyphs are sorted.
func Coverage(glyphs ...int) []byte {
	sorted := slices.Clone(glyphs)
	slices.Sort(sorted)
	return append(BE16(1, len(sorted)), BE16(sorted...)...)
}

// Pair is one second glyph and its XAdvance adjustment.
type Pair struct {
	Right, Adv int
}

// PairSet lists the pairs starting with First.
type PairSet struct {
	First int
	Pairs []Pair
}

// PairPosFormat1 builds a PairPos format 1 subtable with XAdvance-only
// records for the first glyph.
func PairPosFormat1(sets ...PairSet) []byte {
	sets = slices.Clone(sets)
	slices.SortFunc(sets, func(a, b PairSet) int { return a.First - b.First })

	firsts := make([]int, len(sets))
	hdrLen := 10 + 2*len(sets)
	var body []byte
	offsets := make([]int, len(sets))
	for i, set := range sets {
		firsts[i] = set.First
		pairs := slices.Clone(set.Pairs)
		slices.SortFunc(pairs, func(a, b Pair) int { return a.Right - b.Right })

		offsets[i] = hdrLen + len(body)
		body = append(body, BE16(len(pairs))...)
		for _, p := range pairs {
			body = append(body, BE16(p.Right, p.Adv)...)
		}
	}
	out := BE16(1, hdrLen+len(body), ValueXAdvance, 0, len(sets))
	out = append(out, BE16(offsets...)...)
	out = append(out, body...)
	return append(out, Coverage(firsts...)...)
}

// ClassRange assigns Class to the glyphs Start through End.
type ClassRange struct {
	Start, End, Class int
}

// ClassDef builds a format 2 class definition table.
func ClassDef(ranges ...ClassRange) []byte {
	ranges = slices.Clone(ranges)
	slices.SortFunc(ranges, func(a, b ClassRange) int { return a.Start - b.Start })
	out := BE16(2, len(ranges))
	for _, r := range ranges {
		out = append(out, BE16(r.Start, r.End, r.Class)...)
	}
	return out
}

// PairPosFormat2 builds a PairPos format 2 subtable. Every first value
// record carries an XPlacement of 7 ahead of the XAdvance from matrix,
// which is indexed by first class then second class. The matrix
// dimensions must match the class counts of the two definitions.
func PairPosFormat2(covered []int, classDef1, classDef2 []byte, matrix [][]int) []byte {
	var cells []byte
	for _, row := range matrix {
		for _, adv := range row {
			cells = append(cells, BE16(7, adv)...)
		}
	}
	cov := Coverage(covered...)

	covOff := 16 + len(cells)
	cd1Off := covOff + len(cov)
	cd2Off := cd1Off + len(classDef1)
	out := BE16(2, covOff, ValueXPlacement|ValueXAdvance, 0, cd1Off, cd2Off, len(matrix), len(matrix[0]))
	out = append(out, cells...)
	out = append(out, cov...)
	out = append(out, classDef1...)
	return append(out, classDef2...)
}

// SinglePos builds a SinglePos format 1 subtable adjusting the advance of
// the given glyphs.
func SinglePos(adv int, glyphs ...int) []byte {
	return append(BE16(1, 8, ValueXAdvance, adv), Coverage(glyphs...)...)
}

// Extension wraps a subtable of the given lookup type.
func Extension(kind int, sub []byte) []byte {
	return append(BE16(1, kind, 0, 8), sub...)
}

// KernPair is one legacy kern table entry in font units.
type KernPair struct {
	Left, Right, Value int
}

// Kern builds a version 0 kern table with one horizontal format 0
// subtable.
func Kern(pairs ...KernPair) []byte {
	pairs = slices.Clone(pairs)
	slices.SortFunc(pairs, func(a, b KernPair) int {
		if a.Left != b.Left {
			return a.Left - b.Left
		}
		return a.Right - b.Right
	})

	n := len(pairs)
	entrySelector := 0
	for n > 0 && 1<<(entrySelector+1) <= n {
		entrySelector++
	}
	searchRange := (1 << entrySelector) * 6
	if n == 0 {
		searchRange = 0
	}

	out := BE16(0, 1)
	out = append(out, BE16(0, 6+8+6*n, 0x0001)...)
	out = append(out, BE16(n, searchRange, entrySelector, 6*n-searchRange)...)
	for _, p := range pairs {
		out = append(out, BE16(p.Left, p.Right, p.Value)...)
	}
	return out
}
