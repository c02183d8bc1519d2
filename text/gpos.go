package text

import (
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype/tables"
)

// pairTables holds the PairPos subtables of a face in lookup order.
// Extension lookups arrive already resolved from go-text.
type pairTables []tables.PairPosData

// collectPairTables gathers every pair adjustment subtable of the GPOS
// lookup list. Other lookup types are ignored.
func collectPairTables(gpos gotext.GPOS) pairTables {
	var out pairTables
	for _, lookup := range gpos.Lookups {
		for _, sub := range lookup.Subtables {
			if pp, ok := sub.(tables.PairPos); ok && pp.Data != nil {
				out = append(out, pp.Data)
			}
		}
	}
	return out
}

// lookup returns the XAdvance of the first value record for the pair.
// The first subtable covering both glyphs decides, including zero values.
func (p pairTables) lookup(left, right tables.GlyphID) (int16, bool) {
	for _, data := range p {
		cov := data.Cov()
		if cov == nil {
			continue
		}
		idx, ok := cov.Index(left)
		if !ok {
			continue
		}

		switch d := data.(type) {
		case tables.PairPosData1:
			if idx >= len(d.PairSets) {
				continue
			}
			if rec, ok := d.PairSets[idx].FindGlyph(right); ok {
				return rec.ValueRecord1.XAdvance, true
			}
		case tables.PairPosData2:
			c1 := classOf(d.ClassDef1, left)
			c2 := classOf(d.ClassDef2, right)
			return d.Record(c1, c2).ValueRecord1.XAdvance, true
		}
	}
	return 0, false
}

// classOf returns the class of gid, with unlisted glyphs in class 0.
func classOf(def tables.ClassDef, gid tables.GlyphID) uint16 {
	if def == nil {
		return 0
	}
	c, _ := def.Class(gid)
	return c
}
