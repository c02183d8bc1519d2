package main

import (
	"encoding/json"
	"io"

	"github.com/gogpu/glyphatlas"
)

// atlasTable is the JSON document written next to the atlas image.
type atlasTable struct {
	Settings glyphatlas.Settings    `json:"settings"`
	Line     glyphatlas.LineMetrics `json:"line_metrics"`
	Glyphs   []glyphRecord          `json:"glyphs"`
	Kerning  []kerningRecord        `json:"kerning"`
}

type glyphRecord struct {
	Char    string                  `json:"char"`
	Code    rune                    `json:"code"`
	Kind    string                  `json:"kind"`
	Metrics glyphatlas.GlyphMetrics `json:"metrics"`
	UV      glyphatlas.UVRect       `json:"uv"`
}

type kerningRecord struct {
	Left  string  `json:"left"`
	Right string  `json:"right"`
	Value float32 `json:"value"`
}

// buildTable collects every cached glyph and every non-zero kerning pair,
// in the order the characters were added.
func buildTable(fc *glyphatlas.FontCache) atlasTable {
	chars := fc.Characters()
	t := atlasTable{
		Settings: fc.Settings(),
		Line:     fc.LineMetrics(),
		Glyphs:   make([]glyphRecord, 0, len(chars)),
		Kerning:  make([]kerningRecord, 0, fc.KerningPairCount()),
	}
	for _, r := range chars {
		g := fc.Glyph(r)
		t.Glyphs = append(t.Glyphs, glyphRecord{
			Char:    string(r),
			Code:    r,
			Kind:    g.Kind.String(),
			Metrics: g.Metrics,
			UV:      g.UV,
		})
	}
	for _, l := range chars {
		for _, r := range chars {
			if k := fc.Kerning(l, r); k != 0 {
				t.Kerning = append(t.Kerning, kerningRecord{
					Left:  string(l),
					Right: string(r),
					Value: k,
				})
			}
		}
	}
	return t
}

func writeTable(w io.Writer, fc *glyphatlas.FontCache) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildTable(fc))
}
