package text

// LineMetrics holds the horizontal line metrics of a font at one size,
// in pixels with y pointing up.
type LineMetrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float32

	// Descent is the distance from the baseline to the bottom of the font.
	// It is negative for fonts that reach below the baseline.
	Descent float32

	// LineGap is the recommended gap between lines.
	LineGap float32
}

// LineHeight returns the recommended distance between consecutive baselines.
func (m LineMetrics) LineHeight() float32 {
	return m.Ascent - m.Descent + m.LineGap
}

// scaleExtents converts font-unit extents to pixels.
func scaleExtents(ascender, descender, lineGap float32, upem int, ppem float64) LineMetrics {
	if upem <= 0 {
		return LineMetrics{}
	}
	s := float32(ppem / float64(upem))
	return LineMetrics{
		Ascent:  ascender * s,
		Descent: descender * s,
		LineGap: lineGap * s,
	}
}
