package text

import "golang.org/x/image/font"

// Hinting selects how outlines are snapped to the pixel grid.
type Hinting int

const (
	// HintingNone renders outlines unmodified.
	HintingNone Hinting = iota
	// HintingVertical snaps vertical metrics only.
	HintingVertical
	// HintingFull snaps both axes.
	HintingFull
)

func (h Hinting) String() string {
	switch h {
	case HintingNone:
		return "none"
	case HintingVertical:
		return "vertical"
	case HintingFull:
		return "full"
	default:
		return "unknown"
	}
}

func (h Hinting) toXImage() font.Hinting {
	switch h {
	case HintingVertical:
		return font.HintingVertical
	case HintingFull:
		return font.HintingFull
	default:
		return font.HintingNone
	}
}

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	hinting  Hinting
	skipGPOS bool
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		hinting: HintingNone,
	}
}

// WithHinting sets the hinting mode used by Rasterize and Kern.
// The default is HintingNone, which keeps glyph shapes scale-independent.
func WithHinting(h Hinting) SourceOption {
	return func(c *sourceConfig) {
		c.hinting = h
	}
}

// WithoutGPOS makes PairAdjustment ignore the GPOS table, leaving only the
// legacy kern table.
func WithoutGPOS() SourceOption {
	return func(c *sourceConfig) {
		c.skipGPOS = true
	}
}
