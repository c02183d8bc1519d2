package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrClosed is returned by operations on a closed FontSource.
	ErrClosed = errors.New("text: font source is closed")
)

// Parse stages reported by ParseError.
const (
	StageContainer  = "container"
	StageRasterizer = "rasterizer"
	StageMetrics    = "metrics"
)

// FontError describes a font that parsed but lacks something required.
type FontError struct {
	Reason string
}

func (e *FontError) Error() string {
	return "text: " + e.Reason
}

// ParseError is returned when one of the font views cannot be built.
// Stage tells which one failed.
type ParseError struct {
	Stage string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("text: %s: %v", e.Stage, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
