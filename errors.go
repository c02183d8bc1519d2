package glyphatlas

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by New.
var (
	// ErrInvalidSettings is wrapped by every *SettingsError.
	ErrInvalidSettings = errors.New("glyphatlas: invalid font cache settings")

	// ErrFontParse is returned when the font container cannot be parsed.
	ErrFontParse = errors.New("glyphatlas: font parsing error")

	// ErrNoLineMetrics is returned for fonts without horizontal line metrics.
	ErrNoLineMetrics = errors.New("glyphatlas: font does not have horizontal line metrics")
)

// SettingsError represents a settings validation error.
type SettingsError struct {
	Field  string
	Reason string
}

func (e *SettingsError) Error() string {
	return "glyphatlas: invalid settings." + e.Field + ": " + e.Reason
}

func (e *SettingsError) Unwrap() error {
	return ErrInvalidSettings
}

// RasterizerError is returned when the font parses as a container but the
// outline rasterizer refuses it.
type RasterizerError struct {
	Err error
}

func (e *RasterizerError) Error() string {
	return "glyphatlas: rasterizer: " + e.Err.Error()
}

func (e *RasterizerError) Unwrap() error {
	return e.Err
}

// AtlasFullError is the panic value raised when a glyph does not fit in
// the atlas. It is never returned as an error: an atlas that is too small
// for its working set is a configuration bug.
type AtlasFullError struct {
	Rune        rune
	Width       int // cell width that did not fit
	Height      int // cell height that did not fit
	AtlasWidth  int
	AtlasHeight int
	Glyphs      int // glyphs already packed
}

func (e *AtlasFullError) Error() string {
	return fmt.Sprintf("glyphatlas: atlas %dx%d is full: no room for %q (%dx%d) after %d glyphs",
		e.AtlasWidth, e.AtlasHeight, e.Rune, e.Width, e.Height, e.Glyphs)
}
