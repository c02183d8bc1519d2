package glyphatlas

import "math"

// MaxAtlasDimension is the largest accepted atlas width or height.
const MaxAtlasDimension = 16384

// Settings configures a FontCache. They are fixed once the cache is created.
type Settings struct {
	// FontSize is the rasterization size in pixels per em.
	// Default: 32
	FontSize uint32

	// PadSize is the number of pixels added on each side of every glyph
	// bitmap before encoding.
	// Default: 4
	PadSize uint32

	// SDFRadius is the distance, in pixels, spanned by the full range of
	// the distance field. 0 stores the raw grayscale bitmap instead.
	// Default: 4
	SDFRadius float32

	// AtlasWidth and AtlasHeight are the atlas size in pixels.
	// Both must be powers of two.
	// Default: 512x512
	AtlasWidth  uint32
	AtlasHeight uint32

	// InitializeWithDefaultGlyphs warms the cache with DefaultGlyphSet
	// during New.
	InitializeWithDefaultGlyphs bool
}

// DefaultGlyphSet is the character set used to warm a new cache when
// Settings.InitializeWithDefaultGlyphs is set.
const DefaultGlyphSet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789.@#$%^&,!:;/?|(){}[]!+-_=* \n\t'\"><~`\\"

// DefaultSettings returns default settings.
func DefaultSettings() Settings {
	return Settings{
		FontSize:    32,
		PadSize:     4,
		SDFRadius:   4,
		AtlasWidth:  512,
		AtlasHeight: 512,
	}
}

// Validate checks if the settings are usable.
func (s *Settings) Validate() error {
	if s.FontSize == 0 {
		return &SettingsError{Field: "FontSize", Reason: "must be positive"}
	}
	if err := validateDimension("AtlasWidth", s.AtlasWidth); err != nil {
		return err
	}
	if err := validateDimension("AtlasHeight", s.AtlasHeight); err != nil {
		return err
	}
	r := float64(s.SDFRadius)
	if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
		return &SettingsError{Field: "SDFRadius", Reason: "must be a finite non-negative number"}
	}
	if 2*uint64(s.PadSize) >= uint64(min(s.AtlasWidth, s.AtlasHeight)) {
		return &SettingsError{Field: "PadSize", Reason: "must be less than half the atlas size"}
	}
	return nil
}

func validateDimension(field string, v uint32) error {
	if v == 0 {
		return &SettingsError{Field: field, Reason: "must be positive"}
	}
	if v > MaxAtlasDimension {
		return &SettingsError{Field: field, Reason: "must be at most 16384"}
	}
	// Check power of 2
	if v&(v-1) != 0 {
		return &SettingsError{Field: field, Reason: "must be power of 2"}
	}
	return nil
}
