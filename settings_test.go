package glyphatlas

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	want := Settings{FontSize: 32, PadSize: 4, SDFRadius: 4, AtlasWidth: 512, AtlasHeight: 512}
	if s != want {
		t.Errorf("DefaultSettings() = %+v, want %+v", s, want)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("default settings invalid: %v", err)
	}
}

func TestSettings_Validate(t *testing.T) {
	valid := DefaultSettings()
	with := func(f func(*Settings)) Settings {
		s := valid
		f(&s)
		return s
	}

	tests := []struct {
		name      string
		settings  Settings
		wantField string
	}{
		{"default is valid", valid, ""},
		{"grayscale is valid", with(func(s *Settings) { s.SDFRadius = 0 }), ""},
		{"no padding is valid", with(func(s *Settings) { s.PadSize = 0 }), ""},
		{"non-square is valid", with(func(s *Settings) { s.AtlasWidth = 1024; s.AtlasHeight = 256 }), ""},
		{"tiny atlas is valid", with(func(s *Settings) { s.AtlasWidth = 16; s.AtlasHeight = 16 }), ""},
		{"zero font size", with(func(s *Settings) { s.FontSize = 0 }), "FontSize"},
		{"zero width", with(func(s *Settings) { s.AtlasWidth = 0 }), "AtlasWidth"},
		{"zero height", with(func(s *Settings) { s.AtlasHeight = 0 }), "AtlasHeight"},
		{"width not power of 2", with(func(s *Settings) { s.AtlasWidth = 500 }), "AtlasWidth"},
		{"height not power of 2", with(func(s *Settings) { s.AtlasHeight = 768 }), "AtlasHeight"},
		{"width too large", with(func(s *Settings) { s.AtlasWidth = 32768 }), "AtlasWidth"},
		{"negative radius", with(func(s *Settings) { s.SDFRadius = -1 }), "SDFRadius"},
		{"NaN radius", with(func(s *Settings) { s.SDFRadius = float32(math.NaN()) }), "SDFRadius"},
		{"infinite radius", with(func(s *Settings) { s.SDFRadius = float32(math.Inf(1)) }), "SDFRadius"},
		{"padding fills atlas", with(func(s *Settings) { s.AtlasWidth = 16; s.AtlasHeight = 16; s.PadSize = 8 }), "PadSize"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			var se *SettingsError
			if !errors.As(err, &se) {
				t.Fatalf("Validate() error = %v, want *SettingsError", err)
			}
			if se.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", se.Field, tt.wantField)
			}
			if !errors.Is(err, ErrInvalidSettings) {
				t.Error("SettingsError should match ErrInvalidSettings")
			}
		})
	}
}

func TestDefaultGlyphSet(t *testing.T) {
	seen := make(map[rune]bool)
	for _, r := range DefaultGlyphSet {
		seen[r] = true
	}
	for _, r := range "azAZ09 \n\t\\`\"'~" {
		if !seen[r] {
			t.Errorf("DefaultGlyphSet missing %q", r)
		}
	}
	if len(seen) < 90 {
		t.Errorf("DefaultGlyphSet has %d distinct characters, want at least 90", len(seen))
	}
}
