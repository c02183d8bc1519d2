//go:build cgo

package main

import (
	"math"
	"testing"
)

func TestFontDataLen(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		null bool
		want int32
		ok   bool
	}{
		{"empty", 0, true, 0, true},
		{"empty with pointer", 0, false, 0, true},
		{"font", 148672, false, 148672, true},
		{"largest", math.MaxInt32, false, math.MaxInt32, true},
		{"negative", -1, false, 0, false},
		{"null with length", 16, true, 0, false},
		{"beyond C int", math.MaxInt32 + 1, false, 0, false},
		{"far beyond C int", 1 << 40, false, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := fontDataLen(tt.n, tt.null)
			if got != tt.want || ok != tt.ok {
				t.Errorf("fontDataLen(%d, %v) = (%d, %v), want (%d, %v)", tt.n, tt.null, got, ok, tt.want, tt.ok)
			}
		})
	}
}
