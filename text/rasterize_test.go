package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestFontSource_Rasterize(t *testing.T) {
	source := newGoRegular(t)

	bm, m, err := source.Rasterize('A', 32)
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	if m.Width <= 0 || m.Height <= 0 {
		t.Fatalf("size = %dx%d, want non-empty", m.Width, m.Height)
	}
	if bm.Width != m.Width || bm.Height != m.Height {
		t.Errorf("bitmap %dx%d does not match metrics %dx%d", bm.Width, bm.Height, m.Width, m.Height)
	}
	if len(bm.Pix) != bm.Width*bm.Height {
		t.Errorf("len(Pix) = %d, want %d", len(bm.Pix), bm.Width*bm.Height)
	}
	if m.Advance <= 0 {
		t.Errorf("Advance = %v, want > 0", m.Advance)
	}
	// 'A' sits on the baseline.
	if m.YMin > 0 || m.YMin < -2 {
		t.Errorf("YMin = %d, want close to 0", m.YMin)
	}
	if m.YMin+m.Height < 16 {
		t.Errorf("top = %d, want a cap height of at least 16px", m.YMin+m.Height)
	}

	var maxV byte
	for _, v := range bm.Pix {
		maxV = max(maxV, v)
	}
	if maxV < 200 {
		t.Errorf("max coverage = %d, want a solid interior", maxV)
	}
}

func TestFontSource_RasterizeDescender(t *testing.T) {
	source := newGoRegular(t)

	_, m, err := source.Rasterize('g', 32)
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	if m.YMin >= 0 {
		t.Errorf("YMin = %d, want below the baseline", m.YMin)
	}
}

func TestFontSource_RasterizeSpace(t *testing.T) {
	source := newGoRegular(t)

	bm, m, err := source.Rasterize(' ', 32)
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	if m.Width != 0 || m.Height != 0 || len(bm.Pix) != 0 {
		t.Errorf("space rasterized to %dx%d, want empty", m.Width, m.Height)
	}
	if m.Advance <= 0 {
		t.Errorf("Advance = %v, want > 0", m.Advance)
	}
}

func TestFontSource_RasterizeOwnsPixels(t *testing.T) {
	source := newGoRegular(t)

	a, _, err := source.Rasterize('A', 24)
	if err != nil {
		t.Fatal(err)
	}
	snapshot := append([]byte(nil), a.Pix...)
	if _, _, err := source.Rasterize('W', 24); err != nil {
		t.Fatal(err)
	}
	for i := range snapshot {
		if a.Pix[i] != snapshot[i] {
			t.Fatal("rasterizing another glyph changed an earlier bitmap")
		}
	}
}

func TestFontSource_RasterizeScales(t *testing.T) {
	source := newGoRegular(t)

	_, small, err := source.Rasterize('H', 16)
	if err != nil {
		t.Fatal(err)
	}
	_, large, err := source.Rasterize('H', 64)
	if err != nil {
		t.Fatal(err)
	}
	if large.Height < 3*small.Height {
		t.Errorf("height at 64px = %d, want about 4x the 16px height %d", large.Height, small.Height)
	}
	if d := large.Advance - 4*small.Advance; d > 0.5 || d < -0.5 {
		t.Errorf("advance at 64px = %v, want %v", large.Advance, 4*small.Advance)
	}
}

func BenchmarkFontSource_Rasterize(b *testing.B) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		b.Fatal(err)
	}
	defer func() {
		_ = source.Close()
	}()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, _, err := source.Rasterize('R', 32); err != nil {
			b.Fatal(err)
		}
	}
}
