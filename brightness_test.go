package img2ascii

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestGlyphRasterBitOperations(t *testing.T) {
	var g GlyphRaster

	g.Set(0, 0, true)
	if !g.At(0, 0) {
		t.Error("Expected bit at (0,0) to be set")
	}

	g.Set(15, 15, true)
	if !g.At(15, 15) {
		t.Error("Expected bit at (15,15) to be set")
	}
	if g.OnCount() != 2 {
		t.Errorf("Expected 2 lit pixels, got %d", g.OnCount())
	}

	g.Set(0, 0, false)
	if g.At(0, 0) {
		t.Error("Expected bit at (0,0) to be clear")
	}

	// Out of bounds writes are ignored and reads are off.
	g.Set(16, 16, true)
	if g.At(16, 16) || g.At(-1, 0) {
		t.Error("Out of bounds bit should return false")
	}
	if g.OnCount() != 1 {
		t.Errorf("Expected 1 lit pixel, got %d", g.OnCount())
	}
}

func TestRawBrightnessDivisor(t *testing.T) {
	full := rasterWithLit(GlyphSize * GlyphSize)
	if got, want := RawBrightness(full), 256.0/255.0; got != want {
		t.Errorf("Expected fully lit raster to score %f, got %f", want, got)
	}
	if got := RawBrightness(GlyphRaster{}); got != 0 {
		t.Errorf("Expected empty raster to score 0, got %f", got)
	}
	if got, want := RawBrightness(rasterWithLit(51)), 51.0/255.0; got != want {
		t.Errorf("Expected %f, got %f", want, got)
	}
}

func TestCharBrightnessesNormalized(t *testing.T) {
	rast := &stubRasterizer{lit: map[rune]int{'.': 10, ':': 40, 'o': 90, '#': 200}}
	chars := []rune{'#', '.', ':', 'o'}

	table, err := CharBrightnesses(chars, "stub", rast)
	if err != nil {
		t.Fatalf("CharBrightnesses failed: %v", err)
	}
	if len(table) != len(chars) {
		t.Fatalf("Expected %d entries, got %d", len(chars), len(table))
	}

	sawZero, sawOne := false, false
	for i, v := range table {
		if v < 0 || v > 1 {
			t.Errorf("%q: brightness %f outside [0,1]", chars[i], v)
		}
		sawZero = sawZero || v == 0
		sawOne = sawOne || v == 1
	}
	if !sawZero || !sawOne {
		t.Errorf("Expected both 0 and 1 in stretched table, got %v", table)
	}

	// '#' is brightest, '.' darkest, ':' at (40-10)/(200-10).
	if table[0] != 1 || table[1] != 0 {
		t.Errorf("Expected '#'=1 and '.'=0, got %v", table)
	}
	if want := 30.0 / 190.0; math.Abs(table[2]-want) > 1e-12 {
		t.Errorf("Expected ':'=%f, got %f", want, table[2])
	}
}

func TestCharBrightnessesDegenerate(t *testing.T) {
	tests := []struct {
		name  string
		lit   map[rune]int
		chars []rune
	}{
		{"single character", map[rune]int{'x': 77}, []rune{'x'}},
		{"equal brightness", map[rune]int{'b': 30, 'd': 30, 'p': 30}, []rune{'b', 'd', 'p'}},
		{"all blank", map[rune]int{}, []rune{' ', '\t'}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			table, err := CharBrightnesses(tc.chars, "stub", &stubRasterizer{lit: tc.lit})
			if err != nil {
				t.Fatalf("CharBrightnesses failed: %v", err)
			}
			for i, v := range table {
				if math.IsNaN(v) || v != DegenerateBrightness {
					t.Errorf("%q: expected fallback %f, got %f", tc.chars[i], DegenerateBrightness, v)
				}
			}
		})
	}
}

func TestCharBrightnessesEmpty(t *testing.T) {
	table, err := CharBrightnesses(nil, "stub", &stubRasterizer{})
	if err != nil {
		t.Fatalf("CharBrightnesses failed: %v", err)
	}
	if len(table) != 0 {
		t.Errorf("Expected empty table, got %v", table)
	}
}

func TestCharBrightnessesRasterizerError(t *testing.T) {
	_, err := CharBrightnesses([]rune{'a'}, "stub", failingRasterizer{})
	if !errors.Is(err, errStub) {
		t.Errorf("Expected wrapped rasterizer error, got %v", err)
	}
}

func TestFontRasterizerBundledFont(t *testing.T) {
	fr := NewFontRasterizer()

	space, err := fr.Rasterize(' ', DefaultFont)
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	if space.OnCount() != 0 {
		t.Errorf("Expected blank space glyph, got %d lit pixels", space.OnCount())
	}

	dot, err := fr.Rasterize('.', DefaultFont)
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	at, err := fr.Rasterize('@', DefaultFont)
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	if dot.OnCount() == 0 {
		t.Error("Expected '.' to light some pixels")
	}
	if at.OnCount() <= dot.OnCount() {
		t.Errorf("Expected '@' (%d) brighter than '.' (%d)", at.OnCount(), dot.OnCount())
	}

	again, err := fr.Rasterize('@', DefaultFont)
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	if again != at {
		t.Error("Expected identical raster for repeated rasterization")
	}

	// A fresh rasterizer must agree with the memoized one.
	fresh, err := NewFontRasterizer().Rasterize('@', DefaultFont)
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	if fresh != at {
		t.Error("Expected rasterization to be deterministic across instances")
	}
}

func TestFontRasterizerBoldIsHeavier(t *testing.T) {
	fr := NewFontRasterizer()
	regular, err := fr.Rasterize('M', "gomono")
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	bold, err := fr.Rasterize('M', "gomonobold")
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	if bold.OnCount() < regular.OnCount() {
		t.Errorf("Expected bold 'M' (%d) at least as heavy as regular (%d)",
			bold.OnCount(), regular.OnCount())
	}
}

func TestFontRasterizerUnknownFont(t *testing.T) {
	fr := NewFontRasterizer()
	if _, err := fr.Rasterize('a', "Courier New"); !errors.Is(err, ErrUnknownFont) {
		t.Errorf("Expected ErrUnknownFont, got %v", err)
	}
	if _, err := fr.Rasterize('a', t.TempDir()+"/missing.ttf"); err == nil {
		t.Error("Expected error for missing font file")
	}
}

func TestGlyphRasterString(t *testing.T) {
	var g GlyphRaster
	g.Set(0, 0, true)
	g.Set(15, 1, true)

	lines := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	if len(lines) != GlyphSize {
		t.Fatalf("Expected %d lines, got %d", GlyphSize, len(lines))
	}
	if lines[0] != "#"+strings.Repeat(".", 15) {
		t.Errorf("Unexpected first row %q", lines[0])
	}
	if lines[1] != strings.Repeat(".", 15)+"#" {
		t.Errorf("Unexpected second row %q", lines[1])
	}
}
