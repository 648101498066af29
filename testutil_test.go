package img2ascii

import (
	"errors"
	"fmt"
)

// stubRasterizer returns rasters with a fixed number of lit pixels per
// rune and counts how often it is called.
type stubRasterizer struct {
	lit   map[rune]int
	fail  map[rune]bool
	calls int
}

func (s *stubRasterizer) Rasterize(r rune, fontName string) (GlyphRaster, error) {
	s.calls++
	if s.fail[r] {
		return GlyphRaster{}, fmt.Errorf("no glyph for %q", r)
	}
	return rasterWithLit(s.lit[r]), nil
}

// rasterWithLit lights the first n pixels in row-major order.
func rasterWithLit(n int) GlyphRaster {
	var g GlyphRaster
	for i := 0; i < n && i < GlyphSize*GlyphSize; i++ {
		g.Set(i%GlyphSize, i/GlyphSize, true)
	}
	return g
}

var errStub = errors.New("stub failure")

type failingRasterizer struct{}

func (failingRasterizer) Rasterize(r rune, fontName string) (GlyphRaster, error) {
	return GlyphRaster{}, errStub
}
