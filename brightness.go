package img2ascii

import "fmt"

// DegenerateBrightness is the normalized brightness given to every
// character when all characters have the same raw brightness, so the
// linear stretch has no range to work with.
const DegenerateBrightness = 0.0

// rawBrightnessDivisor is one less than the raster area. The count of lit
// pixels is divided by this instead of GlyphSize*GlyphSize, so a fully lit
// glyph scores slightly above 1 before stretching.
const rawBrightnessDivisor = GlyphSize*GlyphSize - 1

// RawBrightness returns the fraction of lit pixels in g.
func RawBrightness(g GlyphRaster) float64 {
	return float64(g.OnCount()) / rawBrightnessDivisor
}

// CharBrightnesses rasterizes every character in chars with the given font
// and returns their brightness, linearly stretched to [0, 1]. The result is
// aligned with chars. An empty chars slice yields an empty table.
func CharBrightnesses(chars []rune, fontName string, rasterizer Rasterizer) ([]float64, error) {
	table := make([]float64, len(chars))
	for i, r := range chars {
		g, err := rasterizer.Rasterize(r, fontName)
		if err != nil {
			return nil, fmt.Errorf("rasterize %q: %w", r, err)
		}
		table[i] = RawBrightness(g)
	}
	linearStretch(table)
	return table, nil
}

// linearStretch remaps values in place so that the smallest becomes 0 and
// the largest 1. If every value is equal, they all become
// DegenerateBrightness.
func linearStretch(values []float64) {
	if len(values) == 0 {
		return
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	span := hi - lo
	for i, v := range values {
		if span == 0 {
			values[i] = DegenerateBrightness
			continue
		}
		values[i] = (v - lo) / span
	}
}
