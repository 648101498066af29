package img2ascii

import (
	"fmt"
	"image"
	"math/bits"
	"os"
	"strings"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/math/fixed"
)

const (
	// GlyphSize is the edge length of a glyph raster in pixels.
	GlyphSize = 16

	// DefaultFont names the bundled Go Mono face.
	DefaultFont = "gomono"

	// alphaThreshold is the coverage above which a rendered pixel counts
	// as "on" (25%).
	alphaThreshold = 64
)

// GlyphRaster is a GlyphSize x GlyphSize monochrome bitmap of a rendered
// character. Row y is stored in element y, pixel x in bit x.
type GlyphRaster [GlyphSize]uint16

// At reports whether the pixel at (x, y) is on. Out of range coordinates
// are off.
func (g GlyphRaster) At(x, y int) bool {
	if x < 0 || x >= GlyphSize || y < 0 || y >= GlyphSize {
		return false
	}
	return g[y]&(1<<x) != 0
}

// Set turns the pixel at (x, y) on or off. Out of range coordinates are
// ignored.
func (g *GlyphRaster) Set(x, y int, on bool) {
	if x < 0 || x >= GlyphSize || y < 0 || y >= GlyphSize {
		return
	}
	if on {
		g[y] |= 1 << x
	} else {
		g[y] &^= 1 << x
	}
}

// OnCount returns the number of pixels that are on.
func (g GlyphRaster) OnCount() int {
	n := 0
	for _, row := range g {
		n += bits.OnesCount16(row)
	}
	return n
}

// String draws the raster as GlyphSize lines of '#' and '.'.
func (g GlyphRaster) String() string {
	var sb strings.Builder
	sb.Grow(GlyphSize * (GlyphSize + 1))
	for y := range GlyphSize {
		for x := range GlyphSize {
			if g.At(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Rasterizer renders a character in a named font to a GlyphRaster.
// Implementations must be deterministic: the same (rune, font) pair always
// yields the same raster.
type Rasterizer interface {
	Rasterize(r rune, fontName string) (GlyphRaster, error)
}

type glyphKey struct {
	font string
	r    rune
}

// FontRasterizer renders glyphs with FreeType and memoizes both parsed
// fonts and rendered rasters. It is safe for concurrent use.
//
// Font names resolve as follows: "" and "gomono" select the bundled Go
// Mono face, "gomonobold" selects Go Mono Bold, and any name ending in
// ".ttf" is read from disk.
type FontRasterizer struct {
	mu     sync.Mutex
	fonts  map[string]*truetype.Font
	glyphs map[glyphKey]GlyphRaster
}

// NewFontRasterizer returns an empty FontRasterizer.
func NewFontRasterizer() *FontRasterizer {
	return &FontRasterizer{
		fonts:  make(map[string]*truetype.Font),
		glyphs: make(map[glyphKey]GlyphRaster),
	}
}

// Rasterize returns the raster for r in the named font, rendering it on
// first use.
func (fr *FontRasterizer) Rasterize(r rune, fontName string) (GlyphRaster, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()

	key := glyphKey{font: fontName, r: r}
	if g, ok := fr.glyphs[key]; ok {
		return g, nil
	}

	ttf, err := fr.loadFont(fontName)
	if err != nil {
		return GlyphRaster{}, err
	}
	g, err := renderGlyph(ttf, r)
	if err != nil {
		return GlyphRaster{}, fmt.Errorf("render %q in %s: %w", r, fontName, err)
	}
	fr.glyphs[key] = g
	return g, nil
}

// loadFont parses and caches the named font. Callers hold fr.mu.
func (fr *FontRasterizer) loadFont(name string) (*truetype.Font, error) {
	if f, ok := fr.fonts[name]; ok {
		return f, nil
	}

	var data []byte
	switch {
	case name == "" || strings.EqualFold(name, DefaultFont):
		data = gomono.TTF
	case strings.EqualFold(name, "gomonobold"):
		data = gomonobold.TTF
	case strings.HasSuffix(strings.ToLower(name), ".ttf"):
		b, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read font: %w", err)
		}
		data = b
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFont, name)
	}

	f, err := freetype.ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	fr.fonts[name] = f
	return f, nil
}

// renderGlyph draws r into a GlyphSize square alpha image and thresholds
// the coverage.
//
// The point size is chosen so that ascent plus descent spans the whole
// cell, which keeps descenders (g, j, p, q, y) inside the raster. The glyph
// is centered horizontally on its advance width.
func renderGlyph(ttf *truetype.Font, r rune) (GlyphRaster, error) {
	size := float64(GlyphSize)
	probe := truetype.NewFace(ttf, &truetype.Options{Size: size, DPI: 72})
	m := probe.Metrics()
	probe.Close()
	if lineHeight := (m.Ascent + m.Descent).Ceil(); lineHeight > 0 {
		size = size * float64(GlyphSize) / float64(lineHeight)
	}

	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	img := image.NewAlpha(image.Rect(0, 0, GlyphSize, GlyphSize))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(size)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	originX := fixed.I(0)
	if advance, ok := face.GlyphAdvance(r); ok && advance < fixed.I(GlyphSize) {
		originX = (fixed.I(GlyphSize) - advance) / 2
	}
	pt := fixed.Point26_6{X: originX, Y: face.Metrics().Ascent}
	if _, err := ctx.DrawString(string(r), pt); err != nil {
		return GlyphRaster{}, err
	}

	var g GlyphRaster
	for y := 0; y < GlyphSize; y++ {
		for x := 0; x < GlyphSize; x++ {
			if img.AlphaAt(x, y).A > alphaThreshold {
				g.Set(x, y, true)
			}
		}
	}
	return g, nil
}
