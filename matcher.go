package img2ascii

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wbrown/img2ascii/imageutil"
)

// BrightnessMatcher converts one image into character grids. It owns the
// block luminance cache for that image, so it should be created once per
// image and reused across renders; the cache survives between calls until
// the resolution changes.
//
// Render calls on the same instance are serialized.
type BrightnessMatcher struct {
	mu         sync.Mutex
	image      *imageutil.RGBAImage
	font       string
	rasterizer Rasterizer
	cache      *BlockCache
	logger     *log.Logger
}

// MatcherOption is a functional option for configuring a BrightnessMatcher.
type MatcherOption func(*BrightnessMatcher)

// WithRasterizer sets the glyph rasterizer. The default is a fresh
// FontRasterizer.
func WithRasterizer(r Rasterizer) MatcherOption {
	return func(m *BrightnessMatcher) {
		m.rasterizer = r
	}
}

// WithLogger sets the logger used for debug output. The default discards
// everything.
func WithLogger(l *log.Logger) MatcherOption {
	return func(m *BrightnessMatcher) {
		m.logger = l
	}
}

// NewBrightnessMatcher creates a matcher for img whose character
// brightness is measured in the named font.
func NewBrightnessMatcher(img *imageutil.RGBAImage, fontName string, opts ...MatcherOption) *BrightnessMatcher {
	m := &BrightnessMatcher{
		image: img,
		font:  fontName,
		cache: NewBlockCache(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rasterizer == nil {
		m.rasterizer = NewFontRasterizer()
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	return m
}

// Font returns the font name used for brightness matching, which output
// targets should use as their display hint.
func (m *BrightnessMatcher) Font() string {
	return m.font
}

// Image returns the source image.
func (m *BrightnessMatcher) Image() *imageutil.RGBAImage {
	return m.image
}

// Rasterizer returns the glyph rasterizer, so outputs can draw the same
// glyphs that were measured without rendering them again.
func (m *BrightnessMatcher) Rasterizer() Rasterizer {
	return m.rasterizer
}

// Stats returns the block cache counters.
func (m *BrightnessMatcher) Stats() CacheStats {
	return m.cache.Stats()
}

// BlockEdge returns the block edge length in pixels for charsInRow
// characters per row: the image width divided by charsInRow, rounded
// down. It fails with ErrInvalidResolution unless the edge is at least one
// pixel and fits inside the image.
func (m *BrightnessMatcher) BlockEdge(charsInRow int) (int, error) {
	if m.image == nil {
		return 0, fmt.Errorf("%w: no image", ErrInvalidResolution)
	}
	width, height := m.image.Width(), m.image.Height()
	if charsInRow <= 0 {
		return 0, fmt.Errorf("%w: %d characters per row", ErrInvalidResolution, charsInRow)
	}
	edge := width / charsInRow
	if edge <= 0 {
		return 0, fmt.Errorf("%w: %d characters per row exceeds image width %d",
			ErrInvalidResolution, charsInRow, width)
	}
	if edge > height {
		return 0, fmt.Errorf("%w: block edge %d exceeds image height %d",
			ErrInvalidResolution, edge, height)
	}
	return edge, nil
}

// Render converts the image into a grid with charsInRow characters per
// row, choosing for every block the character of set whose glyph
// brightness is nearest to the block's average luminance.
//
// The grid has floor(height/edge) rows and floor(width/edge) columns,
// where edge is given by BlockEdge. Character brightness is recomputed on
// every call since the set may have changed. Block averages are cached;
// the cache is cleared whenever charsInRow differs from the previous
// successful call.
//
// An empty set fails with ErrEmptyCharset and a bad resolution with
// ErrInvalidResolution. A failed call leaves the cache untouched.
func (m *BrightnessMatcher) Render(charsInRow int, set CharSet) (Grid, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	start := time.Now()
	chars := set.Sorted()
	if len(chars) == 0 {
		return nil, ErrEmptyCharset
	}
	edge, err := m.BlockEdge(charsInRow)
	if err != nil {
		return nil, err
	}
	brightness, err := CharBrightnesses(chars, m.font, m.rasterizer)
	if err != nil {
		return nil, err
	}

	if m.cache.Reset(charsInRow) {
		m.logger.Debug("block cache cleared", "chars_in_row", charsInRow, "edge", edge)
	}

	cols := m.image.Width() / edge
	grid := NewGrid(m.image.Height()/edge, cols)
	before := m.cache.Stats()
	for i, rect := range m.image.SquareSubImages(edge) {
		key := BlockKey{Row: i / cols, Col: i % cols}
		avg, _ := m.cache.GetOrCompute(key, func() float64 {
			return imageutil.AverageLuminance(m.image, rect)
		})
		c, err := FindBestMatch(avg, brightness, chars)
		if err != nil {
			return nil, err
		}
		grid[key.Row][key.Col] = c
	}

	after := m.cache.Stats()
	m.logger.Debug("rendered",
		"rows", grid.Rows(), "cols", grid.Cols(), "chars", len(chars),
		"hits", after.Hits-before.Hits, "misses", after.Misses-before.Misses,
		"elapsed", time.Since(start).Round(time.Microsecond))
	return grid, nil
}
