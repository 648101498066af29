// Package output delivers rendered character grids to their destination:
// a terminal, a standalone HTML page or a PNG image drawn with the same
// glyph rasters used for matching.
package output

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wbrown/img2ascii"
)

// Output consumes a finished grid.
type Output interface {
	Output(grid img2ascii.Grid) error
}

// Kind names an output target.
type Kind string

const (
	KindConsole Kind = "console"
	KindHTML    Kind = "html"
	KindPNG     Kind = "png"
)

// Default file names for file based targets.
const (
	DefaultHTMLFile = "out.html"
	DefaultPNGFile  = "out.png"
)

// ParseKind validates a target name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindConsole, KindHTML, KindPNG:
		return k, nil
	default:
		return "", fmt.Errorf("unknown output %q (want console, html or png)", s)
	}
}

// Options configures New.
type Options struct {
	// Path is the destination file for html and png. Empty selects the
	// kind's default file name.
	Path string
	// Font is the font used for matching. HTML uses it as the CSS font
	// family and PNG rasterizes with it.
	Font string
	// Writer receives console output.
	Writer io.Writer
	// Rasterizer draws glyphs for png. Nil selects a new FontRasterizer.
	Rasterizer img2ascii.Rasterizer
	// Scale is the png pixel size of one glyph pixel.
	Scale int
	// Color tints console output with a lipgloss color: an ANSI index
	// ("36") or hex ("#ffaa00"). Empty leaves it plain.
	Color string
}

// New returns the output for kind.
func New(kind Kind, opts Options) (Output, error) {
	switch kind {
	case KindConsole:
		c := NewConsole(opts.Writer)
		if opts.Color != "" {
			c.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(opts.Color)))
		}
		return c, nil
	case KindHTML:
		path := opts.Path
		if path == "" {
			path = DefaultHTMLFile
		}
		return NewHTML(path, opts.Font), nil
	case KindPNG:
		path := opts.Path
		if path == "" {
			path = DefaultPNGFile
		}
		rast := opts.Rasterizer
		if rast == nil {
			rast = img2ascii.NewFontRasterizer()
		}
		return NewPNG(path, opts.Font, rast, opts.Scale), nil
	default:
		return nil, fmt.Errorf("unknown output %q", kind)
	}
}

// FontFamily maps a font name as understood by img2ascii.FontRasterizer
// to a CSS font family name.
func FontFamily(font string) string {
	switch strings.ToLower(font) {
	case "", img2ascii.DefaultFont, "gomonobold":
		return "Go Mono"
	}
	if strings.HasSuffix(strings.ToLower(font), ".ttf") {
		base := filepath.Base(font)
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	return font
}
