package cli

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/wbrown/img2ascii"
)

// glyphRow is one character's measurements in the brightness table.
type glyphRow struct {
	char       rune
	lit        int
	raw        float64
	normalized float64
	raster     img2ascii.GlyphRaster
}

// measureGlyphs rasterizes chars and returns them ordered darkest first.
// Equal brightness keeps code point order.
func measureGlyphs(chars []rune, fontName string, rast img2ascii.Rasterizer) ([]glyphRow, error) {
	table, err := img2ascii.CharBrightnesses(chars, fontName, rast)
	if err != nil {
		return nil, err
	}
	rows := make([]glyphRow, len(chars))
	for i, c := range chars {
		g, err := rast.Rasterize(c, fontName)
		if err != nil {
			return nil, err
		}
		rows[i] = glyphRow{
			char:       c,
			lit:        g.OnCount(),
			raw:        img2ascii.RawBrightness(g),
			normalized: table[i],
			raster:     g,
		}
	}
	slices.SortStableFunc(rows, func(a, b glyphRow) int {
		return cmp.Compare(a.normalized, b.normalized)
	})
	return rows, nil
}

func newGlyphsCmd(opts *rootOptions) *cobra.Command {
	flags := &settingsFlags{}
	var show bool

	cmd := &cobra.Command{
		Use:   "glyphs",
		Short: "Show the brightness table for a character set",
		Long: `Glyphs rasterizes each character at 16x16 and prints its lit pixel count,
raw brightness and stretched brightness, darkest first.`,
		Example: `  img2ascii glyphs --chars " .:-=+*#%@"
  img2ascii glyphs --font gomonobold --chars "@" --show`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts, flags)
			if err != nil {
				return err
			}
			set := cfg.CharSet()
			if set.Len() == 0 {
				return img2ascii.ErrEmptyCharset
			}

			rows, err := measureGlyphs(set.Sorted(), cfg.Font, img2ascii.NewFontRasterizer())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			t := table.New().
				Border(lipgloss.NormalBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
				Headers("char", "lit", "raw", "brightness")
			for _, r := range rows {
				t.Row(strconv.QuoteRune(r.char), strconv.Itoa(r.lit),
					fmt.Sprintf("%.4f", r.raw), fmt.Sprintf("%.4f", r.normalized))
			}
			fmt.Fprintln(out, t.Render())

			if show {
				for _, r := range rows {
					fmt.Fprintf(out, "%q\n%s", r.char, r.raster)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.font, "font", "", "font: gomono, gomonobold or a path to a .ttf file")
	cmd.Flags().StringVar(&flags.chars, "chars", "", "characters to measure (literal set)")
	cmd.Flags().BoolVar(&show, "show", false, "print each glyph bitmap")
	return cmd
}
