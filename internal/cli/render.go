package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wbrown/img2ascii/output"
)

func newRenderCmd(opts *rootOptions) *cobra.Command {
	flags := &settingsFlags{}
	var pngScale int

	cmd := &cobra.Command{
		Use:   "render <image>",
		Short: "Convert an image to character art once",
		Long: `Render converts an image to character art using the configured characters
and resolution and writes it to the console, an HTML page or a PNG image.`,
		Example: `  img2ascii render photo.jpg -w 100 --chars " .:-=+*#%@"
  img2ascii render photo.png -o html --out photo.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts, flags)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("png-scale") {
				cfg.PNGScale = pngScale
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			matcher, err := openMatcher(ctx, args[0], cfg)
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			grid, err := matcher.Render(cfg.CharsInRow, cfg.CharSet())
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Rendered %dx%d", grid.Cols(), grid.Rows()))

			out, err := output.New(cfg.Kind(), output.Options{
				Path:       cfg.OutputFile,
				Font:       cfg.Font,
				Writer:     cmd.OutOrStdout(),
				Rasterizer: matcher.Rasterizer(),
				Scale:      cfg.PNGScale,
				Color:      cfg.ConsoleColor,
			})
			if err != nil {
				return err
			}
			if err := out.Output(grid); err != nil {
				return err
			}
			if p, ok := out.(interface{ Path() string }); ok {
				logger.Info("Wrote output", "path", p.Path())
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&pngScale, "png-scale", 1, "pixel size of one glyph pixel in png output")
	return cmd
}
