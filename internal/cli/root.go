// Package cli implements the img2ascii command-line interface.
//
// # Commands
//
//   - render: convert an image once and write it to the console, HTML or PNG
//   - shell: edit characters and resolution interactively and render on demand
//   - glyphs: print the brightness table for a character set and font
//
// All commands accept --config for a TOML settings file and --verbose for
// debug logging. Loggers are passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/config"
	"github.com/wbrown/img2ascii/imageutil"
)

var version = "dev"

// SetVersion sets the version displayed by --version.
func SetVersion(v string) {
	version = v
}

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

// rootOptions holds the persistent flags.
type rootOptions struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "img2ascii",
		Short:        "img2ascii turns images into brightness-matched character art",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a TOML config file")

	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newShellCmd(opts))
	root.AddCommand(newGlyphsCmd(opts))
	return root
}

// settingsFlags are the flags shared by render and shell that override
// config file values.
type settingsFlags struct {
	font     string
	chars    string
	width    int
	maxWidth int
	output   string
	outFile  string
	interp   string
	color    string
}

func (f *settingsFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.font, "font", "", "font: gomono, gomonobold or a path to a .ttf file")
	cmd.Flags().StringVar(&f.chars, "chars", "", "characters to draw with (literal set)")
	cmd.Flags().IntVarP(&f.width, "width", "w", 0, "characters per row")
	cmd.Flags().IntVar(&f.maxWidth, "max-width", 0, "downscale images wider than this many pixels")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output target: console, html or png")
	cmd.Flags().StringVar(&f.outFile, "out", "", "output file for html and png")
	cmd.Flags().StringVar(&f.interp, "interp", "", "downscaling filter for --max-width: area, linear or nearest")
	cmd.Flags().StringVar(&f.color, "color", "", "tint console output, e.g. 36 or #00ff00")
}

// loadConfig reads the config file, if any, and applies flag overrides.
func loadConfig(cmd *cobra.Command, opts *rootOptions, f *settingsFlags) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("font") {
		cfg.Font = f.font
	}
	if flags.Changed("chars") {
		cfg.InitialChars = f.chars
	}
	if flags.Changed("width") {
		cfg.CharsInRow = f.width
	}
	if flags.Changed("max-width") {
		cfg.MaxWidth = f.maxWidth
	}
	if flags.Changed("output") {
		cfg.Output = f.output
	}
	if flags.Changed("out") {
		cfg.OutputFile = f.outFile
	}
	if flags.Changed("interp") {
		cfg.Interpolation = f.interp
	}
	if flags.Changed("color") {
		cfg.ConsoleColor = f.color
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openMatcher loads the image, applies max_width and builds the matcher.
func openMatcher(ctx context.Context, path string, cfg *config.Config) (*img2ascii.BrightnessMatcher, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	img, err := imageutil.LoadImage(path)
	if err != nil {
		return nil, err
	}
	if fitted := imageutil.FitWidth(img, cfg.MaxWidth, cfg.Interp()); fitted != img {
		logger.Debug("downscaled image", "from", img.Width(), "to", fitted.Width(), "interp", cfg.Interp())
		img = fitted
	}
	if img.Width() == 0 || img.Height() == 0 {
		return nil, fmt.Errorf("%s: empty image", path)
	}
	prog.done(fmt.Sprintf("Loaded %s (%dx%d)", path, img.Width(), img.Height()))

	return img2ascii.NewBrightnessMatcher(img, cfg.Font, img2ascii.WithLogger(logger)), nil
}

// stdinIsTerminal reports whether the shell should start the full screen
// front end.
var stdinIsTerminal = func() bool {
	return isTerminal(os.Stdin.Fd())
}
