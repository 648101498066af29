// Package config loads img2ascii settings from a TOML file.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/imageutil"
	"github.com/wbrown/img2ascii/output"
)

// Config holds the settings shared by the render and shell commands.
type Config struct {
	// Font selects the face used to measure glyph brightness.
	Font string `toml:"font"`
	// InitialChars is the literal set of characters to start with.
	InitialChars string `toml:"initial_chars"`
	// CharsInRow is the starting number of characters per row.
	CharsInRow int `toml:"chars_in_row"`
	// MinPixelsPerChar bounds how fine the shell lets the resolution get.
	MinPixelsPerChar int `toml:"min_pixels_per_char"`
	// Output is the target kind: console, html or png.
	Output string `toml:"output"`
	// OutputFile is the destination for html and png.
	OutputFile string `toml:"output_file"`
	// MaxWidth downscales wider images before matching. 0 disables.
	MaxWidth int `toml:"max_width"`
	// PNGScale is the pixel size of one glyph pixel in png output.
	PNGScale int `toml:"png_scale"`
	// Interpolation is the max_width downscaling filter: area, linear or
	// nearest.
	Interpolation string `toml:"interpolation"`
	// ConsoleColor tints console output, e.g. "36" or "#00ff00".
	ConsoleColor string `toml:"console_color"`
}

// Default values for optional configuration fields.
const (
	DefaultInitialChars     = "0123456789"
	DefaultCharsInRow       = 64
	DefaultMinPixelsPerChar = 2
	DefaultPNGScale         = 1
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and parses the configuration from the specified file path.
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults sets default values for optional configuration fields.
func (c *Config) applyDefaults() {
	if c.Font == "" {
		c.Font = img2ascii.DefaultFont
	}
	if c.InitialChars == "" {
		c.InitialChars = DefaultInitialChars
	}
	if c.CharsInRow == 0 {
		c.CharsInRow = DefaultCharsInRow
	}
	if c.MinPixelsPerChar == 0 {
		c.MinPixelsPerChar = DefaultMinPixelsPerChar
	}
	if c.Output == "" {
		c.Output = string(output.KindConsole)
	}
	if c.PNGScale == 0 {
		c.PNGScale = DefaultPNGScale
	}
	if c.Interpolation == "" {
		c.Interpolation = imageutil.InterpolationArea.String()
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.CharsInRow <= 0 {
		return errors.New("chars_in_row must be positive")
	}
	if c.MinPixelsPerChar < 1 {
		return errors.New("min_pixels_per_char must be at least 1")
	}
	if c.MaxWidth < 0 {
		return errors.New("max_width must not be negative")
	}
	if c.PNGScale < 1 {
		return errors.New("png_scale must be at least 1")
	}
	if _, err := output.ParseKind(c.Output); err != nil {
		return err
	}
	if _, err := imageutil.ParseInterpolation(c.Interpolation); err != nil {
		return err
	}
	return nil
}

// Kind returns the parsed output kind. Validate guarantees it parses.
func (c *Config) Kind() output.Kind {
	k, _ := output.ParseKind(c.Output)
	return k
}

// Interp returns the parsed interpolation. Validate guarantees it parses.
func (c *Config) Interp() imageutil.Interpolation {
	i, _ := imageutil.ParseInterpolation(c.Interpolation)
	return i
}

// CharSet returns the initial characters as a set.
func (c *Config) CharSet() img2ascii.CharSet {
	return img2ascii.CharSetFromString(c.InitialChars)
}
