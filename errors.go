package img2ascii

import "errors"

var (
	// ErrEmptyCharset is returned when matching is attempted with no
	// characters. No grid cells are produced.
	ErrEmptyCharset = errors.New("empty character set")

	// ErrInvalidResolution is returned when the requested characters per
	// row do not yield a block edge in [1, min(width, height)].
	ErrInvalidResolution = errors.New("invalid resolution")

	// ErrUnknownFont is returned by FontRasterizer for font names it
	// cannot resolve.
	ErrUnknownFont = errors.New("unknown font")
)
