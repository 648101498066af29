// Package imageutil provides the pure Go image layer used by img2ascii:
// an RGBA wrapper with pixel helpers, square block partitioning, luminance
// and loading/saving.
package imageutil

import (
	"image"
	"image/color"
)

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// ToColor converts RGB to color.RGBA for use with standard library.
func (rgb RGB) ToColor() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// RGBFromColor converts a color.Color to RGB, discarding alpha. The
// channels are unpremultiplied first, so a transparent pixel keeps the
// color it was stored with instead of turning black.
func RGBFromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// RGBAImage wraps image.RGBA with convenience methods for pixel access.
// Images built by this package start at the origin, but a wrapped
// sub-image may not; every method works in the image's own coordinates.
type RGBAImage struct {
	*image.RGBA
}

// NewRGBAImage creates a new RGBAImage with the specified dimensions.
func NewRGBAImage(width, height int) *RGBAImage {
	return &RGBAImage{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// RGBAImageFromImage converts any image.Image to an opaque RGBAImage,
// translating its bounds so the result starts at (0, 0). Alpha is
// dropped after unpremultiplying, see RGBFromColor.
func RGBAImageFromImage(img image.Image) *RGBAImage {
	bounds := img.Bounds()
	rgba := NewRGBAImage(bounds.Dx(), bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.SetRGB(x-bounds.Min.X, y-bounds.Min.Y, RGBFromColor(img.At(x, y)))
		}
	}
	return rgba
}

// Width returns the image width.
func (img *RGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *RGBAImage) Height() int {
	return img.Bounds().Dy()
}

// GetRGB returns the RGB value at (x, y).
func (img *RGBAImage) GetRGB(x, y int) RGB {
	c := img.RGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// SetRGB sets the RGB value at (x, y).
func (img *RGBAImage) SetRGB(x, y int, c RGB) {
	img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
}

// SquareSubImages partitions the image into non-overlapping edge x edge
// squares in row-major order, starting at Bounds().Min. Pixels on the
// right and bottom that do not fill a whole square are dropped. A
// non-positive edge yields nil.
func (img *RGBAImage) SquareSubImages(edge int) []image.Rectangle {
	if edge <= 0 {
		return nil
	}
	origin := img.Bounds().Min
	cols, rows := img.Width()/edge, img.Height()/edge
	blocks := make([]image.Rectangle, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x, y := origin.X+col*edge, origin.Y+row*edge
			blocks = append(blocks, image.Rect(x, y, x+edge, y+edge))
		}
	}
	return blocks
}

// Pixels calls fn for every pixel inside rect, clipped to the image bounds,
// in row-major order.
func (img *RGBAImage) Pixels(rect image.Rectangle, fn func(c RGB)) {
	rect = rect.Intersect(img.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		off := img.PixOffset(rect.Min.X, y)
		for x := rect.Min.X; x < rect.Max.X; x++ {
			fn(RGB{R: img.Pix[off], G: img.Pix[off+1], B: img.Pix[off+2]})
			off += 4
		}
	}
}
