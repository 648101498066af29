package output

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/imageutil"
)

// PNG draws every cell's glyph raster, white on black, and saves the
// result as a PNG file.
type PNG struct {
	path       string
	font       string
	rasterizer img2ascii.Rasterizer
	scale      int
}

// NewPNG returns a PNG output. A scale below 1 is treated as 1.
func NewPNG(path, font string, rasterizer img2ascii.Rasterizer, scale int) *PNG {
	if scale < 1 {
		scale = 1
	}
	return &PNG{path: path, font: font, rasterizer: rasterizer, scale: scale}
}

// Path returns the destination file.
func (p *PNG) Path() string {
	return p.path
}

// Output implements Output.
func (p *PNG) Output(grid img2ascii.Grid) error {
	img, err := p.Draw(grid)
	if err != nil {
		return err
	}
	return imageutil.SavePNG(img, p.path)
}

// Draw renders the grid to an image of cols*GlyphSize*scale by
// rows*GlyphSize*scale pixels.
func (p *PNG) Draw(grid img2ascii.Grid) (*image.RGBA, error) {
	cell := img2ascii.GlyphSize * p.scale
	img := image.NewRGBA(image.Rect(0, 0, grid.Cols()*cell, grid.Rows()*cell))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	for y, row := range grid {
		for x, r := range row {
			g, err := p.rasterizer.Rasterize(r, p.font)
			if err != nil {
				return nil, err
			}
			p.drawGlyph(img, g, x*cell, y*cell)
		}
	}
	return img, nil
}

// drawGlyph paints the lit pixels of g at (startX, startY) with scaling.
func (p *PNG) drawGlyph(img *image.RGBA, g img2ascii.GlyphRaster, startX, startY int) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for y := 0; y < img2ascii.GlyphSize; y++ {
		for x := 0; x < img2ascii.GlyphSize; x++ {
			if !g.At(x, y) {
				continue
			}
			px, py := startX+x*p.scale, startY+y*p.scale
			draw.Draw(img, image.Rect(px, py, px+p.scale, py+p.scale),
				&image.Uniform{C: white}, image.Point{}, draw.Src)
		}
	}
}
