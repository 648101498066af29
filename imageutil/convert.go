package imageutil

import "image"

// Rec. 709 luma coefficients.
const (
	LumaR = 0.2126
	LumaG = 0.7152
	LumaB = 0.0722
)

// Luminance returns the perceptual luminance of c on a 0-255 scale.
func Luminance(c RGB) float64 {
	return float64(c.R)*LumaR + float64(c.G)*LumaG + float64(c.B)*LumaB
}

// AverageLuminance returns the mean luminance of the pixels inside rect,
// normalized to [0, 1]. An empty rectangle has luminance 0.
func AverageLuminance(img *RGBAImage, rect image.Rectangle) float64 {
	var sum float64
	var count int
	img.Pixels(rect, func(c RGB) {
		sum += Luminance(c)
		count++
	})
	if count == 0 {
		return 0
	}
	return sum / (float64(count) * 255)
}
