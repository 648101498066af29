// Package gocv_compare checks the pure Go block luminance against OpenCV.
// These tests require OpenCV to be installed.
//
// Run with: cd imageutil/gocv_compare && go test -v
package gocv_compare

import (
	"image"
	"math"
	"testing"

	"github.com/wbrown/img2ascii/imageutil"
	"gocv.io/x/gocv"
)

// rgbaToGocv converts an RGBAImage to gocv.Mat (BGR).
func rgbaToGocv(img *imageutil.RGBAImage) gocv.Mat {
	mat := gocv.NewMatWithSize(img.Height(), img.Width(), gocv.MatTypeCV8UC3)

	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			c := img.GetRGB(x, y)
			// gocv uses BGR format
			mat.SetUCharAt(y, x*3, c.B)
			mat.SetUCharAt(y, x*3+1, c.G)
			mat.SetUCharAt(y, x*3+2, c.R)
		}
	}
	return mat
}

// gocvBlockLuminance averages each channel of the block with OpenCV and
// weights the means, which equals the mean of the weighted pixels.
func gocvBlockLuminance(mat gocv.Mat, rect image.Rectangle) float64 {
	region := mat.Region(rect)
	defer region.Close()

	mean := region.Mean()
	return (mean.Val3*imageutil.LumaR + mean.Val2*imageutil.LumaG + mean.Val1*imageutil.LumaB) / 255
}

func TestCompareBlockLuminance(t *testing.T) {
	testCases := []struct {
		name string
		img  *imageutil.RGBAImage
		edge int
	}{
		{"Gradient", imageutil.CreateGradientImage(256, 128), 16},
		{"Checkerboard", imageutil.CreateCheckerboardImage(120, 90, 7), 10},
		{"Solid", imageutil.CreateSolidImage(64, 64, imageutil.RGB{R: 200, G: 30, B: 90}), 8},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mat := rgbaToGocv(tc.img)
			defer mat.Close()

			for _, rect := range tc.img.SquareSubImages(tc.edge) {
				pureGo := imageutil.AverageLuminance(tc.img, rect)
				cv := gocvBlockLuminance(mat, rect)
				if math.Abs(pureGo-cv) > 1e-6 {
					t.Errorf("Block %v: pure Go %f, gocv %f", rect, pureGo, cv)
				}
			}
		})
	}
}
