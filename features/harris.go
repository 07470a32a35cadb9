// Package features implements corner detection on grayscale images.
package features

import (
	"math"

	"github.com/nvr-ai/go-image2d/image2d"
	"github.com/nvr-ai/go-image2d/kernels"
	"github.com/nvr-ai/go-image2d/pixel"
)

// Default Harris response threshold below which candidates are ignored.
const responseThreshold = 10_000.0

// HarrisCorners detects corners in a grayscale image. The image is
// blurred with a gaussian of the given radius (sigma = radius), its
// Sobel derivative magnitudes feed the gaussian-weighted second-moment
// matrix of each window, and the response is det(M) - k*trace(M)^2. A
// pixel is a corner when its response exceeds the detection threshold
// and is a strict maximum of its 8 neighbors. Typical k is 0.04 to 0.06.
func HarrisCorners[S pixel.Subpixel](img image2d.Image[pixel.Gray[S], S], radius int, k float64) []image2d.Point {
	w, h := img.Dimensions()
	if radius < 1 || w < 3 || h < 3 {
		return nil
	}

	gaussian := kernels.Gaussian[float64](float64(radius), radius)

	// Mirror-pad up front so the derivative images still cover a full
	// window around every original pixel.
	padded := image2d.PadMirror(img, radius)
	blurred := kernels.Convolve[pixel.Gray[float64]](gaussian, padded, image2d.PaddingMirror)
	dx := absImage(kernels.Convolve[pixel.Gray[float64]](kernels.SobelX3x3[float64](), blurred, image2d.PaddingZero))
	dy := absImage(kernels.Convolve[pixel.Gray[float64]](kernels.SobelY3x3[float64](), blurred, image2d.PaddingZero))

	window := gaussian.Weights()
	d := gaussian.Diameter()

	response := image2d.Generate[pixel.Gray[float64]](w, h, func(x, y int) pixel.Gray[float64] {
		var a, b, c float64
		for wy := 0; wy < d; wy++ {
			for wx := 0; wx < d; wx++ {
				wgt := window[wy*d+wx]
				ix := dx.GetPixel(x+wx, y+wy).Data[0]
				iy := dy.GetPixel(x+wx, y+wy).Data[0]
				a += ix * ix * wgt
				b += iy * iy * wgt
				c += ix * iy * wgt
			}
		}
		det := a*b - c*c
		tr := a + b
		return pixel.NewGray([1]float64{det - k*tr*tr})
	})

	// Strict 8-neighbor maxima over the interior.
	var corners []image2d.Point
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			e := response.GetPixel(x, y).Data[0]
			if e <= responseThreshold {
				continue
			}
			if isLocalMax(response, x, y, e) {
				corners = append(corners, image2d.Point{X: x, Y: y})
			}
		}
	}
	return corners
}

func isLocalMax(response *image2d.Buffer[pixel.Gray[float64], float64], x, y int, e float64) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if response.GetPixel(x+dx, y+dy).Data[0] >= e {
				return false
			}
		}
	}
	return true
}

func absImage(img *image2d.Buffer[pixel.Gray[float64], float64]) *image2d.Buffer[pixel.Gray[float64], float64] {
	w, h := img.Dimensions()
	return image2d.Generate[pixel.Gray[float64]](w, h, func(x, y int) pixel.Gray[float64] {
		return img.GetPixel(x, y).Map(math.Abs)
	})
}
