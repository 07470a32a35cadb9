package processing

import (
	"github.com/nvr-ai/go-image2d/image2d"
	"github.com/nvr-ai/go-image2d/pixel"
)

// Rec. 601 luma weights.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// RGBToGray converts a color image to grayscale with Rec. 601 luma
// weights, computed in float64 and cast back to the subpixel type.
func RGBToGray[S pixel.Subpixel](img image2d.Image[pixel.RGB[S], S]) *image2d.Buffer[pixel.Gray[S], S] {
	w, h := img.Dimensions()
	return image2d.Generate[pixel.Gray[S]](w, h, func(x, y int) pixel.Gray[S] {
		p := img.GetPixel(x, y)
		l := lumaR*pixel.Convert[S, float64](p.Data[0]) +
			lumaG*pixel.Convert[S, float64](p.Data[1]) +
			lumaB*pixel.Convert[S, float64](p.Data[2])
		return pixel.NewGray([1]S{pixel.Convert[float64, S](l)})
	})
}

// RGBAToGray discards alpha and converts to grayscale.
func RGBAToGray[S pixel.Subpixel](img image2d.Image[pixel.RGBA[S], S]) *image2d.Buffer[pixel.Gray[S], S] {
	return RGBToGray[S](DropAlpha(img))
}

// DropAlpha strips the alpha channel from a color image.
func DropAlpha[S pixel.Subpixel](img image2d.Image[pixel.RGBA[S], S]) *image2d.Buffer[pixel.RGB[S], S] {
	w, h := img.Dimensions()
	return image2d.Generate[pixel.RGB[S]](w, h, func(x, y int) pixel.RGB[S] {
		return pixel.DropAlphaRGBA(img.GetPixel(x, y))
	})
}

// GrayToRGB broadcasts a grayscale image over three color channels.
func GrayToRGB[S pixel.Subpixel](img image2d.Image[pixel.Gray[S], S]) *image2d.Buffer[pixel.RGB[S], S] {
	w, h := img.Dimensions()
	return image2d.Generate[pixel.RGB[S]](w, h, func(x, y int) pixel.RGB[S] {
		v := img.GetPixel(x, y).Data[0]
		return pixel.NewRGB([3]S{v, v, v})
	})
}
