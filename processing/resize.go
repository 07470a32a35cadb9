package processing

import (
	"image"

	"github.com/nfnt/resize"

	"github.com/nvr-ai/go-image2d/image2d"
	"github.com/nvr-ai/go-image2d/imageio"
	"github.com/nvr-ai/go-image2d/pixel"
)

// Resize scales an 8-bit color image to the given dimensions. The
// interpolation function is one of the nfnt/resize kernels, for example
// resize.Bilinear or resize.Lanczos3. A zero width or height preserves
// the aspect ratio.
func Resize(img image2d.Image[pixel.RGBA[uint8], uint8], w, h int, interp resize.InterpolationFunction) *image2d.Buffer[pixel.RGBA[uint8], uint8] {
	scaled := resize.Resize(uint(w), uint(h), imageio.ToNRGBA(img), interp)
	if m, ok := scaled.(*image.NRGBA); ok {
		return imageio.FromNRGBA(m)
	}
	return imageio.FromImage(scaled)
}

// ResizeGray scales an 8-bit grayscale image to the given dimensions.
func ResizeGray(img image2d.Image[pixel.Gray[uint8], uint8], w, h int, interp resize.InterpolationFunction) *image2d.Buffer[pixel.Gray[uint8], uint8] {
	scaled := resize.Resize(uint(w), uint(h), imageio.ToGray(img), interp)
	if m, ok := scaled.(*image.Gray); ok {
		return imageio.FromGray(m)
	}
	return RGBAToGray[uint8](imageio.FromImage(scaled))
}
