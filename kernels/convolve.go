package kernels

import (
	"fmt"

	"github.com/nvr-ai/go-image2d/image2d"
	"github.com/nvr-ai/go-image2d/pixel"
)

// Convolve slides the kernel over img and produces an owned buffer of
// the same dimensions with output pixel type PO.
//
// The source image is first enlarged by the kernel radius with the given
// padding policy, so every window is fully defined. Each window pixel's
// channels are cast from the source subpixel type S into the working
// type T, multiplied by the aligned kernel weight, and accumulated per
// channel. The accumulated sum is clamped into [T(S minimum), T(S
// maximum)] — the SOURCE type's bounds, even when O differs — and then
// cast to the output subpixel type O, degrading to zero when the cast
// fails.
//
// The output pixel type must have the same channel count as the source
// pixel type; Convolve panics otherwise. Convolve does not cross-check
// the kernel radius against anything the caller padded manually: pass
// the image un-padded and let Convolve pad it.
//
// The first type parameter names the output pixel type; the rest are
// inferred:
//
//	blurred := kernels.Convolve[pixel.Gray[uint8]](k, img, image2d.PaddingMirror)
func Convolve[PO pixel.Pixel[PO, O], O pixel.Subpixel, T pixel.Subpixel, PS pixel.Pixel[PS, S], S pixel.Subpixel](
	k *Kernel[T], img image2d.Image[PS, S], pad image2d.Padding,
) *image2d.Buffer[PO, O] {
	var protoS PS
	var protoO PO
	nc := protoS.NumChannels()
	if nc != protoO.NumChannels() {
		panic(fmt.Sprintf("kernels: source has %d channels, output has %d", nc, protoO.NumChannels()))
	}

	w, h := img.Dimensions()
	padded := image2d.Pad(img, k.radius, pad)
	d := k.Diameter()

	lo := pixel.Convert[S, T](pixel.MinValue[S]())
	hi := pixel.Convert[S, T](pixel.MaxValue[S]())

	acc := make([]T, nc)
	out := make([]O, nc)
	return image2d.Generate[PO, O](w, h, func(x, y int) PO {
		for i := range acc {
			var zero T
			acc[i] = zero
		}
		// The padding offset makes the window starting at (x, y) in
		// the padded buffer exactly centered on input pixel (x, y).
		accumulateWindow(padded, image2d.MustRect(x, y, d, d), k.weights, acc)
		for c := 0; c < nc; c++ {
			out[c] = pixel.Convert[T, O](pixel.Clamp(acc[c], lo, hi))
		}
		return protoO.FromChannels(out)
	})
}

// accumulateWindow pairs the window's pixels with the kernel weights.
// Both sides are traversed in row-major, top-left to bottom-right order;
// this pairing lives here and nowhere else, because any divergence in
// traversal order silently corrupts results.
func accumulateWindow[T pixel.Subpixel, PS pixel.Pixel[PS, S], S pixel.Subpixel](
	padded *image2d.Buffer[PS, S], win image2d.Rect, weights []T, acc []T,
) {
	i := 0
	for p := range padded.RectIter(win) {
		wgt := weights[i]
		i++
		for c, ch := range p.Channels() {
			acc[c] += wgt * pixel.Convert[S, T](ch)
		}
	}
}
