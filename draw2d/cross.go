// Package draw2d draws simple overlay markers onto mutable images.
package draw2d

import (
	"github.com/nvr-ai/go-image2d/image2d"
	"github.com/nvr-ai/go-image2d/pixel"
)

// DrawCross draws a plus-shaped cross centered on (cx, cy) with arms of
// the given length, clipped to the image bounds. A center outside the
// image draws nothing.
func DrawCross[P pixel.Pixel[P, S], S pixel.Subpixel](img image2d.MutableImage[P, S], cx, cy, size int, color P) {
	w, h := img.Dimensions()
	if cx < 0 || cx >= w || cy < 0 || cy >= h {
		return
	}

	clip := func(c, size, limit int) (int, int) {
		lo := c - size
		if lo < 0 {
			lo = 0
		}
		hi := c + size
		if hi >= limit {
			hi = limit - 1
		}
		return lo, hi
	}

	x0, x1 := clip(cx, size, w)
	for x := x0; x <= x1; x++ {
		img.PutPixel(x, cy, color)
	}
	y0, y1 := clip(cy, size, h)
	for y := y0; y <= y1; y++ {
		img.PutPixel(cx, y, color)
	}
}
