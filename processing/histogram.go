// Package processing contains image-wide pixel operations: histogram
// equalization, colorspace conversion and resizing.
package processing

import (
	"github.com/nvr-ai/go-image2d/image2d"
	"github.com/nvr-ai/go-image2d/pixel"
)

// Histogram counts the pixels of an 8-bit grayscale image per value.
type Histogram struct {
	bins [256]uint32
}

// NewHistogram computes the histogram of img.
func NewHistogram(img image2d.Image[pixel.Gray[uint8], uint8]) *Histogram {
	var h Histogram
	for p := range img.Pixels() {
		h.bins[p.Data[0]]++
	}
	return &h
}

// Count returns the number of pixels with the given value.
func (h *Histogram) Count(val uint8) uint32 { return h.bins[val] }

// Bins returns the 256 histogram bins.
func (h *Histogram) Bins() *[256]uint32 { return &h.bins }

// Cumulative returns the running-sum histogram: bin i holds the number
// of pixels with value <= i.
func (h *Histogram) Cumulative() *Histogram {
	var c Histogram
	c.bins[0] = h.bins[0]
	for i := 1; i < 256; i++ {
		c.bins[i] = c.bins[i-1] + h.bins[i]
	}
	return &c
}

// Equalize adjusts the contrast of img by histogram equalization: each
// value is mapped through the normalized cumulative histogram so the
// output spreads over the full 8-bit range.
func Equalize(img image2d.Image[pixel.Gray[uint8], uint8]) *image2d.Buffer[pixel.Gray[uint8], uint8] {
	cumul := NewHistogram(img).Cumulative()
	max := cumul.bins[255]

	out := img.ToBuffer()
	if max == 0 {
		// No pixels to remap.
		return out
	}

	var transfer [256]uint8
	for i, v := range cumul.bins {
		transfer[i] = uint8(float64(v) * 255 / float64(max))
	}

	for p := range out.RectIterMut(image2d.MustRect(0, 0, out.Width(), out.Height())) {
		p.Data[0] = transfer[p.Data[0]]
	}
	return out
}
