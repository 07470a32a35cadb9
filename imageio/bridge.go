// Package imageio moves pixel buffers across the codec boundary: it
// bridges them to and from the standard library's image types and
// reads/writes PNG and TIFF files.
package imageio

import (
	"image"
	"image/color"

	"github.com/nvr-ai/go-image2d/image2d"
	"github.com/nvr-ai/go-image2d/pixel"
)

// FromGray converts a standard 8-bit grayscale image into an owned
// buffer.
func FromGray(m *image.Gray) *image2d.Buffer[pixel.Gray[uint8], uint8] {
	b := m.Bounds()
	return image2d.Generate[pixel.Gray[uint8]](b.Dx(), b.Dy(), func(x, y int) pixel.Gray[uint8] {
		return pixel.NewGray([1]uint8{m.GrayAt(b.Min.X+x, b.Min.Y+y).Y})
	})
}

// FromGray16 converts a standard 16-bit grayscale image into an owned
// buffer.
func FromGray16(m *image.Gray16) *image2d.Buffer[pixel.Gray[uint16], uint16] {
	b := m.Bounds()
	return image2d.Generate[pixel.Gray[uint16]](b.Dx(), b.Dy(), func(x, y int) pixel.Gray[uint16] {
		return pixel.NewGray([1]uint16{m.Gray16At(b.Min.X+x, b.Min.Y+y).Y})
	})
}

// FromNRGBA converts a standard non-premultiplied 8-bit color image into
// an owned buffer.
func FromNRGBA(m *image.NRGBA) *image2d.Buffer[pixel.RGBA[uint8], uint8] {
	b := m.Bounds()
	return image2d.Generate[pixel.RGBA[uint8]](b.Dx(), b.Dy(), func(x, y int) pixel.RGBA[uint8] {
		c := m.NRGBAAt(b.Min.X+x, b.Min.Y+y)
		return pixel.NewRGBA([4]uint8{c.R, c.G, c.B, c.A})
	})
}

// FromNRGBA64 converts a standard non-premultiplied 16-bit color image
// into an owned buffer.
func FromNRGBA64(m *image.NRGBA64) *image2d.Buffer[pixel.RGBA[uint16], uint16] {
	b := m.Bounds()
	return image2d.Generate[pixel.RGBA[uint16]](b.Dx(), b.Dy(), func(x, y int) pixel.RGBA[uint16] {
		c := m.NRGBA64At(b.Min.X+x, b.Min.Y+y)
		return pixel.NewRGBA([4]uint16{c.R, c.G, c.B, c.A})
	})
}

// FromImage converts any standard image into an 8-bit RGBA buffer
// through the color model, one pixel at a time. Prefer the typed From*
// converters when the concrete type is known.
func FromImage(m image.Image) *image2d.Buffer[pixel.RGBA[uint8], uint8] {
	b := m.Bounds()
	return image2d.Generate[pixel.RGBA[uint8]](b.Dx(), b.Dy(), func(x, y int) pixel.RGBA[uint8] {
		c := color.NRGBAModel.Convert(m.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
		return pixel.NewRGBA([4]uint8{c.R, c.G, c.B, c.A})
	})
}

// ToGray converts a grayscale image into a standard 8-bit image.Gray.
func ToGray(img image2d.Image[pixel.Gray[uint8], uint8]) *image.Gray {
	w, h := img.Dimensions()
	m := image.NewGray(image.Rect(0, 0, w, h))
	if s := img.AsSlice(); s != nil && m.Stride == w {
		for i, p := range s {
			m.Pix[i] = p.Data[0]
		}
		return m
	}
	for pt, p := range img.EnumeratePixels() {
		m.SetGray(pt.X, pt.Y, color.Gray{Y: p.Data[0]})
	}
	return m
}

// ToGray16 converts a grayscale image into a standard 16-bit
// image.Gray16.
func ToGray16(img image2d.Image[pixel.Gray[uint16], uint16]) *image.Gray16 {
	w, h := img.Dimensions()
	m := image.NewGray16(image.Rect(0, 0, w, h))
	for pt, p := range img.EnumeratePixels() {
		m.SetGray16(pt.X, pt.Y, color.Gray16{Y: p.Data[0]})
	}
	return m
}

// ToNRGBA converts an 8-bit RGBA image into a standard image.NRGBA.
func ToNRGBA(img image2d.Image[pixel.RGBA[uint8], uint8]) *image.NRGBA {
	w, h := img.Dimensions()
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for pt, p := range img.EnumeratePixels() {
		m.SetNRGBA(pt.X, pt.Y, color.NRGBA{R: p.Data[0], G: p.Data[1], B: p.Data[2], A: p.Data[3]})
	}
	return m
}

// ToNRGBA64 converts a 16-bit RGBA image into a standard image.NRGBA64.
func ToNRGBA64(img image2d.Image[pixel.RGBA[uint16], uint16]) *image.NRGBA64 {
	w, h := img.Dimensions()
	m := image.NewNRGBA64(image.Rect(0, 0, w, h))
	for pt, p := range img.EnumeratePixels() {
		m.SetNRGBA64(pt.X, pt.Y, color.NRGBA64{R: p.Data[0], G: p.Data[1], B: p.Data[2], A: p.Data[3]})
	}
	return m
}

// ToNRGBAFromRGB converts an 8-bit RGB image into an opaque standard
// image.NRGBA.
func ToNRGBAFromRGB(img image2d.Image[pixel.RGB[uint8], uint8]) *image.NRGBA {
	w, h := img.Dimensions()
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for pt, p := range img.EnumeratePixels() {
		m.SetNRGBA(pt.X, pt.Y, color.NRGBA{R: p.Data[0], G: p.Data[1], B: p.Data[2], A: 0xff})
	}
	return m
}

// ToNRGBAFromGrayAlpha converts an 8-bit gray+alpha image into a
// standard image.NRGBA with equal color channels.
func ToNRGBAFromGrayAlpha(img image2d.Image[pixel.GrayAlpha[uint8], uint8]) *image.NRGBA {
	w, h := img.Dimensions()
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for pt, p := range img.EnumeratePixels() {
		m.SetNRGBA(pt.X, pt.Y, color.NRGBA{R: p.Data[0], G: p.Data[0], B: p.Data[0], A: p.Data[1]})
	}
	return m
}
