package image2d

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-image2d/pixel"
)

// Padding selects a border-extension policy. Padding an image by radius r
// produces an owned buffer of size (w+2r)x(h+2r) with the source placed
// at offset (r, r), which is exactly the enlargement the convolution
// engine expects.
type Padding int

const (
	// PaddingZero extends the border with the pixel type's zero value.
	PaddingZero Padding = iota
	// PaddingReplicate extends the border by repeating the nearest
	// source edge pixel.
	PaddingReplicate
	// PaddingWrap extends the border toroidally with the opposite edge
	// of the source.
	PaddingWrap
	// PaddingMirror extends the border by reflection starting at the
	// pixel adjacent to the border; the border pixel itself is not
	// repeated.
	PaddingMirror
)

// String implements fmt.Stringer.
func (p Padding) String() string {
	switch p {
	case PaddingZero:
		return "zero"
	case PaddingReplicate:
		return "replicate"
	case PaddingWrap:
		return "wrap"
	case PaddingMirror:
		return "mirror"
	}
	return fmt.Sprintf("Padding(%d)", int(p))
}

// ParsePadding maps the string names used on command lines back to
// Padding values.
func ParsePadding(s string) (Padding, error) {
	switch s {
	case "zero":
		return PaddingZero, nil
	case "replicate":
		return PaddingReplicate, nil
	case "wrap":
		return PaddingWrap, nil
	case "mirror":
		return PaddingMirror, nil
	}
	return 0, errors.Wrapf(ErrInvalidPadding, "%q", s)
}

// Pad pads img by radius with the given policy.
//
// Preconditions: img is non-empty and radius >= 0. PaddingWrap requires
// radius <= min(w, h); PaddingMirror requires radius < min(w, h).
func Pad[P pixel.Pixel[P, S], S pixel.Subpixel](img Image[P, S], radius int, mode Padding) *Buffer[P, S] {
	switch mode {
	case PaddingZero:
		return PadZero(img, radius)
	case PaddingReplicate:
		return PadReplicate(img, radius)
	case PaddingWrap:
		return PadWrap(img, radius)
	case PaddingMirror:
		return PadMirror(img, radius)
	}
	panic(fmt.Sprintf("image2d: unknown padding mode %d", int(mode)))
}

// PadConstant pads img by radius with the constant pixel val.
func PadConstant[P pixel.Pixel[P, S], S pixel.Subpixel](img Image[P, S], radius int, val P) *Buffer[P, S] {
	if radius < 0 {
		panic(fmt.Sprintf("image2d: negative padding radius %d", radius))
	}
	w, h := img.Dimensions()
	padded := New[P, S](w+2*radius, h+2*radius)
	padded.Fill(val)
	if err := padded.BlitRect(MustRect(0, 0, w, h), MustRect(radius, radius, w, h), img); err != nil {
		panic(err)
	}
	return padded
}

// PadZero pads img by radius with the pixel type's zero value.
func PadZero[P pixel.Pixel[P, S], S pixel.Subpixel](img Image[P, S], radius int) *Buffer[P, S] {
	var zero P
	return PadConstant(img, radius, zero.Zero())
}

// PadReplicate pads img by replicating its border pixels: each corner
// block broadcasts the nearest source corner pixel, and each edge strip
// repeats the nearest source edge row or column across the margin.
func PadReplicate[P pixel.Pixel[P, S], S pixel.Subpixel](img Image[P, S], radius int) *Buffer[P, S] {
	padded := PadZero(img, radius)
	if radius == 0 {
		return padded
	}
	w, h := img.Dimensions()
	r := radius

	fillCorner := func(x, y int, val P) {
		sub, err := padded.SubImageMut(MustRect(x, y, r, r))
		if err != nil {
			panic(err)
		}
		sub.Fill(val)
		sub.Release()
	}
	fillCorner(0, 0, img.GetPixel(0, 0))
	fillCorner(w+r, 0, img.GetPixel(w-1, 0))
	fillCorner(0, h+r, img.GetPixel(0, h-1))
	fillCorner(w+r, h+r, img.GetPixel(w-1, h-1))

	// Top and bottom strips: broadcast each edge pixel down its column.
	top, err := padded.SubImageMut(MustRect(r, 0, w, r))
	if err != nil {
		panic(err)
	}
	bottom, err := padded.SubImageMut(MustRect(r, h+r, w, r))
	if err != nil {
		panic(err)
	}
	for x := 0; x < w; x++ {
		col := MustRect(x, 0, 1, r)
		if err := top.FillRect(col, img.GetPixel(x, 0)); err != nil {
			panic(err)
		}
		if err := bottom.FillRect(col, img.GetPixel(x, h-1)); err != nil {
			panic(err)
		}
	}
	top.Release()
	bottom.Release()

	// Left and right strips: broadcast each edge pixel across its row.
	left, err := padded.SubImageMut(MustRect(0, r, r, h))
	if err != nil {
		panic(err)
	}
	right, err := padded.SubImageMut(MustRect(w+r, r, r, h))
	if err != nil {
		panic(err)
	}
	for y := 0; y < h; y++ {
		row := MustRect(0, y, r, 1)
		if err := left.FillRect(row, img.GetPixel(0, y)); err != nil {
			panic(err)
		}
		if err := right.FillRect(row, img.GetPixel(w-1, y)); err != nil {
			panic(err)
		}
	}
	left.Release()
	right.Release()

	return padded
}

// PadWrap pads img toroidally: the margin on each side is a copy of the
// opposite edge of the source, and each corner block is a copy of the
// diagonally opposite source corner. Requires radius <= min(w, h).
func PadWrap[P pixel.Pixel[P, S], S pixel.Subpixel](img Image[P, S], radius int) *Buffer[P, S] {
	padded := PadZero(img, radius)
	if radius == 0 {
		return padded
	}
	w, h := img.Dimensions()
	r := radius

	copyRegion := func(srcRect, dstRect Rect) {
		if err := padded.BlitRect(srcRect, dstRect, img); err != nil {
			panic(err)
		}
	}
	// Corners, each from the diagonally opposite source corner.
	copyRegion(MustRect(0, 0, r, r), MustRect(w+r, h+r, r, r))
	copyRegion(MustRect(w-r, 0, r, r), MustRect(0, h+r, r, r))
	copyRegion(MustRect(0, h-r, r, r), MustRect(w+r, 0, r, r))
	copyRegion(MustRect(w-r, h-r, r, r), MustRect(0, 0, r, r))
	// Edges, each from the opposite source edge.
	copyRegion(MustRect(0, 0, w, r), MustRect(r, h+r, w, r))
	copyRegion(MustRect(0, 0, r, h), MustRect(w+r, r, r, h))
	copyRegion(MustRect(w-r, 0, r, h), MustRect(0, r, r, h))
	copyRegion(MustRect(0, h-r, w, r), MustRect(r, 0, w, r))

	return padded
}

// PadMirror pads img by reflection around its border. The reflection
// starts at the pixel adjacent to the border, so the border pixel is not
// repeated: the row [a b c d e] padded by 2 reads [c b | a b c d e | d c].
// Requires radius < min(w, h).
func PadMirror[P pixel.Pixel[P, S], S pixel.Subpixel](img Image[P, S], radius int) *Buffer[P, S] {
	padded := PadZero(img, radius)
	if radius == 0 {
		return padded
	}
	w, h := img.Dimensions()
	r := radius

	// Edge strips, reflected across the border axis.
	blitFlipped(padded, img, MustRect(1, 0, r, h), MustRect(0, r, r, h), true, false)
	blitFlipped(padded, img, MustRect(w-r-1, 0, r, h), MustRect(w+r, r, r, h), true, false)
	blitFlipped(padded, img, MustRect(0, 1, w, r), MustRect(r, 0, w, r), false, true)
	blitFlipped(padded, img, MustRect(0, h-r-1, w, r), MustRect(r, h+r, w, r), false, true)
	// Corner blocks, reflected across both axes.
	blitFlipped(padded, img, MustRect(1, 1, r, r), MustRect(0, 0, r, r), true, true)
	blitFlipped(padded, img, MustRect(w-r-1, 1, r, r), MustRect(w+r, 0, r, r), true, true)
	blitFlipped(padded, img, MustRect(1, h-r-1, r, r), MustRect(0, h+r, r, r), true, true)
	blitFlipped(padded, img, MustRect(w-r-1, h-r-1, r, r), MustRect(w+r, h+r, r, r), true, true)

	return padded
}

// blitFlipped copies srcRect of src onto dstRect of dst with the
// destination's column and/or row order reversed relative to the
// source's. Both rects must be the same size.
func blitFlipped[P pixel.Pixel[P, S], S pixel.Subpixel](dst *Buffer[P, S], src Image[P, S], srcRect, dstRect Rect, flipX, flipY bool) {
	wR, hR := srcRect.Size()
	for y := 0; y < hR; y++ {
		sy := y
		if flipY {
			sy = hR - 1 - y
		}
		for x := 0; x < wR; x++ {
			sx := x
			if flipX {
				sx = wR - 1 - x
			}
			p := src.GetPixel(srcRect.left+sx, srcRect.top+sy)
			dst.PutPixel(dstRect.left+x, dstRect.top+y, p)
		}
	}
}
