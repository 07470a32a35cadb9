// Package image2d provides the 2-D pixel grid at the heart of the
// library: an owned buffer, zero-copy read-only and exclusive-mutable
// views over the same contiguous storage, rectangle queries, and the
// border-padding engine built on top of those primitives.
//
// Storage is a single row-major allocation. Views are index windows into
// the owner's storage guarded by a dynamic borrow ledger: any number of
// read-only views may alias a region, but an exclusive view conflicts
// with every other live view of an overlapping region. The ledger is
// checked at view acquisition; direct access through the owner while an
// exclusive view is live is a documented caller error, not a checked one.
package image2d

import (
	"iter"

	"github.com/nvr-ai/go-image2d/pixel"
)

// Point is a pixel coordinate, x growing rightward and y downward.
type Point struct {
	X, Y int
}

// Image is the read contract shared by owned buffers and views.
//
// GetPixel panics on out-of-bounds coordinates: violating the bounds is a
// programming error, and recovering from it would mask the bug. RectIter
// deliberately skips bounds validation; validate caller-supplied
// rectangles with Rect.FitsImage or Rect.CropToImage first.
type Image[P pixel.Pixel[P, S], S pixel.Subpixel] interface {
	Sized

	// Dimensions returns the width and height of the image.
	Dimensions() (int, int)

	// GetPixel returns the pixel at (x, y). Panics if out of bounds.
	GetPixel(x, y int) P

	// AsSlice returns the contiguous backing slice when the image's
	// storage is laid out in natural row-major order with no gaps, and
	// nil otherwise. Owned buffers always qualify; views qualify only
	// when they span full storage rows.
	AsSlice() []P

	// Row returns a left-to-right sequence over row y, or nil if y is
	// out of range. The sequence is finite and restartable by calling
	// Row again.
	Row(y int) iter.Seq[P]

	// Col returns a top-to-bottom sequence over column x, or nil if x
	// is out of range.
	Col(x int) iter.Seq[P]

	// Rows yields every row sequence from top to bottom.
	Rows() iter.Seq[iter.Seq[P]]

	// Cols yields every column sequence from left to right.
	Cols() iter.Seq[iter.Seq[P]]

	// Pixels yields every pixel in row-major order.
	Pixels() iter.Seq[P]

	// EnumeratePixels yields every coordinate and pixel in row-major
	// order.
	EnumeratePixels() iter.Seq2[Point, P]

	// RectIter yields the pixels of r (in the image's coordinate
	// space) in row-major order. The rectangle is NOT validated
	// against the image bounds; this is the unchecked fast path.
	RectIter(r Rect) iter.Seq[P]

	// SubImage returns a zero-copy read-only view of r. It returns
	// ErrRectOutOfBounds if r does not fit, or ErrBorrowConflict if r
	// overlaps a live exclusive view.
	SubImage(r Rect) (*View[P, S], error)

	// ToBuffer returns an owned copy of the image.
	ToBuffer() *Buffer[P, S]
}

// MutableImage is the write contract, satisfied by owned buffers and
// exclusive views.
type MutableImage[P pixel.Pixel[P, S], S pixel.Subpixel] interface {
	Image[P, S]

	// PutPixel sets the pixel at (x, y). Panics if out of bounds.
	PutPixel(x, y int, p P)

	// RectIterMut yields pointers to the pixels of r in row-major
	// order, for in-place mutation. Like RectIter, r is not validated.
	RectIterMut(r Rect) iter.Seq[*P]

	// Fill overwrites every pixel with v.
	Fill(v P)

	// FillRect overwrites the pixels of r with v. Returns
	// ErrRectOutOfBounds if r does not fit.
	FillRect(r Rect, v P) error

	// BlitRect copies srcRect of src onto dstRect of the receiver,
	// pixel for pixel in row-major order. Returns ErrRectSizeMismatch
	// if the rectangles differ in size, or ErrRectOutOfBounds if
	// either rectangle does not fit its image.
	BlitRect(srcRect, dstRect Rect, src Image[P, S]) error

	// SubImageMut returns a zero-copy exclusive view of r. It returns
	// ErrRectOutOfBounds if r does not fit, or ErrBorrowConflict if r
	// overlaps any live view.
	SubImageMut(r Rect) (*MutView[P, S], error)
}

// Equal reports whether two images have the same dimensions and the same
// pixels at every coordinate.
func Equal[P pixel.Pixel[P, S], S pixel.Subpixel](a, b Image[P, S]) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	for pt, p := range a.EnumeratePixels() {
		if p != b.GetPixel(pt.X, pt.Y) {
			return false
		}
	}
	return true
}
