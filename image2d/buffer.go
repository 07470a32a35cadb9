package image2d

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-image2d/pixel"
)

// Buffer is an owned 2-D pixel grid backed by one contiguous row-major
// allocation. It exclusively owns its storage; views borrow windows into
// it through the borrow ledger.
type Buffer[P pixel.Pixel[P, S], S pixel.Subpixel] struct {
	pix    []P
	width  int
	height int

	borrows []*borrowRecord
}

type borrowKind uint8

const (
	borrowShared borrowKind = iota
	borrowExclusive
)

// borrowRecord is one live view registered on the owning buffer. Records
// are compared by pointer identity on release.
type borrowRecord struct {
	rect Rect
	kind borrowKind
}

// New creates a Buffer of the given dimensions with every pixel set to
// the pixel type's zero value. Panics if either dimension is negative.
func New[P pixel.Pixel[P, S], S pixel.Subpixel](w, h int) *Buffer[P, S] {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("image2d: negative dimensions %dx%d", w, h))
	}
	return &Buffer[P, S]{pix: make([]P, w*h), width: w, height: h}
}

// FromVec creates a Buffer that takes ownership of v as its backing
// storage. It returns ErrInvalidDimensions if len(v) != w*h.
func FromVec[P pixel.Pixel[P, S], S pixel.Subpixel](w, h int, v []P) (*Buffer[P, S], error) {
	if w < 0 || h < 0 || len(v) != w*h {
		return nil, errors.Wrapf(ErrInvalidDimensions, "vector has length %d, expected %d for %dx%d", len(v), w*h, w, h)
	}
	return &Buffer[P, S]{pix: v, width: w, height: h}, nil
}

// FromRawVec creates a Buffer from a flat, channel-grouped subpixel
// sequence, the layout produced by the decode boundary. It returns
// ErrInvalidDimensions if len(raw) is not w*h times the pixel type's
// channel count.
func FromRawVec[P pixel.Pixel[P, S], S pixel.Subpixel](w, h int, raw []S) (*Buffer[P, S], error) {
	var proto P
	nc := proto.NumChannels()
	if w < 0 || h < 0 || len(raw)%nc != 0 || len(raw)/nc != w*h {
		return nil, errors.Wrapf(ErrInvalidDimensions,
			"raw vector has %d subpixels, expected %d for %dx%d with %d channels", len(raw), w*h*nc, w, h, nc)
	}
	pix := make([]P, 0, w*h)
	for i := 0; i < len(raw); i += nc {
		pix = append(pix, proto.FromChannels(raw[i:i+nc]))
	}
	return &Buffer[P, S]{pix: pix, width: w, height: h}, nil
}

// Generate creates a Buffer where pixel (x, y) is f(x, y). The function
// is applied in row-major order, deterministically.
func Generate[P pixel.Pixel[P, S], S pixel.Subpixel](w, h int, f func(x, y int) P) *Buffer[P, S] {
	b := New[P, S](w, h)
	i := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.pix[i] = f(x, y)
			i++
		}
	}
	return b
}

// Width returns the width of the buffer.
func (b *Buffer[P, S]) Width() int { return b.width }

// Height returns the height of the buffer.
func (b *Buffer[P, S]) Height() int { return b.height }

// Dimensions returns the width and height of the buffer.
func (b *Buffer[P, S]) Dimensions() (int, int) { return b.width, b.height }

// Bounds returns the full extent of the buffer as a Rect. The second
// return value is false for an empty buffer.
func (b *Buffer[P, S]) Bounds() (Rect, bool) {
	if b.width == 0 || b.height == 0 {
		return Rect{}, false
	}
	return Rect{left: 0, top: 0, width: b.width, height: b.height}, true
}

// GetPixel returns the pixel at (x, y). Panics if out of bounds.
func (b *Buffer[P, S]) GetPixel(x, y int) P {
	b.checkBounds(x, y)
	return b.pix[y*b.width+x]
}

// PutPixel sets the pixel at (x, y). Panics if out of bounds.
func (b *Buffer[P, S]) PutPixel(x, y int, p P) {
	b.checkBounds(x, y)
	b.pix[y*b.width+x] = p
}

func (b *Buffer[P, S]) checkBounds(x, y int) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		panic(fmt.Sprintf("image2d: pixel access (%d, %d) out of bounds for %dx%d image", x, y, b.width, b.height))
	}
}

// AsSlice returns the contiguous row-major backing slice. For an owned
// buffer this is always available.
func (b *Buffer[P, S]) AsSlice() []P { return b.pix }

// Row returns a left-to-right sequence over row y, or nil if y is out of
// range.
func (b *Buffer[P, S]) Row(y int) iter.Seq[P] { return rowSeq(b, b.window(), y) }

// Col returns a top-to-bottom sequence over column x, or nil if x is out
// of range.
func (b *Buffer[P, S]) Col(x int) iter.Seq[P] { return colSeq(b, b.window(), x) }

// Rows yields every row sequence from top to bottom.
func (b *Buffer[P, S]) Rows() iter.Seq[iter.Seq[P]] { return rowsSeq(b, b.window()) }

// Cols yields every column sequence from left to right.
func (b *Buffer[P, S]) Cols() iter.Seq[iter.Seq[P]] { return colsSeq(b, b.window()) }

// Pixels yields every pixel in row-major order.
func (b *Buffer[P, S]) Pixels() iter.Seq[P] { return pixelsSeq(b, b.window()) }

// EnumeratePixels yields every coordinate and pixel in row-major order.
func (b *Buffer[P, S]) EnumeratePixels() iter.Seq2[Point, P] { return enumerateSeq(b, b.window()) }

// RectIter yields the pixels of r in row-major order without validating
// r against the buffer bounds.
func (b *Buffer[P, S]) RectIter(r Rect) iter.Seq[P] { return rectSeq(b, b.window(), r) }

// RectIterMut yields pointers to the pixels of r in row-major order
// without validating r against the buffer bounds.
func (b *Buffer[P, S]) RectIterMut(r Rect) iter.Seq[*P] { return rectMutSeq(b, b.window(), r) }

// Fill overwrites every pixel with v.
func (b *Buffer[P, S]) Fill(v P) {
	for i := range b.pix {
		b.pix[i] = v
	}
}

// FillRect overwrites the pixels of r with v. Returns ErrRectOutOfBounds
// if r does not fit the buffer.
func (b *Buffer[P, S]) FillRect(r Rect, v P) error { return fillRect[P, S](b, b.window(), r, v) }

// BlitRect copies srcRect of src onto dstRect of the buffer. See
// MutableImage.BlitRect for the error contract.
func (b *Buffer[P, S]) BlitRect(srcRect, dstRect Rect, src Image[P, S]) error {
	return blitRect[P, S](b, b.window(), srcRect, dstRect, src)
}

// SubImage returns a zero-copy read-only view of r.
func (b *Buffer[P, S]) SubImage(r Rect) (*View[P, S], error) {
	if !r.FitsImage(b) {
		return nil, errors.Wrapf(ErrRectOutOfBounds, "sub-image %v of %dx%d image", r, b.width, b.height)
	}
	rec, err := b.acquire(r, borrowShared, nil)
	if err != nil {
		return nil, err
	}
	return &View[P, S]{buf: b, rect: r, rec: rec}, nil
}

// SubImageMut returns a zero-copy exclusive view of r.
func (b *Buffer[P, S]) SubImageMut(r Rect) (*MutView[P, S], error) {
	if !r.FitsImage(b) {
		return nil, errors.Wrapf(ErrRectOutOfBounds, "sub-image %v of %dx%d image", r, b.width, b.height)
	}
	rec, err := b.acquire(r, borrowExclusive, nil)
	if err != nil {
		return nil, err
	}
	return &MutView[P, S]{buf: b, rect: r, rec: rec}, nil
}

// ToBuffer returns an owned copy of the buffer.
func (b *Buffer[P, S]) ToBuffer() *Buffer[P, S] {
	pix := make([]P, len(b.pix))
	copy(pix, b.pix)
	return &Buffer[P, S]{pix: pix, width: b.width, height: b.height}
}

// IntoRaw returns the flat channel-grouped subpixel sequence of the
// buffer, the layout consumed by the encode boundary.
func (b *Buffer[P, S]) IntoRaw() []S {
	var proto P
	nc := proto.NumChannels()
	raw := make([]S, 0, len(b.pix)*nc)
	for _, p := range b.pix {
		raw = append(raw, p.Channels()...)
	}
	return raw
}

func (b *Buffer[P, S]) window() Rect {
	return Rect{left: 0, top: 0, width: b.width, height: b.height}
}

// acquire registers a borrow of r, rejecting any aliasing that would
// break the single-writer/multiple-reader discipline. A nested borrow
// wholly contained in parent's window does not conflict with parent
// itself, which allows re-borrowing a sub-region of an exclusive view.
func (b *Buffer[P, S]) acquire(r Rect, kind borrowKind, parent *borrowRecord) (*borrowRecord, error) {
	for _, live := range b.borrows {
		if live == parent {
			continue
		}
		if _, overlap := live.rect.Intersection(r); !overlap {
			continue
		}
		if kind == borrowExclusive || live.kind == borrowExclusive {
			return nil, errors.Wrapf(ErrBorrowConflict, "region %v is already borrowed", live.rect)
		}
	}
	rec := &borrowRecord{rect: r, kind: kind}
	b.borrows = append(b.borrows, rec)
	return rec, nil
}

func (b *Buffer[P, S]) release(rec *borrowRecord) {
	for i, live := range b.borrows {
		if live == rec {
			b.borrows = append(b.borrows[:i], b.borrows[i+1:]...)
			return
		}
	}
}

// String implements fmt.Stringer for diagnostics.
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)+%dx%d", r.left, r.top, r.width, r.height)
}
