package image2d

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-image2d/pixel"
)

// View is a read-only zero-copy window into an owned buffer. It is
// created by SubImage and registered on the owner's borrow ledger; call
// Release when done so exclusive views of the region become possible
// again. Any number of Views may overlap each other.
//
// Coordinates passed to a View are relative to its own top-left corner.
type View[P pixel.Pixel[P, S], S pixel.Subpixel] struct {
	buf  *Buffer[P, S]
	rect Rect
	rec  *borrowRecord
}

// MutView is an exclusive read-write zero-copy window into an owned
// buffer. While it is live, no other view may overlap its region; release
// nested views before releasing their parent.
type MutView[P pixel.Pixel[P, S], S pixel.Subpixel] struct {
	buf  *Buffer[P, S]
	rect Rect
	rec  *borrowRecord
}

// Release returns the borrowed region to the owner. The view must not be
// used afterwards.
func (v *View[P, S]) Release() {
	if v.rec != nil {
		v.buf.release(v.rec)
		v.rec = nil
	}
}

func (v *View[P, S]) live() {
	if v.rec == nil {
		panic("image2d: view used after release")
	}
}

// Width returns the width of the view.
func (v *View[P, S]) Width() int { return v.rect.width }

// Height returns the height of the view.
func (v *View[P, S]) Height() int { return v.rect.height }

// Dimensions returns the width and height of the view.
func (v *View[P, S]) Dimensions() (int, int) { return v.rect.width, v.rect.height }

// GetPixel returns the pixel at (x, y) in view coordinates. Panics if
// out of bounds.
func (v *View[P, S]) GetPixel(x, y int) P {
	v.live()
	checkViewBounds(x, y, v.rect)
	return v.buf.pix[(v.rect.top+y)*v.buf.width+v.rect.left+x]
}

// AsSlice returns the backing slice when the view spans full storage
// rows, and nil otherwise.
func (v *View[P, S]) AsSlice() []P {
	v.live()
	return windowSlice(v.buf, v.rect)
}

// Row returns a left-to-right sequence over row y, or nil if y is out of
// range.
func (v *View[P, S]) Row(y int) iter.Seq[P] { v.live(); return rowSeq(v.buf, v.rect, y) }

// Col returns a top-to-bottom sequence over column x, or nil if x is out
// of range.
func (v *View[P, S]) Col(x int) iter.Seq[P] { v.live(); return colSeq(v.buf, v.rect, x) }

// Rows yields every row sequence from top to bottom.
func (v *View[P, S]) Rows() iter.Seq[iter.Seq[P]] { v.live(); return rowsSeq(v.buf, v.rect) }

// Cols yields every column sequence from left to right.
func (v *View[P, S]) Cols() iter.Seq[iter.Seq[P]] { v.live(); return colsSeq(v.buf, v.rect) }

// Pixels yields every pixel in row-major order.
func (v *View[P, S]) Pixels() iter.Seq[P] { v.live(); return pixelsSeq(v.buf, v.rect) }

// EnumeratePixels yields every coordinate and pixel in row-major order.
func (v *View[P, S]) EnumeratePixels() iter.Seq2[Point, P] {
	v.live()
	return enumerateSeq(v.buf, v.rect)
}

// RectIter yields the pixels of r in row-major order without validating
// r against the view bounds.
func (v *View[P, S]) RectIter(r Rect) iter.Seq[P] { v.live(); return rectSeq(v.buf, v.rect, r) }

// SubImage returns a read-only view of r nested inside this view.
func (v *View[P, S]) SubImage(r Rect) (*View[P, S], error) {
	v.live()
	abs, err := translateIntoWindow(r, v.rect)
	if err != nil {
		return nil, err
	}
	rec, err := v.buf.acquire(abs, borrowShared, v.rec)
	if err != nil {
		return nil, err
	}
	return &View[P, S]{buf: v.buf, rect: abs, rec: rec}, nil
}

// ToBuffer returns an owned copy of the viewed region.
func (v *View[P, S]) ToBuffer() *Buffer[P, S] { v.live(); return copyWindow(v.buf, v.rect) }

// Release returns the exclusively borrowed region to the owner. The view
// must not be used afterwards.
func (v *MutView[P, S]) Release() {
	if v.rec != nil {
		v.buf.release(v.rec)
		v.rec = nil
	}
}

func (v *MutView[P, S]) live() {
	if v.rec == nil {
		panic("image2d: view used after release")
	}
}

// Width returns the width of the view.
func (v *MutView[P, S]) Width() int { return v.rect.width }

// Height returns the height of the view.
func (v *MutView[P, S]) Height() int { return v.rect.height }

// Dimensions returns the width and height of the view.
func (v *MutView[P, S]) Dimensions() (int, int) { return v.rect.width, v.rect.height }

// GetPixel returns the pixel at (x, y) in view coordinates. Panics if
// out of bounds.
func (v *MutView[P, S]) GetPixel(x, y int) P {
	v.live()
	checkViewBounds(x, y, v.rect)
	return v.buf.pix[(v.rect.top+y)*v.buf.width+v.rect.left+x]
}

// PutPixel sets the pixel at (x, y) in view coordinates. Panics if out
// of bounds.
func (v *MutView[P, S]) PutPixel(x, y int, p P) {
	v.live()
	checkViewBounds(x, y, v.rect)
	v.buf.pix[(v.rect.top+y)*v.buf.width+v.rect.left+x] = p
}

// AsSlice returns the backing slice when the view spans full storage
// rows, and nil otherwise.
func (v *MutView[P, S]) AsSlice() []P {
	v.live()
	return windowSlice(v.buf, v.rect)
}

// Row returns a left-to-right sequence over row y, or nil if y is out of
// range.
func (v *MutView[P, S]) Row(y int) iter.Seq[P] { v.live(); return rowSeq(v.buf, v.rect, y) }

// Col returns a top-to-bottom sequence over column x, or nil if x is out
// of range.
func (v *MutView[P, S]) Col(x int) iter.Seq[P] { v.live(); return colSeq(v.buf, v.rect, x) }

// Rows yields every row sequence from top to bottom.
func (v *MutView[P, S]) Rows() iter.Seq[iter.Seq[P]] { v.live(); return rowsSeq(v.buf, v.rect) }

// Cols yields every column sequence from left to right.
func (v *MutView[P, S]) Cols() iter.Seq[iter.Seq[P]] { v.live(); return colsSeq(v.buf, v.rect) }

// Pixels yields every pixel in row-major order.
func (v *MutView[P, S]) Pixels() iter.Seq[P] { v.live(); return pixelsSeq(v.buf, v.rect) }

// EnumeratePixels yields every coordinate and pixel in row-major order.
func (v *MutView[P, S]) EnumeratePixels() iter.Seq2[Point, P] {
	v.live()
	return enumerateSeq(v.buf, v.rect)
}

// RectIter yields the pixels of r in row-major order without validating
// r against the view bounds.
func (v *MutView[P, S]) RectIter(r Rect) iter.Seq[P] { v.live(); return rectSeq(v.buf, v.rect, r) }

// RectIterMut yields pointers to the pixels of r in row-major order
// without validating r against the view bounds.
func (v *MutView[P, S]) RectIterMut(r Rect) iter.Seq[*P] {
	v.live()
	return rectMutSeq(v.buf, v.rect, r)
}

// Fill overwrites every pixel of the view with v.
func (v *MutView[P, S]) Fill(val P) {
	v.live()
	for p := range rectMutSeq(v.buf, v.rect, Rect{width: v.rect.width, height: v.rect.height}) {
		*p = val
	}
}

// FillRect overwrites the pixels of r with val. Returns
// ErrRectOutOfBounds if r does not fit the view.
func (v *MutView[P, S]) FillRect(r Rect, val P) error {
	v.live()
	return fillRect(v.buf, v.rect, r, val)
}

// BlitRect copies srcRect of src onto dstRect of the view. See
// MutableImage.BlitRect for the error contract.
func (v *MutView[P, S]) BlitRect(srcRect, dstRect Rect, src Image[P, S]) error {
	v.live()
	return blitRect(v.buf, v.rect, srcRect, dstRect, src)
}

// SubImage returns a read-only view of r nested inside this view. The
// parent's exclusive borrow does not conflict with its own nested views.
func (v *MutView[P, S]) SubImage(r Rect) (*View[P, S], error) {
	v.live()
	abs, err := translateIntoWindow(r, v.rect)
	if err != nil {
		return nil, err
	}
	rec, err := v.buf.acquire(abs, borrowShared, v.rec)
	if err != nil {
		return nil, err
	}
	return &View[P, S]{buf: v.buf, rect: abs, rec: rec}, nil
}

// SubImageMut returns an exclusive view of r nested inside this view.
func (v *MutView[P, S]) SubImageMut(r Rect) (*MutView[P, S], error) {
	v.live()
	abs, err := translateIntoWindow(r, v.rect)
	if err != nil {
		return nil, err
	}
	rec, err := v.buf.acquire(abs, borrowExclusive, v.rec)
	if err != nil {
		return nil, err
	}
	return &MutView[P, S]{buf: v.buf, rect: abs, rec: rec}, nil
}

// ToBuffer returns an owned copy of the viewed region.
func (v *MutView[P, S]) ToBuffer() *Buffer[P, S] { v.live(); return copyWindow(v.buf, v.rect) }

func checkViewBounds(x, y int, win Rect) {
	if x < 0 || x >= win.width || y < 0 || y >= win.height {
		panic(fmt.Sprintf("image2d: pixel access (%d, %d) out of bounds for %dx%d view", x, y, win.width, win.height))
	}
}

// windowSlice returns the natural row-major slice of a window, which
// exists only when the window spans full storage rows.
func windowSlice[P pixel.Pixel[P, S], S pixel.Subpixel](buf *Buffer[P, S], win Rect) []P {
	if win.left != 0 || win.width != buf.width {
		return nil
	}
	return buf.pix[win.top*buf.width : (win.top+win.height)*buf.width]
}

func copyWindow[P pixel.Pixel[P, S], S pixel.Subpixel](buf *Buffer[P, S], win Rect) *Buffer[P, S] {
	out := New[P, S](win.width, win.height)
	i := 0
	for p := range pixelsSeq(buf, win) {
		out.pix[i] = p
		i++
	}
	return out
}

// translateIntoWindow maps r, expressed in window coordinates, into
// buffer coordinates, requiring it to fit the window.
func translateIntoWindow(r Rect, win Rect) (Rect, error) {
	if !r.FitsImage(win) {
		return Rect{}, errors.Wrapf(ErrRectOutOfBounds, "sub-image %v of %dx%d view", r, win.width, win.height)
	}
	return Rect{left: win.left + r.left, top: win.top + r.top, width: r.width, height: r.height}, nil
}
