package image2d

import (
	"iter"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-image2d/pixel"
)

// The sequence helpers below implement the one access contract shared by
// owned buffers and both view kinds. Each operates on the owning buffer's
// backing slice through a window rectangle expressed in buffer
// coordinates; an owned buffer's window is its full extent.

func rowSeq[P pixel.Pixel[P, S], S pixel.Subpixel](buf *Buffer[P, S], win Rect, y int) iter.Seq[P] {
	if y < 0 || y >= win.height {
		return nil
	}
	return func(yield func(P) bool) {
		base := (win.top+y)*buf.width + win.left
		for i := 0; i < win.width; i++ {
			if !yield(buf.pix[base+i]) {
				return
			}
		}
	}
}

func colSeq[P pixel.Pixel[P, S], S pixel.Subpixel](buf *Buffer[P, S], win Rect, x int) iter.Seq[P] {
	if x < 0 || x >= win.width {
		return nil
	}
	return func(yield func(P) bool) {
		base := win.top*buf.width + win.left + x
		for i := 0; i < win.height; i++ {
			if !yield(buf.pix[base+i*buf.width]) {
				return
			}
		}
	}
}

func rowsSeq[P pixel.Pixel[P, S], S pixel.Subpixel](buf *Buffer[P, S], win Rect) iter.Seq[iter.Seq[P]] {
	return func(yield func(iter.Seq[P]) bool) {
		for y := 0; y < win.height; y++ {
			if !yield(rowSeq(buf, win, y)) {
				return
			}
		}
	}
}

func colsSeq[P pixel.Pixel[P, S], S pixel.Subpixel](buf *Buffer[P, S], win Rect) iter.Seq[iter.Seq[P]] {
	return func(yield func(iter.Seq[P]) bool) {
		for x := 0; x < win.width; x++ {
			if !yield(colSeq(buf, win, x)) {
				return
			}
		}
	}
}

func pixelsSeq[P pixel.Pixel[P, S], S pixel.Subpixel](buf *Buffer[P, S], win Rect) iter.Seq[P] {
	return func(yield func(P) bool) {
		for y := 0; y < win.height; y++ {
			base := (win.top+y)*buf.width + win.left
			for x := 0; x < win.width; x++ {
				if !yield(buf.pix[base+x]) {
					return
				}
			}
		}
	}
}

func enumerateSeq[P pixel.Pixel[P, S], S pixel.Subpixel](buf *Buffer[P, S], win Rect) iter.Seq2[Point, P] {
	return func(yield func(Point, P) bool) {
		for y := 0; y < win.height; y++ {
			base := (win.top+y)*buf.width + win.left
			for x := 0; x < win.width; x++ {
				if !yield(Point{X: x, Y: y}, buf.pix[base+x]) {
					return
				}
			}
		}
	}
}

// rectSeq iterates r (relative to win) in row-major order. No bounds
// validation happens here: this is the unchecked fast path, and an
// invalid rectangle shows up as an index panic.
func rectSeq[P pixel.Pixel[P, S], S pixel.Subpixel](buf *Buffer[P, S], win Rect, r Rect) iter.Seq[P] {
	return func(yield func(P) bool) {
		for y := 0; y < r.height; y++ {
			base := (win.top+r.top+y)*buf.width + win.left + r.left
			for x := 0; x < r.width; x++ {
				if !yield(buf.pix[base+x]) {
					return
				}
			}
		}
	}
}

func rectMutSeq[P pixel.Pixel[P, S], S pixel.Subpixel](buf *Buffer[P, S], win Rect, r Rect) iter.Seq[*P] {
	return func(yield func(*P) bool) {
		for y := 0; y < r.height; y++ {
			base := (win.top+r.top+y)*buf.width + win.left + r.left
			for x := 0; x < r.width; x++ {
				if !yield(&buf.pix[base+x]) {
					return
				}
			}
		}
	}
}

func fillRect[P pixel.Pixel[P, S], S pixel.Subpixel](buf *Buffer[P, S], win Rect, r Rect, v P) error {
	if !r.FitsImage(win) {
		return errors.Wrapf(ErrRectOutOfBounds, "fill %v of %dx%d image", r, win.width, win.height)
	}
	for p := range rectMutSeq(buf, win, r) {
		*p = v
	}
	return nil
}

// blitRect copies srcRect of src onto dstRect of the destination window.
// Both iterations are row-major, so pixels map top-left to top-left.
func blitRect[P pixel.Pixel[P, S], S pixel.Subpixel](buf *Buffer[P, S], win Rect, srcRect, dstRect Rect, src Image[P, S]) error {
	sw, sh := srcRect.Size()
	dw, dh := dstRect.Size()
	if sw != dw || sh != dh {
		return errors.Wrapf(ErrRectSizeMismatch, "source is %dx%d, destination is %dx%d", sw, sh, dw, dh)
	}
	if !srcRect.FitsImage(src) {
		return errors.Wrapf(ErrRectOutOfBounds, "source rect %v does not fit %dx%d source image", srcRect, src.Width(), src.Height())
	}
	if !dstRect.FitsImage(win) {
		return errors.Wrapf(ErrRectOutOfBounds, "destination rect %v does not fit %dx%d destination image", dstRect, win.width, win.height)
	}
	next, stop := iter.Pull(src.RectIter(srcRect))
	defer stop()
	for p := range rectMutSeq(buf, win, dstRect) {
		v, ok := next()
		if !ok {
			break
		}
		*p = v
	}
	return nil
}
