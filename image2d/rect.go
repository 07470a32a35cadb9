package image2d

import "github.com/pkg/errors"

// Rect is an axis-aligned rectangle with a non-negative origin and a
// strictly positive size. It is an immutable value type: it owns nothing
// and carries no identity. The zero Rect is invalid.
type Rect struct {
	left, top, width, height int
}

// Sized is the minimal query surface a Rect needs to position itself
// relative to an image. Every image kind in this package satisfies it.
type Sized interface {
	Width() int
	Height() int
}

// NewRect creates a Rect from its origin and size. It returns
// ErrInvalidRect if either dimension is zero or negative, or if the
// origin is negative.
func NewRect(x, y, w, h int) (Rect, error) {
	if w <= 0 || h <= 0 {
		return Rect{}, errors.Wrapf(ErrInvalidRect, "dimensions must be strictly positive, got %dx%d", w, h)
	}
	if x < 0 || y < 0 {
		return Rect{}, errors.Wrapf(ErrInvalidRect, "origin must be non-negative, got (%d, %d)", x, y)
	}
	return Rect{left: x, top: y, width: w, height: h}, nil
}

// MustRect is like NewRect but panics on an invalid rectangle. It is
// intended for rectangles whose validity is known statically.
func MustRect(x, y, w, h int) Rect {
	r, err := NewRect(x, y, w, h)
	if err != nil {
		panic(err)
	}
	return r
}

// Left returns the leftmost column of the Rect.
func (r Rect) Left() int { return r.left }

// Top returns the topmost row of the Rect.
func (r Rect) Top() int { return r.top }

// Width returns the width of the Rect.
func (r Rect) Width() int { return r.width }

// Height returns the height of the Rect.
func (r Rect) Height() int { return r.height }

// Right returns the rightmost column of the Rect (inclusive).
func (r Rect) Right() int { return r.left + r.width - 1 }

// Bottom returns the bottommost row of the Rect (inclusive).
func (r Rect) Bottom() int { return r.top + r.height - 1 }

// Position returns the left and top coordinates of the Rect.
func (r Rect) Position() (int, int) { return r.left, r.top }

// Size returns the width and height of the Rect.
func (r Rect) Size() (int, int) { return r.width, r.height }

// Contains reports whether the point (x, y) lies inside the Rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.left && y >= r.top && x <= r.Right() && y <= r.Bottom()
}

// Intersection returns the overlap of two Rects. The second return value
// is false when the Rects do not overlap.
func (r Rect) Intersection(o Rect) (Rect, bool) {
	left := max(r.left, o.left)
	top := max(r.top, o.top)
	right := min(r.Right(), o.Right())
	bottom := min(r.Bottom(), o.Bottom())
	if left > right || top > bottom {
		return Rect{}, false
	}
	return Rect{left: left, top: top, width: right - left + 1, height: bottom - top + 1}, true
}

// FitsImage reports whether the Rect lies entirely inside img.
func (r Rect) FitsImage(img Sized) bool {
	return r.Right() < img.Width() && r.Bottom() < img.Height()
}

// CropToImage intersects the Rect with the full extent of img. The second
// return value is false when the Rect lies entirely outside img.
func (r Rect) CropToImage(img Sized) (Rect, bool) {
	if img.Width() <= 0 || img.Height() <= 0 {
		return Rect{}, false
	}
	return r.Intersection(Rect{left: 0, top: 0, width: img.Width(), height: img.Height()})
}

// Translate shifts the Rect by (dx, dy) and clips the result to img. The
// second return value is false when the shifted Rect falls entirely
// outside img.
func (r Rect) Translate(img Sized, dx, dy int) (Rect, bool) {
	left := r.left + dx
	top := r.top + dy
	right := r.Right() + dx
	bottom := r.Bottom() + dy
	if left >= img.Width() || top >= img.Height() || right < 0 || bottom < 0 {
		return Rect{}, false
	}
	cl := max(left, 0)
	ct := max(top, 0)
	return Rect{
		left:   cl,
		top:    ct,
		width:  min(img.Width()-1, right) - cl + 1,
		height: min(img.Height()-1, bottom) - ct + 1,
	}, true
}
