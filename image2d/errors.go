package image2d

import "github.com/pkg/errors"

// Sentinel errors returned by constructors and region operations. They are
// wrapped with call-site context via pkg/errors, so match them with
// errors.Is (or errors.Cause for the root).
var (
	// ErrInvalidRect reports a rectangle with a non-positive dimension
	// or a negative origin.
	ErrInvalidRect = errors.New("invalid rectangle")
	// ErrInvalidDimensions reports a constructor vector whose length
	// does not match the requested width and height.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrRectSizeMismatch reports a blit whose source and destination
	// rectangles differ in size.
	ErrRectSizeMismatch = errors.New("rect size mismatch")
	// ErrRectOutOfBounds reports a rectangle that does not fit inside
	// the image it is applied to.
	ErrRectOutOfBounds = errors.New("rect out of bounds")
	// ErrBorrowConflict reports an attempt to acquire a view that would
	// alias a live exclusive view, or an exclusive view that would
	// alias any live view.
	ErrBorrowConflict = errors.New("borrow conflict")
	// ErrInvalidPadding reports a padding mode name outside the
	// supported set.
	ErrInvalidPadding = errors.New("invalid padding mode")
)
