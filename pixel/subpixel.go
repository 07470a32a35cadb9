// Package pixel defines the fixed-arity pixel value types stored in 2-D
// image buffers, the closed set of numeric subpixel types they are built
// from, and the cross-type conversion policy shared by every cast in the
// library.
package pixel

import "math"

// Signed is the constraint for signed integer subpixel types.
type Signed interface {
	int8 | int16 | int32 | int64
}

// Unsigned is the constraint for unsigned integer subpixel types.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64
}

// Integer is the constraint for all integer subpixel types.
type Integer interface {
	Signed | Unsigned
}

// Float is the constraint for floating-point subpixel types.
type Float interface {
	float32 | float64
}

// Subpixel is the closed set of numeric types a pixel channel may hold.
// The set is deliberately exact (no ~): conversion and bounds queries
// dispatch on the concrete type.
type Subpixel interface {
	Integer | Float
}

// MinValue returns the smallest value representable by S.
// For floats this is the most negative finite value, matching the
// convention used for clamping convolution sums.
func MinValue[S Subpixel]() S {
	var v S
	switch p := any(&v).(type) {
	case *uint8, *uint16, *uint32, *uint64:
		// zero value already correct
	case *int8:
		*p = math.MinInt8
	case *int16:
		*p = math.MinInt16
	case *int32:
		*p = math.MinInt32
	case *int64:
		*p = math.MinInt64
	case *float32:
		*p = -math.MaxFloat32
	case *float64:
		*p = -math.MaxFloat64
	}
	return v
}

// MaxValue returns the largest value representable by S.
func MaxValue[S Subpixel]() S {
	var v S
	switch p := any(&v).(type) {
	case *uint8:
		*p = math.MaxUint8
	case *uint16:
		*p = math.MaxUint16
	case *uint32:
		*p = math.MaxUint32
	case *uint64:
		*p = math.MaxUint64
	case *int8:
		*p = math.MaxInt8
	case *int16:
		*p = math.MaxInt16
	case *int32:
		*p = math.MaxInt32
	case *int64:
		*p = math.MaxInt64
	case *float32:
		*p = math.MaxFloat32
	case *float64:
		*p = math.MaxFloat64
	}
	return v
}

// isFloat reports whether S is one of the floating-point subpixel types.
func isFloat[S Subpixel]() bool {
	var v S
	switch any(v).(type) {
	case float32, float64:
		return true
	}
	return false
}

// Convert casts a subpixel value from S to O, degrading to O's zero value
// when the source value cannot be represented in O. It never fails: an
// out-of-range integer target and a NaN source both produce zero. Values
// converted to a float target always succeed (precision may be lost).
// Fractional values converted to an integer target are truncated toward
// zero.
//
// Every cast in the library goes through this single function so the
// zero-fallback policy stays in one place.
func Convert[S, O Subpixel](v S) O {
	o, ok := TryConvert[S, O](v)
	if !ok {
		var zero O
		return zero
	}
	return o
}

// TryConvert casts a subpixel value from S to O, reporting whether the
// value was representable. Most callers want Convert; TryConvert exists
// for the few places that need to distinguish a genuine zero from a
// degraded one.
func TryConvert[S, O Subpixel](v S) (O, bool) {
	// Identity casts bypass the float64 round trip so 64-bit integers
	// survive unchanged.
	if o, ok := any(v).(O); ok {
		return o, true
	}
	f := toFloat64(v)
	if isFloat[O]() {
		// Float targets accept every source value; float32 overflow
		// degrades to an infinity just like a plain Go conversion.
		return fromFloat64[O](f), true
	}
	if math.IsNaN(f) {
		var zero O
		return zero, false
	}
	t := math.Trunc(f)
	// The upper bound is exclusive: MaxInt64 and MaxUint64 round UP when
	// converted to float64, so comparing t against them would accept
	// values one past the type's range and hit an implementation-defined
	// float-to-int conversion. The next power of two is exact in float64
	// for every integer width.
	if t < toFloat64(MinValue[O]()) || t >= intBoundExclusive[O]() {
		var zero O
		return zero, false
	}
	return fromFloat64[O](t), true
}

// intBoundExclusive returns the smallest power of two strictly above the
// integer type O's maximum. Unused for float targets.
func intBoundExclusive[O Subpixel]() float64 {
	var v O
	switch any(v).(type) {
	case uint8:
		return 1 << 8
	case uint16:
		return 1 << 16
	case uint32:
		return 1 << 32
	case uint64:
		return 1 << 64
	case int8:
		return 1 << 7
	case int16:
		return 1 << 15
	case int32:
		return 1 << 31
	case int64:
		return 1 << 63
	}
	return 0
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp[S Subpixel](v, lo, hi S) S {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func toFloat64[S Subpixel](v S) float64 {
	switch x := any(v).(type) {
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case float32:
		return float64(x)
	case float64:
		return x
	}
	return 0
}

func fromFloat64[O Subpixel](f float64) O {
	var v O
	switch p := any(&v).(type) {
	case *uint8:
		*p = uint8(f)
	case *uint16:
		*p = uint16(f)
	case *uint32:
		*p = uint32(f)
	case *uint64:
		*p = uint64(f)
	case *int8:
		*p = int8(f)
	case *int16:
		*p = int16(f)
	case *int32:
		*p = int32(f)
	case *int64:
		*p = int64(f)
	case *float32:
		*p = float32(f)
	case *float64:
		*p = f
	}
	return v
}
