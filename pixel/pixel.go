package pixel

import "math"

// Pixel is the contract shared by the fixed-arity pixel types. It is a
// self-referential constraint: a concrete pixel type P with subpixel type
// S satisfies Pixel[P, S], which lets generic image code construct and
// combine pixels without losing the concrete type.
//
// Arithmetic is elementwise and carries the subpixel type's own failure
// behavior (integer division by zero panics, floats produce Inf/NaN).
type Pixel[P any, S Subpixel] interface {
	comparable

	// NumChannels returns the channel count, fixed per pixel type.
	NumChannels() int
	// Channels returns the channel values in order. The returned slice
	// is a snapshot; mutating it does not write back into an image.
	Channels() []S
	// FromChannels builds a new pixel of the receiver's type from the
	// leading channels of s. Panics if s is shorter than NumChannels.
	FromChannels(s []S) P

	Add(P) P
	Sub(P) P
	Mul(P) P
	Div(P) P
	Mod(P) P

	// Map applies f to every channel and returns the resulting pixel.
	Map(f func(S) S) P
	// Sum folds the channels with addition.
	Sum() S

	// Zero returns the all-zeros pixel of the receiver's type.
	Zero() P
	// One returns the all-ones pixel of the receiver's type.
	One() P
	// MinValue returns the pixel with every channel at S's minimum.
	MinValue() P
	// MaxValue returns the pixel with every channel at S's maximum.
	MaxValue() P
}

// Gray is a single-channel (luminance) pixel.
type Gray[S Subpixel] struct {
	Data [1]S
}

// GrayAlpha is a two-channel (luminance plus alpha) pixel.
type GrayAlpha[S Subpixel] struct {
	Data [2]S
}

// RGB is a three-channel color pixel.
type RGB[S Subpixel] struct {
	Data [3]S
}

// RGBA is a four-channel color-with-alpha pixel.
type RGBA[S Subpixel] struct {
	Data [4]S
}

// NewGray constructs a Gray pixel from its channel array.
func NewGray[S Subpixel](data [1]S) Gray[S] { return Gray[S]{Data: data} }

// NewGrayAlpha constructs a GrayAlpha pixel from its channel array.
func NewGrayAlpha[S Subpixel](data [2]S) GrayAlpha[S] { return GrayAlpha[S]{Data: data} }

// NewRGB constructs an RGB pixel from its channel array.
func NewRGB[S Subpixel](data [3]S) RGB[S] { return RGB[S]{Data: data} }

// NewRGBA constructs an RGBA pixel from its channel array.
func NewRGBA[S Subpixel](data [4]S) RGBA[S] { return RGBA[S]{Data: data} }

// Gray

func (p Gray[S]) NumChannels() int { return 1 }

func (p Gray[S]) Channels() []S { return p.Data[:] }

func (p Gray[S]) FromChannels(s []S) Gray[S] {
	copy(p.Data[:], s[:1])
	return p
}

func (p Gray[S]) Add(q Gray[S]) Gray[S] {
	for i := range p.Data {
		p.Data[i] += q.Data[i]
	}
	return p
}

func (p Gray[S]) Sub(q Gray[S]) Gray[S] {
	for i := range p.Data {
		p.Data[i] -= q.Data[i]
	}
	return p
}

func (p Gray[S]) Mul(q Gray[S]) Gray[S] {
	for i := range p.Data {
		p.Data[i] *= q.Data[i]
	}
	return p
}

func (p Gray[S]) Div(q Gray[S]) Gray[S] {
	for i := range p.Data {
		p.Data[i] = div(p.Data[i], q.Data[i])
	}
	return p
}

func (p Gray[S]) Mod(q Gray[S]) Gray[S] {
	for i := range p.Data {
		p.Data[i] = mod(p.Data[i], q.Data[i])
	}
	return p
}

func (p Gray[S]) Map(f func(S) S) Gray[S] {
	for i := range p.Data {
		p.Data[i] = f(p.Data[i])
	}
	return p
}

func (p Gray[S]) Sum() S { return sum(p.Data[:]) }

func (p Gray[S]) Zero() Gray[S] { return Gray[S]{} }

func (p Gray[S]) One() Gray[S] { return Gray[S]{}.Map(func(S) S { return one[S]() }) }

func (p Gray[S]) MinValue() Gray[S] { return Gray[S]{}.Map(func(S) S { return MinValue[S]() }) }

func (p Gray[S]) MaxValue() Gray[S] { return Gray[S]{}.Map(func(S) S { return MaxValue[S]() }) }

// GrayAlpha

func (p GrayAlpha[S]) NumChannels() int { return 2 }

func (p GrayAlpha[S]) Channels() []S { return p.Data[:] }

func (p GrayAlpha[S]) FromChannels(s []S) GrayAlpha[S] {
	copy(p.Data[:], s[:2])
	return p
}

func (p GrayAlpha[S]) Add(q GrayAlpha[S]) GrayAlpha[S] {
	for i := range p.Data {
		p.Data[i] += q.Data[i]
	}
	return p
}

func (p GrayAlpha[S]) Sub(q GrayAlpha[S]) GrayAlpha[S] {
	for i := range p.Data {
		p.Data[i] -= q.Data[i]
	}
	return p
}

func (p GrayAlpha[S]) Mul(q GrayAlpha[S]) GrayAlpha[S] {
	for i := range p.Data {
		p.Data[i] *= q.Data[i]
	}
	return p
}

func (p GrayAlpha[S]) Div(q GrayAlpha[S]) GrayAlpha[S] {
	for i := range p.Data {
		p.Data[i] = div(p.Data[i], q.Data[i])
	}
	return p
}

func (p GrayAlpha[S]) Mod(q GrayAlpha[S]) GrayAlpha[S] {
	for i := range p.Data {
		p.Data[i] = mod(p.Data[i], q.Data[i])
	}
	return p
}

func (p GrayAlpha[S]) Map(f func(S) S) GrayAlpha[S] {
	for i := range p.Data {
		p.Data[i] = f(p.Data[i])
	}
	return p
}

func (p GrayAlpha[S]) Sum() S { return sum(p.Data[:]) }

func (p GrayAlpha[S]) Zero() GrayAlpha[S] { return GrayAlpha[S]{} }

func (p GrayAlpha[S]) One() GrayAlpha[S] {
	return GrayAlpha[S]{}.Map(func(S) S { return one[S]() })
}

func (p GrayAlpha[S]) MinValue() GrayAlpha[S] {
	return GrayAlpha[S]{}.Map(func(S) S { return MinValue[S]() })
}

func (p GrayAlpha[S]) MaxValue() GrayAlpha[S] {
	return GrayAlpha[S]{}.Map(func(S) S { return MaxValue[S]() })
}

// RGB

func (p RGB[S]) NumChannels() int { return 3 }

func (p RGB[S]) Channels() []S { return p.Data[:] }

func (p RGB[S]) FromChannels(s []S) RGB[S] {
	copy(p.Data[:], s[:3])
	return p
}

func (p RGB[S]) Add(q RGB[S]) RGB[S] {
	for i := range p.Data {
		p.Data[i] += q.Data[i]
	}
	return p
}

func (p RGB[S]) Sub(q RGB[S]) RGB[S] {
	for i := range p.Data {
		p.Data[i] -= q.Data[i]
	}
	return p
}

func (p RGB[S]) Mul(q RGB[S]) RGB[S] {
	for i := range p.Data {
		p.Data[i] *= q.Data[i]
	}
	return p
}

func (p RGB[S]) Div(q RGB[S]) RGB[S] {
	for i := range p.Data {
		p.Data[i] = div(p.Data[i], q.Data[i])
	}
	return p
}

func (p RGB[S]) Mod(q RGB[S]) RGB[S] {
	for i := range p.Data {
		p.Data[i] = mod(p.Data[i], q.Data[i])
	}
	return p
}

func (p RGB[S]) Map(f func(S) S) RGB[S] {
	for i := range p.Data {
		p.Data[i] = f(p.Data[i])
	}
	return p
}

func (p RGB[S]) Sum() S { return sum(p.Data[:]) }

func (p RGB[S]) Zero() RGB[S] { return RGB[S]{} }

func (p RGB[S]) One() RGB[S] { return RGB[S]{}.Map(func(S) S { return one[S]() }) }

func (p RGB[S]) MinValue() RGB[S] { return RGB[S]{}.Map(func(S) S { return MinValue[S]() }) }

func (p RGB[S]) MaxValue() RGB[S] { return RGB[S]{}.Map(func(S) S { return MaxValue[S]() }) }

// RGBA

func (p RGBA[S]) NumChannels() int { return 4 }

func (p RGBA[S]) Channels() []S { return p.Data[:] }

func (p RGBA[S]) FromChannels(s []S) RGBA[S] {
	copy(p.Data[:], s[:4])
	return p
}

func (p RGBA[S]) Add(q RGBA[S]) RGBA[S] {
	for i := range p.Data {
		p.Data[i] += q.Data[i]
	}
	return p
}

func (p RGBA[S]) Sub(q RGBA[S]) RGBA[S] {
	for i := range p.Data {
		p.Data[i] -= q.Data[i]
	}
	return p
}

func (p RGBA[S]) Mul(q RGBA[S]) RGBA[S] {
	for i := range p.Data {
		p.Data[i] *= q.Data[i]
	}
	return p
}

func (p RGBA[S]) Div(q RGBA[S]) RGBA[S] {
	for i := range p.Data {
		p.Data[i] = div(p.Data[i], q.Data[i])
	}
	return p
}

func (p RGBA[S]) Mod(q RGBA[S]) RGBA[S] {
	for i := range p.Data {
		p.Data[i] = mod(p.Data[i], q.Data[i])
	}
	return p
}

func (p RGBA[S]) Map(f func(S) S) RGBA[S] {
	for i := range p.Data {
		p.Data[i] = f(p.Data[i])
	}
	return p
}

func (p RGBA[S]) Sum() S { return sum(p.Data[:]) }

func (p RGBA[S]) Zero() RGBA[S] { return RGBA[S]{} }

func (p RGBA[S]) One() RGBA[S] { return RGBA[S]{}.Map(func(S) S { return one[S]() }) }

func (p RGBA[S]) MinValue() RGBA[S] { return RGBA[S]{}.Map(func(S) S { return MinValue[S]() }) }

func (p RGBA[S]) MaxValue() RGBA[S] { return RGBA[S]{}.Map(func(S) S { return MaxValue[S]() }) }

func one[S Subpixel]() S {
	var v S
	return v + 1
}

func sum[S Subpixel](s []S) S {
	var acc S
	for _, v := range s {
		acc += v
	}
	return acc
}

func div[S Subpixel](a, b S) S { return a / b }

// mod computes the remainder of a by b. Go defines % for integers only,
// so the float cases go through math.Mod; integer division by zero
// panics, which is the subpixel type's own failure behavior.
func mod[S Subpixel](a, b S) S {
	switch av := any(a).(type) {
	case uint8:
		return any(av % any(b).(uint8)).(S)
	case uint16:
		return any(av % any(b).(uint16)).(S)
	case uint32:
		return any(av % any(b).(uint32)).(S)
	case uint64:
		return any(av % any(b).(uint64)).(S)
	case int8:
		return any(av % any(b).(int8)).(S)
	case int16:
		return any(av % any(b).(int16)).(S)
	case int32:
		return any(av % any(b).(int32)).(S)
	case int64:
		return any(av % any(b).(int64)).(S)
	case float32:
		return any(float32(math.Mod(float64(av), float64(any(b).(float32))))).(S)
	case float64:
		return any(math.Mod(av, any(b).(float64))).(S)
	}
	var zero S
	return zero
}
