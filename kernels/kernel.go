// Package kernels defines the square odd-sized convolution kernel, its
// standard constructors, and the generic convolve operation over
// cross-numeric-type pixel images.
package kernels

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-image2d/pixel"
)

// ErrInvalidKernelSize reports a weight slice whose length is not
// (2*radius+1) squared.
var ErrInvalidKernelSize = errors.New("invalid kernel size")

// Kernel is a square, odd-sized convolution kernel: (2r+1)x(2r+1)
// weights of working type T stored flat in row-major order, centered on
// its origin.
type Kernel[T pixel.Subpixel] struct {
	weights []T
	radius  int
}

// New creates a Kernel from its flat row-major weights and radius. It
// returns ErrInvalidKernelSize if len(weights) != (2*radius+1)^2.
func New[T pixel.Subpixel](weights []T, radius int) (*Kernel[T], error) {
	d := 2*radius + 1
	if radius < 0 || len(weights) != d*d {
		return nil, errors.Wrapf(ErrInvalidKernelSize, "got %d weights, expected %d for radius %d", len(weights), d*d, radius)
	}
	return &Kernel[T]{weights: weights, radius: radius}, nil
}

// Radius returns the kernel radius.
func (k *Kernel[T]) Radius() int { return k.radius }

// Diameter returns the kernel's side length, 2*radius+1.
func (k *Kernel[T]) Diameter() int { return 2*k.radius + 1 }

// Weights returns the flat row-major weight slice.
func (k *Kernel[T]) Weights() []T { return k.weights }

// Box creates a uniform averaging kernel: every weight is 1/(2r+1)^2.
func Box[T pixel.Float](radius int) *Kernel[T] {
	d := 2*radius + 1
	n := d * d
	weights := make([]T, n)
	w := T(1) / T(n)
	for i := range weights {
		weights[i] = w
	}
	k, err := New(weights, radius)
	if err != nil {
		panic(err)
	}
	return k
}

// Gaussian creates a 2-D gaussian kernel sampled at the integer offsets
// in [-radius, radius].
func Gaussian[T pixel.Float](sigma T, radius int) *Kernel[T] {
	d := 2*radius + 1
	weights := make([]T, 0, d*d)
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			weights = append(weights, gaussian2D(T(x), T(y), sigma))
		}
	}
	k, err := New(weights, radius)
	if err != nil {
		panic(err)
	}
	return k
}

// SobelX3x3 creates the fixed 3x3 horizontal-derivative kernel.
func SobelX3x3[T pixel.Float]() *Kernel[T] {
	k, err := New([]T{
		-1, 0, 1,
		-2, 0, 2,
		-1, 0, 1,
	}, 1)
	if err != nil {
		panic(err)
	}
	return k
}

// SobelY3x3 creates the fixed 3x3 vertical-derivative kernel.
func SobelY3x3[T pixel.Float]() *Kernel[T] {
	k, err := New([]T{
		-1, -2, -1,
		0, 0, 0,
		1, 2, 1,
	}, 1)
	if err != nil {
		panic(err)
	}
	return k
}

// gaussian2D evaluates the 2-D gaussian 1/(2*pi*sigma^2) *
// exp(-(x^2+y^2)/(2*sigma^2)). The float32 path stays in float32 via
// chewxy/math32.
func gaussian2D[T pixel.Float](x, y, sigma T) T {
	if sx, ok := any(sigma).(float32); ok {
		fx := any(x).(float32)
		fy := any(y).(float32)
		s2 := 2 * sx * sx
		return any(math32.Exp(-(fx*fx+fy*fy)/s2) / (math32.Pi * s2)).(T)
	}
	sx := any(sigma).(float64)
	fx := any(x).(float64)
	fy := any(y).(float64)
	s2 := 2 * sx * sx
	return any(math.Exp(-(fx*fx+fy*fy)/s2) / (math.Pi * s2)).(T)
}
