package tensorconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorgonia.org/tensor"

	"github.com/nvr-ai/go-image2d/image2d"
	"github.com/nvr-ai/go-image2d/pixel"
)

func TestToDenseShapeAndLayout(t *testing.T) {
	img := image2d.Generate[pixel.RGB[uint8]](3, 2, func(x, y int) pixel.RGB[uint8] {
		base := uint8(y*30 + x*10)
		return pixel.NewRGB([3]uint8{base, base + 1, base + 2})
	})

	d := ToDense[pixel.RGB[uint8]](img)
	require.Equal(t, []int{2, 3, 3}, []int(d.Shape()))

	data := d.Data().([]float32)
	// Row-major HWC: pixel (x=1, y=1) starts at (1*3+1)*3.
	assert.Equal(t, float32(40), data[12])
	assert.Equal(t, float32(41), data[13])
	assert.Equal(t, float32(42), data[14])
}

func TestDenseRoundTrip(t *testing.T) {
	src := image2d.Generate[pixel.RGBA[uint8]](4, 3, func(x, y int) pixel.RGBA[uint8] {
		return pixel.NewRGBA([4]uint8{uint8(x), uint8(y), uint8(x + y), 255})
	})

	back, err := FromDense[pixel.RGBA[uint8]](ToDense[pixel.RGBA[uint8]](src))
	require.NoError(t, err)
	assert.True(t, image2d.Equal[pixel.RGBA[uint8], uint8](src, back))
}

func TestDenseRoundTripFloat(t *testing.T) {
	src := image2d.Generate[pixel.Gray[float32]](5, 5, func(x, y int) pixel.Gray[float32] {
		return pixel.NewGray([1]float32{float32(x)*0.25 - float32(y)})
	})

	back, err := FromDense[pixel.Gray[float32]](ToDense[pixel.Gray[float32]](src))
	require.NoError(t, err)
	assert.True(t, image2d.Equal[pixel.Gray[float32], float32](src, back))
}

func TestFromDenseShapeErrors(t *testing.T) {
	flat := tensor.New(tensor.WithShape(6), tensor.WithBacking(make([]float32, 6)))
	_, err := FromDense[pixel.Gray[uint8]](flat)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	rgb := tensor.New(tensor.WithShape(2, 2, 3), tensor.WithBacking(make([]float32, 12)))
	_, err = FromDense[pixel.Gray[uint8]](rgb)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	f64 := tensor.New(tensor.WithShape(2, 2, 1), tensor.WithBacking(make([]float64, 4)))
	_, err = FromDense[pixel.Gray[uint8]](f64)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}
