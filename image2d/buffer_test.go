package image2d

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-image2d/pixel"
)

func grayImage(w, h int, f func(x, y int) uint8) *Buffer[pixel.Gray[uint8], uint8] {
	return Generate[pixel.Gray[uint8]](w, h, func(x, y int) pixel.Gray[uint8] {
		return pixel.NewGray([1]uint8{f(x, y)})
	})
}

func gray(v uint8) pixel.Gray[uint8] { return pixel.NewGray([1]uint8{v}) }

func TestNewIsZeroFilled(t *testing.T) {
	img := New[pixel.RGB[uint16]](100, 200)
	w, h := img.Dimensions()
	assert.Equal(t, 100, w)
	assert.Equal(t, 200, h)
	require.Len(t, img.AsSlice(), 100*200)
	var zero pixel.RGB[uint16]
	for p := range img.Pixels() {
		if p != zero.Zero() {
			t.Fatal("expected all pixels zero")
		}
	}
}

func TestFromVec(t *testing.T) {
	mk := func(n int) []pixel.Gray[uint8] {
		v := make([]pixel.Gray[uint8], n)
		for i := range v {
			v[i] = gray(uint8(i))
		}
		return v
	}

	img, err := FromVec(2, 3, mk(6))
	require.NoError(t, err)
	w, h := img.Dimensions()
	assert.Equal(t, []int{2, 3}, []int{w, h})
	for y := 0; y < 3; y++ {
		for x := 0; x < 2; x++ {
			assert.Equal(t, gray(uint8(x+y*2)), img.GetPixel(x, y))
		}
	}

	_, err = FromVec(3, 3, mk(6))
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = FromVec(4, 2, mk(6))
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestFromVecRoundTrip(t *testing.T) {
	v := []pixel.Gray[uint8]{gray(1), gray(2), gray(3), gray(4), gray(5), gray(6)}
	img, err := FromVec(3, 2, slices.Clone(v))
	require.NoError(t, err)
	assert.Equal(t, v, img.AsSlice())
}

func TestFromRawVec(t *testing.T) {
	raw := []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	img, err := FromRawVec[pixel.RGB[uint8]](2, 2, raw)
	require.NoError(t, err)
	assert.Equal(t, pixel.NewRGB([3]uint8{1, 2, 3}), img.GetPixel(0, 0))
	assert.Equal(t, pixel.NewRGB([3]uint8{10, 11, 12}), img.GetPixel(1, 1))

	_, err = FromRawVec[pixel.RGB[uint8]](2, 2, raw[:11])
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = FromRawVec[pixel.RGB[uint8]](3, 2, raw)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestIntoRawRoundTrip(t *testing.T) {
	raw := []uint8{1, 2, 3, 4, 5, 6}
	img, err := FromRawVec[pixel.GrayAlpha[uint8]](3, 1, slices.Clone(raw))
	require.NoError(t, err)
	assert.Equal(t, raw, img.IntoRaw())
}

func TestGetPutPixel(t *testing.T) {
	img := New[pixel.Gray[uint8]](4, 3)
	img.PutPixel(2, 1, gray(42))
	assert.Equal(t, gray(42), img.GetPixel(2, 1))
	assert.Equal(t, gray(0), img.GetPixel(3, 2))
}

func TestPixelAccessOutOfBoundsPanics(t *testing.T) {
	img := New[pixel.Gray[uint8]](4, 3)
	require.Panics(t, func() { img.GetPixel(4, 0) })
	require.Panics(t, func() { img.GetPixel(0, 3) })
	require.Panics(t, func() { img.GetPixel(-1, 0) })
	require.Panics(t, func() { img.PutPixel(0, -1, gray(1)) })
}

func TestRowCol(t *testing.T) {
	img := grayImage(3, 2, func(x, y int) uint8 { return uint8(10*y + x) })

	assert.Nil(t, img.Row(-1))
	assert.Nil(t, img.Row(2))
	assert.Nil(t, img.Col(3))

	var row []uint8
	for p := range img.Row(1) {
		row = append(row, p.Data[0])
	}
	assert.Equal(t, []uint8{10, 11, 12}, row)

	var col []uint8
	for p := range img.Col(2) {
		col = append(col, p.Data[0])
	}
	assert.Equal(t, []uint8{2, 12}, col)

	// Sequences restart on re-invocation.
	count := 0
	seq := img.Row(0)
	for range seq {
		count++
	}
	for range img.Row(0) {
		count++
	}
	assert.Equal(t, 6, count)
}

func TestRowsCols(t *testing.T) {
	img := grayImage(2, 3, func(x, y int) uint8 { return uint8(10*y + x) })

	var flat []uint8
	for row := range img.Rows() {
		for p := range row {
			flat = append(flat, p.Data[0])
		}
	}
	assert.Equal(t, []uint8{0, 1, 10, 11, 20, 21}, flat)

	flat = flat[:0]
	for col := range img.Cols() {
		for p := range col {
			flat = append(flat, p.Data[0])
		}
	}
	assert.Equal(t, []uint8{0, 10, 20, 1, 11, 21}, flat)
}

func TestEnumeratePixels(t *testing.T) {
	img := grayImage(5, 3, func(x, y int) uint8 { return uint8(2*x + 3*y) })
	for pt, p := range img.EnumeratePixels() {
		assert.Equal(t, uint8(2*pt.X+3*pt.Y), p.Data[0])
	}
}

func TestRectIter(t *testing.T) {
	img := grayImage(5, 3, func(x, y int) uint8 { return uint8(y*5 + x + 1) })

	var got []uint8
	for p := range img.RectIter(MustRect(1, 1, 3, 1)) {
		got = append(got, p.Data[0])
	}
	assert.Equal(t, []uint8{7, 8, 9}, got)
}

func TestRectIterMut(t *testing.T) {
	img := New[pixel.Gray[uint8]](4, 4)
	for p := range img.RectIterMut(MustRect(1, 1, 2, 2)) {
		*p = gray(9)
	}
	r := MustRect(1, 1, 2, 2)
	for pt, p := range img.EnumeratePixels() {
		if r.Contains(pt.X, pt.Y) {
			assert.Equal(t, gray(9), p)
		} else {
			assert.Equal(t, gray(0), p)
		}
	}
}

func TestFillRect(t *testing.T) {
	img := New[pixel.Gray[uint8]](5, 5)
	r := MustRect(1, 1, 3, 3)
	require.NoError(t, img.FillRect(r, gray(255)))
	for pt, p := range img.EnumeratePixels() {
		if r.Contains(pt.X, pt.Y) {
			assert.Equal(t, gray(255), p)
		} else {
			assert.Equal(t, gray(0), p)
		}
	}

	err := img.FillRect(MustRect(3, 3, 4, 4), gray(1))
	assert.ErrorIs(t, err, ErrRectOutOfBounds)
}

func TestBlitRect(t *testing.T) {
	dst := New[pixel.Gray[uint8]](64, 64)
	src := New[pixel.Gray[uint8]](64, 64)
	r := MustRect(16, 16, 32, 32)
	require.NoError(t, src.FillRect(r, gray(255)))

	require.NoError(t, dst.BlitRect(r, r, src))
	assert.True(t, Equal[pixel.Gray[uint8], uint8](dst, src))
}

func TestBlitRectErrors(t *testing.T) {
	dst := New[pixel.Gray[uint8]](8, 8)
	src := New[pixel.Gray[uint8]](8, 8)

	err := dst.BlitRect(MustRect(0, 0, 2, 2), MustRect(0, 0, 3, 3), src)
	assert.ErrorIs(t, err, ErrRectSizeMismatch)

	err = dst.BlitRect(MustRect(6, 6, 4, 4), MustRect(0, 0, 4, 4), src)
	assert.ErrorIs(t, err, ErrRectOutOfBounds)

	err = dst.BlitRect(MustRect(0, 0, 4, 4), MustRect(6, 6, 4, 4), src)
	assert.ErrorIs(t, err, ErrRectOutOfBounds)
}

func TestGenerateDeterministic(t *testing.T) {
	img := grayImage(4, 4, func(x, y int) uint8 { return uint8(x * y) })
	assert.Equal(t, gray(9), img.GetPixel(3, 3))
	assert.Equal(t, gray(0), img.GetPixel(0, 3))
}

func TestToBufferCopies(t *testing.T) {
	img := grayImage(3, 3, func(x, y int) uint8 { return uint8(x + y) })
	cp := img.ToBuffer()
	cp.PutPixel(0, 0, gray(99))
	assert.Equal(t, gray(0), img.GetPixel(0, 0))
}
