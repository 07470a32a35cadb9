package image2d

import (
	"math/rand"
	"testing"

	"github.com/nvr-ai/go-image2d/pixel"
)

func genGray(w, h int) *Buffer[pixel.Gray[uint8], uint8] {
	rng := rand.New(rand.NewSource(1))
	return Generate[pixel.Gray[uint8]](w, h, func(x, y int) pixel.Gray[uint8] {
		return pixel.NewGray([1]uint8{uint8(rng.Intn(256))})
	})
}

func BenchmarkGetPixel_512(b *testing.B) {
	img := genGray(512, 512)
	w, h := img.Dimensions()

	b.ResetTimer()
	b.ReportAllocs()
	var acc uint8
	for i := 0; i < b.N; i++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				acc += img.GetPixel(x, y).Data[0]
			}
		}
	}
	_ = acc
}

func BenchmarkPutPixel_512(b *testing.B) {
	img := New[pixel.Gray[uint8]](512, 512)
	p := pixel.NewGray([1]uint8{7})

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for y := 0; y < 512; y++ {
			for x := 0; x < 512; x++ {
				img.PutPixel(x, y, p)
			}
		}
	}
}

func BenchmarkPixels_512(b *testing.B) {
	img := genGray(512, 512)

	b.ResetTimer()
	b.ReportAllocs()
	var acc uint8
	for i := 0; i < b.N; i++ {
		for p := range img.Pixels() {
			acc += p.Data[0]
		}
	}
	_ = acc
}

func BenchmarkRectIter_512_center(b *testing.B) {
	img := genGray(512, 512)
	r := MustRect(128, 128, 256, 256)

	b.ResetTimer()
	b.ReportAllocs()
	var acc uint8
	for i := 0; i < b.N; i++ {
		for p := range img.RectIter(r) {
			acc += p.Data[0]
		}
	}
	_ = acc
}

func BenchmarkBlitRect_256(b *testing.B) {
	src := genGray(512, 512)
	dst := New[pixel.Gray[uint8]](512, 512)
	r := MustRect(0, 0, 256, 256)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := dst.BlitRect(r, r, src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSubImageAcquire(b *testing.B) {
	img := genGray(512, 512)
	r := MustRect(64, 64, 128, 128)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v, err := img.SubImage(r)
		if err != nil {
			b.Fatal(err)
		}
		v.Release()
	}
}
