package kernels

import (
	"math/rand"
	"testing"

	"github.com/nvr-ai/go-image2d/image2d"
	"github.com/nvr-ai/go-image2d/pixel"
)

func genGray(w, h int) *image2d.Buffer[pixel.Gray[uint8], uint8] {
	rng := rand.New(rand.NewSource(1))
	return image2d.Generate[pixel.Gray[uint8]](w, h, func(x, y int) pixel.Gray[uint8] {
		return pixel.NewGray([1]uint8{uint8(rng.Intn(256))})
	})
}

func BenchmarkConvolveBox_256_r1(b *testing.B) {
	img := genGray(256, 256)
	k := Box[float64](1)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Convolve[pixel.Gray[uint8]](k, img, image2d.PaddingReplicate)
	}
}

func BenchmarkConvolveBox_256_r3(b *testing.B) {
	img := genGray(256, 256)
	k := Box[float64](3)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Convolve[pixel.Gray[uint8]](k, img, image2d.PaddingReplicate)
	}
}

func BenchmarkConvolveGaussian_256_r3(b *testing.B) {
	img := genGray(256, 256)
	k := Gaussian[float64](1.5, 3)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Convolve[pixel.Gray[uint8]](k, img, image2d.PaddingMirror)
	}
}

func BenchmarkConvolveSobel_256(b *testing.B) {
	img := genGray(256, 256)
	k := SobelX3x3[float64]()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Convolve[pixel.Gray[float64]](k, img, image2d.PaddingZero)
	}
}

func BenchmarkConvolveRGBA_128_r2(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	img := image2d.Generate[pixel.RGBA[uint8]](128, 128, func(x, y int) pixel.RGBA[uint8] {
		return pixel.NewRGBA([4]uint8{
			uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)), 255,
		})
	})
	k := Box[float64](2)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Convolve[pixel.RGBA[uint8]](k, img, image2d.PaddingReplicate)
	}
}
