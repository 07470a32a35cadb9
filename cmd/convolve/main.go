// Command convolve blurs a PNG or TIFF image with a box or gaussian
// kernel and writes the result.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nvr-ai/go-image2d/image2d"
	"github.com/nvr-ai/go-image2d/imageio"
	"github.com/nvr-ai/go-image2d/kernels"
	"github.com/nvr-ai/go-image2d/pixel"
)

func main() {
	var (
		input   = flag.String("input", "", "input image path (.png, .tif)")
		output  = flag.String("output", "out.png", "output image path")
		kernel  = flag.String("kernel", "gaussian", "kernel type: box or gaussian")
		radius  = flag.Int("radius", 2, "kernel radius")
		sigma   = flag.Float64("sigma", 1.5, "gaussian standard deviation")
		padding = flag.String("padding", "mirror", "border policy: zero, replicate, wrap or mirror")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	pad, err := image2d.ParsePadding(*padding)
	if err != nil {
		log.Fatal(err)
	}

	var k *kernels.Kernel[float64]
	switch *kernel {
	case "box":
		k = kernels.Box[float64](*radius)
	case "gaussian":
		k = kernels.Gaussian(*sigma, *radius)
	default:
		log.Fatalf("unknown kernel type %q", *kernel)
	}

	decoded, err := imageio.Open(*input)
	if err != nil {
		log.Fatal(err)
	}

	var blurred imageio.Dynamic
	switch img := decoded.(type) {
	case *image2d.Buffer[pixel.Gray[uint8], uint8]:
		blurred = kernels.Convolve[pixel.Gray[uint8]](k, img, pad)
	case *image2d.Buffer[pixel.Gray[uint16], uint16]:
		blurred = kernels.Convolve[pixel.Gray[uint16]](k, img, pad)
	case *image2d.Buffer[pixel.RGBA[uint8], uint8]:
		blurred = kernels.Convolve[pixel.RGBA[uint8]](k, img, pad)
	case *image2d.Buffer[pixel.RGBA[uint16], uint16]:
		blurred = kernels.Convolve[pixel.RGBA[uint16]](k, img, pad)
	default:
		log.Fatalf("unsupported decoded layout %T", decoded)
	}

	if err := imageio.Save(*output, blurred); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s (%dx%d, %s kernel, radius %d, %s padding)\n",
		*output, blurred.Width(), blurred.Height(), *kernel, *radius, pad)
}
