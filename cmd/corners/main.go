// Command corners runs the Harris detector on an image and writes a
// copy with a cross drawn over every detected corner.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nvr-ai/go-image2d/draw2d"
	"github.com/nvr-ai/go-image2d/features"
	"github.com/nvr-ai/go-image2d/image2d"
	"github.com/nvr-ai/go-image2d/imageio"
	"github.com/nvr-ai/go-image2d/pixel"
	"github.com/nvr-ai/go-image2d/processing"
)

func main() {
	var (
		input  = flag.String("input", "", "input image path (.png, .tif)")
		output = flag.String("output", "corners.png", "output image path")
		radius = flag.Int("radius", 2, "detector window radius")
		k      = flag.Float64("k", 0.04, "Harris sensitivity parameter")
		size   = flag.Int("size", 3, "marker arm length in pixels")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	decoded, err := imageio.Open(*input)
	if err != nil {
		log.Fatal(err)
	}

	var gray *image2d.Buffer[pixel.Gray[uint8], uint8]
	switch img := decoded.(type) {
	case *image2d.Buffer[pixel.Gray[uint8], uint8]:
		gray = img
	case *image2d.Buffer[pixel.RGBA[uint8], uint8]:
		gray = processing.RGBAToGray[uint8](img)
	default:
		log.Fatalf("unsupported decoded layout %T", decoded)
	}

	corners := features.HarrisCorners[uint8](gray, *radius, *k)
	log.Printf("detected %d corners", len(corners))

	marked := processing.GrayToRGB[uint8](gray)
	red := pixel.NewRGB([3]uint8{255, 0, 0})
	for _, c := range corners {
		draw2d.DrawCross[pixel.RGB[uint8]](marked, c.X, c.Y, *size, red)
	}

	if err := imageio.Save(*output, marked); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s\n", *output)
}
