// Command padshow writes one copy of an input image per border policy,
// each padded by the given radius, so the four strategies can be
// compared side by side.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/nvr-ai/go-image2d/image2d"
	"github.com/nvr-ai/go-image2d/imageio"
	"github.com/nvr-ai/go-image2d/pixel"
)

var modes = []image2d.Padding{
	image2d.PaddingZero,
	image2d.PaddingReplicate,
	image2d.PaddingWrap,
	image2d.PaddingMirror,
}

func main() {
	var (
		input  = flag.String("input", "", "input image path (.png, .tif)")
		outDir = flag.String("out", ".", "output directory")
		radius = flag.Int("radius", 8, "padding radius")
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

	base := strings.TrimSuffix(filepath.Base(*input), filepath.Ext(*input))
	for _, mode := range modes {
		var padded imageio.Dynamic
		switch img := decoded.(type) {
		case *image2d.Buffer[pixel.Gray[uint8], uint8]:
			padded = image2d.Pad(img, *radius, mode)
		case *image2d.Buffer[pixel.Gray[uint16], uint16]:
			padded = image2d.Pad(img, *radius, mode)
		case *image2d.Buffer[pixel.RGBA[uint8], uint8]:
			padded = image2d.Pad(img, *radius, mode)
		case *image2d.Buffer[pixel.RGBA[uint16], uint16]:
			padded = image2d.Pad(img, *radius, mode)
		default:
			log.Fatalf("unsupported decoded layout %T", decoded)
		}

		path := filepath.Join(*outDir, fmt.Sprintf("%s_%s.png", base, mode))
		if err := imageio.Save(path, padded); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}
}
