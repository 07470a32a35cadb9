package imageio

import (
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/tiff"

	"github.com/nvr-ai/go-image2d/image2d"
	"github.com/nvr-ai/go-image2d/pixel"
)

// Format identifies a supported on-disk image format.
type Format string

const (
	FormatPNG  Format = "png"
	FormatTIFF Format = "tiff"
)

// ErrUnsupportedFormat reports a file extension or Format value outside
// the supported set.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// ErrUnsupportedLayout reports a buffer type Encode has no standard
// image representation for.
var ErrUnsupportedLayout = errors.New("unsupported pixel layout")

// Dynamic is a decoded buffer whose pixel layout was chosen by the
// file: one of
//
//	*image2d.Buffer[pixel.Gray[uint8], uint8]
//	*image2d.Buffer[pixel.Gray[uint16], uint16]
//	*image2d.Buffer[pixel.RGBA[uint8], uint8]
//	*image2d.Buffer[pixel.RGBA[uint16], uint16]
//
// Callers recover the concrete type with a type switch.
type Dynamic interface {
	Width() int
	Height() int
}

// FormatForPath maps a file extension to its Format.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "path %q", path)
	}
}

// Decode reads an image in the given format and converts it into the
// narrowest supported buffer layout.
func Decode(r io.Reader, format Format) (Dynamic, error) {
	var (
		m   image.Image
		err error
	)
	switch format {
	case FormatPNG:
		m, err = png.Decode(r)
	case FormatTIFF:
		m, err = tiff.Decode(r)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", format)
	}
	return fromDecoded(m), nil
}

func fromDecoded(m image.Image) Dynamic {
	switch m := m.(type) {
	case *image.Gray:
		return FromGray(m)
	case *image.Gray16:
		return FromGray16(m)
	case *image.NRGBA:
		return FromNRGBA(m)
	case *image.NRGBA64:
		return FromNRGBA64(m)
	default:
		return FromImage(m)
	}
}

// Encode writes img in the given format. The buffer layouts accepted are
// the Dynamic set plus 8-bit RGB and gray+alpha, which encode opaque and
// gray-expanded respectively.
func Encode(w io.Writer, img Dynamic, format Format) error {
	m, err := toStdImage(img)
	if err != nil {
		return err
	}
	switch format {
	case FormatPNG:
		return errors.Wrap(png.Encode(w, m), "encoding png")
	case FormatTIFF:
		return errors.Wrap(tiff.Encode(w, m, nil), "encoding tiff")
	default:
		return errors.Wrapf(ErrUnsupportedFormat, "format %q", format)
	}
}

func toStdImage(img Dynamic) (image.Image, error) {
	switch img := img.(type) {
	case *image2d.Buffer[pixel.Gray[uint8], uint8]:
		return ToGray(img), nil
	case *image2d.Buffer[pixel.Gray[uint16], uint16]:
		return ToGray16(img), nil
	case *image2d.Buffer[pixel.RGBA[uint8], uint8]:
		return ToNRGBA(img), nil
	case *image2d.Buffer[pixel.RGBA[uint16], uint16]:
		return ToNRGBA64(img), nil
	case *image2d.Buffer[pixel.RGB[uint8], uint8]:
		return ToNRGBAFromRGB(img), nil
	case *image2d.Buffer[pixel.GrayAlpha[uint8], uint8]:
		return ToNRGBAFromGrayAlpha(img), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedLayout, "%T", img)
	}
}

// Open reads the image at path, picking the codec from the file
// extension.
func Open(path string) (Dynamic, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	return Decode(f, format)
}

// Save writes img to path, picking the codec from the file extension.
func Save(path string, img Dynamic) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := Encode(f, img, format); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}
