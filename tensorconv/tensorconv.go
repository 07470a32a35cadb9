// Package tensorconv converts pixel buffers to and from dense tensors
// in HWC float32 layout, the shape ML runtimes consume image input in.
package tensorconv

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/nvr-ai/go-image2d/image2d"
	"github.com/nvr-ai/go-image2d/pixel"
)

// ErrShapeMismatch reports a tensor whose shape does not describe an
// HWC image of the requested pixel type.
var ErrShapeMismatch = errors.New("tensor shape mismatch")

// ToDense flattens img into a (height, width, channels) float32 tensor.
// Subpixels pass through the standard numeric cast, so integer channel
// values keep their magnitude rather than being normalized.
func ToDense[P pixel.Pixel[P, S], S pixel.Subpixel](img image2d.Image[P, S]) *tensor.Dense {
	var proto P
	w, h := img.Dimensions()
	nc := proto.NumChannels()

	backing := make([]float32, 0, w*h*nc)
	for p := range img.Pixels() {
		for _, ch := range p.Channels() {
			backing = append(backing, pixel.Convert[S, float32](ch))
		}
	}
	return tensor.New(tensor.WithShape(h, w, nc), tensor.WithBacking(backing))
}

// FromDense rebuilds a pixel buffer from a (height, width, channels)
// float32 tensor. The channel dimension must match the pixel type, and
// values convert with the usual degrade-to-zero cast.
func FromDense[P pixel.Pixel[P, S], S pixel.Subpixel](t *tensor.Dense) (*image2d.Buffer[P, S], error) {
	var proto P
	nc := proto.NumChannels()

	shape := t.Shape()
	if len(shape) != 3 {
		return nil, errors.Wrapf(ErrShapeMismatch, "want 3 dimensions, got %v", shape)
	}
	h, w, c := shape[0], shape[1], shape[2]
	if c != nc {
		return nil, errors.Wrapf(ErrShapeMismatch, "want %d channels, got %d", nc, c)
	}
	backing, ok := t.Data().([]float32)
	if !ok {
		return nil, errors.Wrapf(ErrShapeMismatch, "want float32 backing, got %v", t.Dtype())
	}
	if len(backing) != w*h*nc {
		return nil, errors.Wrapf(ErrShapeMismatch, "backing holds %d values, want %d", len(backing), w*h*nc)
	}

	raw := make([]S, len(backing))
	pixel.CastChannels(backing, raw)
	img, err := image2d.FromRawVec[P](w, h, raw)
	if err != nil {
		return nil, err
	}
	return img, nil
}
