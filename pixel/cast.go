package pixel

// Cast functions relate pixel types with identical channel counts but
// different subpixel types. They all delegate per channel to Convert, so
// the out-of-range-degrades-to-zero policy lives in exactly one place.

// CastGray converts a Gray pixel from subpixel type S to O.
func CastGray[S, O Subpixel](p Gray[S]) Gray[O] {
	var q Gray[O]
	castChannels(p.Data[:], q.Data[:])
	return q
}

// CastGrayAlpha converts a GrayAlpha pixel from subpixel type S to O.
func CastGrayAlpha[S, O Subpixel](p GrayAlpha[S]) GrayAlpha[O] {
	var q GrayAlpha[O]
	castChannels(p.Data[:], q.Data[:])
	return q
}

// CastRGB converts an RGB pixel from subpixel type S to O.
func CastRGB[S, O Subpixel](p RGB[S]) RGB[O] {
	var q RGB[O]
	castChannels(p.Data[:], q.Data[:])
	return q
}

// CastRGBA converts an RGBA pixel from subpixel type S to O.
func CastRGBA[S, O Subpixel](p RGBA[S]) RGBA[O] {
	var q RGBA[O]
	castChannels(p.Data[:], q.Data[:])
	return q
}

// CastChannels converts src into dst channel by channel under the shared
// zero-fallback policy. Only the common prefix of the two slices is
// written, mirroring per-channel casts between same-arity pixel types.
func CastChannels[S, O Subpixel](src []S, dst []O) {
	castChannels(src, dst)
}

func castChannels[S, O Subpixel](src []S, dst []O) {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] = Convert[S, O](src[i])
	}
}

// DropAlpha discards the alpha channel of a GrayAlpha pixel.
func DropAlpha[S Subpixel](p GrayAlpha[S]) Gray[S] {
	return Gray[S]{Data: [1]S{p.Data[0]}}
}

// DropAlphaRGBA discards the alpha channel of an RGBA pixel.
func DropAlphaRGBA[S Subpixel](p RGBA[S]) RGB[S] {
	return RGB[S]{Data: [3]S{p.Data[0], p.Data[1], p.Data[2]}}
}
