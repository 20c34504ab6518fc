// Package dither converts 8-bit grayscale buffers to two-level black and
// white. Every algorithm is a pure function over the input buffer; none of
// them mutate their source.
package dither

import (
	"github.com/BuKarData/inkframe/internal/bitmap"
)

// Stable algorithm tokens. These appear in request payloads and in the
// catalog served to UIs, so they must not change.
const (
	None           = "none"
	FloydSteinberg = "floydSteinberg"
	Atkinson       = "atkinson"
	Sierra         = "sierra"
	Stucki         = "stucki"
	Ordered        = "ordered"
	Bayer          = "bayer"
)

const threshold = 127

// Algorithm converts a grayscale buffer into a binary one.
type Algorithm func(src *bitmap.Buffer) *bitmap.Buffer

var algorithms = map[string]Algorithm{
	None:           Threshold,
	FloydSteinberg: diffusion(floydSteinbergKernel),
	Atkinson:       diffusion(atkinsonKernel),
	Sierra:         diffusion(sierraLiteKernel),
	Stucki:         diffusion(stuckiKernel),
	Ordered:        ordered(bayer4x4[:], 16),
	Bayer:          ordered(bayer8x8[:], 64),
}

// Apply runs the algorithm named by token. An unknown token is not an error:
// it falls back to plain thresholding, because a degraded display update
// beats no update.
func Apply(token string, src *bitmap.Buffer) *bitmap.Buffer {
	if alg, ok := algorithms[token]; ok {
		return alg(src)
	}
	return Threshold(src)
}

// Threshold maps every pixel above 127 to white and the rest to black.
func Threshold(src *bitmap.Buffer) *bitmap.Buffer {
	out := bitmap.New(src.Width(), src.Height())
	in, op := src.Pixels(), out.Pixels()
	for i, v := range in {
		if v > threshold {
			op[i] = bitmap.White
		} else {
			op[i] = bitmap.Black
		}
	}
	return out
}

// ordered builds a Bayer-style ordered ditherer. The matrix is indexed by
// (y mod n, x mod n) and its levels are scaled onto [0,255]; there is no
// error propagation, so the result is deterministic per pixel.
func ordered(matrix []uint8, levels int) Algorithm {
	n := 0
	for n*n < len(matrix) {
		n++
	}
	return func(src *bitmap.Buffer) *bitmap.Buffer {
		out := bitmap.New(src.Width(), src.Height())
		width := src.Width()
		in, op := src.Pixels(), out.Pixels()
		for i, v := range in {
			x, y := i%width, i/width
			cell := int(matrix[(y%n)*n+x%n])
			cut := uint8((cell*255 + 255/2) / levels)
			if v > cut {
				op[i] = bitmap.White
			} else {
				op[i] = bitmap.Black
			}
		}
		return out
	}
}

var bayer4x4 = [16]uint8{
	0, 8, 2, 10,
	12, 4, 14, 6,
	3, 11, 1, 9,
	15, 7, 13, 5,
}

var bayer8x8 = [64]uint8{
	0, 32, 8, 40, 2, 34, 10, 42,
	48, 16, 56, 24, 50, 18, 58, 26,
	12, 44, 4, 36, 14, 46, 6, 38,
	60, 28, 52, 20, 62, 30, 54, 22,
	3, 35, 11, 43, 1, 33, 9, 41,
	51, 19, 59, 27, 49, 17, 57, 25,
	15, 47, 7, 39, 13, 45, 5, 37,
	63, 31, 55, 23, 61, 29, 53, 21,
}
