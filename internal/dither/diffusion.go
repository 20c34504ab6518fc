package dither

import "github.com/BuKarData/inkframe/internal/bitmap"

// tap scatters weight/div of the residual to the pixel at (+dx, +dy).
type tap struct {
	dx, dy int
	weight int
}

type kernel struct {
	taps []tap
	div  int
}

// floydSteinbergKernel distributes the full residual over four neighbours.
var floydSteinbergKernel = kernel{
	taps: []tap{
		{1, 0, 7},
		{-1, 1, 3},
		{0, 1, 5},
		{1, 1, 1},
	},
	div: 16,
}

// atkinsonKernel distributes only 6/8 of the residual, discarding the rest.
// The lost error is what makes Atkinson output read lighter.
var atkinsonKernel = kernel{
	taps: []tap{
		{1, 0, 1},
		{2, 0, 1},
		{-1, 1, 1},
		{0, 1, 1},
		{1, 1, 1},
		{0, 2, 1},
	},
	div: 8,
}

// sierraLiteKernel is the two-row Sierra-Lite variant.
var sierraLiteKernel = kernel{
	taps: []tap{
		{1, 0, 2},
		{-1, 1, 1},
		{0, 1, 1},
	},
	div: 4,
}

var stuckiKernel = kernel{
	taps: []tap{
		{1, 0, 8},
		{2, 0, 4},
		{-2, 1, 2},
		{-1, 1, 4},
		{0, 1, 8},
		{1, 1, 4},
		{2, 1, 2},
		{-2, 2, 1},
		{-1, 2, 2},
		{0, 2, 4},
		{1, 2, 2},
		{2, 2, 1},
	},
	div: 42,
}

// diffusion builds an error-diffusion ditherer for the given kernel.
//
// Pixels are processed in strict raster order: row-major, left to right, top
// to bottom. The order matters because later pixels read error that earlier
// pixels scattered forward; serpentine traversal would produce a different
// raster. Residuals accumulate in a float32 working buffer seeded from the
// source. Taps that fall outside the raster are skipped, not wrapped.
func diffusion(k kernel) Algorithm {
	return func(src *bitmap.Buffer) *bitmap.Buffer {
		width, height := src.Width(), src.Height()
		out := bitmap.New(width, height)

		work := make([]float32, width*height)
		for i, v := range src.Pixels() {
			work[i] = float32(v)
		}

		op := out.Pixels()
		div := float32(k.div)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				i := y*width + x
				old := work[i]
				var quantized float32
				if old > threshold {
					quantized = 255
					op[i] = bitmap.White
				} else {
					quantized = 0
					op[i] = bitmap.Black
				}
				residual := old - quantized
				for _, t := range k.taps {
					nx, ny := x+t.dx, y+t.dy
					if nx < 0 || nx >= width || ny >= height {
						continue
					}
					work[ny*width+nx] += residual * float32(t.weight) / div
				}
			}
		}

		return out
	}
}
