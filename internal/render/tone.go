package render

import (
	"image"
	"math"

	"github.com/BuKarData/inkframe/internal/bitmap"
)

// grayscale collapses an NRGBA raster to a single-channel buffer using the
// BT.601 luma weights.
func grayscale(src *image.NRGBA) *bitmap.Buffer {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	out := bitmap.New(w, h)
	px := out.Pixels()
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		for x := 0; x < w; x++ {
			r := int(row[x*4])
			g := int(row[x*4+1])
			b := int(row[x*4+2])
			px[y*w+x] = uint8((299*r + 587*g + 114*b) / 1000)
		}
	}
	return out
}

// applyGamma raises each normalized pixel to the gamma power through a
// 256-entry lookup table.
func applyGamma(buf *bitmap.Buffer, gamma float64) {
	if gamma == 1.0 {
		return
	}
	var lut [256]uint8
	for i := range lut {
		lut[i] = uint8(math.Round(255 * math.Pow(float64(i)/255, gamma)))
	}
	px := buf.Pixels()
	for i, v := range px {
		px[i] = lut[v]
	}
}

// sharpen applies an unsharp mask: the pixel is pushed away from a 3x3 box
// blur of its neighbourhood, with the push growing linearly with the 0-100
// strength parameter.
func sharpen(buf *bitmap.Buffer, strength int) {
	if strength <= 0 {
		return
	}
	amount := float64(strength) / 100 * 2

	w, h := buf.Width(), buf.Height()
	src := buf.Clone().Pixels()
	px := buf.Pixels()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum, count int
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					sum += int(src[ny*w+nx])
					count++
				}
			}
			blurred := float64(sum) / float64(count)
			orig := float64(src[y*w+x])
			px[y*w+x] = clampPixel(orig + amount*(orig-blurred))
		}
	}
}

// applyBrightnessContrast maps the +/-100 UI scale onto the pixel scale:
// out = (1 + contrast/100) * in + brightness * 2.55.
func applyBrightnessContrast(buf *bitmap.Buffer, brightness, contrast int) {
	if brightness == 0 && contrast == 0 {
		return
	}
	mult := 1 + float64(contrast)/100
	offset := float64(brightness) * 2.55

	px := buf.Pixels()
	for i, v := range px {
		px[i] = clampPixel(mult*float64(v) + offset)
	}
}

// normalize stretches the histogram to the full [0,255] range. A flat buffer
// (min == max) is left untouched.
func normalize(buf *bitmap.Buffer) {
	px := buf.Pixels()
	if len(px) == 0 {
		return
	}
	lo, hi := px[0], px[0]
	for _, v := range px {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		return
	}
	span := int(hi) - int(lo)
	for i, v := range px {
		px[i] = uint8((int(v) - int(lo)) * 255 / span)
	}
}

func clampPixel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}
