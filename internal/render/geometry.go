package render

import (
	"image"
	"image/color"
	imagedraw "image/draw"
	"math"

	"golang.org/x/image/draw"
)

// rotate returns the source turned clockwise by a normalized quarter-turn
// angle. The result is a fresh raster with bounds at the origin.
func rotate(src *image.NRGBA, deg int) *image.NRGBA {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()

	switch deg {
	case 90:
		dst := image.NewNRGBA(image.Rect(0, 0, h, w))
		for y := 0; y < w; y++ {
			for x := 0; x < h; x++ {
				dst.SetNRGBA(x, y, src.NRGBAAt(y, h-1-x))
			}
		}
		return dst
	case 180:
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.SetNRGBA(x, y, src.NRGBAAt(w-1-x, h-1-y))
			}
		}
		return dst
	case 270:
		dst := image.NewNRGBA(image.Rect(0, 0, h, w))
		for y := 0; y < w; y++ {
			for x := 0; x < h; x++ {
				dst.SetNRGBA(x, y, src.NRGBAAt(w-1-y, x))
			}
		}
		return dst
	default:
		return src
	}
}

func flip(src *image.NRGBA, horizontal, vertical bool) *image.NRGBA {
	if !horizontal && !vertical {
		return src
	}
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx, sy := x, y
			if horizontal {
				sx = w - 1 - x
			}
			if vertical {
				sy = h - 1 - y
			}
			dst.SetNRGBA(x, y, src.NRGBAAt(sx, sy))
		}
	}
	return dst
}

// crop resolves the fractional rectangle against the (already rotated)
// source dimensions. Extents are clamped to stay in bounds, and a rectangle
// that degenerates after clamping is forced to one pixel so the pipeline
// always terminates with a drawable raster.
func crop(src *image.NRGBA, c *CropRect) *image.NRGBA {
	if c == nil {
		return src
	}
	w, h := src.Bounds().Dx(), src.Bounds().Dy()

	x := int(math.Round(c.X * float64(w)))
	y := int(math.Round(c.Y * float64(h)))
	cw := int(math.Round(c.W * float64(w)))
	ch := int(math.Round(c.H * float64(h)))

	if x > w-1 {
		x = w - 1
	}
	if y > h-1 {
		y = h - 1
	}
	if x+cw > w {
		cw = w - x
	}
	if y+ch > h {
		ch = h - y
	}
	if cw < 1 {
		cw = 1
	}
	if ch < 1 {
		ch = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, cw, ch))
	for dy := 0; dy < ch; dy++ {
		for dx := 0; dx < cw; dx++ {
			dst.SetNRGBA(dx, dy, src.NRGBAAt(x+dx, y+dy))
		}
	}
	return dst
}

// resample scales the source onto a width x height raster according to the
// fit policy. Cover center-crops the source to the target aspect before
// scaling, contain letterboxes on a white background, fill stretches.
// CatmullRom is the kernel throughout; it matches the scaler used for every
// other resize in this codebase.
func resample(src *image.NRGBA, width, height int, fit string) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	imagedraw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, imagedraw.Src)

	srcBounds := src.Bounds()
	sw, sh := srcBounds.Dx(), srcBounds.Dy()
	srcRatio := float64(sw) / float64(sh)
	dstRatio := float64(width) / float64(height)

	switch fit {
	case FitContain:
		target := dst.Bounds()
		if srcRatio > dstRatio {
			bandH := int(float64(width) / srcRatio)
			top := (height - bandH) / 2
			target = image.Rect(0, top, width, top+bandH)
		} else if srcRatio < dstRatio {
			bandW := int(float64(height) * srcRatio)
			left := (width - bandW) / 2
			target = image.Rect(left, 0, left+bandW, height)
		}
		draw.CatmullRom.Scale(dst, target, src, srcBounds, draw.Over, nil)

	case FitFill:
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, srcBounds, draw.Over, nil)

	default: // cover
		window := srcBounds
		if srcRatio > dstRatio {
			newW := int(float64(sh) * dstRatio)
			offset := (sw - newW) / 2
			window = image.Rect(offset, 0, offset+newW, sh)
		} else if srcRatio < dstRatio {
			newH := int(float64(sw) / dstRatio)
			offset := (sh - newH) / 2
			window = image.Rect(0, offset, sw, offset+newH)
		}
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, window, draw.Over, nil)
	}

	return dst
}

// toNRGBA normalises any decoded image into an NRGBA raster with bounds at
// the origin.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok && n.Bounds().Min == (image.Point{}) {
		return n
	}
	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	imagedraw.Draw(dst, dst.Bounds(), src, bounds.Min, imagedraw.Src)
	return dst
}
