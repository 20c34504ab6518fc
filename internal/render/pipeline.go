// Package render turns decoded source images into packed monochrome bitmaps
// for the e-ink panel. The stage order inside Process is part of the
// contract: crop fractions are resolved against the rotated frame, tone
// operations run on grayscale before dithering, and the text overlay lands
// on the already-binary raster.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"

	_ "golang.org/x/image/bmp"

	"github.com/BuKarData/inkframe/internal/bitmap"
	"github.com/BuKarData/inkframe/internal/dither"
	"github.com/BuKarData/inkframe/internal/font"
)

var (
	// ErrDecode wraps failures to decode the source image. Nothing partial
	// is ever returned alongside it.
	ErrDecode = errors.New("source image could not be decoded")

	// ErrRender marks an internal invariant violation between stages.
	ErrRender = errors.New("render failure")
)

// Preview tap points.
const (
	StageGray   = "gray"
	StageBinary = "binary"
)

// Result carries everything one Process call produced: the pre-dither gray
// raster, the binary raster, and the packed device payload. Both preview
// taps come from this single invocation; there is no second render path.
type Result struct {
	Gray   *bitmap.Buffer
	Binary *bitmap.Buffer
	Packed *bitmap.Packed
}

func (r *Result) Width() int {
	return r.Binary.Width()
}

func (r *Result) Height() int {
	return r.Binary.Height()
}

// PreviewPNG encodes the requested tap point as an 8-bit grayscale PNG for
// UI preview. Unknown stages return the binary tap.
func (r *Result) PreviewPNG(stage string) ([]byte, error) {
	buf := r.Binary
	if stage == StageGray {
		buf = r.Gray
	}

	img := image.NewGray(image.Rect(0, 0, buf.Width(), buf.Height()))
	copy(img.Pix, buf.Pixels())

	var out bytes.Buffer
	if err := png.Encode(&out, img); err != nil {
		return nil, fmt.Errorf("Couldn't encode preview:\n%w", err)
	}
	return out.Bytes(), nil
}

// Pipeline renders source images. It only reads the immutable font table, so
// a single pipeline may serve concurrent requests.
type Pipeline struct {
	fonts *font.Table
}

func NewPipeline(fonts *font.Table) *Pipeline {
	return &Pipeline{fonts: fonts}
}

// Process runs the full transform sequence on raw image bytes. Option values
// outside their documented ranges are clamped, not rejected.
func (p *Pipeline) Process(src []byte, opts Options) (*Result, error) {
	opts.Clamp()

	decoded, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	img := toNRGBA(decoded)
	img = rotate(img, opts.Rotation)
	img = crop(img, opts.Crop)
	img = flip(img, opts.FlipH, opts.FlipV)
	img = resample(img, opts.Width, opts.Height, opts.Fit)

	gray := grayscale(img)
	if gray.Width() != opts.Width || gray.Height() != opts.Height {
		return nil, fmt.Errorf("%w: raster is %vx%v after resample, want %vx%v",
			ErrRender, gray.Width(), gray.Height(), opts.Width, opts.Height)
	}

	applyGamma(gray, opts.Gamma)
	sharpen(gray, opts.Sharpness)
	applyBrightnessContrast(gray, opts.Brightness, opts.Contrast)
	normalize(gray)

	binary := dither.Apply(opts.Dithering, gray)

	if opts.TextOverlay != "" {
		p.drawOverlay(binary, opts)
	}
	if opts.Invert {
		binary.Invert()
	}

	if len(binary.Pixels()) != len(gray.Pixels()) {
		return nil, fmt.Errorf("%w: dithered raster size diverged", ErrRender)
	}

	return &Result{Gray: gray, Binary: binary, Packed: bitmap.Pack(binary)}, nil
}

// drawOverlay composites the caller's text onto the binary raster. A white
// band is cleared under the text first so it stays legible whatever the
// dithered content underneath looks like.
func (p *Pipeline) drawOverlay(buf *bitmap.Buffer, opts Options) {
	scale := textScale(opts.TextSize)
	pad := 2 * scale
	bandHeight := font.CharHeight(scale) + 2*pad

	var bandY int
	switch opts.TextPosition {
	case PositionTop:
		bandY = 0
	case PositionCenter:
		bandY = (buf.Height() - bandHeight) / 2
	default:
		bandY = buf.Height() - bandHeight
	}

	buf.FillRect(0, bandY, buf.Width(), bandHeight, false)
	p.fonts.DrawTextCentered(buf, 0, buf.Width(), bandY+pad, opts.TextOverlay, scale, true)
}
