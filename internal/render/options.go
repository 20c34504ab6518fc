package render

import "github.com/BuKarData/inkframe/internal/dither"

// Fit policies for reconciling source aspect ratio with the target raster.
const (
	FitCover   = "cover"
	FitContain = "contain"
	FitFill    = "fill"
)

// Text overlay anchors and sizes.
const (
	PositionTop    = "top"
	PositionCenter = "center"
	PositionBottom = "bottom"

	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

// CropRect selects a sub-region of the rotated source. All four values are
// fractions of the rotated dimensions in [0,1].
type CropRect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Options is the full configuration surface a caller may send. Every field
// has a usable default so any subset can be omitted.
type Options struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	Brightness int     `json:"brightness"` // -100..100
	Contrast   int     `json:"contrast"`   // -100..100
	Sharpness  int     `json:"sharpness"`  // 0..100
	Gamma      float64 `json:"gamma"`      // 0.5..2.0

	Invert    bool   `json:"invert"`
	Dithering string `json:"dithering"`

	Rotation int       `json:"rotation"`
	FlipH    bool      `json:"flipH"`
	FlipV    bool      `json:"flipV"`
	Crop     *CropRect `json:"crop,omitempty"`
	Fit      string    `json:"fit"`

	TextOverlay  string `json:"textOverlay"`
	TextPosition string `json:"textPosition"`
	TextSize     string `json:"textSize"`
}

// DisplayWidth and DisplayHeight are the panel's native raster size.
const (
	DisplayWidth  = 200
	DisplayHeight = 200
)

func DefaultOptions() Options {
	return Options{
		Width:     DisplayWidth,
		Height:    DisplayHeight,
		Gamma:     1.0,
		Dithering: dither.FloydSteinberg,
		Fit:       FitCover,
	}
}

// Clamp forces every option into its documented range. Out-of-range values
// are a configuration error in name only: this pipeline feeds a best-effort
// display, so it clamps to the nearest bound instead of rejecting.
func (o *Options) Clamp() {
	if o.Width < 1 {
		o.Width = DisplayWidth
	}
	if o.Height < 1 {
		o.Height = DisplayHeight
	}

	o.Brightness = clampInt(o.Brightness, -100, 100)
	o.Contrast = clampInt(o.Contrast, -100, 100)
	o.Sharpness = clampInt(o.Sharpness, 0, 100)

	if o.Gamma == 0 {
		o.Gamma = 1.0
	}
	o.Gamma = clampFloat(o.Gamma, 0.5, 2.0)

	o.Rotation = normalizeRotation(o.Rotation)

	if o.Fit != FitCover && o.Fit != FitContain && o.Fit != FitFill {
		o.Fit = FitCover
	}
	if o.TextPosition != PositionTop && o.TextPosition != PositionCenter && o.TextPosition != PositionBottom {
		o.TextPosition = PositionBottom
	}
	if o.TextSize != SizeSmall && o.TextSize != SizeMedium && o.TextSize != SizeLarge {
		o.TextSize = SizeMedium
	}

	if o.Crop != nil {
		o.Crop.X = clampFloat(o.Crop.X, 0, 1)
		o.Crop.Y = clampFloat(o.Crop.Y, 0, 1)
		o.Crop.W = clampFloat(o.Crop.W, 0, 1)
		o.Crop.H = clampFloat(o.Crop.H, 0, 1)
	}
}

// normalizeRotation reduces any angle to one of 0, 90, 180, 270, snapping
// to the nearest quarter turn.
func normalizeRotation(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return ((deg + 45) / 90 % 4) * 90
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func textScale(size string) int {
	switch size {
	case SizeSmall:
		return 1
	case SizeLarge:
		return 3
	default:
		return 2
	}
}
