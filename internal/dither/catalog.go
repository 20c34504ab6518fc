package dither

// Info describes one algorithm for UI consumption.
type Info struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Catalog lists every selectable algorithm in a stable order.
func Catalog() []Info {
	return []Info{
		{None, "Threshold", "Plain 50% cutoff, no dithering"},
		{FloydSteinberg, "Floyd-Steinberg", "Classic error diffusion, balanced detail"},
		{Atkinson, "Atkinson", "Error diffusion with lighter output, strong highlights"},
		{Sierra, "Sierra Lite", "Fast two-row error diffusion"},
		{Stucki, "Stucki", "Wide-kernel error diffusion, smooth gradients"},
		{Ordered, "Ordered 4x4", "Bayer 4x4 matrix, regular crosshatch pattern"},
		{Bayer, "Bayer 8x8", "Bayer 8x8 matrix, finer ordered pattern"},
	}
}
