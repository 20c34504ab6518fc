package bitmap

import "fmt"

// White and Black are the only values a Buffer may hold once it has been
// dithered. Before dithering any value in [0,255] is a valid gray level.
const (
	Black = 0x00
	White = 0xFF
)

// Buffer is an 8-bit grayscale raster, row-major with the origin at the top
// left. A new buffer starts out fully white, which is the canvas default for
// e-paper content.
type Buffer struct {
	width, height int
	pixels        []uint8
}

func New(width, height int) *Buffer {
	pixels := make([]uint8, width*height)
	for i := range pixels {
		pixels[i] = White
	}
	return &Buffer{width: width, height: height, pixels: pixels}
}

func (b *Buffer) Width() int {
	return b.width
}

func (b *Buffer) Height() int {
	return b.height
}

// Pixels exposes the backing slice. Callers iterating the whole raster
// (dithering, packing) index it as y*Width()+x.
func (b *Buffer) Pixels() []uint8 {
	return b.pixels
}

func (b *Buffer) String() string {
	return fmt.Sprintf("Buffer(%d,%d)", b.width, b.height)
}

// At returns the gray value at (x, y), or White for out-of-bounds reads.
func (b *Buffer) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return White
	}
	return b.pixels[y*b.width+x]
}

// SetGray writes a raw gray level. Out-of-bounds writes are dropped rather
// than treated as an error, so callers drawing near edges need no clipping of
// their own.
func (b *Buffer) SetGray(x, y int, v uint8) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.pixels[y*b.width+x] = v
}

// SetPixel writes a binary pixel, black or white.
func (b *Buffer) SetPixel(x, y int, black bool) {
	if black {
		b.SetGray(x, y, Black)
	} else {
		b.SetGray(x, y, White)
	}
}

func (b *Buffer) FillRect(x, y, w, h int, black bool) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			b.SetPixel(x+dx, y+dy, black)
		}
	}
}

func (b *Buffer) DrawHLine(x, y, length int, black bool) {
	for dx := 0; dx < length; dx++ {
		b.SetPixel(x+dx, y, black)
	}
}

func (b *Buffer) DrawVLine(x, y, length int, black bool) {
	for dy := 0; dy < length; dy++ {
		b.SetPixel(x, y+dy, black)
	}
}

func (b *Buffer) DrawRect(x, y, w, h int, black bool) {
	b.DrawHLine(x, y, w, black)
	b.DrawHLine(x, y+h-1, w, black)
	b.DrawVLine(x, y, h, black)
	b.DrawVLine(x+w-1, y, h, black)
}

// Invert swaps black and white in place. It is meant for binary buffers but
// is well defined on gray levels too.
func (b *Buffer) Invert() {
	for i, v := range b.pixels {
		b.pixels[i] = White - v
	}
}

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pixels := make([]uint8, len(b.pixels))
	copy(pixels, b.pixels)
	return &Buffer{width: b.width, height: b.height, pixels: pixels}
}
