// This file implements packing of buffer pixel data into the bit
// structure the e-ink client consumes.

package bitmap

import "fmt"

const bitsPerWord = 8

// packThreshold is the fixed cutoff used when collapsing 8-bit pixels to one
// bit: anything above it is white. Packing a buffer that has not been
// dithered therefore silently thresholds it, so Pack must only be called on
// dithered or already-binary content.
const packThreshold = 127

// Packed is a bitmap packed one bit per pixel in raster order. Bit i
// (row-major, i = y*width+x) lives at data[i/8], bit position 7-(i%8), with
// bit value 1 meaning white. The payload carries no header; width and height
// travel out of band. This layout is the wire contract with the device and
// must stay bit-exact.
type Packed struct {
	data          []byte
	width, height int
}

func (p *Packed) Width() int {
	return p.width
}

func (p *Packed) Height() int {
	return p.height
}

func (p *Packed) Data() []byte {
	return p.data
}

func (p *Packed) String() string {
	return fmt.Sprintf("Packed(%d,%d)", p.width, p.height)
}

// GetBit returns the bit at the (x, y) coordinate, either 0 or 1.
func (p *Packed) GetBit(x, y int) byte {
	i := y*p.width + x
	return (p.data[i/bitsPerWord] >> (bitsPerWord - 1 - i%bitsPerWord)) & 1
}

// Pack collapses a buffer to one bit per pixel. Unlike row-padded framebuffer
// layouts, rows are packed back to back: the total length is
// ceil(width*height/8) exactly.
func Pack(b *Buffer) *Packed {
	width, height := b.Width(), b.Height()
	total := width * height
	data := make([]byte, (total+bitsPerWord-1)/bitsPerWord)

	pixels := b.Pixels()
	for i, v := range pixels {
		if v > packThreshold {
			data[i/bitsPerWord] |= 1 << (bitsPerWord - 1 - i%bitsPerWord)
		}
	}

	return &Packed{data: data, width: width, height: height}
}
