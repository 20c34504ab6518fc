// Package font renders a fixed bitmap font onto a pixel buffer. The glyph
// tables are immutable after construction; a Table can be shared by any
// number of concurrent renders.
package font

import (
	"fmt"

	"github.com/BuKarData/inkframe/internal/bitmap"
)

const (
	glyphWidth  = 5
	glyphHeight = 7
	// one blank column between characters, scaled with the glyph
	glyphSpacing = 1

	largeDigitWidth  = 10
	largeDigitHeight = 14
	largeDigitGap    = 2
)

// Table holds the glyph data. Construct one with NewTable and pass it by
// reference to whatever needs to draw text; there is deliberately no package
// level instance.
type Table struct {
	glyphs map[rune][glyphWidth]byte
	digits map[rune][largeDigitHeight]string
}

func NewTable() *Table {
	return &Table{glyphs: glyphs5x7, digits: largeDigits}
}

// Covers reports whether the table has a real glyph for r. Text layout uses
// this to strip characters that would render as placeholders.
func (t *Table) Covers(r rune) bool {
	_, ok := t.glyphs[r]
	return ok
}

// CharWidth returns the horizontal advance of one character at the given
// scale, including trailing spacing.
func CharWidth(scale int) int {
	if scale < 1 {
		scale = 1
	}
	return (glyphWidth + glyphSpacing) * scale
}

// CharHeight returns the glyph height at the given scale.
func CharHeight(scale int) int {
	if scale < 1 {
		scale = 1
	}
	return glyphHeight * scale
}

// DrawChar draws a single character with its top-left corner at (x, y) and
// returns the horizontal advance. A character without a glyph draws a small
// placeholder box instead; arbitrary user text never fails to render.
func (t *Table) DrawChar(buf *bitmap.Buffer, x, y int, r rune, scale int, black bool) int {
	if scale < 1 {
		scale = 1
	}

	columns, ok := t.glyphs[r]
	if !ok {
		t.drawPlaceholder(buf, x, y, scale, black)
		return CharWidth(scale)
	}

	for col := 0; col < glyphWidth; col++ {
		bits := columns[col]
		for row := 0; row < glyphHeight; row++ {
			if bits&(1<<row) == 0 {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					buf.SetPixel(x+col*scale+dx, y+row*scale+dy, black)
				}
			}
		}
	}

	return CharWidth(scale)
}

func (t *Table) drawPlaceholder(buf *bitmap.Buffer, x, y, scale int, black bool) {
	w := (glyphWidth - 1) * scale
	h := glyphHeight * scale
	for i := 0; i < scale; i++ {
		buf.DrawRect(x+i, y+i, w-2*i, h-2*i, black)
	}
}

// DrawText draws s left to right starting at (x, y) and returns the total
// width consumed.
func (t *Table) DrawText(buf *bitmap.Buffer, x, y int, s string, scale int, black bool) int {
	width := 0
	for _, r := range s {
		width += t.DrawChar(buf, x+width, y, r, scale, black)
	}
	return width
}

// TextWidth measures s without drawing it.
func (t *Table) TextWidth(s string, scale int) int {
	n := 0
	for range s {
		n++
	}
	return n * CharWidth(scale)
}

// DrawTextCentered draws s horizontally centered within fieldWidth starting
// at fieldX.
func (t *Table) DrawTextCentered(buf *bitmap.Buffer, fieldX, fieldWidth, y int, s string, scale int, black bool) {
	w := t.TextWidth(s, scale)
	t.DrawText(buf, fieldX+(fieldWidth-w)/2, y, s, scale, black)
}

// DrawLargeDigit draws one 10x14 digit and returns its advance. Non-digit
// runes draw the placeholder box at an equivalent scale.
func (t *Table) DrawLargeDigit(buf *bitmap.Buffer, x, y int, r rune, black bool) int {
	rows, ok := t.digits[r]
	if !ok {
		t.drawPlaceholder(buf, x, y, 2, black)
		return largeDigitWidth + largeDigitGap
	}

	for row, mask := range rows {
		for col := 0; col < largeDigitWidth; col++ {
			if mask[col] == '#' {
				buf.SetPixel(x+col, y+row, black)
			}
		}
	}
	return largeDigitWidth + largeDigitGap
}

// DrawLargeNumber renders n as two zero-padded 10x14 digits, the form the
// dashboard uses for the day of month. Values outside 0..99 are reduced
// modulo 100.
func (t *Table) DrawLargeNumber(buf *bitmap.Buffer, x, y, n int, black bool) int {
	if n < 0 {
		n = -n
	}
	n %= 100
	width := 0
	for _, r := range fmt.Sprintf("%02d", n) {
		width += t.DrawLargeDigit(buf, x+width, y, r, black)
	}
	return width
}
