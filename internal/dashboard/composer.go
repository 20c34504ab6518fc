// Package dashboard lays the date/weather/events/tasks screen out onto a
// pixel buffer. Compose is a pure function of its model: same model, same
// raster, no clock or network reads.
package dashboard

import (
	"fmt"

	"github.com/BuKarData/inkframe/internal/bitmap"
	"github.com/BuKarData/inkframe/internal/font"
	"github.com/BuKarData/inkframe/internal/locale"
)

// Layout constants, exported so tests can address regions of the raster.
const (
	Width  = 200
	Height = 200

	HeaderHeight = 56

	MarginX = 8

	EventsHeaderY = 64
	EventsStartY  = 78
	LineHeight    = 12
	MaxEvents     = 3

	TodosHeaderY = 124
	TodosStartY  = 138
	MaxTodos     = 4

	FooterRuleY = 193

	// LineBudget is the column budget for one body line at scale 1.
	LineBudget = 30
	// WeatherBudget caps the condition text in the header.
	WeatherBudget = 20

	// EllipsisMarker ends any truncated line.
	EllipsisMarker = ".."
)

// Composer renders dashboard models. It holds only immutable tables and may
// be shared across concurrent requests.
type Composer struct {
	fonts   *font.Table
	locales *locale.Table
}

func NewComposer(fonts *font.Table, locales *locale.Table) *Composer {
	return &Composer{fonts: fonts, locales: locales}
}

// Compose renders the model onto a fresh 200x200 buffer. The output is
// already two-level, so callers pack it without dithering.
func (c *Composer) Compose(m Model) *bitmap.Buffer {
	buf := bitmap.New(Width, Height)
	strings := c.locales.Lookup(m.Lang)

	c.drawHeader(buf, m, strings)
	c.drawEvents(buf, m, strings)
	c.drawTodos(buf, m, strings)

	buf.DrawHLine(MarginX, FooterRuleY, Width-2*MarginX, true)

	return buf
}

// drawHeader fills the top band black and draws white-on-black: the large
// day number, weekday and month abbreviations with the year, and the
// weather reading when one is present.
func (c *Composer) drawHeader(buf *bitmap.Buffer, m Model, s locale.Strings) {
	buf.FillRect(0, 0, Width, HeaderHeight, true)

	c.fonts.DrawLargeNumber(buf, 12, 14, m.Date.Day(), false)

	textX := 48
	weekday := s.Weekdays[int(m.Date.Weekday())]
	month := s.Months[int(m.Date.Month())-1]
	c.fonts.DrawText(buf, textX, 12, weekday, 1, false)
	c.fonts.DrawText(buf, textX, 24, fmt.Sprintf("%s %d", month, m.Date.Year()), 1, false)

	if m.Weather != nil {
		condition := c.Truncate(m.Lang, m.Weather.Condition, WeatherBudget)
		line := fmt.Sprintf("%d° %s", m.Weather.Temp, condition)
		c.fonts.DrawText(buf, MarginX, HeaderHeight-14, line, 1, false)
	}
}

func (c *Composer) drawEvents(buf *bitmap.Buffer, m Model, s locale.Strings) {
	c.drawSectionHeader(buf, EventsHeaderY, s.EventsHeader)

	if len(m.Events) == 0 {
		c.fonts.DrawText(buf, MarginX, EventsStartY, s.NoEvents, 1, true)
		return
	}

	y := EventsStartY
	for i, ev := range m.Events {
		if i == MaxEvents {
			break
		}
		prefix := ev.Start.Format("15:04")
		if ev.AllDay {
			prefix = c.Truncate(m.Lang, s.AllDay, 8)
		}
		line := fmt.Sprintf("%s %s", prefix, c.sanitized(m.Lang, ev.Summary))
		c.fonts.DrawText(buf, MarginX, y, c.truncateClean(line, LineBudget), 1, true)
		y += LineHeight
	}
}

func (c *Composer) drawTodos(buf *bitmap.Buffer, m Model, s locale.Strings) {
	c.drawSectionHeader(buf, TodosHeaderY, s.TodosHeader)

	if len(m.Todos) == 0 {
		c.fonts.DrawText(buf, MarginX, TodosStartY, s.NoTodos, 1, true)
		return
	}

	y := TodosStartY
	for i, todo := range m.Todos {
		if i == MaxTodos {
			break
		}
		c.drawCheckbox(buf, MarginX, y, todo.Done)
		text := c.Truncate(m.Lang, todo.Text, LineBudget-2)
		c.fonts.DrawText(buf, MarginX+12, y, text, 1, true)
		y += LineHeight
	}
}

func (c *Composer) drawSectionHeader(buf *bitmap.Buffer, y int, title string) {
	w := c.fonts.DrawText(buf, MarginX, y, title, 1, true)
	buf.DrawHLine(MarginX, y+9, w, true)
}

func (c *Composer) drawCheckbox(buf *bitmap.Buffer, x, y int, done bool) {
	buf.DrawRect(x, y, 7, 7, true)
	if done {
		buf.FillRect(x+2, y+2, 3, 3, true)
	}
}

func (c *Composer) sanitized(lang, text string) string {
	return c.locales.Sanitize(lang, text)
}

// Truncate strips characters outside the locale allow-list, then shortens
// the result to the column budget, ending it with the ellipsis marker when
// anything was cut. Text within budget comes back unchanged.
func (c *Composer) Truncate(lang, text string, budget int) string {
	return c.truncateClean(c.sanitized(lang, text), budget)
}

func (c *Composer) truncateClean(text string, budget int) string {
	runes := []rune(text)
	if len(runes) <= budget {
		return text
	}
	keep := budget - len(EllipsisMarker)
	if keep < 0 {
		keep = 0
	}
	return string(runes[:keep]) + EllipsisMarker
}
