package render

import (
	"image/color"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
)

const (
	liveGlyph = "█"
	deadGlyph = "·"
)

// Terminal is a core.Canvas that rasterizes filled rectangles onto a
// character grid, one character per cell. Lines are ignored.
type Terminal struct {
	w, h     int
	cellSize int
	cells    []bool
	au       aurora.Aurora
}

// NewTerminal returns a canvas for a w x h board drawn with the given cell
// size. colored enables ANSI escapes.
func NewTerminal(w, h, cellSize int, colored bool) *Terminal {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Terminal{
		w:        w,
		h:        h,
		cellSize: cellSize,
		cells:    make([]bool, w*h),
		au:       aurora.NewAurora(colored),
	}
}

// Clear implements core.Canvas.
func (t *Terminal) Clear(color.Color) {
	for i := range t.cells {
		t.cells[i] = false
	}
}

// DrawFilledRect marks every cell the rectangle covers.
func (t *Terminal) DrawFilledRect(x, y, w, h int, _ color.Color) {
	x0, y0 := x/t.cellSize, y/t.cellSize
	x1, y1 := (x+w-1)/t.cellSize, (y+h-1)/t.cellSize
	for cy := max(y0, 0); cy <= min(y1, t.h-1); cy++ {
		for cx := max(x0, 0); cx <= min(x1, t.w-1); cx++ {
			t.cells[cy*t.w+cx] = true
		}
	}
}

// DrawLine implements core.Canvas. Grid lines have no terminal rendition.
func (t *Terminal) DrawLine(_, _, _, _ int, _ color.Color) {}

// String renders the character grid, one row per line.
func (t *Terminal) String() string {
	live := t.au.Yellow(liveGlyph).String()
	dead := t.au.Gray(8, deadGlyph).String()
	var b strings.Builder
	for y := 0; y < t.h; y++ {
		for x := 0; x < t.w; x++ {
			if t.cells[y*t.w+x] {
				b.WriteString(live)
			} else {
				b.WriteString(dead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteTo writes the rendered grid to w.
func (t *Terminal) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.String())
	return int64(n), err
}

// Status formats a colored label/value pair for the terminal.
func (t *Terminal) Status(label string, value any) string {
	return t.au.Colorize(label, aurora.GreenFg).String() + ": " + t.au.Sprintf("%v", value)
}
