//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Screen adapts an ebiten image to core.Canvas. Target is replaced every
// frame by the game's Draw.
type Screen struct {
	Target *ebiten.Image
}

// Clear implements core.Canvas.
func (s *Screen) Clear(c color.Color) {
	s.Target.Fill(c)
}

// DrawFilledRect implements core.Canvas.
func (s *Screen) DrawFilledRect(x, y, w, h int, c color.Color) {
	vector.DrawFilledRect(s.Target, float32(x), float32(y), float32(w), float32(h), c, false)
}

// DrawLine implements core.Canvas with a one pixel stroke centered on the
// pixel row or column.
func (s *Screen) DrawLine(x1, y1, x2, y2 int, c color.Color) {
	vector.StrokeLine(s.Target, float32(x1)+0.5, float32(y1)+0.5, float32(x2)+0.5, float32(y2)+0.5, 1, c, false)
}
