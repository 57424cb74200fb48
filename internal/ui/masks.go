package ui

import (
	"image/color"

	"lifeboard/internal/core"
	"lifeboard/internal/render"
	"lifeboard/internal/sims/life"
)

// Layers tracks which debug overlays are visible and builds their pixel
// buffers, one RGBA pixel per cell.
type Layers struct {
	ShowGhost bool
	ShowHeat  bool

	ghostTint color.RGBA
	heat      []color.RGBA
	counts    []uint8
}

// NewLayers prepares the overlay colors. Ghost cells are drawn half
// transparent; the heat map ramps from transparent (no neighbors) to heat
// (eight neighbors).
func NewLayers(ghost, heat color.Color) *Layers {
	return &Layers{
		ghostTint: halfAlpha(ghost),
		heat:      render.Ramp(color.RGBAModel.Convert(heat).(color.RGBA), 9, 0xc0),
	}
}

// Toggle flips overlay n (1 ghost, 2 heat map).
func (l *Layers) Toggle(n int) {
	switch n {
	case 1:
		l.ShowGhost = !l.ShowGhost
	case 2:
		l.ShowHeat = !l.ShowHeat
	}
}

// Ghost fills buf with the snapshot board, the state reset returns to.
func (l *Layers) Ghost(buf []byte, snapshot *core.Grid) {
	render.FillBinaryRGBA(buf, snapshot, l.ghostTint, color.RGBA{})
}

// Heat fills buf with the alive-neighbor count of every cell.
func (l *Layers) Heat(buf []byte, live *core.Grid, engine *life.Engine) {
	if len(l.counts) != live.Len() {
		l.counts = make([]uint8, live.Len())
	}
	for i := range l.counts {
		l.counts[i] = uint8(engine.AliveNeighbors(live, i))
	}
	render.FillPaletteRGBA(buf, l.counts, l.heat)
}

func halfAlpha(c color.Color) color.RGBA {
	r, g, b, _ := c.RGBA()
	return color.RGBA{R: uint8(r >> 9), G: uint8(g >> 9), B: uint8(b >> 9), A: 0x80}
}
