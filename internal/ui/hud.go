//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"lifeboard/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Source is what the HUD displays and adjusts.
type Source interface {
	core.ParameterProvider
	core.ParameterControlsProvider
}

// HUD renders the parameter panel to the right of the board.
type HUD struct {
	source Source
	panel  *Panel
	image  *ebiten.Image
	offset int
	title  string
}

// NewHUD constructs a HUD for source with the given panel width.
func NewHUD(source Source, width int, title string) *HUD {
	if title == "" {
		title = "Controls"
	}
	return &HUD{source: source, panel: NewPanel(source, width), title: title}
}

// Update refreshes the snapshot and handles clicks on the panel, which
// starts at panelOffsetX in screen space. It reports whether the click was
// consumed so the board does not also see it.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil {
		return false
	}
	h.offset = panelOffsetX
	h.panel.Refresh(h.source.Parameters())
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < panelOffsetX {
		return false
	}
	h.panel.Click(mx-panelOffsetX, my)
	return true
}

// Draw paints the panel at the offset passed to Update.
func (h *HUD) Draw(screen *ebiten.Image, height int) {
	if h == nil || h.panel.Width() <= 0 || height <= 0 {
		return
	}
	if h.image == nil || h.image.Bounds().Dy() != height {
		h.image = ebiten.NewImage(h.panel.Width(), height)
	}
	h.image.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	h.drawStatus()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.offset), 0)
	screen.DrawImage(h.image, op)
}

var (
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonColor = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	idleColor   = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	text.Draw(h.image, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)
	for i := range h.panel.controls {
		state := &h.panel.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.image, state.control.Label, face, panelPadding, labelY, labelColor)

		valueColor := labelColor
		if !state.hasValue {
			valueColor = mutedColor
		}
		valueWidth := text.BoundString(face, state.value).Dx()
		text.Draw(h.image, state.value, face, state.minusRect.Min.X-buttonGap-valueWidth, labelY, valueColor)

		h.drawButton(state.minusRect, "-", h.panel.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", h.panel.canAdjust(state, 1))
	}
}

func (h *HUD) drawStatus() {
	face := basicfont.Face7x13
	y := h.panel.StatusTop()
	for _, line := range h.panel.StatusLines() {
		text.Draw(h.image, line, face, panelPadding, y, mutedColor)
		y += statusSpacing
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonColor, labelColor
	if !enabled {
		bg, fg = idleColor, mutedColor
	}
	vector.DrawFilledRect(h.image, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.image, label, face, x, y, fg)
}
