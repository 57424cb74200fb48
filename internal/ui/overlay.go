//go:build ebiten

package ui

import (
	"lifeboard/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging visuals on top of the board.
type Overlay struct {
	sess   *session.Session
	scale  int
	layers *Layers

	maskImg *ebiten.Image
	maskBuf []byte
}

// NewOverlay constructs an overlay for the session's board.
func NewOverlay(sess *session.Session, scale int, layers *Layers) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{sess: sess, scale: scale, layers: layers}
}

// Update toggles layers on the digit keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.layers.Toggle(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.layers.Toggle(2)
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.layers.ShowGhost && !o.layers.ShowHeat {
		return
	}
	size := o.sess.Size()
	total := size.W * size.H
	if o.maskImg == nil {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}
	ctrl := o.sess.Controller()
	if o.layers.ShowHeat {
		o.layers.Heat(o.maskBuf, ctrl.Live(), o.sess.Engine())
		o.blit(screen)
	}
	if o.layers.ShowGhost {
		o.layers.Ghost(o.maskBuf, ctrl.Snapshot())
		o.blit(screen)
	}
}

func (o *Overlay) blit(screen *ebiten.Image) {
	o.maskImg.WritePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.maskImg, op)
}
