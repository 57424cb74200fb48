//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"lifeboard/internal/core"
	"lifeboard/internal/render"
	"lifeboard/internal/session"
	"lifeboard/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keymap = map[ebiten.Key]core.Key{
	ebiten.KeyS:         core.KeyToggleRun,
	ebiten.KeyR:         core.KeyReset,
	ebiten.KeyC:         core.KeyClear,
	ebiten.KeyArrowUp:   core.KeyFaster,
	ebiten.KeyArrowDown: core.KeySlower,
	ebiten.KeyN:         core.KeyStep,
	ebiten.KeyG:         core.KeyRandomize,
}

// Options configures the Game.
type Options struct {
	HUDWidth int
	Title    string
	Layers   *ui.Layers
	Logger   *slog.Logger
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	screen  render.Screen
	queue   core.EventQueue
	primary *PointerTracker
	second  *PointerTracker

	hud      *ui.HUD
	overlay  *ui.Overlay
	hudWidth int

	now func() time.Time
	log *slog.Logger
}

// New constructs a Game for the provided session.
func New(sess *session.Session, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cellSize := sess.Controller().CellSize()
	g := &Game{
		sess:     sess,
		primary:  NewPointerTracker(core.ButtonPrimary),
		second:   NewPointerTracker(core.ButtonSecondary),
		hudWidth: opts.HUDWidth,
		now:      time.Now,
		log:      logger.With("component", "app"),
	}
	if opts.HUDWidth > 0 {
		g.hud = ui.NewHUD(sess, opts.HUDWidth, opts.Title)
	}
	if opts.Layers != nil {
		g.overlay = ui.NewOverlay(sess, cellSize, opts.Layers)
	}
	return g
}

// Update collects input and advances the session.
func (g *Game) Update() error {
	boardW, _ := g.sess.PixelSize()
	consumed := g.hud.Update(boardW)
	if g.overlay != nil {
		g.overlay.Update()
	}
	g.collect(consumed)
	if g.sess.Frame(&g.queue, g.now()) {
		g.log.Info("quit requested")
		return ebiten.Termination
	}
	return nil
}

func (g *Game) collect(hudClick bool) {
	if ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.queue.Push(core.Quit{})
	}

	x, y := ebiten.CursorPosition()
	g.primary.Sample(&g.queue, PointerSample{
		X:            x,
		Y:            y,
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !hudClick,
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	})
	g.second.Sample(&g.queue, PointerSample{
		X:            x,
		Y:            y,
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight),
	})

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if key, ok := keymap[k]; ok {
			g.queue.Push(core.KeyDown{Key: key})
		}
	}
}

// Draw renders the board, overlays and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Target = screen
	g.sess.Render(&g.screen)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	_, h := g.sess.PixelSize()
	g.hud.Draw(screen, h)
}

// Layout returns the logical screen size: the board plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.sess.PixelSize()
	return w + g.hudWidth, h
}
