// Package session owns one simulation: its boards, controller, engine and
// fixed-step clock. All work happens on the caller's goroutine.
package session

import (
	"image/color"
	"log/slog"
	"time"

	"lifeboard/internal/control"
	"lifeboard/internal/core"
	"lifeboard/internal/sims/life"
)

// Palette holds the render colors.
type Palette struct {
	Background color.Color
	Grid       color.Color
	Cell       color.Color
}

// DefaultPalette returns black background, dim grid lines and yellow cells.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{A: 0xff},
		Grid:       color.RGBA{R: 0x14, G: 0x14, B: 0x14, A: 0xff},
		Cell:       color.RGBA{R: 0xff, G: 0xff, A: 0xff},
	}
}

// Generation describes one evolution step, passed to the observer.
type Generation struct {
	Number     int
	Tick       uint64
	Population int
	Births     int
	Deaths     int
	Mode       control.Mode
}

// Options configures a Session.
type Options struct {
	DisplayWidth  int
	DisplayHeight int
	CellSize      int

	TPS              int
	MaxTicksPerFrame int

	Speed   control.Speed
	Seed    int64
	Density float64

	Palette Palette

	// OnGeneration is invoked after every evolution step.
	OnGeneration func(Generation)

	Logger *slog.Logger
}

// Session runs the frame loop for one board.
type Session struct {
	opts    Options
	w, h    int
	ctrl    *control.Controller
	engine  *life.Engine
	scratch *core.Grid
	clock   *core.FixedStep

	ticks      uint64
	generation int
	quit       bool

	log *slog.Logger
}

// New allocates the live, snapshot and scratch boards and starts in Editing.
func New(opts Options) *Session {
	if opts.CellSize <= 0 {
		opts.CellSize = 1
	}
	if opts.Palette == (Palette{}) {
		opts.Palette = DefaultPalette()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	w, h := core.Dimensions(opts.DisplayWidth, opts.DisplayHeight, opts.CellSize)
	s := &Session{
		opts:    opts,
		w:       w,
		h:       h,
		engine:  life.NewEngine(w, h),
		scratch: core.NewGrid(w, h),
		clock:   core.NewFixedStep(opts.TPS, opts.MaxTicksPerFrame),
		log:     logger,
	}
	s.ctrl = control.New(control.Options{
		Width:    w,
		Height:   h,
		CellSize: opts.CellSize,
		Speed:    opts.Speed,
		Seed:     opts.Seed,
		Density:  opts.Density,
		Logger:   logger,
	})
	return s
}

// Size returns the board dimensions in cells.
func (s *Session) Size() core.Size { return core.Size{W: s.w, H: s.h} }

// PixelSize returns the board dimensions in pixels.
func (s *Session) PixelSize() (int, int) {
	return s.w * s.opts.CellSize, s.h * s.opts.CellSize
}

// Controller exposes the interaction controller.
func (s *Session) Controller() *control.Controller { return s.ctrl }

// Engine exposes the evolution engine.
func (s *Session) Engine() *life.Engine { return s.engine }

// Ticks returns the monotonic tick counter.
func (s *Session) Ticks() uint64 { return s.ticks }

// Generation returns the number of evolution steps performed.
func (s *Session) Generation() int { return s.generation }

// Quitting reports whether a Quit event has been seen.
func (s *Session) Quitting() bool { return s.quit }

// Seed places a registered pattern centered on the board. It reports false
// for unknown names.
func (s *Session) Seed(name string) bool {
	p, ok := life.Lookup(name)
	if !ok {
		return false
	}
	x, y := p.Center(s.ctrl.Live())
	s.ctrl.Seed(p, x, y)
	return true
}

// Frame drains src, then runs every tick due at now. It returns true once a
// Quit event has been received.
func (s *Session) Frame(src core.EventSource, now time.Time) bool {
	for {
		ev, ok := src.PollEvent()
		if !ok {
			break
		}
		if _, isQuit := ev.(core.Quit); isQuit {
			s.quit = true
			continue
		}
		s.ctrl.Handle(ev)
	}
	if s.ctrl.TakeStepRequest() {
		s.evolve()
	}
	for n := s.clock.Advance(now); n > 0; n-- {
		s.Tick()
	}
	return s.quit
}

// Tick advances the tick counter and evolves when running and the counter
// satisfies the speed divisor.
func (s *Session) Tick() {
	s.ticks++
	if !s.ctrl.Running() {
		return
	}
	speed := s.ctrl.Speed()
	if speed == 0 || s.ticks%uint64(speed) == 0 {
		s.evolve()
	}
}

// evolve computes the next generation into the scratch board and swaps it
// in. An empty board stops a running simulation without a step.
func (s *Session) evolve() {
	live := s.ctrl.Live()
	if !s.engine.StepInto(s.scratch, live) {
		s.ctrl.Stop()
		return
	}
	births, deaths := 0, 0
	for i := 0; i < live.Len(); i++ {
		was, is := live.Alive(i), s.scratch.Alive(i)
		switch {
		case is && !was:
			births++
		case was && !is:
			deaths++
		}
	}
	s.scratch = s.ctrl.Commit(s.scratch)
	s.generation++
	if s.opts.OnGeneration != nil {
		s.opts.OnGeneration(Generation{
			Number:     s.generation,
			Tick:       s.ticks,
			Population: s.ctrl.Live().Population(),
			Births:     births,
			Deaths:     deaths,
			Mode:       s.ctrl.Mode(),
		})
	}
}

// Render draws the live board: background, one filled rectangle per alive
// cell, then the grid lines.
func (s *Session) Render(c core.Canvas) {
	pal := s.opts.Palette
	cs := s.opts.CellSize
	c.Clear(pal.Background)

	live := s.ctrl.Live()
	for i := 0; i < live.Len(); i++ {
		if !live.Alive(i) {
			continue
		}
		x, y := live.Coord(i)
		c.DrawFilledRect(x*cs, y*cs, cs, cs, pal.Cell)
	}

	pw, ph := s.PixelSize()
	for y := 1; y < s.h; y++ {
		c.DrawLine(0, y*cs, pw, y*cs, pal.Grid)
	}
	for x := 1; x < s.w; x++ {
		c.DrawLine(x*cs, 0, x*cs, ph, pal.Grid)
	}
}

// Run drives surface until a Quit event arrives, rendering and presenting
// once per frame. now supplies the frame timestamps.
func (s *Session) Run(surface core.Surface, now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	s.log.Info("session started", "width", s.w, "height", s.h, "tps", s.opts.TPS)
	for {
		quit := s.Frame(surface, now())
		s.Render(surface)
		surface.Present()
		if quit {
			break
		}
	}
	s.log.Info("session finished", "ticks", s.ticks, "generations", s.generation)
}
