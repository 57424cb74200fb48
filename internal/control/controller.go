// Package control turns input events into board edits and run-mode changes.
package control

import (
	"log/slog"

	"lifeboard/internal/core"
	"lifeboard/internal/sims/life"
)

// Speed bounds the evolve divisor: a generation is produced on every tick
// whose counter is a multiple of the divisor, 0 meaning every tick.
type Speed struct {
	Initial int
	Min     int
	Max     int
	Step    int
}

// DefaultSpeed returns the standard divisor range.
func DefaultSpeed() Speed {
	return Speed{Initial: 10, Min: 0, Max: 60, Step: 5}
}

// Options configures a Controller.
type Options struct {
	Width    int
	Height   int
	CellSize int
	Speed    Speed

	// Seed and Density drive the randomize command.
	Seed    int64
	Density float64

	Logger *slog.Logger
}

// Controller owns the live and snapshot boards and the edit/run state.
type Controller struct {
	cellSize int
	live     *core.Grid
	snapshot *core.Grid

	state         State
	speed         int
	bounds        Speed
	stepRequested bool

	rng     *core.RNG
	density float64
	log     *slog.Logger
}

// New allocates both boards all-dead and starts in Editing.
func New(opts Options) *Controller {
	if opts.CellSize <= 0 {
		opts.CellSize = 1
	}
	if opts.Speed.Step <= 0 {
		opts.Speed.Step = 1
	}
	if opts.Speed.Max < opts.Speed.Min {
		opts.Speed.Max = opts.Speed.Min
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	c := &Controller{
		cellSize: opts.CellSize,
		live:     core.NewGrid(opts.Width, opts.Height),
		snapshot: core.NewGrid(opts.Width, opts.Height),
		state:    Editing{},
		bounds:   opts.Speed,
		rng:      core.NewRNG(opts.Seed),
		density:  opts.Density,
		log:      logger.With("component", "controller"),
	}
	c.speed = c.clampSpeed(opts.Speed.Initial)
	return c
}

// Live returns the authoritative current generation.
func (c *Controller) Live() *core.Grid { return c.live }

// Snapshot returns the reset target.
func (c *Controller) Snapshot() *core.Grid { return c.snapshot }

// State returns the tagged state.
func (c *Controller) State() State { return c.state }

// Mode returns the top-level mode.
func (c *Controller) Mode() Mode { return c.state.Mode() }

// Running reports whether the simulation evolves on ticks.
func (c *Controller) Running() bool { return c.state.Mode() == ModeRunning }

// Speed returns the current evolve divisor.
func (c *Controller) Speed() int { return c.speed }

// SpeedBounds returns the configured divisor range.
func (c *Controller) SpeedBounds() Speed { return c.bounds }

// CellSize returns the pixel size of one cell.
func (c *Controller) CellSize() int { return c.cellSize }

// Handle dispatches one input event. Quit is left to the caller.
func (c *Controller) Handle(ev core.Event) {
	switch e := ev.(type) {
	case core.PointerDown:
		if e.Button == core.ButtonPrimary {
			c.Press(e.X, e.Y)
		}
	case core.PointerMove:
		c.Drag(e.X, e.Y)
	case core.PointerUp:
		if e.Button == core.ButtonPrimary {
			c.Release()
		}
	case core.KeyDown:
		c.Command(e.Key)
	}
}

// Command executes a bound key.
func (c *Controller) Command(k core.Key) {
	switch k {
	case core.KeyToggleRun:
		c.ToggleRun()
	case core.KeyReset:
		c.Reset()
	case core.KeyClear:
		c.Clear()
	case core.KeyFaster:
		c.Faster()
	case core.KeySlower:
		c.Slower()
	case core.KeyStep:
		c.RequestStep()
	case core.KeyRandomize:
		c.Randomize()
	}
}

// ToggleRun starts an editing board or stops a running one.
func (c *Controller) ToggleRun() {
	if c.Running() {
		c.Stop()
		return
	}
	c.Start()
}

// Start enters Running when the live board has at least one alive cell.
// An active stroke is finished first.
func (c *Controller) Start() bool {
	ed, ok := c.state.(Editing)
	if !ok {
		return false
	}
	if c.live.Empty() {
		c.log.Debug("start ignored on empty board")
		return false
	}
	if ed.Stroke != nil {
		c.snapshot.CopyFrom(c.live)
	}
	c.stepRequested = false
	c.state = Running{}
	c.log.Info("simulation started", "population", c.live.Population(), "speed", c.speed)
	return true
}

// Stop returns to Editing.
func (c *Controller) Stop() {
	if !c.Running() {
		return
	}
	c.state = Editing{}
	c.log.Info("simulation stopped", "population", c.live.Population())
}

// Reset restores the live board from the snapshot and cancels any run or
// gesture.
func (c *Controller) Reset() {
	c.live.CopyFrom(c.snapshot)
	c.stepRequested = false
	if c.Running() {
		c.log.Info("simulation reset", "population", c.live.Population())
	}
	c.state = Editing{}
}

// Clear kills every cell of the live and snapshot boards. Ignored while
// running.
func (c *Controller) Clear() {
	if c.Running() {
		c.log.Debug("clear ignored while running")
		return
	}
	c.live.Clear()
	c.snapshot.Clear()
}

// Faster lowers the divisor by one step, not below the minimum.
func (c *Controller) Faster() { c.SetSpeed(c.speed - c.bounds.Step) }

// Slower raises the divisor by one step, not above the maximum.
func (c *Controller) Slower() { c.SetSpeed(c.speed + c.bounds.Step) }

// SetSpeed sets the divisor, clamped to the configured range. It reports
// whether the value changed.
func (c *Controller) SetSpeed(v int) bool {
	v = c.clampSpeed(v)
	if v == c.speed {
		return false
	}
	c.speed = v
	c.log.Debug("speed changed", "speed", v)
	return true
}

func (c *Controller) clampSpeed(v int) int {
	if v < c.bounds.Min {
		return c.bounds.Min
	}
	if v > c.bounds.Max {
		return c.bounds.Max
	}
	return v
}

// Press starts a paint stroke at pixel (px, py): the snapshot captures the
// live board, the cell is toggled on both boards, and its new state becomes
// the stroke's paint value. Ignored while running or off the board.
func (c *Controller) Press(px, py int) {
	if _, ok := c.state.(Editing); !ok {
		return
	}
	i, ok := c.cellAt(px, py)
	if !ok {
		return
	}
	c.snapshot.CopyFrom(c.live)
	value := c.live.Toggle(i)
	c.snapshot.Set(i, value)
	c.state = Editing{Stroke: &Stroke{Value: value}}
}

// Drag paints the cell under pixel (px, py) with the stroke's value.
func (c *Controller) Drag(px, py int) {
	ed, ok := c.state.(Editing)
	if !ok || ed.Stroke == nil {
		return
	}
	i, ok := c.cellAt(px, py)
	if !ok {
		return
	}
	c.live.Set(i, ed.Stroke.Value)
	c.snapshot.Set(i, ed.Stroke.Value)
}

// Release ends the stroke and captures the final board as the snapshot.
func (c *Controller) Release() {
	ed, ok := c.state.(Editing)
	if !ok || ed.Stroke == nil {
		return
	}
	c.snapshot.CopyFrom(c.live)
	c.state = Editing{}
}

// Randomize fills the live board from the controller's RNG and captures it
// as the snapshot. Ignored while running.
func (c *Controller) Randomize() {
	if c.Running() {
		c.log.Debug("randomize ignored while running")
		return
	}
	c.rng.Fill(c.live, c.density)
	c.snapshot.CopyFrom(c.live)
	c.state = Editing{}
}

// Seed stamps a pattern onto the live board at cell (x, y) and captures the
// result as the snapshot. It returns the number of cells placed.
func (c *Controller) Seed(p life.Pattern, x, y int) int {
	if c.Running() {
		return 0
	}
	n := p.Place(c.live, x, y)
	c.snapshot.CopyFrom(c.live)
	c.log.Debug("pattern seeded", "pattern", p.Name, "x", x, "y", y, "cells", n)
	return n
}

// RequestStep asks for one generation while editing.
func (c *Controller) RequestStep() {
	if c.Running() {
		return
	}
	c.stepRequested = true
}

// TakeStepRequest reports and clears a pending single-step request.
func (c *Controller) TakeStepRequest() bool {
	req := c.stepRequested
	c.stepRequested = false
	return req
}

// Commit installs next as the live board and returns the previous live board
// for reuse as scratch. A running simulation whose new generation is empty
// returns to Editing.
func (c *Controller) Commit(next *core.Grid) *core.Grid {
	prev := c.live
	c.live = next
	if c.Running() && next.Empty() {
		c.state = Editing{}
		c.log.Info("simulation stopped", "reason", "board empty")
	}
	return prev
}

// cellAt converts a pixel position to a cell index, rejecting positions off
// the board.
func (c *Controller) cellAt(px, py int) (int, bool) {
	if px < 0 || py < 0 {
		return 0, false
	}
	x, y := px/c.cellSize, py/c.cellSize
	if !c.live.Contains(x, y) {
		return 0, false
	}
	return c.live.Index(x, y), true
}
