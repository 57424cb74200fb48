package control

import (
	"testing"

	"lifeboard/internal/core"
	"lifeboard/internal/sims/life"
)

const cell = 10

func newTestController(w, h int) *Controller {
	return New(Options{Width: w, Height: h, CellSize: cell, Speed: DefaultSpeed(), Seed: 1, Density: 0.4})
}

// px returns the pixel center of cell (x, y).
func px(x, y int) (int, int) { return x*cell + cell/2, y*cell + cell/2 }

func press(c *Controller, x, y int) {
	mx, my := px(x, y)
	c.Handle(core.PointerDown{Button: core.ButtonPrimary, X: mx, Y: my})
}

func drag(c *Controller, x, y int) {
	mx, my := px(x, y)
	c.Handle(core.PointerMove{X: mx, Y: my})
}

func release(c *Controller) {
	c.Handle(core.PointerUp{Button: core.ButtonPrimary})
}

func alive(c *Controller, x, y int) bool {
	g := c.Live()
	return g.Alive(g.Index(x, y))
}

func TestInitialState(t *testing.T) {
	c := newTestController(8, 6)
	if c.Mode() != ModeEditing {
		t.Fatalf("initial mode = %v, want editing", c.Mode())
	}
	if ed, ok := c.State().(Editing); !ok || ed.Stroke != nil {
		t.Fatalf("initial state = %#v, want Editing without stroke", c.State())
	}
	if !c.Live().Empty() || !c.Snapshot().Empty() {
		t.Fatal("boards must start dead")
	}
	if c.Speed() != 10 {
		t.Fatalf("initial speed = %d, want 10", c.Speed())
	}
}

func TestPressTogglesLiveAndSnapshot(t *testing.T) {
	c := newTestController(8, 6)
	press(c, 2, 3)
	if !alive(c, 2, 3) {
		t.Fatal("press must toggle the cell alive")
	}
	if !c.Snapshot().Alive(c.Snapshot().Index(2, 3)) {
		t.Fatal("press must toggle the snapshot in lockstep")
	}
	ed, ok := c.State().(Editing)
	if !ok || ed.Stroke == nil || !ed.Stroke.Value {
		t.Fatalf("press must start a stroke painting alive, got %#v", c.State())
	}
	release(c)

	press(c, 2, 3)
	if alive(c, 2, 3) {
		t.Fatal("second press must toggle the cell back")
	}
	if ed := c.State().(Editing); ed.Stroke == nil || ed.Stroke.Value {
		t.Fatal("second press must start an erasing stroke")
	}
}

func TestDragPaintsWithPressValue(t *testing.T) {
	c := newTestController(8, 6)
	// Prior state: a mix of alive and dead cells along the stroke path.
	c.Live().Set(c.Live().Index(3, 1), true)
	c.Live().Set(c.Live().Index(5, 1), true)

	press(c, 1, 1) // dead -> alive, paint value alive
	path := []int{2, 3, 4, 5, 3, 2}
	for _, x := range path {
		drag(c, x, 1)
	}
	for x := 1; x <= 5; x++ {
		if !alive(c, x, 1) {
			t.Fatalf("cell (%d,1) must be painted alive", x)
		}
	}
	release(c)
	if !c.Snapshot().Equal(c.Live()) {
		t.Fatal("release must capture the live board as the snapshot")
	}

	press(c, 3, 1) // alive -> dead, paint value dead
	for _, x := range []int{4, 5, 6, 4} {
		drag(c, x, 1)
	}
	release(c)
	for x := 3; x <= 6; x++ {
		if alive(c, x, 1) {
			t.Fatalf("cell (%d,1) must be erased", x)
		}
	}
	for x := 1; x <= 2; x++ {
		if !alive(c, x, 1) {
			t.Fatalf("cell (%d,1) outside the erase stroke must stay alive", x)
		}
	}
}

func TestDragWithoutPressDoesNothing(t *testing.T) {
	c := newTestController(4, 4)
	drag(c, 1, 1)
	if !c.Live().Empty() {
		t.Fatal("motion without a stroke must not paint")
	}
}

func TestPointerOffBoardRejected(t *testing.T) {
	c := newTestController(4, 4)
	c.Handle(core.PointerDown{Button: core.ButtonPrimary, X: -3, Y: 5})
	c.Handle(core.PointerDown{Button: core.ButtonPrimary, X: 4 * cell, Y: 5})
	c.Handle(core.PointerDown{Button: core.ButtonPrimary, X: 5, Y: 4*cell + 1})
	if !c.Live().Empty() {
		t.Fatal("presses off the board must be ignored")
	}
	if ed := c.State().(Editing); ed.Stroke != nil {
		t.Fatal("press off the board must not start a stroke")
	}

	press(c, 0, 0)
	c.Handle(core.PointerMove{X: -1, Y: -1})
	c.Handle(core.PointerMove{X: 400, Y: 5})
	if c.Live().Population() != 1 {
		t.Fatalf("off-board drag must be skipped, population = %d", c.Live().Population())
	}
	drag(c, 1, 0)
	if !alive(c, 1, 0) {
		t.Fatal("stroke must survive an off-board excursion")
	}
}

func TestNonPrimaryButtonsIgnored(t *testing.T) {
	c := newTestController(4, 4)
	mx, my := px(1, 1)
	c.Handle(core.PointerDown{Button: core.ButtonSecondary, X: mx, Y: my})
	if !c.Live().Empty() {
		t.Fatal("secondary button must not paint")
	}
	press(c, 1, 1)
	c.Handle(core.PointerUp{Button: core.ButtonMiddle})
	if ed := c.State().(Editing); ed.Stroke == nil {
		t.Fatal("non-primary release must not end the stroke")
	}
}

func TestStartRequiresLiveCells(t *testing.T) {
	c := newTestController(4, 4)
	c.Command(core.KeyToggleRun)
	if c.Running() {
		t.Fatal("start with an empty board must be ignored")
	}
	press(c, 1, 1)
	release(c)
	c.Command(core.KeyToggleRun)
	if !c.Running() {
		t.Fatal("start with live cells must enter Running")
	}
	c.Command(core.KeyToggleRun)
	if c.Running() {
		t.Fatal("toggle while running must return to Editing")
	}
}

func TestStartFinishesActiveStroke(t *testing.T) {
	c := newTestController(4, 4)
	press(c, 0, 0)
	drag(c, 1, 0)
	c.Command(core.KeyToggleRun)
	if !c.Running() {
		t.Fatal("start during a stroke must run")
	}
	if !c.Snapshot().Equal(c.Live()) {
		t.Fatal("start must capture the stroke into the snapshot")
	}
	release(c)
	if !c.Running() {
		t.Fatal("release while running must be ignored")
	}
}

func TestEditingGesturesIgnoredWhileRunning(t *testing.T) {
	c := newTestController(6, 6)
	press(c, 1, 1)
	release(c)
	c.Start()
	before := c.Live().Clone()

	press(c, 3, 3)
	drag(c, 4, 4)
	release(c)
	c.Command(core.KeyClear)
	c.Command(core.KeyRandomize)
	c.Command(core.KeyStep)

	if !c.Live().Equal(before) {
		t.Fatal("editing gestures must not touch the board while running")
	}
	if !c.Running() {
		t.Fatal("editing gestures must not leave Running")
	}
	if c.TakeStepRequest() {
		t.Fatal("single step must not be requested while running")
	}
}

func TestClearWhileEditing(t *testing.T) {
	c := newTestController(4, 4)
	press(c, 1, 1)
	release(c)
	c.Command(core.KeyClear)
	if !c.Live().Empty() || !c.Snapshot().Empty() {
		t.Fatal("clear must empty live and snapshot boards")
	}
}

func TestResetRestoresSnapshotIdempotently(t *testing.T) {
	c := newTestController(8, 8)
	engine := life.NewEngine(8, 8)
	blinker, _ := life.Lookup("blinker")
	c.Seed(blinker, 2, 2)
	press(c, 7, 7)
	release(c)
	want := c.Snapshot().Clone()

	c.Start()
	for i := 0; i < 3; i++ {
		next, _ := engine.Step(c.Live())
		c.Commit(next)
	}
	if c.Live().Equal(want) {
		t.Fatal("evolution should have changed the live board")
	}

	c.Command(core.KeyReset)
	if c.Running() {
		t.Fatal("reset must cancel Running")
	}
	if !c.Live().Equal(want) {
		t.Fatal("reset must restore the last snapshot")
	}
	state := c.State()
	live := c.Live().Clone()
	snap := c.Snapshot().Clone()
	speed := c.Speed()

	c.Command(core.KeyReset)
	if c.State() != state || c.Speed() != speed {
		t.Fatal("second reset must not change state")
	}
	if !c.Live().Equal(live) || !c.Snapshot().Equal(snap) {
		t.Fatal("second reset must not change the boards")
	}
}

func TestResetCancelsStroke(t *testing.T) {
	c := newTestController(4, 4)
	press(c, 0, 0)
	c.Reset()
	if ed := c.State().(Editing); ed.Stroke != nil {
		t.Fatal("reset must cancel an active stroke")
	}
	drag(c, 1, 1)
	if alive(c, 1, 1) {
		t.Fatal("drag after reset must not paint")
	}
}

func TestEmptyBoardAutoStops(t *testing.T) {
	c := newTestController(6, 6)
	engine := life.NewEngine(6, 6)
	// Diagonal of three: the ends die after one step, the middle after two.
	for _, p := range [][2]int{{1, 1}, {2, 2}, {3, 3}} {
		press(c, p[0], p[1])
		release(c)
	}
	c.Start()

	next, ok := engine.Step(c.Live())
	if !ok {
		t.Fatal("first step must evolve")
	}
	c.Commit(next)
	if !c.Running() {
		t.Fatal("board with a survivor must keep running")
	}
	if c.Live().Population() != 1 {
		t.Fatalf("population after first step = %d, want 1", c.Live().Population())
	}

	next, _ = engine.Step(c.Live())
	c.Commit(next)
	if c.Running() {
		t.Fatal("controller must stop at the step the board becomes empty")
	}
}

func TestCommitReturnsPreviousBoard(t *testing.T) {
	c := newTestController(3, 3)
	prev := c.Live()
	next := core.NewGrid(3, 3)
	if got := c.Commit(next); got != prev {
		t.Fatal("Commit must hand back the previous live board")
	}
	if c.Live() != next {
		t.Fatal("Commit must install the new board")
	}
}

func TestSpeedBounds(t *testing.T) {
	c := newTestController(3, 3)
	for i := 0; i < 50; i++ {
		c.Command(core.KeySlower)
		if c.Speed() > 60 {
			t.Fatalf("speed exceeded max: %d", c.Speed())
		}
	}
	if c.Speed() != 60 {
		t.Fatalf("speed after repeated slower = %d, want 60", c.Speed())
	}
	for i := 0; i < 50; i++ {
		c.Command(core.KeyFaster)
		if c.Speed() < 0 {
			t.Fatalf("speed below min: %d", c.Speed())
		}
	}
	if c.Speed() != 0 {
		t.Fatalf("speed after repeated faster = %d, want 0", c.Speed())
	}
}

func TestSpeedClampsOffStepValues(t *testing.T) {
	c := New(Options{Width: 2, Height: 2, CellSize: 1, Speed: Speed{Initial: 58, Min: 0, Max: 60, Step: 5}})
	c.Slower()
	if c.Speed() != 60 {
		t.Fatalf("slower from 58 = %d, want clamp to 60", c.Speed())
	}
	if c.SetSpeed(99) {
		t.Fatal("SetSpeed beyond max must not report a change once clamped")
	}
	if !c.SetSpeed(-4) || c.Speed() != 0 {
		t.Fatalf("SetSpeed(-4) = %d, want 0", c.Speed())
	}
}

func TestSpeedAdjustableWhileRunning(t *testing.T) {
	c := newTestController(3, 3)
	press(c, 1, 1)
	release(c)
	c.Start()
	c.Command(core.KeyFaster)
	if c.Speed() != 5 {
		t.Fatalf("speed while running = %d, want 5", c.Speed())
	}
}

func TestStepRequest(t *testing.T) {
	c := newTestController(3, 3)
	c.Command(core.KeyStep)
	if !c.TakeStepRequest() {
		t.Fatal("step key must request a generation while editing")
	}
	if c.TakeStepRequest() {
		t.Fatal("step request must be consumed")
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	a := newTestController(12, 12)
	b := newTestController(12, 12)
	a.Command(core.KeyRandomize)
	b.Command(core.KeyRandomize)
	if !a.Live().Equal(b.Live()) {
		t.Fatal("same seed must randomize identically")
	}
	if a.Live().Empty() {
		t.Fatal("randomize must produce live cells")
	}
	if !a.Snapshot().Equal(a.Live()) {
		t.Fatal("randomize must capture the snapshot")
	}
	first := a.Live().Clone()
	a.Command(core.KeyRandomize)
	if a.Live().Equal(first) {
		t.Fatal("repeated randomize should produce a different board")
	}
}

func TestSeedCapturesSnapshot(t *testing.T) {
	c := newTestController(10, 10)
	glider, _ := life.Lookup("glider")
	if n := c.Seed(glider, 1, 1); n != 5 {
		t.Fatalf("seeded %d cells, want 5", n)
	}
	if !c.Snapshot().Equal(c.Live()) {
		t.Fatal("seed must capture the snapshot")
	}
}
