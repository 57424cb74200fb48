package life

import "lifeboard/internal/core"

// Engine applies Conway's rule (B3/S23) on a bounded board.
type Engine struct {
	nb *Resolver
}

// NewEngine returns an engine for w×h boards.
func NewEngine(w, h int) *Engine {
	return &Engine{nb: NewResolver(w, h)}
}

// Resolver exposes the engine's neighborhood table.
func (e *Engine) Resolver() *Resolver { return e.nb }

// Step returns the next generation of live as a new grid. ok is false when
// live has no alive cells; the returned grid is then an empty board and no
// rule was applied.
func (e *Engine) Step(live *core.Grid) (next *core.Grid, ok bool) {
	next = core.NewGrid(live.W, live.H)
	return next, e.StepInto(next, live)
}

// StepInto writes the next generation of src into dst, reading only src.
// Both grids must match the engine's dimensions and must be distinct. It
// reports false, leaving dst cleared, when src has no alive cells.
func (e *Engine) StepInto(dst, src *core.Grid) bool {
	if src.Empty() {
		dst.Clear()
		return false
	}
	total := src.Len()
	for i := 0; i < total; i++ {
		neighbors := e.AliveNeighbors(src, i)
		alive := src.Alive(i)
		dst.Set(i, (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3))
	}
	return true
}

// AliveNeighbors counts the alive neighbors of cell i in g.
func (e *Engine) AliveNeighbors(g *core.Grid, i int) int {
	n := 0
	for _, j := range e.nb.Neighbors(i) {
		if g.Alive(j) {
			n++
		}
	}
	return n
}
