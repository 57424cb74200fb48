package core

// Cell is one board position. X and Y are derived from the index and never
// change; Alive is the only state.
type Cell struct {
	X, Y  int
	Alive bool
}

// Grid stores a fixed W×H board of boolean cells in row-major order.
type Grid struct {
	W, H int
	data []bool
}

// Dimensions derives board dimensions from a display area and cell size.
// Each dimension is at least 1.
func Dimensions(displayW, displayH, cellSize int) (int, int) {
	if cellSize <= 0 {
		cellSize = 1
	}
	w, h := displayW/cellSize, displayH/cellSize
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return w, h
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]bool, w*h)}
}

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.data) }

// Index returns the linear index for coordinates (x, y). Callers must check
// Contains first.
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Coord returns the coordinates of index i.
func (g *Grid) Coord(i int) (int, int) { return i % g.W, i / g.W }

// Contains reports whether (x, y) lies on the board.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Alive reports the state of cell i.
func (g *Grid) Alive(i int) bool { return g.data[i] }

// Set assigns the state of cell i.
func (g *Grid) Set(i int, alive bool) { g.data[i] = alive }

// Toggle flips cell i and returns its new state.
func (g *Grid) Toggle(i int) bool {
	g.data[i] = !g.data[i]
	return g.data[i]
}

// Cell returns the record for index i.
func (g *Grid) Cell(i int) Cell {
	x, y := g.Coord(i)
	return Cell{X: x, Y: y, Alive: g.data[i]}
}

// Live returns the alive cells in index order.
func (g *Grid) Live() []Cell {
	var out []Cell
	for i, alive := range g.data {
		if alive {
			out = append(out, g.Cell(i))
		}
	}
	return out
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// CopyFrom overwrites g with the contents of src. Both grids must share
// dimensions.
func (g *Grid) CopyFrom(src *Grid) { copy(g.data, src.data) }

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.W, g.H)
	copy(c.data, g.data)
	return c
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.W != o.W || g.H != o.H {
		return false
	}
	for i, v := range g.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// Empty reports whether no cell is alive.
func (g *Grid) Empty() bool {
	for _, alive := range g.data {
		if alive {
			return false
		}
	}
	return true
}

// Population counts the alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.data {
		if alive {
			n++
		}
	}
	return n
}
