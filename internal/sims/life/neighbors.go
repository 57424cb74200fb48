package life

// Resolver answers neighbor queries for a fixed board size. The board does
// not wrap: off-board neighbors are absent.
type Resolver struct {
	w, h  int
	table [][]int
}

// NewResolver precomputes the in-bounds Moore neighborhood of every cell of
// a w×h board.
func NewResolver(w, h int) *Resolver {
	r := &Resolver{w: w, h: h, table: make([][]int, w*h)}
	backing := make([]int, 0, 8*w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			start := len(backing)
			for dy := -1; dy <= 1; dy++ {
				ny := y + dy
				if ny < 0 || ny >= h {
					continue
				}
				for dx := -1; dx <= 1; dx++ {
					nx := x + dx
					if nx < 0 || nx >= w {
						continue
					}
					if dx == 0 && dy == 0 {
						continue
					}
					backing = append(backing, ny*w+nx)
				}
			}
			r.table[y*w+x] = backing[start:len(backing):len(backing)]
		}
	}
	return r
}

// Neighbors returns the neighbor indices of cell i in row-major order. The
// slice is shared and must not be modified.
func (r *Resolver) Neighbors(i int) []int { return r.table[i] }

// Size returns the board dimensions the resolver was built for.
func (r *Resolver) Size() (int, int) { return r.w, r.h }
