package life

import (
	"sort"

	"lifeboard/internal/core"
)

// Pattern is a named arrangement of live cells relative to its top-left
// corner.
type Pattern struct {
	Name        string
	Description string
	Cells       [][2]int
}

// Bounds returns the width and height of the pattern's bounding box.
func (p Pattern) Bounds() (int, int) {
	w, h := 0, 0
	for _, c := range p.Cells {
		if c[0]+1 > w {
			w = c[0] + 1
		}
		if c[1]+1 > h {
			h = c[1] + 1
		}
	}
	return w, h
}

// Place sets the pattern's cells alive on g with its corner at (ox, oy).
// Cells falling outside the board are skipped. It returns the number of
// cells placed.
func (p Pattern) Place(g *core.Grid, ox, oy int) int {
	placed := 0
	for _, c := range p.Cells {
		x, y := ox+c[0], oy+c[1]
		if !g.Contains(x, y) {
			continue
		}
		g.Set(g.Index(x, y), true)
		placed++
	}
	return placed
}

// Center returns the corner offset that centers the pattern on g.
func (p Pattern) Center(g *core.Grid) (int, int) {
	w, h := p.Bounds()
	return (g.W - w) / 2, (g.H - h) / 2
}

var patterns = map[string]Pattern{}

// Register adds a pattern under its name.
func Register(p Pattern) {
	if p.Name == "" || len(p.Cells) == 0 {
		return
	}
	patterns[p.Name] = p
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// Names lists the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(Pattern{
		Name:        "glider",
		Description: "spaceship travelling one cell diagonally (+1,+1) every 4 generations",
		Cells:       [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	})
	Register(Pattern{
		Name:        "blinker",
		Description: "period 2 oscillator, horizontal phase",
		Cells:       [][2]int{{0, 1}, {1, 1}, {2, 1}},
	})
	Register(Pattern{
		Name:        "block",
		Description: "2x2 still life",
		Cells:       [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	})
	Register(Pattern{
		Name:        "beacon",
		Description: "period 2 oscillator",
		Cells:       [][2]int{{0, 0}, {1, 0}, {0, 1}, {3, 2}, {2, 3}, {3, 3}},
	})
	Register(Pattern{
		Name:        "toad",
		Description: "period 2 oscillator",
		Cells:       [][2]int{{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}},
	})
	Register(Pattern{
		Name:        "lwss",
		Description: "lightweight spaceship",
		Cells:       [][2]int{{1, 0}, {4, 0}, {0, 1}, {0, 2}, {4, 2}, {0, 3}, {1, 3}, {2, 3}, {3, 3}},
	})
	Register(Pattern{
		Name:        "r-pentomino",
		Description: "methuselah that stabilizes after 1103 generations on an unbounded board",
		Cells:       [][2]int{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}},
	})
	Register(Pattern{
		Name:        "diehard",
		Description: "methuselah that vanishes after 130 generations on an unbounded board",
		Cells:       [][2]int{{6, 0}, {0, 1}, {1, 1}, {1, 2}, {5, 2}, {6, 2}, {7, 2}},
	})
}
