package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Fill sets every cell of g alive with probability density. Values outside
// [0, 1] are clamped.
func (r *RNG) Fill(g *Grid, density float64) {
	switch {
	case density <= 0:
		g.Clear()
		return
	case density > 1:
		density = 1
	}
	for i := range g.data {
		g.data[i] = r.r.Float64() < density
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
