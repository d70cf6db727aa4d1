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

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// FillBits marks each cell of g alive with probability density, walking the
// cells in linear index order so a given seed always yields the same grid.
func FillBits(r *RNG, g *BitGrid, density float64) {
	for i := 0; i < g.W*g.H; i++ {
		g.SetBit(i, r.Chance(density))
	}
}
