// Package life implements Conway's Game of Life on a toroidal, bit-packed
// grid.
//
// A Universe owns two grids of identical size. Step reads only the current
// generation, writes every cell of the scratch grid and then swaps the two,
// so no cell ever observes a neighbour's next-generation value. Mutations
// (ToggleCell, KillCell, ClearAll, ResetToSeed) edit the current generation
// directly and bypass the rule.
//
// A Universe is not safe for concurrent use. Callers serialise Step, the
// mutation methods and View.
package life

import "bitlife/pkg/core"

// Universe implements Conway's Game of Life with toroidal wrapping.
type Universe struct {
	cur  *core.BitGrid
	nxt  *core.BitGrid
	seed *core.BitGrid
	gen  uint64
}

// New returns a Universe with the provided dimensions seeded with the
// default pattern.
func New(w, h int) (*Universe, error) {
	return NewWithSeeder(w, h, ModuloSeed)
}

// NewWithConfig returns a Universe built from cfg. The seed name is resolved
// through the seed registry.
func NewWithConfig(cfg Config) (*Universe, error) {
	seed, err := cfg.Seeder()
	if err != nil {
		return nil, err
	}
	return NewWithSeeder(cfg.Width, cfg.Height, seed)
}

// NewWithSeeder returns a Universe whose construction-time pattern is written
// by seed. A nil seed leaves every cell dead.
func NewWithSeeder(w, h int, seed core.Seeder) (*Universe, error) {
	snap, err := core.NewBitGrid(w, h)
	if err != nil {
		return nil, err
	}
	if seed != nil {
		seed(snap)
	}
	cur, _ := core.NewBitGrid(w, h)
	nxt, _ := core.NewBitGrid(w, h)
	cur.CopyFrom(snap)
	return &Universe{cur: cur, nxt: nxt, seed: snap}, nil
}

// Name returns the simulation identifier.
func (u *Universe) Name() string { return "life" }

// Generation reports how many steps ran since construction, ClearAll or
// ResetToSeed.
func (u *Universe) Generation() uint64 { return u.gen }

// LiveNeighborCount sums the eight toroidally wrapped neighbours of
// (row, col). It panics if (row, col) is outside the grid.
func (u *Universe) LiveNeighborCount(row, col int) int {
	u.cur.Index(row, col)
	return u.neighbors(row, col)
}

func (u *Universe) neighbors(row, col int) int {
	w, h := u.cur.W, u.cur.H
	n := 0
	for dr := -1; dr <= 1; dr++ {
		base := ((row + dr + h) % h) * w
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if u.cur.Bit(base + (col+dc+w)%w) {
				n++
			}
		}
	}
	return n
}

// Step advances the simulation by one generation.
func (u *Universe) Step() {
	w, h := u.cur.W, u.cur.H
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			idx := row*w + col
			u.nxt.SetBit(idx, NextState(u.cur.Bit(idx), u.neighbors(row, col)))
		}
	}
	u.cur, u.nxt = u.nxt, u.cur
	u.gen++
}
