package life

import (
	"errors"
	"fmt"

	"bitlife/pkg/core"
)

// ErrUnknownSeed is returned when a seed name is not registered.
var ErrUnknownSeed = errors.New("life: unknown seed")

// Registered seed names.
const (
	SeedModulo = "modulo"
	SeedSoup   = "soup"
	SeedEmpty  = "empty"
)

// ModuloSeed marks cell i alive when i is divisible by 2 or 7.
func ModuloSeed(g *core.BitGrid) {
	for i := 0; i < g.W*g.H; i++ {
		g.SetBit(i, i%2 == 0 || i%7 == 0)
	}
}

// SoupSeed fills the grid at the given density using a PCG stream seeded with
// rngSeed. The same arguments always produce the same grid.
func SoupSeed(rngSeed int64, density float64) core.Seeder {
	return func(g *core.BitGrid) {
		core.FillBits(core.NewRNG(rngSeed), g, density)
	}
}

// PatternSeed places p with its top-left corner at (row, col).
func PatternSeed(p Pattern, row, col int) core.Seeder {
	return func(g *core.BitGrid) { p.Place(g, row, col) }
}

// CenteredSeed places p in the middle of the grid.
func CenteredSeed(p Pattern) core.Seeder {
	return func(g *core.BitGrid) {
		rows, cols := p.Bounds()
		p.Place(g, (g.H-rows)/2, (g.W-cols)/2)
	}
}

func resolveSeed(name string) (core.Seeder, error) {
	s, ok := core.LookupSeed(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSeed, name)
	}
	return s, nil
}

func init() {
	core.RegisterSeed(SeedModulo, ModuloSeed)
	core.RegisterSeed(SeedSoup, SoupSeed(DefaultRNGSeed, DefaultDensity))
	core.RegisterSeed(SeedEmpty, func(*core.BitGrid) {})
	core.RegisterSeed(Glider.Name, CenteredSeed(Glider))
	core.RegisterSeed(Blinker.Name, CenteredSeed(Blinker))
	core.RegisterSeed(Spaceship.Name, PatternSeed(Spaceship, 2, 1))
}
