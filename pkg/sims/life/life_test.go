package life

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitlife/pkg/core"
)

func newUniverse(t *testing.T, w, h int, seed core.Seeder) *Universe {
	t.Helper()
	u, err := NewWithSeeder(w, h, seed)
	require.NoError(t, err)
	return u
}

func aliveSet(u *Universe) map[Cell]bool {
	set := map[Cell]bool{}
	for row := 0; row < u.Height(); row++ {
		for col := 0; col < u.Width(); col++ {
			if u.Alive(row, col) {
				set[Cell{row, col}] = true
			}
		}
	}
	return set
}

func cells(cs ...Cell) map[Cell]bool {
	set := map[Cell]bool{}
	for _, c := range cs {
		set[c] = true
	}
	return set
}

func TestBlinkerOscillation(t *testing.T) {
	u := newUniverse(t, 5, 5, PatternSeed(Blinker, 2, 1))
	horizontal := cells(Cell{2, 1}, Cell{2, 2}, Cell{2, 3})
	vertical := cells(Cell{1, 2}, Cell{2, 2}, Cell{3, 2})
	require.Equal(t, horizontal, aliveSet(u))

	u.Step()
	assert.Equal(t, vertical, aliveSet(u), "after one step")

	u.Step()
	assert.Equal(t, horizontal, aliveSet(u), "after second step")
	assert.Equal(t, uint64(2), u.Generation())
}

func TestGliderTranslatesEveryFourSteps(t *testing.T) {
	for _, start := range []Cell{{0, 0}, {3, 2}, {6, 6}, {7, 0}} {
		t.Run(fmt.Sprintf("%d,%d", start.Row, start.Col), func(t *testing.T) {
			u := newUniverse(t, 8, 8, PatternSeed(Glider, start.Row, start.Col))
			for shift := 1; shift <= 8; shift++ {
				for i := 0; i < 4; i++ {
					u.Step()
				}
				want := newUniverse(t, 8, 8, PatternSeed(Glider, start.Row+shift, start.Col+shift))
				require.Equal(t, want.View(), u.View(), "after %d steps", shift*4)
				assert.Equal(t, 5, u.Population())
			}
			back := newUniverse(t, 8, 8, PatternSeed(Glider, start.Row, start.Col))
			assert.Equal(t, back.View(), u.View(), "a full lap around the torus")
		})
	}
}

func TestAllDeadStaysDead(t *testing.T) {
	u := newUniverse(t, 13, 7, nil)
	for i := 0; i < 50; i++ {
		u.Step()
		require.Zero(t, u.Population())
	}
	for _, b := range u.View() {
		assert.Zero(t, b)
	}
}

func TestBlockIsStill(t *testing.T) {
	block := Pattern{Name: "block", Cells: []Cell{{0, 0}, {0, 1}, {1, 0}, {1, 1}}}
	// The block straddles both seams.
	u := newUniverse(t, 6, 6, PatternSeed(block, 5, 5))
	before := slices.Clone(u.View())
	for i := 0; i < 5; i++ {
		u.Step()
	}
	assert.Equal(t, before, u.View())
}

func TestLiveNeighborCountWraps(t *testing.T) {
	u := newUniverse(t, 4, 4, nil)
	u.ToggleCell(3, 3)
	assert.Equal(t, 1, u.LiveNeighborCount(0, 0), "south-east corner is north-west of origin")
	assert.Equal(t, 0, u.LiveNeighborCount(3, 3), "a cell is not its own neighbour")

	u.ToggleCell(0, 3)
	u.ToggleCell(3, 0)
	u.ToggleCell(1, 1)
	assert.Equal(t, 4, u.LiveNeighborCount(0, 0))
	assert.Equal(t, 3, u.LiveNeighborCount(0, 2))

	full := newUniverse(t, 5, 5, func(g *core.BitGrid) {
		for i := 0; i < 25; i++ {
			g.SetBit(i, true)
		}
	})
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			assert.Equal(t, 8, full.LiveNeighborCount(row, col))
		}
	}
}

func TestNextStateTable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		assert.Equal(t, n == 2 || n == 3, NextState(true, n), "alive with %d", n)
		assert.Equal(t, n == 3, NextState(false, n), "dead with %d", n)
	}
}

func TestStepUsesOnlyCurrentGeneration(t *testing.T) {
	// A full row on a 3-wide torus. Rows 0 and 2 are born and row 1
	// survives; an in-place update would see the births while visiting row 1.
	u := newUniverse(t, 3, 4, PatternSeed(Blinker, 1, 0))
	u.Step()
	assert.Equal(t, cells(
		Cell{0, 0}, Cell{0, 1}, Cell{0, 2},
		Cell{1, 0}, Cell{1, 1}, Cell{1, 2},
		Cell{2, 0}, Cell{2, 1}, Cell{2, 2},
	), aliveSet(u))
}

func TestToggleTwiceRestores(t *testing.T) {
	u, err := NewWithConfig(Config{Width: 9, Height: 6, Seed: SeedSoup, RNGSeed: 3, Density: 0.4})
	require.NoError(t, err)
	before := slices.Clone(u.View())
	for row := 0; row < u.Height(); row++ {
		for col := 0; col < u.Width(); col++ {
			was := u.Alive(row, col)
			u.ToggleCell(row, col)
			require.NotEqual(t, was, u.Alive(row, col))
			u.ToggleCell(row, col)
			require.Equal(t, was, u.Alive(row, col))
		}
	}
	assert.Equal(t, before, u.View())
}

func TestKillCell(t *testing.T) {
	u := newUniverse(t, 4, 4, PatternSeed(Blinker, 1, 0))
	u.KillCell(1, 1)
	u.KillCell(3, 3)
	assert.Equal(t, cells(Cell{1, 0}, Cell{1, 2}), aliveSet(u))
}

func TestClearAll(t *testing.T) {
	u, err := New(17, 11)
	require.NoError(t, err)
	require.NotZero(t, u.Population())
	u.Step()

	u.ClearAll()
	assert.Equal(t, make([]byte, u.ByteLen()), u.View())
	assert.Zero(t, u.Generation())
	assert.Equal(t, 17, u.Width())
	assert.Equal(t, 11, u.Height())
}

func TestResetToSeed(t *testing.T) {
	u, err := NewWithConfig(Config{Width: 20, Height: 15, Seed: SeedSoup, RNGSeed: 11, Density: 0.3})
	require.NoError(t, err)
	seed := slices.Clone(u.View())

	for i := 0; i < 7; i++ {
		u.Step()
	}
	u.ToggleCell(0, 0)
	u.ResetToSeed()
	assert.Equal(t, seed, u.View())
	assert.Zero(t, u.Generation())

	u.ClearAll()
	u.ResetToSeed()
	assert.Equal(t, seed, u.View(), "reset after clear restores the seed, not all-dead")
}

func TestMutationOutOfRangePanics(t *testing.T) {
	u, err := New(6, 4)
	require.NoError(t, err)
	before := slices.Clone(u.View())

	calls := map[string]func(){
		"toggle row": func() { u.ToggleCell(4, 0) },
		"toggle col": func() { u.ToggleCell(0, 6) },
		"kill neg":   func() { u.KillCell(-1, 0) },
		"kill col":   func() { u.KillCell(0, -1) },
		"alive":      func() { u.Alive(4, 6) },
		"neighbors":  func() { u.LiveNeighborCount(0, 6) },
	}
	for name, fn := range calls {
		t.Run(name, func(t *testing.T) {
			defer func() {
				err, ok := recover().(error)
				require.True(t, ok)
				assert.True(t, errors.Is(err, core.ErrOutOfRange))
			}()
			fn()
		})
	}
	assert.Equal(t, before, u.View())
}

func TestConstructionRejectsNonPositive(t *testing.T) {
	_, err := New(0, 10)
	assert.ErrorIs(t, err, core.ErrInvalidSize)
	_, err = NewWithConfig(Config{Width: 10, Height: -1, Seed: SeedModulo})
	assert.ErrorIs(t, err, core.ErrInvalidSize)
}

func TestUnknownSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = "nope"
	_, err := NewWithConfig(cfg)
	assert.ErrorIs(t, err, ErrUnknownSeed)
}

func TestViewLength(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {3, 3}, {8, 8}, {7, 9}, {120, 120}, {64, 1}, {1, 65}} {
		u, err := New(dims[0], dims[1])
		require.NoError(t, err)
		want := (dims[0]*dims[1] + 7) / 8
		assert.Len(t, u.View(), want)
		assert.Equal(t, want, u.ByteLen())
		u.Step()
		assert.Len(t, u.View(), want)
	}
}

func TestIdenticalEnginesStayIdentical(t *testing.T) {
	cfg := Config{Width: 31, Height: 17, Seed: SeedSoup, RNGSeed: 99, Density: 0.45}
	a, err := NewWithConfig(cfg)
	require.NoError(t, err)
	b, err := NewWithConfig(cfg)
	require.NoError(t, err)

	for gen := 0; gen < 40; gen++ {
		for _, u := range []*Universe{a, b} {
			u.ToggleCell(gen%17, (gen*3)%31)
			if gen%5 == 0 {
				u.KillCell((gen*7)%17, gen%31)
			}
			if gen == 20 {
				u.Stamp(DeadStamp, 16, 30, false)
			}
			u.Step()
		}
		require.Equal(t, a.View(), b.View(), "generation %d", gen)
	}
}

func TestModuloSeed(t *testing.T) {
	u, err := New(8, 2)
	require.NoError(t, err)
	// Indices 0,2,4,6,7 then 8,10,12,14.
	assert.Equal(t, []byte{0b1101_0101, 0b0101_0101}, u.View())
}

func TestSpaceshipSeedMatchesFixture(t *testing.T) {
	u, err := NewWithConfig(Config{Width: 6, Height: 6, Seed: Spaceship.Name})
	require.NoError(t, err)
	assert.Equal(t, cells(Cell{2, 1}, Cell{2, 3}, Cell{3, 2}, Cell{3, 3}, Cell{4, 2}), aliveSet(u))
}

func TestStampWraps(t *testing.T) {
	u := newUniverse(t, 5, 4, func(g *core.BitGrid) {
		for i := 0; i < 20; i++ {
			g.SetBit(i, true)
		}
	})
	u.Stamp(DeadStamp, 3, 4, false)
	dead := map[Cell]bool{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 5; col++ {
			if !u.Alive(row, col) {
				dead[Cell{row, col}] = true
			}
		}
	}
	assert.Equal(t, cells(Cell{3, 4}, Cell{3, 0}, Cell{3, 1}, Cell{0, 4}, Cell{1, 0}), dead)
}

func TestRegisteredSeeds(t *testing.T) {
	names := core.SeedNames()
	for _, want := range []string{SeedModulo, SeedSoup, SeedEmpty, Glider.Name, Blinker.Name, Spaceship.Name} {
		assert.Contains(t, names, want)
	}
	for _, name := range names {
		cfg := DefaultConfig()
		cfg.Seed = name
		u, err := NewWithConfig(cfg)
		require.NoError(t, err, name)
		assert.Len(t, u.View(), u.ByteLen())
	}
}

func BenchmarkStep(b *testing.B) {
	for _, size := range []int{64, 120, 256, 512} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			u, err := New(size, size)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				u.Step()
			}
		})
	}
}
