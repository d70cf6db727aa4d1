package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitlife/pkg/sims/life"
)

// evolve renders generations 0..n of u as consecutive frames.
func evolve(u *life.Universe, n int) []byte {
	var b strings.Builder
	for gen := 0; gen <= n; gen++ {
		fmt.Fprintf(&b, "gen %d\n", gen)
		b.WriteString(Text(u.View(), u.Width(), u.Height()))
		if gen < n {
			u.Step()
		}
	}
	return []byte(b.String())
}

func TestTextFramesGolden(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		seed  string
		steps int
	}{
		{name: "blinker", w: 5, h: 5, seed: life.Blinker.Name, steps: 2},
		{name: "glider", w: 6, h: 6, seed: "", steps: 4},
		{name: "spaceship", w: 6, h: 6, seed: life.Spaceship.Name, steps: 4},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u *life.Universe
			var err error
			if tt.seed == "" {
				u, err = life.NewWithSeeder(tt.w, tt.h, life.PatternSeed(life.Glider, 0, 0))
			} else {
				u, err = life.NewWithConfig(life.Config{Width: tt.w, Height: tt.h, Seed: tt.seed})
			}
			require.NoError(t, err)
			g.Assert(t, tt.name, evolve(u, tt.steps))
		})
	}
}

func TestTextBitOrder(t *testing.T) {
	// 3x3 grid: indices 0, 4 and 8 live in byte 0 bits 0 and 4 and byte 1 bit 0.
	cells := []byte{0b0001_0001, 0b0000_0001}
	assert.Equal(t, "#..\n.#.\n..#\n", Text(cells, 3, 3))
}
