package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitlife/internal/core"
	pcore "bitlife/pkg/core"
	"bitlife/pkg/sims/life"
)

func newDriver(t *testing.T, w, h int, seed string, opts Options) (*Driver, *life.Universe) {
	t.Helper()
	u, err := life.NewWithConfig(life.Config{Width: w, Height: h, Seed: seed})
	require.NoError(t, err)
	return NewDriver(u, opts), u
}

func TestNewDriverDefaults(t *testing.T) {
	d, _ := newDriver(t, 4, 4, life.SeedEmpty, Options{TicksPerFrame: 500})
	o := d.Options()
	assert.Equal(t, 5, o.CellSize)
	assert.Equal(t, 60, o.TPS)
	assert.Equal(t, MaxTicksPerFrame, o.TicksPerFrame)
	assert.Equal(t, DefaultOptions().Palette, o.Palette)
	assert.Equal(t, "bitlife", o.Title)
}

func TestFrameAdvancesTicksPerFrame(t *testing.T) {
	d, u := newDriver(t, 8, 8, life.SeedModulo, Options{TicksPerFrame: 3})
	now := time.Unix(0, 0)

	d.Frame(now)
	assert.Equal(t, uint64(3), u.Generation())

	d.SetTicksPerFrame(0)
	assert.Equal(t, MinTicksPerFrame, d.TicksPerFrame())
	d.Frame(now.Add(16 * time.Millisecond))
	assert.Equal(t, uint64(4), u.Generation())
	assert.Equal(t, 1, d.Stats().Len())
}

func TestPauseAndStepOnce(t *testing.T) {
	d, u := newDriver(t, 5, 5, life.Blinker.Name, Options{TicksPerFrame: 2})
	now := time.Unix(0, 0)

	d.TogglePause()
	require.True(t, d.Paused())
	d.Frame(now)
	assert.Zero(t, u.Generation())

	d.StepOnce()
	d.Frame(now)
	d.Frame(now)
	assert.Equal(t, uint64(1), u.Generation(), "a single step, then paused again")
	assert.True(t, d.Paused())

	d.TogglePause()
	d.Frame(now)
	assert.Equal(t, uint64(3), u.Generation())
}

func TestClickTogglesCellUnderPointer(t *testing.T) {
	d, u := newDriver(t, 10, 8, life.SeedEmpty, Options{CellSize: 5})

	d.Click(13, 19, false)
	assert.True(t, u.Alive(3, 2))
	d.Click(14, 20, false)
	assert.False(t, u.Alive(3, 2), "second click on the same cell toggles back")

	d.Click(9999, 9999, false)
	assert.True(t, u.Alive(7, 9), "clicks beyond the board clamp to the last cell")
}

var wantStamped = []life.Cell{
	{Row: 3, Col: 4}, {Row: 3, Col: 0}, {Row: 3, Col: 1}, {Row: 0, Col: 4}, {Row: 1, Col: 0},
}

func fullUniverse(t *testing.T) *life.Universe {
	t.Helper()
	u, err := life.NewWithSeeder(5, 4, func(g *pcore.BitGrid) {
		for i := 0; i < 20; i++ {
			g.SetBit(i, true)
		}
	})
	require.NoError(t, err)
	return u
}

// plainSim hides Universe.Stamp so the driver falls back to KillCell.
type plainSim struct{ core.Sim }

func TestCtrlClickFallsBackToKillCell(t *testing.T) {
	u := fullUniverse(t)
	d := NewDriver(plainSim{u}, Options{CellSize: 1})
	_, stamps := d.Sim().(Stamper)
	require.False(t, stamps)

	d.Click(9, 7, true)
	assert.Equal(t, 15, u.Population())
	for _, c := range wantStamped {
		assert.False(t, u.Alive(c.Row, c.Col), "cell %v", c)
	}
}

func TestCtrlClickStampsDeadCellsWithWrap(t *testing.T) {
	u := fullUniverse(t)
	d := NewDriver(u, Options{CellSize: 1})
	var _ Stamper = u

	// Pixel (9, 7) is cell (3, 4) with a 2px stride.
	d.Click(9, 7, true)
	assert.Equal(t, 15, u.Population())
	for _, c := range wantStamped {
		assert.False(t, u.Alive(c.Row, c.Col), "cell %v", c)
	}
}

func TestAffected(t *testing.T) {
	d, _ := newDriver(t, 6, 6, life.SeedEmpty, Options{})
	assert.Equal(t, []life.Cell{{Row: 2, Col: 3}}, d.Affected(2, 3, false))
	assert.Equal(t, []life.Cell{
		{Row: 5, Col: 5}, {Row: 5, Col: 0}, {Row: 5, Col: 1}, {Row: 0, Col: 5}, {Row: 1, Col: 0},
	}, d.Affected(5, 5, true))
}

func TestResetAndClear(t *testing.T) {
	d, u := newDriver(t, 12, 12, life.SeedModulo, Options{})
	seed := append([]byte(nil), u.View()...)

	d.Frame(time.Unix(0, 0))
	d.Clear()
	assert.Zero(t, u.Population())
	d.Reset()
	assert.Equal(t, seed, u.View())
}

func TestParametersAndControls(t *testing.T) {
	d, u := newDriver(t, 7, 3, life.Blinker.Name, Options{})
	u.Step()
	d.Stats().Add(60)

	snap := d.Parameters()
	require.Len(t, snap.Groups, 2)
	values := map[string]string{}
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			values[p.Key] = p.Value
		}
	}
	assert.Equal(t, "7x3", values["size"])
	assert.Equal(t, "1", values["generation"])
	assert.Equal(t, "3", values["population"])
	assert.Equal(t, "false", values["paused"])
	assert.Equal(t, "1", values[ParamTicksPerFrame])
	assert.Equal(t, "60", values["fps_mean"])

	var setter core.IntParameterSetter = d
	var provider core.ParameterControlsProvider = d
	require.Len(t, provider.ParameterControls(), 1)
	assert.True(t, setter.SetIntParameter(ParamTicksPerFrame, 9))
	assert.Equal(t, 9, d.TicksPerFrame())
	assert.False(t, setter.SetIntParameter("nope", 1))
}
