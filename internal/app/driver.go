package app

import (
	"errors"
	"io"
	"log/slog"
	"strconv"
	"time"

	"bitlife/internal/core"
	"bitlife/internal/render"
	"bitlife/pkg/sims/life"
)

// Ticks-per-frame bounds and HUD control key.
const (
	MinTicksPerFrame = 1
	MaxTicksPerFrame = 64

	ParamTicksPerFrame = "ticks_per_frame"
)

// ErrNoGUI is returned by Run when the binary was built without the ebiten tag.
var ErrNoGUI = errors.New("the GUI requires building with the 'ebiten' tag (go build -tags ebiten ./cmd/life)")

// Options configures a Driver.
type Options struct {
	CellSize      int
	TicksPerFrame int
	TPS           int
	Title         string
	Palette       render.Palette
	Logger        *slog.Logger
}

// DefaultOptions returns 5px cells, one step per frame at 60 TPS.
func DefaultOptions() Options {
	return Options{
		CellSize:      5,
		TicksPerFrame: 1,
		TPS:           60,
		Title:         "bitlife",
		Palette:       render.DefaultPalette(),
	}
}

// Driver owns the animation-loop state around a Sim: play/pause, steps per
// frame, frame statistics and pointer edits. It performs every call on the
// Sim itself, so a single Driver serialises all access.
type Driver struct {
	sim      core.Sim
	opts     Options
	log      *slog.Logger
	stats    *core.FrameStats
	paused   bool
	stepOnce bool
}

// NewDriver wraps sim. Zero option fields fall back to DefaultOptions.
func NewDriver(sim core.Sim, opts Options) *Driver {
	def := DefaultOptions()
	if opts.CellSize <= 0 {
		opts.CellSize = def.CellSize
	}
	if opts.TPS <= 0 {
		opts.TPS = def.TPS
	}
	if opts.Title == "" {
		opts.Title = def.Title
	}
	if opts.Palette == (render.Palette{}) {
		opts.Palette = def.Palette
	}
	opts.TicksPerFrame = clampTicks(opts.TicksPerFrame)
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Driver{
		sim:   sim,
		opts:  opts,
		log:   logger,
		stats: core.NewFrameStats(core.DefaultFrameWindow),
	}
}

func clampTicks(n int) int {
	return max(MinTicksPerFrame, min(n, MaxTicksPerFrame))
}

// Sim returns the driven simulation.
func (d *Driver) Sim() core.Sim { return d.sim }

// Options returns the effective options.
func (d *Driver) Options() Options { return d.opts }

// Stats exposes the frame statistics.
func (d *Driver) Stats() *core.FrameStats { return d.stats }

// Frame records a frame boundary at now and advances the simulation by the
// configured number of ticks, or by one tick if a single step was requested
// while paused.
func (d *Driver) Frame(now time.Time) {
	d.stats.Tick(now)
	switch {
	case d.stepOnce:
		d.stepOnce = false
		d.sim.Step()
	case !d.paused:
		for i := 0; i < d.opts.TicksPerFrame; i++ {
			d.sim.Step()
		}
	}
}

// Paused reports whether the animation is paused.
func (d *Driver) Paused() bool { return d.paused }

// TogglePause flips between playing and paused.
func (d *Driver) TogglePause() {
	d.paused = !d.paused
	d.log.Debug("pause toggled", "paused", d.paused, "generation", d.sim.Generation())
}

// StepOnce pauses and schedules exactly one step for the next frame.
func (d *Driver) StepOnce() {
	d.paused = true
	d.stepOnce = true
}

// Reset restores the construction-time seed.
func (d *Driver) Reset() {
	d.sim.ResetToSeed()
	d.log.Info("reset to seed")
}

// Clear kills every cell.
func (d *Driver) Clear() {
	d.sim.ClearAll()
	d.log.Info("cleared")
}

// TicksPerFrame returns the number of steps per frame.
func (d *Driver) TicksPerFrame() int { return d.opts.TicksPerFrame }

// SetTicksPerFrame changes the number of steps per frame, clamped to
// [MinTicksPerFrame, MaxTicksPerFrame].
func (d *Driver) SetTicksPerFrame(n int) {
	d.opts.TicksPerFrame = clampTicks(n)
}

// Stamper is implemented by sims that can write a pattern with wraparound in
// one call.
type Stamper interface {
	Stamp(p life.Pattern, row, col int, alive bool)
}

// Click applies a pointer press at canvas pixel (x, y). Without ctrl the cell
// under the pointer is toggled; with ctrl the dead stamp is cleared around
// it.
func (d *Driver) Click(x, y int, ctrl bool) {
	row, col := render.CellAt(x, y, d.sim.Width(), d.sim.Height(), d.opts.CellSize)
	if !ctrl {
		d.sim.ToggleCell(row, col)
		d.log.Debug("cell toggled", "row", row, "col", col)
		return
	}
	if s, ok := d.sim.(Stamper); ok {
		s.Stamp(life.DeadStamp, row, col, false)
	} else {
		for _, c := range d.Affected(row, col, true) {
			d.sim.KillCell(c.Row, c.Col)
		}
	}
	d.log.Debug("dead stamp", "row", row, "col", col)
}

// Affected lists the cells a click on (row, col) edits. Stamp targets are
// wrapped onto the board.
func (d *Driver) Affected(row, col int, ctrl bool) []life.Cell {
	if !ctrl {
		return []life.Cell{{Row: row, Col: col}}
	}
	return life.DeadStamp.Anchored(row, col, d.sim.Width(), d.sim.Height())
}

// Parameters reports the values shown on the HUD.
func (d *Driver) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Universe",
			Params: []core.Parameter{
				{Key: "size", Label: "Size", Type: core.ParamTypeInt, Value: strconv.Itoa(d.sim.Width()) + "x" + strconv.Itoa(d.sim.Height())},
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.FormatUint(d.sim.Generation(), 10)},
				{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(d.sim.Population())},
				{Key: "paused", Label: "Paused", Type: core.ParamTypeBool, Value: strconv.FormatBool(d.paused)},
				{Key: ParamTicksPerFrame, Label: "Ticks per frame", Type: core.ParamTypeInt, Value: strconv.Itoa(d.opts.TicksPerFrame)},
			},
		},
		{
			Name: "Frames per second",
			Params: []core.Parameter{
				fpsParam("fps_latest", "latest", d.stats.Latest()),
				fpsParam("fps_mean", "avg of last 100", d.stats.Mean()),
				fpsParam("fps_min", "min of last 100", d.stats.Min()),
				fpsParam("fps_max", "max of last 100", d.stats.Max()),
			},
		},
	}}
}

func fpsParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v, 'f', 0, 64)}
}

// ParameterControls lists the HUD-adjustable parameters.
func (d *Driver) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: ParamTicksPerFrame, Label: "Ticks per frame", Step: 1, Min: MinTicksPerFrame, Max: MaxTicksPerFrame},
	}
}

// SetIntParameter implements core.IntParameterSetter.
func (d *Driver) SetIntParameter(key string, value int) bool {
	if key != ParamTicksPerFrame {
		return false
	}
	d.SetTicksPerFrame(value)
	return true
}
