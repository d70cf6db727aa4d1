//go:build ebiten

package app

import (
	"errors"
	"time"

	"bitlife/internal/core"
	"bitlife/internal/render"
	"bitlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a Driver to the ebiten.Game interface.
type Game struct {
	driver  *Driver
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	boardW, boardH int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, opts Options) *Game {
	d := NewDriver(sim, opts)
	cs := d.Options().CellSize
	gp := render.NewGridPainter(sim.Width(), sim.Height(), cs)
	w, h := gp.Size()
	return &Game{
		driver:  d,
		painter: gp,
		hud:     ui.NewHUD(d, hudWidth),
		overlay: ui.NewOverlay(d, cs),
		boardW:  w,
		boardH:  h,
	}
}

// Run opens the window and blocks until it is closed.
func Run(sim core.Sim, opts Options) error {
	g := New(sim, opts)
	o := g.driver.Options()
	ebiten.SetWindowTitle(o.Title + " - " + sim.Name())
	ebiten.SetTPS(o.TPS)
	ebiten.SetWindowSize(g.boardW+hudWidth, g.boardH)
	g.driver.log.Info("window opened", "width", sim.Width(), "height", sim.Height(), "cell_size", o.CellSize)

	err := ebiten.RunGame(g)
	g.driver.log.Info("window closed", "generation", sim.Generation())
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	d := g.driver
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		d.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		d.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		d.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		d.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		d.SetTicksPerFrame(d.TicksPerFrame() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		d.SetTicksPerFrame(d.TicksPerFrame() - 1)
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if x < g.boardW && y < g.boardH {
			d.Click(x, y, ctrl)
		}
	}

	g.hud.Update(g.boardW)
	g.overlay.Update(ctrl, g.boardW, g.boardH)

	d.Frame(time.Now())
	return nil
}

// Draw renders the current generation, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	d := g.driver
	g.painter.Blit(screen, d.Sim().View(), d.Options().Palette)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.boardW)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.boardW + hudWidth, g.boardH
}
