//go:build ebiten

package ui

import (
	"image/color"

	"bitlife/internal/core"
	"bitlife/internal/render"
	"bitlife/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EditTarget reports the cells a click would edit.
type EditTarget interface {
	Sim() core.Sim
	Affected(row, col int, ctrl bool) []life.Cell
}

// Overlay outlines the cells under the pointer that a click would edit.
// H toggles it.
type Overlay struct {
	target   EditTarget
	cellSize int
	hidden   bool

	hovering bool
	cells    []life.Cell
	ctrl     bool

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for a board drawn with cellSize pixels per
// cell.
func NewOverlay(target EditTarget, cellSize int) *Overlay {
	o := &Overlay{target: target, cellSize: max(cellSize, 1)}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update tracks the pointer against a board of boardW x boardH pixels.
func (o *Overlay) Update(ctrl bool, boardW, boardH int) {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.hidden = !o.hidden
	}
	x, y := ebiten.CursorPosition()
	o.hovering = !o.hidden && x >= 0 && y >= 0 && x < boardW && y < boardH
	if !o.hovering {
		o.cells = o.cells[:0]
		return
	}
	sim := o.target.Sim()
	row, col := render.CellAt(x, y, sim.Width(), sim.Height(), o.cellSize)
	o.cells = o.target.Affected(row, col, ctrl)
	o.ctrl = ctrl
}

// Draw outlines the cells recorded by the last Update.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.hovering {
		return
	}
	col := color.RGBA{R: 40, G: 120, B: 220, A: 200}
	if o.ctrl {
		col = color.RGBA{R: 220, G: 60, B: 40, A: 200}
	}
	stride := o.cellSize + 1
	for _, c := range o.cells {
		x := float64(c.Col * stride)
		y := float64(c.Row * stride)
		side := float64(stride + 1)
		o.rect(screen, x, y, side, 1, col)
		o.rect(screen, x, y+side-1, side, 1, col)
		o.rect(screen, x, y, 1, side, col)
		o.rect(screen, x+side-1, y, 1, side, col)
	}
}

func (o *Overlay) rect(screen *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(o.pixel, op)
}
