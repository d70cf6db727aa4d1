//go:build !ebiten

package ui

import (
	"bitlife/internal/core"
	"bitlife/pkg/sims/life"
)

// EditTarget reports the cells a click would edit.
type EditTarget interface {
	Sim() core.Sim
	Affected(row, col int, ctrl bool) []life.Cell
}

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(EditTarget, int) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update(bool, int, int) {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
