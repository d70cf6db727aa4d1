//go:build !ebiten

package app

import "bitlife/internal/core"

// Run reports that the GUI build tag is missing.
func Run(core.Sim, Options) error {
	return ErrNoGUI
}
