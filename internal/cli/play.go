package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"bitlife/internal/app"
)

// PlayOptions holds flags for the play command.
type PlayOptions struct {
	*RootOptions
	CellSize      int
	TicksPerFrame int
	TPS           int
	Pattern       patternFlags
}

// NewPlayCommand creates the command that opens the interactive window.
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open the interactive window",
		Long: `Open the interactive window.

Click toggles a cell, ctrl-click clears the dead stamp around it.
Keys: Space play/pause, N single step, R reset to seed, C clear,
+/- ticks per frame, H hover outline, Q or Escape quit.

Requires a binary built with -tags ebiten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.CellSize, "cell-size", 0, "pixels per cell (default from config)")
	cmd.Flags().IntVar(&opts.TicksPerFrame, "ticks-per-frame", 0, "generations per frame (default from config)")
	cmd.Flags().IntVar(&opts.TPS, "tps", 0, "frames per second (default from config)")
	opts.Pattern.bind(cmd)

	return cmd
}

func (o *PlayOptions) appOptions() app.Options {
	cfg := o.Config
	ao := app.DefaultOptions()
	ao.CellSize = cfg.CellSize
	ao.TicksPerFrame = cfg.TicksPerFrame
	ao.TPS = cfg.TPS
	if o.CellSize > 0 {
		ao.CellSize = o.CellSize
	}
	if o.TicksPerFrame > 0 {
		ao.TicksPerFrame = o.TicksPerFrame
	}
	if o.TPS > 0 {
		ao.TPS = o.TPS
	}
	ao.Logger = o.Logger
	return ao
}

func runPlay(cmd *cobra.Command, opts *PlayOptions) error {
	u, err := buildUniverse(cmd.Context(), opts.RootOptions, &opts.Pattern)
	if err != nil {
		return err
	}
	if err := app.Run(u, opts.appOptions()); err != nil {
		if errors.Is(err, app.ErrNoGUI) {
			return WrapExitError(ExitCommandError, "cannot open window", err)
		}
		return WrapExitError(ExitFailure, "window failed", err)
	}
	return nil
}
