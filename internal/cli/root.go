// Package cli implements the life command line.
package cli

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"bitlife/internal/config"
)

// RootOptions holds global flags and the state PersistentPreRunE derives
// from them.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
	Width      int
	Height     int
	Seed       string
	RNGSeed    int64
	Density    float64
	DB         string

	// Set before any subcommand runs.
	Config config.Config
	Logger *slog.Logger
	RunID  string
}

// NewRootCommand creates the root command for the life CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	def := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "life",
		Short: "Conway's Game of Life on a bit-packed torus",
		Long: `Conway's Game of Life (B3/S23) on a fixed-size toroidal grid stored one
bit per cell.

Settings come from the built-in defaults, then the --config YAML file, then
flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.ConfigPath, "config", "", "YAML config file")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	pf.IntVar(&opts.Width, "width", def.Width, "board width in cells")
	pf.IntVar(&opts.Height, "height", def.Height, "board height in cells")
	pf.StringVar(&opts.Seed, "seed", def.Seed, "registered seed name (see 'life seeds')")
	pf.Int64Var(&opts.RNGSeed, "rng-seed", def.RNGSeed, "random seed for the soup seed")
	pf.Float64Var(&opts.Density, "density", def.Density, "live-cell probability for the soup seed")
	pf.StringVar(&opts.DB, "db", def.DB, "pattern catalog (SQLite)")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewPlayCommand(opts))
	cmd.AddCommand(NewSeedsCommand(opts))
	cmd.AddCommand(NewPatternCommand(opts))

	return cmd
}

func (o *RootOptions) setup(cmd *cobra.Command) error {
	o.Logger = newLogger(cmd.ErrOrStderr(), o.Verbose)
	id, err := uuid.NewV7()
	if err != nil {
		return WrapExitError(ExitFailure, "failed to create run id", err)
	}
	o.RunID = id.String()
	o.Logger = o.Logger.With("run_id", o.RunID)

	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = o.Width
	}
	if flags.Changed("height") {
		cfg.Height = o.Height
	}
	if flags.Changed("seed") {
		cfg.Seed = o.Seed
	}
	if flags.Changed("rng-seed") {
		cfg.RNGSeed = o.RNGSeed
	}
	if flags.Changed("density") {
		cfg.Density = o.Density
	}
	if flags.Changed("db") {
		cfg.DB = o.DB
	}
	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid settings", err)
	}
	o.Config = cfg
	o.Logger.Debug("config resolved", "path", o.ConfigPath, "width", cfg.Width, "height", cfg.Height, "seed", cfg.Seed)
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
