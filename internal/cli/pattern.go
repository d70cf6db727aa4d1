package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"bitlife/internal/store"
	"bitlife/pkg/sims/life"
)

// PatternOptions holds flags for the pattern add command.
type PatternOptions struct {
	*RootOptions
	File string
	Text string
}

// NewPatternCommand creates the pattern catalog command group.
func NewPatternCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pattern",
		Short: "Manage the pattern catalog",
		Long: `Manage named patterns stored in the SQLite catalog (--db).

Stored patterns can be placed with 'life run --pattern NAME'. Built-in
patterns (glider, blinker, spaceship, dead-stamp) take precedence.`,
	}
	cmd.AddCommand(newPatternAddCommand(rootOpts))
	cmd.AddCommand(newPatternListCommand(rootOpts))
	cmd.AddCommand(newPatternShowCommand(rootOpts))
	cmd.AddCommand(newPatternRemoveCommand(rootOpts))
	return cmd
}

func newPatternAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PatternOptions{RootOptions: rootOpts}
	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add or replace a pattern",
		Long: `Add or replace a pattern.

--text and plain --file contents use one row per line: '#', 'O' or '*' for
live cells, '.', '-' or space for dead ones, '!' starts a comment line.
A --file ending in .yaml or .yml holds a list of {row, col} cells under
'cells'.

Example:
  life pattern add r-pentomino --text $'.##\n##.\n.#.'
  life pattern add gun --file gosper.cells`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.load(args[0])
			if err != nil {
				return err
			}
			st, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()
			rec, err := st.Save(cmd.Context(), p)
			if err != nil {
				return saveError(err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%dx%d, %d cells)\n", rec.Pattern.Name, rec.Rows, rec.Cols, len(rec.Pattern.Cells))
			return err
		},
	}
	cmd.Flags().StringVar(&opts.File, "file", "", "read the pattern from a plaintext or YAML file")
	cmd.Flags().StringVar(&opts.Text, "text", "", "pattern rows, newline separated")
	cmd.MarkFlagsMutuallyExclusive("file", "text")
	cmd.MarkFlagsOneRequired("file", "text")
	return cmd
}

func (o *PatternOptions) load(name string) (life.Pattern, error) {
	if o.Text != "" {
		return parseText(name, o.Text)
	}
	data, err := os.ReadFile(o.File)
	if err != nil {
		return life.Pattern{}, WrapExitError(ExitCommandError, "failed to read pattern file", err)
	}
	switch strings.ToLower(filepath.Ext(o.File)) {
	case ".yaml", ".yml":
		var p life.Pattern
		if err := yaml.Unmarshal(data, &p); err != nil {
			return life.Pattern{}, WrapExitError(ExitCommandError, "failed to decode pattern file", err)
		}
		p.Name = name
		if err := p.Validate(); err != nil {
			return life.Pattern{}, WrapExitError(ExitCommandError, "invalid pattern", err)
		}
		return p, nil
	default:
		return parseText(name, string(data))
	}
}

func parseText(name, text string) (life.Pattern, error) {
	p, err := life.ParsePattern(name, text)
	if err != nil {
		return life.Pattern{}, WrapExitError(ExitCommandError, "invalid pattern", err)
	}
	return p, nil
}

func newPatternListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in and stored patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var records []store.Record
			if !catalogMissing(rootOpts) {
				st, err := openStore(rootOpts)
				if err != nil {
					return err
				}
				defer st.Close()
				records, err = st.List(cmd.Context())
				if err != nil {
					return WrapExitError(ExitFailure, "failed to list patterns", err)
				}
			}
			out := cmd.OutOrStdout()
			for _, name := range life.PatternNames() {
				p, _ := life.LookupPattern(name)
				rows, cols := p.Bounds()
				if _, err := fmt.Fprintf(out, "%s\t%dx%d\t%d cells\tbuilt-in\n", name, rows, cols, len(p.Cells)); err != nil {
					return err
				}
			}
			for _, rec := range records {
				if _, err := fmt.Fprintf(out, "%s\t%dx%d\t%d cells\t%s\n",
					rec.Pattern.Name, rec.Rows, rec.Cols, len(rec.Pattern.Cells), rec.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newPatternShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Print a built-in or stored pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolvePattern(cmd.Context(), rootOpts, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), p.String())
			return err
		},
	}
}

func newPatternRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm NAME",
		Aliases: []string{"remove"},
		Short:   "Remove a stored pattern",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if catalogMissing(rootOpts) {
				return WrapExitError(ExitFailure, "failed to remove pattern",
					fmt.Errorf("%w: %q (no catalog at %s)", store.ErrNotFound, args[0], rootOpts.Config.DB))
			}
			st, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.Delete(cmd.Context(), args[0]); err != nil {
				if errors.Is(err, store.ErrInvalidName) {
					return WrapExitError(ExitCommandError, "invalid pattern name", err)
				}
				return WrapExitError(ExitFailure, "failed to remove pattern", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return err
		},
	}
}

func openStore(rootOpts *RootOptions) (*store.Store, error) {
	st, err := store.Open(rootOpts.Config.DB, rootOpts.Logger)
	if err != nil {
		return nil, WrapExitError(ExitFailure, "failed to open pattern store", err)
	}
	return st, nil
}

// catalogMissing reports whether the catalog file does not exist yet. Reads
// and deletes never create it.
func catalogMissing(rootOpts *RootOptions) bool {
	_, err := os.Stat(rootOpts.Config.DB)
	return errors.Is(err, fs.ErrNotExist)
}

func saveError(err error) error {
	if errors.Is(err, store.ErrInvalidName) || errors.Is(err, life.ErrBadPattern) {
		return WrapExitError(ExitCommandError, "invalid pattern", err)
	}
	return WrapExitError(ExitFailure, "failed to save pattern", err)
}
