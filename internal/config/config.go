// Package config loads bitlife settings from YAML and validates them against
// an embedded CUE schema.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"bitlife/pkg/sims/life"
)

// ErrInvalid is wrapped by every schema violation.
var ErrInvalid = errors.New("config: invalid")

// DefaultDB is the pattern catalog path used when none is configured.
const DefaultDB = "bitlife.db"

//go:embed schema.cue
var schemaSource string

// PatternRef places a named pattern on an otherwise empty board. A missing
// At centres the pattern.
type PatternRef struct {
	Name string `json:"name" yaml:"name"`
	At   []int  `json:"at,omitempty" yaml:"at,omitempty"`
}

// Config is the on-disk settings file.
type Config struct {
	Width   int         `json:"width" yaml:"width"`
	Height  int         `json:"height" yaml:"height"`
	Seed    string      `json:"seed" yaml:"seed"`
	RNGSeed int64       `json:"rng_seed" yaml:"rng_seed"`
	Density float64     `json:"density" yaml:"density"`
	Pattern *PatternRef `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	CellSize      int    `json:"cell_size" yaml:"cell_size"`
	TicksPerFrame int    `json:"ticks_per_frame" yaml:"ticks_per_frame"`
	TPS           int    `json:"tps" yaml:"tps"`
	DB            string `json:"db" yaml:"db"`
}

// DefaultConfig mirrors life.DefaultConfig plus the host defaults.
func DefaultConfig() Config {
	lc := life.DefaultConfig()
	return Config{
		Width:         lc.Width,
		Height:        lc.Height,
		Seed:          lc.Seed,
		RNGSeed:       lc.RNGSeed,
		Density:       lc.Density,
		CellSize:      5,
		TicksPerFrame: 1,
		TPS:           60,
		DB:            DefaultDB,
	}
}

// Load reads path over the defaults and validates the result. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err = Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. Unknown keys
// are rejected.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cfg against the #Config schema.
func (c Config) Validate() error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))
	v := def.Unify(ctx.Encode(c))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Pattern != nil {
		if _, err := c.Pattern.Position(c.Width, c.Height, 0, 0); err != nil {
			return err
		}
	}
	return nil
}

// Life returns the engine configuration.
func (c Config) Life() life.Config {
	return life.Config{
		Width:   c.Width,
		Height:  c.Height,
		Seed:    c.Seed,
		RNGSeed: c.RNGSeed,
		Density: c.Density,
	}
}

// Position returns the top-left cell for a pattern of rows x cols on a w x h
// board: At when set, otherwise centred.
func (p PatternRef) Position(w, h, rows, cols int) (life.Cell, error) {
	switch len(p.At) {
	case 0:
		return life.Cell{Row: max(h-rows, 0) / 2, Col: max(w-cols, 0) / 2}, nil
	case 2:
		if p.At[0] >= h || p.At[1] >= w {
			return life.Cell{}, fmt.Errorf("%w: pattern position (%d, %d) outside %dx%d board", ErrInvalid, p.At[0], p.At[1], w, h)
		}
		return life.Cell{Row: p.At[0], Col: p.At[1]}, nil
	default:
		return life.Cell{}, fmt.Errorf("%w: pattern position needs [row, col], got %v", ErrInvalid, p.At)
	}
}
