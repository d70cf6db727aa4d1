package life

import "bitlife/pkg/core"

// Defaults used by DefaultConfig and the registered soup seed.
const (
	DefaultWidth   = 120
	DefaultHeight  = 120
	DefaultRNGSeed = 42
	DefaultDensity = 0.5
)

// Config holds parameters for constructing a Universe.
type Config struct {
	Width  int
	Height int

	// Seed names a registered seed. "soup" uses RNGSeed and Density.
	Seed    string
	RNGSeed int64
	Density float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Seed:    SeedModulo,
		RNGSeed: DefaultRNGSeed,
		Density: DefaultDensity,
	}
}

// Seeder resolves the configured seed.
func (c Config) Seeder() (core.Seeder, error) {
	if c.Seed == SeedSoup {
		return SoupSeed(c.RNGSeed, c.Density), nil
	}
	return resolveSeed(c.Seed)
}
