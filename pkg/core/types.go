package core

import "sort"

// Seeder writes a deterministic initial pattern into a freshly allocated grid.
type Seeder func(g *BitGrid)

var seeds = map[string]Seeder{}

// RegisterSeed adds a seed pattern under the provided name.
func RegisterSeed(name string, s Seeder) {
	if name == "" || s == nil {
		return
	}
	seeds[name] = s
}

// LookupSeed returns the seed registered under name.
func LookupSeed(name string) (Seeder, bool) {
	s, ok := seeds[name]
	return s, ok
}

// SeedNames lists the registered seeds in sorted order.
func SeedNames() []string {
	names := make([]string, 0, len(seeds))
	for name := range seeds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
