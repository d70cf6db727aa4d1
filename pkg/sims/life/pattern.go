package life

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"bitlife/pkg/core"
)

// ErrBadPattern is returned when pattern text cannot be parsed.
var ErrBadPattern = errors.New("life: bad pattern")

// MaxPatternExtent bounds pattern offsets in both directions.
const MaxPatternExtent = 4096

// Cell is an offset (or absolute coordinate) of a single live cell.
type Cell struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// Pattern is a named set of live cells relative to its top-left corner.
type Pattern struct {
	Name  string `json:"name" yaml:"name"`
	Cells []Cell `json:"cells" yaml:"cells"`
}

var (
	// Glider travels one cell down and one cell right every four generations.
	Glider = Pattern{Name: "glider", Cells: []Cell{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}}
	// Blinker is the horizontal phase of the period-2 oscillator.
	Blinker = Pattern{Name: "blinker", Cells: []Cell{{0, 0}, {0, 1}, {0, 2}}}
	// Spaceship is another glider phase, kept as a regression fixture.
	Spaceship = Pattern{Name: "spaceship", Cells: []Cell{{0, 0}, {0, 2}, {1, 1}, {1, 2}, {2, 1}}}
	// DeadStamp is the offset list cleared around a ctrl-clicked cell.
	DeadStamp = Pattern{Name: "dead-stamp", Cells: []Cell{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {2, 1}}}
)

var patterns = map[string]Pattern{
	Glider.Name:    Glider,
	Blinker.Name:   Blinker,
	Spaceship.Name: Spaceship,
	DeadStamp.Name: DeadStamp,
}

// LookupPattern returns a built-in pattern by name.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// PatternNames lists the built-in patterns in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bounds returns the height and width of the smallest box holding every cell.
func (p Pattern) Bounds() (rows, cols int) {
	for _, c := range p.Cells {
		rows = max(rows, c.Row+1)
		cols = max(cols, c.Col+1)
	}
	return rows, cols
}

// Validate reports ErrBadPattern for an empty pattern or offsets outside
// [0, MaxPatternExtent).
func (p Pattern) Validate() error {
	if len(p.Cells) == 0 {
		return fmt.Errorf("%w: no live cells", ErrBadPattern)
	}
	for i, c := range p.Cells {
		if c.Row < 0 || c.Col < 0 || c.Row >= MaxPatternExtent || c.Col >= MaxPatternExtent {
			return fmt.Errorf("%w: cell %d offset (%d, %d) outside [0, %d)", ErrBadPattern, i, c.Row, c.Col, MaxPatternExtent)
		}
	}
	return nil
}

// Anchored returns the cells of p with the top-left corner at (row, col),
// wrapped onto a w x h torus.
func (p Pattern) Anchored(row, col, w, h int) []Cell {
	out := make([]Cell, len(p.Cells))
	for i, c := range p.Cells {
		out[i].Row, out[i].Col = core.Wrap(row+c.Row, col+c.Col, w, h)
	}
	return out
}

// Place marks the pattern's cells alive with the top-left corner at
// (row, col), wrapping around the grid edges.
func (p Pattern) Place(g *core.BitGrid, row, col int) {
	for _, c := range p.Anchored(row, col, g.W, g.H) {
		g.Set(c.Row, c.Col, true)
	}
}

// String renders the pattern one row per line with '#' for live cells.
func (p Pattern) String() string {
	rows, cols := p.Bounds()
	lines := make([][]byte, rows)
	for r := range lines {
		lines[r] = []byte(strings.Repeat(".", cols))
	}
	for _, c := range p.Cells {
		lines[c.Row][c.Col] = '#'
	}
	var b strings.Builder
	for _, line := range lines {
		b.Write(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// ParsePattern reads a plaintext pattern: one grid row per line, '#', 'O' or
// '*' for live cells and '.', '-' or ' ' for dead ones. Lines starting with
// '!' are comments. Leading and trailing blank lines are ignored.
func ParsePattern(name, text string) (Pattern, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, "!") {
			continue
		}
		rows = append(rows, line)
	}
	for len(rows) > 0 && strings.TrimSpace(rows[0]) == "" {
		rows = rows[1:]
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}

	p := Pattern{Name: name}
	for r, line := range rows {
		for c, ch := range line {
			switch ch {
			case '#', 'O', '*':
				p.Cells = append(p.Cells, Cell{Row: r, Col: c})
			case '.', '-', ' ':
			default:
				return Pattern{}, fmt.Errorf("%w: line %d column %d: unexpected %q", ErrBadPattern, r+1, c+1, ch)
			}
		}
	}
	if err := p.Validate(); err != nil {
		return Pattern{}, err
	}
	return p, nil
}
