package core

// Sim is the surface a host (renderer, input handlers, CLI loop) drives. The
// Life universe in pkg/sims/life satisfies it.
type Sim interface {
	Name() string
	Width() int
	Height() int
	Generation() uint64
	Population() int

	Step()
	View() []byte

	ToggleCell(row, col int)
	KillCell(row, col int)
	ClearAll()
	ResetToSeed()
}
