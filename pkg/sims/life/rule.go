package life

// NextState applies Conway's rule: a live cell survives with two or three
// live neighbours, a dead cell is born with exactly three.
func NextState(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}
