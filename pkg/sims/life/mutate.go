package life

// ToggleCell flips the cell at (row, col). Indices are not wrapped; it panics
// if (row, col) is outside the grid.
func (u *Universe) ToggleCell(row, col int) {
	u.cur.Toggle(row, col)
}

// KillCell marks the cell at (row, col) dead. Indices are not wrapped; it
// panics if (row, col) is outside the grid.
func (u *Universe) KillCell(row, col int) {
	u.cur.Set(row, col, false)
}

// ClearAll marks every cell dead.
func (u *Universe) ClearAll() {
	u.cur.Clear()
	u.gen = 0
}

// ResetToSeed restores the pattern the Universe was constructed with.
func (u *Universe) ResetToSeed() {
	u.cur.CopyFrom(u.seed)
	u.gen = 0
}

// Stamp writes p anchored at (row, col). Unlike ToggleCell and KillCell the
// target cells wrap around the grid edges.
func (u *Universe) Stamp(p Pattern, row, col int, alive bool) {
	for _, c := range p.Anchored(row, col, u.cur.W, u.cur.H) {
		u.cur.Set(c.Row, c.Col, alive)
	}
}
