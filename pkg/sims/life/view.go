package life

// View returns the packed current generation: ByteLen bytes, cell i at bit
// i%8 of byte i/8 (least-significant bit first), row-major.
//
// The slice aliases engine memory and is only valid until the next Step or
// mutating call. Request a fresh View after each of them and never write
// through it.
func (u *Universe) View() []byte { return u.cur.Bytes() }

// ByteLen returns the length of the buffer returned by View.
func (u *Universe) ByteLen() int { return u.cur.ByteLen() }

// Width returns the number of columns.
func (u *Universe) Width() int { return u.cur.W }

// Height returns the number of rows.
func (u *Universe) Height() int { return u.cur.H }

// Alive reports whether the cell at (row, col) is alive. It panics if
// (row, col) is outside the grid.
func (u *Universe) Alive(row, col int) bool { return u.cur.Get(row, col) }

// Population counts the live cells of the current generation.
func (u *Universe) Population() int { return u.cur.Count() }
