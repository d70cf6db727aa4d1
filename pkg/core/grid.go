package core

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	// ErrInvalidSize is returned when a grid is requested with a non-positive dimension.
	ErrInvalidSize = errors.New("bitgrid: width and height must be positive")
	// ErrOutOfRange is the panic value (wrapped) for cell indices outside the grid.
	ErrOutOfRange = errors.New("bitgrid: cell out of range")
)

// BitGrid stores a 2D grid of binary cells packed eight to a byte in
// row-major order. Cell (row, col) has linear index row*W+col; index i lives in
// byte i/8 at bit i%8, least-significant bit first.
type BitGrid struct {
	W, H int
	data []byte
}

// NewBitGrid allocates an all-dead grid with the given dimensions.
func NewBitGrid(w, h int) (*BitGrid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, w, h)
	}
	return &BitGrid{W: w, H: h, data: make([]byte, byteLen(w*h))}, nil
}

func byteLen(n int) int { return (n + 7) / 8 }

// ByteLen returns ceil(W*H/8), the length of the packed buffer.
func (g *BitGrid) ByteLen() int { return len(g.data) }

// Bytes exposes the packed backing slice. The capacity is clipped so appends
// never write into grid memory.
func (g *BitGrid) Bytes() []byte { return g.data[:len(g.data):len(g.data)] }

// Index returns the linear cell index for (row, col). It panics when the
// coordinates fall outside the grid.
func (g *BitGrid) Index(row, col int) int {
	if !g.InBounds(row, col) {
		panic(fmt.Errorf("%w: (%d, %d) for %dx%d grid", ErrOutOfRange, row, col, g.W, g.H))
	}
	return row*g.W + col
}

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *BitGrid) InBounds(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *BitGrid) Wrap(row, col int) (int, int) {
	return Wrap(row, col, g.W, g.H)
}

// Wrap maps (row, col) onto a w x h torus.
func Wrap(row, col, w, h int) (int, int) {
	return (row%h + h) % h, (col%w + w) % w
}

// Get returns the state of the cell at (row, col).
func (g *BitGrid) Get(row, col int) bool {
	return g.Bit(g.Index(row, col))
}

// Set writes the state of the cell at (row, col).
func (g *BitGrid) Set(row, col int, alive bool) {
	g.SetBit(g.Index(row, col), alive)
}

// Toggle flips the cell at (row, col).
func (g *BitGrid) Toggle(row, col int) {
	i := g.Index(row, col)
	g.data[i>>3] ^= 1 << (i & 7)
}

// Bit reads linear index i without coordinate checks. i must be in [0, W*H).
func (g *BitGrid) Bit(i int) bool {
	return g.data[i>>3]&(1<<(i&7)) != 0
}

// SetBit writes linear index i without coordinate checks. i must be in [0, W*H).
func (g *BitGrid) SetBit(i int, alive bool) {
	mask := byte(1) << (i & 7)
	if alive {
		g.data[i>>3] |= mask
		return
	}
	g.data[i>>3] &^= mask
}

// Clear marks every cell dead.
func (g *BitGrid) Clear() {
	clear(g.data)
}

// CopyFrom overwrites g with the contents of src. Both grids must share
// dimensions.
func (g *BitGrid) CopyFrom(src *BitGrid) {
	if src.W != g.W || src.H != g.H {
		panic(fmt.Sprintf("bitgrid: copy %dx%d into %dx%d", src.W, src.H, g.W, g.H))
	}
	copy(g.data, src.data)
}

// Count returns the number of live cells.
func (g *BitGrid) Count() int {
	n := 0
	for _, b := range g.data {
		n += bits.OnesCount8(b)
	}
	return n
}
