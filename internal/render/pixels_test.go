package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func pixelAt(buf []byte, cw, x, y int) color.RGBA {
	base := (y*cw + x) * 4
	return color.RGBA{R: buf[base], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
}

func TestCanvasSize(t *testing.T) {
	w, h := CanvasSize(120, 120, 5)
	assert.Equal(t, 721, w)
	assert.Equal(t, 721, h)

	w, h = CanvasSize(3, 2, 1)
	assert.Equal(t, 7, w)
	assert.Equal(t, 5, h)
}

func TestCellAt(t *testing.T) {
	const cellSize = 5
	tests := []struct {
		name         string
		x, y         int
		wantRow, col int
	}{
		{"origin", 0, 0, 0, 0},
		{"first cell interior", 5, 5, 0, 0},
		{"second column", 6, 0, 0, 1},
		{"row three col two", 13, 19, 3, 2},
		{"past right edge", 500, 7, 1, 9},
		{"past bottom edge", 7, 500, 7, 1},
		{"negative", -4, -30, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col := CellAt(tt.x, tt.y, 10, 8, cellSize)
			assert.Equal(t, tt.wantRow, row)
			assert.Equal(t, tt.col, col)
		})
	}
}

func TestFillCellsRGBA(t *testing.T) {
	const cellSize = 2
	p := DefaultPalette()
	cw, ch := CanvasSize(2, 2, cellSize)
	buf := make([]byte, 4*cw*ch)

	// Cells 0 (0,0) and 3 (1,1) alive.
	fillCellsRGBA(buf, []byte{0b1001}, 2, 2, cellSize, p)

	assert.Equal(t, p.Grid, pixelAt(buf, cw, 0, 0))
	assert.Equal(t, p.Grid, pixelAt(buf, cw, 3, 1), "border between columns")
	assert.Equal(t, p.Grid, pixelAt(buf, cw, cw-1, ch-1))

	assert.Equal(t, p.Alive, pixelAt(buf, cw, 1, 1))
	assert.Equal(t, p.Alive, pixelAt(buf, cw, 2, 2))
	assert.Equal(t, p.Dead, pixelAt(buf, cw, 4, 1), "cell (0,1)")
	assert.Equal(t, p.Dead, pixelAt(buf, cw, 1, 4), "cell (1,0)")
	assert.Equal(t, p.Alive, pixelAt(buf, cw, 5, 5), "cell (1,1)")
}
