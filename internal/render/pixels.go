package render

import "image/color"

// Palette holds the three colors of the board.
type Palette struct {
	Alive color.RGBA
	Dead  color.RGBA
	Grid  color.RGBA
}

// DefaultPalette returns black cells on white with light grey grid lines.
func DefaultPalette() Palette {
	return Palette{
		Alive: color.RGBA{A: 255},
		Dead:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Grid:  color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 255},
	}
}

// CanvasSize returns the pixel size of a w*h board where each cell is
// cellSize pixels wide and separated by a one pixel grid line.
func CanvasSize(w, h, cellSize int) (int, int) {
	return w*(cellSize+1) + 1, h*(cellSize+1) + 1
}

// CellAt maps a canvas pixel to the cell under it, clamping to the board.
func CellAt(x, y, w, h, cellSize int) (row, col int) {
	row = clamp(y/(cellSize+1), 0, h-1)
	col = clamp(x/(cellSize+1), 0, w-1)
	return row, col
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// fillCellsRGBA draws packed cell bits (LSB-first, row-major) into buf, a
// CanvasSize-sized RGBA buffer.
func fillCellsRGBA(buf []byte, cells []byte, w, h, cellSize int, p Palette) {
	cw, ch := CanvasSize(w, h, cellSize)
	for i := 0; i < cw*ch; i++ {
		put(buf, i, p.Grid)
	}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			idx := row*w + col
			c := p.Dead
			if cells[idx>>3]&(1<<(idx&7)) != 0 {
				c = p.Alive
			}
			x0 := col*(cellSize+1) + 1
			y0 := row*(cellSize+1) + 1
			for y := y0; y < y0+cellSize; y++ {
				base := y * cw
				for x := x0; x < x0+cellSize; x++ {
					put(buf, base+x, c)
				}
			}
		}
	}
}

func put(buf []byte, pixel int, c color.RGBA) {
	base := pixel * 4
	buf[base+0] = c.R
	buf[base+1] = c.G
	buf[base+2] = c.B
	buf[base+3] = c.A
}
