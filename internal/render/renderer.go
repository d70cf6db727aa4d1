//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from packed cell data.
type GridPainter struct {
	w, h     int
	cellSize int
	img      *ebiten.Image
	buf      []byte
}

// NewGridPainter allocates a painter for a grid of w*h cells.
func NewGridPainter(w, h, cellSize int) *GridPainter {
	cw, ch := CanvasSize(w, h, cellSize)
	gp := &GridPainter{w: w, h: h, cellSize: cellSize, buf: make([]byte, 4*cw*ch)}
	gp.img = ebiten.NewImage(cw, ch)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []byte, p Palette) {
	if len(cells) != (gp.w*gp.h+7)/8 {
		return
	}
	fillCellsRGBA(gp.buf, cells, gp.w, gp.h, gp.cellSize, p)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, nil)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return CanvasSize(gp.w, gp.h, gp.cellSize) }
