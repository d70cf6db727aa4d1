package render

import "strings"

// Text renders packed cell bits as one line per row, '#' for live cells and
// '.' for dead ones.
func Text(cells []byte, w, h int) string {
	var b strings.Builder
	b.Grow((w + 1) * h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			idx := row*w + col
			if cells[idx>>3]&(1<<(idx&7)) != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
