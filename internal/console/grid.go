package console

import (
	"strings"

	"spiders/internal/sim"
)

var facingGlyph = map[sim.Direction]byte{
	sim.Up:    '^',
	sim.Down:  'v',
	sim.Left:  '<',
	sim.Right: '>',
}

// RenderGrid draws the wall with row maxY on top. Spiders outside the wall
// are skipped. An invalid wall, or one wider or taller than maxSize cells,
// renders as an empty string.
func RenderGrid(w *sim.Wall, maxSize int, spiders ...*sim.Spider) string {
	if w.Err() != nil || w.MaxX() < 0 || w.MaxY() < 0 {
		return ""
	}
	if w.MaxX() >= maxSize || w.MaxY() >= maxSize {
		return ""
	}
	cols, rows := w.MaxX()+1, w.MaxY()+1

	cells := make([][]byte, rows)
	for y := range cells {
		cells[y] = []byte(strings.Repeat(".", cols))
	}
	for _, s := range spiders {
		if s == nil || !w.Contains(s.X(), s.Y()) {
			continue
		}
		cells[s.Y()][s.X()] = facingGlyph[s.Facing()]
	}

	var b strings.Builder
	for y := rows - 1; y >= 0; y-- {
		for x, c := range cells[y] {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(c)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
