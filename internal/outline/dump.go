package outline

import (
	"bufio"
	"io"
)

const (
	ansiReset = "\033[0m"
	ansiRed   = "\033[31m"
	ansiGreen = "\033[32m"
)

var (
	outerGlyphs = [...]string{None: "∙", Right: "→", Left: "←", Down: "↓", Up: "↑"}
	innerGlyphs = [...]string{None: "∙", Right: "⇒", Left: "⇐", Down: "⇓", Up: "⇑"}
)

// Dump writes the arrow grid as text, one grid row per line. Horizontal
// arrows are shifted half a cell so they sit between the vertical ones, and
// the raster cells in data, if given, are drawn as '#' between the vertical
// arrows of their row.
//
// With colour set, outer arrows are green and inner arrows red using ANSI
// escapes. Otherwise inner arrows are drawn as double arrows.
func (g *Grid) Dump(w io.Writer, data []byte, colour bool) error {
	if data != nil && len(data) != g.width*g.height {
		data = nil
	}
	bw := bufio.NewWriter(w)
	for y := 0; y < g.rows; y++ {
		odd := y%2 != 0
		cols := g.stride
		if odd {
			bw.WriteString("  ")
			cols--
		}
		for x := 0; x < cols; x++ {
			writeArrow(bw, g.cells[g.index(x, y)], colour)

			cell := ' '
			if !odd && data != nil && x > 0 && x < g.stride-2 && y >= 2 && y < g.rows-2 {
				if data[(y-2)/2*g.width+x-1] != 0 {
					cell = '#'
				}
			}
			bw.WriteByte(' ')
			bw.WriteRune(cell)
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func writeArrow(w *bufio.Writer, a Arrow, colour bool) {
	d := a.Direction()
	if d == None {
		w.WriteString(outerGlyphs[None])
		return
	}
	if !colour {
		if a.Inner() {
			w.WriteString(innerGlyphs[d])
		} else {
			w.WriteString(outerGlyphs[d])
		}
		return
	}
	if a.Inner() {
		w.WriteString(ansiRed)
	} else {
		w.WriteString(ansiGreen)
	}
	w.WriteString(outerGlyphs[d])
	w.WriteString(ansiReset)
}
