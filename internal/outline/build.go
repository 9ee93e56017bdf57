package outline

import "fmt"

// Build deposits one arrow for every boundary edge of the raster.
//
// Parameters:
//   - data: width*height cells in row-major order. A non-zero byte is
//     foreground. Cells beyond the raster border count as background.
//
// Returns:
//   - error: Non-nil if the grid was left unchanged.
//
// Top edges of foreground runs point Right, bottom edges Left, left edges
// Down and right edges Up, so every boundary keeps the foreground on the
// right hand side of travel.
//
// # Errors
//
//   - ErrInvalidInput if len(data) differs from width*height
//   - ErrStaleState if the grid has been built before without a Reset
func (g *Grid) Build(data []byte) error {
	if len(data) != g.width*g.height {
		return fmt.Errorf("%w: raster has %d cells, want %d×%d=%d",
			ErrInvalidInput, len(data), g.width, g.height, g.width*g.height)
	}
	if g.state != stateEmpty {
		return fmt.Errorf("%w: grid is %s", ErrStaleState, g.state)
	}

	w, h := g.width, g.height

	// Horizontal edges, one column at a time. A background to foreground
	// change is the top edge of a run and points Right.
	for x := 0; x < w; x++ {
		prev := false
		for y := 0; y < h; y++ {
			cur := data[y*w+x] != 0
			if cur != prev {
				g.place(x+1, y*2+1, pick(prev, Left, Right))
				prev = cur
			}
		}
		if prev {
			g.place(x+1, h*2+1, Left)
		}
	}

	// Vertical edges, one row at a time. A background to foreground change is
	// the left edge of a run and points Up.
	for y := 0; y < h; y++ {
		prev := false
		for x := 0; x < w; x++ {
			cur := data[y*w+x] != 0
			if cur != prev {
				g.place(x+1, y*2+2, pick(prev, Down, Up))
				prev = cur
			}
		}
		if prev {
			g.place(w+1, y*2+2, Down)
		}
	}

	g.state = stateBuilt
	return nil
}

func (g *Grid) place(x, y int, d Direction) {
	i := g.index(x, y)
	g.cells[i] = g.cells[i].withDirection(d)
}

func pick(cond bool, a, b Direction) Direction {
	if cond {
		return a
	}
	return b
}
