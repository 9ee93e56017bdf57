package outline

import "fmt"

// Trace walks every loop of a classified grid and appends its segments to
// dst.
//
// Parameters:
//   - dst: Buffer to append to. May be nil; its existing elements are kept.
//
// Returns:
//   - []Segment: dst extended by one move-to per loop followed by one draw
//     per run of equal directions. On error, dst truncated to its original
//     length.
//   - error: Non-nil if a pass is out of order or a loop fails to close.
//
// Each loop is anchored at the start vertex of its first horizontal arrow in
// row-major order. The edge back to the anchor is left implicit.
//
// # Errors
//
//   - ErrPassOrder if the grid has not been classified
//   - ErrInvariantViolation if a loop does not end on its anchor or a
//     junction redirect repeats
func (g *Grid) Trace(dst []Segment) ([]Segment, error) {
	if g.state != stateClassified {
		return dst, fmt.Errorf("%w: trace on %s grid", ErrPassOrder, g.state)
	}
	base := len(dst)
	for y := 1; y < g.rows-1; y += 2 {
		for x := 1; x < g.stride-1; x++ {
			i := g.index(x, y)
			a := g.cells[i]
			if a.Direction() == None || a.Seen() {
				continue
			}
			var err error
			dst, err = g.traceLoop(dst, i)
			if err != nil {
				return dst[:base], err
			}
		}
	}
	g.state = stateTraced
	return dst, nil
}

// traceLoop emits the loop that starts at cell i.
func (g *Grid) traceLoop(dst []Segment, i int) ([]Segment, error) {
	d := g.cells[i].Direction()
	inner := d == Left
	anchor := g.start(i, d)
	dst = append(dst, Segment{Direction: None, DX: anchor.X, DY: anchor.Y})

	prev, last := d, anchor
	for {
		g.cells[i] |= arrowSeen
		j, err := g.next(i, d, inner)
		if err != nil {
			return dst, err
		}
		if j < 0 {
			break
		}
		i = j
		d = g.cells[i].Direction()
		inner = g.cells[i].Inner()
		if d != prev {
			p := g.start(i, d)
			dst = append(dst, Segment{Direction: prev, DX: p.X - last.X, DY: p.Y - last.Y})
			prev, last = d, p
		}
	}

	if e := g.end(i, d); e != anchor {
		x, y := g.coords(i)
		return dst, fmt.Errorf("%w: loop from %v ends at %v (last arrow %s at %d,%d)",
			ErrInvariantViolation, anchor, e, d, x, y)
	}
	return dst, nil
}

// next returns the cell index of the arrow that continues the boundary
// after the arrow at cell i, or -1 when the loop is closed.
//
// In outer mode an unseen inner arrow pointing head-to-head at the current one
// marks a vertex shared with a hole. The search then moves onto that arrow and
// continues in inner mode without consuming it. A search that finds nothing in
// inner mode is retried from the same cell in outer mode.
func (g *Grid) next(i int, d Direction, inner bool) (int, error) {
	redirects := 0
search:
	for {
		for slot, p := range probes[d] {
			j := i + p.offset(g.stride)
			n := g.cells[j]
			if n.Direction() != p.dir || n.Seen() {
				continue
			}
			if slot == probeOpposite {
				if inner || !n.Inner() {
					continue
				}
				redirects++
				if redirects > 1 {
					x, y := g.coords(j)
					return -1, fmt.Errorf("%w: repeated junction redirect at %d,%d", ErrInvariantViolation, x, y)
				}
				i, d, inner = j, p.dir, true
				continue search
			}
			if n.Inner() != inner {
				continue
			}
			return j, nil
		}
		if !inner {
			return -1, nil
		}
		inner = false
	}
}
