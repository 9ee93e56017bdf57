package outline

import "fmt"

// Classify tags every arrow with the kind of loop it belongs to.
//
// Loops are discovered from their first horizontal arrow in row-major order.
// The topmost edge of an outer boundary always points Right and that of a
// hole always points Left, so the direction of the discovering arrow decides
// the tag of the whole loop. The walk then follows the straight, toward and
// away probes over arrows not yet visited.
//
// Only the inner and visited flags change; directions are left as built.
//
// # Errors
//
//   - ErrPassOrder if the grid has not just been built
func (g *Grid) Classify() error {
	if g.state != stateBuilt {
		return fmt.Errorf("%w: classify on %s grid", ErrPassOrder, g.state)
	}
	for y := 1; y < g.rows-1; y += 2 {
		for x := 1; x < g.stride-1; x++ {
			i := g.index(x, y)
			a := g.cells[i]
			if a.Direction() == None || a.Visited() {
				continue
			}
			g.tagLoop(i, a.Direction() == Left)
		}
	}
	g.state = stateClassified
	return nil
}

// tagLoop marks the loop reached from cell i as visited with the given tag.
func (g *Grid) tagLoop(i int, inner bool) {
	for {
		a := g.cells[i]
		g.cells[i] = (a | arrowVisited).withInner(inner)

		next := -1
		for _, p := range probes[a.Direction()][probeStraight:] {
			j := i + p.offset(g.stride)
			if n := g.cells[j]; n.Direction() == p.dir && !n.Visited() {
				next = j
				break
			}
		}
		if next < 0 {
			return
		}
		i = next
	}
}
