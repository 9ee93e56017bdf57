package outline

import "fmt"

// gridState records the last pass that ran on a grid.
type gridState uint8

const (
	stateEmpty gridState = iota
	stateBuilt
	stateClassified
	stateTraced
)

func (s gridState) String() string {
	switch s {
	case stateEmpty:
		return "empty"
	case stateBuilt:
		return "built"
	case stateClassified:
		return "classified"
	case stateTraced:
		return "traced"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Grid is the arrow store shared by the builder, the classifier and the
// tracer.
//
// For a raster of width×height cells the grid has width+3 columns and
// height*2+3 rows. Odd rows hold the Right/Left arrows of the horizontal cell
// edges, even rows the Down/Up arrows of the vertical ones. The outermost
// rows and columns stay empty so that neighbour probes never leave the grid.
type Grid struct {
	width  int
	height int
	stride int
	rows   int
	cells  []Arrow
	state  gridState
}

// NewGrid allocates an empty grid for a raster of the given size. Negative
// sizes are treated as zero.
func NewGrid(width, height int) *Grid {
	width = max(width, 0)
	height = max(height, 0)
	stride := width + 3
	rows := height*2 + 3
	return &Grid{
		width:  width,
		height: height,
		stride: stride,
		rows:   rows,
		cells:  make([]Arrow, stride*rows),
	}
}

// Raster returns the raster size the grid was allocated for.
func (g *Grid) Raster() (width, height int) {
	return g.width, g.height
}

// Size returns the number of grid columns and rows, border included.
func (g *Grid) Size() (cols, rows int) {
	return g.stride, g.rows
}

// At returns the arrow at grid column x and row y. Positions outside the grid
// read as empty.
func (g *Grid) At(x, y int) Arrow {
	if x < 0 || y < 0 || x >= g.stride || y >= g.rows {
		return 0
	}
	return g.cells[g.index(x, y)]
}

// Reset clears every arrow and flag so the grid can be built again.
func (g *Grid) Reset() {
	clear(g.cells)
	g.state = stateEmpty
}

func (g *Grid) index(x, y int) int {
	return y*g.stride + x
}

func (g *Grid) coords(i int) (x, y int) {
	return i % g.stride, i / g.stride
}

// realDelta is added to the grid position of an arrow to land on its start
// vertex: a Left arrow starts at the right end of its cell edge and an Up
// arrow at the bottom end.
var realDelta = [...]Point{
	Right: {0, 0},
	Left:  {1, 0},
	Down:  {0, 0},
	Up:    {0, 1},
}

// start returns the raster coordinate where the arrow at index i, pointing
// in direction d, begins.
func (g *Grid) start(i int, d Direction) Point {
	x, y := g.coords(i)
	r := realDelta[d]
	return Point{X: x - 1 + r.X, Y: (y-1)/2 + r.Y}
}

// end returns the raster coordinate where the arrow at index i ends.
func (g *Grid) end(i int, d Direction) Point {
	p := g.start(i, d)
	dx, dy := d.step()
	return Point{X: p.X + dx, Y: p.Y + dy}
}
