package outline

// probe names a neighbouring arrow that can follow the current one: the
// arrow direction expected there and its offset in grid cells.
type probe struct {
	dir    Direction
	dx, dy int
}

// Probe slots. The classifier skips slot probeOpposite.
const (
	probeOpposite = iota
	probeStraight
	probeToward
	probeAway
	probeCount
)

// probes lists, for each arrow direction, the neighbours that continue a
// boundary from the arrow's end vertex. After the head-to-head opposite arrow
// come the straight continuation, the turn toward the foreground (the right
// hand side of travel) and the turn away from it.
//
// Turning toward the foreground first keeps two cells that only touch at a
// corner on separate loops, so foreground regions are 4-connected and
// background regions 8-connected.
var probes = [...][probeCount]probe{
	Right: {
		{Right.Opposite(), 1, 0},
		{Right, 1, 0},
		{Down, 1, 1},
		{Up, 1, -1},
	},
	Left: {
		{Left.Opposite(), -1, 0},
		{Left, -1, 0},
		{Up, 0, -1},
		{Down, 0, 1},
	},
	Down: {
		{Down.Opposite(), 0, 2},
		{Down, 0, 2},
		{Left, -1, 1},
		{Right, 0, 1},
	},
	Up: {
		{Up.Opposite(), 0, -2},
		{Up, 0, -2},
		{Right, 0, -1},
		{Left, -1, -1},
	},
}

// offset returns the linear cell offset of p in a grid with the given
// stride.
func (p probe) offset(stride int) int {
	return p.dx + p.dy*stride
}
