package outline

import "fmt"

// Direction is the orientation of a boundary arrow or a path segment.
type Direction uint8

const (
	None Direction = iota
	Right
	Left
	Down
	Up
)

var directionNames = [...]string{
	None:  "none",
	Right: "right",
	Left:  "left",
	Down:  "down",
	Up:    "up",
}

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// Opposite returns the direction pointing the other way. None has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Down:
		return Up
	case Up:
		return Down
	}
	return None
}

// Horizontal reports whether the direction runs along a grid row.
func (d Direction) Horizontal() bool {
	return d == Right || d == Left
}

// Vertical reports whether the direction runs along a grid column.
func (d Direction) Vertical() bool {
	return d == Down || d == Up
}

// step is the unit displacement of one arrow.
func (d Direction) step() (dx, dy int) {
	switch d {
	case Right:
		return 1, 0
	case Left:
		return -1, 0
	case Down:
		return 0, 1
	case Up:
		return 0, -1
	}
	return 0, 0
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if int(d) >= len(directionNames) {
		return nil, fmt.Errorf("invalid direction %d", uint8(d))
	}
	return []byte(directionNames[d]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	for i, name := range directionNames {
		if string(text) == name {
			*d = Direction(i)
			return nil
		}
	}
	return fmt.Errorf("unknown direction %q", text)
}

// Arrow is one cell of the arrow grid, packed into a single byte:
//
//	bits 0-2  direction
//	bit  3    inner: the arrow belongs to a hole loop
//	bit  4    seen: the tracer has emitted the arrow
//	bit  5    visited: the classifier has tagged the arrow
type Arrow uint8

const (
	arrowDirMask Arrow = 0x07
	arrowInner   Arrow = 0x08
	arrowSeen    Arrow = 0x10
	arrowVisited Arrow = 0x20
)

// Direction returns the direction of the arrow, None for an empty cell.
func (a Arrow) Direction() Direction { return Direction(a & arrowDirMask) }

// Inner reports whether the classifier tagged the arrow as part of a hole.
func (a Arrow) Inner() bool { return a&arrowInner != 0 }

// Seen reports whether the tracer has consumed the arrow.
func (a Arrow) Seen() bool { return a&arrowSeen != 0 }

// Visited reports whether the classifier has tagged the arrow.
func (a Arrow) Visited() bool { return a&arrowVisited != 0 }

func (a Arrow) withDirection(d Direction) Arrow {
	return a&^arrowDirMask | Arrow(d)&arrowDirMask
}

func (a Arrow) withInner(inner bool) Arrow {
	if inner {
		return a | arrowInner
	}
	return a &^ arrowInner
}

func (a Arrow) String() string {
	if a.Direction() == None {
		return "none"
	}
	s := a.Direction().String()
	if a.Inner() {
		s += "/inner"
	}
	if a.Visited() {
		s += "/visited"
	}
	if a.Seen() {
		s += "/seen"
	}
	return s
}
