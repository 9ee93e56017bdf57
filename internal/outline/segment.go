package outline

import "fmt"

// Point is a vertex of the raster lattice. (0, 0) is the top-left corner of
// the top-left cell; X grows to the right and Y grows down.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Segment is one element of an extracted path.
//
// A segment with Direction None is an absolute move-to: (DX, DY) is the anchor
// vertex of a new loop. Any other segment is a relative draw from the current
// vertex. Right and Left draws carry DX with DY == 0, Down and Up draws carry
// DY with DX == 0.
type Segment struct {
	Direction Direction `json:"direction"`
	DX        int       `json:"dx"`
	DY        int       `json:"dy"`
}

// IsMove reports whether the segment starts a new loop.
func (s Segment) IsMove() bool {
	return s.Direction == None
}

// Length returns the number of unit edges the segment draws. A move-to has
// length zero.
func (s Segment) Length() int {
	if s.IsMove() {
		return 0
	}
	return abs(s.DX) + abs(s.DY)
}

func (s Segment) String() string {
	if s.IsMove() {
		return fmt.Sprintf("move(%d,%d)", s.DX, s.DY)
	}
	if s.Direction.Horizontal() {
		return fmt.Sprintf("%s(%d)", s.Direction, s.DX)
	}
	return fmt.Sprintf("%s(%d)", s.Direction, s.DY)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
