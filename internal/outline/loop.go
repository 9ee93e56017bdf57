package outline

import "image"

// Loop is one closed contour of an extracted path.
type Loop struct {
	// Anchor is the vertex the loop starts and ends at.
	Anchor Point `json:"anchor"`
	// Segments holds the draws of the loop, without the leading move-to. The
	// edge leading back to Anchor is not included; see Closing.
	Segments []Segment `json:"segments"`
}

// Loops splits a segment sequence into its loops. Draws that appear before
// the first move-to are dropped. The returned loops share the backing array
// of segs.
func Loops(segs []Segment) []Loop {
	var loops []Loop
	start := -1
	for i, s := range segs {
		if !s.IsMove() {
			continue
		}
		if start >= 0 {
			loops = append(loops, makeLoop(segs[start:i]))
		}
		start = i
	}
	if start >= 0 {
		loops = append(loops, makeLoop(segs[start:]))
	}
	return loops
}

func makeLoop(segs []Segment) Loop {
	return Loop{
		Anchor:   Point{X: segs[0].DX, Y: segs[0].DY},
		Segments: segs[1:],
	}
}

// Points returns the vertices of the loop in drawing order, starting with the
// anchor. The anchor is not repeated at the end.
func (l Loop) Points() []Point {
	pts := make([]Point, 0, len(l.Segments)+1)
	p := l.Anchor
	pts = append(pts, p)
	for _, s := range l.Segments {
		p = p.Add(s.DX, s.DY)
		pts = append(pts, p)
	}
	return pts
}

// Closing returns the displacement of the implicit edge from the last vertex
// back to the anchor.
func (l Loop) Closing() (dx, dy int) {
	for _, s := range l.Segments {
		dx -= s.DX
		dy -= s.DY
	}
	return dx, dy
}

// Perimeter returns the number of unit edges around the loop, the closing
// edge included.
func (l Loop) Perimeter() int {
	n := 0
	for _, s := range l.Segments {
		n += s.Length()
	}
	dx, dy := l.Closing()
	return n + abs(dx) + abs(dy)
}

// SignedArea returns the area enclosed by the loop. Outer boundaries run
// clockwise on screen and have a positive area, holes run the other way and
// have a negative one.
func (l Loop) SignedArea() int {
	pts := l.Points()
	sum := 0
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Hole reports whether the loop bounds a hole in a foreground region.
func (l Loop) Hole() bool {
	return l.SignedArea() < 0
}

// Bounds returns the smallest rectangle containing the loop.
func (l Loop) Bounds() image.Rectangle {
	pts := l.Points()
	r := image.Rectangle{Min: image.Pt(pts[0].X, pts[0].Y), Max: image.Pt(pts[0].X, pts[0].Y)}
	for _, p := range pts[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	return r
}
