// Package vector converts outline segments into seehuhn.de/go/geom paths.
//
// The resulting *path.Data holds one closed subpath per loop with absolute
// coordinates, one unit per raster cell and y growing downward. Filled with
// the even-odd rule it covers exactly the foreground cells of the raster.
package vector

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/ironsheep/bitmap-outline-mcp/internal/outline"
)

// Path builds a path with a MoveTo for every loop anchor, a LineTo for every
// draw and a Close at the end of every loop.
func Path(segs []outline.Segment) *path.Data {
	p := &path.Data{}
	var cur vec.Vec2
	open := false
	for _, s := range segs {
		if s.IsMove() {
			if open {
				p = p.Close()
			}
			cur = vec.Vec2{X: float64(s.DX), Y: float64(s.DY)}
			p = p.MoveTo(cur)
			open = true
			continue
		}
		if !open {
			continue
		}
		cur = vec.Vec2{X: cur.X + float64(s.DX), Y: cur.Y + float64(s.DY)}
		p = p.LineTo(cur)
	}
	if open {
		p = p.Close()
	}
	return p
}

// Polygons returns the vertices of every subpath of p, one slice per
// subpath. Only straight segments are expected; the end points of curves are
// kept as vertices.
func Polygons(p *path.Data) [][]vec.Vec2 {
	var polys [][]vec.Vec2
	var cur []vec.Vec2
	flush := func() {
		if len(cur) > 0 {
			polys = append(polys, cur)
			cur = nil
		}
	}

	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			cur = append(cur, pts[0])
		case path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo:
			cur = append(cur, pts[len(pts)-1])
		case path.CmdClose:
			flush()
		}
	}
	flush()
	return polys
}

// Contains reports whether (x, y) lies inside p under the even-odd rule.
// Every subpath is treated as closed. Points exactly on an edge may fall
// either way.
func Contains(p *path.Data, x, y float64) bool {
	inside := false
	for _, poly := range Polygons(p) {
		for i, a := range poly {
			b := poly[(i+1)%len(poly)]
			if (a.Y > y) == (b.Y > y) {
				continue
			}
			if x < a.X+(y-a.Y)*(b.X-a.X)/(b.Y-a.Y) {
				inside = !inside
			}
		}
	}
	return inside
}
