package bitmap

import "image"

// Components holds the connected-component counts of a bitmap.
type Components struct {
	// Regions is the number of 4-connected foreground regions.
	Regions int `json:"regions"`

	// Holes is the number of 8-connected background regions that do not touch
	// the bitmap border.
	Holes int `json:"holes"`
}

// Components counts the foreground regions and enclosed background holes of
// the bitmap.
//
// Foreground cells are joined through shared edges, background cells also
// through shared corners. Background reaching the border is the outside of
// every region and is not a hole.
func (b *Bitmap) Components() Components {
	var c Components
	visited := make([]bool, len(b.Data))

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if visited[y*b.Width+x] || !b.At(x, y) {
				continue
			}
			c.Regions++
			b.floodFill(visited, x, y, true)
		}
	}

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if visited[y*b.Width+x] || b.At(x, y) {
				continue
			}
			if !b.floodFill(visited, x, y, false) {
				c.Holes++
			}
		}
	}
	return c
}

// floodFill marks every cell of the given kind connected to (startX, startY)
// as visited and reports whether the component touches the border.
func (b *Bitmap) floodFill(visited []bool, startX, startY int, fg bool) bool {
	border := false
	stack := []image.Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= b.Width || p.Y < 0 || p.Y >= b.Height {
			continue
		}
		i := p.Y*b.Width + p.X
		if visited[i] || b.At(p.X, p.Y) != fg {
			continue
		}

		visited[i] = true
		if p.X == 0 || p.Y == 0 || p.X == b.Width-1 || p.Y == b.Height-1 {
			border = true
		}

		if fg {
			// 4-connected neighbors
			stack = append(stack,
				image.Pt(p.X+1, p.Y), image.Pt(p.X-1, p.Y),
				image.Pt(p.X, p.Y+1), image.Pt(p.X, p.Y-1))
			continue
		}
		// 8-connected neighbors
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, image.Pt(p.X+dx, p.Y+dy))
			}
		}
	}
	return border
}
