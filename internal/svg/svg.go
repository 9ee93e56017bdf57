// Package svg renders outline segments in the SVG path mini-language.
//
// Each loop becomes one subpath: an absolute "M x y" to its anchor, relative
// "h" and "v" draws, and a closing "z". Loops are meant to be filled with the
// even-odd rule so that holes stay empty.
package svg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/bitmap-outline-mcp/internal/outline"
)

// PathData returns the SVG path data for segs. An empty sequence gives the
// empty string.
func PathData(segs []outline.Segment) string {
	if len(segs) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(PathLen(segs))
	writePath(&sb, segs)
	return sb.String()
}

func writePath(sb *strings.Builder, segs []outline.Segment) {
	var buf [20]byte
	for i, s := range segs {
		switch {
		case s.IsMove():
			if i > 0 {
				sb.WriteByte('z')
			}
			sb.WriteString("M ")
			sb.Write(strconv.AppendInt(buf[:0], int64(s.DX), 10))
			sb.WriteByte(' ')
			sb.Write(strconv.AppendInt(buf[:0], int64(s.DY), 10))
		case s.Direction.Horizontal():
			sb.WriteByte('h')
			sb.Write(strconv.AppendInt(buf[:0], int64(s.DX), 10))
		case s.Direction.Vertical():
			sb.WriteByte('v')
			sb.Write(strconv.AppendInt(buf[:0], int64(s.DY), 10))
		}
	}
	sb.WriteByte('z')
}

// PathLen returns the length in bytes of PathData(segs).
func PathLen(segs []outline.Segment) int {
	if len(segs) == 0 {
		return 0
	}
	n := 1 // final z
	for i, s := range segs {
		switch {
		case s.IsMove():
			if i > 0 {
				n++
			}
			n += 3 + intLen(s.DX) + intLen(s.DY)
		case s.Direction.Horizontal():
			n += 1 + intLen(s.DX)
		case s.Direction.Vertical():
			n += 1 + intLen(s.DY)
		}
	}
	return n
}

// intLen returns the number of characters of v in decimal.
func intLen(v int) int {
	n := 1
	if v < 0 {
		n++
		v = -v
	}
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}

// Style controls the look of a rendered document.
type Style struct {
	// Fill is the fill colour as a hex string, "#rgb" or "#rrggbb". The
	// default is black.
	Fill string
}

// Document returns a standalone SVG document drawing segs on a canvas of
// width×height units with the even-odd fill rule.
//
// Returns an error if Style.Fill is not a valid hex colour.
func Document(segs []outline.Segment, width, height int, style Style) (string, error) {
	fill := "#000000"
	if style.Fill != "" {
		c, err := colorful.Hex(style.Fill)
		if err != nil {
			return "", fmt.Errorf("invalid fill colour %q: %w", style.Fill, err)
		}
		fill = c.Hex()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		width, height, width, height)
	sb.WriteByte('\n')
	if len(segs) > 0 {
		sb.WriteString(`<path d="`)
		writePath(&sb, segs)
		fmt.Fprintf(&sb, `" fill="%s" fill-rule="evenodd"/>`, fill)
		sb.WriteByte('\n')
	}
	sb.WriteString("</svg>\n")
	return sb.String(), nil
}
