package bitmap

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultBackground is the background colour FromPixels assumes when none is
// given.
const DefaultBackground = "#ffffff"

// FromPixels builds a bitmap from a two-colour picture given as hex colours.
//
// Parameters:
//   - rows: One slice per pixel row, each pixel written as "#rgb" or
//     "#rrggbb". Every row must have the same number of pixels.
//   - background: The colour of background pixels in the same notation.
//     Empty means DefaultBackground.
//
// Returns:
//   - *Bitmap: Background pixels as background cells, the one other colour
//     as foreground. No rows give an empty bitmap.
//   - error: Non-nil if the picture cannot be read or is not two-coloured.
//
// The pixels are drawn into an *image.NRGBA and mapped with FromImage.
//
// # Errors
//
//   - ErrInvalidSize if the rows differ in length
//   - ErrInvalidValue if a pixel or the background is not a hex colour
//   - ErrNotBinary if a third colour is present
func FromPixels(rows [][]string, background string) (*Bitmap, error) {
	if background == "" {
		background = DefaultBackground
	}
	bg, err := parseHex(background)
	if err != nil {
		return nil, fmt.Errorf("%w: background %q: %v", ErrInvalidValue, background, err)
	}
	if len(rows) == 0 {
		return &Bitmap{}, nil
	}

	width := len(rows[0])
	img := image.NewNRGBA(image.Rect(0, 0, width, len(rows)))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: pixel row %d has %d pixels, want %d", ErrInvalidSize, y, len(row), width)
		}
		for x, hex := range row {
			c, err := parseHex(hex)
			if err != nil {
				return nil, fmt.Errorf("%w: pixel %q at row %d column %d: %v", ErrInvalidValue, hex, y, x, err)
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return FromImage(img, bg)
}

// parseHex reads an opaque colour in "#rgb" or "#rrggbb" notation.
func parseHex(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}
