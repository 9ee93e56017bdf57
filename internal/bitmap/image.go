package bitmap

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// FromImage maps a two-colour image onto a bitmap.
//
// Pixels equal to background (compared as non-premultiplied 8-bit RGBA)
// become background cells; the one other colour present becomes foreground.
// The image is first normalised to *image.NRGBA so every colour model is
// compared the same way, and the bitmap origin is the top-left corner of the
// image bounds.
//
// Returns ErrNotBinary if the image contains a third colour.
func FromImage(img image.Image, background color.Color) (*Bitmap, error) {
	src := imaging.Clone(img)
	bounds := src.Bounds()
	b, err := New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	bg := color.NRGBAModel.Convert(background).(color.NRGBA)
	var fg color.NRGBA
	haveFg := false

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := src.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y)
			if c == bg {
				continue
			}
			if !haveFg {
				fg, haveFg = c, true
			} else if c != fg {
				return nil, fmt.Errorf("%w: colour %v at %d,%d besides background %v and foreground %v",
					ErrNotBinary, c, x, y, bg, fg)
			}
			b.Set(x, y, true)
		}
	}
	return b, nil
}
