package bitmap

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSize reports a negative size or a cell count that does not
	// match the size.
	ErrInvalidSize = errors.New("bitmap: invalid size")

	// ErrInvalidValue reports a cell value or character that is neither
	// foreground nor background.
	ErrInvalidValue = errors.New("bitmap: invalid cell value")

	// ErrNotBinary reports an image with more than two colours.
	ErrNotBinary = errors.New("bitmap: image is not binary")
)

// Bitmap is a binary raster stored in row-major order.
type Bitmap struct {
	// Width is the number of cells per row.
	Width int `json:"width"`

	// Height is the number of rows.
	Height int `json:"height"`

	// Data holds Width*Height cells, 1 for foreground and 0 for background.
	Data []byte `json:"data"`
}

// New returns an all-background bitmap of the given size.
//
// Returns ErrInvalidSize if either dimension is negative.
func New(width, height int) (*Bitmap, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrInvalidSize, width, height)
	}
	return &Bitmap{
		Width:  width,
		Height: height,
		Data:   make([]byte, width*height),
	}, nil
}

// At reports whether cell (x, y) is foreground. Cells outside the bitmap are
// background.
func (b *Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return false
	}
	return b.Data[y*b.Width+x] != 0
}

// Set sets cell (x, y) to foreground or background. Positions outside the
// bitmap are ignored.
func (b *Bitmap) Set(x, y int, fg bool) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	var v byte
	if fg {
		v = 1
	}
	b.Data[y*b.Width+x] = v
}

// Count returns the number of foreground cells.
func (b *Bitmap) Count() int {
	n := 0
	for _, v := range b.Data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Rows renders the bitmap as one string per row, '#' for foreground and '.'
// for background. Parse reads this form back.
func (b *Bitmap) Rows() []string {
	rows := make([]string, b.Height)
	var sb strings.Builder
	for y := range rows {
		sb.Reset()
		for x := 0; x < b.Width; x++ {
			if b.At(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// String returns the rows of the bitmap separated by newlines.
func (b *Bitmap) String() string {
	return strings.Join(b.Rows(), "\n")
}
