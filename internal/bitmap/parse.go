package bitmap

import (
	"fmt"
	"unicode/utf8"
)

// Parse builds a bitmap from rows of text.
//
// Foreground cells are written as '#', '1', 'X', 'x' or '*'; background cells
// as '.', '0', ' ' or '_'. Every row must have the same number of characters.
// An empty row list gives an empty bitmap.
//
// # Errors
//
//   - ErrInvalidSize if the rows differ in length
//   - ErrInvalidValue for any other character
func Parse(rows []string) (*Bitmap, error) {
	if len(rows) == 0 {
		return &Bitmap{}, nil
	}
	width := utf8.RuneCountInString(rows[0])
	b, err := New(width, len(rows))
	if err != nil {
		return nil, err
	}

	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSize, y, n, width)
		}
		x := 0
		for _, c := range row {
			switch c {
			case '#', '1', 'X', 'x', '*':
				b.Set(x, y, true)
			case '.', '0', ' ', '_':
			default:
				return nil, fmt.Errorf("%w: %q at row %d column %d", ErrInvalidValue, c, y, x)
			}
			x++
		}
	}
	return b, nil
}

// FromValues builds a bitmap from width*height values in row-major order.
// Every value must be 0 (background) or 1 (foreground).
//
// # Errors
//
//   - ErrInvalidSize if a dimension is negative or the value count differs
//     from width*height
//   - ErrInvalidValue for any value other than 0 or 1
func FromValues(width, height int, values []int) (*Bitmap, error) {
	b, err := New(width, height)
	if err != nil {
		return nil, err
	}
	if len(values) != width*height {
		return nil, fmt.Errorf("%w: got %d values, want %d×%d=%d",
			ErrInvalidSize, len(values), width, height, width*height)
	}
	for i, v := range values {
		switch v {
		case 0:
		case 1:
			b.Data[i] = 1
		default:
			return nil, fmt.Errorf("%w: %d at index %d", ErrInvalidValue, v, i)
		}
	}
	return b, nil
}
