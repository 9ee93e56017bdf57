package outline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// maxRetainedSegments caps the segment buffer an Outliner keeps between
// calls. Larger results are left to the caller.
const maxRetainedSegments = 1 << 16

// Outliner extracts the contours of rasters of one fixed size. It owns its
// arrow grid and segment buffer and reuses both across calls.
//
// An Outliner is not safe for concurrent use.
type Outliner struct {
	grid *Grid
	data []byte
	segs []Segment
}

// NewOutliner returns an outliner for rasters of width×height cells.
func NewOutliner(width, height int) (*Outliner, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative raster size %d×%d", ErrInvalidInput, width, height)
	}
	return &Outliner{grid: NewGrid(width, height)}, nil
}

// Size returns the raster size the outliner accepts.
func (o *Outliner) Size() (width, height int) {
	return o.grid.Raster()
}

// Grid returns the arrow grid of the last extraction.
func (o *Outliner) Grid() *Grid {
	return o.grid
}

// FindPaths extracts the closed contours of a raster.
//
// Parameters:
//   - data: width*height cells in row-major order, non-zero for foreground.
//     The outliner keeps a copy for Dump.
//
// Returns:
//   - []Segment: One move-to per loop followed by its draws. Outer boundaries
//     run clockwise on screen and holes counter-clockwise. A raster with zero
//     width or height, or without foreground, yields an empty sequence.
//   - error: Non-nil if the raster was rejected or an internal check failed.
//
// The grid is cleared first, so repeated calls are independent. The returned
// slice may share the outliner's buffer and be overwritten by the next call;
// copy it to keep it. Buffers above maxRetainedSegments are handed to the
// caller and not kept.
//
// # Errors
//
//   - ErrInvalidInput if len(data) differs from width*height
//   - ErrInvariantViolation if a loop fails to close
func (o *Outliner) FindPaths(data []byte) ([]Segment, error) {
	g := o.grid
	if len(data) != g.width*g.height {
		return nil, fmt.Errorf("%w: raster has %d cells, want %d×%d=%d",
			ErrInvalidInput, len(data), g.width, g.height, g.width*g.height)
	}

	g.Reset()
	o.data = append(o.data[:0], data...)
	if err := g.Build(data); err != nil {
		return nil, err
	}
	if err := g.Classify(); err != nil {
		return nil, err
	}
	segs, err := g.Trace(o.segs[:0])
	if cap(segs) > maxRetainedSegments {
		o.segs = nil
	} else {
		o.segs = segs
	}
	if err != nil {
		return nil, err
	}

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		loops := 0
		for _, s := range segs {
			if s.IsMove() {
				loops++
			}
		}
		l.Debug("outline extracted",
			slog.Int("width", g.width),
			slog.Int("height", g.height),
			slog.Int("loops", loops),
			slog.Int("segments", len(segs)))
	}
	return segs, nil
}

// Dump writes the arrow grid of the last extraction to w. See Grid.Dump.
func (o *Outliner) Dump(w io.Writer, colour bool) error {
	return o.grid.Dump(w, o.data, colour)
}

// Outline extracts the contours of a single raster. The result is not shared
// with any other call.
func Outline(width, height int, data []byte) ([]Segment, error) {
	o, err := NewOutliner(width, height)
	if err != nil {
		return nil, err
	}
	return o.FindPaths(data)
}
