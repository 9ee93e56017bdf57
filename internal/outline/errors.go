package outline

import "errors"

var (
	// ErrInvalidInput reports a raster that cannot be outlined, such as a
	// data length that differs from width*height or a negative size.
	ErrInvalidInput = errors.New("outline: invalid input")

	// ErrStaleState reports a grid that still holds arrows or flags from an
	// earlier extraction. Call Grid.Reset before building it again.
	ErrStaleState = errors.New("outline: stale grid state")

	// ErrPassOrder reports a pass run before the pass it depends on:
	// Classify needs a built grid and Trace needs a classified one.
	ErrPassOrder = errors.New("outline: passes run out of order")

	// ErrInvariantViolation reports a defect in the tracer, for example a loop
	// that stops away from its anchor. The extraction is aborted.
	ErrInvariantViolation = errors.New("outline: invariant violation")
)
