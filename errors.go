package minirt

import "errors"

// Configuration errors. They are returned by NewRenderer before any worker
// exists; test for them with errors.Is.
var (
	// ErrBlockSize is returned when the image width is not a multiple of the
	// block size.
	ErrBlockSize = errors.New("minirt: image width is not a multiple of the block size")

	// ErrInvalidConfig is returned for non-positive dimensions, worker counts,
	// block sizes or sample counts, and for degenerate view planes.
	ErrInvalidConfig = errors.New("minirt: invalid configuration")
)
