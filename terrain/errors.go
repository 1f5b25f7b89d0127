package terrain

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("terrain: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("terrain: all rows must have the same length")
	// ErrNegativeElevation indicates an elevation below zero in the input grid.
	ErrNegativeElevation = errors.New("terrain: elevation must be non-negative")
)
