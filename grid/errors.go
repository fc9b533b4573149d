package grid

import "errors"

// Sentinel errors for grid operations. Callers match them with errors.Is;
// call sites may wrap them with extra context via fmt.Errorf("...: %w", ErrX).
var (
	// ErrEmptyGrid indicates a grid or text block without rows or columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates text rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrLengthMismatch indicates a value sequence whose length is not width*height.
	ErrLengthMismatch = errors.New("grid: value count does not match width*height")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrNoPath indicates no route exists between two positions.
	ErrNoPath = errors.New("grid: no path between positions")
)
