// Package grid stores arbitrary values on a fixed-size 2D grid addressed by
// vec.Vec2 positions, and parses rectangular text blocks into such grids.
//
// What:
//
//   - Map[T] owns a flat row-major slice of exactly Width×Height values
//     (index = y·Width + x). Dimensions never change after construction.
//   - ProxyMap stages a text block (dimensions + flattened characters) until
//     Convert turns it into a typed Map with a caller-supplied parser.
//   - Regions finds 4-connected groups of matching cells; Route finds a
//     minimum-cost 4-connected path between two cells.
//
// Error policy:
//
//   - Recoverable absence: At, Pos and Index return ok=false for positions
//     or indices outside the grid. They never panic.
//   - Programmer error: SetAt panics on an out-of-bounds position, naming the
//     position and the value that could not be stored.
//   - Construction and parsing return sentinel errors (ErrEmptyGrid,
//     ErrNonRectangular, ErrLengthMismatch) matched via errors.Is.
//
// Complexity:
//
//   - InBounds, At, SetAt, Pos: O(1).
//   - FindAll, Clone, Format: O(W×H).
//   - Regions, Route: O(W×H), Memory: O(W×H).
//
// A Map is not safe for concurrent mutation; it is meant to be owned by a
// single component (a canvas, a viewport) that serializes access itself.
package grid
