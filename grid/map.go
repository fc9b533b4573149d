package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlgrid/vec"
)

// Map is a fixed-size 2D grid of values stored in row-major order.
// len(values) == width*height holds for the lifetime of a Map; the fields are
// unexported so that only New, FromValues and Convert can create one.
type Map[T comparable] struct {
	width, height int
	values        []T
}

// New returns a width×height Map with every cell set to fill.
// Returns ErrEmptyGrid if width or height is not positive.
// Complexity: O(W×H) time and memory.
func New[T comparable](width, height int, fill T) (*Map[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", width, height, ErrEmptyGrid)
	}
	values := make([]T, width*height)
	for i := range values {
		values[i] = fill
	}

	return &Map[T]{width: width, height: height, values: values}, nil
}

// FromValues builds a width×height Map from row-major values.
// The slice is copied so later changes by the caller do not leak in.
// Returns ErrEmptyGrid for non-positive dimensions and ErrLengthMismatch
// when len(values) != width*height.
func FromValues[T comparable](width, height int, values []T) (*Map[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("FromValues(%d,%d): %w", width, height, ErrEmptyGrid)
	}
	if len(values) != width*height {
		return nil, fmt.Errorf("FromValues(%d,%d): got %d values, want %d: %w",
			width, height, len(values), width*height, ErrLengthMismatch)
	}
	cells := make([]T, len(values))
	copy(cells, values)

	return &Map[T]{width: width, height: height, values: cells}, nil
}

// Width returns the number of columns.
func (m *Map[T]) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map[T]) Height() int { return m.height }

// Len returns the number of cells, Width×Height.
func (m *Map[T]) Len() int { return len(m.values) }

// Dimensions returns {Width, Height}.
func (m *Map[T]) Dimensions() vec.Vec2u {
	return vec.Vec2u{X: uint(m.width), Y: uint(m.height)}
}

// InBounds reports whether pos lies within [0,Width)×[0,Height).
// Complexity: O(1).
func (m *Map[T]) InBounds(pos vec.Vec2) bool {
	return pos.X >= 0 && pos.X < m.width && pos.Y >= 0 && pos.Y < m.height
}

// Index maps pos to its row-major index y*Width + x.
// ok is false when pos is out of bounds.
func (m *Map[T]) Index(pos vec.Vec2) (int, bool) {
	if !m.InBounds(pos) {
		return 0, false
	}
	return pos.Y*m.width + pos.X, true
}

// Pos converts a row-major index back to coordinates:
// x = i mod Width, y = i div Width. ok is false when i is outside the
// stored values.
// Complexity: O(1).
func (m *Map[T]) Pos(i int) (vec.Vec2u, bool) {
	if i < 0 || i >= len(m.values) {
		return vec.Vec2u{}, false
	}
	return vec.Vec2u{X: uint(i % m.width), Y: uint(i / m.width)}, true
}

// At returns the value stored at pos. ok is false for any position outside
// the grid, including negative ones; At never panics.
func (m *Map[T]) At(pos vec.Vec2) (T, bool) {
	i, ok := m.Index(pos)
	if !ok {
		var zero T
		return zero, false
	}
	return m.values[i], true
}

// SetAt overwrites the value at pos.
// An out-of-bounds pos is a programmer error: SetAt panics with a message
// naming the position and the value. It never clamps or wraps; use Wrap
// first for toroidal coordinates.
func (m *Map[T]) SetAt(pos vec.Vec2, value T) {
	i, ok := m.Index(pos)
	if !ok {
		panic(fmt.Sprintf("grid: index out of range: %v = %v (dimensions %v)",
			pos, value, m.Dimensions()))
	}
	m.values[i] = value
}

// FindAll returns the positions of every cell equal to target, in row-major
// order. It returns nil when nothing matches.
// Complexity: O(W×H).
func (m *Map[T]) FindAll(target T) []vec.Vec2u {
	var found []vec.Vec2u
	for i, v := range m.values {
		if v != target {
			continue
		}
		p, _ := m.Pos(i)
		found = append(found, p)
	}
	return found
}

// Wrap folds pos into the grid with a Euclidean remainder, so (-1,0) maps
// to (Width-1,0). The result is always in bounds.
func (m *Map[T]) Wrap(pos vec.Vec2) vec.Vec2 {
	return pos.Rem(vec.Vec2{X: m.width, Y: m.height})
}

// Neighbors returns the in-bounds cardinal neighbours of pos in the order
// up, right, down, left.
func (m *Map[T]) Neighbors(pos vec.Vec2) []vec.Vec2 {
	out := make([]vec.Vec2, 0, 4)
	for _, d := range vec.Cardinal() {
		if n := pos.Add(d); m.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Values returns a row-major copy of all cells.
func (m *Map[T]) Values() []T {
	out := make([]T, len(m.values))
	copy(out, m.values)
	return out
}

// Clone returns a deep copy of m. Mutations on either side are independent.
func (m *Map[T]) Clone() *Map[T] {
	return &Map[T]{width: m.width, height: m.height, values: m.Values()}
}

// Format renders m one row per line, joining rendered cells without
// separators. Rows are joined with "\n" and there is no trailing newline,
// so a Map parsed from text with Runes formats back to the same text.
func (m *Map[T]) Format(render func(T) string) string {
	var sb strings.Builder
	for y := 0; y < m.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range m.values[y*m.width : (y+1)*m.width] {
			sb.WriteString(render(v))
		}
	}
	return sb.String()
}

// String renders m with fmt's %v per cell, one bracketed row per line.
func (m *Map[T]) String() string {
	var sb strings.Builder
	for y := 0; y < m.height; y++ {
		fmt.Fprintf(&sb, "%v\n", m.values[y*m.width:(y+1)*m.width])
	}
	return sb.String()
}
