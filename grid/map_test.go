package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/vec"
)

// mustValues builds a Map from row-major values or fails the test.
func mustValues[T comparable](t *testing.T, w, h int, values []T) *grid.Map[T] {
	t.Helper()
	m, err := grid.FromValues(w, h, values)
	require.NoError(t, err)
	return m
}

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New and FromValues reject bad shapes.
func TestNew_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		fn   func() error
		err  error
	}{
		{"New zero width", func() error { _, err := grid.New(0, 3, 0); return err }, grid.ErrEmptyGrid},
		{"New negative height", func() error { _, err := grid.New(3, -1, 0); return err }, grid.ErrEmptyGrid},
		{"FromValues zero height", func() error { _, err := grid.FromValues(2, 0, []int{}); return err }, grid.ErrEmptyGrid},
		{"FromValues short", func() error { _, err := grid.FromValues(2, 2, []int{1, 2, 3}); return err }, grid.ErrLengthMismatch},
		{"FromValues long", func() error { _, err := grid.FromValues(1, 1, []int{1, 2}); return err }, grid.ErrLengthMismatch},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := tc.fn()
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.err), "expected errors.Is(%v, %v)", err, tc.err)
		})
	}
}

// TestNew_Fill checks dimensions and fill value of a fresh Map.
func TestNew_Fill(t *testing.T) {
	t.Parallel()

	m, err := grid.New(4, 3, '.')
	require.NoError(t, err)
	assert.Equal(t, 4, m.Width())
	assert.Equal(t, 3, m.Height())
	assert.Equal(t, 12, m.Len())
	assert.Equal(t, vec.Vec2u{X: 4, Y: 3}, m.Dimensions())
	assert.Len(t, m.FindAll('.'), 12)
}

// TestFromValues_Copies ensures the caller's slice is not aliased.
func TestFromValues_Copies(t *testing.T) {
	t.Parallel()

	src := []int{1, 2, 3, 4}
	m := mustValues(t, 2, 2, src)
	src[0] = 99

	v, ok := m.At(vec.Zero)
	require.True(t, ok)
	assert.Equal(t, 1, v)

	out := m.Values()
	out[1] = 42
	v, _ = m.At(vec.X)
	assert.Equal(t, 2, v)
}

//----------------------------------------------------------------------------//
// Bounds, At, SetAt
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds and At on a 3×2 grid.
func TestInBounds(t *testing.T) {
	t.Parallel()

	m := mustValues(t, 3, 2, []int{0, 1, 2, 3, 4, 5})

	valid := []vec.Vec2{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}}
	for _, p := range valid {
		assert.True(t, m.InBounds(p), "InBounds(%v)", p)
	}
	invalid := []vec.Vec2{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: -1}, {X: -5, Y: -5}}
	for _, p := range invalid {
		assert.False(t, m.InBounds(p), "InBounds(%v)", p)
		v, ok := m.At(p)
		assert.False(t, ok, "At(%v) ok", p)
		assert.Zero(t, v)
		_, ok = m.Index(p)
		assert.False(t, ok, "Index(%v) ok", p)
	}
}

// TestAt_RowMajor verifies that At reads values[y*width+x].
func TestAt_RowMajor(t *testing.T) {
	t.Parallel()

	m := mustValues(t, 3, 2, []int{0, 1, 2, 3, 4, 5})
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			v, ok := m.At(vec.Vec2{X: x, Y: y})
			require.True(t, ok)
			assert.Equal(t, y*3+x, v)
		}
	}
}

// TestSetAt_RoundTrip verifies that SetAt changes exactly one cell.
func TestSetAt_RoundTrip(t *testing.T) {
	t.Parallel()

	m, err := grid.New(3, 3, 0)
	require.NoError(t, err)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			p := vec.Vec2{X: x, Y: y}
			before := m.Values()
			m.SetAt(p, 10+y*3+x)

			got, ok := m.At(p)
			require.True(t, ok)
			assert.Equal(t, 10+y*3+x, got)

			after := m.Values()
			i, _ := m.Index(p)
			for j := range after {
				if j != i {
					assert.Equal(t, before[j], after[j], "cell %d changed by SetAt(%v)", j, p)
				}
			}
		}
	}
}

// TestSetAt_OutOfBoundsPanics checks the panic message names position and value.
func TestSetAt_OutOfBoundsPanics(t *testing.T) {
	t.Parallel()

	m, err := grid.New(2, 2, "x")
	require.NoError(t, err)

	assert.PanicsWithValue(t,
		"grid: index out of range: (2,0) = boom (dimensions (2,2))",
		func() { m.SetAt(vec.Vec2{X: 2, Y: 0}, "boom") })
	assert.Panics(t, func() { m.SetAt(vec.Vec2{X: -1, Y: 1}, "y") })

	// nothing was written
	assert.Empty(t, m.FindAll("boom"))
}

//----------------------------------------------------------------------------//
// FindAll, Pos
//----------------------------------------------------------------------------//

// TestScenario_ThreeByOne runs the 3×1 integer scenario end to end.
func TestScenario_ThreeByOne(t *testing.T) {
	t.Parallel()

	m := mustValues(t, 3, 1, []int{0, 0, 0})
	m.SetAt(vec.Vec2{X: 1, Y: 0}, 7)

	assert.Equal(t, []vec.Vec2u{{X: 1, Y: 0}}, m.FindAll(7))
	assert.Equal(t, []vec.Vec2u{{X: 0, Y: 0}, {X: 2, Y: 0}}, m.FindAll(0))
	assert.Nil(t, m.FindAll(3))
}

// TestFindAll_Order verifies row-major ordering and match count.
func TestFindAll_Order(t *testing.T) {
	t.Parallel()

	values := []rune("#..#" + ".#.." + "..##")
	m := mustValues(t, 4, 3, values)

	found := m.FindAll('#')
	want := 0
	for _, r := range values {
		if r == '#' {
			want++
		}
	}
	require.Len(t, found, want)
	for i := 1; i < len(found); i++ {
		prev := found[i-1].Y*4 + found[i-1].X
		cur := found[i].Y*4 + found[i].X
		assert.Less(t, prev, cur, "FindAll not in row-major order at %d", i)
	}
	assert.Equal(t, vec.Vec2u{X: 1, Y: 1}, found[2])
}

// TestPos checks the index→coordinate formula and out-of-range indices.
func TestPos(t *testing.T) {
	t.Parallel()

	m, err := grid.New(4, 3, false)
	require.NoError(t, err)

	for i := 0; i < 12; i++ {
		p, ok := m.Pos(i)
		require.True(t, ok)
		assert.Equal(t, vec.Vec2u{X: uint(i % 4), Y: uint(i / 4)}, p)

		back, ok := m.Index(p.Sign())
		require.True(t, ok)
		assert.Equal(t, i, back)
	}
	for _, i := range []int{12, 13, 100, -1} {
		_, ok := m.Pos(i)
		assert.False(t, ok, "Pos(%d) ok", i)
	}
}

//----------------------------------------------------------------------------//
// Wrap, Neighbors, Clone, Format
//----------------------------------------------------------------------------//

// TestWrap folds out-of-range positions back into the grid.
func TestWrap(t *testing.T) {
	t.Parallel()

	m, err := grid.New(3, 3, 0)
	require.NoError(t, err)

	assert.Equal(t, vec.Vec2{X: 2, Y: 2}, m.Wrap(vec.Vec2{X: -1, Y: 5}))
	assert.Equal(t, vec.Vec2{X: 0, Y: 0}, m.Wrap(vec.Vec2{X: 3, Y: -3}))
	assert.Equal(t, vec.Vec2{X: 1, Y: 2}, m.Wrap(vec.Vec2{X: 1, Y: 2}))
	assert.True(t, m.InBounds(m.Wrap(vec.Vec2{X: -100, Y: 77})))
}

// TestNeighbors verifies cardinal order and clipping at the edges.
func TestNeighbors(t *testing.T) {
	t.Parallel()

	m, err := grid.New(3, 3, 0)
	require.NoError(t, err)

	assert.Equal(t,
		[]vec.Vec2{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 1}},
		m.Neighbors(vec.Vec2{X: 1, Y: 1}))
	assert.Equal(t,
		[]vec.Vec2{{X: 1, Y: 0}, {X: 0, Y: 1}},
		m.Neighbors(vec.Zero))
	assert.Empty(t, m.Neighbors(vec.Vec2{X: 10, Y: 10}))
}

// TestClone ensures clones are independent.
func TestClone(t *testing.T) {
	t.Parallel()

	m := mustValues(t, 2, 1, []string{"a", "b"})
	c := m.Clone()
	c.SetAt(vec.Zero, "z")

	v, _ := m.At(vec.Zero)
	assert.Equal(t, "a", v)
	v, _ = c.At(vec.Zero)
	assert.Equal(t, "z", v)
	assert.Equal(t, m.Dimensions(), c.Dimensions())
}

// TestFormat renders rows joined by newlines.
func TestFormat(t *testing.T) {
	t.Parallel()

	m := mustValues(t, 2, 2, []rune("abcd"))
	assert.Equal(t, "ab\ncd", m.Format(func(r rune) string { return string(r) }))

	n := mustValues(t, 2, 2, []int{1, 2, 3, 4})
	assert.Equal(t, "[1 2]\n[3 4]\n", n.String())
}
