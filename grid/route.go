package grid

import (
	"container/list"
	"fmt"

	"github.com/katalvlaran/lvlgrid/vec"
)

// Route finds a minimum-cost 4-connected path from one cell to another,
// e.g. to lay out an edge line between two boxes on a canvas.
//
// cost(v) is charged for entering a cell holding v:
//
//   - 0 → free (already part of a corridor)
//   - 1 → one unit
//   - <0 → impassable
//
// Any other positive value is treated as 1. The start cell is never
// charged; the target cell is charged like any other cell, and a negative
// target cost makes it unreachable.
//
// Behavior:
//  1. Validate both positions (ErrOutOfBounds).
//  2. 0-1 BFS: cost-0 moves go to the deque front, cost-1 moves to the back.
//  3. Stop when the target is popped.
//  4. Reconstruct the path from predecessors, start and target included.
//
// Returns ErrNoPath when the target cannot be reached.
// Complexity: O(W·H), Memory: O(W·H).
func (m *Map[T]) Route(from, to vec.Vec2, cost func(T) int) (path []vec.Vec2, total int, err error) {
	src, ok := m.Index(from)
	if !ok {
		return nil, 0, fmt.Errorf("Route: from %v: %w", from, ErrOutOfBounds)
	}
	dst, ok := m.Index(to)
	if !ok {
		return nil, 0, fmt.Errorf("Route: to %v: %w", to, ErrOutOfBounds)
	}

	n := len(m.values)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	dq := list.New()
	dist[src] = 0
	dq.PushFront(src)
	found := false

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			found = true
			break
		}
		up, _ := m.Pos(u)
		for _, nb := range m.Neighbors(up.Sign()) {
			v, _ := m.Index(nb)
			c := cost(m.values[v])
			if c < 0 {
				continue
			}
			step := 0
			if c > 0 {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if !found {
		return nil, 0, fmt.Errorf("Route: %v → %v: %w", from, to, ErrNoPath)
	}
	for at := dst; at >= 0; at = prev[at] {
		p, _ := m.Pos(at)
		path = append(path, p.Sign())
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[dst], nil
}

// Steps converts a path into the unit moves between consecutive cells,
// suitable for rendering with vec.Vec2.Glyph.
func Steps(path []vec.Vec2) []vec.Vec2 {
	if len(path) < 2 {
		return nil
	}
	steps := make([]vec.Vec2, len(path)-1)
	for i := 1; i < len(path); i++ {
		steps[i-1] = path[i].Sub(path[i-1])
	}
	return steps
}
