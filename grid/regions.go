package grid

import "github.com/katalvlaran/lvlgrid/vec"

// Regions finds all 4-connected groups of cells for which match returns
// true. Regions are listed in the row-major order of their first cell;
// cells inside a region are in BFS order from that cell.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (m *Map[T]) Regions(match func(T) bool) [][]vec.Vec2u {
	seen := make([]bool, len(m.values))
	var regions [][]vec.Vec2u

	for i0, v := range m.values {
		if seen[i0] || !match(v) {
			continue
		}
		// BFS over flat indices
		queue := []int{i0}
		seen[i0] = true
		var region []vec.Vec2u

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			up, _ := m.Pos(u)
			region = append(region, up)
			for _, n := range m.Neighbors(up.Sign()) {
				ni, _ := m.Index(n)
				if seen[ni] || !match(m.values[ni]) {
					continue
				}
				seen[ni] = true
				queue = append(queue, ni)
			}
		}
		regions = append(regions, region)
	}
	return regions
}
