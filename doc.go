// Package lvlgrid is a small 2D spatial substrate: integer vectors and
// fixed-size grids of arbitrary values, plus a parser that turns plain
// rectangular text into typed grids.
//
// What is inside:
//
//	vec/  — Vec2 (signed) and Vec2u (unsigned) vectors: arithmetic,
//	        Euclidean wrap-around, sign conversion, cardinal directions
//	        and direction glyphs (o ^ > v <).
//	grid/ — Map[T]: row-major storage with bounds-checked access,
//	        FindAll, Regions and Route; ProxyMap: text → Map[T] staging.
//	cmd/lvlgrid/ — CLI to inspect text grid files.
//
// Quick ASCII example:
//
//	#.#        m, _ := grid.ParseMap(text, grid.Runes)
//	.@.        m.FindAll('@')  // [(1,1)]
//	#.#        m.Dimensions()  // (3,3)
//
// Consumers (a canvas, a viewport, an editor) own a Map and address it
// with vec.Vec2 positions; nothing here renders, persists or lays out.
//
//	go get github.com/katalvlaran/lvlgrid
package lvlgrid
