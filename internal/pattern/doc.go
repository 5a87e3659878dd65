// Package pattern generates nested rectangular frame patterns.
//
// A pattern is a [Grid] of [Symbol] codes built from three numbers:
//
//   - width and height of the grid in cells
//   - padding, twice the number of empty cells between two frames
//
// Generation runs in three phases that can be tested in isolation:
//
//   - [Corners]: diagonal offsets at which frames are anchored
//   - quadrant fill: one vertical and one horizontal line per corner
//   - mirroring: the top-left quadrant is reflected across both axes
//
// # Example
//
//	g := pattern.Generate(20, 20, 4)
//	fmt.Print(g.String())
//
// # Thread Safety
//
// [Generate] touches no shared state and a [Grid] is never modified after it
// is returned, so both are safe for concurrent use.
package pattern
