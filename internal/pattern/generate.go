package pattern

import "fmt"

// Dimensions are the three inputs of a pattern.
type Dimensions struct {
	Width   int `json:"width" yaml:"width"`
	Height  int `json:"height" yaml:"height"`
	Padding int `json:"padding" yaml:"padding"`
}

// Generate builds the pattern for d.
func (d Dimensions) Generate() Grid {
	return Generate(d.Width, d.Height, d.Padding)
}

// Corners returns the corner sequence for d.
func (d Dimensions) Corners() []int {
	return Corners(d.Width, d.Height, d.Padding)
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d/%d", d.Width, d.Height, d.Padding)
}

// Corners returns the diagonal offsets of the nested frames in the top-left
// quadrant: 0, then every padding/2+1 cells while the offset stays below
// min(width, height)/2. Negative padding counts as zero.
func Corners(width, height, padding int) []int {
	maxLength := min(width, height)
	step := max(padding, 0)/2 + 1

	corners := []int{0}
	for next := step; 2*next < maxLength; next += step {
		corners = append(corners, next)
	}
	return corners
}

// Generate returns a grid of nested frames, symmetric across both axes.
//
// Odd sizes are halved with truncation, so the result has 2*(width/2)
// columns and 2*(height/2) rows. Non-positive sizes produce an empty grid.
func Generate(width, height, padding int) Grid {
	width = max(width, 0)
	height = max(height, 0)

	quad := fillQuadrant(Corners(width, height, padding), width/2, height/2)
	return mirror(quad, width/2, height/2)
}

// Frames returns the pattern built up one frame at a time: the k-th grid
// holds the k outermost frames. The last grid equals Generate.
func Frames(width, height, padding int) []Grid {
	width = max(width, 0)
	height = max(height, 0)

	corners := Corners(width, height, padding)
	out := make([]Grid, len(corners))
	for k := range corners {
		quad := fillQuadrant(corners[:k+1], width/2, height/2)
		out[k] = mirror(quad, width/2, height/2)
	}
	return out
}

// fillQuadrant draws, for every corner c, a vertical line down column c and
// then a horizontal line along row c, so horizontal strokes win at (c, c).
func fillQuadrant(corners []int, halfWidth, halfHeight int) [][]Symbol {
	quad := make([][]Symbol, halfHeight)
	for i := range quad {
		quad[i] = make([]Symbol, halfWidth)
	}

	for _, c := range corners {
		if c < halfWidth {
			for i := c; i < halfHeight; i++ {
				quad[i][c] = Vertical
			}
		}
		if c < halfHeight {
			for i := c; i < halfWidth; i++ {
				quad[c][i] = Horizontal
			}
		}
	}
	return quad
}

// mirror reflects the quadrant left-right, then the resulting row block
// top-bottom.
func mirror(quad [][]Symbol, halfWidth, halfHeight int) Grid {
	width, height := 2*halfWidth, 2*halfHeight
	cells := make([]Symbol, 0, width*height)

	rows := make([][]Symbol, halfHeight)
	for i, half := range quad {
		row := make([]Symbol, width)
		copy(row, half)
		for j, s := range half {
			row[width-1-j] = s
		}
		rows[i] = row
	}

	for _, row := range rows {
		cells = append(cells, row...)
	}
	for i := len(rows) - 1; i >= 0; i-- {
		cells = append(cells, rows[i]...)
	}
	return Grid{width: width, height: height, cells: cells}
}
