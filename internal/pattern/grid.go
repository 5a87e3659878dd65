package pattern

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Grid is an immutable height x width matrix of symbols, stored row-major.
// The zero value is an empty grid.
type Grid struct {
	width  int
	height int
	cells  []Symbol
}

// NewGrid copies rows into a Grid. All rows must have the same length.
func NewGrid(rows [][]Symbol) (Grid, error) {
	if len(rows) == 0 {
		return Grid{}, nil
	}
	width := len(rows[0])
	cells := make([]Symbol, 0, width*len(rows))
	for i, row := range rows {
		if len(row) != width {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, i, len(row), width)
		}
		for j, s := range row {
			if !s.Valid() {
				return Grid{}, fmt.Errorf("%w: code %d at (%d,%d)", ErrUnknownSymbol, s, i, j)
			}
		}
		cells = append(cells, row...)
	}
	return Grid{width: width, height: len(rows), cells: cells}, nil
}

// ParseGrid reads the text form produced by [Grid.String].
func ParseGrid(text string) (Grid, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if text == "" {
		return Grid{}, nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	rows := make([][]Symbol, len(lines))
	for i, line := range lines {
		row := make([]Symbol, 0, len(line))
		for _, r := range line {
			s, ok := SymbolFromRune(r)
			if !ok {
				return Grid{}, fmt.Errorf("%w: %q on line %d", ErrUnknownSymbol, r, i+1)
			}
			row = append(row, s)
		}
		rows[i] = row
	}
	return NewGrid(rows)
}

func (g Grid) Width() int  { return g.width }
func (g Grid) Height() int { return g.height }

// At returns the symbol at (row, col). Out of range cells read as Empty.
func (g Grid) At(row, col int) Symbol {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return Empty
	}
	return g.cells[row*g.width+col]
}

// Row returns a copy of one row.
func (g Grid) Row(row int) []Symbol {
	if row < 0 || row >= g.height {
		return nil
	}
	out := make([]Symbol, g.width)
	copy(out, g.cells[row*g.width:(row+1)*g.width])
	return out
}

// Rows returns a copy of the whole grid.
func (g Grid) Rows() [][]Symbol {
	rows := make([][]Symbol, g.height)
	for i := range rows {
		rows[i] = g.Row(i)
	}
	return rows
}

// Codes returns the grid as integer symbol codes.
func (g Grid) Codes() [][]int {
	codes := make([][]int, g.height)
	for i := range codes {
		codes[i] = make([]int, g.width)
		for j := range codes[i] {
			codes[i][j] = int(g.cells[i*g.width+j])
		}
	}
	return codes
}

// Count returns how many cells hold s.
func (g Grid) Count(s Symbol) int {
	n := 0
	for _, c := range g.cells {
		if c == s {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same shape and contents.
func (g Grid) Equal(other Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid with [Alphabet], terminating every row with '\n'.
func (g Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for i := 0; i < g.height; i++ {
		for _, s := range g.cells[i*g.width : (i+1)*g.width] {
			b.WriteRune(s.Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// MarshalJSON encodes the grid as a matrix of symbol codes.
func (g Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Codes())
}

// UnmarshalJSON decodes a matrix of symbol codes.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var codes [][]int
	if err := json.Unmarshal(data, &codes); err != nil {
		return err
	}
	rows := make([][]Symbol, len(codes))
	for i, row := range codes {
		rows[i] = make([]Symbol, len(row))
		for j, c := range row {
			if c < 0 || c >= len(Alphabet) {
				return fmt.Errorf("%w: code %d at (%d,%d)", ErrUnknownSymbol, c, i, j)
			}
			rows[i][j] = Symbol(c)
		}
	}
	parsed, err := NewGrid(rows)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
