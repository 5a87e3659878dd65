package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/nestframe/internal/pattern"
)

// Text maps every cell through the pattern alphabet. Each row ends with '\n'.
func Text(g pattern.Grid) string {
	return g.String()
}

// Styled renders g like [Text] but colours horizontal and vertical strokes
// with the theme. Runs of equal symbols share one style span.
func Styled(g pattern.Grid, theme Theme) string {
	styles := map[pattern.Symbol]lipgloss.Style{
		pattern.Horizontal: lipgloss.NewStyle().Foreground(theme.Horizontal).Bold(true),
		pattern.Vertical:   lipgloss.NewStyle().Foreground(theme.Vertical).Bold(true),
	}

	var b strings.Builder
	for r := 0; r < g.Height(); r++ {
		row := g.Row(r)
		for start := 0; start < len(row); {
			end := start
			for end < len(row) && row[end] == row[start] {
				end++
			}
			run := strings.Repeat(string(row[start].Rune()), end-start)
			if row[start] == pattern.Empty {
				b.WriteString(run)
			} else {
				b.WriteString(styles[row[start]].Render(run))
			}
			start = end
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Profile counts the stroke cells of every row, top to bottom.
func Profile(g pattern.Grid) []float64 {
	out := make([]float64, g.Height())
	for r := range out {
		for _, s := range g.Row(r) {
			if s != pattern.Empty {
				out[r]++
			}
		}
	}
	return out
}
