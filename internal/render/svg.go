package render

import (
	"fmt"
	"strings"

	"github.com/san-kum/nestframe/internal/pattern"
)

// SVG draws every stroke cell as a short line segment: horizontal cells as
// a horizontal segment through the cell centre, vertical cells as a vertical
// one. Each cell is scale x 2*scale pixels to keep the terminal aspect ratio.
func SVG(g pattern.Grid, scale float64, theme Theme) string {
	if scale <= 0 {
		scale = 8
	}
	cellW := scale
	cellH := scale * 2
	width := float64(g.Width()) * cellW
	height := float64(g.Height()) * cellH

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, theme.Background))

	strokeWidth := scale * 0.25
	groups := []struct {
		sym   pattern.Symbol
		color string
	}{
		{pattern.Horizontal, string(theme.Horizontal)},
		{pattern.Vertical, string(theme.Vertical)},
	}

	for _, grp := range groups {
		sb.WriteString(fmt.Sprintf(`<g stroke="%s" stroke-width="%.1f" stroke-linecap="square">
`, grp.color, strokeWidth))
		for row := 0; row < g.Height(); row++ {
			for col := 0; col < g.Width(); col++ {
				if g.At(row, col) != grp.sym {
					continue
				}
				x := float64(col) * cellW
				y := float64(row) * cellH
				if grp.sym == pattern.Horizontal {
					sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, x, y+cellH/2, x+cellW, y+cellH/2))
				} else {
					sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, x+cellW/2, y, x+cellW/2, y+cellH))
				}
			}
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}
