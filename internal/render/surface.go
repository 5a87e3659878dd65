package render

import (
	"fmt"
	"io"

	"github.com/san-kum/nestframe/internal/pattern"
)

// Surface is where rendered art ends up.
type Surface interface {
	Display(art string) error
}

// WriterSurface appends art to an io.Writer.
type WriterSurface struct {
	W io.Writer
}

func (s WriterSurface) Display(art string) error {
	_, err := io.WriteString(s.W, art)
	return err
}

// Format selects the text form handed to a Surface.
type Format string

const (
	FormatText   Format = "text"
	FormatStyled Format = "styled"
	FormatSVG    Format = "svg"
)

// Renderer converts grids and pushes them to a Surface.
type Renderer struct {
	Surface Surface
	Theme   Theme
	Format  Format
	Scale   float64
}

func New(surface Surface, theme Theme) *Renderer {
	return &Renderer{Surface: surface, Theme: theme, Format: FormatText, Scale: 8}
}

// Render returns g in the renderer's format.
func (r *Renderer) Render(g pattern.Grid) (string, error) {
	switch r.Format {
	case FormatText, "":
		return Text(g), nil
	case FormatStyled:
		return Styled(g, r.Theme), nil
	case FormatSVG:
		return SVG(g, r.Scale, r.Theme), nil
	}
	return "", fmt.Errorf("render: unknown format %q", r.Format)
}

// Draw renders g and displays it on the surface.
func (r *Renderer) Draw(g pattern.Grid) error {
	art, err := r.Render(g)
	if err != nil {
		return err
	}
	return r.Surface.Display(art)
}
