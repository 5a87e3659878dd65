package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/san-kum/nestframe/internal/pattern"
	"github.com/san-kum/nestframe/internal/render"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer plays a pattern as an animation that adds one nested frame
// per tick.
type LiveRenderer struct {
	out       io.Writer
	frameRate int
	theme     render.Theme
}

func NewLiveRenderer(out io.Writer, frameRate int, theme render.Theme) *LiveRenderer {
	if frameRate <= 0 {
		frameRate = 4
	}
	return &LiveRenderer{out: out, frameRate: frameRate, theme: theme}
}

// Play draws every build-up step of d and stops early when ctx is canceled.
func (r *LiveRenderer) Play(ctx context.Context, d pattern.Dimensions) error {
	frames := pattern.Frames(d.Width, d.Height, d.Padding)

	fmt.Fprint(r.out, hideCursor)
	defer fmt.Fprint(r.out, showCursor)

	ticker := time.NewTicker(time.Second / time.Duration(r.frameRate))
	defer ticker.Stop()

	for i, g := range frames {
		if err := r.render(g, d, i+1, len(frames)); err != nil {
			return err
		}
		if i == len(frames)-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

func (r *LiveRenderer) render(g pattern.Grid, d pattern.Dimensions, frame, total int) error {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("   %s  %s\n\n", cyan.Render(d.String()), dim.Render(fmt.Sprintf("frame %d/%d", frame, total))))
	for _, line := range strings.Split(strings.TrimSuffix(render.Styled(g, r.theme), "\n"), "\n") {
		b.WriteString("   " + line + "\n")
	}
	_, err := io.WriteString(r.out, b.String())
	return err
}
