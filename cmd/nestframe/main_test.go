package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/san-kum/nestframe/internal/pattern"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDrawText(t *testing.T) {
	out, _, err := run(t, "draw")
	require.NoError(t, err)
	require.Equal(t, pattern.Generate(20, 20, 4).String(), out)
}

func TestDrawPreset(t *testing.T) {
	out, _, err := run(t, "draw", "--preset", "banner")
	require.NoError(t, err)
	require.Equal(t, pattern.Generate(120, 40, 4).String(), out)

	out, _, err = run(t, "draw", "--preset", "banner", "--height", "20")
	require.NoError(t, err)
	require.Equal(t, pattern.Generate(120, 20, 4).String(), out, "flags override presets")

	_, _, err = run(t, "draw", "--preset", "nope")
	require.ErrorContains(t, err, "unknown preset")
}

func TestDrawJSON(t *testing.T) {
	out, _, err := run(t, "draw", "--format", "json", "--width", "24")
	require.NoError(t, err)

	var got struct {
		Width   int     `json:"width"`
		Height  int     `json:"height"`
		Padding int     `json:"padding"`
		Corners []int   `json:"corners"`
		Grid    [][]int `json:"grid"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, 24, got.Width)
	require.Equal(t, []int{0, 3, 6, 9}, got.Corners)
	require.Len(t, got.Grid, 20)
	require.Len(t, got.Grid[0], 24)
}

func TestDrawValidation(t *testing.T) {
	_, _, err := run(t, "draw", "--width", "21")
	require.EqualError(t, err, "Width must be even")

	out, _, err := run(t, "draw", "--width", "8", "--height", "8", "--padding", "2", "--no-validate")
	require.NoError(t, err)
	require.Equal(t, pattern.Generate(8, 8, 2).String(), out)

	_, _, err = run(t, "draw", "--format", "gif")
	require.ErrorContains(t, err, "unknown format")
}

func TestDrawSVG(t *testing.T) {
	out, _, err := run(t, "draw", "--format", "svg", "--scale", "4")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "<?xml"))
	require.Contains(t, out, `width="80" height="160"`)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nestframe.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 40\nheight: 30\npadding: 6\n"), 0644))

	out, _, err := run(t, "draw", "--config", path)
	require.NoError(t, err)
	require.Equal(t, pattern.Generate(40, 30, 6).String(), out)

	out, _, err = run(t, "draw", "--config", path, "--padding", "4")
	require.NoError(t, err)
	require.Equal(t, pattern.Generate(40, 30, 4).String(), out)
}

func TestSavedDrawings(t *testing.T) {
	data := t.TempDir()

	out, _, err := run(t, "list", "--data", data)
	require.NoError(t, err)
	require.Contains(t, out, "no drawings found")

	_, stderr, err := run(t, "draw", "--data", data, "--save", "--theme", "ocean")
	require.NoError(t, err)
	id := strings.TrimSpace(strings.TrimPrefix(stderr, "drawing id:"))
	require.NotEmpty(t, id)

	out, _, err = run(t, "list", "--data", data)
	require.NoError(t, err)
	require.Contains(t, out, id)
	require.Contains(t, out, "ocean")

	out, _, err = run(t, "show", id, "--data", data)
	require.NoError(t, err)
	require.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 20)

	out, _, err = run(t, "profile", id, "--data", data)
	require.NoError(t, err)
	require.Contains(t, out, "corners: [0 3 6 9]")
	require.Contains(t, out, "stroke cells per row")

	svgPath := filepath.Join(t.TempDir(), "out.svg")
	_, _, err = run(t, "export-svg", id, "--data", data, "-o", svgPath)
	require.NoError(t, err)
	svg, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	require.Contains(t, string(svg), "</svg>")

	_, _, err = run(t, "show", "missing", "--data", data)
	require.Error(t, err)
}

func TestPresetsCommand(t *testing.T) {
	out, _, err := run(t, "presets")
	require.NoError(t, err)
	for _, name := range []string{"banner", "default", "dense", "square", "wide"} {
		require.Contains(t, out, name)
	}
}

func TestAnimate(t *testing.T) {
	out, _, err := run(t, "animate", "--fps", "1000")
	require.NoError(t, err)
	require.Contains(t, out, "frame 4/4")

	_, _, err = run(t, "animate", "--padding", "3")
	require.EqualError(t, err, "Padding must be at least 4")
}
