package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/nestframe/internal/config"
	"github.com/san-kum/nestframe/internal/pattern"
	"github.com/san-kum/nestframe/internal/render"
	"github.com/san-kum/nestframe/internal/storage"
	"github.com/san-kum/nestframe/internal/tui"
	"github.com/san-kum/nestframe/internal/web"
)

var (
	dataDir    string
	configFile string
	width      int
	height     int
	padding    int
	preset     string
	theme      string
	format     string
	scale      float64
	save       bool
	noValidate bool
	output     string
	addr       string
	frameRate  int
)

// main registers the nestframe commands and flags. With no subcommand it
// opens the interactive form. It exits with status 1 if a command fails.
func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nestframe",
		Short: "nested frame pattern generator",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(tui.Options{
				Initial: cfg.Dimensions(),
				Limits:  cfg.Limits,
				Theme:   render.GetTheme(cfg.Theme),
				Store:   storage.New(cfg.DataDir),
			})
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", config.DefaultTheme, "colour theme ("+strings.Join(render.ThemeNames(), ", ")+")")

	drawCmd := &cobra.Command{
		Use:   "draw",
		Short: "generate a pattern",
		Args:  cobra.NoArgs,
		RunE:  drawPattern,
	}
	drawCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "grid width")
	drawCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "grid height")
	drawCmd.Flags().IntVar(&padding, "padding", config.DefaultPadding, "spacing between frames")
	drawCmd.Flags().StringVar(&preset, "preset", "", "use preset dimensions")
	drawCmd.Flags().StringVar(&format, "format", "text", "output format (text, styled, json, svg)")
	drawCmd.Flags().Float64Var(&scale, "scale", 8, "svg cell size in pixels")
	drawCmd.Flags().BoolVar(&save, "save", false, "store the drawing in the data directory")
	drawCmd.Flags().BoolVar(&noValidate, "no-validate", false, "skip the form limits")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset dimensions",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved drawings",
		Args:  cobra.NoArgs,
		RunE:  listDrawings,
	}

	showCmd := &cobra.Command{
		Use:   "show [drawing_id]",
		Short: "print a saved drawing",
		Args:  cobra.ExactArgs(1),
		RunE:  showDrawing,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [drawing_id]",
		Short: "export a saved drawing to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	exportSVGCmd.Flags().Float64Var(&scale, "scale", 8, "svg cell size in pixels")

	profileCmd := &cobra.Command{
		Use:   "profile [drawing_id]",
		Short: "plot stroke density per row",
		Args:  cobra.ExactArgs(1),
		RunE:  profileDrawing,
	}

	animateCmd := &cobra.Command{
		Use:   "animate",
		Short: "build the pattern up one frame at a time",
		Args:  cobra.NoArgs,
		RunE:  animate,
	}
	animateCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "grid width")
	animateCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "grid height")
	animateCmd.Flags().IntVar(&padding, "padding", config.DefaultPadding, "spacing between frames")
	animateCmd.Flags().StringVar(&preset, "preset", "", "use preset dimensions")
	animateCmd.Flags().IntVar(&frameRate, "fps", 4, "frame rate")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the form and canvas to browsers",
		Args:  cobra.NoArgs,
		RunE:  serve,
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (default $NESTFRAME_ADDR or config)")

	rootCmd.AddCommand(drawCmd, animateCmd, presetsCmd, listCmd, showCmd, exportSVGCmd, profileCmd, serveCmd)
	return rootCmd
}

// loadConfig merges defaults, the config file and explicitly set flags, in
// that order of precedence.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("data") || configFile == "" {
		cfg.DataDir = dataDir
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Lookup("width") != nil {
		if preset != "" {
			d, ok := config.GetPreset(preset)
			if !ok {
				return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
			}
			cfg.Width, cfg.Height, cfg.Padding = d.Width, d.Height, d.Padding
		}
		if flags.Changed("width") {
			cfg.Width = width
		}
		if flags.Changed("height") {
			cfg.Height = height
		}
		if flags.Changed("padding") {
			cfg.Padding = padding
		}
	}
	return cfg, nil
}

func drawPattern(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	d := cfg.Dimensions()
	if !noValidate {
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	g := d.Generate()
	out := cmd.OutOrStdout()

	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(struct {
			pattern.Dimensions
			Corners []int        `json:"corners"`
			Grid    pattern.Grid `json:"grid"`
		}{d, d.Corners(), g}); err != nil {
			return err
		}
	case "text", "styled", "svg":
		r := render.New(render.WriterSurface{W: out}, render.GetTheme(cfg.Theme))
		r.Format = render.Format(format)
		r.Scale = scale
		if err := r.Draw(g); err != nil {
			return err
		}
		if format == "svg" {
			fmt.Fprintln(out)
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if save {
		st := storage.New(cfg.DataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.Save(d, cfg.Theme, g)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "drawing id: %s\n", id)
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tWIDTH\tHEIGHT\tPADDING\tFRAMES")
	for _, name := range config.ListPresets() {
		d, _ := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n", name, d.Width, d.Height, d.Padding, len(d.Corners()))
	}
	return w.Flush()
}

func openStore(cmd *cobra.Command) (*storage.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return storage.New(cfg.DataDir), nil
}

// loadDrawing reads a saved drawing and picks its theme: the --theme flag when
// set, otherwise the theme it was saved with.
func loadDrawing(cmd *cobra.Command, id string) (*storage.DrawingMetadata, pattern.Grid, render.Theme, error) {
	st, err := openStore(cmd)
	if err != nil {
		return nil, pattern.Grid{}, render.Theme{}, err
	}
	meta, err := st.Load(id)
	if err != nil {
		return nil, pattern.Grid{}, render.Theme{}, err
	}
	g, err := st.LoadGrid(id)
	if err != nil {
		return nil, pattern.Grid{}, render.Theme{}, err
	}

	t := render.GetTheme(meta.Theme)
	if cmd.Flags().Changed("theme") {
		t = render.GetTheme(theme)
	}
	return meta, g, t, nil
}

func listDrawings(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	drawings, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(drawings) == 0 {
		fmt.Fprintln(out, "no drawings found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tWIDTH\tHEIGHT\tPADDING\tFRAMES\tTHEME")
	for _, d := range drawings {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
			d.ID,
			d.Timestamp.Format("2006-01-02 15:04:05"),
			d.Width,
			d.Height,
			d.Padding,
			len(d.Corners),
			d.Theme,
		)
	}
	return w.Flush()
}

func showDrawing(cmd *cobra.Command, args []string) error {
	_, g, t, err := loadDrawing(cmd, args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), render.Styled(g, t))
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	_, g, t, err := loadDrawing(cmd, args[0])
	if err != nil {
		return err
	}
	svg := render.SVG(g, scale, t)

	if output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), svg)
		return nil
	}
	if err := os.WriteFile(output, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
	return nil
}

func profileDrawing(cmd *cobra.Command, args []string) error {
	meta, g, _, err := loadDrawing(cmd, args[0])
	if err != nil {
		return err
	}
	if g.Height() == 0 {
		return fmt.Errorf("no data to plot")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "drawing: %s\n", meta.ID)
	fmt.Fprintf(out, "dimensions: %s\n", meta.Dimensions())
	fmt.Fprintf(out, "corners: %v\n\n", meta.Corners)

	graph := asciigraph.Plot(render.Profile(g),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("stroke cells per row"),
	)
	fmt.Fprintln(out, graph)
	return nil
}

func animate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	live := tui.NewLiveRenderer(cmd.OutOrStdout(), frameRate, render.GetTheme(cfg.Theme))
	return live.Play(ctx, cfg.Dimensions())
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	listen := cfg.Addr
	if env := os.Getenv("NESTFRAME_ADDR"); env != "" {
		listen = env
	}
	if addr != "" {
		listen = addr
	}

	initial := cfg.Dimensions()
	if err := cfg.Validate(); err != nil {
		initial = config.DefaultConfig().Dimensions()
		log.Printf("config dimensions rejected (%v), starting with %s", err, initial)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	srv := web.NewServer(initial, cfg.Limits, render.GetTheme(cfg.Theme), log.Default())
	return srv.ListenAndServe(ctx, listen)
}
