package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/jointviz/internal/colormap"
	"github.com/san-kum/jointviz/internal/config"
	"github.com/san-kum/jointviz/internal/dist"
	"github.com/san-kum/jointviz/internal/export"
	"github.com/san-kum/jointviz/internal/joint"
	"github.com/san-kum/jointviz/internal/viz"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	// Distribution selection
	configFile string
	preset     string
	xDist      string
	yDist      string
	resolution int
	// Rendering
	gradient string
	theme    string
	width    int
	height   int
	rotX     float64
	rotY     float64
	zoom     float64
	// Export
	format  string
	outPath string
	stride  int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jointviz",
		Short: "joint probability density explorer",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetFlags(0)
			log.SetPrefix("jointviz: ")
			if verbose {
				log.SetOutput(os.Stderr)
			} else {
				log.SetOutput(io.Discard)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return viz.RunInteractive(cfg)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
	addDistFlags(rootCmd)
	addViewFlags(rootCmd)

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "draw the joint density surface",
		Args:  cobra.NoArgs,
		RunE:  plotSurface,
	}
	addDistFlags(plotCmd)
	addViewFlags(plotCmd)

	marginalsCmd := &cobra.Command{
		Use:   "marginals",
		Short: "plot both marginal densities",
		Args:  cobra.NoArgs,
		RunE:  plotMarginals,
	}
	addDistFlags(marginalsCmd)
	marginalsCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "plot width")
	marginalsCmd.Flags().IntVar(&height, "height", 10, "plot height")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "write the surface as svg, json or csv",
		Args:  cobra.NoArgs,
		RunE:  exportSurface,
	}
	addDistFlags(exportCmd)
	exportCmd.Flags().StringVar(&gradient, "gradient", config.DefaultGradient, "color gradient ("+strings.Join(colormap.Names(), ", ")+")")
	exportCmd.Flags().StringVarP(&format, "format", "f", "", "output format (svg, json, csv); defaults to the --out extension")
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output path, - for stdout")
	exportCmd.Flags().IntVar(&stride, "stride", 1, "svg grid cells per quad")
	exportCmd.Flags().Float64Var(&rotX, "rot-x", config.DefaultRotX, "svg camera tilt")
	exportCmd.Flags().Float64Var(&rotY, "rot-y", config.DefaultRotY, "svg camera spin")
	exportCmd.Flags().Float64Var(&zoom, "zoom", config.DefaultZoom, "svg camera zoom")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset distribution pairs",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	familiesCmd := &cobra.Command{
		Use:   "families",
		Short: "list supported distribution families",
		Args:  cobra.NoArgs,
		RunE:  listFamilies,
	}

	rootCmd.AddCommand(plotCmd, marginalsCmd, exportCmd, presetsCmd, familiesCmd)
	return rootCmd
}

func addDistFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&xDist, "x", "", "x distribution as family:params, e.g. normal:0,1")
	cmd.Flags().StringVar(&yDist, "y", "", "y distribution as family:params, e.g. uniform:0,1")
	cmd.Flags().IntVar(&resolution, "resolution", config.DefaultResolution, "samples per axis")
}

func addViewFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&gradient, "gradient", config.DefaultGradient, "color gradient ("+strings.Join(colormap.Names(), ", ")+")")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "canvas width in cells")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "canvas height in cells")
	cmd.Flags().Float64Var(&rotX, "rot-x", config.DefaultRotX, "camera tilt")
	cmd.Flags().Float64Var(&rotY, "rot-y", config.DefaultRotY, "camera spin")
	cmd.Flags().Float64Var(&zoom, "zoom", config.DefaultZoom, "camera zoom")
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("x") {
		dc, err := config.ParseDist(xDist)
		if err != nil {
			return nil, fmt.Errorf("--x: %w", err)
		}
		cfg.X = dc
	}
	if flags.Changed("y") {
		dc, err := config.ParseDist(yDist)
		if err != nil {
			return nil, fmt.Errorf("--y: %w", err)
		}
		cfg.Y = dc
	}
	if flags.Changed("resolution") {
		cfg.Resolution = resolution
	}
	if flags.Changed("gradient") {
		cfg.Gradient = gradient
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("width") {
		cfg.View.Width = width
	}
	if flags.Changed("height") {
		cfg.View.Height = height
	}
	if flags.Changed("rot-x") {
		cfg.View.RotX = rotX
	}
	if flags.Changed("rot-y") {
		cfg.View.RotY = rotY
	}
	if flags.Changed("zoom") {
		cfg.View.Zoom = zoom
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Printf("x=%s y=%s resolution=%d", cfg.X, cfg.Y, cfg.Resolution)
	return cfg, nil
}

// buildSurface evaluates cfg. A constant X marginal is reported and
// rendered at the gradient midpoint.
func buildSurface(cfg *config.Config) (*joint.Surface, *colormap.ColorArray, colormap.Gradient, error) {
	x, y, err := cfg.Distributions()
	if err != nil {
		return nil, nil, nil, err
	}
	g, err := colormap.ByName(cfg.Gradient)
	if err != nil {
		return nil, nil, nil, err
	}
	s, colors, err := viz.Prepare(x, y, cfg.JointConfig(), g)
	if errors.Is(err, colormap.ErrDegenerateColorRange) {
		log.Printf("warning: %v", err)
		err = nil
	}
	if err != nil {
		return nil, nil, nil, err
	}
	if s.Capped > 0 {
		log.Printf("capped %d unbounded density samples", s.Capped)
	}
	return s, colors, g, nil
}

func camera(cfg *config.Config) *viz.Camera {
	cam := viz.NewCamera()
	cam.RotX, cam.RotY = cfg.View.RotX, cfg.View.RotY
	if cfg.View.Zoom > 0 {
		cam.Zoom = cfg.View.Zoom
	}
	return cam
}

func plotSurface(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	s, colors, g, err := buildSurface(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), viz.RenderSurface(s, colors, viz.View{
		Width:    cfg.View.Width,
		Height:   cfg.View.Height,
		Camera:   camera(cfg),
		Theme:    viz.GetTheme(cfg.Theme),
		Gradient: g,
	}))
	return nil
}

func plotMarginals(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	s, _, _, err := buildSurface(cfg)
	if err != nil {
		return err
	}
	labels := joint.LabelsFor(s)
	out := cmd.OutOrStdout()
	for _, m := range []struct {
		label string
		d     dist.Dist
		iv    dist.Interval
		pdf   []float64
	}{
		{labels.X, s.X, s.XRange, s.PDFX},
		{labels.Y, s.Y, s.YRange, s.PDFY},
	} {
		fmt.Fprintf(out, "%s\n", m.d)
		fmt.Fprintf(out, "  range %s  mean %.4g  variance %.4g\n\n", m.iv, m.d.Mean(), m.d.Variance())
		fmt.Fprintln(out, viz.MarginalPlot(m.pdf, m.label, width, height))
		fmt.Fprintln(out)
	}
	return nil
}

func exportSurface(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	var f export.Format
	switch {
	case format != "":
		f, err = export.ParseFormat(format)
	case outPath != "" && outPath != "-":
		f, err = export.FormatForPath(outPath)
	default:
		f = export.SVG
	}
	if err != nil {
		return err
	}
	if outPath == "" {
		outPath = "joint." + string(f)
	}

	s, colors, g, err := buildSurface(cfg)
	if err != nil {
		return err
	}
	opts := export.DefaultSVGOptions()
	opts.Camera = camera(cfg)
	opts.Gradient = g
	opts.Stride = stride

	if outPath == "-" {
		return export.Write(cmd.OutOrStdout(), f, s, colors, opts)
	}
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := export.WriteFile(outPath, f, s, colors, opts); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s, %dx%d)\n", outPath, f, s.Rows(), s.Cols())
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tX\tY")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, p.X, p.Y)
	}
	return w.Flush()
}

func listFamilies(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tFAMILY\tPARAMS\tDESCRIPTION")
	for i, f := range dist.Families {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, f, strings.Join(f.ParamNames(), ", "), f.Describe())
	}
	return w.Flush()
}
