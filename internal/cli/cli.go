// Package cli implements the headless bezplot commands shared by both
// binaries.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"bezplot/pkg/api"
	"bezplot/pkg/bezier"
	"bezplot/pkg/editor"
	"bezplot/pkg/graphics"
	"bezplot/pkg/raster"
)

// ErrUsage marks errors caused by bad command line input.
var ErrUsage = errors.New("usage")

// settings holds every flag a command may read.
type settings struct {
	points  []graphics.Point
	output  string
	width   int
	height  int
	fit     bool
	steps   int
	toEnd   bool
	t       float64
	tSet    bool
	cursor  graphics.Point
	cSet    bool
	radius  float64
	verbose bool
	opts    []api.Option
}

func defaultSettings() settings {
	return settings{
		output: "curve.png",
		width:  800,
		height: 600,
		steps:  bezier.DefaultSteps,
		radius: bezier.DefaultSelectionRadius,
	}
}

func usageErr(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrUsage}, args...)...)
}

// parseArgs reads flags of the form "-name value" or "-name".
func parseArgs(args []string) (settings, error) {
	s := defaultSettings()

	value := func(i int) (string, error) {
		if i+1 >= len(args) {
			return "", usageErr("%s needs a value", args[i])
		}
		return args[i+1], nil
	}
	number := func(i int) (float64, error) {
		v, err := value(i)
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, usageErr("%s: %v", args[i], err)
		}
		return f, nil
	}
	integer := func(i int) (int, error) {
		v, err := value(i)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, usageErr("%s: %v", args[i], err)
		}
		return n, nil
	}

	for i := 0; i < len(args); i++ {
		var err error
		switch args[i] {
		case "-p":
			var v string
			if v, err = value(i); err == nil {
				if s.points, err = graphics.ParsePoints(v); err != nil {
					err = usageErr("-p: %v", err)
				}
			}
			i++
		case "-o":
			s.output, err = value(i)
			i++
		case "-w":
			s.width, err = integer(i)
			i++
		case "-h":
			s.height, err = integer(i)
			i++
		case "-scale":
			var f float64
			f, err = number(i)
			s.opts = append(s.opts, api.Scale(f))
			i++
		case "-fit":
			s.fit = true
		case "-steps":
			s.steps, err = integer(i)
			i++
		case "-end":
			s.toEnd = true
		case "-t":
			s.t, err = number(i)
			s.tSet = true
			i++
		case "-c":
			var v string
			if v, err = value(i); err == nil {
				if s.cursor, err = graphics.ParsePoint(v); err != nil {
					err = usageErr("-c: %v", err)
				}
			}
			s.cSet = true
			i++
		case "-r":
			s.radius, err = number(i)
			i++
		case "-bg":
			var v string
			var c graphics.Color
			if v, err = value(i); err == nil {
				if c, err = raster.ParseColor(v); err != nil {
					err = usageErr("-bg: %v", err)
				}
			}
			s.opts = append(s.opts, api.Background(c))
			i++
		case "-transparent":
			s.opts = append(s.opts, api.Transparent())
		case "-no-polygon":
			s.opts = append(s.opts, api.NoControlPolygon())
		case "-no-markers":
			s.opts = append(s.opts, api.NoMarkers())
		case "-v":
			s.verbose = true
		default:
			err = usageErr("unknown flag %q", args[i])
		}
		if err != nil {
			return s, err
		}
	}

	if s.width <= 0 || s.height <= 0 {
		return s, usageErr("invalid size %dx%d", s.width, s.height)
	}
	return s, nil
}

// renderOptions collects the api options implied by the settings.
func (s *settings) renderOptions() []api.Option {
	opts := append([]api.Option{api.Steps(s.steps)}, s.opts...)
	if s.toEnd {
		opts = append(opts, api.IncludeEndpoint())
	}
	if s.fit {
		opts = append(opts, api.Fit(16))
	}
	return opts
}

// EnableDebugLogging routes editor, raster and export logs to stderr.
func EnableDebugLogging() {
	editor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

// IsCommand reports whether name is a headless command.
func IsCommand(name string) bool {
	switch name {
	case "render", "sample", "eval", "hit":
		return true
	}
	return false
}

// Run executes a headless command. args[0] is the command name.
func Run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return usageErr("missing command")
	}

	s, err := parseArgs(args[1:])
	if err != nil {
		return err
	}
	if s.verbose {
		EnableDebugLogging()
	}

	switch args[0] {
	case "render":
		return cmdRender(&s, out)
	case "sample":
		return cmdSample(&s, out)
	case "eval":
		return cmdEval(&s, out)
	case "hit":
		return cmdHit(&s, out)
	default:
		return usageErr("unknown command %q", args[0])
	}
}

// ParseGUIArgs returns the points given with -p and whether -v was set,
// for the GUI launcher.
func ParseGUIArgs(args []string) ([]graphics.Point, bool, error) {
	s, err := parseArgs(args)
	if err != nil {
		return nil, false, err
	}
	return s.points, s.verbose, nil
}

func cmdRender(s *settings, out io.Writer) error {
	plot := api.NewPlot(s.points...)

	// Ensure output directory exists
	dir := filepath.Dir(s.output)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := plot.Save(s.output, s.width, s.height, s.renderOptions()...); err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}

	fmt.Fprintf(out, "Saved %s (%dx%d, %d control points)\n", s.output, s.width, s.height, len(s.points))
	return nil
}

func cmdSample(s *settings, out io.Writer) error {
	if len(s.points) < 2 {
		return usageErr("sample needs at least two points")
	}
	sc := api.NewPlot(s.points...).Scene(s.renderOptions()...)
	for _, p := range sc.Curve {
		fmt.Fprintf(out, "%g %g\n", p.X, p.Y)
	}
	return nil
}

func cmdEval(s *settings, out io.Writer) error {
	if !s.tSet {
		return usageErr("eval needs -t")
	}
	p, err := api.NewPlot(s.points...).Eval(s.t)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%g %g\n", p.X, p.Y)
	return nil
}

func cmdHit(s *settings, out io.Writer) error {
	if !s.cSet {
		return usageErr("hit needs -c")
	}
	store := bezier.NewStore(s.points...)
	h := bezier.NewHitTester(s.radius)

	nearest, dist := h.Nearest(store, s.cursor)
	if !nearest.Valid() {
		fmt.Fprintln(out, "no points")
		return nil
	}
	sel := h.Select(store, s.cursor)
	if sel.Valid() {
		fmt.Fprintf(out, "nearest %d distance %g selected %d\n", int(nearest), dist, int(sel))
	} else {
		fmt.Fprintf(out, "nearest %d distance %g selected none\n", int(nearest), dist)
	}
	return nil
}

// PrintUsage writes the help text. withGUI adds the gui command.
func PrintUsage(w io.Writer, name string, withGUI bool) {
	fmt.Fprintf(w, `
  %s: an interactive Bézier curve plotter

Usage:
  %s <command> [arguments]

Commands:
  render -p "x,y ..." [options]   Render the curve to PNG or PDF
    -o <file>                     Output file, .png or .pdf (default: curve.png)
    -w <px> -h <px>               Image size (default: 800x600)
    -scale <s>                    Scale factor (default: 1)
    -fit                          Scale the curve to fill the image
    -bg <color>                   Background, name or #rrggbb (default: white)
    -transparent                  Leave the background unpainted
    -no-polygon, -no-markers      Hide the control polygon or the markers
  sample -p "x,y ..." [-steps N]  Print the sampled polyline
  eval -p "x,y ..." -t <t>        Print B(t)
  hit -p "x,y ..." -c x,y [-r R]  Print the nearest control point and selection
`, name, name)
	if withGUI {
		fmt.Fprint(w, `  gui [-p "x,y ..."]              Open the editor window (default)
`)
	}
	fmt.Fprintf(w, `
Common options:
  -end                            Sample through B(1) instead of stopping at t=0.99
  -v                              Debug logging on stderr

Examples:
  %s render -p "10,10 200,300 400,10" -o curve.pdf
  %s eval -p "0,0 10,10" -t 0.5
  %s hit -p "0,0 100,100" -c 3,4
`, name, name, name)
}
