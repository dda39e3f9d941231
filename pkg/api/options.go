package api

import (
	"fmt"
	"path/filepath"
	"strings"

	"bezplot/pkg/bezier"
	"bezplot/pkg/graphics"
)

// RenderOptions configures rendering behavior.
type RenderOptions struct {
	// Scale multiplies scene coordinates, stroke widths and marker sizes.
	// Default: 1.0
	Scale float64

	// Fit scales and centres the scene to fill the image, ignoring Scale.
	// Default: false
	Fit bool

	// Margin is the border kept clear when Fit is set.
	// Default: 16
	Margin float64

	// Background sets the background color.
	// Default: white
	Background graphics.Color

	// Transparent enables transparent background (ignores Background).
	// Default: false
	Transparent bool

	// MarkerSize is the half-diagonal of a control point diamond.
	// Default: 4
	MarkerSize float64

	// LineWidth is the stroke width of the polygon and the curve.
	// Default: 1
	LineWidth float64

	// Steps is the number of sampling intervals along the curve.
	// Default: 100
	Steps int

	// IncludeEndpoint appends B(1) to the sampled curve.
	// Default: false
	IncludeEndpoint bool

	// ControlPolygon draws the segments joining the control points.
	// Default: true
	ControlPolygon bool

	// Markers draws the control point diamonds.
	// Default: true
	Markers bool
}

// DefaultRenderOptions returns render options with sensible defaults.
func DefaultRenderOptions() RenderOptions {
	st := graphics.DefaultStyle()
	return RenderOptions{
		Scale:          1.0,
		Margin:         16,
		Background:     st.Background,
		Transparent:    false,
		MarkerSize:     st.MarkerSize,
		LineWidth:      st.LineWidth,
		Steps:          bezier.DefaultSteps,
		ControlPolygon: true,
		Markers:        true,
	}
}

// Style returns the paint style described by the options.
func (o *RenderOptions) Style() graphics.Style {
	st := graphics.DefaultStyle()
	st.Background = o.Background
	st.Transparent = o.Transparent
	st.MarkerSize = o.MarkerSize
	st.LineWidth = o.LineWidth
	st.ShowPolygon = o.ControlPolygon
	st.ShowMarkers = o.Markers
	return st
}

// Option is a functional option for configuring RenderOptions.
type Option func(*RenderOptions)

// Scale sets the scale factor.
func Scale(scale float64) Option {
	return func(o *RenderOptions) {
		o.Scale = scale
	}
}

// Fit scales the scene to the image with the given margin.
func Fit(margin float64) Option {
	return func(o *RenderOptions) {
		o.Fit = true
		o.Margin = margin
	}
}

// Background sets the background color.
func Background(c graphics.Color) Option {
	return func(o *RenderOptions) {
		o.Background = c
	}
}

// Transparent enables transparent background.
func Transparent() Option {
	return func(o *RenderOptions) {
		o.Transparent = true
	}
}

// MarkerSize sets the marker half-diagonal.
func MarkerSize(size float64) Option {
	return func(o *RenderOptions) {
		o.MarkerSize = size
	}
}

// LineWidth sets the stroke width.
func LineWidth(width float64) Option {
	return func(o *RenderOptions) {
		o.LineWidth = width
	}
}

// Steps sets the number of sampling intervals.
func Steps(n int) Option {
	return func(o *RenderOptions) {
		o.Steps = n
	}
}

// IncludeEndpoint samples the curve all the way to B(1).
func IncludeEndpoint() Option {
	return func(o *RenderOptions) {
		o.IncludeEndpoint = true
	}
}

// NoControlPolygon disables the control polygon.
func NoControlPolygon() Option {
	return func(o *RenderOptions) {
		o.ControlPolygon = false
	}
}

// NoMarkers disables the control point markers.
func NoMarkers() Option {
	return func(o *RenderOptions) {
		o.Markers = false
	}
}

// NewRenderOptions creates options from functional options.
func NewRenderOptions(opts ...Option) RenderOptions {
	o := DefaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Apply applies functional options to existing options.
func (o *RenderOptions) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// Format is an output file format.
type Format string

const (
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// FormatFromPath picks the output format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return FormatPNG, nil
	case ".pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unsupported output format %q", ext)
	}
}
