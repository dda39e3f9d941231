// Package api is the public entry point: build a curve from control points,
// edit it through the editor, and render or export the result.
package api

import (
	"fmt"
	"image"
	"io"

	"bezplot/pkg/bezier"
	"bezplot/pkg/editor"
	"bezplot/pkg/export"
	"bezplot/pkg/graphics"
	"bezplot/pkg/raster"
)

// Plot is a Bézier curve together with its editor state.
type Plot struct {
	ed *editor.Editor
}

// NewPlot creates a plot from the given control points.
func NewPlot(points ...graphics.Point) *Plot {
	return &Plot{ed: editor.New(editor.WithPoints(points...))}
}

// Editor returns the underlying editor.
func (p *Plot) Editor() *editor.Editor {
	return p.ed
}

// Scene returns the scene sampled as the options ask.
func (p *Plot) Scene(opts ...Option) editor.Scene {
	o := NewRenderOptions(opts...)
	return p.scene(&o)
}

func (p *Plot) scene(o *RenderOptions) editor.Scene {
	store := p.ed.Store()
	sc := editor.Scene{
		Points:   store.Points(),
		Selected: p.ed.Selection(),
	}
	if o.IncludeEndpoint {
		sc.Curve = bezier.SampleToEnd(store, o.Steps)
	} else {
		sc.Curve = bezier.Sample(store, o.Steps)
	}
	return sc
}

// Eval returns the curve point at parameter t.
func (p *Plot) Eval(t float64) (graphics.Point, error) {
	if p.ed.Len() == 0 {
		return graphics.Point{}, fmt.Errorf("cannot evaluate a curve with no control points: %w", bezier.ErrOutOfRange)
	}
	return bezier.Eval(p.ed.Store(), t), nil
}

// Render renders the plot to an image.
func (p *Plot) Render(width, height int, opts ...Option) *image.RGBA {
	o := NewRenderOptions(opts...)
	sc := p.scene(&o)
	return newRenderer(&o, sc, width, height).Render(sc, width, height)
}

func newRenderer(o *RenderOptions, sc editor.Scene, width, height int) *raster.Renderer {
	r := raster.NewRenderer(o.Style())
	r.SetView(viewFor(o, sc, width, height))
	return r
}

func viewFor(o *RenderOptions, sc editor.Scene, width, height int) graphics.Matrix {
	if o.Fit {
		return raster.FitView(sc, width, height, o.Margin)
	}
	if o.Scale > 0 {
		return graphics.Scale(o.Scale, o.Scale)
	}
	return graphics.Identity()
}

// WritePNG renders the plot and encodes it as PNG.
func (p *Plot) WritePNG(w io.Writer, width, height int, opts ...Option) error {
	o := NewRenderOptions(opts...)
	sc := p.scene(&o)
	return newRenderer(&o, sc, width, height).WritePNG(w, sc, width, height)
}

// SavePNG renders the plot to a PNG file.
func (p *Plot) SavePNG(path string, width, height int, opts ...Option) error {
	o := NewRenderOptions(opts...)
	sc := p.scene(&o)
	return newRenderer(&o, sc, width, height).RenderToFile(sc, width, height, path)
}

// WritePDF writes the plot as a single page PDF of width by height points.
func (p *Plot) WritePDF(w io.Writer, width, height int, opts ...Option) error {
	sc, st := p.pdfScene(width, height, opts)
	return export.PDF(w, sc, float64(width), float64(height), st)
}

// SavePDF writes the plot to a PDF file.
func (p *Plot) SavePDF(path string, width, height int, opts ...Option) error {
	sc, st := p.pdfScene(width, height, opts)
	return export.SavePDF(path, sc, float64(width), float64(height), st)
}

// pdfScene applies the view to the geometry itself, since the PDF page is
// drawn in scene units.
func (p *Plot) pdfScene(width, height int, opts []Option) (editor.Scene, graphics.Style) {
	o := NewRenderOptions(opts...)
	sc := p.scene(&o)
	view := viewFor(&o, sc, width, height)
	st := o.Style()
	st.LineWidth *= view.ScaleX()
	st.MarkerSize *= view.ScaleX()
	return sc.Transform(view), st
}

// Save writes the plot to path, choosing PNG or PDF by extension.
func (p *Plot) Save(path string, width, height int, opts ...Option) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	switch format {
	case FormatPDF:
		return p.SavePDF(path, width, height, opts...)
	default:
		return p.SavePNG(path, width, height, opts...)
	}
}
