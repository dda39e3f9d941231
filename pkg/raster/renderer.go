package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"bezplot/pkg/editor"
	"bezplot/pkg/graphics"
	pathpkg "bezplot/pkg/path"
)

// Renderer renders editor scenes to images.
type Renderer struct {
	style graphics.Style
	view  graphics.Matrix
}

// NewRenderer creates a renderer drawing with the given style.
func NewRenderer(style graphics.Style) *Renderer {
	return &Renderer{
		style: style,
		view:  graphics.Identity(),
	}
}

// SetView sets the transform from scene to pixel coordinates. Stroke widths
// and marker sizes scale with it.
func (r *Renderer) SetView(m graphics.Matrix) {
	r.view = m
}

// Render draws a scene into a new image of the given size.
func (r *Renderer) Render(sc editor.Scene, width, height int) *image.RGBA {
	canvas := NewCanvas(width, height)
	r.Draw(canvas, sc)
	return canvas.Image()
}

// Draw paints a scene onto an existing canvas. Layers go bottom to top:
// background, control polygon, curve, markers.
func (r *Renderer) Draw(canvas *Canvas, sc editor.Scene) {
	st := r.style
	if st.Transparent {
		canvas.SetBackground(color.Transparent)
	} else {
		canvas.SetBackground(st.Background.ToRGBA())
	}
	canvas.Clear()

	if sc.IsEmpty() {
		return
	}

	scale := r.view.ScaleX()
	sc = sc.Transform(r.view)
	lineWidth := st.LineWidth * scale
	if lineWidth < 1 {
		lineWidth = 1
	}

	if st.ShowPolygon && len(sc.Points) > 1 {
		poly := pathpkg.NewBuilder().Polyline(sc.Points).Build()
		canvas.Stroke(poly, st.Polygon.ToRGBA(), lineWidth, graphics.LineCapButt)
	}

	if len(sc.Curve) > 1 {
		curve := pathpkg.NewBuilder().Polyline(sc.Curve).Build()
		canvas.Stroke(curve, st.Curve.ToRGBA(), lineWidth, graphics.LineCapButt)
	}

	if st.ShowMarkers {
		size := st.MarkerSize * scale
		marker := st.Marker.ToRGBA()
		for i, p := range sc.Points {
			d := pathpkg.NewBuilder().Diamond(p, size).Build()
			if sc.IsSelected(i) {
				canvas.Fill(d, marker)
			} else {
				canvas.Stroke(d, marker, lineWidth, graphics.LineCapSquare)
			}
		}
	}
}

// WritePNG renders a scene and encodes it as PNG.
func (r *Renderer) WritePNG(w io.Writer, sc editor.Scene, width, height int) error {
	img := r.Render(sc, width, height)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// RenderToFile renders a scene and saves it to a PNG file.
func (r *Renderer) RenderToFile(sc editor.Scene, width, height int, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := r.WritePNG(f, sc, width, height); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	editor.Logger().Info("png written", "file", filename, "width", width, "height", height)
	return nil
}

// FitView returns a transform that centres the scene's bounds inside a
// width by height image with the given margin, preserving aspect ratio.
func FitView(sc editor.Scene, width, height int, margin float64) graphics.Matrix {
	if sc.IsEmpty() {
		return graphics.Identity()
	}
	b := sc.Bounds()

	availW := float64(width) - 2*margin
	availH := float64(height) - 2*margin
	scale := 1.0
	if b.Width > 0 && b.Height > 0 {
		scale = min(availW/b.Width, availH/b.Height)
	} else if b.Width > 0 {
		scale = availW / b.Width
	} else if b.Height > 0 {
		scale = availH / b.Height
	}
	if scale <= 0 {
		scale = 1
	}

	tx := (float64(width)-b.Width*scale)/2 - b.X*scale
	ty := (float64(height)-b.Height*scale)/2 - b.Y*scale
	return graphics.Scale(scale, scale).Multiply(graphics.Translate(tx, ty))
}
