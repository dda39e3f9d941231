// Package export writes editor scenes to vector formats.
package export

import (
	"fmt"
	"io"
	"os"

	"bezplot/pkg/editor"
	"bezplot/pkg/graphics"
	pathpkg "bezplot/pkg/path"

	"github.com/jung-kurt/gofpdf"
)

// Vectorizer receives path drawing commands. *gofpdf.Fpdf implements it.
type Vectorizer interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}

// ToVectorizer replays a path into v.
func ToVectorizer(p *graphics.Path, v Vectorizer) {
	for _, seg := range p.Segments {
		switch seg.Op {
		case graphics.PathOpMoveTo:
			v.MoveTo(seg.Point.X, seg.Point.Y)
		case graphics.PathOpLineTo:
			v.LineTo(seg.Point.X, seg.Point.Y)
		case graphics.PathOpClose:
			v.ClosePath()
		}
	}
}

// painter is the part of *gofpdf.Fpdf that draws scene geometry.
type painter interface {
	Vectorizer
	SetDrawColor(r, g, b int)
	SetFillColor(r, g, b int)
	DrawPath(styleStr string)
}

// PDF writes the scene as a single page document of width by height points.
// Scene coordinates map one to one onto the page, origin top left.
func PDF(w io.Writer, sc editor.Scene, width, height float64, style graphics.Style) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid page size %gx%g", width, height)
	}

	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	p.SetCreator("bezplot", true)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	if !style.Transparent {
		setFill(p, style.Background)
		p.Rect(0, 0, width, height, "F")
	}

	p.SetLineWidth(style.LineWidth)
	p.SetLineCapStyle("butt")
	p.SetLineJoinStyle("round")
	drawScene(p, sc, style)

	if err := p.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}

	editor.Logger().Debug("pdf exported",
		"points", len(sc.Points),
		"curve_vertices", len(sc.Curve),
		"width", width,
		"height", height,
	)
	return nil
}

// drawScene strokes the polygon and the curve, then the markers on top.
// The selected marker is filled.
func drawScene(p painter, sc editor.Scene, style graphics.Style) {
	if style.ShowPolygon && len(sc.Points) > 1 {
		setDraw(p, style.Polygon)
		ToVectorizer(pathpkg.NewBuilder().Polyline(sc.Points).Build(), p)
		p.DrawPath("D")
	}

	if len(sc.Curve) > 1 {
		setDraw(p, style.Curve)
		ToVectorizer(pathpkg.NewBuilder().Polyline(sc.Curve).Build(), p)
		p.DrawPath("D")
	}

	if style.ShowMarkers {
		setDraw(p, style.Marker)
		setFill(p, style.Marker)
		for i, pt := range sc.Points {
			ToVectorizer(pathpkg.NewBuilder().Diamond(pt, style.MarkerSize).Build(), p)
			if sc.IsSelected(i) {
				p.DrawPath("F")
			} else {
				p.DrawPath("D")
			}
		}
	}
}

// SavePDF writes the scene to a PDF file.
func SavePDF(filename string, sc editor.Scene, width, height float64, style graphics.Style) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := PDF(f, sc, width, height, style); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	editor.Logger().Info("pdf written", "file", filename)
	return nil
}

func setDraw(p painter, c graphics.Color) {
	r, g, b := c.RGB255()
	p.SetDrawColor(r, g, b)
}

func setFill(p painter, c graphics.Color) {
	r, g, b := c.RGB255()
	p.SetFillColor(r, g, b)
}
