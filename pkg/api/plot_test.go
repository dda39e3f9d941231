package api

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"bezplot/pkg/bezier"
	"bezplot/pkg/graphics"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNewRenderOptions(t *testing.T) {
	o := NewRenderOptions(Scale(2), Steps(10), IncludeEndpoint(), NoMarkers(), Transparent())
	if o.Scale != 2 || o.Steps != 10 || !o.IncludeEndpoint || o.Markers || !o.Transparent {
		t.Errorf("options = %+v", o)
	}
	if !o.ControlPolygon {
		t.Error("unrelated default was changed")
	}

	st := o.Style()
	if st.ShowMarkers || !st.ShowPolygon || !st.Transparent {
		t.Errorf("style = %+v", st)
	}

	o.Apply(NoControlPolygon(), MarkerSize(6), LineWidth(2), Background(graphics.Black()))
	st = o.Style()
	if st.ShowPolygon || st.MarkerSize != 6 || st.LineWidth != 2 || st.Background != graphics.Black() {
		t.Errorf("style after Apply = %+v", st)
	}
}

func TestPlotScene(t *testing.T) {
	p := NewPlot(graphics.Pt(0, 0), graphics.Pt(10, 0))

	sc := p.Scene()
	if len(sc.Curve) != bezier.DefaultSteps {
		t.Errorf("default curve has %d vertices", len(sc.Curve))
	}

	p.Editor().Move(graphics.Pt(10, 0), 0, 0)
	sc = p.Scene(Steps(5), IncludeEndpoint())
	if sc.Selected != 1 {
		t.Errorf("Selected = %d, want 1", sc.Selected)
	}
	want := []graphics.Point{{X: 0}, {X: 2}, {X: 4}, {X: 6}, {X: 8}, {X: 10}}
	if d := cmp.Diff(want, sc.Curve, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Errorf("curve mismatch (-want +got):\n%s", d)
	}
}

func TestPlotEval(t *testing.T) {
	if _, err := NewPlot().Eval(0.5); !errors.Is(err, bezier.ErrOutOfRange) {
		t.Errorf("Eval on empty plot err = %v", err)
	}
	got, err := NewPlot(graphics.Pt(0, 0), graphics.Pt(10, 10)).Eval(0.5)
	if err != nil {
		t.Fatal(err)
	}
	if got != graphics.Pt(5, 5) {
		t.Errorf("Eval(0.5) = %v", got)
	}
}

func TestPlotEditsShowInRender(t *testing.T) {
	p := NewPlot()
	ed := p.Editor()
	ed.Click(graphics.Pt(10, 10), 0)
	ed.Move(graphics.Pt(10, 10), 0, 0)

	img := p.Render(20, 20)
	if got := img.RGBAAt(10, 10); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("selected marker centre = %v, want black", got)
	}

	img = p.Render(20, 20, NoMarkers())
	if got := img.RGBAAt(10, 10); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("hidden marker painted %v", got)
	}
}

func TestPlotRenderNegativeSize(t *testing.T) {
	p := NewPlot(graphics.Pt(0, 0), graphics.Pt(10, 10))
	if img := p.Render(-5, 10); !img.Bounds().Empty() {
		t.Errorf("bounds = %v, want empty", img.Bounds())
	}
	if img := p.Render(20, -1, Fit(2)); !img.Bounds().Empty() {
		t.Errorf("fitted bounds = %v, want empty", img.Bounds())
	}
}

func TestPlotRenderScale(t *testing.T) {
	p := NewPlot(graphics.Pt(5, 5))
	p.Editor().Move(graphics.Pt(5, 5), 0, 0)

	img := p.Render(20, 20, Scale(2))
	if got := img.RGBAAt(10, 10); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("scaled marker centre = %v, want black", got)
	}
}

func TestPlotSave(t *testing.T) {
	dir := t.TempDir()
	p := NewPlot(graphics.Pt(0, 0), graphics.Pt(50, 80), graphics.Pt(100, 0))

	for _, name := range []string{"curve.png", "curve.PDF"} {
		path := filepath.Join(dir, name)
		if err := p.Save(path, 64, 48, Fit(4)); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
		if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
			t.Errorf("Save(%s) wrote nothing: %v", name, err)
		}
	}

	if err := p.Save(filepath.Join(dir, "curve.svg"), 64, 48); err == nil {
		t.Error("expected an error for an unsupported extension")
	}
}

func TestPlotWriters(t *testing.T) {
	p := NewPlot(graphics.Pt(0, 0), graphics.Pt(10, 10))

	var png bytes.Buffer
	if err := p.WritePNG(&png, 10, 10); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(png.Bytes(), []byte("\x89PNG")) {
		t.Error("WritePNG output is not a PNG")
	}

	var pdf bytes.Buffer
	if err := p.WritePDF(&pdf, 10, 10, Scale(3)); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(pdf.Bytes(), []byte("%PDF-")) {
		t.Error("WritePDF output is not a PDF")
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"a.png", FormatPNG, true},
		{"dir/b.Pdf", FormatPDF, true},
		{"c.jpg", "", false},
		{"noext", "", false},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, %v", tt.path, got, err)
		}
	}
}
