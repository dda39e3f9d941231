package gui

import (
	"image"
	"io"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"bezplot/pkg/editor"
	"bezplot/pkg/export"
	"bezplot/pkg/graphics"
	"bezplot/pkg/raster"
)

// clickSlop is how far the pointer may travel between press and release
// for the release to still count as a click.
const clickSlop = 4

// Plotter is a widget that edits and draws a Bézier curve.
type Plotter struct {
	widget.BaseWidget

	mu    sync.Mutex
	ed    *editor.Editor
	style graphics.Style

	raster *canvas.Raster

	// Pointer state
	pressed   bool
	down      bool
	downAt    graphics.Point
	pressMods editor.Modifier
	cursor    graphics.Point

	// OnChanged is called after an edit or a selection change.
	OnChanged func(sc editor.Scene)
	// OnCursor is called whenever the pointer moves over the widget.
	OnCursor func(pos graphics.Point)
}

var _ fyne.Widget = (*Plotter)(nil)
var _ fyne.Draggable = (*Plotter)(nil)
var _ desktop.Mouseable = (*Plotter)(nil)
var _ desktop.Hoverable = (*Plotter)(nil)

// NewPlotter creates a plotter editing ed.
func NewPlotter(ed *editor.Editor) *Plotter {
	p := &Plotter{
		ed:    ed,
		style: graphics.DefaultStyle(),
	}
	p.raster = canvas.NewRaster(p.draw)
	p.ExtendBaseWidget(p)
	return p
}

// Scene returns a snapshot of what the plotter shows.
func (p *Plotter) Scene() editor.Scene {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ed.Scene()
}

// Style returns the paint style.
func (p *Plotter) Style() graphics.Style {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.style
}

// SetStyle changes the paint style and repaints.
func (p *Plotter) SetStyle(st graphics.Style) {
	p.mu.Lock()
	p.style = st
	p.mu.Unlock()
	p.Refresh()
}

// Cursor returns the last pointer position seen by the plotter.
func (p *Plotter) Cursor() graphics.Point {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursor
}

// draw is the raster generator; w and h are in device pixels.
func (p *Plotter) draw(w, h int) image.Image {
	p.mu.Lock()
	sc := p.ed.Scene()
	st := p.style
	p.mu.Unlock()

	r := raster.NewRenderer(st)
	if size := p.Size(); size.Width > 0 {
		s := float64(w) / float64(size.Width)
		r.SetView(graphics.Scale(s, s))
	}
	return r.Render(sc, w, h)
}

// WritePNG writes the current scene at the widget's size.
func (p *Plotter) WritePNG(w io.Writer) error {
	size := p.Size()
	return raster.NewRenderer(p.Style()).WritePNG(w, p.Scene(), int(size.Width), int(size.Height))
}

// WritePDF writes the current scene as a PDF page of the widget's size.
func (p *Plotter) WritePDF(w io.Writer) error {
	size := p.Size()
	return export.PDF(w, p.Scene(), float64(size.Width), float64(size.Height), p.Style())
}

// CreateRenderer creates the renderer for this widget.
func (p *Plotter) CreateRenderer() fyne.WidgetRenderer {
	return &plotterRenderer{plotter: p}
}

// MouseDown records where the primary button went down and the modifiers held.
func (p *Plotter) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	p.mu.Lock()
	p.pressed = true
	p.down = true
	p.downAt = toPoint(e.Position)
	p.pressMods = modifierFrom(e.Modifier)
	p.mu.Unlock()
}

// MouseUp turns a release near the press position into a click.
func (p *Plotter) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	pos := toPoint(e.Position)

	p.mu.Lock()
	click := p.down && pos.Distance(p.downAt) <= clickSlop
	p.pressed = false
	p.down = false
	changed := false
	if click {
		changed = p.ed.Click(pos, modifierFrom(e.Modifier))
	}
	p.mu.Unlock()

	if changed {
		p.changed()
	}
}

// Dragged moves the active point while the hold modifier is down, and
// otherwise keeps the hover selection current.
func (p *Plotter) Dragged(e *fyne.DragEvent) {
	pos := toPoint(e.Position)

	p.mu.Lock()
	p.cursor = pos
	var buttons editor.Button
	if p.pressed {
		buttons = editor.ButtonPrimary
	}
	changed := p.ed.Move(pos, p.pressMods, buttons)
	p.mu.Unlock()

	p.moved(pos, changed)
}

// DragEnd ends a drag.
func (p *Plotter) DragEnd() {
	p.mu.Lock()
	p.pressed = false
	p.mu.Unlock()
}

// MouseIn is treated as a move.
func (p *Plotter) MouseIn(e *desktop.MouseEvent) {
	p.MouseMoved(e)
}

// MouseMoved updates the hover selection.
func (p *Plotter) MouseMoved(e *desktop.MouseEvent) {
	pos := toPoint(e.Position)

	p.mu.Lock()
	p.cursor = pos
	changed := p.ed.Move(pos, modifierFrom(e.Modifier), buttonsFrom(e.Button))
	p.mu.Unlock()

	p.moved(pos, changed)
}

// MouseOut does nothing; the selection stays until the next move.
func (p *Plotter) MouseOut() {}

func (p *Plotter) moved(pos graphics.Point, changed bool) {
	if p.OnCursor != nil {
		p.OnCursor(pos)
	}
	if changed {
		p.changed()
	}
}

func (p *Plotter) changed() {
	p.Refresh()
	if p.OnChanged != nil {
		p.OnChanged(p.Scene())
	}
}

func toPoint(pos fyne.Position) graphics.Point {
	return graphics.Pt(float64(pos.X), float64(pos.Y))
}

func modifierFrom(m fyne.KeyModifier) editor.Modifier {
	var out editor.Modifier
	if m&fyne.KeyModifierShift != 0 {
		out |= editor.ModShift
	}
	if m&fyne.KeyModifierControl != 0 {
		out |= editor.ModControl
	}
	if m&fyne.KeyModifierAlt != 0 {
		out |= editor.ModAlt
	}
	if m&fyne.KeyModifierSuper != 0 {
		out |= editor.ModSuper
	}
	return out
}

func buttonsFrom(b desktop.MouseButton) editor.Button {
	var out editor.Button
	if b&desktop.MouseButtonPrimary != 0 {
		out |= editor.ButtonPrimary
	}
	if b&desktop.MouseButtonSecondary != 0 {
		out |= editor.ButtonSecondary
	}
	if b&desktop.MouseButtonTertiary != 0 {
		out |= editor.ButtonTertiary
	}
	return out
}

// plotterRenderer renders the plotter.
type plotterRenderer struct {
	plotter *Plotter
}

func (r *plotterRenderer) Layout(size fyne.Size) {
	r.plotter.raster.Move(fyne.NewPos(0, 0))
	r.plotter.raster.Resize(size)
}

func (r *plotterRenderer) MinSize() fyne.Size {
	return fyne.NewSize(200, 200)
}

func (r *plotterRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.plotter.raster}
}

func (r *plotterRenderer) Refresh() {
	r.plotter.raster.Refresh()
}

func (r *plotterRenderer) Destroy() {}
