package gui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"bezplot/pkg/editor"
)

// Toolbar provides export and display controls.
type Toolbar struct {
	container *fyne.Container

	// Callbacks
	OnExportPNG     func()
	OnExportPDF     func()
	OnTogglePolygon func(show bool)
	OnToggleMarkers func(show bool)

	// Components
	polygonCheck *widget.Check
	markersCheck *widget.Check
	radiusLabel  *widget.Label
}

// NewToolbar creates a new toolbar.
func NewToolbar(opts editor.Options) *Toolbar {
	t := &Toolbar{}
	t.build(opts)
	return t
}

func (t *Toolbar) build(opts editor.Options) {
	pngBtn := widget.NewButtonWithIcon("PNG", theme.DocumentSaveIcon(), func() {
		if t.OnExportPNG != nil {
			t.OnExportPNG()
		}
	})

	pdfBtn := widget.NewButtonWithIcon("PDF", theme.DocumentSaveIcon(), func() {
		if t.OnExportPDF != nil {
			t.OnExportPDF()
		}
	})

	t.polygonCheck = widget.NewCheck("Polygon", func(on bool) {
		if t.OnTogglePolygon != nil {
			t.OnTogglePolygon(on)
		}
	})
	t.polygonCheck.Checked = true

	t.markersCheck = widget.NewCheck("Markers", func(on bool) {
		if t.OnToggleMarkers != nil {
			t.OnToggleMarkers(on)
		}
	})
	t.markersCheck.Checked = true

	t.radiusLabel = widget.NewLabel(fmt.Sprintf("Radius %s  Hold %s",
		strconv.FormatFloat(opts.SelectionRadius, 'g', -1, 64), opts.HoldModifier))

	t.container = container.NewHBox(
		pngBtn,
		pdfBtn,
		widget.NewSeparator(),
		t.polygonCheck,
		t.markersCheck,
		widget.NewSeparator(),
		t.radiusLabel,
	)
}

// Container returns the toolbar container.
func (t *Toolbar) Container() *fyne.Container {
	return t.container
}

// StatusBar provides status information.
type StatusBar struct {
	container   *fyne.Container
	label       *widget.Label
	countLabel  *widget.Label
	cursorLabel *widget.Label
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	s := &StatusBar{
		label:       widget.NewLabel("Click to add a point"),
		countLabel:  widget.NewLabel("0 points"),
		cursorLabel: widget.NewLabel(""),
	}

	s.container = container.NewHBox(
		s.label,
		widget.NewSeparator(),
		s.countLabel,
		widget.NewSeparator(),
		s.cursorLabel,
	)

	return s
}

// Container returns the status bar container.
func (s *StatusBar) Container() *fyne.Container {
	return s.container
}

// SetStatus sets the status message.
func (s *StatusBar) SetStatus(msg string) {
	s.label.SetText(msg)
}

// SetScene shows the point count and the active point.
func (s *StatusBar) SetScene(sc editor.Scene) {
	n := len(sc.Points)
	text := strconv.Itoa(n) + " points"
	if n == 1 {
		text = "1 point"
	}
	if sc.Selected.Valid() {
		p := sc.Points[sc.Selected]
		text += fmt.Sprintf("  selected #%d (%.0f, %.0f)", int(sc.Selected), p.X, p.Y)
	}
	s.countLabel.SetText(text)
}

// SetCursor shows the pointer position.
func (s *StatusBar) SetCursor(x, y float64) {
	s.cursorLabel.SetText(fmt.Sprintf("%.0f, %.0f", x, y))
}
