// Package gui provides the native desktop curve editor using Fyne.
package gui

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"

	"bezplot/pkg/editor"
	"bezplot/pkg/graphics"
)

// DebugEnv enables debug logging to stderr when set to a non-empty value.
const DebugEnv = "BEZPLOT_DEBUG"

// App represents the curve editor application.
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	opts       []editor.Option

	// UI components
	plotter *Plotter
	toolbar *Toolbar
	status  *StatusBar
}

// NewApp creates a new editor application.
func NewApp(opts ...editor.Option) *App {
	if os.Getenv(DebugEnv) != "" {
		editor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	a := &App{
		fyneApp: app.New(),
		opts:    opts,
	}

	a.fyneApp.Settings().SetTheme(theme.DarkTheme())
	a.mainWindow = a.fyneApp.NewWindow("Bézier Plotter")
	a.mainWindow.Resize(fyne.NewSize(900, 700))

	return a
}

// Run starts the application with no control points.
func (a *App) Run() {
	a.RunWithPoints(nil)
}

// RunWithPoints starts the application with the given control points.
func (a *App) RunWithPoints(points []graphics.Point) {
	opts := append([]editor.Option{}, a.opts...)
	if len(points) > 0 {
		opts = append(opts, editor.WithPoints(points...))
	}
	a.buildUI(editor.New(opts...))
	a.mainWindow.ShowAndRun()
}

// buildUI constructs the user interface.
func (a *App) buildUI(ed *editor.Editor) {
	a.plotter = NewPlotter(ed)
	a.toolbar = NewToolbar(ed.Options())
	a.status = NewStatusBar()

	a.plotter.OnChanged = a.status.SetScene
	a.plotter.OnCursor = func(pos graphics.Point) {
		a.status.SetCursor(pos.X, pos.Y)
	}
	a.status.SetScene(a.plotter.Scene())

	a.toolbar.OnExportPNG = func() {
		a.exportFile("curve.png", ".png", a.plotter.WritePNG)
	}
	a.toolbar.OnExportPDF = func() {
		a.exportFile("curve.pdf", ".pdf", a.plotter.WritePDF)
	}
	a.toolbar.OnTogglePolygon = func(show bool) {
		st := a.plotter.Style()
		st.ShowPolygon = show
		a.plotter.SetStyle(st)
	}
	a.toolbar.OnToggleMarkers = func(show bool) {
		st := a.plotter.Style()
		st.ShowMarkers = show
		a.plotter.SetStyle(st)
	}

	// Main layout
	content := container.NewBorder(
		container.NewPadded(a.toolbar.Container()), // Top
		a.status.Container(), // Bottom
		nil,                  // Left
		nil,                  // Right
		a.plotter,            // Center
	)

	a.mainWindow.SetContent(content)
	a.mainWindow.Canvas().SetOnTypedKey(a.handleKey)
}

// handleKey handles keyboard shortcuts.
func (a *App) handleKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyEscape:
		a.mainWindow.Close()
	case fyne.KeyS:
		a.toolbar.OnExportPNG()
	case fyne.KeyP:
		a.toolbar.OnExportPDF()
	}
}

// exportFile shows a save dialog and writes the scene with write.
func (a *App) exportFile(name, ext string, write func(io.Writer) error) {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.mainWindow)
			return
		}
		if w == nil {
			return // Cancelled
		}

		if err := write(w); err != nil {
			w.Close()
			dialog.ShowError(fmt.Errorf("failed to export %s: %w", w.URI().Name(), err), a.mainWindow)
			return
		}
		if err := w.Close(); err != nil {
			dialog.ShowError(fmt.Errorf("failed to close %s: %w", w.URI().Name(), err), a.mainWindow)
			return
		}
		a.status.SetStatus("Saved " + w.URI().Path())
	}, a.mainWindow)

	d.SetFileName(name)
	d.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	d.Show()
}
