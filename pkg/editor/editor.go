// Package editor turns pointer events into edits of a Bézier curve and
// produces the Scene that renderers draw.
package editor

import (
	"log/slog"

	"bezplot/pkg/bezier"
	"bezplot/pkg/graphics"
)

// Editor owns the control points of one curve and the active selection.
// It is not safe for concurrent use.
type Editor struct {
	opts     Options
	store    *bezier.Store
	hit      bezier.HitTester
	selected bezier.Selection
}

// New creates an editor.
func New(opts ...Option) *Editor {
	o := NewOptions(opts...)
	return &Editor{
		opts:     o,
		store:    bezier.NewStore(o.Points...),
		hit:      bezier.NewHitTester(o.SelectionRadius),
		selected: bezier.NoSelection,
	}
}

// Options returns the options the editor was created with.
func (e *Editor) Options() Options {
	return e.opts
}

// Store returns the underlying point store.
func (e *Editor) Store() *bezier.Store {
	return e.store
}

// Len returns the number of control points.
func (e *Editor) Len() int {
	return e.store.Len()
}

// Selection returns the active control point.
func (e *Editor) Selection() bezier.Selection {
	return e.selected
}

// Click handles a click at pos. A point is appended unless the hold
// modifier is down. It reports whether the scene changed.
func (e *Editor) Click(pos graphics.Point, mods Modifier) bool {
	if mods.Has(e.opts.HoldModifier) {
		return false
	}
	e.store.Add(pos)
	Logger().Debug("point added", slog.Int("index", e.store.Len()-1), slog.Float64("x", pos.X), slog.Float64("y", pos.Y))
	return true
}

// Move handles pointer motion to pos. With the hold modifier and the primary
// button down it drags the active point; otherwise it re-runs the hit test.
// It reports whether the scene changed.
func (e *Editor) Move(pos graphics.Point, mods Modifier, buttons Button) bool {
	if mods.Has(e.opts.HoldModifier) && buttons.Has(ButtonPrimary) {
		return e.drag(pos)
	}
	return e.hover(pos)
}

func (e *Editor) drag(pos graphics.Point) bool {
	if !e.selected.Valid() {
		return false
	}
	cp := e.store.At(int(e.selected))
	cp.MoveTo(pos)
	Logger().Debug("point moved", slog.Int("index", int(e.selected)), slog.Float64("x", pos.X), slog.Float64("y", pos.Y))
	return true
}

func (e *Editor) hover(pos graphics.Point) bool {
	sel, changed := e.hit.Update(e.store, pos, e.selected)
	if !changed {
		return false
	}
	Logger().Debug("selection changed", slog.Int("from", int(e.selected)), slog.Int("to", int(sel)))
	e.selected = sel
	return true
}

// Scene returns a snapshot of the points, the sampled curve and the selection.
func (e *Editor) Scene() Scene {
	sc := Scene{
		Points:   e.store.Points(),
		Selected: e.selected,
	}
	if e.opts.ToEnd {
		sc.Curve = bezier.SampleToEnd(e.store, e.opts.Steps)
	} else {
		sc.Curve = bezier.Sample(e.store, e.opts.Steps)
	}
	return sc
}
