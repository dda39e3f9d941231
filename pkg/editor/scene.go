package editor

import (
	"bezplot/pkg/bezier"
	"bezplot/pkg/graphics"
)

// Scene is what a renderer needs to draw one frame.
type Scene struct {
	// Points are the control points in curve order.
	Points []graphics.Point
	// Curve is the sampled polyline; empty with fewer than two points.
	Curve []graphics.Point
	// Selected is the index of the filled marker.
	Selected bezier.Selection
}

// IsEmpty reports whether there is nothing but background to draw.
func (sc Scene) IsEmpty() bool {
	return len(sc.Points) == 0
}

// IsSelected reports whether the i'th point is the active one.
func (sc Scene) IsSelected(i int) bool {
	return sc.Selected.Valid() && int(sc.Selected) == i
}

// Bounds returns the box around the control points and the curve.
func (sc Scene) Bounds() graphics.Rect {
	all := make([]graphics.Point, 0, len(sc.Points)+len(sc.Curve))
	all = append(all, sc.Points...)
	all = append(all, sc.Curve...)
	return graphics.BoundsOf(all)
}

// Transform returns a copy of the scene mapped through m.
func (sc Scene) Transform(m graphics.Matrix) Scene {
	out := Scene{
		Points:   make([]graphics.Point, len(sc.Points)),
		Selected: sc.Selected,
	}
	for i, p := range sc.Points {
		out.Points[i] = m.TransformPoint(p)
	}
	if sc.Curve != nil {
		out.Curve = make([]graphics.Point, len(sc.Curve))
		for i, p := range sc.Curve {
			out.Curve[i] = m.TransformPoint(p)
		}
	}
	return out
}
