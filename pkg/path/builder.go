// Package path provides path construction utilities for the rasterizer.
package path

import (
	"bezplot/pkg/graphics"

	"golang.org/x/image/vector"
)

// ToVector converts a graphics.Path to a golang.org/x/image/vector path.
func ToVector(p *graphics.Path, rasterizer *vector.Rasterizer) {
	for _, seg := range p.Segments {
		switch seg.Op {
		case graphics.PathOpMoveTo:
			rasterizer.MoveTo(float32(seg.Point.X), float32(seg.Point.Y))
		case graphics.PathOpLineTo:
			rasterizer.LineTo(float32(seg.Point.X), float32(seg.Point.Y))
		case graphics.PathOpClose:
			rasterizer.ClosePath()
		}
	}
}

// Builder provides a fluent interface for building paths.
type Builder struct {
	path *graphics.Path
}

// NewBuilder creates a new path builder.
func NewBuilder() *Builder {
	return &Builder{
		path: graphics.NewPath(),
	}
}

// MoveTo starts a new subpath.
func (b *Builder) MoveTo(x, y float64) *Builder {
	b.path.MoveTo(x, y)
	return b
}

// LineTo draws a line to the given point.
func (b *Builder) LineTo(x, y float64) *Builder {
	b.path.LineTo(x, y)
	return b
}

// Close closes the current subpath.
func (b *Builder) Close() *Builder {
	b.path.Close()
	return b
}

// Polyline adds an open subpath through pts. Fewer than two points add nothing.
func (b *Builder) Polyline(pts []graphics.Point) *Builder {
	if len(pts) < 2 {
		return b
	}
	b.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		b.LineTo(p.X, p.Y)
	}
	return b
}

// Diamond adds the closed marker outline returned by DiamondVertices.
func (b *Builder) Diamond(c graphics.Point, s float64) *Builder {
	v := DiamondVertices(c, s)
	b.MoveTo(v[0].X, v[0].Y)
	for _, p := range v[1:] {
		b.LineTo(p.X, p.Y)
	}
	return b.Close()
}

// Build returns the constructed path.
func (b *Builder) Build() *graphics.Path {
	return b.path
}

// DiamondVertices returns the corners of a square rotated by 45 degrees
// around c, each s away from the centre: top, right, bottom, left.
func DiamondVertices(c graphics.Point, s float64) [4]graphics.Point {
	return [4]graphics.Point{
		{X: c.X, Y: c.Y - s},
		{X: c.X + s, Y: c.Y},
		{X: c.X, Y: c.Y + s},
		{X: c.X - s, Y: c.Y},
	}
}
