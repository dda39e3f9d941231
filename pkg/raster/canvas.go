// Package raster draws editor scenes into images.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"bezplot/pkg/graphics"
	pathpkg "bezplot/pkg/path"

	"golang.org/x/image/vector"
)

// Canvas represents a drawing surface for rasterization.
type Canvas struct {
	img    *image.RGBA
	width  int
	height int

	// Default background
	background color.Color
}

// NewCanvas creates a new canvas with the given dimensions, filled white.
// A negative dimension gives an empty canvas.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	c := &Canvas{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		width:      width,
		height:     height,
		background: color.White,
	}
	c.Clear()
	return c
}

// Image returns the underlying RGBA image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the canvas with the background color.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{c.background}, image.Point{}, draw.Src)
}

// SetBackground sets the background color used by Clear.
func (c *Canvas) SetBackground(col color.Color) {
	c.background = col
}

// Fill fills a path with the given color using the non-zero rule.
func (c *Canvas) Fill(path *graphics.Path, col color.Color) {
	if path.IsEmpty() || c.width <= 0 || c.height <= 0 {
		return
	}

	r := vector.NewRasterizer(c.width, c.height)
	pathpkg.ToVector(path, r)
	r.Draw(c.img, c.img.Bounds(), &image.Uniform{col}, image.Point{})
}

// Stroke draws the outline of a path with the given width.
func (c *Canvas) Stroke(path *graphics.Path, col color.Color, width float64, cap graphics.LineCap) {
	if path.IsEmpty() {
		return
	}
	c.Fill(strokeToPath(path, width, cap), col)
}

// strokeToPath converts every segment of a path into a quad. The quads all
// wind the same way, so overlaps at the joints fill solid.
func strokeToPath(path *graphics.Path, width float64, cap graphics.LineCap) *graphics.Path {
	halfWidth := width / 2
	result := graphics.NewPath()

	for _, line := range path.Lines() {
		start, end := line[0], line[1]
		dx := end.X - start.X
		dy := end.Y - start.Y
		length := math.Sqrt(dx*dx + dy*dy)
		if length == 0 {
			continue
		}

		// Unit direction and perpendicular.
		ux, uy := dx/length, dy/length
		nx, ny := -uy*halfWidth, ux*halfWidth

		if cap == graphics.LineCapSquare {
			start = graphics.Pt(start.X-ux*halfWidth, start.Y-uy*halfWidth)
			end = graphics.Pt(end.X+ux*halfWidth, end.Y+uy*halfWidth)
		}

		result.MoveTo(start.X+nx, start.Y+ny)
		result.LineTo(end.X+nx, end.Y+ny)
		result.LineTo(end.X-nx, end.Y-ny)
		result.LineTo(start.X-nx, start.Y-ny)
		result.Close()
	}

	return result
}
