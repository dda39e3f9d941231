package graphics

import (
	"image/color"
)

// Color is an opaque RGB colour with components in [0, 1].
type Color struct {
	R, G, B float64
}

// NewGray creates a grayscale color.
func NewGray(gray float64) Color {
	g := clamp(gray, 0, 1)
	return Color{g, g, g}
}

// NewRGB creates an RGB color.
func NewRGB(r, g, b float64) Color {
	return Color{clamp(r, 0, 1), clamp(g, 0, 1), clamp(b, 0, 1)}
}

// Black returns a black color.
func Black() Color {
	return NewGray(0)
}

// White returns a white color.
func White() Color {
	return NewGray(1)
}

// Green returns the pure green used for the curve.
func Green() Color {
	return NewRGB(0, 1, 0)
}

// ToRGBA converts the color to RGBA.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		uint8(c.R*255 + 0.5),
		uint8(c.G*255 + 0.5),
		uint8(c.B*255 + 0.5),
		255,
	}
}

// RGB255 returns the components scaled to 0..255.
func (c Color) RGB255() (r, g, b int) {
	rgba := c.ToRGBA()
	return int(rgba.R), int(rgba.G), int(rgba.B)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// LineCap represents the line cap style.
type LineCap int

const (
	LineCapButt   LineCap = 0
	LineCapRound  LineCap = 1
	LineCapSquare LineCap = 2
)

// Style describes how a scene is painted.
type Style struct {
	Background Color
	// Transparent leaves the background unpainted.
	Transparent bool

	// Polygon is the colour of the segments joining consecutive control points.
	Polygon Color
	// Curve is the colour of the sampled curve.
	Curve Color
	// Marker is the colour of the control point diamonds.
	Marker Color

	// LineWidth is the stroke width of the polygon, curve and outlined markers.
	LineWidth float64
	// MarkerSize is the half-diagonal of a control point diamond.
	MarkerSize float64

	ShowPolygon bool
	ShowMarkers bool
}

// DefaultStyle returns black lines and markers and a green curve on white.
func DefaultStyle() Style {
	return Style{
		Background:  White(),
		Polygon:     Black(),
		Curve:       Green(),
		Marker:      Black(),
		LineWidth:   1,
		MarkerSize:  4,
		ShowPolygon: true,
		ShowMarkers: true,
	}
}
