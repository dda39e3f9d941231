// Package graphics provides the geometry shared by the editor, the
// rasterizer and the exporters: points, control points, view transforms,
// rectangles and polylines.
package graphics

import (
	"math"
)

// Matrix represents a 3x3 affine transformation matrix.
// Only the first two rows are stored since the third row is always [0 0 1].
// The matrix is stored as:
//
//	[A B 0]
//	[C D 0]
//	[E F 1]
//
// Where (A,B,C,D) handle scaling/rotation and (E,F) handle translation.
type Matrix [6]float64

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// Translate returns a translation matrix.
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scale returns a scaling matrix.
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Multiply multiplies two matrices: result = m * other
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		m[0]*other[0] + m[1]*other[2],
		m[0]*other[1] + m[1]*other[3],
		m[2]*other[0] + m[3]*other[2],
		m[2]*other[1] + m[3]*other[3],
		m[4]*other[0] + m[5]*other[2] + other[4],
		m[4]*other[1] + m[5]*other[3] + other[5],
	}
}

// Transform applies the matrix to a coordinate pair.
func (m Matrix) Transform(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// TransformPoint applies the matrix to a Point.
func (m Matrix) TransformPoint(p Point) Point {
	x, y := m.Transform(p.X, p.Y)
	return Point{x, y}
}

// ScaleX returns the horizontal scaling factor.
func (m Matrix) ScaleX() float64 {
	return math.Sqrt(m[0]*m[0] + m[1]*m[1])
}

// Rect represents a rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// NewRect creates a rectangle from two corner points.
func NewRect(x1, y1, x2, y2 float64) Rect {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return Rect{
		X:      x1,
		Y:      y1,
		Width:  x2 - x1,
		Height: y2 - y1,
	}
}

// BoundsOf returns the smallest rectangle containing every point.
// It returns the zero Rect for no points.
func BoundsOf(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return NewRect(minX, minY, maxX, maxY)
}
