package graphics

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrBadPoint is returned when a textual point cannot be parsed.
var ErrBadPoint = errors.New("bad point")

// Point represents a 2D position.
type Point struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Lerp blends p and o as (1-t)*p + t*o.
// At t=0 the result is p, at t=1 it is o.
func (p Point) Lerp(o Point, t float64) Point {
	return Point{
		X: (1-t)*p.X + t*o.X,
		Y: (1-t)*p.Y + t*o.Y,
	}
}

// Manhattan returns the rectilinear distance between two points.
func (p Point) Manhattan(o Point) float64 {
	return math.Abs(o.X-p.X) + math.Abs(o.Y-p.Y)
}

// Distance returns the euclidean distance between two points.
func (p Point) Distance(o Point) float64 {
	dx := o.X - p.X
	dy := o.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// ControlPoint is a user-placed, mutable position. It is always handled by
// pointer: two control points at the same coordinates are still distinct.
type ControlPoint struct {
	X, Y float64
}

// ToCoordinatePair returns the position of cp as a plain Point.
func ToCoordinatePair(cp *ControlPoint) Point {
	return Point{X: cp.X, Y: cp.Y}
}

// FromCoordinatePair allocates a new control point at p.
func FromCoordinatePair(p Point) *ControlPoint {
	return &ControlPoint{X: p.X, Y: p.Y}
}

// MoveTo repositions the control point in place.
func (cp *ControlPoint) MoveTo(p Point) {
	cp.X = p.X
	cp.Y = p.Y
}

func (cp *ControlPoint) String() string {
	return ToCoordinatePair(cp).String()
}

// ParsePoint parses "x,y".
func ParsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Point{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q: %v", ErrBadPoint, s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q: %v", ErrBadPoint, s, err)
	}
	return Point{X: x, Y: y}, nil
}

// ParsePoints parses a whitespace separated list of "x,y" pairs.
func ParsePoints(s string) ([]Point, error) {
	fields := strings.Fields(s)
	points := make([]Point, 0, len(fields))
	for _, f := range fields {
		p, err := ParsePoint(f)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}
