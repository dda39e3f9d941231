// Package bezier holds the model of a single open Bézier curve: the ordered
// control points, nearest-point hit testing and de Casteljau evaluation.
//
// Nothing in this package is safe for concurrent use. It is driven from a
// single event loop; callers that share a Store across goroutines must
// serialize access themselves.
package bezier

import (
	"errors"
	"fmt"

	"bezplot/pkg/graphics"
)

// ErrOutOfRange is the panic value (wrapped) of an index outside the store.
var ErrOutOfRange = errors.New("control point index out of range")

// Store is the ordered sequence of control points. Point 0 is the start of
// the curve and the last point is its end. Points are only ever appended.
type Store struct {
	points []*graphics.ControlPoint
}

// NewStore creates a store holding control points at the given positions.
func NewStore(points ...graphics.Point) *Store {
	s := &Store{points: make([]*graphics.ControlPoint, 0, len(points))}
	for _, p := range points {
		s.Add(p)
	}
	return s
}

// Add appends a new control point at p and returns it.
func (s *Store) Add(p graphics.Point) *graphics.ControlPoint {
	cp := graphics.FromCoordinatePair(p)
	s.points = append(s.points, cp)
	return cp
}

// Len returns the number of control points.
func (s *Store) Len() int {
	return len(s.points)
}

// At returns the control point at index i. The returned point may be moved
// in place. At panics if i is not in [0, Len()).
func (s *Store) At(i int) *graphics.ControlPoint {
	if i < 0 || i >= len(s.points) {
		panic(fmt.Errorf("%w: index %d, len %d", ErrOutOfRange, i, len(s.points)))
	}
	return s.points[i]
}

// Index returns the index of cp in the store, or -1.
func (s *Store) Index(cp *graphics.ControlPoint) int {
	for i, p := range s.points {
		if p == cp {
			return i
		}
	}
	return -1
}

// Points returns a copy of the control point positions in order.
func (s *Store) Points() []graphics.Point {
	out := make([]graphics.Point, len(s.points))
	for i, cp := range s.points {
		out[i] = graphics.ToCoordinatePair(cp)
	}
	return out
}
