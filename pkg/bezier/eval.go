package bezier

import (
	"bezplot/pkg/graphics"
)

// Eval returns the point of the curve at parameter t. It recurses over the
// whole store; the store must not be empty.
func Eval(s *Store, t float64) graphics.Point {
	return EvalRange(s, 0, s.Len(), t)
}

// EvalRange evaluates the curve formed by the control points in [i, j).
// The call count doubles with every point; use an Evaluator for long
// sequences.
func EvalRange(s *Store, i, j int, t float64) graphics.Point {
	if i+1 == j {
		return graphics.ToCoordinatePair(s.At(i))
	}
	a := EvalRange(s, i, j-1, t)
	b := EvalRange(s, i+1, j, t)
	return a.Lerp(b, t)
}

// Evaluator is the iterative form of de Casteljau's algorithm. It reduces
// the control points level by level in a scratch buffer and gives the same
// result as Eval, bit for bit, in quadratic time.
//
// An Evaluator may be reused; it is not safe for concurrent use.
type Evaluator struct {
	scratch []graphics.Point
}

// Eval returns the point of the curve at t. The store must not be empty.
func (e *Evaluator) Eval(s *Store, t float64) graphics.Point {
	n := s.Len()
	if n == 0 {
		s.At(0) // out of range
	}
	if cap(e.scratch) < n {
		e.scratch = make([]graphics.Point, n)
	}
	pts := e.scratch[:n]
	for i := range pts {
		pts[i] = graphics.ToCoordinatePair(s.At(i))
	}
	for level := n - 1; level > 0; level-- {
		for i := 0; i < level; i++ {
			pts[i] = pts[i].Lerp(pts[i+1], t)
		}
	}
	return pts[0]
}
