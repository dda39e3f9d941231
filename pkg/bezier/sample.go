package bezier

import (
	"bezplot/pkg/graphics"
)

// DefaultSteps is the number of parameter steps used for display.
const DefaultSteps = 100

// Sample flattens the curve into a polyline for display. The polyline
// starts at the first control point and continues through B(i/steps) for
// i = 1 .. steps-1, so with the default 100 steps the last vertex is
// B(0.99) rather than the final control point.
//
// Sample returns nil when there are fewer than two control points.
// A steps value below 1 is treated as DefaultSteps.
func Sample(s *Store, steps int) []graphics.Point {
	if s.Len() < 2 {
		return nil
	}
	if steps < 1 {
		steps = DefaultSteps
	}

	var e Evaluator
	line := make([]graphics.Point, 0, steps+1)
	line = append(line, graphics.ToCoordinatePair(s.At(0)))
	for i := 1; i < steps; i++ {
		line = append(line, e.Eval(s, float64(i)/float64(steps)))
	}
	return line
}

// SampleToEnd is Sample followed by the exact end point B(1).
func SampleToEnd(s *Store, steps int) []graphics.Point {
	line := Sample(s, steps)
	if line == nil {
		return nil
	}
	return append(line, graphics.ToCoordinatePair(s.At(s.Len()-1)))
}
