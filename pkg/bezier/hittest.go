package bezier

import (
	"bezplot/pkg/graphics"
)

// DefaultSelectionRadius is the distance under which the cursor picks a point.
const DefaultSelectionRadius = 12

// Selection is the index of the active control point, or NoSelection.
type Selection int

// NoSelection means no control point is active.
const NoSelection Selection = -1

// Valid reports whether the selection refers to a point.
func (sel Selection) Valid() bool {
	return sel >= 0
}

// HitTester picks the control point under the cursor.
type HitTester struct {
	Radius float64
}

// NewHitTester returns a hit tester with the given selection radius.
func NewHitTester(radius float64) HitTester {
	return HitTester{Radius: radius}
}

// Nearest scans the store for the point closest to cursor.
//
// Each point must first beat the best rectilinear distance so far, and only
// then is its euclidean distance computed and compared. A point with a
// smaller euclidean but larger rectilinear distance than the current best is
// therefore skipped; the result is the nearest among the points that pass
// both gates, not necessarily the true nearest. Ties keep the earlier point.
//
// Nearest returns NoSelection and a zero distance for an empty store.
func (h HitTester) Nearest(s *Store, cursor graphics.Point) (Selection, float64) {
	if s.Len() == 0 {
		return NoSelection, 0
	}

	nearest := Selection(0)
	p := graphics.ToCoordinatePair(s.At(0))
	nearestManhattan := cursor.Manhattan(p)
	nearestDistance := cursor.Distance(p)

	for i := 1; i < s.Len(); i++ {
		p := graphics.ToCoordinatePair(s.At(i))
		manhattan := cursor.Manhattan(p)
		if !(manhattan < nearestManhattan) {
			continue // fast reject, true for most points
		}
		distance := cursor.Distance(p)
		if !(distance < nearestDistance) {
			continue
		}
		nearest = Selection(i)
		nearestManhattan = manhattan
		nearestDistance = distance
	}
	return nearest, nearestDistance
}

// Select returns the nearest point if it lies strictly inside the radius.
func (h HitTester) Select(s *Store, cursor graphics.Point) Selection {
	nearest, distance := h.Nearest(s, cursor)
	if nearest.Valid() && distance < h.Radius {
		return nearest
	}
	return NoSelection
}

// Update recomputes the selection for cursor and reports whether it differs
// from prev.
func (h HitTester) Update(s *Store, cursor graphics.Point, prev Selection) (Selection, bool) {
	sel := h.Select(s, cursor)
	return sel, sel != prev
}
