package bezier

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"bezplot/pkg/graphics"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func approx() cmp.Option {
	return cmpopts.EquateApprox(0, 1e-9)
}

func mustPanicOutOfRange(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("panic value %v does not wrap ErrOutOfRange", r)
		}
	}()
	fn()
}

func TestStoreAddAndAt(t *testing.T) {
	s := NewStore()
	if s.Len() != 0 {
		t.Fatalf("new store has %d points", s.Len())
	}

	a := s.Add(graphics.Pt(1, 2))
	b := s.Add(graphics.Pt(1, 2))
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if a == b {
		t.Error("points at equal coordinates share identity")
	}
	if s.At(0) != a || s.At(1) != b {
		t.Error("At does not return points in insertion order")
	}
	if s.Index(b) != 1 || s.Index(&graphics.ControlPoint{X: 1, Y: 2}) != -1 {
		t.Error("Index is not identity based")
	}

	// Moving in place is visible through the store.
	s.At(1).MoveTo(graphics.Pt(9, 9))
	diff(t, []graphics.Point{{X: 1, Y: 2}, {X: 9, Y: 9}}, s.Points())
}

func TestStoreAtOutOfRange(t *testing.T) {
	s := NewStore(graphics.Pt(0, 0))
	for _, i := range []int{-1, 1, 100} {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			mustPanicOutOfRange(t, func() { s.At(i) })
		})
	}
}

func TestEvalEndpoints(t *testing.T) {
	s := NewStore(graphics.Pt(3, 4), graphics.Pt(50, -20), graphics.Pt(80, 90), graphics.Pt(120, 10))
	diff(t, graphics.Pt(3, 4), Eval(s, 0))

	near := Eval(s, 1-1e-9)
	if d := near.Distance(graphics.Pt(120, 10)); d > 1e-6 {
		t.Errorf("Eval near 1 is %v away from the last point", d)
	}
	diff(t, graphics.Pt(120, 10), Eval(s, 1))
}

func TestEvalSinglePoint(t *testing.T) {
	s := NewStore(graphics.Pt(7, 7))
	for _, tt := range []float64{0, 0.3, 1} {
		diff(t, graphics.Pt(7, 7), Eval(s, tt))
	}
}

func TestEvalKnownValues(t *testing.T) {
	tests := []struct {
		points []graphics.Point
		t      float64
		want   graphics.Point
	}{
		{[]graphics.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}, 0.5, graphics.Pt(5, 0)},
		{[]graphics.Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}}, 0.5, graphics.Pt(10, 5)},
		{[]graphics.Point{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}, 0.5, graphics.Pt(5, 7.5)},
	}
	for _, tt := range tests {
		got := Eval(NewStore(tt.points...), tt.t)
		if got != tt.want {
			t.Errorf("Eval(%v, %g) = %v, want %v", tt.points, tt.t, got, tt.want)
		}
	}
}

func TestEvalEmptyPanics(t *testing.T) {
	mustPanicOutOfRange(t, func() { Eval(NewStore(), 0.5) })
	mustPanicOutOfRange(t, func() {
		var e Evaluator
		e.Eval(NewStore(), 0.5)
	})
}

func TestEvalIdempotent(t *testing.T) {
	s := NewStore(graphics.Pt(0, 0), graphics.Pt(13, 77), graphics.Pt(40, -3))
	if a, b := Eval(s, 0.37), Eval(s, 0.37); a != b {
		t.Errorf("Eval is not repeatable: %v != %v", a, b)
	}
	var e Evaluator
	if a, b := e.Eval(s, 0.37), e.Eval(s, 0.37); a != b {
		t.Errorf("Evaluator is not repeatable: %v != %v", a, b)
	}
}

func TestEvaluatorMatchesRecursion(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var e Evaluator
	for n := 1; n <= 9; n++ {
		s := NewStore()
		for i := 0; i < n; i++ {
			s.Add(graphics.Pt(rng.Float64()*800, rng.Float64()*600))
		}
		for _, tt := range []float64{0, 0.01, 0.25, 0.5, 0.77, 0.99, 1} {
			// Same arithmetic per node, so the results are identical.
			if a, b := Eval(s, tt), e.Eval(s, tt); a != b {
				t.Errorf("n=%d t=%g: recursive %v, iterative %v", n, tt, a, b)
			}
		}
	}
}

func TestSample(t *testing.T) {
	if got := Sample(NewStore(), DefaultSteps); got != nil {
		t.Errorf("Sample(empty) = %v, want nil", got)
	}
	if got := Sample(NewStore(graphics.Pt(1, 1)), DefaultSteps); got != nil {
		t.Errorf("Sample(one point) = %v, want nil", got)
	}

	s := NewStore(graphics.Pt(0, 0), graphics.Pt(50, 100), graphics.Pt(100, 0))
	line := Sample(s, DefaultSteps)
	if len(line) != 100 {
		t.Fatalf("got %d vertices, want 100", len(line))
	}
	diff(t, graphics.Pt(0, 0), line[0])
	diff(t, Eval(s, 0.01), line[1])
	diff(t, Eval(s, 0.99), line[len(line)-1])
	if line[len(line)-1] == graphics.Pt(100, 0) {
		t.Error("default sampling reached the final control point")
	}
	for i := 1; i < len(line); i++ {
		if line[i].X <= line[i-1].X {
			t.Fatalf("vertex %d does not advance along the curve: %v after %v", i, line[i], line[i-1])
		}
	}

	if got := Sample(s, 0); len(got) != 100 {
		t.Errorf("Sample(steps=0) gave %d vertices, want the default 100", len(got))
	}

	full := SampleToEnd(s, 10)
	if len(full) != 11 {
		t.Fatalf("SampleToEnd gave %d vertices, want 11", len(full))
	}
	diff(t, graphics.Pt(100, 0), full[10])
	diff(t, Eval(s, 0.9), full[9], approx())
}

func TestNearestEmpty(t *testing.T) {
	h := NewHitTester(DefaultSelectionRadius)
	if sel, _ := h.Nearest(NewStore(), graphics.Pt(0, 0)); sel != NoSelection {
		t.Errorf("Nearest(empty) = %d", sel)
	}
	if sel := h.Select(NewStore(), graphics.Pt(0, 0)); sel.Valid() {
		t.Errorf("Select(empty) = %d", sel)
	}
}

func TestSelect(t *testing.T) {
	h := NewHitTester(DefaultSelectionRadius)
	s := NewStore(graphics.Pt(0, 0), graphics.Pt(100, 100))

	sel, d := h.Nearest(s, graphics.Pt(1, 1))
	if sel != 0 || math.Abs(d-math.Sqrt2) > 1e-12 {
		t.Errorf("Nearest = (%d, %g), want (0, %g)", sel, d, math.Sqrt2)
	}
	if got := h.Select(s, graphics.Pt(1, 1)); got != 0 {
		t.Errorf("Select near first point = %d, want 0", got)
	}
	if got := h.Select(s, graphics.Pt(99, 98)); got != 1 {
		t.Errorf("Select near last point = %d, want 1", got)
	}
	if got := h.Select(s, graphics.Pt(50, 50)); got != NoSelection {
		t.Errorf("Select far from every point = %d, want none", got)
	}
}

func TestSelectRadiusIsStrict(t *testing.T) {
	h := NewHitTester(12)
	s := NewStore(graphics.Pt(0, 0))
	if got := h.Select(s, graphics.Pt(12, 0)); got != NoSelection {
		t.Errorf("point exactly on the radius selected: %d", got)
	}
	if got := h.Select(s, graphics.Pt(11.999, 0)); got != 0 {
		t.Errorf("point inside the radius not selected: %d", got)
	}
}

func TestNearestRectilinearGatePrunes(t *testing.T) {
	h := NewHitTester(DefaultSelectionRadius)
	cursor := graphics.Pt(0, 0)
	// (6,6) is closer (8.49 < 10) but its rectilinear distance is larger
	// (12 > 10), so it never reaches the euclidean comparison.
	s := NewStore(graphics.Pt(10, 0), graphics.Pt(6, 6))

	sel, d := h.Nearest(s, cursor)
	if sel != 0 || d != 10 {
		t.Errorf("Nearest = (%d, %g), want (0, 10)", sel, d)
	}
	if got := h.Select(s, cursor); got != 0 {
		t.Errorf("Select = %d, want 0", got)
	}
}

func TestNearestEuclideanGate(t *testing.T) {
	h := NewHitTester(DefaultSelectionRadius)
	// (9,0) passes the rectilinear gate (9 < 10) but loses on euclidean
	// distance (9 > 7.07).
	s := NewStore(graphics.Pt(5, 5), graphics.Pt(9, 0), graphics.Pt(2, 1))
	sel, d := h.Nearest(s, graphics.Pt(0, 0))
	if sel != 2 || math.Abs(d-math.Sqrt(5)) > 1e-12 {
		t.Errorf("Nearest = (%d, %g), want (2, %g)", sel, d, math.Sqrt(5))
	}

	s = NewStore(graphics.Pt(5, 5), graphics.Pt(9, 0))
	if sel, _ := h.Nearest(s, graphics.Pt(0, 0)); sel != 0 {
		t.Errorf("Nearest = %d, want 0", sel)
	}
}

func TestNearestTieKeepsEarlier(t *testing.T) {
	h := NewHitTester(DefaultSelectionRadius)
	s := NewStore(graphics.Pt(5, 0), graphics.Pt(0, 5), graphics.Pt(-5, 0))
	if sel, _ := h.Nearest(s, graphics.Pt(0, 0)); sel != 0 {
		t.Errorf("Nearest = %d, want the earlier point 0", sel)
	}
}

func TestUpdateReportsChange(t *testing.T) {
	h := NewHitTester(DefaultSelectionRadius)
	s := NewStore(graphics.Pt(0, 0), graphics.Pt(0, 0))

	sel, changed := h.Update(s, graphics.Pt(1, 0), NoSelection)
	if sel != 0 || !changed {
		t.Errorf("Update = (%d, %v), want (0, true)", sel, changed)
	}
	sel, changed = h.Update(s, graphics.Pt(2, 0), sel)
	if sel != 0 || changed {
		t.Errorf("Update = (%d, %v), want (0, false)", sel, changed)
	}
	sel, changed = h.Update(s, graphics.Pt(200, 0), sel)
	if sel != NoSelection || !changed {
		t.Errorf("Update = (%d, %v), want (none, true)", sel, changed)
	}
}

func TestAddThenSelectPicksNewPoint(t *testing.T) {
	h := NewHitTester(DefaultSelectionRadius)
	s := NewStore(graphics.Pt(40, 40), graphics.Pt(80, 10))
	pos := graphics.Pt(300, 200)
	cp := s.Add(pos)
	if got := h.Select(s, pos); got != Selection(s.Index(cp)) {
		t.Errorf("Select = %d, want the new point %d", got, s.Index(cp))
	}
}
