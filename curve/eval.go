package curve

import (
	"fmt"

	"github.com/npillmayer/scatter"
)

// === Line ==================================================================

// Line is the evaluator for a straight segment between two points.
type Line struct {
	From, To scatter.Pair
}

// At interpolates linearly between the endpoints.
func (l Line) At(t float64) scatter.Pair {
	return scatter.Lerp(l.From, l.To, t)
}

// Pretty Stringer for line segments.
func (l Line) String() string {
	return fmt.Sprintf("%v -- %v", l.From, l.To)
}

// === Bézier curves =========================================================

// Quadratic is the evaluator for a quadratic Bézier curve with one
// control point.
type Quadratic struct {
	P0, P1, P2 scatter.Pair
}

// At evaluates the Bernstein form B(t) = (1-t)²·p0 + 2(1-t)t·p1 + t²·p2.
func (q Quadratic) At(t float64) scatter.Pair {
	s := 1 - t
	x := s*s*q.P0.X() + 2*s*t*q.P1.X() + t*t*q.P2.X()
	y := s*s*q.P0.Y() + 2*s*t*q.P1.Y() + t*t*q.P2.Y()
	return scatter.P(x, y)
}

// Cubic is the evaluator for a cubic Bézier curve with two control
// points.
type Cubic struct {
	P0, P1, P2, P3 scatter.Pair
}

// At evaluates the Bernstein form
// B(t) = (1-t)³·p0 + 3(1-t)²t·p1 + 3(1-t)t²·p2 + t³·p3.
func (c Cubic) At(t float64) scatter.Pair {
	s := 1 - t
	x := s*s*s*c.P0.X() + 3*s*s*t*c.P1.X() + 3*s*t*t*c.P2.X() + t*t*t*c.P3.X()
	y := s*s*s*c.P0.Y() + 3*s*s*t*c.P1.Y() + 3*s*t*t*c.P2.Y() + t*t*t*c.P3.Y()
	return scatter.P(x, y)
}
