package curve

import (
	"fmt"
	"math"

	"github.com/npillmayer/scatter"
)

// === Elliptical Arc ========================================================

// Arc is the evaluator for an elliptical arc in the SVG endpoint
// convention: an arc is given by its two endpoints, the ellipse radii,
// the rotation of the ellipse's x-axis, and two flags selecting one of
// the four candidate arcs connecting the endpoints.
//
// NewArc resolves the endpoint form into center form once; the
// resolved center, radii and angles stay available as metadata for
// downstream consumers.
type Arc struct {
	from, to     scatter.Pair
	rx, ry       float64
	rot          float64 // x-axis rotation, radians
	sinr, cosr   float64
	center       scatter.Pair
	start, sweep float64 // radians
	mode         arcMode
}

type arcMode int8

const (
	arcEllipse arcMode = iota
	arcLine            // a radius vanished, degrade to a straight segment
	arcPoint           // endpoints coincide, degrade to a single point
)

// NewArc resolves an SVG endpoint-parameterized arc into an evaluator.
// xrot is the x-axis rotation in degrees and is reduced into [0,360).
// Degenerate input does not fail: coinciding endpoints collapse the arc
// to a point, a zero radius degrades it to a straight segment.
//
// The conversion follows the W3C SVG implementation notes
// (https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes):
// rotate into ellipse-aligned space, scale the radii up when they
// cannot reach both endpoints, solve for the center with the
// large-arc/sweep sign convention, then derive start and sweep angles
// from the endpoint vectors.
func NewArc(from, to scatter.Pair, rx, ry, xrot float64, largeArc, sweepFlag bool) Arc {
	a := Arc{from: from, to: to}
	if from.C() == to.C() {
		tracer().Debugf("arc %v..%v collapses to a point", from, to)
		a.mode = arcPoint
		return a
	}
	if scatter.Is0(rx) || scatter.Is0(ry) {
		tracer().Debugf("arc %v..%v has vanishing radius, degrades to line", from, to)
		a.mode = arcLine
		return a
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	rot := scatter.NormDeg(xrot) * scatter.Deg2Rad
	sinr, cosr := math.Sincos(rot)
	x1, y1 := from.F()
	x2, y2 := to.F()

	dx, dy := (x1-x2)/2, (y1-y2)/2
	x1p := cosr*dx + sinr*dy
	y1p := -sinr*dx + cosr*dy

	// scale radii up if the ellipse cannot reach both endpoints
	radiiCheck := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if radiiCheck > 1 {
		rx *= math.Sqrt(radiiCheck)
		ry *= math.Sqrt(radiiCheck)
	}

	// radicand may dip below zero from rounding alone
	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0 {
		sq = 0
	}
	coef := math.Sqrt(sq)
	if largeArc == sweepFlag {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	cx := cosr*cxp - sinr*cyp + (x1+x2)/2
	cy := sinr*cxp + cosr*cyp + (y1+y2)/2

	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := (-x1p - cxp) / rx
	vy := (-y1p - cyp) / ry

	start := math.Acos(scatter.Clamp(ux/math.Hypot(ux, uy), -1, 1))
	if uy < 0 {
		start = -start
	}
	sweep := math.Acos(scatter.Clamp(
		(ux*vx+uy*vy)/(math.Hypot(ux, uy)*math.Hypot(vx, vy)), -1, 1))
	if ux*vy-uy*vx < 0 {
		sweep = -sweep
	}
	// the sweep flag selects the turning direction: false must turn
	// clockwise (non-positive sweep), true counter-clockwise
	if !sweepFlag && sweep > 0 {
		sweep -= 2 * math.Pi
	} else if sweepFlag && sweep < 0 {
		sweep += 2 * math.Pi
	}

	a.rx, a.ry = rx, ry
	a.rot, a.sinr, a.cosr = rot, sinr, cosr
	a.center = scatter.P(cx, cy)
	a.start, a.sweep = start, sweep
	return a
}

// At evaluates the arc at t. The ellipse is sampled at angle
// start + sweep·t in ellipse-aligned space, then rotated and
// translated back into the original coordinate space.
func (a Arc) At(t float64) scatter.Pair {
	switch a.mode {
	case arcPoint:
		return a.from
	case arcLine:
		return scatter.Lerp(a.from, a.to, t)
	}
	sin, cos := math.Sincos(a.AngleAt(t))
	ex := a.rx * cos
	ey := a.ry * sin
	return scatter.P(
		a.cosr*ex-a.sinr*ey+a.center.X(),
		a.sinr*ex+a.cosr*ey+a.center.Y())
}

// Center returns the resolved ellipse center. Meaningless for
// degenerate arcs.
func (a Arc) Center() scatter.Pair {
	return a.center
}

// Radii returns the resolved radii, possibly scaled up from the
// requested ones.
func (a Arc) Radii() (rx, ry float64) {
	return a.rx, a.ry
}

// StartAngle returns the angle (radians) of the arc's start point on
// the ellipse.
func (a Arc) StartAngle() float64 {
	return a.start
}

// EndAngle returns the angle (radians) of the arc's end point on the
// ellipse.
func (a Arc) EndAngle() float64 {
	return a.start + a.sweep
}

// AngleAt returns the ellipse angle (radians) the evaluator visits at
// parameter t.
func (a Arc) AngleAt(t float64) float64 {
	return a.start + a.sweep*t
}

// Pretty Stringer for arcs.
func (a Arc) String() string {
	return fmt.Sprintf("%v (%g,%g %g°) %v", a.from, a.rx, a.ry, a.rot/scatter.Deg2Rad, a.to)
}
