// Package pathgen interprets sequences of 2D path commands and samples
// them into evenly spaced point clouds, suitable for particle-style
// rendering. Clients usually go through the Generator façade, which
// chains sampling, interior filling and affine adjustment.
package pathgen

import (
	"errors"

	"github.com/npillmayer/scatter"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'scatter.path'
func tracer() tracing.Trace {
	return tracing.Select("scatter.path")
}

var (
	// ErrNoCommands indicates an empty path command list.
	ErrNoCommands = errors.New("path has no commands")
)

// A Command is one drawing instruction of a 2D path: move the pen,
// draw a line, a Bézier curve, or an elliptical arc. Commands are
// ordered; their order is the path's drawing order.
//
// The set of commands is closed; the interpreter skips anything it
// does not recognize rather than aborting the walk, since upstream
// path descriptions may contain commands outside the supported subset.
type Command interface {
	// Endpoint resolves the pen position after the command, given the
	// position before it.
	Endpoint(current scatter.Pair) scatter.Pair
}

// Move lifts the pen and places it at To. No points are emitted, and a
// new subpath starts here.
type Move struct {
	To scatter.Pair
}

// Endpoint resolves the pen position after the command.
func (m Move) Endpoint(scatter.Pair) scatter.Pair { return m.To }

// Line draws a straight segment from the pen position to To.
type Line struct {
	To scatter.Pair
}

// Endpoint resolves the pen position after the command.
func (l Line) Endpoint(scatter.Pair) scatter.Pair { return l.To }

// HLine draws a horizontal segment to the given x coordinate, keeping
// the pen's y.
type HLine struct {
	X float64
}

// Endpoint resolves the pen position after the command.
func (h HLine) Endpoint(current scatter.Pair) scatter.Pair {
	return scatter.P(h.X, current.Y())
}

// VLine draws a vertical segment to the given y coordinate, keeping
// the pen's x.
type VLine struct {
	Y float64
}

// Endpoint resolves the pen position after the command.
func (v VLine) Endpoint(current scatter.Pair) scatter.Pair {
	return scatter.P(current.X(), v.Y)
}

// QuadCurve draws a quadratic Bézier curve from the pen position over
// one control point to To.
type QuadCurve struct {
	Control scatter.Pair
	To      scatter.Pair
}

// Endpoint resolves the pen position after the command.
func (q QuadCurve) Endpoint(scatter.Pair) scatter.Pair { return q.To }

// CubicCurve draws a cubic Bézier curve from the pen position over two
// control points to To.
type CubicCurve struct {
	Control1 scatter.Pair
	Control2 scatter.Pair
	To       scatter.Pair
}

// Endpoint resolves the pen position after the command.
func (c CubicCurve) Endpoint(scatter.Pair) scatter.Pair { return c.To }

// Arc draws an elliptical arc from the pen position to To, in the SVG
// endpoint convention: radii, x-axis rotation in degrees, and the
// large-arc and sweep flags selecting one of the four candidate arcs.
type Arc struct {
	Rx, Ry   float64
	Rotation float64 // degrees
	LargeArc bool
	Sweep    bool
	To       scatter.Pair
}

// Endpoint resolves the pen position after the command.
func (a Arc) Endpoint(scatter.Pair) scatter.Pair { return a.To }

// Close draws a straight segment back to the start of the current
// subpath (the position of the most recent Move).
type Close struct{}

// Endpoint resolves the pen position after the command. The interpreter
// substitutes the current subpath start; outside an interpreter run the
// pen simply stays put.
func (z Close) Endpoint(current scatter.Pair) scatter.Pair { return current }
