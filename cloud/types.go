// Package cloud post-processes sampled point clouds: minimum-spacing
// deduplication, bounding boxes, recentering, affine adjustment, and
// triangulation-driven interior filling. All operations are pure
// functions over point sequences.
package cloud

import (
	"errors"
	"fmt"

	"github.com/npillmayer/scatter"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'scatter.cloud'
func tracer() tracing.Trace {
	return tracing.Select("scatter.cloud")
}

var (
	// ErrEmptyCloud indicates an operation needing a bounding box was
	// called on an empty point set.
	ErrEmptyCloud = errors.New("point cloud is empty")
	// ErrNoTriangulator indicates a fill operation without a triangulation
	// capability.
	ErrNoTriangulator = errors.New("no triangulator provided")
)

// Box is an axis-aligned bounding box, given by its lower corner and
// extent.
type Box struct {
	X, Y          float64
	Width, Height float64
}

// Center returns the box's geometric center.
func (b Box) Center() scatter.Pair {
	return scatter.P(b.X+b.Width/2, b.Y+b.Height/2)
}

// Pretty Stringer for boxes.
func (b Box) String() string {
	return fmt.Sprintf("[%g,%g %gx%g]", b.X, b.Y, b.Width, b.Height)
}

// Edge is one triangle edge, undirected for length-filtering purposes.
type Edge struct {
	P1, P2 scatter.Pair
}

// Mid returns the edge's exact midpoint.
func (e Edge) Mid() scatter.Pair {
	return scatter.Mid(e.P1, e.P2)
}

// LengthSq returns the edge's squared length.
func (e Edge) LengthSq() float64 {
	return scatter.DistSq(e.P1, e.P2)
}

// A Triangulator turns a point set into a triangle list: every
// consecutive index triple in the result denotes one triangle over the
// input points. Any correct triangulation satisfies the contract; the
// package default is Delaunay.
type Triangulator func(pts []scatter.Pair) ([]int, error)
