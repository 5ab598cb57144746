package pathgen

import (
	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/scatter"
	"github.com/npillmayer/scatter/cloud"
	"github.com/npillmayer/scatter/curve"
)

// === Generator =============================================================

// A Generator samples a path into a point cloud and post-processes it.
// It is a thin stateful façade over the pure pipeline stages: it holds
// the sampling configuration, the current point sequence and the net
// translation applied so far. Mutating methods return the receiver, so
// calls chain:
//
//	g, _ := pathgen.New(500, 2)
//	g.Generate(cmds).FillWithPoints(1, 3).Scale(1.5)
//	if g.Err() != nil { ...
//
// The first error of a chain sticks; subsequent calls become no-ops.
// A Generator owns its point cloud exclusively and is not safe for
// concurrent use; callers serialize all operations on one instance.
type Generator struct {
	resolution int
	spacing    float64
	points     []scatter.Pair
	center     scatter.Pair // net translation, not a centroid
	tri        cloud.Triangulator
	err        error
}

// New creates an empty generator. resolution is the curve subdivision
// count for arc-length measurement, spacing the target distance between
// sampled points. Both must be positive; there are no defaults at this
// layer.
func New(resolution int, spacing float64) (*Generator, error) {
	if resolution <= 0 {
		return nil, curve.ErrBadResolution
	}
	if spacing <= 0 {
		return nil, curve.ErrBadSpacing
	}
	return &Generator{
		resolution: resolution,
		spacing:    spacing,
		tri:        cloud.Delaunay,
	}, nil
}

// WithTriangulator replaces the default Delaunay triangulation used by
// FillWithPoints.
func (g *Generator) WithTriangulator(tri cloud.Triangulator) *Generator {
	g.tri = tri
	return g
}

// Generate samples the command list into the generator's point cloud:
// interpret, clean and recenter. Populating an already populated
// generator replaces its cloud.
func (g *Generator) Generate(cmds []Command) *Generator {
	if g.err != nil {
		return g
	}
	pts, err := Interpret(cmds, g.resolution, g.spacing)
	if err != nil {
		g.err = err
		return g
	}
	pts, _, err = cloud.Recenter(pts)
	if err != nil {
		g.err = err
		return g
	}
	g.points = pts
	return g
}

// FillWithPoints densifies the cloud's interior: the point set is
// triangulated, edges with a length strictly between minLen and maxLen
// receive a new point at their midpoint, and the combined set is
// cleaned against the configured spacing. May be invoked repeatedly
// for progressively denser fills.
func (g *Generator) FillWithPoints(minLen, maxLen float64) *Generator {
	if g.err != nil {
		return g
	}
	pts, err := cloud.Fill(g.points, minLen, maxLen, g.spacing, g.tri)
	if err != nil {
		g.err = err
		return g
	}
	g.points = pts
	return g
}

// Clean re-runs deduplication on the current cloud with the given
// tolerance (see cloud.Clean).
func (g *Generator) Clean(tolerance float64) *Generator {
	if g.err != nil {
		return g
	}
	g.points = cloud.Clean(g.points, g.spacing, tolerance)
	return g
}

// Scale multiplies every point by factor, relative to the origin.
func (g *Generator) Scale(factor float64) *Generator {
	if g.err != nil {
		return g
	}
	g.points = cloud.Scale(g.points, factor)
	return g
}

// Translate shifts every point by (dx,dy) and accumulates the shift
// into the tracked net center.
func (g *Generator) Translate(dx, dy float64) *Generator {
	if g.err != nil {
		return g
	}
	v := scatter.P(dx, dy)
	g.points = cloud.Translate(g.points, v)
	g.center = g.center + v
	return g
}

// Recenter translates the cloud so that its bounding-box center lands
// on the origin.
func (g *Generator) Recenter() *Generator {
	if g.err != nil {
		return g
	}
	pts, _, err := cloud.Recenter(g.points)
	if err != nil {
		g.err = err
		return g
	}
	g.points = pts
	return g
}

// Points returns the current point sequence. The slice is owned by the
// generator; callers must not mutate it.
func (g *Generator) Points() []scatter.Pair {
	return g.points
}

// Len returns the current point count.
func (g *Generator) Len() int {
	return len(g.points)
}

// BoundingBox computes the bounding box of the current cloud. An empty
// cloud has none.
func (g *Generator) BoundingBox() (cloud.Box, error) {
	return cloud.BoundingBox(g.points)
}

// Center returns the net translation applied via Translate. It tracks
// applied movement, not the cloud's centroid.
func (g *Generator) Center() scatter.Pair {
	return g.center
}

// Boundary exports the sampled outline as a polygon, for clipping or
// hit-testing against other shapes.
func (g *Generator) Boundary() polyclip.Polygon {
	return cloud.Polygon(g.points)
}

// Err returns the first error recorded by a chained operation, nil if
// the chain is healthy.
func (g *Generator) Err() error {
	return g.err
}
