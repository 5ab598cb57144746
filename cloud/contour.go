package cloud

import (
	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/scatter"
)

// === Polygon bridging ======================================================
//
// Sampled boundaries are plain point sequences. For clients that want
// to clip, unite or hit-test sampled shapes, the sequences convert into
// polyclip contours/polygons.

// Contour converts an ordered point sequence into a polygon contour.
// The sequence is taken as implicitly closed; the terminal point is not
// repeated.
func Contour(pts []scatter.Pair) polyclip.Contour {
	c := make(polyclip.Contour, 0, len(pts))
	for _, p := range pts {
		c.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	}
	return c
}

// Polygon wraps a point sequence into a single-contour polygon, ready
// for boolean polygon operations.
func Polygon(pts []scatter.Pair) polyclip.Polygon {
	return polyclip.Polygon{Contour(pts)}
}

// Inside reports whether a point lies inside a contour.
func Inside(c polyclip.Contour, p scatter.Pair) bool {
	return c.Contains(polyclip.Point{X: p.X(), Y: p.Y()})
}
