package cloud

import (
	"github.com/fogleman/delaunay"
	"github.com/npillmayer/scatter"
)

// === Fill engine ===========================================================

// Delaunay is the package's default triangulation capability, backed by
// a Delaunay triangulation of the point set.
func Delaunay(pts []scatter.Pair) ([]int, error) {
	dpts := make([]delaunay.Point, len(pts))
	for i, p := range pts {
		dpts[i] = delaunay.Point{X: p.X(), Y: p.Y()}
	}
	tri, err := delaunay.Triangulate(dpts)
	if err != nil {
		return nil, err
	}
	return tri.Triangles, nil
}

// Tessellate triangulates a point set and returns the triangle edges
// whose length falls strictly between minLen and maxLen. Shorter edges
// connect points that are already dense enough; longer edges typically
// span a concavity or the shape's exterior and must not attract fill
// points. Edges shared between two triangles may appear twice; callers
// tolerate the duplicates.
func Tessellate(pts []scatter.Pair, minLen, maxLen float64, tri Triangulator) ([]Edge, error) {
	if tri == nil {
		return nil, ErrNoTriangulator
	}
	if len(pts) == 0 {
		return nil, ErrEmptyCloud
	}
	indices, err := tri(pts)
	if err != nil {
		return nil, err
	}
	minSq, maxSq := minLen*minLen, maxLen*maxLen
	var edges []Edge
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := pts[indices[i]], pts[indices[i+1]], pts[indices[i+2]]
		for _, e := range [3]Edge{{a, b}, {b, c}, {c, a}} {
			if d := e.LengthSq(); minSq < d && d < maxSq {
				edges = append(edges, e)
			}
		}
	}
	tracer().Debugf("tessellation of %d points keeps %d edges in (%g,%g)",
		len(pts), len(edges), minLen, maxLen)
	return edges, nil
}

// Fill densifies a point set: it tessellates the set, places one new
// point at the midpoint of every surviving edge, and cleans the
// combined set against the given spacing. Repeated invocation yields
// progressively denser fills.
func Fill(pts []scatter.Pair, minLen, maxLen, spacing float64, tri Triangulator) ([]scatter.Pair, error) {
	edges, err := Tessellate(pts, minLen, maxLen, tri)
	if err != nil {
		return nil, err
	}
	out := append([]scatter.Pair(nil), pts...)
	for _, e := range edges {
		out = append(out, e.Mid())
	}
	return Clean(out, spacing, 0), nil
}
