package cloud

import (
	"github.com/npillmayer/scatter"
)

// === Point cloud post-processing ===========================================
//
// All operations are pure: they take a point sequence and return a new
// one, leaving the argument untouched. Stateful chaining lives one
// layer up, in package pathgen.

// Clean removes points that lie closer than spacing−tolerance to
// another point. Violating pairs are visited in index order and only
// the later point of a pair is removed, and only when neither point of
// the pair has been removed already. Once a point was part of a removal
// decision, later pairs involving it are skipped. This is a greedy,
// order-dependent heuristic, deliberately so: it keeps earlier points
// and its output is stable for a given input order.
func Clean(pts []scatter.Pair, spacing, tolerance float64) []scatter.Pair {
	limit := spacing - tolerance
	if limit <= 0 { // tolerance swallows the spacing, nothing to remove
		return append([]scatter.Pair(nil), pts...)
	}
	limitSq := limit * limit
	removed := make(map[int]bool)
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			if scatter.DistSq(pts[i], pts[j]) >= limitSq {
				continue
			}
			if !removed[i] && !removed[j] {
				removed[j] = true
			}
		}
	}
	if len(removed) == 0 {
		return append([]scatter.Pair(nil), pts...)
	}
	tracer().Debugf("clean drops %d of %d points", len(removed), len(pts))
	out := make([]scatter.Pair, 0, len(pts)-len(removed))
	for i, p := range pts {
		if !removed[i] {
			out = append(out, p)
		}
	}
	return out
}

// BoundingBox computes the axis-aligned bounding box of a point set.
// An empty set has no box and yields ErrEmptyCloud.
func BoundingBox(pts []scatter.Pair) (Box, error) {
	if len(pts) == 0 {
		return Box{}, ErrEmptyCloud
	}
	minx, miny := pts[0].F()
	maxx, maxy := minx, miny
	for _, p := range pts[1:] {
		x, y := p.F()
		if x < minx {
			minx = x
		}
		if x > maxx {
			maxx = x
		}
		if y < miny {
			miny = y
		}
		if y > maxy {
			maxy = y
		}
	}
	return Box{X: minx, Y: miny, Width: maxx - minx, Height: maxy - miny}, nil
}

// Recenter translates a point set so that its bounding-box center (not
// its centroid) lands on the origin. It returns the translated points
// and the applied shift.
func Recenter(pts []scatter.Pair) ([]scatter.Pair, scatter.Pair, error) {
	box, err := BoundingBox(pts)
	if err != nil {
		return nil, scatter.Origin, err
	}
	shift := scatter.Origin - box.Center()
	return Translate(pts, shift), shift, nil
}

// Scale multiplies every point's coordinates by factor, relative to
// the origin.
func Scale(pts []scatter.Pair, factor float64) []scatter.Pair {
	S := scatter.Scaling(factor, factor)
	out := make([]scatter.Pair, len(pts))
	for i, p := range pts {
		out[i] = S.Transform(p)
	}
	return out
}

// Translate shifts every point by v.
func Translate(pts []scatter.Pair, v scatter.Pair) []scatter.Pair {
	T := scatter.Translation(v)
	out := make([]scatter.Pair, len(pts))
	for i, p := range pts {
		out[i] = T.Transform(p)
	}
	return out
}
