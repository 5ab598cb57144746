// Package curve evaluates 2D path primitives and re-parameterizes them
// by arc length.
/*

Every primitive (straight line, quadratic and cubic Bézier curve,
elliptical arc in the SVG endpoint convention) implements a common
evaluator interface: a map from a parameter t in [0,1] to a point.
Evaluating a curve at evenly spaced t does not yield evenly spaced
points, since the parametric speed varies along the curve. The package
therefore measures the approximate arc length of an evaluator by
polyline subdivision and derives a re-parameterized view: a map from a
normalized distance fraction u in [0,1] to the point lying at that
fraction of the curve's total length. Sampling the re-parameterized
view at uniform u-steps yields points that are evenly spaced by true
curve distance.

The accuracy of the arc-length table, and with it the spacing fidelity
of emitted points, is bounded by the subdivision resolution. Both the
table construction and each lookup are cheap (O(N) respectively
O(log N) for resolution N), so resolutions in the hundreds are fine
for interactive use.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curve
