package curve

import (
	"sort"

	"github.com/npillmayer/scatter"
)

// === Arc-length measurement ================================================

// A Measure is the arc-length table of a curve: cumulative polyline
// lengths recorded at N+1 equidistant parameter values, including the
// mandatory entry at t=1. The polyline chords are retained for
// diagnostic use.
type Measure struct {
	entries []MapEntry
	chords  []Chord
	total   float64
}

// MeasureCurve approximates the arc length of a curve by subdividing
// the parameter interval [0,1] into resolution equal steps and summing
// the chord lengths of the resulting polyline. Accuracy improves with
// resolution at linear cost.
func MeasureCurve(c Curve, resolution int) (*Measure, error) {
	if resolution <= 0 {
		return nil, ErrBadResolution
	}
	m := &Measure{
		entries: make([]MapEntry, 0, resolution+1),
		chords:  make([]Chord, 0, resolution),
	}
	prev := c.At(0)
	m.entries = append(m.entries, MapEntry{T: 0, Length: 0})
	for i := 1; i <= resolution; i++ {
		t := float64(i) / float64(resolution)
		pt := c.At(t)
		m.total += scatter.Dist(prev, pt)
		m.entries = append(m.entries, MapEntry{T: t, Length: m.total})
		m.chords = append(m.chords, Chord{From: prev, To: pt})
		prev = pt
	}
	tracer().Debugf("measured curve, %d chords, total length %.4g", resolution, m.total)
	return m, nil
}

// Total returns the accumulated polyline length.
func (m *Measure) Total() float64 {
	return m.total
}

// Entries returns the arc-length table rows in increasing t order.
func (m *Measure) Entries() []MapEntry {
	return m.entries
}

// Chords returns the polyline segments the measurement is based on.
func (m *Measure) Chords() []Chord {
	return m.chords
}

// === Re-parameterization ===================================================

// A Uniform is a re-parameterized view onto a curve: it maps a
// normalized arc-length fraction u in [0,1] to the point lying at that
// fraction of the curve's total length. Sampling At at uniform u-steps
// yields points evenly spaced by curve distance.
type Uniform struct {
	curve   Curve
	measure *Measure
}

// Reparameterize measures a curve at the given resolution and wraps it
// into a Uniform view.
func Reparameterize(c Curve, resolution int) (Uniform, error) {
	m, err := MeasureCurve(c, resolution)
	if err != nil {
		return Uniform{}, err
	}
	return Uniform{curve: c, measure: m}, nil
}

// Length returns the curve's total (approximated) arc length.
func (u Uniform) Length() float64 {
	return u.measure.total
}

// At maps an arc-length fraction to a point on the curve. The fraction
// is clamped into [0,1]. The target distance is bracketed between two
// table entries (the table is monotonic, so a binary search suffices)
// and t is interpolated proportionally to where the target falls
// between their cumulative lengths, then the underlying curve is
// evaluated at the interpolated t.
func (u Uniform) At(frac float64) scatter.Pair {
	frac = scatter.Clamp(frac, 0, 1)
	target := frac * u.measure.total
	entries := u.measure.entries
	i := sort.Search(len(entries), func(k int) bool {
		return entries[k].Length >= target
	})
	if i == 0 {
		return u.curve.At(entries[0].T)
	}
	if i == len(entries) { // rounding pushed target past the last row
		i = len(entries) - 1
	}
	lo, hi := entries[i-1], entries[i]
	before := target - lo.Length
	after := hi.Length - target
	ratio := 0.0 // a zero-length chord contributes nothing, keep lower t
	if before+after > 0 {
		ratio = before / (before + after)
	}
	t := lo.T + (hi.T-lo.T)*ratio
	return u.curve.At(t)
}
