package curve

import (
	"errors"

	"github.com/npillmayer/scatter"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'scatter.curve'
func tracer() tracing.Trace {
	return tracing.Select("scatter.curve")
}

var (
	// ErrBadResolution indicates a non-positive subdivision resolution.
	ErrBadResolution = errors.New("resolution must be positive")
	// ErrBadSpacing indicates a non-positive target point spacing.
	ErrBadSpacing = errors.New("point spacing must be positive")
)

// A Curve maps a parameter t in [0,1] to a point in the plane.
// Implementations are pure and stateless: the same t always yields the
// same point. Values of t outside [0,1] are not rejected, but nothing
// meaningful is guaranteed for them.
type Curve interface {
	At(t float64) scatter.Pair
}

// MapEntry is one row of an arc-length table: the curve parameter and
// the cumulative polyline length accumulated up to it. Entries are
// produced in strictly increasing t order with non-decreasing Length.
type MapEntry struct {
	T      float64
	Length float64
}

// Chord is one line segment of the polyline used to approximate a
// curve during arc-length measurement. Retained for diagnostic and
// visualization purposes only.
type Chord struct {
	From, To scatter.Pair
}
