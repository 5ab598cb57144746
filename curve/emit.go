package curve

import (
	"github.com/npillmayer/scatter"
)

// === Point emission ========================================================

// Emit samples a curve into points spaced by (approximately) the given
// target distance. The curve is re-parameterized by arc length at the
// given resolution, the number of steps is floor(length/spacing), and
// points are emitted at uniform arc-length fractions from 0 to 1
// inclusive. The final point at u=1, i.e. the curve's endpoint, is
// always emitted. A segment shorter than the spacing yields just its
// endpoint.
func Emit(c Curve, resolution int, spacing float64) ([]scatter.Pair, error) {
	if spacing <= 0 {
		return nil, ErrBadSpacing
	}
	u, err := Reparameterize(c, resolution)
	if err != nil {
		return nil, err
	}
	steps := int(u.Length() / spacing)
	if steps == 0 {
		return []scatter.Pair{u.At(1)}, nil
	}
	pts := make([]scatter.Pair, 0, steps+1)
	for i := 0; i <= steps; i++ {
		pts = append(pts, u.At(float64(i)/float64(steps)))
	}
	return pts, nil
}
