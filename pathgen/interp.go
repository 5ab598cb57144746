package pathgen

import (
	"github.com/npillmayer/scatter"
	"github.com/npillmayer/scatter/cloud"
	"github.com/npillmayer/scatter/curve"
)

// === Path interpretation ===================================================

// Interpret walks a command list and samples it into one ordered point
// sequence. The pen position starts at the first command's endpoint (a
// Move is expected first, but not enforced); every later command emits
// the points of its segment, evenly spaced by curve distance. The
// concatenated sequence is cleaned against the target spacing, so that
// joint points shared by adjacent segments appear once. The result is
// not recentered; see Generator.Generate for the full pipeline.
func Interpret(cmds []Command, resolution int, spacing float64) ([]scatter.Pair, error) {
	if len(cmds) == 0 {
		return nil, ErrNoCommands
	}
	if resolution <= 0 {
		return nil, curve.ErrBadResolution
	}
	if spacing <= 0 {
		return nil, curve.ErrBadSpacing
	}
	current := cmds[0].Endpoint(scatter.Origin)
	start := current // subpath start, reset by Move
	var out []scatter.Pair
	for _, cmd := range cmds[1:] {
		var c curve.Curve
		switch cmd := cmd.(type) {
		case Move:
			current = cmd.To
			start = cmd.To
			continue
		case Line:
			c = curve.Line{From: current, To: cmd.To}
		case HLine:
			c = curve.Line{From: current, To: cmd.Endpoint(current)}
		case VLine:
			c = curve.Line{From: current, To: cmd.Endpoint(current)}
		case QuadCurve:
			c = curve.Quadratic{P0: current, P1: cmd.Control, P2: cmd.To}
		case CubicCurve:
			c = curve.Cubic{P0: current, P1: cmd.Control1, P2: cmd.Control2, P3: cmd.To}
		case Arc:
			c = curve.NewArc(current, cmd.To, cmd.Rx, cmd.Ry, cmd.Rotation,
				cmd.LargeArc, cmd.Sweep)
		case Close:
			c = curve.Line{From: current, To: start}
			current = start
		default:
			tracer().Errorf("skipping unsupported path command %T", cmd)
			continue
		}
		pts, err := curve.Emit(c, resolution, spacing)
		if err != nil {
			return nil, err
		}
		out = append(out, pts...)
		current = cmd.Endpoint(current)
	}
	tracer().Debugf("interpreted %d commands into %d raw points", len(cmds), len(out))
	return cloud.Clean(out, spacing, 0), nil
}
