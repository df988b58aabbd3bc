package lanes

import (
	"laneinfer/pkg/locale"
	"laneinfer/pkg/road"
)

// assemble implements the §4.10 left-to-right assembler: each builder
// sequence is stored center-to-edge (index 0 nearest the centerline,
// increasing index toward the curb), finalized into output Lane values, and
// combined according to driving side.
func assemble(rb *road.RoadBuilder, loc locale.Locale) []road.Lane {
	fwd := finalizeAll(rb.Forward, loc, rb.Highway)
	back := finalizeAll(rb.Backward, loc, rb.Highway)

	if loc.DrivingSide == locale.Right {
		out := reverseLanes(back)
		return append(out, fwd...)
	}
	out := reverseLanes(fwd)
	return append(out, back...)
}

func finalizeAll(seq []*road.LaneBuilder, loc locale.Locale, hwy road.HighwayClass) []road.Lane {
	out := make([]road.Lane, len(seq))
	for i, lb := range seq {
		out[i] = lb.Finalize(loc, hwy)
	}
	return out
}

func reverseLanes(in []road.Lane) []road.Lane {
	out := make([]road.Lane, len(in))
	for i, l := range in {
		out[len(in)-1-i] = l
	}
	return out
}
