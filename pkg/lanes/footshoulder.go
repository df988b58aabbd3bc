package lanes

import (
	"laneinfer/pkg/diag"
	"laneinfer/pkg/locale"
	"laneinfer/pkg/road"
	"laneinfer/pkg/tags"
)

// footAndShoulderPass implements §4.8: sidewalk placement followed by
// shoulder need on whichever side still lacks one.
func footAndShoulderPass(t tags.Tags, loc locale.Locale, oneway bool, hwy road.HighwayClass, rb *road.RoadBuilder, w *diag.Warnings) {
	applySidewalks(t, loc, rb)
	applyShoulders(t, loc, oneway, hwy, rb)
}

func applySidewalks(t tags.Tags, loc locale.Locale, rb *road.RoadBuilder) {
	switch {
	case t.Is("sidewalk", "both"):
		rb.PushForward(road.NewSidewalk())
		rb.PushBackward(road.NewSidewalk())

	case t.Is("sidewalk", "separate"):
		if loc.InferredSidewalks {
			backwardHadLanes := len(rb.Backward) > 0
			rb.PushForward(road.NewSidewalk())
			if backwardHadLanes {
				rb.PushBackward(road.NewSidewalk())
			}
		}

	case t.Is("sidewalk", "right"):
		pushSidewalk(loc, locale.Right, rb)

	case t.Is("sidewalk", "left"):
		pushSidewalk(loc, locale.Left, rb)
	}
}

func pushSidewalk(loc locale.Locale, side locale.Side, rb *road.RoadBuilder) {
	if sideDirection(loc, side) == locale.Forward {
		rb.PushForward(road.NewSidewalk())
		return
	}
	rb.PushBackward(road.NewSidewalk())
}

func applyShoulders(t tags.Tags, loc locale.Locale, oneway bool, hwy road.HighwayClass, rb *road.RoadBuilder) {
	suppressed := hwy == "motorway" || hwy == "motorway_link" || hwy == "construction" ||
		t.Is("foot", "no") || t.Is("access", "no") || t.Is("motorroad", "yes")
	if suppressed {
		return
	}
	if !loc.InfersSidewalksFor(hwy) {
		return
	}

	if needsShoulder(rb.Forward) {
		rb.PushForward(road.NewShoulder())
	}
	if !oneway && needsShoulder(rb.Backward) {
		rb.PushBackward(road.NewShoulder())
	}
}

func needsShoulder(seq []*road.LaneBuilder) bool {
	if len(seq) == 0 {
		return true
	}
	return !isSidewalk(seq[len(seq)-1])
}

func isSidewalk(lb *road.LaneBuilder) bool {
	if lb.Type != road.Travel {
		return false
	}
	d, ok := lb.Designated.Get()
	return ok && d == locale.Foot
}
