package lanes

import (
	"laneinfer/pkg/diag"
	"laneinfer/pkg/locale"
	"laneinfer/pkg/road"
	"laneinfer/pkg/tags"
)

// parkingPass implements §4.7: parking:lane:{left,right,both} pushed to the
// outer end of the corresponding side when tagged with an on-street parking
// geometry.
func parkingPass(t tags.Tags, loc locale.Locale, rb *road.RoadBuilder, w *diag.Warnings) {
	rightVal, hasRight := t.Get("parking:lane:right")
	leftVal, hasLeft := t.Get("parking:lane:left")
	bothVal, hasBoth := t.Get("parking:lane:both")

	if (hasRight && isParkingLane(rightVal)) || (hasBoth && isParkingLane(bothVal)) {
		rb.PushForward(road.NewParking(locale.Forward))
	}
	if (hasLeft && isParkingLane(leftVal)) || (hasBoth && isParkingLane(bothVal)) {
		rb.PushBackward(road.NewParking(locale.Backward))
	}
}

func isParkingLane(v string) bool {
	switch v {
	case "parallel", "diagonal", "perpendicular":
		return true
	default:
		return false
	}
}
