package lanes

import (
	"laneinfer/pkg/diag"
	"laneinfer/pkg/locale"
	"laneinfer/pkg/road"
	"laneinfer/pkg/tags"
)

// nonMotorizedPass implements §4.4 for highway classes cycleway, footway,
// path, pedestrian, steps, and track.
func nonMotorizedPass(t tags.Tags, loc locale.Locale, hwy road.HighwayClass, w *diag.Warnings) (*road.RoadBuilder, error) {
	rb := road.NewRoadBuilder(hwy)

	if hwy == "steps" {
		rb.PushForward(road.NewSidewalk())
		w.Add(diag.Unimplemented, "lane is only a sidewalk", t.Subset("highway"))
		return rb, nil
	}

	footwayRestricted := t.Is("highway", "footway") && !t.IsAny("bicycle", "designated", "yes")
	if t.Is("bicycle", "no") || footwayRestricted {
		rb.PushForward(road.NewSidewalk())
		return rb, nil
	}

	oneway := t.Is("oneway", "yes")

	rb.PushForward(road.NewTravel(locale.Bicycle, locale.Forward))
	if !oneway {
		rb.PushBackward(road.NewTravel(locale.Bicycle, locale.Backward))
	}

	if !t.Is("foot", "no") {
		if len(rb.Forward) > 0 {
			rb.PushForward(road.NewShoulder())
		}
		if len(rb.Backward) > 0 {
			rb.PushBackward(road.NewShoulder())
		}
	}

	return rb, nil
}
