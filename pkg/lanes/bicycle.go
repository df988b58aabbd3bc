package lanes

import (
	"laneinfer/pkg/diag"
	"laneinfer/pkg/locale"
	"laneinfer/pkg/road"
	"laneinfer/pkg/tags"
)

// bicyclePass implements §4.6: deciding the cycleway scheme from `cycleway`
// and its side suffixes, including deprecated opposite-lane forms and the
// per-side separation-buffer sub-keys.
func bicyclePass(t tags.Tags, loc locale.Locale, oneway bool, rb *road.RoadBuilder, w *diag.Warnings) error {
	drivingSide := loc.DrivingSide
	oppositeSide := drivingSide.Opposite()
	addedBicycle := false

	unsidedVal, hasUnsided := t.Get("cycleway")
	_, sidedLeft := t.Tree().Get("cycleway:left")
	_, sidedRight := t.Tree().Get("cycleway:right")
	_, sidedBoth := t.Tree().Get("cycleway:both")
	sidedPresent := sidedLeft || sidedRight || sidedBoth

	if hasUnsided && (unsidedVal == "lane" || unsidedVal == "track") {
		if sidedPresent {
			return diag.NewError(diag.Unsupported, "cycleway=lane/track cannot be combined with sided cycleway:* keys",
				t.Subset("cycleway", "cycleway:left", "cycleway:right", "cycleway:both"))
		}
		rb.PushForward(road.NewTravel(locale.Bicycle, locale.Forward))
		addedBicycle = true
		if oneway {
			if len(rb.Backward) > 0 {
				w.Add(diag.Ambiguous, "cycleway=lane/track on a oneway way with an existing backward side", t.Subset("cycleway", "oneway"))
			}
		} else {
			rb.PushBackward(road.NewTravel(locale.Bicycle, locale.Backward))
			addedBicycle = true
		}
	} else if bothVal, hasBoth := t.Get("cycleway:both"); hasBoth && (bothVal == "lane" || bothVal == "track") {
		rb.PushForward(road.NewTravel(locale.Bicycle, locale.Both))
		addedBicycle = true
	} else {
		if hasUnsided && unsidedVal == "opposite_lane" {
			w.Add(diag.Deprecated, "cycleway=opposite_lane is deprecated", t.Subset("cycleway"))
			rb.PushBackward(road.NewTravel(locale.Bicycle, locale.Backward))
			addedBicycle = true
		}

		dsKey := tags.Key("cycleway:" + drivingSide.String())
		if dsVal, ok := t.Get(dsKey); ok {
			switch dsVal {
			case "lane", "track":
				dir := locale.Forward
				if t.Is(dsKey.Append(":oneway"), "no") || t.Is("oneway:bicycle", "no") {
					dir = locale.Both
				}
				rb.PushForward(road.NewTravel(locale.Bicycle, dir))
				addedBicycle = true
			case "opposite_lane", "opposite_track":
				w.Add(diag.Deprecated, "cycleway:<driving side>=opposite_lane/opposite_track is deprecated", t.Subset(dsKey))
				// A contraflow oddity: the lane lives on the forward side of
				// the carriageway but runs in the backward direction.
				rb.PushForward(road.NewTravel(locale.Bicycle, locale.Backward))
				addedBicycle = true
			}
		}

		odKey := tags.Key("cycleway:" + oppositeSide.String())
		if odVal, ok := t.Get(odKey); ok {
			switch odVal {
			case "lane", "track":
				onewayNo := t.Is(odKey.Append(":oneway"), "no") || t.Is("oneway:bicycle", "no")
				switch {
				case onewayNo:
					rb.PushBackward(road.NewTravel(locale.Bicycle, locale.Both))
				case oneway:
					// Wrong-side contraflow: inserted at the very center of
					// the forward side, since the road has no backward side.
					rb.PrependForward(road.NewTravel(locale.Bicycle, locale.Forward))
				default:
					rb.PushBackward(road.NewTravel(locale.Bicycle, locale.Backward))
				}
				addedBicycle = true
			case "opposite_lane", "opposite_track":
				return diag.NewError(diag.Unsupported, "cycleway:<opposite side>=opposite_lane/opposite_track is not supported", t.Subset(odKey))
			}
		}
	}

	if addedBicycle && loc.DrivingSide == locale.Left {
		return diag.NewError(diag.Unsupported, "LHT with cycleways not supported", tags.Tags{})
	}

	applySeparationBuffers(t, rb, w)

	return nil
}

// applySeparationBuffers implements the §4.6 step 5 separation sub-keys:
// exactly the three key combinations named in the spec, each mapped to a
// BufferType and inserted adjacent to the matching bicycle lane if one
// exists; silently skipped otherwise.
//
// The target side of each key is fixed, not derived from the driving side:
// ground truth (transform.rs's post-processing block) always resolves
// cycleway:right:separation:left and cycleway:left:separation:right against
// the forward side, and cycleway:left:separation:left against the backward
// side, regardless of locale. This mirrors an OSM convention where "right"
// separation keys describe a feature on the road's own forward-facing edge.
func applySeparationBuffers(t tags.Tags, rb *road.RoadBuilder, w *diag.Warnings) {
	type rule struct {
		side        locale.Side
		adjacency   string
		useForward  bool
		insertAfter bool // true: after the bike lane; false: before it
	}
	rules := []rule{
		{locale.Right, "left", true, false},
		{locale.Left, "left", false, false},
		{locale.Left, "right", true, true},
	}

	for _, r := range rules {
		key := tags.Key("cycleway:" + r.side.String() + ":separation:" + r.adjacency)
		val, ok := t.Get(key)
		if !ok {
			continue
		}
		bt := mapSeparationValue(val)
		if bt == road.NoBuffer {
			continue
		}

		var idx int
		var insertAfter func(int, *road.LaneBuilder)
		if r.useForward {
			idx = findBicycleIndex(rb.Forward)
			insertAfter = rb.InsertForwardAfter
		} else {
			idx = findBicycleIndex(rb.Backward)
			insertAfter = rb.InsertBackwardAfter
		}
		if idx < 0 {
			continue
		}

		if r.insertAfter {
			insertAfter(idx, road.NewBuffer(bt))
		} else {
			insertAfter(idx-1, road.NewBuffer(bt))
		}
	}
}

func findBicycleIndex(seq []*road.LaneBuilder) int {
	for i, lb := range seq {
		if lb.Type != road.Travel {
			continue
		}
		if d, ok := lb.Designated.Get(); ok && d == locale.Bicycle {
			return i
		}
	}
	return -1
}

func mapSeparationValue(v string) road.BufferType {
	switch v {
	case "bollard", "vertical_panel":
		return road.FlexPosts
	case "kerb", "separation_kerb":
		return road.Curb
	case "grass_verge", "planter", "tree_row":
		return road.Planters
	case "guard_rail", "jersey_barrier", "railing":
		return road.JerseyBarrier
	case "barred_area", "dashed_line", "solid_line":
		return road.Stripes
	default:
		return road.NoBuffer
	}
}
