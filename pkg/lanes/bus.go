package lanes

import (
	"strings"

	"laneinfer/pkg/diag"
	"laneinfer/pkg/locale"
	"laneinfer/pkg/road"
	"laneinfer/pkg/tags"
)

// busPass implements §4.5: the three mutually exclusive bus lane schemes.
func busPass(t tags.Tags, loc locale.Locale, oneway bool, rb *road.RoadBuilder, w *diag.Warnings) error {
	_, buswayAny := t.Tree().Get("busway")
	_, lanesBusAny := t.Tree().Get("lanes:bus")
	_, lanesPsvAny := t.Tree().Get("lanes:psv")
	_, busLanesAny := t.Tree().Get("bus:lanes")
	_, psvLanesAny := t.Tree().Get("psv:lanes")

	schemes := 0
	if buswayAny {
		schemes++
	}
	if lanesBusAny || lanesPsvAny {
		schemes++
	}
	if busLanesAny || psvLanesAny {
		schemes++
	}

	if schemes > 1 {
		sub := unionSubsetPrefix(t, "busway", "lanes:bus", "lanes:psv", "bus:lanes", "psv:lanes")
		return diag.NewError(diag.Unsupported, "more than one bus lanes scheme used", sub)
	}
	if schemes == 0 {
		return nil
	}

	switch {
	case buswayAny:
		return applyBuswayScheme(t, loc, oneway, rb, w)
	case lanesBusAny || lanesPsvAny:
		sub := unionSubsetPrefix(t, "lanes:bus", "lanes:psv")
		w.Add(diag.Unimplemented, "lanes:bus / lanes:psv counts are not implemented", sub)
		return nil
	default:
		applyPipeLaneScheme(t, oneway, rb, w)
		return nil
	}
}

func applyBuswayScheme(t tags.Tags, loc locale.Locale, oneway bool, rb *road.RoadBuilder, w *diag.Warnings) error {
	bothVal, hasBoth := t.Get("busway:both")
	leftVal, hasLeft := t.Get("busway:left")
	rightVal, hasRight := t.Get("busway:right")
	plainVal, hasPlain := t.Get("busway")

	switch {
	case hasBoth && bothVal == "lane":
		if oneway {
			return diag.NewError(diag.Ambiguous, "busway:both=lane is ambiguous on a oneway way", t.Subset("busway:both", "oneway"))
		}
		markOutermost(rb.Forward)
		markOutermost(rb.Backward)
		return nil

	case hasPlain && plainVal == "lane":
		markOutermost(rb.Forward)
		if !oneway {
			markOutermost(rb.Backward)
		}
		return nil

	case hasPlain && plainVal == "opposite_lane":
		markOutermost(rb.Backward)
		return nil

	case hasLeft && leftVal == "lane":
		applySidedBusway(loc, locale.Left, oneway, rb)
		return nil

	case hasRight && rightVal == "lane":
		applySidedBusway(loc, locale.Right, oneway, rb)
		return nil
	}

	w.Add(diag.Unimplemented, "unrecognized busway value", t.SubsetPrefix("busway"))
	return nil
}

func applySidedBusway(loc locale.Locale, side locale.Side, oneway bool, rb *road.RoadBuilder) {
	if sideDirection(loc, side) == locale.Forward {
		markOutermost(rb.Forward)
		return
	}
	if oneway {
		// busway tagged on the side that would be backward, but the way has
		// no backward lanes: the outermost forward lane becomes Bus instead.
		markOutermost(rb.Forward)
		return
	}
	markOutermost(rb.Backward)
}

// sideDirection maps a geographic side to forward/backward given the
// locale's driving side: the side matching the driving side carries the
// forward lanes.
func sideDirection(loc locale.Locale, side locale.Side) locale.Direction {
	if side == loc.DrivingSide {
		return locale.Forward
	}
	return locale.Backward
}

func markOutermost(seq []*road.LaneBuilder) {
	if len(seq) == 0 {
		return
	}
	seq[len(seq)-1].SetBus()
}

// applyPipeLaneScheme implements the bus:lanes / psv:lanes pipe-encoded
// per-lane scheme.
func applyPipeLaneScheme(t tags.Tags, oneway bool, rb *road.RoadBuilder, w *diag.Warnings) {
	var fwdSpec string
	var fwdOk bool
	if oneway {
		fwdSpec, fwdOk = firstPresent(t, "bus:lanes", "psv:lanes")
	} else {
		fwdSpec, fwdOk = firstPresent(t, "bus:lanes:forward", "psv:lanes:forward")
	}
	backSpec, backOk := firstPresent(t, "bus:lanes:backward", "psv:lanes:backward")

	offset := 0
	if len(rb.Forward) > 0 && rb.Forward[0].Type == road.SharedLeftTurn {
		offset = 1
	}

	if fwdOk {
		applyPipeSpec(rb.Forward, fwdSpec, offset)
	}
	if backOk {
		applyPipeSpec(rb.Backward, backSpec, 0)
	}
}

func firstPresent(t tags.Tags, keys ...tags.Key) (string, bool) {
	for _, k := range keys {
		if v, ok := t.Get(k); ok {
			return v, true
		}
	}
	return "", false
}

func applyPipeSpec(seq []*road.LaneBuilder, spec string, offset int) {
	parts := strings.Split(spec, "|")
	if len(parts) != len(seq)-offset {
		return
	}
	for i, p := range parts {
		if p == "designated" {
			seq[offset+i].SetBus()
		}
	}
}

func unionSubsetPrefix(t tags.Tags, prefixes ...tags.Key) tags.Tags {
	merged := make(map[string]string)
	for _, p := range prefixes {
		for k, v := range t.SubsetPrefix(p).Map() {
			merged[k] = v
		}
	}
	return tags.New(merged)
}
