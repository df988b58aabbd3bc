// Package lanes implements the tags → lanes inference engine: the
// unsupported-tag precheck, the non-motorized fast path, driving-lane count
// and type derivation, the center turn lane, the ordered mode passes (bus,
// bicycle, parking, foot & shoulder), separator synthesis, and the
// left-to-right assembler.
package lanes

import (
	"math"
	"strconv"
	"strings"

	"laneinfer/pkg/diag"
	"laneinfer/pkg/locale"
	"laneinfer/pkg/road"
	"laneinfer/pkg/tags"
)

// Config controls the two optional behaviors of the entry point.
type Config struct {
	// ErrorOnWarnings converts a non-empty warning list into a hard error
	// after otherwise-successful inference.
	ErrorOnWarnings bool
	// IncludeSeparators synthesizes Separator lanes between adjacent
	// non-separator lanes in the final assembled list.
	IncludeSeparators bool
}

// unsupportedAccessKeys are the OSM access-control keys this engine does not
// model; their presence is surfaced as a warning rather than silently
// ignored.
var unsupportedAccessKeys = []tags.Key{
	"access", "foot", "vehicle", "bicycle", "motor_vehicle", "motorcycle", "motorcar",
	"psv", "bus", "taxi", "hgv", "hgv:hazmat", "emergency", "goods", "agricultural",
	"forestry", "hazmat", "tourist_bus", "minibus", "share_taxi", "hov", "disabled",
	"caravan", "motorhome", "access:conditional", "vehicle:conditional", "foot:conditional",
	"bicycle:conditional", "motor_vehicle:conditional", "motorcycle:conditional",
	"motorcar:conditional", "psv:conditional", "bus:conditional", "taxi:conditional",
	"hgv:conditional", "emergency:conditional", "goods:conditional", "agricultural:conditional",
	"forestry:conditional", "hazmat:conditional", "tourist_bus:conditional",
	"minibus:conditional", "share_taxi:conditional", "hov:conditional", "disabled:conditional",
}

var nonMotorizedHighways = map[string]bool{
	"cycleway":   true,
	"footway":    true,
	"path":       true,
	"pedestrian": true,
	"steps":      true,
	"track":      true,
}

// TagsToLanes is the engine's entry point. It transforms a set of OSM way
// tags into an ordered, left-to-right lane list, or a hard error if the
// tags describe something the engine cannot recover from.
func TagsToLanes(t tags.Tags, loc locale.Locale, cfg Config) (*road.Road, *diag.Warnings, error) {
	var w diag.Warnings

	if err := unsupportedPrecheck(t, &w); err != nil {
		return nil, &w, err
	}

	hwyVal, _ := t.Get("highway")
	hwy := road.HighwayClass(hwyVal)

	if nonMotorizedHighways[hwyVal] {
		rb, err := nonMotorizedPass(t, loc, hwy, &w)
		if err != nil {
			return nil, &w, err
		}
		return finish(rb, loc, cfg, &w)
	}

	oneway := t.Is("oneway", "yes") || t.Is("junction", "roundabout")

	rb := road.NewRoadBuilder(hwy)

	fwdCount, backCount := drivingLaneCounts(t, oneway, &w)
	laneType, designated := drivingLaneType(t)

	for i := 0; i < fwdCount; i++ {
		rb.PushForward(newDrivingLane(laneType, designated, locale.Forward))
	}
	for i := 0; i < backCount; i++ {
		rb.PushBackward(newDrivingLane(laneType, designated, locale.Backward))
	}

	bothWays := parseIntDefault(t, "lanes:both_ways", 0)
	if bothWays == 1 || t.Is("centre_turn_lane", "yes") {
		rb.PrependForward(road.NewSharedLeftTurn())
	}

	if laneType == road.Construction {
		return finish(rb, loc, cfg, &w)
	}

	if err := busPass(t, loc, oneway, rb, &w); err != nil {
		return nil, &w, err
	}
	if err := bicyclePass(t, loc, oneway, rb, &w); err != nil {
		return nil, &w, err
	}
	parkingPass(t, loc, rb, &w)
	footAndShoulderPass(t, loc, oneway, hwy, rb, &w)

	return finish(rb, loc, cfg, &w)
}

func newDrivingLane(lt road.LaneType, designated locale.Designated, dir locale.Direction) *road.LaneBuilder {
	if lt == road.Construction {
		return road.NewConstruction(dir)
	}
	return road.NewTravel(designated, dir)
}

// finish runs the common assembly, separator synthesis, and
// error-on-warnings tail shared by the fast path and the general pipeline.
func finish(rb *road.RoadBuilder, loc locale.Locale, cfg Config, w *diag.Warnings) (*road.Road, *diag.Warnings, error) {
	laneList := assemble(rb, loc)
	if cfg.IncludeSeparators {
		laneList = synthesizeSeparators(laneList)
	}
	if len(laneList) == 0 {
		return nil, w, diag.NewError(diag.Internal, "inference produced no lanes", tags.Tags{})
	}

	rd := &road.Road{Lanes: laneList, Highway: rb.Highway}

	if cfg.ErrorOnWarnings {
		if err := diag.ErrorFromWarnings(w); err != nil {
			return nil, w, err
		}
	}

	return rd, w, nil
}

func unsupportedPrecheck(t tags.Tags, w *diag.Warnings) error {
	var present []tags.Key
	for _, k := range unsupportedAccessKeys {
		if t.Has(k) {
			present = append(present, k)
		}
	}
	if len(present) > 0 {
		w.Add(diag.Unimplemented, "access-control tagging is not modeled", t.Subset(present...))
	}
	if t.Is("oneway", "reversible") {
		return diag.NewError(diag.Unimplemented, "oneway=reversible is not supported", t.Subset("oneway"))
	}
	return nil
}

// drivingLaneCounts implements the §4 "Driving-lane counts" algorithm.
func drivingLaneCounts(t tags.Tags, oneway bool, w *diag.Warnings) (fwd, back int) {
	bothWays := parseIntDefault(t, "lanes:both_ways", 0)

	lanesVal, hasLanes := parseIntTag(t, "lanes")
	fwdTag, hasFwdTag := parseIntTag(t, "lanes:forward")
	backTag, hasBackTag := parseIntTag(t, "lanes:backward")

	switch {
	case hasFwdTag:
		fwd = fwdTag
	case hasLanes:
		if oneway {
			fwd = lanesVal
		} else {
			fwd = int(math.Ceil(float64(lanesVal) / 2))
		}
		fwd -= bothWays
	default:
		fwd = 1
	}

	onewayDefault := 1
	if oneway {
		onewayDefault = 0
	}

	switch {
	case hasBackTag:
		back = backTag
	case hasLanes:
		raw := lanesVal - fwd
		if raw < onewayDefault {
			raw = onewayDefault
		}
		back = raw - bothWays
	default:
		back = onewayDefault
	}

	if fwd < 0 {
		w.Add(diag.Ambiguous, "lanes:forward resolved to a negative count, clamped to 0", t.Subset("lanes", "lanes:forward", "lanes:both_ways"))
		fwd = 0
	}
	if back < 0 {
		w.Add(diag.Ambiguous, "lanes:backward resolved to a negative count, clamped to 0", t.Subset("lanes", "lanes:backward", "lanes:both_ways"))
		back = 0
	}
	if hasLanes && fwd+back+bothWays != lanesVal {
		w.Add(diag.Ambiguous, "lanes does not add up to lanes:forward + lanes:backward + lanes:both_ways", t.Subset("lanes", "lanes:forward", "lanes:backward", "lanes:both_ways"))
	}

	return fwd, back
}

// drivingLaneType implements the §4 "Driving-lane type selection" rule.
func drivingLaneType(t tags.Tags) (road.LaneType, locale.Designated) {
	if t.Is("access", "no") && t.Is("highway", "construction") {
		return road.Construction, locale.Motor
	}

	busCondition := t.Is("access", "no") && (t.Is("bus", "yes") || t.Is("psv", "yes"))
	if !busCondition {
		if v, ok := t.Get("motor_vehicle:conditional"); ok && strings.HasPrefix(v, "no") && t.Is("bus", "yes") {
			busCondition = true
		}
	}
	if busCondition {
		return road.Travel, locale.Bus
	}

	return road.Travel, locale.Motor
}

func parseIntTag(t tags.Tags, key tags.Key) (int, bool) {
	v, ok := t.Get(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseIntDefault(t tags.Tags, key tags.Key, def int) int {
	if n, ok := parseIntTag(t, key); ok {
		return n
	}
	return def
}
