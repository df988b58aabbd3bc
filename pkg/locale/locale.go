// Package locale carries the driving-side and default-width policy that the
// lane inference engine must consult but never hardcodes.
package locale

import "laneinfer/pkg/tags"

// Side is the side of the road a lane, sidewalk, or bicycle facility is on,
// and doubles as the driving side of a Locale.
type Side int

const (
	Right Side = iota
	Left
)

// Tag returns the TagKey fragment ("left" or "right") used to compose
// per-side keys such as "cycleway" + ":" + side.Tag().
func (s Side) Tag() tags.Key {
	if s == Left {
		return "left"
	}
	return "right"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Left {
		return Right
	}
	return Left
}

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Direction is the direction of travel of a lane relative to the way's
// digitized (tagged) direction.
type Direction int

const (
	Forward Direction = iota
	Backward
	Both
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Both:
		return "both"
	default:
		return "unknown"
	}
}

// Designated is the OSM "reserved for this mode" classification of a lane.
type Designated int

const (
	Foot Designated = iota
	Bicycle
	Motor
	Bus
)

func (d Designated) String() string {
	switch d {
	case Foot:
		return "foot"
	case Bicycle:
		return "bicycle"
	case Motor:
		return "motor_vehicle"
	case Bus:
		return "bus"
	default:
		return "unknown"
	}
}

// HighwayClass is the OSM "highway" tag value, e.g. "residential", "motorway".
type HighwayClass string

// widthKey identifies a (designated, highway class) width lookup; highway
// class is optional (empty string means "any highway class").
type widthKey struct {
	designated Designated
	highway    HighwayClass
}

// Locale bundles the policy decisions that vary by country/region: which
// side traffic drives on, default lane widths, and whether sidewalks should
// be inferred for untagged ways. Per Open Question (b) of the distilled
// spec, inferred-sidewalks is a required locale field rather than a
// side-channel config bit.
type Locale struct {
	DrivingSide       Side
	InferredSidewalks bool

	widths        map[widthKey]float64
	defaultWidths map[Designated]float64
}

// DefaultMotorWidth is the width (metres) used when no locale-specific or
// highway-specific override applies to a motor travel lane.
const DefaultMotorWidth = 3.5

// DefaultBusWidth mirrors motor width: buses occupy a full travel lane.
const DefaultBusWidth = 3.5

// DefaultBicycleWidth is used absent a more specific override.
const DefaultBicycleWidth = 1.75

// DefaultFootWidth is used absent a more specific override.
const DefaultFootWidth = 1.75

// DefaultParkingWidth is used for a parallel parking lane.
const DefaultParkingWidth = 2.5

// DefaultShoulderWidth is used for paved shoulders.
const DefaultShoulderWidth = 1.5

// NewDefault builds a Locale for the given driving side with the engine's
// baseline width table and InferredSidewalks set, so sidewalks are inferred
// for every highway class.
func NewDefault(drivingSide Side) Locale {
	l := Locale{
		DrivingSide:       drivingSide,
		InferredSidewalks: true,
		defaultWidths: map[Designated]float64{
			Motor:   DefaultMotorWidth,
			Bus:     DefaultBusWidth,
			Bicycle: DefaultBicycleWidth,
			Foot:    DefaultFootWidth,
		},
		widths: map[widthKey]float64{
			{Motor, "motorway"}:    3.75,
			{Motor, "trunk"}:       3.75,
			{Bicycle, "cycleway"}:  2.0,
			{Bicycle, "residential"}: 1.75,
			{Foot, "pedestrian"}:   2.0,
		},
	}
	return l
}

// TravelWidth returns the default width in metres for a lane of the given
// designation on the given highway class. The result is deterministic for a
// given Locale value: same (designated, highway) always yields the same
// width.
func (l Locale) TravelWidth(d Designated, hwy HighwayClass) float64 {
	if w, ok := l.widths[widthKey{d, hwy}]; ok {
		return w
	}
	if w, ok := l.defaultWidths[d]; ok {
		return w
	}
	return DefaultMotorWidth
}

// ParkingWidth returns the default parking-lane width in metres.
func (l Locale) ParkingWidth() float64 {
	return DefaultParkingWidth
}

// ShoulderWidth returns the default shoulder width in metres.
func (l Locale) ShoulderWidth() float64 {
	return DefaultShoulderWidth
}

// InfersSidewalksFor reports whether, for the given highway class, this
// locale treats sidewalks as ambient (present unless tagged otherwise).
// living_street always gets inferred sidewalks regardless of the locale
// flag, per the foot-and-shoulder pass rules.
func (l Locale) InfersSidewalksFor(hwy HighwayClass) bool {
	return l.InferredSidewalks || hwy == "living_street"
}
