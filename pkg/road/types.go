// Package road holds the lane data model: the builder-time lane
// representation produced by the mode passes, and the final serializable
// Lane/Road shape that is the engine's public output.
package road

import "laneinfer/pkg/locale"

// LaneType is the builder-time classification of a lane, before it is
// flattened into the four-variant output Lane shape. It intentionally never
// includes a "separator" value: per the builder invariants, the forward and
// backward sequences never contain separators before assembly — separators
// are synthesized afterwards, and so is the Buffer-to-separator conversion.
type LaneType int

const (
	Travel LaneType = iota
	Parking
	Shoulder
	Construction
	SharedLeftTurn
	Buffer
)

func (t LaneType) String() string {
	switch t {
	case Travel:
		return "travel"
	case Parking:
		return "parking"
	case Shoulder:
		return "shoulder"
	case Construction:
		return "construction"
	case SharedLeftTurn:
		return "shared_left_turn"
	case Buffer:
		return "buffer"
	default:
		return "unknown"
	}
}

// BufferType is the physical form of a separation buffer between a cycleway
// and the carriageway, decoded from an OSM "separation" sub-key.
type BufferType int

const (
	NoBuffer BufferType = iota
	FlexPosts
	Curb
	Planters
	JerseyBarrier
	Stripes
)

// MarkingStyle is the paint/kerb style of a Marking.
type MarkingStyle int

const (
	SolidLine MarkingStyle = iota
	DottedLine
	DashedLine
	BrokenLine
	KerbUp
	KerbDown
)

func (s MarkingStyle) String() string {
	switch s {
	case SolidLine:
		return "solid_line"
	case DottedLine:
		return "dotted_line"
	case DashedLine:
		return "dashed_line"
	case BrokenLine:
		return "broken_line"
	case KerbUp:
		return "kerb_up"
	case KerbDown:
		return "kerb_down"
	default:
		return "unknown"
	}
}

// Color is the paint/kerb color of a Marking.
type Color int

const (
	ColorNone Color = iota
	White
	Yellow
	Red
	Green
	Grey
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	case Green:
		return "green"
	case Grey:
		return "grey"
	default:
		return ""
	}
}

// DefaultMarkingWidth is used for a Marking whose width was not specified.
const DefaultMarkingWidth = 0.2

// Marking describes one stripe/kerb within a Separator lane.
type Marking struct {
	Style MarkingStyle
	Color Color // ColorNone means "unspecified"; KerbUp/KerbDown default to Grey on output.
	Width float64
}

// ResolvedColor returns the marking's color, defaulting kerbs to grey when
// unspecified, per the data model invariant.
func (m Marking) ResolvedColor() Color {
	if m.Color != ColorNone {
		return m.Color
	}
	if m.Style == KerbUp || m.Style == KerbDown {
		return Grey
	}
	return ColorNone
}

// ResolvedWidth returns the marking's width, defaulting to
// DefaultMarkingWidth when unset.
func (m Marking) ResolvedWidth() float64 {
	if m.Width > 0 {
		return m.Width
	}
	return DefaultMarkingWidth
}

// Lane is the final, user-visible tagged union of four variants: Travel,
// Parking, Shoulder, Separator. Go has no sum types, so the variant is
// carried by Kind and only the fields relevant to that Kind are populated.
type Lane struct {
	Kind OutputKind

	// Travel / Parking / Shoulder fields.
	Direction    locale.Direction
	HasDirection bool // Travel's direction is optional; absent implies Foot.
	Designated   locale.Designated
	Width        float64
	HasWidth     bool
	MaxSpeedKPH  int
	HasMaxSpeed  bool
	Access       string // e.g. "construction"; empty means unrestricted.
	SharedLeftTurn bool // Travel only; true at most once, centered on the forward side.

	// Separator fields.
	Markings []Marking
}

// OutputKind is the discriminator of the four final Lane variants.
type OutputKind int

const (
	OutTravel OutputKind = iota
	OutParking
	OutShoulder
	OutSeparator
)

func (k OutputKind) String() string {
	switch k {
	case OutTravel:
		return "travel"
	case OutParking:
		return "parking"
	case OutShoulder:
		return "shoulder"
	case OutSeparator:
		return "separator"
	default:
		return "unknown"
	}
}

// HighwayClass re-exports locale.HighwayClass for callers that only import
// the road package.
type HighwayClass = locale.HighwayClass

// Road is the final, assembled, left-to-right lane list plus the highway
// class it was built from.
type Road struct {
	Lanes   []Lane
	Highway HighwayClass
}
