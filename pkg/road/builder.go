package road

import (
	"laneinfer/pkg/infer"
	"laneinfer/pkg/locale"
)

// LaneBuilder is a mutable, provenance-aware partial lane accumulated by the
// mode passes. Its Type never takes the value of a final output "separator"
// kind: per the builder invariants, forward/backward sequences never
// contain separators before assembly. Buffer lanes (from cycleway
// separation sub-keys) live in the sequences as a distinct builder-time
// type and are converted to Separator-kind output lanes at Finalize time.
type LaneBuilder struct {
	Type LaneType

	Direction  infer.Infer[locale.Direction]
	Designated infer.Infer[locale.Designated]
	Width      infer.Infer[float64]
	MaxSpeed   infer.Infer[int]
	Access     infer.Infer[string]

	BufferOf BufferType // meaningful only when Type == Buffer

	sharedLeftTurn bool // set internally when Type == SharedLeftTurn
}

// NewTravel builds a travel lane builder with a direct designation and
// direction. Width is left unset so Finalize fills in the locale default.
func NewTravel(designated locale.Designated, direction locale.Direction) *LaneBuilder {
	return &LaneBuilder{
		Type:       Travel,
		Designated: infer.Direct(designated),
		Direction:  infer.Direct(direction),
	}
}

// NewSidewalk builds a foot travel lane with no direction, per the
// invariant that an absent direction implies Foot.
func NewSidewalk() *LaneBuilder {
	return &LaneBuilder{
		Type:       Travel,
		Designated: infer.Direct(locale.Foot),
	}
}

// NewParking builds a parking lane builder for the given side.
func NewParking(direction locale.Direction) *LaneBuilder {
	return &LaneBuilder{
		Type:       Parking,
		Designated: infer.Default(locale.Motor),
		Direction:  infer.Direct(direction),
	}
}

// NewShoulder builds a shoulder lane builder.
func NewShoulder() *LaneBuilder {
	return &LaneBuilder{Type: Shoulder}
}

// NewSharedLeftTurn builds the center two-way-left-turn lane builder.
func NewSharedLeftTurn() *LaneBuilder {
	return &LaneBuilder{
		Type:           SharedLeftTurn,
		Designated:     infer.Direct(locale.Motor),
		Direction:      infer.Direct(locale.Both),
		sharedLeftTurn: true,
	}
}

// NewConstruction builds a closed/construction lane builder for the given
// direction.
func NewConstruction(direction locale.Direction) *LaneBuilder {
	return &LaneBuilder{
		Type:       Construction,
		Designated: infer.Direct(locale.Motor),
		Direction:  infer.Direct(direction),
		Access:     infer.Direct("construction"),
	}
}

// NewBuffer builds a separation-buffer builder lane of the given type.
func NewBuffer(bt BufferType) *LaneBuilder {
	return &LaneBuilder{Type: Buffer, BufferOf: bt}
}

// SetDesignated upgrades the designation at the given rank, returning
// whether the upgrade conflicted with an existing value at the same rank.
func (lb *LaneBuilder) SetDesignated(rank infer.Rank, d locale.Designated) (conflict bool) {
	lb.Designated, conflict = lb.Designated.Upgrade(rank, d, func(a, b locale.Designated) bool { return a == b })
	return conflict
}

// SetBus unconditionally marks this lane Bus-designated at RankDirect. The
// bus mode pass always wins over whatever rank the driving-lane type
// selection stamped the base Motor designation at, mirroring the bus
// schemes' own direct, unconditional overwrite rather than routing through
// the general Upgrade conflict check.
func (lb *LaneBuilder) SetBus() {
	lb.Designated = infer.Direct(locale.Bus)
}

// SetDirection upgrades the direction at the given rank.
func (lb *LaneBuilder) SetDirection(rank infer.Rank, d locale.Direction) (conflict bool) {
	lb.Direction, conflict = lb.Direction.Upgrade(rank, d, func(a, b locale.Direction) bool { return a == b })
	return conflict
}

// SetWidth upgrades the width at the given rank.
func (lb *LaneBuilder) SetWidth(rank infer.Rank, w float64) (conflict bool) {
	lb.Width, conflict = lb.Width.Upgrade(rank, w, func(a, b float64) bool { return a == b })
	return conflict
}

// Finalize converts a builder-time lane into its final output shape, filling
// in locale-default widths where none was directly set.
func (lb *LaneBuilder) Finalize(loc locale.Locale, hwy HighwayClass) Lane {
	switch lb.Type {
	case Travel, Construction, SharedLeftTurn:
		designated := lb.Designated.GetOr(locale.Motor)
		lane := Lane{
			Kind:       OutTravel,
			Designated: designated,
		}
		if d, ok := lb.Direction.Get(); ok {
			lane.Direction = d
			lane.HasDirection = true
		}
		width := lb.Width.GetOr(loc.TravelWidth(designated, hwy))
		lane.Width = width
		lane.HasWidth = true
		if ms, ok := lb.MaxSpeed.Get(); ok {
			lane.MaxSpeedKPH = ms
			lane.HasMaxSpeed = true
		}
		if a, ok := lb.Access.Get(); ok {
			lane.Access = a
		}
		lane.SharedLeftTurn = lb.sharedLeftTurn
		return lane

	case Parking:
		lane := Lane{
			Kind:       OutParking,
			Designated: lb.Designated.GetOr(locale.Motor),
		}
		if d, ok := lb.Direction.Get(); ok {
			lane.Direction = d
			lane.HasDirection = true
		}
		lane.Width = lb.Width.GetOr(loc.ParkingWidth())
		lane.HasWidth = true
		return lane

	case Shoulder:
		lane := Lane{Kind: OutShoulder}
		lane.Width = lb.Width.GetOr(loc.ShoulderWidth())
		lane.HasWidth = true
		return lane

	case Buffer:
		return Lane{
			Kind:     OutSeparator,
			Markings: []Marking{bufferMarking(lb.BufferOf)},
		}

	default:
		return Lane{Kind: OutTravel}
	}
}

// bufferMarking maps a BufferType to the Marking used to render it when it
// is converted from a builder-time Buffer lane into output.
func bufferMarking(bt BufferType) Marking {
	switch bt {
	case FlexPosts:
		return Marking{Style: DottedLine, Color: Green, Width: 0.5}
	case Curb:
		return Marking{Style: KerbUp, Width: 0.3}
	case Planters:
		return Marking{Style: BrokenLine, Color: Green, Width: 1.0}
	case JerseyBarrier:
		return Marking{Style: SolidLine, Color: White, Width: 0.8}
	case Stripes:
		return Marking{Style: DashedLine, Color: Green, Width: 0.5}
	default:
		return Marking{Style: SolidLine, Color: White, Width: DefaultMarkingWidth}
	}
}

// IsSeparatorLike reports whether this builder lane already functions as a
// visual divider, so the generic separator-synthesis pass (spec §4.9)
// should not insert an additional Separator immediately adjacent to it.
func (lb *LaneBuilder) IsSeparatorLike() bool {
	return lb.Type == Buffer
}

// RoadBuilder accumulates the forward and backward lane sequences during
// inference, plus the way's highway class.
type RoadBuilder struct {
	Forward  []*LaneBuilder
	Backward []*LaneBuilder
	Highway  HighwayClass
}

// NewRoadBuilder creates an empty builder for the given highway class.
func NewRoadBuilder(hwy HighwayClass) *RoadBuilder {
	return &RoadBuilder{Highway: hwy}
}

// PushForward appends a lane to the outer end of the forward side.
func (rb *RoadBuilder) PushForward(lb *LaneBuilder) {
	rb.Forward = append(rb.Forward, lb)
}

// PushBackward appends a lane to the outer end of the backward side.
func (rb *RoadBuilder) PushBackward(lb *LaneBuilder) {
	rb.Backward = append(rb.Backward, lb)
}

// PrependForward inserts a lane at the center-most (index 0) position of the
// forward side, used for the center turn lane and wrong-side contraflow.
func (rb *RoadBuilder) PrependForward(lb *LaneBuilder) {
	rb.Forward = append([]*LaneBuilder{lb}, rb.Forward...)
}

// InsertForwardAfter inserts lb immediately after the forward lane at index
// i (use i = -1 to insert at the very start).
func (rb *RoadBuilder) InsertForwardAfter(i int, lb *LaneBuilder) {
	rb.Forward = insertAfter(rb.Forward, i, lb)
}

// InsertBackwardAfter inserts lb immediately after the backward lane at
// index i (use i = -1 to insert at the very start).
func (rb *RoadBuilder) InsertBackwardAfter(i int, lb *LaneBuilder) {
	rb.Backward = insertAfter(rb.Backward, i, lb)
}

func insertAfter(seq []*LaneBuilder, i int, lb *LaneBuilder) []*LaneBuilder {
	idx := i + 1
	out := make([]*LaneBuilder, 0, len(seq)+1)
	out = append(out, seq[:idx]...)
	out = append(out, lb)
	out = append(out, seq[idx:]...)
	return out
}
