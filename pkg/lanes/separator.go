package lanes

import (
	"laneinfer/pkg/locale"
	"laneinfer/pkg/road"
)

// synthesizeSeparators walks the assembled lane list and inserts exactly one
// Separator between each adjacent pair of non-separator lanes, per §4.9. A
// lane that finalized to Kind == OutSeparator (a cycleway Buffer) already
// functions as a visual divider, so no further separator is inserted next to it. A Shoulder at
// either extreme end of the list gets a kerb marking the road edge.
func synthesizeSeparators(in []road.Lane) []road.Lane {
	if len(in) == 0 {
		return in
	}

	out := make([]road.Lane, 0, len(in)*2+2)

	if in[0].Kind == road.OutShoulder {
		out = append(out, roadEdge())
	}

	out = append(out, in[0])
	for i := 1; i < len(in); i++ {
		prev, cur := in[i-1], in[i]
		if prev.Kind != road.OutSeparator && cur.Kind != road.OutSeparator {
			out = append(out, separatorBetween(prev, cur))
		}
		out = append(out, cur)
	}

	if in[len(in)-1].Kind == road.OutShoulder {
		out = append(out, roadEdge())
	}

	return out
}

func roadEdge() road.Lane {
	return sep(road.Marking{Style: road.KerbUp, Color: road.Grey, Width: 0.1})
}

// laneClass buckets a finalized Lane for the purposes of the §4.9 marking
// table, which is keyed on coarse adjacency categories rather than the full
// Lane shape.
type laneClass int

const (
	classMotor laneClass = iota
	classBus
	classBicycle
	classSharedLeftTurn
	classParking
	classShoulder
	classOther
)

func classify(l road.Lane) laneClass {
	switch l.Kind {
	case road.OutParking:
		return classParking
	case road.OutShoulder:
		return classShoulder
	case road.OutTravel:
		if l.SharedLeftTurn {
			return classSharedLeftTurn
		}
		switch l.Designated {
		case locale.Bicycle:
			return classBicycle
		case locale.Bus:
			return classBus
		default:
			return classMotor
		}
	default:
		return classOther
	}
}

// separatorBetween returns the Separator lane to insert between two
// adjacent, already-finalized, non-separator lanes. Rows are grounded
// directly on the §4.9 table; rows not explicit in the distilled table are
// extrapolated conservatively (plain white line) per the table's own note
// that implementers should extend it.
func separatorBetween(left, right road.Lane) road.Lane {
	lc, rc := classify(left), classify(right)

	switch {
	case lc == classParking || rc == classParking || lc == classShoulder || rc == classShoulder:
		// "Any carriageway | Parking / Shoulder -> SolidLine, White"
		return sep(road.Marking{Style: road.SolidLine, Color: road.White})

	case (lc == classMotor && rc == classSharedLeftTurn) || (lc == classSharedLeftTurn && rc == classMotor):
		// "Travel(Motor) | SharedLeftTurn -> BrokenLine Yellow inside; SolidLine Yellow outside"
		return sep(
			road.Marking{Style: road.BrokenLine, Color: road.Yellow},
			road.Marking{Style: road.SolidLine, Color: road.Yellow},
		)

	case (lc == classBicycle && (rc == classMotor || rc == classBus)) || ((lc == classMotor || lc == classBus) && rc == classBicycle):
		// "Travel(Bicycle) | Travel(Motor) -> SolidLine, White"
		return sep(road.Marking{Style: road.SolidLine, Color: road.White})

	case (lc == classMotor || lc == classBus) && (rc == classMotor || rc == classBus):
		if sameCarriageway(left, right) {
			// "Travel(Motor,→) | Travel(Motor,→) -> one DashedLine, White"
			return sep(road.Marking{Style: road.DashedLine, Color: road.White})
		}
		// "Travel(Motor,→) | Travel(Motor,←) -> SolidLine + SolidLine, Yellow"
		return sep(
			road.Marking{Style: road.SolidLine, Color: road.Yellow},
			road.Marking{Style: road.SolidLine, Color: road.Yellow},
		)

	default:
		return sep(road.Marking{Style: road.SolidLine, Color: road.White})
	}
}

// sameCarriageway reports whether two travel lanes run in non-opposing
// directions (i.e. neither is definitively the opposite of the other).
func sameCarriageway(left, right road.Lane) bool {
	if !left.HasDirection || !right.HasDirection {
		return true
	}
	if left.Direction == locale.Both || right.Direction == locale.Both {
		return true
	}
	return left.Direction == right.Direction
}

func sep(markings ...road.Marking) road.Lane {
	width := road.DefaultMarkingWidth
	for _, m := range markings {
		if w := m.ResolvedWidth(); w > width {
			width = w
		}
	}
	return road.Lane{
		Kind:     road.OutSeparator,
		Markings: markings,
		Width:    width,
		HasWidth: true,
	}
}
