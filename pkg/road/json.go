package road

import (
	"encoding/json"
	"fmt"

	"laneinfer/pkg/locale"
)

func parseDirection(s string) (locale.Direction, error) {
	switch s {
	case "forward":
		return locale.Forward, nil
	case "backward":
		return locale.Backward, nil
	case "both":
		return locale.Both, nil
	default:
		return 0, fmt.Errorf("road: unknown direction %q", s)
	}
}

func parseDesignated(s string) (locale.Designated, error) {
	switch s {
	case "foot":
		return locale.Foot, nil
	case "bicycle":
		return locale.Bicycle, nil
	case "motor_vehicle":
		return locale.Motor, nil
	case "bus":
		return locale.Bus, nil
	default:
		return 0, fmt.Errorf("road: unknown designated %q", s)
	}
}

func parseMarkingStyle(s string) (MarkingStyle, error) {
	switch s {
	case "solid_line":
		return SolidLine, nil
	case "dotted_line":
		return DottedLine, nil
	case "dashed_line":
		return DashedLine, nil
	case "broken_line":
		return BrokenLine, nil
	case "kerb_up":
		return KerbUp, nil
	case "kerb_down":
		return KerbDown, nil
	default:
		return 0, fmt.Errorf("road: unknown marking style %q", s)
	}
}

func parseColor(s string) Color {
	switch s {
	case "white":
		return White
	case "yellow":
		return Yellow
	case "red":
		return Red
	case "green":
		return Green
	case "grey":
		return Grey
	default:
		return ColorNone
	}
}

// laneJSON is the wire shape of a single Lane: a "type"-tagged object with
// variant-specific fields in snake_case, optional fields omitted when
// absent. This shape is part of the interface contract (spec §6).
type laneJSON struct {
	Type string `json:"type"`

	Direction  string `json:"direction,omitempty"`
	Designated string `json:"designated,omitempty"`
	Width      *float64 `json:"width,omitempty"`
	MaxSpeed   *int     `json:"max_speed,omitempty"`
	Access     string   `json:"access,omitempty"`
	SharedLeftTurn bool `json:"shared_left_turn,omitempty"`

	Markings []markingJSON `json:"markings,omitempty"`
}

type markingJSON struct {
	Style string `json:"style"`
	Color string `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
}

// MarshalJSON renders a Lane in the canonical tagged-object wire shape.
func (l Lane) MarshalJSON() ([]byte, error) {
	out := laneJSON{Type: l.Kind.String()}

	if l.HasDirection {
		out.Direction = l.Direction.String()
	}
	if l.Kind == OutTravel || l.Kind == OutParking {
		out.Designated = l.Designated.String()
	}
	if l.HasWidth {
		w := l.Width
		out.Width = &w
	}
	if l.HasMaxSpeed {
		s := l.MaxSpeedKPH
		out.MaxSpeed = &s
	}
	if l.Access != "" {
		out.Access = l.Access
	}
	if l.SharedLeftTurn {
		out.SharedLeftTurn = true
	}
	if len(l.Markings) > 0 {
		out.Markings = make([]markingJSON, len(l.Markings))
		for i, m := range l.Markings {
			out.Markings[i] = markingJSON{
				Style: m.Style.String(),
				Color: m.ResolvedColor().String(),
				Width: m.ResolvedWidth(),
			}
		}
	}

	return json.Marshal(out)
}

// UnmarshalJSON parses a Lane from its canonical wire shape. This supports
// the round-trip property: re-serializing and re-parsing a canonical output
// must yield the identical lane list.
func (l *Lane) UnmarshalJSON(data []byte) error {
	var in laneJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	switch in.Type {
	case "travel":
		l.Kind = OutTravel
	case "parking":
		l.Kind = OutParking
	case "shoulder":
		l.Kind = OutShoulder
	case "separator":
		l.Kind = OutSeparator
	default:
		return fmt.Errorf("road: unknown lane type %q", in.Type)
	}

	*l = Lane{Kind: l.Kind}

	if in.Direction != "" {
		d, err := parseDirection(in.Direction)
		if err != nil {
			return err
		}
		l.Direction = d
		l.HasDirection = true
	}
	if in.Designated != "" {
		d, err := parseDesignated(in.Designated)
		if err != nil {
			return err
		}
		l.Designated = d
	}
	if in.Width != nil {
		l.Width = *in.Width
		l.HasWidth = true
	}
	if in.MaxSpeed != nil {
		l.MaxSpeedKPH = *in.MaxSpeed
		l.HasMaxSpeed = true
	}
	l.Access = in.Access
	l.SharedLeftTurn = in.SharedLeftTurn

	for _, m := range in.Markings {
		style, err := parseMarkingStyle(m.Style)
		if err != nil {
			return err
		}
		l.Markings = append(l.Markings, Marking{
			Style: style,
			Color: parseColor(m.Color),
			Width: m.Width,
		})
	}

	return nil
}

// MarshalJSON renders a Road as {"lanes": [...]}.
func (r Road) MarshalJSON() ([]byte, error) {
	type wire struct {
		Lanes []Lane `json:"lanes"`
	}
	return json.Marshal(wire{Lanes: r.Lanes})
}

// UnmarshalJSON parses a Road from {"lanes": [...]}.
func (r *Road) UnmarshalJSON(data []byte) error {
	type wire struct {
		Lanes []Lane `json:"lanes"`
	}
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	r.Lanes = w.Lanes
	return nil
}
