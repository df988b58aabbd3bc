package lanes

import (
	"testing"

	"laneinfer/pkg/locale"
	"laneinfer/pkg/road"
	"laneinfer/pkg/tags"
)

func TestParkingPass(t *testing.T) {
	tests := []struct {
		name         string
		tagMap       map[string]string
		wantForward  bool
		wantBackward bool
	}{
		{
			name:        "right parallel",
			tagMap:      map[string]string{"parking:lane:right": "parallel"},
			wantForward: true,
		},
		{
			name:         "left diagonal",
			tagMap:       map[string]string{"parking:lane:left": "diagonal"},
			wantBackward: true,
		},
		{
			name:         "both perpendicular",
			tagMap:       map[string]string{"parking:lane:both": "perpendicular"},
			wantForward:  true,
			wantBackward: true,
		},
		{
			name:   "no_parking is not a parking geometry",
			tagMap: map[string]string{"parking:lane:right": "no_parking"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rb := twoWayBuilder()
			parkingPass(tags.New(tt.tagMap), locale.NewDefault(locale.Right), rb, nil)

			gotForward := rb.Forward[len(rb.Forward)-1].Type == road.Parking
			gotBackward := rb.Backward[len(rb.Backward)-1].Type == road.Parking
			if gotForward != tt.wantForward {
				t.Errorf("forward parking = %v, want %v", gotForward, tt.wantForward)
			}
			if gotBackward != tt.wantBackward {
				t.Errorf("backward parking = %v, want %v", gotBackward, tt.wantBackward)
			}
		})
	}
}
