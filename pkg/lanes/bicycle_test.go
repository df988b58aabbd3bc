package lanes

import (
	"testing"

	"laneinfer/pkg/diag"
	"laneinfer/pkg/locale"
	"laneinfer/pkg/road"
	"laneinfer/pkg/tags"
)

func TestBicyclePassUnsidedLaneAddsBothSides(t *testing.T) {
	in := tags.New(map[string]string{"cycleway": "lane"})
	var w diag.Warnings
	rb := twoWayBuilder()
	if err := bicyclePass(in, rightHand(), false, rb, &w); err != nil {
		t.Fatal(err)
	}
	if len(rb.Forward) != 2 || len(rb.Backward) != 2 {
		t.Fatalf("len(Forward)=%d len(Backward)=%d, want 2 and 2", len(rb.Forward), len(rb.Backward))
	}
}

func TestBicyclePassUnsidedLaneCombinedWithSidedIsUnsupported(t *testing.T) {
	in := tags.New(map[string]string{"cycleway": "lane", "cycleway:left": "track"})
	var w diag.Warnings
	rb := twoWayBuilder()
	if err := bicyclePass(in, rightHand(), false, rb, &w); err == nil {
		t.Fatal("expected an error combining unsided cycleway with a sided cycleway:*")
	}
}

func TestBicyclePassBothAddsSingleBothDirectionLane(t *testing.T) {
	in := tags.New(map[string]string{"cycleway:both": "track"})
	var w diag.Warnings
	rb := twoWayBuilder()
	if err := bicyclePass(in, rightHand(), false, rb, &w); err != nil {
		t.Fatal(err)
	}
	last := rb.Forward[len(rb.Forward)-1]
	if d, _ := last.Direction.Get(); d != locale.Both {
		t.Errorf("direction = %v, want Both", d)
	}
}

func TestBicyclePassDeprecatedOppositeLane(t *testing.T) {
	in := tags.New(map[string]string{"cycleway": "opposite_lane"})
	var w diag.Warnings
	rb := twoWayBuilder()
	if err := bicyclePass(in, rightHand(), false, rb, &w); err != nil {
		t.Fatal(err)
	}
	if w.Empty() {
		t.Fatal("expected a deprecation warning for cycleway=opposite_lane")
	}
	last := rb.Backward[len(rb.Backward)-1]
	if d, _ := last.Direction.Get(); d != locale.Backward {
		t.Errorf("direction = %v, want Backward", d)
	}
}

func TestBicyclePassDrivingSideLaneOnewayBicycleUpgradesToBoth(t *testing.T) {
	in := tags.New(map[string]string{"cycleway:right": "lane", "cycleway:right:oneway": "no"})
	var w diag.Warnings
	rb := twoWayBuilder()
	if err := bicyclePass(in, rightHand(), false, rb, &w); err != nil {
		t.Fatal(err)
	}
	last := rb.Forward[len(rb.Forward)-1]
	if d, _ := last.Direction.Get(); d != locale.Both {
		t.Errorf("direction = %v, want Both", d)
	}
}

func TestBicyclePassOppositeSideLaneOnewayRoadPrepends(t *testing.T) {
	in := tags.New(map[string]string{"cycleway:left": "lane"})
	var w diag.Warnings
	rb := road.NewRoadBuilder("residential")
	rb.PushForward(road.NewTravel(locale.Motor, locale.Forward))
	if err := bicyclePass(in, rightHand(), true, rb, &w); err != nil {
		t.Fatal(err)
	}
	if len(rb.Forward) != 2 {
		t.Fatalf("len(Forward) = %d, want 2", len(rb.Forward))
	}
	if d, _ := rb.Forward[0].Designated.Get(); d != locale.Bicycle {
		t.Errorf("Forward[0] designated = %v, want Bicycle (prepended)", d)
	}
}

func TestBicyclePassOppositeSideOpposingLaneIsUnsupported(t *testing.T) {
	in := tags.New(map[string]string{"cycleway:left": "opposite_lane"})
	var w diag.Warnings
	rb := twoWayBuilder()
	if err := bicyclePass(in, rightHand(), false, rb, &w); err == nil {
		t.Fatal("expected an error for cycleway:<opposite side>=opposite_lane")
	}
}

func TestBicyclePassLeftHandTrafficWithCyclewayIsUnsupported(t *testing.T) {
	in := tags.New(map[string]string{"cycleway:left": "lane"})
	var w diag.Warnings
	rb := twoWayBuilder()
	if err := bicyclePass(in, locale.NewDefault(locale.Left), false, rb, &w); err == nil {
		t.Fatal("expected an error for LHT combined with a cycleway")
	}
}

func TestBicyclePassSeparationInsertsBuffer(t *testing.T) {
	in := tags.New(map[string]string{
		"cycleway:right":                  "lane",
		"cycleway:right:separation:left": "kerb",
	})
	var w diag.Warnings
	rb := twoWayBuilder()
	if err := bicyclePass(in, rightHand(), false, rb, &w); err != nil {
		t.Fatal(err)
	}
	var sawBuffer bool
	for _, lb := range rb.Forward {
		if lb.Type == road.Buffer && lb.BufferOf == road.Curb {
			sawBuffer = true
		}
	}
	if !sawBuffer {
		t.Fatal("expected a Curb buffer lane adjacent to the bicycle lane")
	}
}

func TestBicyclePassSeparationSkippedWithoutBicycleLane(t *testing.T) {
	in := tags.New(map[string]string{"cycleway:right:separation:left": "kerb"})
	var w diag.Warnings
	rb := twoWayBuilder()
	if err := bicyclePass(in, rightHand(), false, rb, &w); err != nil {
		t.Fatal(err)
	}
	for _, lb := range rb.Forward {
		if lb.Type == road.Buffer {
			t.Fatal("did not expect a buffer lane with no matching bicycle lane")
		}
	}
}
