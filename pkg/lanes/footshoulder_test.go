package lanes

import (
	"testing"

	"laneinfer/pkg/locale"
	"laneinfer/pkg/road"
	"laneinfer/pkg/tags"
)

func TestFootAndShoulderPassSidewalkBoth(t *testing.T) {
	rb := twoWayBuilder()
	footAndShoulderPass(tags.New(map[string]string{"sidewalk": "both"}), locale.NewDefault(locale.Right), false, "residential", rb, nil)

	if !isSidewalk(rb.Forward[len(rb.Forward)-1]) {
		t.Error("expected a forward sidewalk")
	}
	if !isSidewalk(rb.Backward[len(rb.Backward)-1]) {
		t.Error("expected a backward sidewalk")
	}
}

func TestFootAndShoulderPassSeparateOnlyAddsBackwardIfNonempty(t *testing.T) {
	rb := road.NewRoadBuilder("residential")
	rb.PushForward(road.NewTravel(locale.Motor, locale.Forward))
	loc := locale.NewDefault(locale.Right)
	footAndShoulderPass(tags.New(map[string]string{"sidewalk": "separate"}), loc, true, "residential", rb, nil)

	if !isSidewalk(rb.Forward[len(rb.Forward)-1]) {
		t.Error("expected a forward sidewalk")
	}
	if len(rb.Backward) != 0 {
		t.Errorf("len(Backward) = %d, want 0 (no backward lanes to attach a sidewalk to)", len(rb.Backward))
	}
}

func TestFootAndShoulderPassShoulderSuppressedOnMotorway(t *testing.T) {
	rb := twoWayBuilder()
	footAndShoulderPass(tags.New(nil), locale.NewDefault(locale.Right), false, "motorway", rb, nil)

	for _, lb := range rb.Forward {
		if lb.Type == road.Shoulder {
			t.Fatal("did not expect a shoulder on a motorway")
		}
	}
}

func TestFootAndShoulderPassShoulderAddedWhenSidewalksInferred(t *testing.T) {
	rb := twoWayBuilder()
	loc := locale.NewDefault(locale.Right)
	footAndShoulderPass(tags.New(nil), loc, false, "residential", rb, nil)

	if rb.Forward[len(rb.Forward)-1].Type != road.Shoulder {
		t.Error("expected a forward shoulder")
	}
	if rb.Backward[len(rb.Backward)-1].Type != road.Shoulder {
		t.Error("expected a backward shoulder")
	}
}

func TestFootAndShoulderPassNoBackwardShoulderOnOneway(t *testing.T) {
	rb := road.NewRoadBuilder("residential")
	rb.PushForward(road.NewTravel(locale.Motor, locale.Forward))
	rb.PushBackward(road.NewTravel(locale.Bicycle, locale.Backward))
	loc := locale.NewDefault(locale.Right)
	footAndShoulderPass(tags.New(nil), loc, true, "residential", rb, nil)

	if rb.Backward[len(rb.Backward)-1].Type == road.Shoulder {
		t.Error("did not expect a backward shoulder on a oneway way")
	}
}

func TestFootAndShoulderPassNotNeededWhenOutermostAlreadySidewalk(t *testing.T) {
	rb := road.NewRoadBuilder("residential")
	rb.PushForward(road.NewTravel(locale.Motor, locale.Forward))
	rb.PushForward(road.NewSidewalk())
	loc := locale.NewDefault(locale.Right)
	footAndShoulderPass(tags.New(nil), loc, false, "residential", rb, nil)

	if rb.Forward[len(rb.Forward)-1].Type == road.Shoulder {
		t.Error("did not expect a shoulder when the outermost lane is already a sidewalk")
	}
}
