package corpus

import (
	"testing"

	"laneinfer/pkg/locale"
)

func TestNewValidatesAllFixtures(t *testing.T) {
	c, err := New(locale.NewDefault(locale.Right))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("expected a non-empty corpus")
	}
}

func TestNearestReturnsClosestFixture(t *testing.T) {
	c, err := New(locale.NewDefault(locale.Right))
	if err != nil {
		t.Fatal(err)
	}

	want := fixtures[0]
	got, ok := c.Nearest(want.lat, want.lon)
	if !ok {
		t.Fatal("Nearest() ok = false, want true")
	}
	if int64(got.ID) != want.id {
		t.Errorf("Nearest().ID = %d, want %d", got.ID, want.id)
	}
}

func TestNearestOnEmptyCorpus(t *testing.T) {
	var c Corpus
	if _, ok := c.Nearest(0, 0); ok {
		t.Error("Nearest() on empty corpus ok = true, want false")
	}
}
