package matchevent

import "testing"

func TestNaturalKey_CoversShotDetails(t *testing.T) {
	minute, text, last := 45, "45", "Icardi"
	low, high := 0.12, 0.55
	base := Event{FixtureID: 9, Minute: &minute, MinuteText: &text, PlayerLastName: &last, XG: &low}

	other := base
	other.XG = &high
	if base.NaturalKey() == other.NaturalKey() {
		t.Fatalf("shots differing in xG must not share a key: %q", base.NaturalKey())
	}
	if base.KeyHash() == other.KeyHash() {
		t.Fatalf("shots differing in xG must not share a hash")
	}

	same := base
	lowCopy := 0.12
	same.XG = &lowCopy
	if base.KeyHash() != same.KeyHash() {
		t.Fatalf("equal events must hash equally")
	}
	if got := len(base.KeyHash()); got != 64 {
		t.Fatalf("unexpected hash length: %d", got)
	}
}

func TestNaturalKey_NilAndEmptyMatch(t *testing.T) {
	empty := ""
	a := Event{FixtureID: 1}
	b := Event{FixtureID: 1, Notes: &empty}
	if a.NaturalKey() != b.NaturalKey() {
		t.Fatalf("nil and empty text should key the same")
	}
}
