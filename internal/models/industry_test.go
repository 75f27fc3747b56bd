package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestResolveIconKnownNames(t *testing.T) {
	cases := map[string]string{
		"technology": "cpu",
		"finance":    "trending-up",
	}
	for name, want := range cases {
		if got := ResolveIcon(name); got != want {
			t.Errorf("ResolveIcon(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestResolveIconFallsBack(t *testing.T) {
	if got := ResolveIcon("underwater-basket-weaving"); got != DefaultIndustryIcon {
		t.Errorf("unknown icon resolved to %q, want the %q fallback", got, DefaultIndustryIcon)
	}
	if got := ResolveIcon(""); got != DefaultIndustryIcon {
		t.Errorf("empty icon resolved to %q, want the %q fallback", got, DefaultIndustryIcon)
	}
}

func TestQuestionTargeting(t *testing.T) {
	mentor := uuid.New()
	other := uuid.New()

	open := &Question{}
	if !open.TargetsAll() || !open.Targets(mentor) {
		t.Error("a question with a nil target list must be visible to every mentor")
	}

	list := []uuid.UUID{mentor}
	targeted := &Question{TargetedMentorIDs: &list}
	if targeted.TargetsAll() {
		t.Error("an explicit target list must not read as target-all")
	}
	if !targeted.Targets(mentor) {
		t.Error("the named mentor must be targeted")
	}
	if targeted.Targets(other) {
		t.Error("an unnamed mentor must not be targeted")
	}
}
