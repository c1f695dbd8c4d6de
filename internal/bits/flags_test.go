package bits

import "testing"

func TestRebuildMatchesOwnShape(t *testing.T) {
	f := NewElementFlags()
	f.Rebuild("div", "main", []string{"card", "highlighted"})

	if !f.MayMatchTag("div") {
		t.Errorf("expected MayMatchTag(div) to be true")
	}
	if !f.MayMatchID("main") {
		t.Errorf("expected MayMatchID(main) to be true")
	}
	if !f.MayMatchClass("card") {
		t.Errorf("expected MayMatchClass(card) to be true")
	}
	if !f.MayMatchClass("highlighted") {
		t.Errorf("expected MayMatchClass(highlighted) to be true")
	}
}

func TestRebuildClearsStaleShape(t *testing.T) {
	f := NewElementFlags()
	f.Rebuild("span", "old-id", []string{"old-class"})
	f.Rebuild("div", "new-id", nil)

	if f.MayMatchTag("span") {
		t.Errorf("expected stale tag to be cleared by Rebuild")
	}
	if !f.MayMatchTag("div") {
		t.Errorf("expected new tag to be present after Rebuild")
	}
}

func TestMayMatchRejectsObviouslyAbsentSelectors(t *testing.T) {
	f := NewElementFlags()
	f.Rebuild("li", "", []string{"item"})

	if f.MayMatchClass("definitely-not-present-xyz") {
		t.Errorf("expected MayMatchClass to reject an unrelated class (false positives are rare but this one must not collide)")
	}
}
