package css

import (
	"strings"
	"testing"
)

func TestParseSelectorWithLimits_Length(t *testing.T) {
	long := strings.Repeat("a", 100)
	if _, err := ParseSelectorWithLimits(long, 50, 0); err == nil {
		t.Fatal("expected error for selector exceeding length cap")
	}
	if _, err := ParseSelectorWithLimits(long, 0, 0); err != nil {
		t.Fatalf("length cap of 0 should disable enforcement, got %v", err)
	}
	if _, err := ParseSelectorWithLimits(long, 200, 0); err != nil {
		t.Fatalf("selector under the cap should parse, got %v", err)
	}
}

func TestParseSelectorWithLimits_NestingDepth(t *testing.T) {
	nested := ":not(:not(:not(div)))"
	if _, err := ParseSelectorWithLimits(nested, 0, 2); err == nil {
		t.Fatal("expected error for selector exceeding nesting-depth cap")
	}
	if _, err := ParseSelectorWithLimits(nested, 0, 3); err != nil {
		t.Fatalf("selector at the cap should parse, got %v", err)
	}
	if _, err := ParseSelectorWithLimits(nested, 0, 0); err != nil {
		t.Fatalf("nesting cap of 0 should disable enforcement, got %v", err)
	}
}

func TestParseSelector_DefaultLimitsAllowOrdinarySelectors(t *testing.T) {
	if _, err := ParseSelector("div.class#id[attr=value]:not(.other)"); err != nil {
		t.Fatalf("ordinary selector should parse under default limits: %v", err)
	}
}

func TestParseSelectorWithLimits_LogsSecurityEvent(t *testing.T) {
	prev := SelectorSecurityLogger
	defer func() { SelectorSecurityLogger = prev }()

	var kinds []string
	SelectorSecurityLogger = func(kind, detail string) {
		kinds = append(kinds, kind)
	}

	if _, err := ParseSelectorWithLimits(strings.Repeat("a", 10), 5, 0); err == nil {
		t.Fatal("expected length-cap error")
	}
	if len(kinds) != 1 || kinds[0] != "length" {
		t.Errorf("expected one 'length' log entry, got %v", kinds)
	}
}
