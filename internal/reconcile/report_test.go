package reconcile

import (
	"strings"
	"testing"

	"github.com/korvala/padmap/internal/mapping"
)

func TestRenderHeader(t *testing.T) {
	got := RenderHeader(mapping.Descriptor{Name: "Pad A", Type: "PAD"})

	if !strings.Contains(got, "NAME: Pad A") {
		t.Errorf("Header missing name line: %q", got)
	}
	if !strings.Contains(got, "TYPE: PAD") {
		t.Errorf("Header missing type line: %q", got)
	}
}

func TestRenderRowMatched(t *testing.T) {
	st := RuleStatus{
		Rule:     mapping.Rule{Property: "Button", Parameter: "1", Value: "key a", Label: "copy"},
		Observed: "key a\n",
		Matched:  true,
	}

	got := RenderRow(st)
	for _, want := range []string{"YES", "Button", "1", "key a", "copy"} {
		if !strings.Contains(got, want) {
			t.Errorf("Matched row missing %q: %q", want, got)
		}
	}
}

func TestRenderRowMatchedWithoutLabel(t *testing.T) {
	st := RuleStatus{
		Rule:    mapping.Rule{Property: "Button", Parameter: "2", Value: "key b"},
		Matched: true,
	}

	got := RenderRow(st)
	if !strings.Contains(got, "YES") {
		t.Errorf("Matched row missing marker: %q", got)
	}
	// No trailing label column for unlabeled rules.
	if strings.Count(got, "|") != 3 {
		t.Errorf("Expected 3 column separators, got %d: %q", strings.Count(got, "|"), got)
	}
}

func TestRenderRowMismatched(t *testing.T) {
	st := RuleStatus{
		Rule:     mapping.Rule{Property: "Button", Parameter: "1", Value: "key a"},
		Observed: "key b\n",
		Matched:  false,
	}

	got := RenderRow(st)
	if !strings.Contains(got, "> NO | Button 1 = key b | SHOULD BE: key a") {
		t.Errorf("Mismatched row = %q", got)
	}
}

func TestRenderSummary(t *testing.T) {
	if got := RenderSummary(true); !strings.Contains(got, "ALL GOOD!") {
		t.Errorf("RenderSummary(true) = %q", got)
	}
	if got := RenderSummary(false); !strings.Contains(got, "MAPPING DID NOT MATCH!") {
		t.Errorf("RenderSummary(false) = %q", got)
	}
}
