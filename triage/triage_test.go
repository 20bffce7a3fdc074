package triage

import (
	"testing"

	"medassist/types"
)

func TestMatchReturnsAllMatchingAdvisories(t *testing.T) {
	m := NewMatcher(DefaultAdvisories())

	got := m.Match("Can I take Ibuprofen with Aspirin daily?")
	if len(got) != 2 {
		t.Fatalf("expected 2 advisories, got %d: %v", len(got), got)
	}

	// Dictionary order: ibuprofen before aspirin.
	if got[0] != "Long-term/high-dose ibuprofen may harm kidneys or cause stomach bleeding." {
		t.Fatalf("unexpected first advisory: %q", got[0])
	}
	if got[1] != "Daily aspirin is not suitable for everyone and can cause bleeding; check with your doctor first." {
		t.Fatalf("unexpected second advisory: %q", got[1])
	}
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	m := NewMatcher([]Advisory{{"detox", "advisory text"}})

	if got := m.Match("Do DETOX teas work?"); len(got) != 1 {
		t.Fatalf("expected 1 advisory, got %d", len(got))
	}
}

func TestMatchNoKeywordReturnsEmpty(t *testing.T) {
	m := NewMatcher(DefaultAdvisories())

	got := m.Match("How much water should I drink per day?")
	if len(got) != 0 {
		t.Fatalf("expected no advisories, got %v", got)
	}
}

func TestClassifyImmediateBeatsUrgent(t *testing.T) {
	c := NewClassifier(DefaultSeverityGroups())

	// Contains both an Immediate keyword (chest pain) and an Urgent one
	// (dizziness); the Immediate group must win.
	if got := c.Classify("I have chest pain and dizziness"); got != types.SeverityImmediate {
		t.Fatalf("Classify = %q; want %q", got, types.SeverityImmediate)
	}
}

func TestClassifyUrgent(t *testing.T) {
	c := NewClassifier(DefaultSeverityGroups())

	if got := c.Classify("My child has a HIGH FEVER since last night"); got != types.SeverityUrgent {
		t.Fatalf("Classify = %q; want %q", got, types.SeverityUrgent)
	}
}

func TestClassifyDefaultsToRoutine(t *testing.T) {
	c := NewClassifier(DefaultSeverityGroups())

	if got := c.Classify("What foods are rich in vitamin D?"); got != types.SeverityRoutine {
		t.Fatalf("Classify = %q; want %q", got, types.SeverityRoutine)
	}
}

func TestClassifyAlwaysReturnsClosedEnum(t *testing.T) {
	c := NewClassifier(DefaultSeverityGroups())

	questions := []string{
		"",
		"chest pain",
		"dizziness",
		"random question with no keywords",
	}
	for _, q := range questions {
		got := c.Classify(q)
		switch got {
		case types.SeverityImmediate, types.SeverityUrgent, types.SeverityRoutine:
		default:
			t.Fatalf("Classify(%q) returned %q, outside the closed enum", q, got)
		}
	}
}
