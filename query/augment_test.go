package query

import "testing"

func TestAugmentWithDemographics(t *testing.T) {
	got := Augment("What causes headaches?", "34", "Male")
	want := "For a 34-year-old male, What causes headaches?"
	if got != want {
		t.Fatalf("Augment = %q; want %q", got, want)
	}
}

func TestAugmentUnchangedWithoutDemographics(t *testing.T) {
	question := "What causes headaches?"

	if got := Augment(question, "", "Prefer not to say"); got != question {
		t.Fatalf("Augment with defaults = %q; want unchanged %q", got, question)
	}

	// Empty gender falls back to the default selection.
	if got := Augment(question, "", ""); got != question {
		t.Fatalf("Augment with empty gender = %q; want unchanged %q", got, question)
	}
}

func TestAugmentGenderOnly(t *testing.T) {
	got := Augment("Is this normal?", "", "Female")
	want := "For a -year-old female, Is this normal?"
	if got != want {
		t.Fatalf("Augment = %q; want %q", got, want)
	}
}

func TestAugmentAgeOnly(t *testing.T) {
	got := Augment("Is this normal?", "70", "Prefer not to say")
	want := "For a 70-year-old prefer not to say, Is this normal?"
	if got != want {
		t.Fatalf("Augment = %q; want %q", got, want)
	}
}
