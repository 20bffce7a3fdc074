package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"medassist/config"
	"medassist/types"
)

type fakeProvider struct {
	text   string
	err    error
	calls  int
	prompt string
}

func (f *fakeProvider) Complete(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func (f *fakeProvider) ModelName() string { return "fake-test-model" }

func sampleSnippets() []types.SourceSnippet {
	return []types.SourceSnippet{
		{Title: "Migraine", URL: "https://www.nhs.uk/conditions/migraine/", Excerpt: "Migraines cause throbbing pain."},
		{Title: "Headaches", URL: "https://medlineplus.gov/headache.html", Excerpt: "Most headaches are not serious."},
	}
}

func TestAnswerNoSnippetsSkipsBackend(t *testing.T) {
	provider := &fakeProvider{text: "should not be used"}
	s := NewSynthesizer(provider)

	answer := s.Answer(context.Background(), "What causes headaches?", nil)

	if answer.Text != config.NoSourcesMessage {
		t.Fatalf("Text = %q; want the fixed no-sources message", answer.Text)
	}
	if len(answer.Sources) != 0 {
		t.Fatalf("expected empty sources, got %v", answer.Sources)
	}
	if provider.calls != 0 {
		t.Fatalf("expected no completion calls, got %d", provider.calls)
	}
}

func TestAnswerAppendsDisclaimerAndSources(t *testing.T) {
	provider := &fakeProvider{text: "Drink water. Talk to a doctor to be sure."}
	s := NewSynthesizer(provider)

	snippets := sampleSnippets()
	answer := s.Answer(context.Background(), "What causes headaches?", snippets)

	if !strings.HasSuffix(answer.Text, config.DisclaimerSuffix) {
		t.Fatalf("answer does not end with disclaimer: %q", answer.Text)
	}
	if provider.calls != 1 {
		t.Fatalf("expected exactly one completion call, got %d", provider.calls)
	}

	if len(answer.Sources) != len(snippets) {
		t.Fatalf("expected %d sources, got %d", len(snippets), len(answer.Sources))
	}
	for i, src := range answer.Sources {
		if src.Title != snippets[i].Title || src.URL != snippets[i].URL {
			t.Fatalf("source %d = %+v; want title/url of snippet %+v", i, src, snippets[i])
		}
	}
}

func TestAnswerBackendFailureEmbedsDetail(t *testing.T) {
	provider := &fakeProvider{err: errors.New("rate limit exceeded")}
	s := NewSynthesizer(provider)

	answer := s.Answer(context.Background(), "What causes headaches?", sampleSnippets())

	if !strings.Contains(answer.Text, "rate limit exceeded") {
		t.Fatalf("answer does not embed failure detail: %q", answer.Text)
	}
	if len(answer.Sources) != 0 {
		t.Fatalf("expected empty sources on failure, got %v", answer.Sources)
	}
}

func TestPromptEmbedsSnippetsAndQuestion(t *testing.T) {
	provider := &fakeProvider{text: "ok"}
	s := NewSynthesizer(provider)

	s.Answer(context.Background(), "What causes headaches?", sampleSnippets())

	if !strings.Contains(provider.prompt, "- **Migraine**: Migraines cause throbbing pain.") {
		t.Fatalf("prompt missing snippet line:\n%s", provider.prompt)
	}
	if !strings.Contains(provider.prompt, "Question: What causes headaches?") {
		t.Fatalf("prompt missing question:\n%s", provider.prompt)
	}
	if !strings.Contains(provider.prompt, config.SafetyReminder) {
		t.Fatalf("prompt missing safety reminder:\n%s", provider.prompt)
	}
}
