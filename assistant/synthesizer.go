package assistant

import (
	"context"
	"fmt"
	"strings"

	"medassist/config"
	"medassist/types"
)

// Synthesizer builds a grounding prompt from retrieved snippets and turns
// the completion backend's output into a displayable answer.
type Synthesizer struct {
	provider CompletionProvider
}

// NewSynthesizer creates a Synthesizer over the given provider.
func NewSynthesizer(provider CompletionProvider) *Synthesizer {
	return &Synthesizer{provider: provider}
}

// Answer produces the answer for a question grounded in the given snippets.
// With no snippets it returns the fixed no-sources message without touching
// the backend. The backend is called exactly once; a failure degrades to an
// inline error string presented as the answer, never a propagated error.
func (s *Synthesizer) Answer(ctx context.Context, question string, snippets []types.SourceSnippet) types.Answer {
	if len(snippets) == 0 {
		return types.Answer{
			Text:    config.NoSourcesMessage,
			Sources: []types.SourceRef{},
		}
	}

	text, err := s.provider.Complete(ctx, buildPrompt(question, snippets))
	if err != nil {
		return types.Answer{
			Text:    fmt.Sprintf("Answer service error: %v", err),
			Sources: []types.SourceRef{},
		}
	}

	sources := make([]types.SourceRef, 0, len(snippets))
	for _, sn := range snippets {
		sources = append(sources, types.SourceRef{Title: sn.Title, URL: sn.URL})
	}

	return types.Answer{
		Text:    strings.TrimSpace(text) + config.DisclaimerSuffix,
		Sources: sources,
	}
}

// buildPrompt renders the deterministic grounding prompt: one snippet line
// per source, the question, and the style instructions.
func buildPrompt(question string, snippets []types.SourceSnippet) string {
	var b strings.Builder

	b.WriteString("Answer the medical question clearly using only the snippets below.\n")
	b.WriteString("Use plain language and at most eight sentences.\n")
	b.WriteString("Mention both common and serious conditions if symptoms are described.\n")
	b.WriteString("End with: \"" + config.SafetyReminder + "\"\n")
	b.WriteString("\nSnippets:\n")

	for _, sn := range snippets {
		b.WriteString(fmt.Sprintf("- **%s**: %s\n", sn.Title, sn.Excerpt))
	}

	b.WriteString("\nQuestion: ")
	b.WriteString(question)
	b.WriteString("\n\nAnswer:")

	return b.String()
}
