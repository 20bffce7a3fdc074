package triage

import "strings"

// Advisory pairs a lowercase trigger keyword with a static cautionary
// message shown independently of the generated answer.
type Advisory struct {
	Keyword string
	Text    string
}

// Matcher scans questions against an ordered advisory dictionary.
type Matcher struct {
	advisories []Advisory
}

// NewMatcher creates a Matcher over the given dictionary. The slice order is
// the order matched advisories are returned in.
func NewMatcher(advisories []Advisory) *Matcher {
	return &Matcher{advisories: advisories}
}

// Match returns the advisory text for every keyword contained in the
// question, case-insensitively, in dictionary order. An empty result means
// no advisory applies and is not an error.
func (m *Matcher) Match(question string) []string {
	q := strings.ToLower(question)

	matched := make([]string, 0)
	for _, a := range m.advisories {
		if strings.Contains(q, a.Keyword) {
			matched = append(matched, a.Text)
		}
	}
	return matched
}
