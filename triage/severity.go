package triage

import (
	"strings"

	"medassist/types"
)

// Group pairs a severity tag with the keywords that trigger it.
type Group struct {
	Tag      types.Severity
	Keywords []string
}

// Classifier assigns an urgency tag by testing ordered keyword groups
// against the raw question. Group order is a priority policy: the first
// group with any match wins, so Immediate keywords always beat Urgent ones.
type Classifier struct {
	groups []Group
}

// NewClassifier creates a Classifier over the given groups, highest
// priority first.
func NewClassifier(groups []Group) *Classifier {
	return &Classifier{groups: groups}
}

// Classify returns the tag of the first group with a case-insensitive
// substring match, or Routine when nothing matches.
func (c *Classifier) Classify(question string) types.Severity {
	q := strings.ToLower(question)

	for _, g := range c.groups {
		for _, kw := range g.Keywords {
			if strings.Contains(q, kw) {
				return g.Tag
			}
		}
	}
	return types.SeverityRoutine
}
