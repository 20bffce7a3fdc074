package types

import "time"

// SourceSnippet is a single search result used to ground an answer.
// Ordering within a snippet list is significant and must be preserved.
type SourceSnippet struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Excerpt string `json:"excerpt"`
}

// SourceRef is a (title, url) pair attached to an answer.
type SourceRef struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Answer is the synthesized response to a question. Text always ends with
// the fixed disclaimer on success; Sources may be empty if retrieval failed.
type Answer struct {
	Text    string      `json:"text"`
	Sources []SourceRef `json:"sources"`
}

// Severity is the coarse urgency classification derived from the raw
// question text alone.
type Severity string

const (
	SeverityImmediate Severity = "Immediate"
	SeverityUrgent    Severity = "Urgent"
	SeverityRoutine   Severity = "Routine"
)

// HistoryEntry records one answered question in a session log.
type HistoryEntry struct {
	Question string      `json:"question"`
	Answer   string      `json:"answer"`
	Sources  []SourceRef `json:"sources"`
	Severity Severity    `json:"severity"`
	AskedAt  time.Time   `json:"asked_at"`
}
