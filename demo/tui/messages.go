package tui

import (
	"medassist/demo/client"
	"medassist/types"
)

// Messages for the tea program

// AnswerReceivedMsg is sent when the ask request completes
type AnswerReceivedMsg struct {
	Result *client.AskResult
	Err    error
}

// HistoryLoadedMsg is sent when the session history is fetched
type HistoryLoadedMsg struct {
	Entries []types.HistoryEntry
	Err     error
}

// HistoryExportedMsg is sent when the CSV export completes
type HistoryExportedMsg struct {
	CSV string
	Err error
}

// FeedbackSentMsg is sent when a feedback rating is submitted
type FeedbackSentMsg struct {
	Rating string
	Err    error
}
