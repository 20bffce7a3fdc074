package tui

import (
	"context"
	"time"

	"medassist/demo/client"

	tea "github.com/charmbracelet/bubbletea"
)

const requestTimeout = 90 * time.Second

// askQuestion creates a command to submit a question to the API
func askQuestion(c *client.Client, question, age, gender string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		result, err := c.Ask(ctx, question, age, gender)
		return AnswerReceivedMsg{Result: result, Err: err}
	}
}

// loadHistory creates a command to fetch the session history
func loadHistory(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		result, err := c.History(ctx)
		if err != nil {
			return HistoryLoadedMsg{Err: err}
		}
		return HistoryLoadedMsg{Entries: result.Entries}
	}
}

// exportHistory creates a command to download the history as CSV
func exportHistory(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		csv, err := c.ExportHistory(ctx)
		return HistoryExportedMsg{CSV: csv, Err: err}
	}
}

// sendFeedback creates a command to submit a rating
func sendFeedback(c *client.Client, rating string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		err := c.SendFeedback(ctx, rating, "")
		return FeedbackSentMsg{Rating: rating, Err: err}
	}
}
