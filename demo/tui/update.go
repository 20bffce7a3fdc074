package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case AnswerReceivedMsg:
		return m.handleAnswerReceived(msg)
	case HistoryLoadedMsg:
		return m.handleHistoryLoaded(msg)
	case HistoryExportedMsg:
		return m.handleHistoryExported(msg)
	case FeedbackSentMsg:
		return m.handleFeedbackSent(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab:
		if m.ActiveView == ViewAsk {
			m.ActiveView = ViewHistory
			return m, loadHistory(m.AppClient)
		}
		m.ActiveView = ViewAsk
		return m, nil
	}

	if m.ActiveView == ViewHistory {
		return m.handleHistoryKey(msg)
	}
	return m.handleAskKey(msg)
}

// handleAskKey edits the question input and submits on enter
func (m Model) handleAskKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.State == StateAsking {
		// Ignore input while a request is in flight
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		question := strings.TrimSpace(m.Input)
		if question == "" {
			return m, nil
		}
		m.State = StateAsking
		m.Result = nil
		m.Err = nil
		m = m.AddLog(fmt.Sprintf("Asking: %s", question))
		return m, askQuestion(m.AppClient, question, m.Age, m.Gender)
	case tea.KeyBackspace:
		if len(m.Input) > 0 {
			runes := []rune(m.Input)
			m.Input = string(runes[:len(runes)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.Input += " "
		return m, nil
	case tea.KeyRunes:
		m.Input += string(msg.Runes)
		return m, nil
	}
	return m, nil
}

// handleHistoryKey processes history view shortcuts
func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		return m, loadHistory(m.AppClient)
	case "e":
		m = m.AddLog("Exporting history as CSV...")
		return m, exportHistory(m.AppClient)
	case "1", "2", "3", "4", "5":
		m = m.AddLog(fmt.Sprintf("Sending feedback rating %s...", msg.String()))
		return m, sendFeedback(m.AppClient, msg.String())
	}
	return m, nil
}

// handleAnswerReceived processes ask completion
func (m Model) handleAnswerReceived(msg AnswerReceivedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.Result = msg.Result
	m.State = StateAnswered
	m.Input = ""
	m = m.AddLog(fmt.Sprintf("Answer received (severity: %s)", msg.Result.Severity))
	return m, nil
}

// handleHistoryLoaded processes history fetch completion
func (m Model) handleHistoryLoaded(msg HistoryLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m = m.AddLog(fmt.Sprintf("Failed to load history: %v", msg.Err))
		return m, nil
	}
	m.Entries = msg.Entries
	return m, nil
}

// handleHistoryExported processes CSV export completion
func (m Model) handleHistoryExported(msg HistoryExportedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m = m.AddLog(fmt.Sprintf("Export failed: %v", msg.Err))
		return m, nil
	}
	m.ExportedCSV = msg.CSV
	m = m.AddLog(fmt.Sprintf("Exported %d CSV bytes", len(msg.CSV)))
	return m, nil
}

// handleFeedbackSent processes feedback submission
func (m Model) handleFeedbackSent(msg FeedbackSentMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m = m.AddLog(fmt.Sprintf("Feedback failed: %v", msg.Err))
		return m, nil
	}
	m = m.AddLog(fmt.Sprintf("Feedback submitted (rating %s)", msg.Rating))
	return m, nil
}
