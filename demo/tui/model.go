package tui

import (
	"fmt"
	"time"

	"medassist/demo/client"
	"medassist/types"

	tea "github.com/charmbracelet/bubbletea"
)

// State represents the ask view state machine
type State string

const (
	StateIdle     State = "idle"
	StateAsking   State = "asking"
	StateAnswered State = "answered"
	StateError    State = "error"
)

// View is the active tab
type View string

const (
	ViewAsk     View = "ask"
	ViewHistory View = "history"
)

// Model represents the TUI client state (thin client over the HTTP API)
type Model struct {
	AppClient *client.Client

	// Demographics applied to every question
	Age    string
	Gender string

	ActiveView View
	State      State

	// Ask view
	Input  string
	Result *client.AskResult
	Err    error

	// History view
	Entries     []types.HistoryEntry
	ExportedCSV string

	Logs []string
}

// NewModel creates a new TUI model
func NewModel(c *client.Client, age, gender string) Model {
	return Model{
		AppClient:  c,
		Age:        age,
		Gender:     gender,
		ActiveView: ViewAsk,
		State:      StateIdle,
		Logs:       []string{},
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	// Nothing to do until the user types a question
	return nil
}

// AddLog appends a timestamped log line, keeping the last 8
func (m Model) AddLog(msg string) Model {
	m.Logs = append(m.Logs, fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), msg))
	if len(m.Logs) > 8 {
		m.Logs = m.Logs[len(m.Logs)-8:]
	}
	return m
}
