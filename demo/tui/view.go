package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render("🩺 Medical Assistant Demo"))
	b.WriteString("\n")

	// Tab bar
	if m.ActiveView == ViewAsk {
		b.WriteString(HighlightStyle.Render("Ask") + " " + InfoStyle.Render("History"))
	} else {
		b.WriteString(InfoStyle.Render("Ask") + " " + HighlightStyle.Render("History"))
	}
	b.WriteString("\n\n")

	if m.ActiveView == ViewHistory {
		b.WriteString(m.historyView())
	} else {
		b.WriteString(m.askView())
	}

	// Logs
	if len(m.Logs) > 0 {
		b.WriteString(InfoStyle.Render("📝 Recent Activity:"))
		b.WriteString("\n")
		for _, logMsg := range m.Logs {
			b.WriteString(InfoStyle.Render("   " + logMsg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Help text
	if m.ActiveView == ViewHistory {
		b.WriteString(InfoStyle.Render(TextFooterHistory))
	} else {
		b.WriteString(InfoStyle.Render(TextFooterAsk))
	}

	return b.String()
}

// askView renders the question input and the latest answer
func (m Model) askView() string {
	var b strings.Builder

	if m.Age != "" || m.Gender != "" {
		b.WriteString(InfoStyle.Render(fmt.Sprintf("Asking as: age %s, %s", m.Age, m.Gender)))
		b.WriteString("\n\n")
	}

	b.WriteString(BoxStyle.Render("❓ " + m.Input + "█"))
	b.WriteString("\n\n")

	switch m.State {
	case StateAsking:
		b.WriteString(StatusStyle.Render("⏳ Searching trusted sources..."))
		b.WriteString("\n\n")
	case StateError:
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("❌ Error: %v", m.Err)))
		b.WriteString("\n\n")
	case StateAnswered:
		if m.Result != nil {
			b.WriteString(m.formatAnswer())
			b.WriteString("\n\n")
		}
	}

	return b.String()
}

// formatAnswer renders the answer, severity badge, advisories and sources
func (m Model) formatAnswer() string {
	var b strings.Builder

	b.WriteString("Severity: " + SeverityBadge(m.Result.Severity))
	b.WriteString("\n\n")

	b.WriteString(m.Result.Answer.Text)
	b.WriteString("\n")

	if len(m.Result.Advisories) > 0 {
		b.WriteString("\n")
		b.WriteString(StatusStyle.Render("💡 Advisories:"))
		b.WriteString("\n")
		for _, a := range m.Result.Advisories {
			b.WriteString("  • " + a + "\n")
		}
	}

	if len(m.Result.Answer.Sources) > 0 {
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render("Sources:"))
		b.WriteString("\n")
		for _, s := range m.Result.Answer.Sources {
			b.WriteString(InfoStyle.Render(fmt.Sprintf("  %s (%s)", s.Title, s.URL)))
			b.WriteString("\n")
		}
	}

	return BoxStyle.Render(b.String())
}

// historyView renders the session's past questions, newest first
func (m Model) historyView() string {
	var b strings.Builder

	if len(m.Entries) == 0 {
		b.WriteString(InfoStyle.Render("No questions asked yet in this session."))
		b.WriteString("\n\n")
		return b.String()
	}

	b.WriteString(InfoStyle.Render(fmt.Sprintf("📊 %d question(s) this session", len(m.Entries))))
	b.WriteString("\n\n")

	for i, e := range m.Entries {
		b.WriteString(fmt.Sprintf("%d. %s %s\n", i+1, SeverityBadge(e.Severity), e.Question))
		answer := e.Answer
		if len(answer) > 160 {
			answer = answer[:160] + "..."
		}
		b.WriteString(InfoStyle.Render("   " + answer))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.ExportedCSV != "" {
		lines := strings.Count(m.ExportedCSV, "\n")
		b.WriteString(StatusStyle.Render(fmt.Sprintf("✅ CSV export ready (%d rows)", lines)))
		b.WriteString("\n\n")
	}

	return b.String()
}
