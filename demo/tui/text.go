package tui

// UI Text Constants
const (
	// Footer
	TextFooterAsk     = "Type a question and press Enter | Tab: history | Esc/Ctrl+C: quit"
	TextFooterHistory = "r: refresh | e: export CSV | 1-5: rate this session | Tab: ask | Esc/Ctrl+C: quit"
)
