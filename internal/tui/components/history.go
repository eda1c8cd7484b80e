package components

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/codeesasi/Ai-Media-Guardian/internal/tui/styles"
)

// HistoryEntry is one title seen playing during this session
type HistoryEntry struct {
	Title    string
	PlayedAt time.Time
}

// History displays recently played titles
type History struct{}

// NewHistory creates a new History component
func NewHistory() *History {
	return &History{}
}

// Render renders the history panel
func (h *History) Render(entries []HistoryEntry, width, height int, focused bool) string {
	title := styles.PanelTitle("History", focused)

	var content string
	if len(entries) == 0 {
		content = styles.Muted.Render("No history yet")
	} else {
		content = h.renderHistory(entries, width-4, height-4)
	}

	panel := styles.Panel(focused).
		Width(width).
		Height(height)

	return panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		content,
	))
}

func (h *History) renderHistory(entries []HistoryEntry, width, maxLines int) string {
	lines := make([]string, 0, maxLines)

	for i, entry := range entries {
		if i >= maxLines {
			break
		}

		ago := humanize.Time(entry.PlayedAt)
		// icon (2) + gap (1)
		name := truncate(entry.Title, width-3-len(ago)-1)
		pad := max(width-3-lipgloss.Width(name)-len(ago), 1)

		lines = append(lines, styles.Dim.Render("✓")+" "+name+
			lipgloss.NewStyle().Width(pad).Render("")+
			styles.Dim.Render(ago))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
