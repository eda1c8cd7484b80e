package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/codeesasi/Ai-Media-Guardian/internal/core"
	"github.com/codeesasi/Ai-Media-Guardian/internal/tui/styles"
)

// Outputs displays one of VLC's active output lists
type Outputs struct {
	kind     core.OutputKind
	selected int
}

// NewOutputs creates a new Outputs component for the given list
func NewOutputs(kind core.OutputKind) *Outputs {
	return &Outputs{kind: kind}
}

// Kind returns which list the panel shows.
func (o *Outputs) Kind() core.OutputKind {
	return o.kind
}

// SelectNext selects the next entry
func (o *Outputs) SelectNext(n int) {
	if o.selected < n-1 {
		o.selected++
	}
}

// SelectPrev selects the previous entry
func (o *Outputs) SelectPrev() {
	if o.selected > 0 {
		o.selected--
	}
}

// Selected returns the selected entry index
func (o *Outputs) Selected() int {
	return o.selected
}

// Render renders the outputs panel
func (o *Outputs) Render(entries []string, width, height int, focused bool) string {
	title := styles.PanelTitle(capitalize(o.kind.Label()), focused)

	var content string
	if len(entries) == 0 {
		content = styles.Muted.Render("None reported")
	} else {
		content = o.renderEntries(entries, height-4, focused)
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

func (o *Outputs) renderEntries(entries []string, maxLines int, focused bool) string {
	if o.selected >= len(entries) {
		o.selected = len(entries) - 1
	}

	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		selector := "  "
		name := e
		if focused && i == o.selected {
			selector = "▸ "
			name = styles.Highlight.Render(e)
		}
		lines = append(lines, selector+styles.Playing.Render("●")+" "+name)

		if len(lines) >= maxLines {
			break
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
