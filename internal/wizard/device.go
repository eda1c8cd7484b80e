package wizard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/codeesasi/Ai-Media-Guardian/internal/core"
	"github.com/codeesasi/Ai-Media-Guardian/internal/tui/styles"
)

// OutputModel picks one entry of an rc output listing. Entries are numbered;
// pressing 1-9 selects directly.
type OutputModel struct {
	kind     core.OutputKind
	entries  []string
	cursor   int
	selected string
}

// NewOutputModel creates a picker over entries of the given kind.
func NewOutputModel(kind core.OutputKind, entries []string) OutputModel {
	return OutputModel{kind: kind, entries: entries}
}

func (m OutputModel) Init() tea.Cmd {
	return nil
}

func (m OutputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch s := k.String(); s {
	case "ctrl+c", "esc", "q":
		return m, tea.Quit
	case "enter", " ":
		return m.choose(m.cursor)
	case "up", "k", "shift+tab":
		m.cursor = (m.cursor - 1 + max(len(m.entries), 1)) % max(len(m.entries), 1)
	case "down", "j", "tab":
		m.cursor = (m.cursor + 1) % max(len(m.entries), 1)
	default:
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			return m.choose(int(s[0] - '1'))
		}
	}
	return m, nil
}

func (m OutputModel) choose(i int) (tea.Model, tea.Cmd) {
	if i < 0 || i >= len(m.entries) {
		return m, nil
	}
	m.cursor = i
	m.selected = m.entries[i]
	return m, tea.Quit
}

func (m OutputModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Highlight.Render(fmt.Sprintf("%s (%d)", capitalize(m.kind.Label()), len(m.entries))))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(styles.Dim.Render("VLC reported no " + m.kind.Label()))
		b.WriteString("\n\n")
		b.WriteString(styles.Dim.Render("esc quit"))
		return b.String()
	}

	for i, e := range m.entries {
		num := styles.Label.Render(fmt.Sprintf("%d.", i+1))
		if i == m.cursor {
			fmt.Fprintf(&b, "▸ %s %s\n", num, styles.Title.Render(e))
		} else {
			fmt.Fprintf(&b, "  %s %s\n", num, styles.Muted.Render(e))
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.Dim.Render(fmt.Sprintf("sends: %s %s", m.kind, m.entries[m.cursor])))
	b.WriteString("\n")
	b.WriteString(styles.Dim.Render("↑/↓ move • 1-9 or enter pick • esc quit"))
	return b.String()
}

// Selected returns the chosen entry, or "" if none.
func (m OutputModel) Selected() string {
	return m.selected
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// RunOutputPicker runs the picker and returns the chosen entry.
func RunOutputPicker(kind core.OutputKind, entries []string) (string, error) {
	final, err := tea.NewProgram(NewOutputModel(kind, entries)).Run()
	if err != nil {
		return "", err
	}
	return final.(OutputModel).Selected(), nil
}
