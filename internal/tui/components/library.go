package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/codeesasi/Ai-Media-Guardian/internal/core"
	"github.com/codeesasi/Ai-Media-Guardian/internal/tui/styles"
)

// Library displays the movie listing with a cursor and an optional filter
type Library struct {
	offset   int
	selected int
	filter   string
}

// NewLibrary creates a new Library component
func NewLibrary() *Library {
	return &Library{}
}

// SetFilter narrows the listing to names containing query, case-insensitively.
func (l *Library) SetFilter(query string) {
	l.filter = strings.ToLower(strings.TrimSpace(query))
	l.selected = 0
	l.offset = 0
}

// Filter returns the active filter.
func (l *Library) Filter() string {
	return l.filter
}

// Visible returns the movies that pass the filter.
func (l *Library) Visible(cache *core.MovieCache) []core.Movie {
	if cache == nil {
		return nil
	}
	if l.filter == "" {
		return cache.Movies
	}
	var out []core.Movie
	for _, m := range cache.Movies {
		if strings.Contains(strings.ToLower(m.Name), l.filter) {
			out = append(out, m)
		}
	}
	return out
}

// SelectNext moves the cursor down
func (l *Library) SelectNext(cache *core.MovieCache) {
	if l.selected < len(l.Visible(cache))-1 {
		l.selected++
	}
}

// SelectPrev moves the cursor up
func (l *Library) SelectPrev() {
	if l.selected > 0 {
		l.selected--
	}
}

// Selected returns the movie under the cursor, or nil.
func (l *Library) Selected(cache *core.MovieCache) *core.Movie {
	movies := l.Visible(cache)
	if l.selected < 0 || l.selected >= len(movies) {
		return nil
	}
	return &movies[l.selected]
}

// Render renders the library panel
func (l *Library) Render(cache *core.MovieCache, width, height int, focused bool) string {
	name := "Library"
	if l.filter != "" {
		name = fmt.Sprintf("Library /%s", l.filter)
	}
	title := styles.PanelTitle(name, focused)

	var content string
	switch {
	case cache == nil:
		content = styles.Muted.Render("Scanning...")
	case cache.HasError():
		content = styles.Failure.Render(cache.Error)
	case len(l.Visible(cache)) == 0:
		content = styles.Muted.Render("No movies")
	default:
		content = l.renderMovies(l.Visible(cache), width-4, height-4, focused)
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

func (l *Library) renderMovies(movies []core.Movie, width, maxLines int, focused bool) string {
	if l.selected >= len(movies) {
		l.selected = len(movies) - 1
	}

	// Leave room for the "more" indicator
	visibleCount := max(maxLines-1, 1)

	// Keep the cursor on screen
	if l.selected < l.offset {
		l.offset = l.selected
	}
	if l.selected >= l.offset+visibleCount {
		l.offset = l.selected - visibleCount + 1
	}

	end := min(l.offset+visibleCount, len(movies))
	lines := make([]string, 0, end-l.offset+1)

	for i := l.offset; i < end; i++ {
		m := movies[i]

		icon := "🎬"
		label := m.Name
		if m.Type == core.MovieTypeFolder {
			icon = "📁"
			label = fmt.Sprintf("%s (%d)", m.Name, len(m.Files))
		}
		label = truncate(label, width-5)

		if focused && i == l.selected {
			lines = append(lines, "▸ "+icon+" "+styles.Highlight.Render(label))
		} else {
			lines = append(lines, "  "+icon+" "+label)
		}
	}

	if end < len(movies) {
		lines = append(lines, styles.Dim.Render(fmt.Sprintf("    ... and %d more", len(movies)-end)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if max <= 0 {
		return ""
	}
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
