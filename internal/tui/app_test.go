package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/codeesasi/Ai-Media-Guardian/internal/core"
)

// stubPlayer records the calls the dashboard makes.
type stubPlayer struct {
	core.Player
	calls []string
	level int
	path  string
}

func (s *stubPlayer) Pause(context.Context) (core.StatusPayload, error) {
	s.calls = append(s.calls, "pause")
	return nil, nil
}

func (s *stubPlayer) Seek(_ context.Context, seconds int) (core.StatusPayload, error) {
	s.calls = append(s.calls, "seek")
	s.level = seconds
	return nil, nil
}

func (s *stubPlayer) Volume(_ context.Context, level int) (core.StatusPayload, error) {
	s.calls = append(s.calls, "volume")
	s.level = level
	return nil, nil
}

func (s *stubPlayer) Play(_ context.Context, path string) (core.StatusPayload, error) {
	s.calls = append(s.calls, "play")
	s.path = path
	return nil, nil
}

type stubLibrary struct{ cache *core.MovieCache }

func (l stubLibrary) ListMovies(bool) *core.MovieCache { return l.cache }

func newTestModel(p *stubPlayer) Model {
	lib := stubLibrary{cache: &core.MovieCache{Movies: []core.Movie{
		{Name: "Alien", Type: core.MovieTypeFolder, Files: []core.MovieFile{{Filename: "a.mkv", Path: "/m/Alien/a.mkv"}}},
		{Name: "Heat", Type: core.MovieTypeFile, Files: []core.MovieFile{{Filename: "Heat.mp4", Path: "/m/Heat.mp4"}}},
	}}}
	m := NewModel(NewApp(p, lib, time.Second))
	m.movies = lib.cache
	return m
}

func press(t *testing.T, m Model, key tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(key)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSpaceTogglesPause(t *testing.T) {
	p := &stubPlayer{}
	_, cmd := press(t, newTestModel(p), tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	if cmd == nil {
		t.Fatal("space should issue a command")
	}
	if _, ok := cmd().(refreshAfterActionMsg); !ok {
		t.Error("a successful action should trigger a refresh")
	}
	if len(p.calls) != 1 || p.calls[0] != "pause" {
		t.Errorf("calls = %v, want [pause]", p.calls)
	}
}

func TestArrowsSeek(t *testing.T) {
	p := &stubPlayer{}
	m := newTestModel(p)

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	cmd()
	if p.level != -seekStep {
		t.Errorf("left seeks %d, want %d", p.level, -seekStep)
	}

	_, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	cmd()
	if p.level != seekStep {
		t.Errorf("right seeks %d, want %d", p.level, seekStep)
	}
}

func TestVolumeClamped(t *testing.T) {
	p := &stubPlayer{}
	m := newTestModel(p)

	if _, cmd := press(t, m, runes("+")); cmd != nil {
		t.Error("volume keys do nothing before the volume is known")
	}

	vol := 504.0
	m.info = &core.MediaInfo{Volume: &vol}
	_, cmd := press(t, m, runes("+"))
	cmd()
	if p.level != volumeMax {
		t.Errorf("volume = %d, want %d", p.level, volumeMax)
	}

	vol = 8
	_, cmd = press(t, m, runes("-"))
	cmd()
	if p.level != 0 {
		t.Errorf("volume = %d, want 0", p.level)
	}
}

func TestLibraryEnterPlaysSelected(t *testing.T) {
	p := &stubPlayer{}
	m := newTestModel(p)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focusedPanel != PanelLibrary {
		t.Fatalf("focused = %v, want library", m.focusedPanel)
	}
	m, _ = press(t, m, runes("j"))
	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should play the selected movie")
	}
	cmd()
	if p.path != "/m/Heat.mp4" {
		t.Errorf("played %q, want /m/Heat.mp4", p.path)
	}
}

func TestFilterNarrowsLibrary(t *testing.T) {
	m := newTestModel(&stubPlayer{})

	m, _ = press(t, m, runes("/"))
	if !m.showFilter || m.focusedPanel != PanelLibrary {
		t.Fatal("/ should open the library filter")
	}
	m, _ = press(t, m, runes("h"))
	m, _ = press(t, m, runes("e"))

	visible := m.libraryView.Visible(m.movies)
	if len(visible) != 1 || visible[0].Name != "Heat" {
		t.Errorf("visible = %v, want only Heat", visible)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showFilter || len(m.libraryView.Visible(m.movies)) != 2 {
		t.Error("esc should close and clear the filter")
	}
}

func TestHistoryTracksTitleChanges(t *testing.T) {
	m := newTestModel(&stubPlayer{})
	a, b := "Alien", "Heat"

	for _, title := range []*string{&a, &a, &b} {
		next, _ := m.Update(infoMsg(&core.MediaInfo{Title: title}))
		m = next.(Model)
	}
	if len(m.history) != 2 || m.history[0].Title != "Heat" {
		t.Errorf("history = %v, want [Heat Alien]", m.history)
	}
}

func TestErrorShownInStatusBar(t *testing.T) {
	m := newTestModel(&stubPlayer{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	next, _ = next.Update(errMsg{context.DeadlineExceeded})
	view := next.(Model).View()
	if !strings.Contains(view, "Error: context deadline exceeded") {
		t.Error("View() should show the last error")
	}
}

func TestQuit(t *testing.T) {
	m, cmd := press(t, newTestModel(&stubPlayer{}), runes("q"))
	if cmd == nil || !m.quitting {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}
