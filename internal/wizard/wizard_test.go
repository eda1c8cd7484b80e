package wizard

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/codeesasi/Ai-Media-Guardian/internal/core"
)

func TestMovieOptions(t *testing.T) {
	movies := []core.Movie{
		{Name: "Alien", Type: core.MovieTypeFolder, Files: []core.MovieFile{
			{Filename: "a.mkv", Path: "/m/Alien/a.mkv"},
			{Filename: "b.mkv", Path: "/m/Alien/b.mkv"},
		}},
		{Name: "Empty", Type: core.MovieTypeFolder, Files: []core.MovieFile{}},
		{Name: "Heat", Type: core.MovieTypeFile, Files: []core.MovieFile{{Filename: "Heat.mp4", Path: "/m/Heat.mp4"}}},
	}

	opts := MovieOptions(movies)
	if len(opts) != 2 {
		t.Fatalf("got %d options, want 2 (empty folders are not pickable)", len(opts))
	}
	if opts[0].Key != "Alien/ (2 files)" || opts[0].Value != 0 {
		t.Errorf("opts[0] = %q/%d", opts[0].Key, opts[0].Value)
	}
	if opts[1].Key != "Heat" || opts[1].Value != 2 {
		t.Errorf("opts[1] = %q/%d", opts[1].Key, opts[1].Value)
	}
}

func TestFileOptions(t *testing.T) {
	opts := FileOptions([]core.MovieFile{
		{Filename: "a.mkv", Path: "/m/a.mkv", Size: 2_000_000},
		{Filename: "b.mkv", Path: "/m/b.mkv"},
	})
	if opts[0].Key != "a.mkv  2.0 MB" || opts[0].Value != "/m/a.mkv" {
		t.Errorf("opts[0] = %q/%q", opts[0].Key, opts[0].Value)
	}
	if opts[1].Key != "b.mkv" {
		t.Errorf("opts[1] = %q", opts[1].Key)
	}
}

func TestPickMovie_NothingToPick(t *testing.T) {
	_, err := PickMovie(&core.MovieCache{Movies: []core.Movie{}})
	if err != ErrNothingToPick {
		t.Errorf("PickMovie() error = %v, want ErrNothingToPick", err)
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestOutputModel_Select(t *testing.T) {
	var m tea.Model = NewOutputModel(core.OutputAudioDevices, []string{"pulse", "hdmi", "spdif"})
	for _, k := range []string{"down", "down", "up"} {
		m, _ = m.Update(key(k))
	}
	m, cmd := m.Update(key("enter"))
	if cmd == nil {
		t.Fatal("enter should quit the picker")
	}
	if got := m.(OutputModel).Selected(); got != "hdmi" {
		t.Errorf("Selected() = %q, want hdmi", got)
	}
}

func TestOutputModel_Wraps(t *testing.T) {
	var m tea.Model = NewOutputModel(core.OutputAudioDevices, []string{"pulse", "hdmi", "spdif"})
	m, _ = m.Update(key("up"))
	m, _ = m.Update(key("enter"))
	if got := m.(OutputModel).Selected(); got != "spdif" {
		t.Errorf("Selected() = %q, want spdif", got)
	}
}

func TestOutputModel_NumberSelects(t *testing.T) {
	var m tea.Model = NewOutputModel(core.OutputAudioModules, []string{"pulse", "alsa"})
	m, cmd := m.Update(key("9"))
	if cmd != nil || m.(OutputModel).Selected() != "" {
		t.Fatal("a number past the list should be ignored")
	}
	m, cmd = m.Update(key("2"))
	if cmd == nil {
		t.Fatal("a number should pick and quit")
	}
	if got := m.(OutputModel).Selected(); got != "alsa" {
		t.Errorf("Selected() = %q, want alsa", got)
	}
}

func TestOutputModel_Cancel(t *testing.T) {
	var m tea.Model = NewOutputModel(core.OutputAudioDevices, []string{"pulse"})
	m, cmd := m.Update(key("esc"))
	if cmd == nil {
		t.Fatal("esc should quit the picker")
	}
	if got := m.(OutputModel).Selected(); got != "" {
		t.Errorf("Selected() = %q, want empty", got)
	}
}

func TestOutputModel_View(t *testing.T) {
	view := NewOutputModel(core.OutputVideoModules, nil).View()
	if !strings.Contains(view, "video outputs") {
		t.Errorf("View() = %q, want the list label", view)
	}

	view = NewOutputModel(core.OutputAudioDevices, []string{"pulse", "hdmi"}).View()
	if !strings.Contains(view, "(2)") || !strings.Contains(view, "2.") {
		t.Errorf("View() = %q, want a numbered list with its count", view)
	}
	if !strings.Contains(view, "sends: adev pulse") {
		t.Errorf("View() = %q, want the command for the entry under the cursor", view)
	}
}
