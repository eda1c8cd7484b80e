package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/codeesasi/Ai-Media-Guardian/internal/core"
	"github.com/codeesasi/Ai-Media-Guardian/internal/tui/styles"
)

// NowPlaying displays what VLC is currently playing
type NowPlaying struct {
	bar progress.Model
}

// NewNowPlaying creates a new NowPlaying component
func NewNowPlaying() *NowPlaying {
	return &NowPlaying{
		bar: progress.New(progress.WithSolidFill("#F97316"), progress.WithoutPercentage()),
	}
}

// Render renders the now playing panel
func (n *NowPlaying) Render(info *core.MediaInfo, width, height int, focused bool) string {
	title := styles.PanelTitle("Now Playing", focused)

	var content string
	if info == nil || info.DisplayTitle() == "" {
		content = styles.Muted.Render("Nothing playing")
	} else {
		content = n.renderMedia(info, width-4)
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

func (n *NowPlaying) renderMedia(info *core.MediaInfo, width int) string {
	state := ""
	if info.State != nil {
		state = *info.State
	}

	lines := []string{
		styles.StatusIcon(state) + " " + styles.Title.Width(max(width-4, 1)).Render(info.DisplayTitle()),
	}
	if info.Artist != nil && *info.Artist != "" {
		lines = append(lines, "  "+styles.Subtitle.Render(*info.Artist))
	}
	if info.Album != nil && *info.Album != "" {
		lines = append(lines, "  "+styles.Dim.Render(*info.Album))
	}

	// Times on either side of the bar
	n.bar.Width = max(width-14, 10)
	pos, dur := 0, 0
	if info.Position != nil {
		pos = *info.Position
	}
	if info.Duration != nil {
		dur = *info.Duration
	}
	lines = append(lines, "",
		fmt.Sprintf("%s %s %s", FormatClock(pos), n.bar.ViewAs(info.ProgressPercent()/100), FormatClock(dur)),
		"",
	)

	var extra string
	if info.Volume != nil {
		extra = fmt.Sprintf("🔊 %d%%", int(*info.Volume*100/256+0.5))
	}
	if info.Rate != nil && *info.Rate != 1 {
		extra += fmt.Sprintf("  ⏩ %gx", *info.Rate)
	}
	if extra != "" {
		lines = append(lines, styles.Muted.Render(extra))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// FormatClock formats seconds as m:ss or h:mm:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h, m, s := seconds/3600, (seconds%3600)/60, seconds%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
