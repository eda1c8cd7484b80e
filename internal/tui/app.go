package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/codeesasi/Ai-Media-Guardian/internal/core"
	"github.com/codeesasi/Ai-Media-Guardian/internal/tui/components"
	"github.com/codeesasi/Ai-Media-Guardian/internal/tui/styles"
)

// Panel represents which panel is focused
type Panel int

const (
	PanelNowPlaying Panel = iota
	PanelLibrary
	PanelOutputs
	PanelHistory
	panelCount
)

const (
	seekStep    = 10
	volumeStep  = 16
	volumeMax   = 512
	callTimeout = 5 * time.Second
	maxHistory  = 50
)

// App holds what the dashboard talks to
type App struct {
	player      core.Player
	library     core.Library
	refreshRate time.Duration
}

// NewApp creates a new TUI application
func NewApp(player core.Player, library core.Library, refreshRate time.Duration) *App {
	return &App{
		player:      player,
		library:     library,
		refreshRate: refreshRate,
	}
}

// Model is the main TUI model
type Model struct {
	app          *App
	width        int
	height       int
	focusedPanel Panel

	// State
	info    *core.MediaInfo
	movies  *core.MovieCache
	devices []string
	history []components.HistoryEntry

	// Components
	nowPlaying  *components.NowPlaying
	libraryView *components.Library
	outputsView *components.Outputs
	historyView *components.History

	// Overlays
	showHelp    bool
	showFilter  bool
	filterInput textinput.Model

	lastError   error
	errorExpiry time.Time

	quitting bool
}

// NewModel creates a new TUI model
func NewModel(app *App) Model {
	ti := textinput.New()
	ti.Placeholder = "Filter movies..."
	ti.CharLimit = 100
	ti.Width = 40

	return Model{
		app:          app,
		focusedPanel: PanelNowPlaying,
		nowPlaying:   components.NewNowPlaying(),
		libraryView:  components.NewLibrary(),
		outputsView:  components.NewOutputs(core.OutputAudioDevices),
		historyView:  components.NewHistory(),
		filterInput:  ti,
	}
}

// Messages
type tickMsg time.Time
type infoMsg *core.MediaInfo
type moviesMsg *core.MovieCache
type devicesMsg []string
type errMsg struct{ err error }
type refreshAfterActionMsg struct{}

// Commands
func (m Model) tick() tea.Cmd {
	return tea.Tick(m.app.refreshRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) fetchInfo() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()

		info, err := m.app.player.MediaInfo(ctx)
		if err != nil {
			return errMsg{err}
		}
		return infoMsg(info)
	}
}

func (m Model) fetchMovies(refresh bool) tea.Cmd {
	return func() tea.Msg {
		return moviesMsg(m.app.library.ListMovies(refresh))
	}
}

func (m Model) fetchDevices() tea.Cmd {
	kind := m.outputsView.Kind()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()

		devices, err := m.app.player.Outputs(ctx, kind)
		if err != nil {
			return errMsg{err}
		}
		return devicesMsg(devices)
	}
}

// action runs a player call and refreshes the display afterwards.
func (m Model) action(fn func(ctx context.Context, p core.Player) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()

		if err := fn(ctx, m.app.player); err != nil {
			return errMsg{err}
		}
		return refreshAfterActionMsg{}
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.tick(),
		m.fetchInfo(),
		m.fetchMovies(false),
		m.fetchDevices(),
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.tick(), m.fetchInfo())

	case infoMsg:
		m.clearExpiredError()
		oldTitle := m.info.DisplayTitle()
		m.info = msg
		if title := m.info.DisplayTitle(); title != "" && title != oldTitle {
			m.addToHistory(title)
		}
		return m, nil

	case moviesMsg:
		m.movies = msg
		return m, nil

	case devicesMsg:
		m.clearExpiredError()
		m.devices = msg
		return m, nil

	case errMsg:
		m.lastError = msg.err
		m.errorExpiry = time.Now().Add(5 * time.Second)
		return m, nil

	case refreshAfterActionMsg:
		return m, m.fetchInfo()
	}

	if m.showFilter {
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) clearExpiredError() {
	if time.Now().After(m.errorExpiry) {
		m.lastError = nil
	}
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.showHelp {
		switch msg.String() {
		case "?", "esc":
			m.showHelp = false
		}
		return m, nil
	}

	if m.showFilter {
		return m.handleFilterKeyPress(msg)
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "/":
		m.showFilter = true
		m.focusedPanel = PanelLibrary
		m.filterInput.SetValue(m.libraryView.Filter())
		m.filterInput.Focus()
		return m, textinput.Blink

	case "tab":
		m.focusedPanel = (m.focusedPanel + 1) % panelCount
		return m, nil

	case "shift+tab":
		m.focusedPanel = (m.focusedPanel + panelCount - 1) % panelCount
		return m, nil
	}

	// Playback controls
	switch msg.String() {
	case " ":
		return m, m.action(func(ctx context.Context, p core.Player) error {
			_, err := p.Pause(ctx)
			return err
		})
	case "left":
		return m, m.seek(-seekStep)
	case "right":
		return m, m.seek(seekStep)
	case "+", "=":
		return m, m.setVolume(volumeStep)
	case "-":
		return m, m.setVolume(-volumeStep)
	case "m":
		return m, m.action(func(ctx context.Context, p core.Player) error {
			_, err := p.Mute(ctx)
			return err
		})
	case "f":
		return m, m.action(func(ctx context.Context, p core.Player) error {
			_, err := p.Fullscreen(ctx)
			return err
		})
	case "s":
		return m, m.action(func(ctx context.Context, p core.Player) error {
			return p.Stop(ctx)
		})
	case "r":
		return m, tea.Batch(m.fetchInfo(), m.fetchMovies(true), m.fetchDevices())
	}

	// Panel-specific keys
	switch m.focusedPanel {
	case PanelLibrary:
		switch msg.String() {
		case "j", "down":
			m.libraryView.SelectNext(m.movies)
		case "k", "up":
			m.libraryView.SelectPrev()
		case "enter":
			return m, m.playSelected()
		}
	case PanelOutputs:
		switch msg.String() {
		case "j", "down":
			m.outputsView.SelectNext(len(m.devices))
		case "k", "up":
			m.outputsView.SelectPrev()
		case "enter":
			return m, m.selectDevice()
		}
	}

	return m, nil
}

func (m Model) handleFilterKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.showFilter = false
		m.filterInput.Blur()
		m.libraryView.SetFilter("")
		return m, nil

	case "enter":
		m.showFilter = false
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.libraryView.SetFilter(m.filterInput.Value())
	return m, cmd
}

func (m Model) seek(seconds int) tea.Cmd {
	return m.action(func(ctx context.Context, p core.Player) error {
		_, err := p.Seek(ctx, seconds)
		return err
	})
}

// setVolume adjusts relative to the last reported volume, clamped to VLC's range.
func (m Model) setVolume(delta int) tea.Cmd {
	if m.info == nil || m.info.Volume == nil {
		return nil
	}
	level := min(max(int(*m.info.Volume)+delta, 0), volumeMax)
	return m.action(func(ctx context.Context, p core.Player) error {
		_, err := p.Volume(ctx, level)
		return err
	})
}

func (m Model) playSelected() tea.Cmd {
	movie := m.libraryView.Selected(m.movies)
	if movie == nil || len(movie.Files) == 0 {
		return nil
	}
	path := movie.Files[0].Path
	return m.action(func(ctx context.Context, p core.Player) error {
		_, err := p.Play(ctx, path)
		return err
	})
}

func (m Model) selectDevice() tea.Cmd {
	i := m.outputsView.Selected()
	if i < 0 || i >= len(m.devices) {
		return nil
	}
	device := m.devices[i]
	return m.action(func(ctx context.Context, p core.Player) error {
		_, err := p.SetAudioDevice(ctx, device)
		return err
	})
}

func (m *Model) addToHistory(title string) {
	entry := components.HistoryEntry{
		Title:    title,
		PlayedAt: time.Now(),
	}

	m.history = append([]components.HistoryEntry{entry}, m.history...)
	if len(m.history) > maxHistory {
		m.history = m.history[:maxHistory]
	}
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	// Left: Now Playing (top), Library (bottom)
	// Right: Outputs (top), History (bottom)
	leftWidth := m.width * 60 / 100
	rightWidth := m.width - leftWidth - 2
	topHeight := m.height * 40 / 100
	bottomHeight := m.height - topHeight - 2

	nowPlaying := m.nowPlaying.Render(m.info, leftWidth-2, topHeight-2, m.focusedPanel == PanelNowPlaying)
	libraryView := m.libraryView.Render(m.movies, leftWidth-2, bottomHeight-2, m.focusedPanel == PanelLibrary)
	outputsView := m.outputsView.Render(m.devices, rightWidth-2, topHeight-2, m.focusedPanel == PanelOutputs)
	historyView := m.historyView.Render(m.history, rightWidth-2, bottomHeight-2, m.focusedPanel == PanelHistory)

	leftCol := lipgloss.JoinVertical(lipgloss.Left, nowPlaying, libraryView)
	rightCol := lipgloss.JoinVertical(lipgloss.Left, outputsView, historyView)

	main := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, rightCol)

	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderStatusBar())
}

func (m Model) renderStatusBar() string {
	status := styles.Dim.Render("q:quit  ?:help  /:filter  space:pause  ←/→:seek  +/-:volume  m:mute  f:fullscreen  s:stop  tab:panel")

	if m.showFilter {
		status = m.filterInput.View()
	} else if m.lastError != nil {
		status = styles.Failure.Render("Error: " + m.lastError.Error())
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Render(status)
}

func (m Model) renderHelp() string {
	title := "Guardian - Keyboard Shortcuts"
	divider := styles.Repeat("═", len(title))

	help := `
  ` + title + `
  ` + divider + `

  Global
  ──────
  q, Ctrl+C    Quit
  ?            Toggle help
  /            Filter library
  Tab          Next panel
  Shift+Tab    Previous panel
  r            Refresh and rescan library

  Playback
  ────────
  Space        Pause/Resume
  ←/→          Seek 10s back/forward
  +/=          Volume up
  -            Volume down
  m            Mute
  f            Fullscreen
  s            Stop

  Library Panel
  ─────────────
  j/↓          Select next
  k/↑          Select previous
  Enter        Play selected

  Audio Devices Panel
  ───────────────────
  j/↓          Select next
  k/↑          Select previous
  Enter        Switch to device

  Press ? or Esc to close
`

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(styles.BorderStyle.Render(help))
}

// Run starts the TUI application
func Run(player core.Player, library core.Library, refreshRate time.Duration, theme string) error {
	styles.ApplyTheme(theme)

	model := NewModel(NewApp(player, library, refreshRate))
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
