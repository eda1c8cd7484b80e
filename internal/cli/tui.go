package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/codeesasi/Ai-Media-Guardian/internal/tui"
)

var tuiRefresh int

var tuiCmd = &cobra.Command{
	Use:     "ui",
	Aliases: []string{"tui"},
	Short:   "Launch interactive dashboard",
	Long: `Launch the interactive terminal dashboard.

The dashboard provides a live view with:
  • Now Playing - current title, progress, volume
  • Library - movies under library.root
  • Audio Devices - devices VLC reports as active
  • History - titles played this session

Keyboard shortcuts:
  q, Ctrl+C    Quit
  ?            Help
  /            Filter library
  Space        Pause/Resume
  ←/→          Seek 10s
  +/-          Volume up/down
  m, f, s      Mute, fullscreen, stop
  Tab          Switch panel`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().IntVar(&tuiRefresh, "refresh", 0, "Refresh interval in milliseconds (default: tui.refresh_interval)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	refresh := cfg.TUI.RefreshInterval
	if tuiRefresh > 0 {
		refresh = tuiRefresh
	}

	return tui.Run(attachedController(), newScanner(), time.Duration(refresh)*time.Millisecond, cfg.TUI.Theme)
}
