package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codeesasi/Ai-Media-Guardian/internal/core"
	"github.com/codeesasi/Ai-Media-Guardian/internal/vlc"
	"github.com/codeesasi/Ai-Media-Guardian/internal/wizard"
)

// VLC's volume scale: 256 is 100%, 512 is the maximum.
const (
	volumeFull = 256
	volumeMax  = 512
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Launch VLC with its control interfaces",
	Long: `Launch VLC with the http and rc interfaces enabled, using the host, port
and password from the player section of the config.`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

var quitCmd = &cobra.Command{
	Use:     "quit",
	Aliases: []string{"shutdown"},
	Short:   "Ask VLC to exit",
	Args:    cobra.NoArgs,
	RunE:    runQuit,
}

var playCmd = &cobra.Command{
	Use:   "play <path|title>",
	Short: "Play a local video file or library title",
	Long: `Play a local video file in VLC. An argument that is not an existing file
is looked up by name in the library; folders play their first file.

Examples:
  guardian play ~/Videos/Heat.mkv
  guardian play 'C:\Movies\Alien (1979)\Alien.mp4'
  guardian play "alien (1979)"`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause or resume playback",
	Args:  cobra.NoArgs,
	RunE: simple("pause", "paused", "⏯ Toggled pause", func(ctx context.Context, c *vlc.Controller) error {
		_, err := c.Pause(ctx)
		return err
	}),
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop playback",
	Args:  cobra.NoArgs,
	RunE: simple("stop", "stopped", "⏹ Stopped", func(ctx context.Context, c *vlc.Controller) error {
		return c.Stop(ctx)
	}),
}

var seekCmd = &cobra.Command{
	Use:   "seek <seconds>",
	Short: "Seek forward or backward",
	Long: `Seek relative to the current position.

Examples:
  guardian seek 30       # forward 30 seconds
  guardian seek -- -10   # back 10 seconds`,
	Args: cobra.ExactArgs(1),
	RunE: runSeek,
}

var volumeCmd = &cobra.Command{
	Use:   "volume <level>",
	Short: "Set the volume",
	Long: `Set the volume on VLC's 0-512 scale, or as a percentage.

Examples:
  guardian volume 256    # 100%
  guardian volume 50%    # 128`,
	Args: cobra.ExactArgs(1),
	RunE: runVolume,
}

var muteCmd = &cobra.Command{
	Use:   "mute",
	Short: "Set the volume to zero",
	Args:  cobra.NoArgs,
	RunE: simple("mute", "muted", "🔇 Muted", func(ctx context.Context, c *vlc.Controller) error {
		_, err := c.Mute(ctx)
		return err
	}),
}

var fullscreenCmd = &cobra.Command{
	Use:   "fullscreen",
	Short: "Toggle fullscreen",
	Args:  cobra.NoArgs,
	RunE: simple("fullscreen", "toggled", "⛶ Toggled fullscreen", func(ctx context.Context, c *vlc.Controller) error {
		_, err := c.Fullscreen(ctx)
		return err
	}),
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Save a video snapshot",
	Args:  cobra.NoArgs,
	RunE: simple("snapshot", "saved", "📷 Snapshot saved", func(ctx context.Context, c *vlc.Controller) error {
		_, err := c.Snapshot(ctx)
		return err
	}),
}

var rateCmd = &cobra.Command{
	Use:   "rate <multiplier>",
	Short: "Set playback speed",
	Args:  cobra.ExactArgs(1),
	RunE: runFloat("rate", func(ctx context.Context, c *vlc.Controller, v float64) error {
		_, err := c.Rate(ctx, v)
		return err
	}),
}

var brightnessCmd = &cobra.Command{
	Use:   "brightness <value>",
	Short: "Set video brightness (1.0 is neutral)",
	Args:  cobra.ExactArgs(1),
	RunE: runFloat("brightness", func(ctx context.Context, c *vlc.Controller, v float64) error {
		_, err := c.Brightness(ctx, v)
		return err
	}),
}

var aspectCmd = &cobra.Command{
	Use:   "aspect <ratio>",
	Short: "Force an aspect ratio such as 16:9",
	Args:  cobra.ExactArgs(1),
	RunE: runString("aspect ratio", func(ctx context.Context, c *vlc.Controller, v string) error {
		_, err := c.AspectRatio(ctx, v)
		return err
	}),
}

var cropCmd = &cobra.Command{
	Use:   "crop <geometry>",
	Short: "Set crop geometry",
	Args:  cobra.ExactArgs(1),
	RunE: runString("crop", func(ctx context.Context, c *vlc.Controller, v string) error {
		_, err := c.Crop(ctx, v)
		return err
	}),
}

var audioDeviceCmd = &cobra.Command{
	Use:   "audio-device [id]",
	Short: "Switch the audio output device",
	Long: `Switch the audio output device. Use 'guardian devices audio' to list
the identifiers VLC reports. Without an argument a picker is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAudioDevice,
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(quitCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(seekCmd)
	rootCmd.AddCommand(volumeCmd)
	rootCmd.AddCommand(muteCmd)
	rootCmd.AddCommand(fullscreenCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(rateCmd)
	rootCmd.AddCommand(brightnessCmd)
	rootCmd.AddCommand(aspectCmd)
	rootCmd.AddCommand(cropCmd)
	rootCmd.AddCommand(audioDeviceCmd)
}

func runAudioDevice(cmd *cobra.Command, args []string) error {
	c := attachedController()

	var device string
	switch {
	case len(args) == 1:
		device = args[0]
	case wizard.NeedsPrompt(args):
		entries, err := c.Outputs(cmd.Context(), core.OutputAudioDevices)
		if err != nil {
			return fmt.Errorf("failed to list audio devices: %w", err)
		}
		device, err = wizard.RunOutputPicker(core.OutputAudioDevices, entries)
		if err != nil {
			return err
		}
		if device == "" {
			return nil
		}
	}

	if _, err := c.SetAudioDevice(cmd.Context(), device); err != nil {
		return fmt.Errorf("failed to set audio device: %w", err)
	}
	return report("ok", fmt.Sprintf("🔈 Audio device set to %s", device))
}

// newController builds a controller from the loaded config.
func newController() *vlc.Controller {
	commander := vlc.NewHTTPClient(cfg.Player.StatusURL(), cfg.Player.Password, cfg.Player.Timeout(), logger)
	rc := vlc.NewRCClient(cfg.RC.Address, cfg.RC.ReadTimeout(), logger)
	sup := vlc.NewSupervisor(cfg.Player, cfg.RC, logger)
	return vlc.NewController(sup, vlc.NewClient(commander, rc), logger)
}

// attachedController returns a controller for a VLC that was started
// earlier, by 'guardian start' or by hand.
func attachedController() *vlc.Controller {
	c := newController()
	c.Attach()
	return c
}

func simple(name, status, message string, fn func(context.Context, *vlc.Controller) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd.Context(), attachedController()); err != nil {
			return fmt.Errorf("failed to %s: %w", name, err)
		}
		return report(status, message)
	}
}

func runFloat(name string, fn func(context.Context, *vlc.Controller, float64) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %s", name, args[0])
		}
		if err := fn(cmd.Context(), attachedController(), v); err != nil {
			return fmt.Errorf("failed to set %s: %w", name, err)
		}
		return report("ok", fmt.Sprintf("Set %s to %g", name, v))
	}
}

func runString(name string, fn func(context.Context, *vlc.Controller, string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd.Context(), attachedController(), args[0]); err != nil {
			return fmt.Errorf("failed to set %s: %w", name, err)
		}
		return report("ok", fmt.Sprintf("Set %s to %s", name, args[0]))
	}
}

func runStart(cmd *cobra.Command, args []string) error {
	c := newController()
	if err := c.Start(cmd.Context()); err != nil {
		return fmt.Errorf("failed to start vlc: %w", err)
	}
	if JSONOutput() {
		return printJSON(map[string]any{
			"status": "started",
			"http":   cfg.Player.StatusURL(),
			"rc":     cfg.RC.Address,
		})
	}
	fmt.Printf("▶ VLC started (http %s, rc %s)\n", cfg.Player.StatusURL(), cfg.RC.Address)
	return nil
}

func runQuit(cmd *cobra.Command, args []string) error {
	if err := attachedController().Shutdown(cmd.Context()); err != nil {
		return fmt.Errorf("failed to quit vlc: %w", err)
	}
	return report("quit", "VLC shut down")
}

func runPlay(cmd *cobra.Command, args []string) error {
	path, err := resolvePlayTarget(args[0], func() *core.MovieCache {
		return newScanner().ListMovies(false)
	})
	if err != nil {
		return err
	}
	if _, err := attachedController().Play(cmd.Context(), path); err != nil {
		return fmt.Errorf("failed to play: %w", err)
	}
	if JSONOutput() {
		return printJSON(map[string]string{"status": "playing", "path": path})
	}
	fmt.Printf("▶ Playing %s\n", path)
	return nil
}

func runSeek(cmd *cobra.Command, args []string) error {
	seconds, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid seek offset: %s", args[0])
	}
	if _, err := attachedController().Seek(cmd.Context(), seconds); err != nil {
		return fmt.Errorf("failed to seek: %w", err)
	}
	if JSONOutput() {
		return printJSON(map[string]any{"status": "seeked", "seconds": seconds})
	}
	fmt.Printf("⏩ Seeked %s\n", vlc.SeekValue(seconds))
	return nil
}

func runVolume(cmd *cobra.Command, args []string) error {
	level, err := parseVolume(args[0])
	if err != nil {
		return err
	}
	if _, err := attachedController().Volume(cmd.Context(), level); err != nil {
		return fmt.Errorf("failed to set volume: %w", err)
	}
	if JSONOutput() {
		return printJSON(map[string]any{"status": "ok", "volume": level})
	}
	fmt.Printf("🔊 Volume: %d (%s)\n", level, volumePercent(float64(level)))
	return nil
}

// parseVolume accepts a raw VLC level (0-512) or a percentage such as "50%".
func parseVolume(s string) (int, error) {
	s = strings.TrimSpace(s)
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		p, err := strconv.Atoi(pct)
		if err != nil || p < 0 || p > 200 {
			return 0, fmt.Errorf("volume percentage must be between 0%% and 200%%: %s", s)
		}
		return p * volumeFull / 100, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid volume level: %s", s)
	}
	if v < 0 || v > volumeMax {
		return 0, fmt.Errorf("volume must be between 0 and %d", volumeMax)
	}
	return v, nil
}

// volumePercent renders a VLC volume level as a percentage of normal.
func volumePercent(level float64) string {
	return fmt.Sprintf("%d%%", int(level*100/volumeFull+0.5))
}

// outputKind maps a devices subcommand argument to the rc listing command.
func outputKind(arg string) (core.OutputKind, error) {
	switch strings.ToLower(arg) {
	case "", "audio", "adev":
		return core.OutputAudioDevices, nil
	case "outputs", "aout":
		return core.OutputAudioModules, nil
	case "video", "vout":
		return core.OutputVideoModules, nil
	}
	return "", fmt.Errorf("unknown output kind %q (use audio, outputs or video)", arg)
}
