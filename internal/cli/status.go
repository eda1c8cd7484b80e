package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codeesasi/Ai-Media-Guardian/internal/core"
)

var statusRaw bool

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"now"},
	Short:   "Show current playback status",
	Long: `Shows what VLC is playing, the position, and the volume.

With --raw the full status.json payload is printed as JSON.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&statusRaw, "raw", false, "Print the raw VLC status payload")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	c := attachedController()

	if statusRaw {
		payload, err := c.Status(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get status: %w", err)
		}
		return printJSON(payload)
	}

	info, err := c.MediaInfo(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	if JSONOutput() {
		return printJSON(info)
	}
	printMediaInfo(info)
	return nil
}

func printMediaInfo(info *core.MediaInfo) {
	state := "unknown"
	if info.State != nil {
		state = *info.State
	}

	title := info.DisplayTitle()
	if title == "" {
		fmt.Printf("%s Nothing playing (%s)\n", StatusIcon(false), state)
		return
	}

	fmt.Printf("%s %s\n", StatusIcon(info.IsPlaying()), title)
	if info.Artist != nil && *info.Artist != "" {
		fmt.Printf("  Artist: %s\n", *info.Artist)
	}
	if info.Album != nil && *info.Album != "" {
		fmt.Printf("  Album:  %s\n", *info.Album)
	}
	fmt.Printf("  State:  %s\n", state)

	if info.Position != nil && info.Duration != nil {
		fmt.Printf("  %s %s / %s\n",
			FormatProgress(*info.Position, *info.Duration, 30),
			FormatDuration(*info.Position),
			FormatDuration(*info.Duration))
	}
	if info.Volume != nil {
		fmt.Printf("  Volume: %s\n", volumePercent(*info.Volume))
	}
	if info.Rate != nil && *info.Rate != 1 {
		fmt.Printf("  Rate:   %gx\n", *info.Rate)
	}
}
