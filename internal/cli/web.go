package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codeesasi/Ai-Media-Guardian/internal/browser"
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Open VLC's web interface in a browser",
	Long: `Open VLC's built-in web interface. Log in with an empty user name and
player.password.`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	rootCmd.AddCommand(webCmd)
}

func runWeb(cmd *cobra.Command, args []string) error {
	url := cfg.Player.WebURL()
	if err := browser.Open(url); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	if JSONOutput() {
		return printJSON(map[string]string{"status": "opened", "url": url})
	}
	fmt.Printf("Opened %s\n", url)
	return nil
}
