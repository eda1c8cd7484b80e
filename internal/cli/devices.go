package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codeesasi/Ai-Media-Guardian/internal/core"
)

var devicesCmd = &cobra.Command{
	Use:   "devices [audio|outputs|video]",
	Short: "List active audio devices or output modules",
	Long: `Lists the entries VLC marks as active on its rc interface.

  audio     audio devices (default)
  outputs   audio output modules
  video     video output modules`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"audio", "outputs", "video"},
	RunE:      runDevices,
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}

func runDevices(cmd *cobra.Command, args []string) error {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	kind, err := outputKind(arg)
	if err != nil {
		return err
	}

	entries, err := attachedController().Outputs(cmd.Context(), kind)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", kind.Label(), err)
	}

	if JSONOutput() {
		return printJSON(entries)
	}
	printOutputs(kind, entries)
	return nil
}

func printOutputs(kind core.OutputKind, entries []string) {
	if len(entries) == 0 {
		fmt.Printf("No active %s\n", kind.Label())
		return
	}
	table := NewTable("", "NAME")
	for _, e := range entries {
		table.Row(StatusIcon(true), e)
	}
	table.Flush()
}
