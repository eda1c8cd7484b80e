package wizard

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal returns true if stdin and stdout are both terminals.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// NeedsPrompt returns true if an argument is missing and a prompt can supply it.
func NeedsPrompt(args []string) bool {
	return len(args) == 0 && IsTerminal()
}
