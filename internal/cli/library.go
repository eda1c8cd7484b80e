package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/codeesasi/Ai-Media-Guardian/internal/core"
	gerrors "github.com/codeesasi/Ai-Media-Guardian/internal/errors"
	"github.com/codeesasi/Ai-Media-Guardian/internal/library"
	"github.com/codeesasi/Ai-Media-Guardian/internal/wizard"
)

var (
	libraryRefresh bool
	libraryFiles   bool
)

var libraryCmd = &cobra.Command{
	Use:     "library",
	Aliases: []string{"movies", "ls"},
	Short:   "List movies in the library folder",
	Long: `Lists the video files and movie folders directly under library.root.

Folders are listed with the video files they contain one level down.`,
	Args: cobra.NoArgs,
	RunE: runLibrary,
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a movie from the library and play it",
	Args:  cobra.NoArgs,
	RunE:  runPick,
}

func init() {
	libraryCmd.Flags().BoolVarP(&libraryRefresh, "refresh", "r", false, "Rescan the folder")
	libraryCmd.Flags().BoolVarP(&libraryFiles, "files", "f", false, "Show every file of folder entries")
	rootCmd.AddCommand(libraryCmd)
	rootCmd.AddCommand(pickCmd)
}

func newScanner() *library.Scanner {
	return library.NewScanner(cfg.Library, logger)
}

func runLibrary(cmd *cobra.Command, args []string) error {
	cache := newScanner().ListMovies(libraryRefresh)

	if JSONOutput() {
		return printJSON(cache)
	}
	if cache.HasError() {
		return libraryError(cache)
	}
	if cache.IsEmpty() {
		fmt.Printf("No movies in %s\n", cache.Root)
		return nil
	}

	printLibrary(cache)
	return nil
}

func printLibrary(cache *core.MovieCache) {
	table := NewTable("NAME", "TYPE", "FILES", "SIZE")
	for _, m := range cache.Movies {
		table.Row(TruncateString(m.Name, 60), string(m.Type), strconv.Itoa(len(m.Files)), humanize.Bytes(uint64(totalSize(m))))
		if libraryFiles && m.Type == core.MovieTypeFolder {
			for _, f := range m.Files {
				table.Row("  "+TruncateString(f.Filename, 58), "", "", humanize.Bytes(uint64(f.Size)))
			}
		}
	}
	table.Flush()
	fmt.Printf("\n%d movies in %s\n", cache.Count, cache.Root)
}

func totalSize(m core.Movie) int64 {
	var n int64
	for _, f := range m.Files {
		n += f.Size
	}
	return n
}

// libraryError turns a failed scan back into an error for the CLI.
func libraryError(cache *core.MovieCache) error {
	if strings.HasPrefix(cache.Error, gerrors.ErrScanNotFound.Error()) {
		return fmt.Errorf("%w: %s", gerrors.ErrScanNotFound, cache.Root)
	}
	return errors.New(cache.Error)
}

// resolvePlayTarget returns arg when it names an existing file, otherwise the
// first file of the library title with that name.
func resolvePlayTarget(arg string, listing func() *core.MovieCache) (string, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return arg, nil
	}
	cache := listing()
	if m := cache.Find(arg); m != nil && len(m.Files) > 0 {
		return m.Files[0].Path, nil
	}
	return "", gerrors.WithSuggestion(
		fmt.Errorf("no file or library title named %q", arg),
		"Run 'guardian library' to see available titles, or pass a full path")
}

func runPick(cmd *cobra.Command, args []string) error {
	if !wizard.IsTerminal() {
		return fmt.Errorf("pick needs an interactive terminal; use 'guardian play <path>'")
	}

	cache := newScanner().ListMovies(false)
	if cache.HasError() {
		return libraryError(cache)
	}

	path, err := wizard.PickMovie(cache)
	if err != nil {
		return err
	}
	return runPlay(cmd, []string{path})
}
