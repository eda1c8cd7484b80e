package wizard

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/dustin/go-humanize"

	"github.com/codeesasi/Ai-Media-Guardian/internal/core"
)

// ErrNothingToPick is returned when the library has no playable files.
var ErrNothingToPick = errors.New("no movies to pick from")

// MovieOptions builds picker options for every movie that has at least one file.
func MovieOptions(movies []core.Movie) []huh.Option[int] {
	options := make([]huh.Option[int], 0, len(movies))
	for i, m := range movies {
		if len(m.Files) == 0 {
			continue
		}
		label := m.Name
		if m.Type == core.MovieTypeFolder {
			label = fmt.Sprintf("%s/ (%d files)", m.Name, len(m.Files))
		}
		options = append(options, huh.NewOption(label, i))
	}
	return options
}

// FileOptions builds picker options for the files of one movie.
func FileOptions(files []core.MovieFile) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(files))
	for _, f := range files {
		label := f.Filename
		if f.Size > 0 {
			label = fmt.Sprintf("%s  %s", f.Filename, humanize.Bytes(uint64(f.Size)))
		}
		options = append(options, huh.NewOption(label, f.Path))
	}
	return options
}

// PickMovie asks the user for a movie, then for a file when the movie is a
// folder holding more than one. It returns the chosen file path.
func PickMovie(cache *core.MovieCache) (string, error) {
	options := MovieOptions(cache.Movies)
	if len(options) == 0 {
		return "", ErrNothingToPick
	}

	var idx int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Select a movie").
				Description(cache.Root).
				Options(options...).
				Filtering(true).
				Value(&idx),
		),
	)
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("selection cancelled: %w", err)
	}

	files := cache.Movies[idx].Files
	if len(files) == 1 {
		return files[0].Path, nil
	}

	var path string
	form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(cache.Movies[idx].Name).
				Options(FileOptions(files)...).
				Value(&path),
		),
	)
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("selection cancelled: %w", err)
	}
	return path, nil
}
