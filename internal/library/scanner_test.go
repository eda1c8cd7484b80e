package library

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/codeesasi/Ai-Media-Guardian/internal/config"
	"github.com/codeesasi/Ai-Media-Guardian/internal/core"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newScanner(root string) *Scanner {
	return NewScanner(config.LibraryConfig{
		Root:       root,
		Extensions: []string{".mp4", ".mkv", ".avi"},
	}, zap.NewNop())
}

func names(c *core.MovieCache) []string {
	out := make([]string, 0, len(c.Movies))
	for _, m := range c.Movies {
		out = append(out, m.Name)
	}
	return out
}

func TestListMovies_SortsCaseInsensitively(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "Zeta.mp4"), "z")
	write(t, filepath.Join(root, "alpha.mkv"), "a")
	write(t, filepath.Join(root, "Middle", "part1.avi"), "m")

	got := newScanner(root).ListMovies(false)

	assert.Equal(t, []string{"alpha", "Middle", "Zeta"}, names(got))
	assert.Equal(t, 3, got.Count)
	assert.Equal(t, core.SourceFolderScan, got.Source)
	assert.Empty(t, got.Error)
}

func TestListMovies_FileEntries(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "Heat.MKV"), "0123456789")
	write(t, filepath.Join(root, "notes.txt"), "not a movie")

	got := newScanner(root).ListMovies(false)

	require.Len(t, got.Movies, 1)
	m := got.Movies[0]
	assert.Equal(t, "Heat", m.Name)
	assert.Equal(t, core.MovieTypeFile, m.Type)
	require.Len(t, m.Files, 1)
	assert.Equal(t, "Heat.MKV", m.Files[0].Filename)
	assert.True(t, filepath.IsAbs(m.Files[0].Path))
	assert.Equal(t, filepath.Join(root, "Heat.MKV"), m.Files[0].Path)
	assert.Equal(t, int64(10), m.Files[0].Size)
}

func TestListMovies_FolderEntries(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "Trilogy", "one.mp4"), "1")
	write(t, filepath.Join(root, "Trilogy", "two.mkv"), "2")
	write(t, filepath.Join(root, "Trilogy", "cover.jpg"), "img")
	write(t, filepath.Join(root, "Trilogy", "extras", "deep.mp4"), "too deep")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Empty"), 0o755))

	got := newScanner(root).ListMovies(false)

	require.Equal(t, []string{"Empty", "Trilogy"}, names(got))

	empty := got.Movies[0]
	assert.Equal(t, core.MovieTypeFolder, empty.Type)
	assert.NotNil(t, empty.Files)
	assert.Empty(t, empty.Files)

	trilogy := got.Movies[1]
	assert.Equal(t, core.MovieTypeFolder, trilogy.Type)
	var files []string
	for _, f := range trilogy.Files {
		files = append(files, f.Filename)
	}
	assert.Equal(t, []string{"one.mp4", "two.mkv"}, files)
}

func TestListMovies_ExcludesDisallowedExtensions(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"notes.txt", "poster.jpg", "movie.mp4.part", "README"} {
		write(t, filepath.Join(root, name), "x")
	}

	got := newScanner(root).ListMovies(false)

	assert.Zero(t, got.Count)
	assert.Empty(t, got.Movies)
	assert.Empty(t, got.Error)
}

func TestListMovies_CachesUntilRefresh(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "a.mp4"), "a")
	s := newScanner(root)

	first := s.ListMovies(false)
	write(t, filepath.Join(root, "b.mp4"), "b")
	second := s.ListMovies(false)

	assert.Same(t, first, second, "a non-refresh listing must return the cached result")
	assert.Equal(t, 1, second.Count)

	refreshed := s.ListMovies(true)
	assert.NotSame(t, first, refreshed)
	assert.Equal(t, []string{"a", "b"}, names(refreshed))
	assert.Same(t, refreshed, s.ListMovies(false))
}

func TestListMovies_RefreshAlwaysRescans(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "a.mp4"), "a")
	s := newScanner(root)

	first := s.ListMovies(true)
	second := s.ListMovies(true)

	assert.NotSame(t, first, second)
	assert.Equal(t, first, second)
}

func TestListMovies_MissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "does-not-exist")
	s := newScanner(root)

	got := s.ListMovies(false)

	assert.Zero(t, got.Count)
	assert.NotNil(t, got.Movies)
	assert.Empty(t, got.Movies)
	assert.True(t, got.HasError())
	assert.Contains(t, got.Error, "not found")
	assert.Same(t, got, s.ListMovies(false), "failed scans are cached too")

	write(t, filepath.Join(root, "late.mp4"), "x")
	assert.Equal(t, 1, s.ListMovies(true).Count)
}

func TestListMovies_UnreadableFolderIsKept(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}
	root := t.TempDir()
	locked := filepath.Join(root, "Locked")
	write(t, filepath.Join(locked, "secret.mp4"), "x")
	write(t, filepath.Join(root, "open.mp4"), "x")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	got := newScanner(root).ListMovies(false)

	require.Equal(t, []string{"Locked", "open"}, names(got))
	assert.Equal(t, core.MovieTypeFolder, got.Movies[0].Type)
	assert.Empty(t, got.Movies[0].Files)
	assert.Empty(t, got.Error)
}

func TestListMovies_DoesNotTouchFilesystem(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "Dir", "x.mkv"), "x")
	write(t, filepath.Join(root, "y.mp4"), "y")

	before := snapshot(t, root)
	newScanner(root).ListMovies(true)
	assert.Equal(t, before, snapshot(t, root))
}

func snapshot(t *testing.T, root string) string {
	t.Helper()
	var b strings.Builder
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		b.WriteString(path)
		b.WriteString(info.Mode().String())
		b.WriteString(info.ModTime().String())
		b.WriteByte('\n')
		return nil
	})
	require.NoError(t, err)
	return b.String()
}
