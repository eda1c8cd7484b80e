// Package library indexes movies under a root directory.
//
// A scan looks at the root and one level below it: video files directly
// under the root become single-file movies, and each subdirectory becomes a
// folder movie holding the video files found directly inside it. The result
// is cached in memory until a refresh is requested.
package library

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/codeesasi/Ai-Media-Guardian/internal/config"
	"github.com/codeesasi/Ai-Media-Guardian/internal/core"
	gerrors "github.com/codeesasi/Ai-Media-Guardian/internal/errors"
)

// Scanner lists movies under Root and caches the listing.
type Scanner struct {
	logger     *zap.Logger
	root       string
	extensions map[string]struct{}

	// nil means Empty; a stored listing is never modified, only replaced.
	cache atomic.Pointer[core.MovieCache]
}

// NewScanner creates a scanner for cfg.Root accepting cfg.Extensions.
func NewScanner(cfg config.LibraryConfig, logger *zap.Logger) *Scanner {
	exts := make(map[string]struct{}, len(cfg.Extensions))
	for _, ext := range cfg.Extensions {
		exts[strings.ToLower(ext)] = struct{}{}
	}
	root := cfg.Root
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &Scanner{
		logger:     logger,
		root:       root,
		extensions: exts,
	}
}

var _ core.Library = (*Scanner)(nil)

// ListMovies returns the cached listing, scanning first when the cache is
// empty or refresh is set. Failed scans are cached too.
func (s *Scanner) ListMovies(refresh bool) *core.MovieCache {
	return s.getOrBuild(refresh)
}

func (s *Scanner) getOrBuild(force bool) *core.MovieCache {
	if !force {
		if cached := s.cache.Load(); cached != nil {
			return cached
		}
	}
	built := s.scan()
	s.cache.Store(built)
	return built
}

func (s *Scanner) scan() *core.MovieCache {
	result := &core.MovieCache{
		Source: core.SourceFolderScan,
		Root:   s.root,
		Movies: []core.Movie{},
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			result.Error = fmt.Sprintf("%s: %s", gerrors.ErrScanNotFound, s.root)
		} else {
			result.Error = fmt.Sprintf("read library root: %v", err)
		}
		s.logger.Warn("library scan failed", zap.String("root", s.root), zap.String("error", result.Error))
		return result
	}

	res := gerrors.PartialResult[[]core.Movie]{}
	for _, e := range entries {
		path := filepath.Join(s.root, e.Name())
		isDir, isFile := resolveKind(e, path)
		switch {
		case isDir:
			files, err := s.scanFolder(path)
			res.AddError(err)
			res.Data = append(res.Data, core.Movie{
				Name:  e.Name(),
				Type:  core.MovieTypeFolder,
				Files: files,
			})
		case isFile && s.allowed(e.Name()):
			res.Data = append(res.Data, core.Movie{
				Name:  strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())),
				Type:  core.MovieTypeFile,
				Files: []core.MovieFile{fileRecord(e, path)},
			})
		}
	}

	if res.HasErrors() {
		s.logger.Debug("library folders skipped", zap.String("errors", res.ErrorSummary()))
	}

	movies := res.Data
	sort.SliceStable(movies, func(i, j int) bool {
		return strings.ToLower(movies[i].Name) < strings.ToLower(movies[j].Name)
	})
	if movies != nil {
		result.Movies = movies
	}
	result.Count = len(result.Movies)

	s.logger.Info("library scanned", zap.String("root", s.root), zap.Int("count", result.Count))
	return result
}

// scanFolder lists the allowed files directly inside dir. Unreadable
// folders yield whatever could be read and an error for logging only.
func (s *Scanner) scanFolder(dir string) ([]core.MovieFile, error) {
	files := []core.MovieFile{}
	entries, err := os.ReadDir(dir)
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if _, isFile := resolveKind(e, path); !isFile || !s.allowed(e.Name()) {
			continue
		}
		files = append(files, fileRecord(e, path))
	}
	if err != nil {
		return files, fmt.Errorf("scan %s: %w", dir, err)
	}
	return files, nil
}

func (s *Scanner) allowed(name string) bool {
	_, ok := s.extensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// resolveKind follows symlinks so linked files and folders are listed like real ones.
func resolveKind(e fs.DirEntry, path string) (isDir, isFile bool) {
	if e.Type()&fs.ModeSymlink == 0 {
		return e.IsDir(), e.Type().IsRegular()
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, false
	}
	return info.IsDir(), info.Mode().IsRegular()
}

func fileRecord(e fs.DirEntry, path string) core.MovieFile {
	f := core.MovieFile{Filename: e.Name(), Path: path}
	if info, err := os.Stat(path); err == nil {
		f.Size = info.Size()
	}
	return f
}
