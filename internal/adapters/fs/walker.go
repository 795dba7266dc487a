// Package fs provides file system adapters for walking, filtering, and hashing files.
package fs

import (
	"context"
	iofs "io/fs"
	"iter"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/nuprune/internal/core/domain"
	"go.trai.ch/nuprune/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceDiscoverer = (*Walker)(nil)

// Walker provides file walking functionality.
type Walker struct {
	fs FileSystem
}

// NewWalker creates a new Walker over fsys.
func NewWalker(fsys FileSystem) *Walker {
	return &Walker{fs: fsys}
}

// WalkFiles yields all files below root, skipping build output, VCS directories,
// and entries whose name matches one of ignores.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = w.fs.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // unreadable entries are skipped
			}

			if skipAction := w.shouldSkip(root, path, d, ignores); skipAction != nil {
				return skipAction
			}

			if d.IsDir() {
				return nil
			}
			if ignored(d.Name(), ignores) {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// shouldSkip returns filepath.SkipDir for directories that are never descended into.
func (w *Walker) shouldSkip(root, path string, d iofs.DirEntry, ignores []string) error {
	if !d.IsDir() || path == root {
		return nil
	}
	if domain.IsSkippedDirectory(d.Name()) || ignored(d.Name(), ignores) {
		return filepath.SkipDir
	}
	return nil
}

func ignored(name string, ignores []string) bool {
	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}

// ProjectFiles returns every project file below root in walk order.
func (w *Walker) ProjectFiles(ctx context.Context, root string) ([]string, error) {
	var projects []string
	for path := range w.WalkFiles(root, nil) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if domain.IsProjectFile(path) {
			projects = append(projects, path)
		}
	}
	return projects, nil
}

// Sources returns the scannable source files of the project rooted at dir.
// Files that belong to a nested project, generated files, and files matching
// excludes are left out. The result is sorted.
func (w *Walker) Sources(ctx context.Context, dir string, excludes []string) ([]string, error) {
	dir = filepath.Clean(dir)
	filter, err := NewFilter(excludes)
	if err != nil {
		return nil, err
	}

	if ok, statErr := w.fs.IsDir(dir); statErr != nil || !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrNotFound, "project directory does not exist"), "path", dir)
	}

	var nested []string
	var candidates []string
	for path := range w.WalkFiles(dir, nil) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		switch {
		case domain.IsProjectFile(path):
			if parent := filepath.Dir(path); parent != dir {
				nested = append(nested, parent+string(filepath.Separator))
			}
		case domain.IsSourceFile(path):
			candidates = append(candidates, path)
		}
	}

	sources := make([]string, 0, len(candidates))
	for _, path := range candidates {
		if slices.ContainsFunc(nested, func(prefix string) bool { return strings.HasPrefix(path, prefix) }) {
			continue
		}
		if filter.Excluded(dir, path) {
			continue
		}
		sources = append(sources, path)
	}
	slices.Sort(sources)
	return sources, nil
}
