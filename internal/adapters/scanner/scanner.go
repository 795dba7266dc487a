// Package scanner extracts referenced namespaces from source files.
package scanner

import (
	"context"
	"errors"
	iofs "io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/nuprune/internal/adapters/fs"
	"go.trai.ch/nuprune/internal/core/domain"
	"go.trai.ch/nuprune/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultCacheSize is the number of scan results kept in memory.
const DefaultCacheSize = 4096

var _ ports.SourceScanner = (*Scanner)(nil)

type cacheKey struct {
	ext string
	sum uint64
}

// Scanner implements ports.SourceScanner.
// Results are cached by content, so unchanged files are parsed once.
type Scanner struct {
	fs    fs.FileSystem
	cache *lru.Cache[cacheKey, []string]
}

// New creates a Scanner holding up to size results.
func New(fsys fs.FileSystem, size int) (*Scanner, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[cacheKey, []string](size)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create scan cache")
	}
	return &Scanner{fs: fsys, cache: cache}, nil
}

// Scan returns the distinct namespaces and qualified names referenced in the file at path, sorted.
func (s *Scanner) Scan(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, err := s.fs.ReadFile(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(domain.ErrNotFound, "source file does not exist"), "path", path)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read source file"), "path", path)
	}

	key := cacheKey{ext: strings.ToLower(filepath.Ext(path)), sum: xxhash.Sum64(src)}
	if names, ok := s.cache.Get(key); ok {
		return slices.Clone(names), nil
	}

	var names []string
	if key.ext == ".cs" {
		names, err = scanCSharp(ctx, src)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to parse source file"), "path", path)
		}
	} else {
		names = scanText(key.ext, src)
	}

	names = normalize(names)
	s.cache.Add(key, names)
	return slices.Clone(names), nil
}

// Len returns the number of cached results.
func (s *Scanner) Len() int {
	return s.cache.Len()
}

func normalize(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = cleanName(n); n != "" {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// cleanName strips whitespace, a global:: qualifier and generic arguments,
// returning "" unless what remains is a dotted identifier path.
func cleanName(raw string) string {
	name := strings.Join(strings.Fields(raw), "")
	name = strings.TrimPrefix(name, "global::")
	name = strings.TrimPrefix(name, "@")
	if i := strings.IndexAny(name, "<(["); i >= 0 {
		name = name[:i]
	}
	if !dottedName.MatchString(name) {
		return ""
	}
	return name
}
