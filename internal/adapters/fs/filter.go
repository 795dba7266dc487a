package fs

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/nuprune/internal/core/domain"
	"go.trai.ch/zerr"
)

// Filter decides whether a source file is excluded from scanning.
type Filter struct {
	patterns []string
}

// NewFilter compiles exclude globs. Patterns use forward slashes and may contain `**`.
func NewFilter(patterns []string) (*Filter, error) {
	f := &Filter{patterns: make([]string, 0, len(patterns))}
	for _, p := range patterns {
		p = strings.TrimSpace(strings.ReplaceAll(p, `\`, "/"))
		if p == "" {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidPattern, "failed to compile exclude pattern"), "pattern", p)
		}
		f.patterns = append(f.patterns, p)
	}
	return f, nil
}

// Excluded reports whether path, located under root, should not be scanned.
// Generated files are always excluded. Globs are tried against the path
// relative to root and against the file name.
func (f *Filter) Excluded(root, path string) bool {
	if domain.IsGeneratedFile(path) {
		return true
	}
	if len(f.patterns) == 0 {
		return false
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	name := filepath.Base(path)

	for _, p := range f.patterns {
		if doublestar.MatchUnvalidated(p, rel) || doublestar.MatchUnvalidated(p, name) {
			return true
		}
	}
	return false
}

// Patterns returns the compiled patterns.
func (f *Filter) Patterns() []string {
	return f.patterns
}
