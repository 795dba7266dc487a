package domain

import "strings"

const wildcard = "*"

// NamespacePattern is a matchable namespace expression.
// A pattern without `*` is exact; any `*` makes it a wildcard pattern.
// Matching and equality ignore letter case.
type NamespacePattern struct {
	raw   string
	lower string
}

// NewNamespacePattern creates a pattern from its raw text.
func NewNamespacePattern(raw string) NamespacePattern {
	raw = strings.TrimSpace(raw)
	return NamespacePattern{raw: raw, lower: strings.ToLower(raw)}
}

// String returns the raw pattern text.
func (p NamespacePattern) String() string {
	return p.raw
}

// IsWildcard reports whether the pattern contains a `*`.
func (p NamespacePattern) IsWildcard() bool {
	return strings.Contains(p.raw, wildcard)
}

// IsExact reports whether the pattern matches a single namespace only.
func (p NamespacePattern) IsExact() bool {
	return !p.IsWildcard()
}

// Key returns the case-insensitive identity of the pattern.
func (p NamespacePattern) Key() Key {
	return NewKey(p.raw)
}

// Equal reports whether two patterns have the same text, ignoring case.
func (p NamespacePattern) Equal(other NamespacePattern) bool {
	return p.lower == other.lower
}

// Matches reports whether ns satisfies the pattern.
// Empty or whitespace-only namespaces never match.
func (p NamespacePattern) Matches(ns string) bool {
	if strings.TrimSpace(ns) == "" {
		return false
	}
	target := strings.ToLower(ns)

	if p.IsExact() {
		return target == p.lower
	}
	if p.lower == wildcard {
		return true
	}

	parts := strings.Split(p.lower, wildcard)
	first, last := parts[0], parts[len(parts)-1]

	if len(parts) == 2 {
		switch {
		case last == "":
			return strings.HasPrefix(target, first)
		case first == "":
			return strings.HasSuffix(target, last)
		}
	}

	return matchOrdered(target, parts)
}

// matchOrdered reports whether every non-empty part occurs in target,
// each one at or after the end of the previous match.
func matchOrdered(target string, parts []string) bool {
	pos := 0
	for _, part := range parts {
		if part == "" {
			continue
		}
		idx := strings.Index(target[pos:], part)
		if idx < 0 {
			return false
		}
		pos += idx + len(part)
	}
	return true
}

// MatchesAny reports whether ns satisfies at least one of the patterns.
func MatchesAny(patterns []NamespacePattern, ns string) bool {
	for _, p := range patterns {
		if p.Matches(ns) {
			return true
		}
	}
	return false
}

// ParsePatterns converts raw pattern strings, skipping blank entries.
func ParsePatterns(raw []string) []NamespacePattern {
	patterns := make([]NamespacePattern, 0, len(raw))
	for _, r := range raw {
		if strings.TrimSpace(r) == "" {
			continue
		}
		patterns = append(patterns, NewNamespacePattern(r))
	}
	return patterns
}
