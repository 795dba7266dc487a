// Package namespaces maps package ids to the namespaces they expose.
package namespaces

import (
	"maps"
	"slices"
	"strings"

	"go.trai.ch/nuprune/internal/core/domain"
	"go.trai.ch/nuprune/internal/core/ports"
)

var _ ports.NamespaceResolver = (*Table)(nil)

type aliasRule struct {
	pattern    domain.NamespacePattern
	namespaces []string
}

// Table is an extendable package id to namespace lookup.
// Package ids in rules may contain `*` wildcards and are matched ignoring case.
type Table struct {
	exact map[domain.Key][]string
	rules []aliasRule
	dev   []domain.NamespacePattern
}

// New creates an empty Table.
func New() *Table {
	return &Table{exact: make(map[domain.Key][]string)}
}

// NewDefault creates a Table seeded with the built-in aliases and
// development dependency patterns.
func NewDefault() *Table {
	t := New()
	for _, id := range slices.Sorted(maps.Keys(defaultAliases)) {
		t.AddAliases(id, defaultAliases[id]...)
	}
	t.AddDevPatterns(defaultDevPatterns...)
	return t
}

// AddAliases registers namespaces exposed by packages matching id.
func (t *Table) AddAliases(id string, namespaces ...string) {
	pattern := domain.NewNamespacePattern(id)
	if pattern.String() == "" {
		return
	}
	if pattern.IsExact() {
		key := pattern.Key()
		t.exact[key] = appendNew(t.exact[key], namespaces)
		return
	}
	for i := range t.rules {
		if t.rules[i].pattern.Equal(pattern) {
			t.rules[i].namespaces = appendNew(t.rules[i].namespaces, namespaces)
			return
		}
	}
	t.rules = append(t.rules, aliasRule{pattern: pattern, namespaces: appendNew(nil, namespaces)})
}

// AddDevPatterns registers package id patterns treated as development dependencies.
func (t *Table) AddDevPatterns(patterns ...string) {
	for _, p := range domain.ParsePatterns(patterns) {
		if !slices.ContainsFunc(t.dev, p.Equal) {
			t.dev = append(t.dev, p)
		}
	}
}

// Aliases returns the namespaces registered for packageID, exact entries first.
func (t *Table) Aliases(packageID string) []string {
	out := slices.Clone(t.exact[domain.NewKey(packageID)])
	for _, rule := range t.rules {
		if rule.pattern.Matches(packageID) {
			out = appendNew(out, rule.namespaces)
		}
	}
	return out
}

// IsDevDependency reports whether packageID matches a development dependency pattern.
func (t *Table) IsDevDependency(packageID string) bool {
	return domain.MatchesAny(t.dev, packageID)
}

func appendNew(dst, values []string) []string {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if slices.ContainsFunc(dst, func(existing string) bool { return strings.EqualFold(existing, v) }) {
			continue
		}
		dst = append(dst, v)
	}
	return dst
}
