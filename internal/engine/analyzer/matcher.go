package analyzer

import (
	"strings"

	"go.trai.ch/nuprune/internal/core/domain"
	"go.trai.ch/nuprune/internal/core/ports"
)

// frameworkRoot is the namespace root supplied by the runtime rather than by packages.
const frameworkRoot = "system"

// candidate holds the lowercase namespaces that indicate one package is used.
type candidate struct {
	key domain.Key
	// strong entries match the namespace itself or anything below it.
	strong []string
	// weak entries are dot-prefixes of the id that match only exactly.
	weak []string
}

// matcher resolves referenced namespaces to the packages of one project.
type matcher struct {
	candidates []candidate
}

func newMatcher(refs []*domain.PackageReference, resolver ports.NamespaceResolver, strict bool) *matcher {
	m := &matcher{candidates: make([]candidate, 0, len(refs))}
	seen := make(map[domain.Key]struct{}, len(refs))
	for _, ref := range refs {
		key := ref.PackageKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		m.candidates = append(m.candidates, newCandidate(ref.ID, key, resolver, strict))
	}
	return m
}

// newCandidate builds the candidates for id: the id, its aliases, and every
// dot-prefix of the id. In strict mode the prefixes are weak, need two or
// more segments, and are not derived for ids under the framework root.
func newCandidate(id string, key domain.Key, resolver ports.NamespaceResolver, strict bool) candidate {
	lower := strings.ToLower(id)
	c := candidate{key: key, strong: []string{lower}}
	for _, alias := range resolver.Aliases(id) {
		c.strong = appendLower(c.strong, alias)
	}

	segments := strings.Split(lower, ".")
	if !strict {
		for n := len(segments) - 1; n >= 1; n-- {
			c.strong = appendLower(c.strong, strings.Join(segments[:n], "."))
		}
		return c
	}

	if segments[0] == frameworkRoot {
		return c
	}
	for n := len(segments) - 1; n >= 2; n-- {
		c.weak = appendLower(c.weak, strings.Join(segments[:n], "."))
	}
	return c
}

func appendLower(dst []string, v string) []string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return dst
	}
	for _, existing := range dst {
		if existing == v {
			return dst
		}
	}
	return append(dst, v)
}

// match returns the packages that ns refers to.
// Weak matches count only when no package matches strongly.
func (m *matcher) match(ns string) []domain.Key {
	target := strings.ToLower(strings.TrimSpace(ns))
	if target == "" {
		return nil
	}

	var strong, weak []domain.Key
	for _, c := range m.candidates {
		switch {
		case matchesStrong(c.strong, target):
			strong = append(strong, c.key)
		case matchesWeak(c.weak, target):
			weak = append(weak, c.key)
		}
	}
	if len(strong) > 0 {
		return strong
	}
	return weak
}

func matchesStrong(namespaces []string, target string) bool {
	for _, ns := range namespaces {
		if target == ns || strings.HasPrefix(target, ns+".") {
			return true
		}
	}
	return false
}

func matchesWeak(prefixes []string, target string) bool {
	for _, p := range prefixes {
		if target == p {
			return true
		}
	}
	return false
}
