package namespaces

import (
	"slices"

	"go.trai.ch/nuprune/internal/core/domain"
	"go.trai.ch/nuprune/internal/core/ports"
)

// Overlay layers configured aliases and development patterns over base.
type Overlay struct {
	base  ports.NamespaceResolver
	extra *Table
}

var _ ports.NamespaceResolver = (*Overlay)(nil)

// WithSettings returns base extended by the namespaces and development
// patterns in settings. When settings add nothing, base is returned unchanged.
func WithSettings(base ports.NamespaceResolver, settings *domain.Settings) ports.NamespaceResolver {
	if settings == nil || (len(settings.Namespaces) == 0 && len(settings.DevDependencyPatterns) == 0) {
		return base
	}
	extra := New()
	for id, namespaces := range settings.Namespaces {
		extra.AddAliases(id, namespaces...)
	}
	extra.AddDevPatterns(settings.DevDependencyPatterns...)
	return &Overlay{base: base, extra: extra}
}

// Aliases returns the base aliases followed by the configured ones.
func (o *Overlay) Aliases(packageID string) []string {
	return appendNew(slices.Clone(o.base.Aliases(packageID)), o.extra.Aliases(packageID))
}

// IsDevDependency reports whether either layer marks packageID as a development dependency.
func (o *Overlay) IsDevDependency(packageID string) bool {
	return o.extra.IsDevDependency(packageID) || o.base.IsDevDependency(packageID)
}
