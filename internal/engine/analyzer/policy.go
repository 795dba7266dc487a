package analyzer

import "go.trai.ch/nuprune/internal/core/domain"

// Policy decides how references without textual usage are classified.
type Policy struct {
	// GlobalUsingCountsAsUsed treats a project-wide import of a package namespace as usage.
	GlobalUsingCountsAsUsed bool
	// StrictPrefixes limits the dot-prefixes of a package id to exact
	// namespaces of two or more segments outside System, and lets them count
	// only when no other reference of the project matches the namespace.
	StrictPrefixes bool
	// DevDependencies controls unused development dependencies.
	DevDependencies domain.DevDependencyPolicy
	// Ignore lists package id patterns that are never reported as unused.
	Ignore []domain.NamespacePattern
}

// DefaultPolicy returns the policy used when nothing is configured.
func DefaultPolicy() Policy {
	return Policy{
		GlobalUsingCountsAsUsed: true,
		DevDependencies:         domain.DevDependenciesReport,
	}
}

// PolicyFromSettings overlays configured values on the default policy.
func PolicyFromSettings(settings *domain.Settings) Policy {
	p := DefaultPolicy()
	if settings == nil {
		return p
	}
	if settings.GlobalUsingCountsAsUsed != nil {
		p.GlobalUsingCountsAsUsed = *settings.GlobalUsingCountsAsUsed
	}
	if settings.StrictPrefixes != nil {
		p.StrictPrefixes = *settings.StrictPrefixes
	}
	if settings.DevDependencies != "" {
		p.DevDependencies = settings.DevDependencies
	}
	p.Ignore = domain.ParsePatterns(settings.IgnorePackages)
	return p
}
