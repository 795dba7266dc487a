package domain

import "time"

// DevDependencyPolicy decides how development-only packages without usage are reported.
type DevDependencyPolicy string

const (
	// DevDependenciesReport reports unused development packages as unused.
	DevDependenciesReport DevDependencyPolicy = "report"
	// DevDependenciesIgnore excludes development packages from the totals.
	DevDependenciesIgnore DevDependencyPolicy = "ignore"
	// DevDependenciesUsed counts development packages as used.
	DevDependenciesUsed DevDependencyPolicy = "used"
)

// Valid reports whether the policy is one of the known values.
func (p DevDependencyPolicy) Valid() bool {
	switch p {
	case DevDependenciesReport, DevDependenciesIgnore, DevDependenciesUsed:
		return true
	default:
		return false
	}
}

// Settings are the analysis options read from the configuration file.
// Zero values mean "not set".
type Settings struct {
	Path                    string
	Exclude                 []string
	Timeout                 time.Duration
	Parallelism             int
	TargetFramework         string
	DevDependencies         DevDependencyPolicy
	GlobalUsingCountsAsUsed *bool
	StrictPrefixes          *bool
	Namespaces              map[string][]string
	DevDependencyPatterns   []string
	IgnorePackages          []string
}
