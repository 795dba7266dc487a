package ports

// NamespaceResolver maps package ids to the namespaces they are expected to expose.
//
//go:generate mockgen -source=namespace_resolver.go -destination=mocks/mock_namespace_resolver.go -package=mocks
type NamespaceResolver interface {
	// Aliases returns the known root namespaces of a package whose names differ from its id.
	Aliases(packageID string) []string
	// IsDevDependency reports whether the package is a build or test time dependency.
	IsDevDependency(packageID string) bool
}
