package ports

import "context"

// SourceScanner extracts the namespaces a source file refers to.
//
//go:generate go run go.uber.org/mock/mockgen -source=source_scanner.go -destination=mocks/mock_source_scanner.go -package=mocks
type SourceScanner interface {
	// Scan returns the distinct namespaces and qualified names referenced in the file at path.
	Scan(ctx context.Context, path string) ([]string, error)
}

// SourceDiscoverer lists the source files that belong to a project.
type SourceDiscoverer interface {
	// Sources returns the scannable files under dir, skipping nested projects,
	// generated files, and paths matching excludes.
	Sources(ctx context.Context, dir string, excludes []string) ([]string, error)
}
