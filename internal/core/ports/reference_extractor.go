package ports

import (
	"context"

	"go.trai.ch/nuprune/internal/core/domain"
)

// ReferenceExtractor reads package references and global usings from a project file.
//
//go:generate go run go.uber.org/mock/mockgen -source=reference_extractor.go -destination=mocks/mock_reference_extractor.go -package=mocks
type ReferenceExtractor interface {
	// Extract parses the project at path. Versionless references are resolved
	// through central, which may be nil.
	Extract(ctx context.Context, path string, central *domain.CentralPackages) (*domain.Extraction, error)
}
