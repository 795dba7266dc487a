package ports

import (
	"context"

	"go.trai.ch/nuprune/internal/core/domain"
)

// CentralPackageResolver resolves central package management declarations.
//
//go:generate go run go.uber.org/mock/mockgen -source=central_resolver.go -destination=mocks/mock_central_resolver.go -package=mocks
type CentralPackageResolver interface {
	// Resolve finds the declaration file governing dir and merges it with its imports.
	// A missing file yields a disabled, empty resolution.
	Resolve(ctx context.Context, dir string) (*domain.CentralPackages, error)
	// LookupVersion returns the version declared for id, whether or not central management is enabled.
	LookupVersion(ctx context.Context, dir, id string) (string, bool, error)
}
