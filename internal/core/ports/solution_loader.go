package ports

import (
	"context"

	"go.trai.ch/nuprune/internal/core/domain"
)

// SolutionLoader builds the domain model from solution, project, or directory targets.
//
//go:generate go run go.uber.org/mock/mockgen -source=solution_loader.go -destination=mocks/mock_solution_loader.go -package=mocks
type SolutionLoader interface {
	// LoadSolution parses a .sln or .slnx container and every project it lists.
	LoadSolution(ctx context.Context, path string) (*domain.Solution, error)
	// LoadProject wraps a single project file in a virtual solution.
	LoadProject(ctx context.Context, path string) (*domain.Solution, error)
	// Discover loads the solution in dir, or every project file below it when there is none.
	Discover(ctx context.Context, dir string) (*domain.Solution, error)
}
