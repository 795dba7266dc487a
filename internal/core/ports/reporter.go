package ports

import (
	"io"

	"go.trai.ch/nuprune/internal/core/domain"
)

// Reporter renders analysis outcomes.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Render writes the result to w.
	Render(w io.Writer, result *domain.AnalysisResult) error
}
