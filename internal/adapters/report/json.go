package report

import (
	"encoding/json"
	"io"

	"go.trai.ch/nuprune/internal/core/domain"
	"go.trai.ch/nuprune/internal/core/ports"
	"go.trai.ch/zerr"
)

// JSON renders results as indented JSON documents.
type JSON struct{}

var _ ports.Reporter = (*JSON)(nil)

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

type resultDocument struct {
	*domain.AnalysisResult
	ElapsedMs int64 `json:"elapsedMs"`
}

type failureDocument struct {
	Error *domain.Failure `json:"error"`
}

// Render writes result to w.
func (j *JSON) Render(w io.Writer, result *domain.AnalysisResult) error {
	return encode(w, resultDocument{
		AnalysisResult: result,
		ElapsedMs:      result.Elapsed.Milliseconds(),
	})
}

// RenderFailure writes f to w under an "error" key.
func (j *JSON) RenderFailure(w io.Writer, f *domain.Failure) error {
	return encode(w, failureDocument{Error: f})
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return zerr.Wrap(err, "failed to encode report")
	}
	return nil
}
