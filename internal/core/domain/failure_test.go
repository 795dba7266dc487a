package domain_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/nuprune/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want domain.FailureCode
	}{
		{"not found through wrap", zerr.With(zerr.Wrap(domain.ErrNotFound, "failed to read project"), "path", "/x"), domain.FailureNotFound},
		{"malformed through fmt", zerr.Wrap(fmt.Errorf("%w: %w", domain.ErrMalformedXML, errors.New("EOF")), "parse"), domain.FailureMalformed},
		{"malformed solution", domain.ErrMalformedSolution, domain.FailureMalformed},
		{"validation", zerr.Wrap(domain.ErrInvalidRequest, "empty target"), domain.FailureValidation},
		{"no projects", domain.ErrNoProjects, domain.FailureValidation},
		{"cancelled", zerr.Wrap(context.Canceled, "scan"), domain.FailureCancelled},
		{"deadline", context.DeadlineExceeded, domain.FailureCancelled},
		{"unknown", errors.New("boom"), domain.FailureInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Classify(tt.err))
		})
	}
}

func TestFailureCode_ExitCode(t *testing.T) {
	codes := map[domain.FailureCode]int{
		domain.FailureNotFound:   domain.ExitNotFound,
		domain.FailureMalformed:  domain.ExitMalformed,
		domain.FailureValidation: domain.ExitValidation,
		domain.FailureCancelled:  domain.ExitCancelled,
		domain.FailureInternal:   domain.ExitInternal,
	}

	seen := make(map[int]bool)
	for code, want := range codes {
		got := code.ExitCode()
		assert.Equal(t, want, got, string(code))
		assert.False(t, seen[got], "exit code %d reused", got)
		seen[got] = true
	}
}

func TestOutcome(t *testing.T) {
	ok := domain.Succeeded(&domain.AnalysisResult{})
	assert.True(t, ok.OK())

	f := domain.NewFailure(zerr.Wrap(domain.ErrNotFound, "missing solution"), "/src/x.sln")
	failed := domain.Failed(f)
	assert.False(t, failed.OK())
	assert.Equal(t, domain.FailureNotFound, failed.Failure.Code)
	assert.ErrorIs(t, failed.Failure, domain.ErrNotFound)
	assert.Contains(t, f.Error(), "not_found: missing solution")
}
