package domain

import (
	"context"
	"errors"
)

// FailureCode is the machine-readable kind of a failed analysis.
type FailureCode string

const (
	// FailureNotFound means a required file was missing.
	FailureNotFound FailureCode = "not_found"
	// FailureMalformed means a file could not be parsed.
	FailureMalformed FailureCode = "malformed"
	// FailureValidation means the request or configuration was rejected.
	FailureValidation FailureCode = "validation"
	// FailureCancelled means the run was cancelled or ran out of time.
	FailureCancelled FailureCode = "cancelled"
	// FailureInternal means an unexpected error occurred.
	FailureInternal FailureCode = "internal"
)

// Process exit codes.
const (
	ExitOK         = 0
	ExitUnused     = 1
	ExitNotFound   = 2
	ExitMalformed  = 3
	ExitValidation = 4
	ExitCancelled  = 5
	ExitInternal   = 70
)

// ExitCode maps the failure kind to a process exit code.
func (c FailureCode) ExitCode() int {
	switch c {
	case FailureNotFound:
		return ExitNotFound
	case FailureMalformed:
		return ExitMalformed
	case FailureValidation:
		return ExitValidation
	case FailureCancelled:
		return ExitCancelled
	default:
		return ExitInternal
	}
}

// Classify maps an error to its failure kind.
func Classify(err error) FailureCode {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return FailureCancelled
	case errors.Is(err, ErrNotFound):
		return FailureNotFound
	case errors.Is(err, ErrMalformedXML), errors.Is(err, ErrMalformedSolution):
		return FailureMalformed
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrInvalidConfig),
		errors.Is(err, ErrInvalidPattern),
		errors.Is(err, ErrInvalidReference),
		errors.Is(err, ErrUnsupportedTarget),
		errors.Is(err, ErrNoProjects):
		return FailureValidation
	default:
		return FailureInternal
	}
}

// Failure describes why an analysis run did not produce a result.
type Failure struct {
	Code    FailureCode `json:"code"`
	Message string      `json:"message"`
	Path    string      `json:"path,omitempty"`
	Err     error       `json:"-"`
}

// NewFailure classifies err into a Failure.
func NewFailure(err error, path string) *Failure {
	return &Failure{
		Code:    Classify(err),
		Message: err.Error(),
		Path:    path,
		Err:     err,
	}
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return string(f.Code) + ": " + f.Message
}

// Unwrap returns the underlying error.
func (f *Failure) Unwrap() error {
	return f.Err
}

// Outcome is the discriminated result of an analysis run.
// Exactly one of Result and Failure is set.
type Outcome struct {
	Result  *AnalysisResult
	Failure *Failure
}

// Succeeded creates a successful outcome.
func Succeeded(r *AnalysisResult) Outcome {
	return Outcome{Result: r}
}

// Failed creates a failed outcome.
func Failed(f *Failure) Outcome {
	return Outcome{Failure: f}
}

// OK reports whether the outcome carries a result.
func (o Outcome) OK() bool {
	return o.Failure == nil && o.Result != nil
}
