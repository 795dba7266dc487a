package domain

import "go.trai.ch/zerr"

var (
	// ErrNotFound is returned when a solution, project, or declaration file does not exist.
	ErrNotFound = zerr.New("file not found")

	// ErrMalformedXML is returned when a project, solution, or central package file cannot be parsed.
	ErrMalformedXML = zerr.New("malformed xml")

	// ErrMalformedSolution is returned when a legacy solution file contains an unparseable project line.
	ErrMalformedSolution = zerr.New("malformed solution file")

	// ErrInvalidReference is returned when a package reference lacks an id or a version.
	ErrInvalidReference = zerr.New("invalid package reference")

	// ErrUnsupportedTarget is returned when the analysis target is neither a solution, a project, nor a directory.
	ErrUnsupportedTarget = zerr.New("unsupported analysis target")

	// ErrNoProjects is returned when a target resolves to zero projects.
	ErrNoProjects = zerr.New("no projects found")

	// ErrInvalidRequest is returned when an analysis request fails validation.
	ErrInvalidRequest = zerr.New("invalid analysis request")

	// ErrInvalidConfig is returned when the configuration file has invalid values.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrInvalidPattern is returned when an exclude glob cannot be compiled.
	ErrInvalidPattern = zerr.New("invalid glob pattern")

	// ErrAnalysisFailed is returned when the analysis run fails for an unexpected reason.
	ErrAnalysisFailed = zerr.New("analysis failed")
)
