package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// PackageReference is a dependency declared inside one project.
// It starts unused; only the project's owner mutates its usage state.
type PackageReference struct {
	ID                 string
	Version            string
	ProjectPath        string
	IsDirect           bool
	Condition          string
	HasGlobalUsing     bool
	PrivateAssets      bool
	IsUsed             bool
	UsageLocations     []string
	DetectedNamespaces []string
}

// NewPackageReference creates a direct reference after validating id and version.
func NewPackageReference(id, version, projectPath string) (*PackageReference, error) {
	id = strings.TrimSpace(id)
	version = strings.TrimSpace(version)
	if id == "" {
		return nil, zerr.With(zerr.Wrap(ErrInvalidReference, "package id is required"), "project", projectPath)
	}
	if version == "" {
		return nil, zerr.With(zerr.Wrap(ErrInvalidReference, "package version is required"), "package", id)
	}
	return &PackageReference{
		ID:          id,
		Version:     version,
		ProjectPath: projectPath,
		IsDirect:    true,
	}, nil
}

// Key returns the case-insensitive identity of the reference: id, version and project path.
func (r *PackageReference) Key() Key {
	return NewKey(r.ID + "@" + r.Version + "|" + PathKey(r.ProjectPath).String())
}

// PackageKey returns the case-insensitive package id.
func (r *PackageReference) PackageKey() Key {
	return NewKey(r.ID)
}

// Equal reports whether both references share an identity.
func (r *PackageReference) Equal(other *PackageReference) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.Key() == other.Key()
}

// MarkAsUsed records a usage observed in file through namespace.
// Repeated calls with the same file or namespace do not add duplicates.
func (r *PackageReference) MarkAsUsed(file, namespace string) {
	r.IsUsed = true
	r.UsageLocations = appendUnique(r.UsageLocations, file)
	r.DetectedNamespaces = appendUnique(r.DetectedNamespaces, namespace)
}

// ResetUsageStatus returns the reference to its initial unused state.
func (r *PackageReference) ResetUsageStatus() {
	r.IsUsed = false
	r.UsageLocations = nil
	r.DetectedNamespaces = nil
}

func appendUnique(values []string, v string) []string {
	if strings.TrimSpace(v) == "" {
		return values
	}
	if slices.ContainsFunc(values, func(existing string) bool {
		return strings.EqualFold(existing, v)
	}) {
		return values
	}
	return append(values, v)
}
