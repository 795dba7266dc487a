package domain

import (
	"path/filepath"
	"slices"
	"strings"
)

// Project is a single buildable unit.
type Project struct {
	Path             string
	Name             string
	TargetFramework  string
	TargetFrameworks []string
	References       []*PackageReference
	GlobalUsings     []GlobalUsing
	SourceFiles      []string
	Excludes         []string
}

// NewProject creates a project for the file at path.
// The name defaults to the file name without its extension.
func NewProject(path string) *Project {
	base := filepath.Base(path)
	return &Project{
		Path: path,
		Name: strings.TrimSuffix(base, filepath.Ext(base)),
	}
}

// Key returns the case-insensitive path identity of the project.
func (p *Project) Key() Key {
	return PathKey(p.Path)
}

// Dir returns the directory containing the project file.
func (p *Project) Dir() string {
	return filepath.Dir(p.Path)
}

// Targets reports whether the project builds for the given framework moniker.
// An empty moniker matches every project.
func (p *Project) Targets(framework string) bool {
	if framework == "" {
		return true
	}
	if strings.EqualFold(p.TargetFramework, framework) {
		return true
	}
	return slices.ContainsFunc(p.TargetFrameworks, func(tf string) bool {
		return strings.EqualFold(tf, framework)
	})
}

// AddExcludes appends exclude glob patterns, skipping duplicates.
func (p *Project) AddExcludes(patterns ...string) {
	for _, pattern := range patterns {
		p.Excludes = appendUnique(p.Excludes, pattern)
	}
}

// Reference returns the reference with the given package id, if any.
func (p *Project) Reference(id string) (*PackageReference, bool) {
	key := NewKey(id)
	for _, ref := range p.References {
		if ref.PackageKey() == key {
			return ref, true
		}
	}
	return nil, false
}

// ResetUsageStatus clears the usage state of every reference.
func (p *Project) ResetUsageStatus() {
	for _, ref := range p.References {
		ref.ResetUsageStatus()
	}
}
