package domain

import (
	"slices"
	"strings"
	"time"
)

// PackageDetail is the reported view of one package reference.
type PackageDetail struct {
	ID                 string   `json:"id"`
	Version            string   `json:"version"`
	IsDirect           bool     `json:"isDirect"`
	Condition          string   `json:"condition,omitempty"`
	HasGlobalUsing     bool     `json:"hasGlobalUsing"`
	IsDevDependency    bool     `json:"isDevDependency"`
	UsageLocations     []string `json:"usageLocations,omitempty"`
	DetectedNamespaces []string `json:"detectedNamespaces,omitempty"`
}

// NewPackageDetail snapshots a reference.
func NewPackageDetail(ref *PackageReference, devDependency bool) PackageDetail {
	return PackageDetail{
		ID:                 ref.ID,
		Version:            ref.Version,
		IsDirect:           ref.IsDirect,
		Condition:          ref.Condition,
		HasGlobalUsing:     ref.HasGlobalUsing,
		IsDevDependency:    devDependency,
		UsageLocations:     slices.Clone(ref.UsageLocations),
		DetectedNamespaces: slices.Clone(ref.DetectedNamespaces),
	}
}

// ProjectReport is the per-project breakdown of an analysis.
type ProjectReport struct {
	Name            string          `json:"name"`
	Path            string          `json:"path"`
	TargetFramework string          `json:"targetFramework,omitempty"`
	SourceFiles     int             `json:"sourceFiles"`
	Used            []PackageDetail `json:"used"`
	Unused          []PackageDetail `json:"unused"`
	Ignored         []PackageDetail `json:"ignored,omitempty"`
}

// Sort orders every list by package id, ignoring case.
func (r *ProjectReport) Sort() {
	byID := func(a, b PackageDetail) int {
		return strings.Compare(strings.ToLower(a.ID), strings.ToLower(b.ID))
	}
	slices.SortFunc(r.Used, byID)
	slices.SortFunc(r.Unused, byID)
	slices.SortFunc(r.Ignored, byID)
}

// Summary holds solution-wide aggregate counts.
// Ignored references are excluded from Total.
type Summary struct {
	Projects      int     `json:"projects"`
	Total         int     `json:"total"`
	Used          int     `json:"used"`
	Unused        int     `json:"unused"`
	Ignored       int     `json:"ignored"`
	PercentUnused float64 `json:"percentUnused"`
}

// AnalysisResult is the outcome of a successful analysis run.
type AnalysisResult struct {
	Target            string          `json:"target"`
	Solution          string          `json:"solution"`
	CentralManagement bool            `json:"centralManagement"`
	CentralFile       string          `json:"centralFile,omitempty"`
	Projects          []ProjectReport `json:"projects"`
	Summary           Summary         `json:"summary"`
	Warnings          []string        `json:"warnings,omitempty"`
	Elapsed           time.Duration   `json:"-"`
}

// Summarize recomputes Summary from the project reports.
func (r *AnalysisResult) Summarize() {
	s := Summary{Projects: len(r.Projects)}
	for _, p := range r.Projects {
		s.Used += len(p.Used)
		s.Unused += len(p.Unused)
		s.Ignored += len(p.Ignored)
	}
	s.Total = s.Used + s.Unused
	if s.Total > 0 {
		s.PercentUnused = float64(s.Unused) / float64(s.Total) * 100
	}
	r.Summary = s
}

// HasUnused reports whether any project has unused references.
func (r *AnalysisResult) HasUnused() bool {
	return r.Summary.Unused > 0
}
