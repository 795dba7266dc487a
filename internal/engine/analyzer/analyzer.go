// Package analyzer decides which package references of a project are used.
package analyzer

import (
	"context"
	"runtime"

	"go.trai.ch/nuprune/internal/core/domain"
	"go.trai.ch/nuprune/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Analyzer scans project sources and records package usage.
type Analyzer struct {
	scanner    ports.SourceScanner
	discoverer ports.SourceDiscoverer
	resolver   ports.NamespaceResolver
	tracer     ports.Tracer
}

// New creates a new Analyzer.
func New(
	scanner ports.SourceScanner,
	discoverer ports.SourceDiscoverer,
	resolver ports.NamespaceResolver,
	tracer ports.Tracer,
) *Analyzer {
	return &Analyzer{
		scanner:    scanner,
		discoverer: discoverer,
		resolver:   resolver,
		tracer:     tracer,
	}
}

// WithResolver returns a copy of the analyzer using resolver for aliases and
// development dependency detection.
func (a *Analyzer) WithResolver(resolver ports.NamespaceResolver) *Analyzer {
	clone := *a
	clone.resolver = resolver
	return &clone
}

// AnalyzeProject marks the references of project that its sources use.
//
// Source files are discovered when project.SourceFiles is nil. Usage is
// buffered per project and applied once every file has been scanned, so a
// failed or cancelled scan leaves the references untouched.
func (a *Analyzer) AnalyzeProject(ctx context.Context, project *domain.Project, policy Policy) error {
	ctx, span := a.tracer.Start(ctx, "analyze "+project.Name,
		ports.WithAttribute("nuprune.project", project.Path))
	defer span.End()

	if project.SourceFiles == nil {
		sources, err := a.discoverer.Sources(ctx, project.Dir(), project.Excludes)
		if err != nil {
			span.RecordError(err)
			return zerr.With(zerr.Wrap(err, "failed to enumerate sources"), "project", project.Path)
		}
		project.SourceFiles = sources
	}
	span.SetAttribute("nuprune.files", len(project.SourceFiles))

	m := newMatcher(project.References, a.resolver, policy.StrictPrefixes)
	acc := domain.NewUsageAccumulator(project.Path)

	if policy.GlobalUsingCountsAsUsed {
		a.recordGlobalUsings(project, m, acc)
	}

	for _, file := range project.SourceFiles {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			return err
		}
		names, err := a.scanner.Scan(ctx, file)
		if err != nil {
			span.RecordError(err)
			return zerr.With(zerr.Wrap(err, "failed to scan source file"), "project", project.Path)
		}
		for _, ns := range names {
			for _, key := range m.match(ns) {
				acc.Record(domain.UsageEvent{Package: key, File: file, Namespace: ns, Reason: domain.ReasonSource})
			}
		}
	}

	acc.Apply(project)
	return nil
}

// recordGlobalUsings treats each global using as a namespace import made by
// the project file, and each reference flagged with one as used outright.
func (a *Analyzer) recordGlobalUsings(project *domain.Project, m *matcher, acc *domain.UsageAccumulator) {
	for _, ref := range project.References {
		if ref.HasGlobalUsing {
			acc.Record(domain.UsageEvent{
				Package:   ref.PackageKey(),
				File:      project.Path,
				Namespace: ref.ID,
				Reason:    domain.ReasonGlobalUsing,
			})
		}
	}
	for _, gu := range project.GlobalUsings {
		for _, key := range m.match(gu.PackageID) {
			acc.Record(domain.UsageEvent{
				Package:   key,
				File:      project.Path,
				Namespace: gu.PackageID,
				Reason:    domain.ReasonGlobalUsing,
			})
		}
	}
}

// AnalyzeSolution analyzes every project of sln concurrently, at most
// parallelism at a time, and returns their reports in solution order.
// A parallelism of zero or less uses the number of CPUs.
func (a *Analyzer) AnalyzeSolution(
	ctx context.Context,
	sln *domain.Solution,
	policy Policy,
	parallelism int,
) ([]domain.ProjectReport, error) {
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	reports := make([]domain.ProjectReport, len(sln.Projects))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i, project := range sln.Projects {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := a.AnalyzeProject(gctx, project, policy); err != nil {
				return err
			}
			reports[i] = a.Report(project, policy)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return reports, nil
}

// Report classifies the references of an analyzed project.
func (a *Analyzer) Report(project *domain.Project, policy Policy) domain.ProjectReport {
	report := domain.ProjectReport{
		Name:            project.Name,
		Path:            project.Path,
		TargetFramework: project.TargetFramework,
		SourceFiles:     len(project.SourceFiles),
		Used:            []domain.PackageDetail{},
		Unused:          []domain.PackageDetail{},
	}

	for _, ref := range project.References {
		dev := ref.PrivateAssets || a.resolver.IsDevDependency(ref.ID)
		detail := domain.NewPackageDetail(ref, dev)

		switch {
		case domain.MatchesAny(policy.Ignore, ref.ID):
			report.Ignored = append(report.Ignored, detail)
		case ref.IsUsed:
			report.Used = append(report.Used, detail)
		case dev && policy.DevDependencies == domain.DevDependenciesIgnore:
			report.Ignored = append(report.Ignored, detail)
		case dev && policy.DevDependencies == domain.DevDependenciesUsed:
			report.Used = append(report.Used, detail)
		default:
			report.Unused = append(report.Unused, detail)
		}
	}

	report.Sort()
	return report
}
