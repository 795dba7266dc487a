// Package app implements the application layer for nuprune.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"slices"
	"time"

	"go.trai.ch/nuprune/internal/adapters/fs"         //nolint:depguard // Wired in app layer
	"go.trai.ch/nuprune/internal/adapters/namespaces" //nolint:depguard // Wired in app layer
	"go.trai.ch/nuprune/internal/core/domain"
	"go.trai.ch/nuprune/internal/core/ports"
	"go.trai.ch/nuprune/internal/engine/analyzer"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// DefaultTimeout bounds a run when neither the request nor the configuration sets one.
const DefaultTimeout = domain.DefaultTimeoutSeconds * time.Second

// Request selects what to analyze and how. Zero values defer to the
// configuration file, then to the built-in defaults.
type Request struct {
	Target                  string
	Exclude                 []string
	TargetFramework         string
	Timeout                 time.Duration
	Parallelism             int
	DevDependencies         domain.DevDependencyPolicy
	GlobalUsingCountsAsUsed *bool
	StrictPrefixes          *bool
	ConfigPath              string
}

// Validate rejects requests that cannot be run.
func (r *Request) Validate() error {
	if r.Target == "" {
		return zerr.Wrap(domain.ErrInvalidRequest, "target path is required")
	}
	if r.Timeout < 0 {
		return zerr.With(zerr.Wrap(domain.ErrInvalidRequest, "timeout must not be negative"), "timeout", r.Timeout.String())
	}
	if r.Parallelism < 0 {
		return zerr.With(zerr.Wrap(domain.ErrInvalidRequest, "parallelism must not be negative"), "parallelism", r.Parallelism)
	}
	if r.DevDependencies != "" && !r.DevDependencies.Valid() {
		return zerr.With(zerr.Wrap(domain.ErrInvalidRequest, "unknown development dependency policy"),
			"policy", string(r.DevDependencies))
	}
	if _, err := fs.NewFilter(r.Exclude); err != nil {
		return err
	}
	return nil
}

// App runs analyses over solutions.
type App struct {
	loader    ports.SolutionLoader
	extractor ports.ReferenceExtractor
	central   ports.CentralPackageResolver
	analyzer  *analyzer.Analyzer
	resolver  ports.NamespaceResolver
	config    ports.ConfigLoader
	fs        fs.FileSystem
	logger    ports.Logger
	tracer    ports.Tracer
	watchers  ports.WatcherFactory
}

// New creates a new App instance.
func New(
	loader ports.SolutionLoader,
	extractor ports.ReferenceExtractor,
	central ports.CentralPackageResolver,
	engine *analyzer.Analyzer,
	resolver ports.NamespaceResolver,
	config ports.ConfigLoader,
	fsys fs.FileSystem,
	logger ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		loader:    loader,
		extractor: extractor,
		central:   central,
		analyzer:  engine,
		resolver:  resolver,
		config:    config,
		fs:        fsys,
		logger:    logger,
		tracer:    tracer,
	}
}

// WithWatcherFactory sets the factory used by Watch.
func (a *App) WithWatcherFactory(factory ports.WatcherFactory) *App {
	a.watchers = factory
	return a
}

// session is a loaded solution together with the settings it was loaded with.
type session struct {
	target   string
	kind     targetKind
	settings *domain.Settings
	policy   analyzer.Policy
	timeout  time.Duration
	parallel int
	solution *domain.Solution
	warnings []string
	centrals map[string]*domain.CentralPackages
}

// Analyze loads the target and reports which package references are unused.
// It never returns an error: every failure is reported through the outcome.
func (a *App) Analyze(ctx context.Context, req Request) (outcome domain.Outcome) {
	started := time.Now()
	path := req.Target
	defer a.recoverPanic(&outcome, &path)

	s, err := a.configure(req)
	if err != nil {
		return fail(ctx, err, path)
	}
	path = s.target

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := a.prepare(ctx, s); err != nil {
		return fail(ctx, err, path)
	}
	result, err := a.run(ctx, s, started)
	if err != nil {
		return fail(ctx, err, path)
	}
	return domain.Succeeded(result)
}

// recoverPanic turns a panic into an internal failure for path.
func (a *App) recoverPanic(outcome *domain.Outcome, path *string) {
	if r := recover(); r != nil {
		a.logger.Debug(string(debug.Stack()))
		err := zerr.Wrap(domain.ErrAnalysisFailed, fmt.Sprintf("panic: %v", r))
		*outcome = domain.Failed(domain.NewFailure(err, *path))
	}
}

// fail classifies err, reporting any error raised after ctx ended as cancelled.
func fail(ctx context.Context, err error, path string) domain.Outcome {
	f := domain.NewFailure(err, path)
	if ctx.Err() != nil {
		f.Code = domain.FailureCancelled
	}
	return domain.Failed(f)
}

// configure validates req and merges it with the configuration file.
func (a *App) configure(req Request) (*session, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	target, err := filepath.Abs(req.Target)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidRequest, "failed to resolve target path"), "path", req.Target)
	}

	kind, err := a.targetKind(target)
	if err != nil {
		return nil, err
	}

	settings, err := a.loadSettings(req, target, kind)
	if err != nil {
		return nil, err
	}
	s := merge(req, settings)
	s.target = target
	s.kind = kind
	return s, nil
}

// prepare loads the solution and extracts package references for every project.
func (a *App) prepare(ctx context.Context, s *session) error {
	if err := a.load(ctx, s); err != nil {
		return err
	}
	return a.extract(ctx, s)
}

type targetKind int

const (
	kindDirectory targetKind = iota
	kindSolution
	kindProject
)

func (a *App) targetKind(target string) (targetKind, error) {
	if _, err := a.fs.Stat(target); err != nil {
		return 0, zerr.With(zerr.Wrap(domain.ErrNotFound, "analysis target does not exist"), "path", target)
	}
	isDir, err := a.fs.IsDir(target)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to inspect analysis target"), "path", target)
	}
	switch {
	case isDir:
		return kindDirectory, nil
	case domain.IsSolutionFile(target):
		return kindSolution, nil
	case domain.IsProjectFile(target):
		return kindProject, nil
	default:
		return 0, zerr.With(zerr.Wrap(domain.ErrUnsupportedTarget, "expected a solution, a project, or a directory"), "path", target)
	}
}

func (a *App) loadSettings(req Request, target string, kind targetKind) (*domain.Settings, error) {
	if req.ConfigPath != "" {
		settings, err := a.config.LoadFile(req.ConfigPath)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to load configuration")
		}
		return settings, nil
	}

	dir := target
	if kind != kindDirectory {
		dir = filepath.Dir(target)
	}
	settings, err := a.config.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return settings, nil
}

// merge overlays the request on the configured settings.
func merge(req Request, settings *domain.Settings) *session {
	merged := *settings
	merged.Exclude = append(slices.Clone(settings.Exclude), req.Exclude...)
	if req.TargetFramework != "" {
		merged.TargetFramework = req.TargetFramework
	}
	if req.DevDependencies != "" {
		merged.DevDependencies = req.DevDependencies
	}
	if req.GlobalUsingCountsAsUsed != nil {
		merged.GlobalUsingCountsAsUsed = req.GlobalUsingCountsAsUsed
	}
	if req.StrictPrefixes != nil {
		merged.StrictPrefixes = req.StrictPrefixes
	}
	if req.Timeout > 0 {
		merged.Timeout = req.Timeout
	}
	if req.Parallelism > 0 {
		merged.Parallelism = req.Parallelism
	}

	timeout := merged.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &session{
		settings: &merged,
		policy:   analyzer.PolicyFromSettings(&merged),
		timeout:  timeout,
		parallel: merged.Parallelism,
	}
}

// load reads the solution for s.target and applies the project filters.
func (a *App) load(ctx context.Context, s *session) error {
	ctx, span := a.tracer.Start(ctx, "load", ports.WithAttribute("nuprune.target", s.target))
	defer span.End()

	var (
		sln *domain.Solution
		err error
	)
	switch s.kind {
	case kindSolution:
		sln, err = a.loader.LoadSolution(ctx, s.target)
	case kindProject:
		sln, err = a.loader.LoadProject(ctx, s.target)
	default:
		sln, err = a.loader.Discover(ctx, s.target)
	}
	if err != nil {
		span.RecordError(err)
		return err
	}

	if fw := s.settings.TargetFramework; fw != "" {
		sln.FilterProjects(func(p *domain.Project) bool { return p.Targets(fw) })
		if len(sln.Projects) == 0 {
			err := zerr.With(zerr.Wrap(domain.ErrNoProjects, "no project targets the requested framework"), "framework", fw)
			span.RecordError(err)
			return err
		}
	}
	if len(sln.Projects) == 0 {
		err := zerr.With(zerr.Wrap(domain.ErrNoProjects, "solution contains no projects"), "path", s.target)
		span.RecordError(err)
		return err
	}

	for _, p := range sln.Projects {
		p.AddExcludes(s.settings.Exclude...)
	}
	span.SetAttribute("nuprune.projects", len(sln.Projects))
	a.logger.Debug(fmt.Sprintf("loaded %d projects from %s", len(sln.Projects), sln.Name))
	s.solution = sln
	return nil
}

// extract resolves central versions and reads the package references of
// every project concurrently.
func (a *App) extract(ctx context.Context, s *session) error {
	ctx, span := a.tracer.Start(ctx, "extract")
	defer span.End()

	projects := s.solution.Projects
	extractions := make([]*domain.Extraction, len(projects))
	centrals := make([]*domain.CentralPackages, len(projects))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism(s.parallel))
	for i, p := range projects {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			central, err := a.central.Resolve(gctx, p.Dir())
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to resolve central package versions"), "project", p.Path)
			}
			ex, err := a.extractor.Extract(gctx, p.Path, central.VersionMap())
			if err != nil {
				return err
			}
			centrals[i] = central
			extractions[i] = ex
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return err
	}
	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		return err
	}

	s.warnings = s.warnings[:0]
	s.centrals = make(map[string]*domain.CentralPackages)
	for i, p := range projects {
		extractions[i].ApplyTo(p)
		for _, w := range extractions[i].Warnings {
			a.logger.Warn(w)
			s.warnings = append(s.warnings, w)
		}
		c := centrals[i]
		if c.File != "" {
			s.centrals[c.File] = c
		}
		if c.Enabled && !s.solution.CentralManagement {
			s.solution.CentralManagement = true
			s.solution.CentralFile = c.File
		}
	}
	return nil
}

// run analyzes the loaded solution and builds the result.
func (a *App) run(ctx context.Context, s *session, started time.Time) (*domain.AnalysisResult, error) {
	engine := a.analyzer.WithResolver(namespaces.WithSettings(a.resolver, s.settings))
	reports, err := engine.AnalyzeSolution(ctx, s.solution, s.policy, s.parallel)
	if err != nil {
		return nil, err
	}

	result := &domain.AnalysisResult{
		Target:            s.target,
		Solution:          s.solution.Name,
		CentralManagement: s.solution.CentralManagement,
		CentralFile:       s.solution.CentralFile,
		Projects:          reports,
		Warnings:          slices.Clone(s.warnings),
	}
	result.Summarize()
	result.Elapsed = time.Since(started)
	a.logger.Debug(fmt.Sprintf("analyzed %d packages in %s", result.Summary.Total, result.Elapsed.Round(time.Millisecond)))
	return result, nil
}

// parallelism returns n, or the number of CPUs when n is not positive.
func parallelism(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}
