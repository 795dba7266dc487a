// Package msbuild loads solutions and project files into the domain model.
package msbuild

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/nuprune/internal/adapters/fs"
	"go.trai.ch/nuprune/internal/core/domain"
	"go.trai.ch/nuprune/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SolutionLoader = (*Loader)(nil)

// Loader implements ports.SolutionLoader.
type Loader struct {
	fs     fs.FileSystem
	walker *fs.Walker
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(fsys fs.FileSystem, walker *fs.Walker, logger ports.Logger) *Loader {
	return &Loader{fs: fsys, walker: walker, logger: logger}
}

// LoadSolution parses the container at path and loads every listed project.
// Listed projects that no longer exist on disk are skipped with a warning.
func (l *Loader) LoadSolution(ctx context.Context, path string) (*domain.Solution, error) {
	data, err := readFile(l.fs, path, "failed to read solution file")
	if err != nil {
		return nil, err
	}

	var entries []SolutionEntry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".slnx":
		entries, err = ParseXMLSolution(path, data)
	case ".sln":
		entries, err = ParseLegacySolution(path, data)
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedTarget, "not a solution file"), "path", path)
	}
	if err != nil {
		return nil, err
	}

	sln := domain.NewSolution(path)
	dir := filepath.Dir(path)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		projectPath := filepath.Join(dir, filepath.FromSlash(entry.Path))
		project, err := l.loadProject(projectPath)
		if errors.Is(err, domain.ErrNotFound) {
			l.logger.Warn(fmt.Sprintf("project %s listed in %s does not exist, skipping", entry.Path, filepath.Base(path)))
			continue
		}
		if err != nil {
			return nil, err
		}
		sln.AddProject(project)
	}
	return sln, nil
}

// LoadProject wraps the project at path in a virtual solution rooted at its directory.
func (l *Loader) LoadProject(ctx context.Context, path string) (*domain.Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	project, err := l.loadProject(path)
	if err != nil {
		return nil, err
	}
	sln := domain.NewVirtualSolution(filepath.Dir(path))
	sln.Name = project.Name
	sln.AddProject(project)
	return sln, nil
}

// Discover loads the solution found directly in dir, preferring .slnx over .sln.
// Without one, every project file below dir forms a virtual solution.
func (l *Loader) Discover(ctx context.Context, dir string) (*domain.Solution, error) {
	dir = filepath.Clean(dir)
	if ok, err := l.fs.IsDir(dir); err != nil || !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrNotFound, "directory does not exist"), "path", dir)
	}

	if solution, ok := l.findSolution(dir); ok {
		l.logger.Debug("using solution " + solution)
		return l.LoadSolution(ctx, solution)
	}

	projects, err := l.walker.ProjectFiles(ctx, dir)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoProjects, "no project files found"), "path", dir)
	}

	sln := domain.NewVirtualSolution(dir)
	for _, path := range projects {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		project, err := l.loadProject(path)
		if err != nil {
			return nil, err
		}
		sln.AddProject(project)
	}
	return sln, nil
}

// findSolution returns the preferred solution file located directly in dir.
func (l *Loader) findSolution(dir string) (string, bool) {
	found := make(map[string][]string)
	_ = l.fs.WalkDir(dir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // unreadable entries are skipped
		}
		if d.IsDir() {
			if path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		found[ext] = append(found[ext], path)
		return nil
	})

	for _, ext := range domain.SolutionExtensions {
		candidates := found[ext]
		if len(candidates) == 0 {
			continue
		}
		slices.Sort(candidates)
		if len(candidates) > 1 {
			l.logger.Warn(fmt.Sprintf("found %d %s files in %s, using %s",
				len(candidates), ext, dir, filepath.Base(candidates[0])))
		}
		return candidates[0], true
	}
	return "", false
}

func (l *Loader) loadProject(path string) (*domain.Project, error) {
	data, err := readFile(l.fs, path, "failed to read project file")
	if err != nil {
		return nil, err
	}
	pf, err := ParseProject(path, data)
	if err != nil {
		return nil, err
	}

	project := domain.NewProject(path)
	if pf.AssemblyName != "" {
		project.Name = pf.AssemblyName
	}
	project.TargetFrameworks = pf.TargetFrameworks
	project.TargetFramework = pf.TargetFramework()
	return project, nil
}

// readFile reads path, mapping a missing file to domain.ErrNotFound.
func readFile(fsys fs.FileSystem, path, msg string) ([]byte, error) {
	data, err := fsys.ReadFile(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(domain.ErrNotFound, msg), "path", path)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, msg), "path", path)
	}
	return data, nil
}
