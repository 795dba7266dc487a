package domain

import (
	"path/filepath"
	"strings"
)

// Solution is a collection of projects analysed together.
// A virtual solution is synthesised when the target has no container file.
type Solution struct {
	Path              string
	Name              string
	IsVirtual         bool
	Projects          []*Project
	CentralManagement bool
	CentralFile       string

	index map[Key]struct{}
}

// NewSolution creates a solution backed by the container file at path.
func NewSolution(path string) *Solution {
	base := filepath.Base(path)
	return &Solution{
		Path:  path,
		Name:  strings.TrimSuffix(base, filepath.Ext(base)),
		index: make(map[Key]struct{}),
	}
}

// NewVirtualSolution creates a solution for a directory or a lone project.
func NewVirtualSolution(dir string) *Solution {
	return &Solution{
		Path:      dir,
		Name:      filepath.Base(dir),
		IsVirtual: true,
		index:     make(map[Key]struct{}),
	}
}

// Key returns the case-insensitive path identity of the solution.
func (s *Solution) Key() Key {
	return PathKey(s.Path)
}

// Dir returns the directory the solution lives in.
func (s *Solution) Dir() string {
	if s.IsVirtual {
		return s.Path
	}
	return filepath.Dir(s.Path)
}

// AddProject appends p unless a project with the same path is present.
// It reports whether the project was added.
func (s *Solution) AddProject(p *Project) bool {
	if s.index == nil {
		s.index = make(map[Key]struct{}, len(s.Projects))
		for _, existing := range s.Projects {
			s.index[existing.Key()] = struct{}{}
		}
	}
	key := p.Key()
	if _, ok := s.index[key]; ok {
		return false
	}
	s.index[key] = struct{}{}
	s.Projects = append(s.Projects, p)
	return true
}

// FilterProjects keeps only the projects for which keep returns true.
func (s *Solution) FilterProjects(keep func(*Project) bool) {
	kept := s.Projects[:0]
	s.index = make(map[Key]struct{}, len(s.Projects))
	for _, p := range s.Projects {
		if keep(p) {
			kept = append(kept, p)
			s.index[p.Key()] = struct{}{}
		}
	}
	s.Projects = kept
}

// ResetUsageStatus clears the usage state of every project.
func (s *Solution) ResetUsageStatus() {
	for _, p := range s.Projects {
		p.ResetUsageStatus()
	}
}
