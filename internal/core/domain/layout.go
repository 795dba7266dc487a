package domain

import (
	"path/filepath"
	"slices"
	"strings"
)

const (
	// CentralPackagesFile is the name of the central package management declaration file.
	CentralPackagesFile = "Directory.Packages.props"

	// ConfigFileName is the name of the optional nuprune configuration file.
	ConfigFileName = "nuprune.yaml"

	// DefaultTimeoutSeconds is the analysis time budget applied when none is requested.
	DefaultTimeoutSeconds = 300
)

// ProjectExtensions lists the project file extensions understood by the loader.
var ProjectExtensions = []string{".csproj", ".fsproj", ".vbproj"}

// SolutionExtensions lists the solution container extensions, in order of preference.
var SolutionExtensions = []string{".slnx", ".sln"}

// SourceExtensions lists the source file extensions scanned for namespace usage.
var SourceExtensions = []string{".cs", ".fs", ".fsx", ".vb", ".cshtml", ".razor"}

// GeneratedSuffixes lists file name suffixes emitted by designers and source generators.
var GeneratedSuffixes = []string{
	".Designer.cs",
	".g.cs",
	".g.i.cs",
	".AssemblyInfo.cs",
	".AssemblyAttributes.cs",
	".GlobalUsings.g.cs",
	".Designer.vb",
	".Designer.fs",
}

// SkippedDirectories are never descended into during discovery or scanning.
var SkippedDirectories = []string{"bin", "obj", ".git", ".jj", ".vs", ".idea", "node_modules"}

// IsProjectFile reports whether path has a project file extension.
func IsProjectFile(path string) bool {
	return hasExt(path, ProjectExtensions)
}

// IsSolutionFile reports whether path has a solution container extension.
func IsSolutionFile(path string) bool {
	return hasExt(path, SolutionExtensions)
}

// IsSourceFile reports whether path has a scannable source extension.
func IsSourceFile(path string) bool {
	return hasExt(path, SourceExtensions)
}

// IsGeneratedFile reports whether path names a generated source file.
func IsGeneratedFile(path string) bool {
	name := filepath.Base(path)
	lower := strings.ToLower(name)
	for _, suffix := range GeneratedSuffixes {
		if strings.HasSuffix(lower, strings.ToLower(suffix)) {
			return true
		}
	}
	return false
}

// IsSkippedDirectory reports whether a directory with the given name is skipped.
func IsSkippedDirectory(name string) bool {
	return slices.ContainsFunc(SkippedDirectories, func(s string) bool {
		return strings.EqualFold(s, name)
	})
}

func hasExt(path string, exts []string) bool {
	ext := filepath.Ext(path)
	return slices.ContainsFunc(exts, func(e string) bool {
		return strings.EqualFold(e, ext)
	})
}
