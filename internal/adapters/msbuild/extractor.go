package msbuild

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/nuprune/internal/adapters/fs"
	"go.trai.ch/nuprune/internal/core/domain"
	"go.trai.ch/nuprune/internal/core/ports"
)

var _ ports.ReferenceExtractor = (*Extractor)(nil)

// Extractor implements ports.ReferenceExtractor.
type Extractor struct {
	fs fs.FileSystem
}

// NewExtractor creates a new Extractor.
func NewExtractor(fsys fs.FileSystem) *Extractor {
	return &Extractor{fs: fsys}
}

// Extract reads the package references and global usings of the project at path.
//
// An explicit Version or VersionOverride always wins. A reference without one
// takes its version from central; when central has no entry the reference is
// dropped and a warning is returned. Update-only items are ignored.
func (e *Extractor) Extract(ctx context.Context, path string, central *domain.CentralPackages) (*domain.Extraction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := readFile(e.fs, path, "failed to read project file")
	if err != nil {
		return nil, err
	}
	pf, err := ParseProject(path, data)
	if err != nil {
		return nil, err
	}

	out := &domain.Extraction{}

	globals := make(map[domain.Key]struct{}, len(pf.Usings))
	for _, u := range pf.Usings {
		if u.Include == "" {
			continue
		}
		gu := domain.GlobalUsing{PackageID: u.Include, ProjectPath: path, Condition: u.Condition}
		globals[domain.NewKey(u.Include)] = struct{}{}
		out.GlobalUsings = append(out.GlobalUsings, gu)
	}

	seen := make(map[domain.Key]struct{}, len(pf.References))
	for _, item := range pf.References {
		if item.Include == "" {
			continue
		}

		version := firstNonEmpty(item.VersionOverride, item.Version)
		if version == "" {
			v, ok := central.Lookup(item.Include)
			if !ok {
				out.Warnings = append(out.Warnings, fmt.Sprintf(
					"%s: package %s has no version and no central entry, skipping", path, item.Include))
				continue
			}
			version = v
		}

		ref, err := domain.NewPackageReference(item.Include, version, path)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[ref.Key()]; dup {
			continue
		}
		seen[ref.Key()] = struct{}{}

		ref.Condition = item.Condition
		ref.PrivateAssets = strings.EqualFold(item.PrivateAssets, "all")
		if _, ok := globals[ref.PackageKey()]; ok {
			ref.HasGlobalUsing = true
		}
		out.References = append(out.References, ref)
	}

	return out, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
