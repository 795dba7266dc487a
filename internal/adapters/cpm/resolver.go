// Package cpm resolves central package management declarations.
package cpm

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/beevik/etree"
	"go.trai.ch/nuprune/internal/adapters/fs"
	"go.trai.ch/nuprune/internal/adapters/msbuild"
	"go.trai.ch/nuprune/internal/core/domain"
	"go.trai.ch/nuprune/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	thisFileDirectory = "$(MSBuildThisFileDirectory)"
	enabledProperty   = "ManagePackageVersionsCentrally"
)

var fileAbove = regexp.MustCompile(
	`(?i)^\$\(\[MSBuild\]::GetPathOfFileAbove\(\s*'?([^,')]+?)'?\s*(?:,\s*'?(.*?)'?\s*)?\)\)$`,
)

var _ ports.CentralPackageResolver = (*Resolver)(nil)

// Resolver reads Directory.Packages.props files and their imports.
type Resolver struct {
	fs     fs.FileSystem
	hasher ports.Hasher
	logger ports.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(fsys fs.FileSystem, hasher ports.Hasher, logger ports.Logger) *Resolver {
	return &Resolver{fs: fsys, hasher: hasher, logger: logger}
}

// Find searches dir and its ancestors for the declaration file.
func (r *Resolver) Find(dir string) (string, bool) {
	return r.findFrom(filepath.Clean(dir), domain.CentralPackagesFile)
}

func (r *Resolver) findFrom(dir, name string) (string, bool) {
	for {
		candidate := filepath.Join(dir, name)
		if info, err := r.fs.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Resolve finds the declaration file governing dir and merges it with its imports.
// Without a declaration file the result is disabled and empty.
func (r *Resolver) Resolve(ctx context.Context, dir string) (*domain.CentralPackages, error) {
	file, ok := r.Find(dir)
	if !ok {
		return domain.NewCentralPackages(), nil
	}
	return r.ResolveFile(ctx, file)
}

// LookupVersion returns the version declared for id in the files governing dir,
// whether or not central management is enabled.
func (r *Resolver) LookupVersion(ctx context.Context, dir, id string) (string, bool, error) {
	central, err := r.Resolve(ctx, dir)
	if err != nil {
		return "", false, err
	}
	v, ok := central.Lookup(id)
	return v, ok, nil
}

// frame is one file on the import stack.
type frame struct {
	path    string
	root    *etree.Element
	imports []string
	next    int
}

// ResolveFile merges the declaration file at path with everything it imports.
//
// Imports are processed depth-first before the importing file's own entries,
// and the last occurrence of a package id wins. Files already visited during
// this call end their branch without error.
func (r *Resolver) ResolveFile(ctx context.Context, path string) (*domain.CentralPackages, error) {
	path = filepath.Clean(path)
	result := domain.NewCentralPackages()
	result.File = path

	visited := map[domain.Key]struct{}{domain.PathKey(path): {}}
	var hashes []uint64

	root, err := r.open(ctx, path, &hashes)
	if err != nil {
		return nil, err
	}
	stack := []*frame{{path: path, root: root, imports: r.imports(path, root)}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.next < len(top.imports) {
			next := top.imports[top.next]
			top.next++

			key := domain.PathKey(next)
			if _, seen := visited[key]; seen {
				r.logger.Debug(fmt.Sprintf("import cycle at %s, skipping", next))
				continue
			}
			visited[key] = struct{}{}

			child, err := r.open(ctx, next, &hashes)
			if errors.Is(err, domain.ErrNotFound) {
				r.logger.Warn(fmt.Sprintf("%s imports missing file %s", top.path, next))
				continue
			}
			if err != nil {
				return nil, err
			}
			stack = append(stack, &frame{path: next, root: child, imports: r.imports(next, child)})
			continue
		}

		merge(result, top.path, top.root)
		result.Files = append(result.Files, top.path)
		stack = stack[:len(stack)-1]
	}

	result.Fingerprint = r.hasher.Combine(hashes...)
	return result, nil
}

func (r *Resolver) open(ctx context.Context, path string, hashes *[]uint64) (*etree.Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := r.fs.ReadFile(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(domain.ErrNotFound, "central package file does not exist"), "path", path)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read central package file"), "path", path)
	}
	*hashes = append(*hashes, r.hasher.HashBytes(data))
	return msbuild.ParseDocument(path, data)
}

// imports returns the resolved paths of every Import element in root, in order.
func (r *Resolver) imports(path string, root *etree.Element) []string {
	dir := filepath.Dir(path)
	var out []string
	for _, el := range msbuild.Children(root, "Import") {
		raw := msbuild.Attr(el, "Project")
		if raw == "" {
			continue
		}
		resolved, ok := r.resolveImport(dir, raw)
		if !ok {
			r.logger.Warn(fmt.Sprintf("%s: cannot resolve import %q, skipping", path, raw))
			continue
		}
		out = append(out, resolved)
	}
	return out
}

func (r *Resolver) resolveImport(dir, raw string) (string, bool) {
	if m := fileAbove.FindStringSubmatch(raw); m != nil {
		start := filepath.Dir(dir)
		if m[2] != "" {
			expanded, ok := expand(dir, m[2])
			if !ok {
				return "", false
			}
			start = expanded
		}
		return r.findFrom(start, strings.TrimSpace(m[1]))
	}

	expanded, ok := expand(dir, raw)
	if !ok {
		return "", false
	}
	return expanded, true
}

// expand resolves raw against dir, substituting $(MSBuildThisFileDirectory).
// Any other property reference cannot be evaluated.
func expand(dir, raw string) (string, bool) {
	raw = strings.ReplaceAll(raw, thisFileDirectory, dir+"/")
	if strings.Contains(raw, "$(") {
		return "", false
	}
	raw = filepath.FromSlash(strings.ReplaceAll(raw, `\`, "/"))
	if !filepath.IsAbs(raw) {
		raw = filepath.Join(dir, raw)
	}
	return filepath.Clean(raw), true
}

// merge applies the file's properties and PackageVersion items in document order.
func merge(result *domain.CentralPackages, path string, root *etree.Element) {
	for _, group := range root.ChildElements() {
		switch {
		case msbuild.Is(group, "PropertyGroup"):
			for _, prop := range msbuild.Children(group, enabledProperty) {
				result.Enabled = strings.EqualFold(strings.TrimSpace(prop.Text()), "true")
			}
		case msbuild.Is(group, "ItemGroup"):
			for _, item := range msbuild.Children(group, "PackageVersion") {
				id := msbuild.Attr(item, "Include")
				if id == "" {
					id = msbuild.Attr(item, "Update")
				}
				result.Set(id, msbuild.AttrOrChild(item, "Version"), path)
			}
		}
	}
}
