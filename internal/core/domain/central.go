package domain

import (
	"maps"
	"slices"
	"strings"
)

// CentralVersion is one package version declared in a central package file.
type CentralVersion struct {
	ID      string
	Version string
	File    string
}

// CentralPackages is the merged outcome of central package management resolution.
// Versions are keyed by case-insensitive package id.
type CentralPackages struct {
	Enabled     bool
	File        string
	Files       []string
	Versions    map[Key]CentralVersion
	Fingerprint string
}

// NewCentralPackages creates an empty, disabled resolution.
func NewCentralPackages() *CentralPackages {
	return &CentralPackages{Versions: make(map[Key]CentralVersion)}
}

// Set records a version for id, replacing any earlier declaration.
// Blank ids and versions are ignored.
func (c *CentralPackages) Set(id, version, file string) {
	id = strings.TrimSpace(id)
	version = strings.TrimSpace(version)
	if id == "" || version == "" {
		return
	}
	c.Versions[NewKey(id)] = CentralVersion{ID: id, Version: version, File: file}
}

// Lookup returns the version declared for id, ignoring case.
func (c *CentralPackages) Lookup(id string) (string, bool) {
	if c == nil {
		return "", false
	}
	v, ok := c.Versions[NewKey(id)]
	if !ok {
		return "", false
	}
	return v.Version, true
}

// Len returns the number of declared versions.
func (c *CentralPackages) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Versions)
}

// IDs returns the declared package ids in sorted order.
func (c *CentralPackages) IDs() []string {
	ids := make([]string, 0, len(c.Versions))
	for v := range maps.Values(c.Versions) {
		ids = append(ids, v.ID)
	}
	slices.Sort(ids)
	return ids
}

// VersionMap returns the versions to apply to project references.
// A disabled resolution applies nothing.
func (c *CentralPackages) VersionMap() *CentralPackages {
	if c == nil || !c.Enabled {
		return nil
	}
	return c
}
