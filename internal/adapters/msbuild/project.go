package msbuild

import (
	"strings"

	"github.com/beevik/etree"
)

// ReferenceItem is a raw PackageReference element.
type ReferenceItem struct {
	Include         string
	Update          string
	Version         string
	VersionOverride string
	Condition       string
	PrivateAssets   string
}

// UsingItem is a raw Using element.
type UsingItem struct {
	Include   string
	Alias     string
	Static    bool
	Condition string
}

// ProjectFile is the subset of a project file relevant to package analysis.
type ProjectFile struct {
	Path             string
	Sdk              string
	TargetFrameworks []string
	AssemblyName     string
	References       []ReferenceItem
	Usings           []UsingItem
}

// TargetFramework returns the first declared target framework.
func (p *ProjectFile) TargetFramework() string {
	if len(p.TargetFrameworks) == 0 {
		return ""
	}
	return p.TargetFrameworks[0]
}

// ParseProject reads a project file. Items nested in Choose/When/Otherwise
// blocks are collected with the enclosing conditions.
func ParseProject(path string, data []byte) (*ProjectFile, error) {
	root, err := ParseDocument(path, data)
	if err != nil {
		return nil, err
	}

	pf := &ProjectFile{
		Path: path,
		Sdk:  Attr(root, "Sdk"),
	}
	pf.collect(root, "")
	return pf, nil
}

func (pf *ProjectFile) collect(el *etree.Element, condition string) {
	for _, child := range el.ChildElements() {
		switch {
		case Is(child, "PropertyGroup"):
			pf.readProperties(child)
		case Is(child, "ItemGroup"):
			pf.readItems(child, JoinConditions(condition, Attr(child, "Condition")))
		case Is(child, "Choose"):
			pf.collect(child, condition)
		case Is(child, "When"), Is(child, "Otherwise"):
			pf.collect(child, JoinConditions(condition, Attr(child, "Condition")))
		}
	}
}

func (pf *ProjectFile) readProperties(group *etree.Element) {
	if tfs := ChildText(group, "TargetFrameworks"); tfs != "" && len(pf.TargetFrameworks) == 0 {
		pf.TargetFrameworks = splitList(tfs)
	}
	if tf := ChildText(group, "TargetFramework"); tf != "" && len(pf.TargetFrameworks) == 0 {
		pf.TargetFrameworks = []string{tf}
	}
	if name := ChildText(group, "AssemblyName"); name != "" {
		pf.AssemblyName = name
	}
}

func (pf *ProjectFile) readItems(group *etree.Element, condition string) {
	for _, item := range group.ChildElements() {
		switch {
		case Is(item, "PackageReference"):
			pf.References = append(pf.References, ReferenceItem{
				Include:         Attr(item, "Include"),
				Update:          Attr(item, "Update"),
				Version:         AttrOrChild(item, "Version"),
				VersionOverride: AttrOrChild(item, "VersionOverride"),
				Condition:       JoinConditions(condition, Attr(item, "Condition")),
				PrivateAssets:   AttrOrChild(item, "PrivateAssets"),
			})
		case Is(item, "Using"):
			pf.Usings = append(pf.Usings, UsingItem{
				Include:   Attr(item, "Include"),
				Alias:     Attr(item, "Alias"),
				Static:    strings.EqualFold(Attr(item, "Static"), "true"),
				Condition: JoinConditions(condition, Attr(item, "Condition")),
			})
		}
	}
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ";") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
