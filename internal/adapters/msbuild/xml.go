package msbuild

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"go.trai.ch/nuprune/internal/core/domain"
	"go.trai.ch/zerr"
)

// ParseDocument parses MSBuild-style XML and returns its root element.
// Element and attribute names in MSBuild files are case-insensitive, so
// callers use Children and Attr rather than etree's exact-match selectors.
func ParseDocument(path string, data []byte) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, Malformed(path, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, Malformed(path, fmt.Errorf("document has no root element"))
	}
	return root, nil
}

// Malformed wraps a parse failure of the file at path.
func Malformed(path string, err error) error {
	return zerr.With(zerr.Wrap(fmt.Errorf("%w: %w", domain.ErrMalformedXML, err), "failed to parse file"), "path", path)
}

// Is reports whether el has the given tag, ignoring case.
func Is(el *etree.Element, tag string) bool {
	return strings.EqualFold(el.Tag, tag)
}

// Children returns the direct child elements of el with the given tag, ignoring case.
func Children(el *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	for _, child := range el.ChildElements() {
		if Is(child, tag) {
			out = append(out, child)
		}
	}
	return out
}

// Attr returns the trimmed value of the attribute key, ignoring case.
func Attr(el *etree.Element, key string) string {
	for _, a := range el.Attr {
		if strings.EqualFold(a.Key, key) {
			return strings.TrimSpace(a.Value)
		}
	}
	return ""
}

// ChildText returns the trimmed text of the first child with the given tag.
func ChildText(el *etree.Element, tag string) string {
	for _, child := range el.ChildElements() {
		if Is(child, tag) {
			return strings.TrimSpace(child.Text())
		}
	}
	return ""
}

// AttrOrChild returns the attribute key, falling back to a child element of the same name.
func AttrOrChild(el *etree.Element, key string) string {
	if v := Attr(el, key); v != "" {
		return v
	}
	return ChildText(el, key)
}

// JoinConditions combines an outer and inner MSBuild condition.
func JoinConditions(outer, inner string) string {
	switch {
	case outer == "":
		return inner
	case inner == "":
		return outer
	default:
		return "(" + outer + ") and (" + inner + ")"
	}
}
