package msbuild

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"

	"github.com/beevik/etree"
	"go.trai.ch/nuprune/internal/core/domain"
	"go.trai.ch/zerr"
)

// solutionFolderType is the project type GUID of virtual solution folders.
const solutionFolderType = "2150E333-8FDC-42A3-9474-1A3956D46DE8"

var projectLine = regexp.MustCompile(
	`^Project\("\{([0-9A-Fa-f-]+)\}"\)\s*=\s*"([^"]*)"\s*,\s*"([^"]*)"\s*,\s*"\{([0-9A-Fa-f-]+)\}"`,
)

// SolutionEntry is a project listed in a solution container.
type SolutionEntry struct {
	Name string
	// Path is relative to the solution directory and uses forward slashes.
	Path string
}

// ParseLegacySolution reads the line-oriented .sln format.
// Solution folders and entries that are not project files are skipped.
func ParseLegacySolution(path string, data []byte) ([]SolutionEntry, error) {
	var entries []SolutionEntry

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "\ufeff"))
		if !strings.HasPrefix(line, "Project(") {
			continue
		}

		m := projectLine.FindStringSubmatch(line)
		if m == nil {
			return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrMalformedSolution, "unrecognised project line"), "path", path), "line", lineNo)
		}
		if strings.EqualFold(m[1], solutionFolderType) {
			continue
		}

		rel := normalizeRel(m[3])
		if !domain.IsProjectFile(rel) {
			continue
		}
		entries = append(entries, SolutionEntry{Name: m[2], Path: rel})
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read solution file"), "path", path)
	}
	return entries, nil
}

// ParseXMLSolution reads the XML .slnx format. Projects may appear at any
// depth, declared as <Project Path="..."/> or <Project><Path>...</Path></Project>.
func ParseXMLSolution(path string, data []byte) ([]SolutionEntry, error) {
	root, err := ParseDocument(path, data)
	if err != nil {
		return nil, err
	}

	var entries []SolutionEntry
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		for _, child := range el.ChildElements() {
			if Is(child, "Project") {
				if rel := normalizeRel(AttrOrChild(child, "Path")); rel != "" && domain.IsProjectFile(rel) {
					entries = append(entries, SolutionEntry{Name: projectName(rel), Path: rel})
				}
				continue
			}
			walk(child)
		}
	}
	walk(root)
	return entries, nil
}

func normalizeRel(p string) string {
	return strings.TrimSpace(strings.ReplaceAll(p, `\`, "/"))
}

func projectName(rel string) string {
	base := rel[strings.LastIndex(rel, "/")+1:]
	if i := strings.LastIndex(base, "."); i > 0 {
		return base[:i]
	}
	return base
}
