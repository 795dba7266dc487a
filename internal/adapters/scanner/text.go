package scanner

import (
	"bufio"
	"bytes"
	"regexp"
)

var dottedName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

var (
	csharpUsing = regexp.MustCompile(`^\s*(?:global\s+)?using\s+(?:static\s+)?(?:[A-Za-z_]\w*\s*=\s*)?(?:global::)?([A-Za-z_][\w.]*)\s*;`)
	razorUsing  = regexp.MustCompile(`^\s*@(?:using|inject|inherits|implements)\s+(?:static\s+)?(?:global::)?([A-Za-z_][\w.]*)`)
	fsharpOpen  = regexp.MustCompile(`^\s*open\s+(?:type\s+)?([A-Za-z_][\w.]*)`)
	vbImports   = regexp.MustCompile(`(?i)^\s*Imports\s+(?:[A-Za-z_]\w*\s*=\s*)?(?:Global\.)?([A-Za-z_][\w.]*)`)
	qualified   = regexp.MustCompile(`\b[A-Za-z_]\w*(?:\.[A-Za-z_]\w*)+\b`)
)

// directives maps a source extension to its import line patterns.
var directives = map[string][]*regexp.Regexp{
	".cs":     {csharpUsing},
	".cshtml": {razorUsing, csharpUsing},
	".razor":  {razorUsing, csharpUsing},
	".fs":     {fsharpOpen},
	".fsx":    {fsharpOpen},
	".vb":     {vbImports},
}

// scanText collects import directives and dotted identifiers line by line.
func scanText(ext string, src []byte) []string {
	patterns := directives[ext]
	var names []string

	scanner := bufio.NewScanner(bytes.NewReader(src))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		matched := false
		for _, re := range patterns {
			if m := re.FindStringSubmatch(line); m != nil {
				names = append(names, m[1])
				matched = true
				break
			}
		}
		if matched || ext == ".cs" {
			continue
		}
		names = append(names, qualified.FindAllString(line, -1)...)
	}
	return names
}
