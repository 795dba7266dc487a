// Package style holds the colours and icons shared by the report and the log handler.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	// Accent marks solution and project headings.
	Accent = lipgloss.Color("#8B5CF6")
	// Muted is used for paths, counts and ignored packages.
	Muted = lipgloss.Color("#667085")
	// Used marks referenced packages.
	Used = lipgloss.Color("#22A06B")
	// Unused marks packages no source file references, and errors.
	Unused = lipgloss.Color("#D93025")
	// Notice marks warnings.
	Notice = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Circle  = "○"
	Arrow   = "→"
)
