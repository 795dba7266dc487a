// Package report renders analysis results for terminals and machines.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/nuprune/internal/core/domain"
	"go.trai.ch/nuprune/internal/core/ports"
	"go.trai.ch/nuprune/internal/ui/output"
	"go.trai.ch/nuprune/internal/ui/style"
)

// Text renders a human-readable report.
type Text struct {
	profile func() termenv.Profile
	verbose bool
}

var _ ports.Reporter = (*Text)(nil)

// NewText creates a text renderer. A nil profile selects colours from the
// terminal. Verbose output lists used packages with the namespaces that
// matched them.
func NewText(profile func() termenv.Profile, verbose bool) *Text {
	if profile == nil {
		profile = output.ColorProfile
	}
	return &Text{profile: profile, verbose: verbose}
}

type palette struct {
	title  lipgloss.Style
	muted  lipgloss.Style
	good   lipgloss.Style
	bad    lipgloss.Style
	notice lipgloss.Style
}

func newPalette(w io.Writer, profile termenv.Profile) palette {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return palette{
		title:  r.NewStyle().Bold(true).Foreground(style.Accent),
		muted:  r.NewStyle().Foreground(style.Muted),
		good:   r.NewStyle().Foreground(style.Used),
		bad:    r.NewStyle().Foreground(style.Unused),
		notice: r.NewStyle().Foreground(style.Notice),
	}
}

// Render writes the report for result to w.
func (t *Text) Render(w io.Writer, result *domain.AnalysisResult) error {
	p := newPalette(w, t.profile())
	var b strings.Builder

	b.WriteString(p.title.Render(result.Solution))
	b.WriteString(" " + p.muted.Render(result.Target) + "\n")
	if result.CentralManagement {
		b.WriteString(p.muted.Render("central package management: "+result.CentralFile) + "\n")
	}

	for i := range result.Projects {
		b.WriteString("\n")
		t.writeProject(&b, p, &result.Projects[i])
	}

	if len(result.Warnings) > 0 {
		b.WriteString("\n" + p.notice.Render("Warnings") + "\n")
		for _, warning := range result.Warnings {
			b.WriteString("  " + p.notice.Render(style.Warning+" "+warning) + "\n")
		}
	}

	b.WriteString("\n" + summaryLine(p, result) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func (t *Text) writeProject(b *strings.Builder, p palette, project *domain.ProjectReport) {
	header := p.title.Render(project.Name)
	meta := fmt.Sprintf("%d source files", project.SourceFiles)
	if project.TargetFramework != "" {
		meta = project.TargetFramework + ", " + meta
	}
	b.WriteString(header + " " + p.muted.Render("("+meta+")") + "\n")

	total := len(project.Used) + len(project.Unused)
	if total == 0 && len(project.Ignored) == 0 {
		b.WriteString("  " + p.muted.Render("no package references") + "\n")
		return
	}

	width := idWidth(project)
	for _, pkg := range project.Unused {
		line := fmt.Sprintf("%s %-*s %s", style.Cross, width, pkg.ID, pkg.Version)
		line += tags(pkg)
		b.WriteString("  " + p.bad.Render(line) + "\n")
	}

	if t.verbose {
		for _, pkg := range project.Used {
			line := fmt.Sprintf("%s %-*s %s", style.Check, width, pkg.ID, pkg.Version)
			b.WriteString("  " + p.good.Render(line))
			if len(pkg.DetectedNamespaces) > 0 {
				b.WriteString(" " + p.muted.Render(style.Arrow+" "+strings.Join(pkg.DetectedNamespaces, ", ")))
			}
			b.WriteString("\n")
		}
		for _, pkg := range project.Ignored {
			line := fmt.Sprintf("%s %-*s %s", style.Circle, width, pkg.ID, pkg.Version)
			b.WriteString("  " + p.muted.Render(line+" (ignored)") + "\n")
		}
		return
	}

	switch {
	case len(project.Unused) == 0 && total > 0:
		b.WriteString("  " + p.good.Render(fmt.Sprintf("%s all %d packages used", style.Check, total)) + "\n")
	case len(project.Used) > 0:
		b.WriteString("  " + p.good.Render(fmt.Sprintf("%s %d used", style.Check, len(project.Used))) + "\n")
	}
	if len(project.Ignored) > 0 {
		b.WriteString("  " + p.muted.Render(fmt.Sprintf("%s %d ignored", style.Circle, len(project.Ignored))) + "\n")
	}
}

func tags(pkg domain.PackageDetail) string {
	var parts []string
	if pkg.IsDevDependency {
		parts = append(parts, "dev")
	}
	if pkg.Condition != "" {
		parts = append(parts, "conditional")
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

func idWidth(project *domain.ProjectReport) int {
	width := 0
	for _, list := range [][]domain.PackageDetail{project.Unused, project.Used, project.Ignored} {
		for _, pkg := range list {
			width = max(width, len(pkg.ID))
		}
	}
	return width
}

func summaryLine(p palette, result *domain.AnalysisResult) string {
	s := result.Summary
	counts := fmt.Sprintf("%d projects, %d packages, %d unused (%.1f%%)", s.Projects, s.Total, s.Unused, s.PercentUnused)
	if s.Ignored > 0 {
		counts += fmt.Sprintf(", %d ignored", s.Ignored)
	}

	icon, render := style.Check, p.good.Render
	if s.Unused > 0 {
		icon, render = style.Cross, p.bad.Render
	}
	return render(icon+" "+counts) + " " + p.muted.Render("in "+result.Elapsed.Round(time.Millisecond).String())
}
