package commands

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/nuprune/internal/adapters/detector"
	"go.trai.ch/nuprune/internal/adapters/report"
	"go.trai.ch/nuprune/internal/app"
	"go.trai.ch/nuprune/internal/core/domain"
	"go.trai.ch/nuprune/internal/core/ports"
	"go.trai.ch/zerr"
)

// analyzeFlags are the options shared by analyze and watch.
type analyzeFlags struct {
	exclude            []string
	framework          string
	timeout            time.Duration
	parallelism        int
	devDependencies    string
	ignoreGlobalUsings bool
	strictPrefixes     bool
	config             string
	json               bool
	failOnUnused       bool
}

func (f *analyzeFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringSliceVarP(&f.exclude, "exclude", "e", nil, "Glob of source files to skip (repeatable)")
	flags.StringVarP(&f.framework, "framework", "f", "", "Only analyze projects targeting this framework")
	flags.DurationVar(&f.timeout, "timeout", 0, "Abort the analysis after this long (default 5m)")
	flags.IntVarP(&f.parallelism, "parallelism", "p", 0, "Number of projects analyzed at once (default: number of CPUs)")
	flags.StringVar(&f.devDependencies, "dev-dependencies", "",
		"How unused development packages are reported: report, ignore, or used")
	flags.BoolVar(&f.ignoreGlobalUsings, "ignore-global-usings", false,
		"Do not count a project-level global using as package usage")
	flags.BoolVar(&f.strictPrefixes, "strict-prefixes", false,
		"Count a dot-prefix of a package id only as an exact namespace no other package owns")
	flags.StringVar(&f.config, "config", "", "Path to a nuprune.yaml file")
	flags.BoolVar(&f.json, "json", false, "Write the report as JSON")
}

func (f *analyzeFlags) request(args []string) app.Request {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}
	req := app.Request{
		Target:          target,
		Exclude:         f.exclude,
		TargetFramework: f.framework,
		Timeout:         f.timeout,
		Parallelism:     f.parallelism,
		DevDependencies: domain.DevDependencyPolicy(f.devDependencies),
		ConfigPath:      f.config,
	}
	if f.ignoreGlobalUsings {
		counts := false
		req.GlobalUsingCountsAsUsed = &counts
	}
	if f.strictPrefixes {
		strict := true
		req.StrictPrefixes = &strict
	}
	return req
}

// targetArg accepts at most one target path.
func targetArg(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		return zerr.With(zerr.Wrap(domain.ErrInvalidRequest, "expected at most one target path"), "args", len(args))
	}
	return nil
}

func (c *CLI) newAnalyzeCmd() *cobra.Command {
	flags := &analyzeFlags{}
	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Report unused package references of a solution, project, or directory",
		Long: "Analyze loads the solution (.slnx or .sln), project, or directory at path " +
			"(default: the current directory) and lists the package references no source file uses.",
		Args: targetArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome := c.app.Analyze(cmd.Context(), flags.request(args))
			return c.render(cmd.OutOrStdout(), outcome, flags)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&flags.failOnUnused, "fail-on-unused", false, "Exit with status 1 when unused packages are found")
	return cmd
}

// reporter selects the renderer for w.
func (c *CLI) reporter(w io.Writer, asJSON bool) (ports.Reporter, error) {
	if asJSON {
		return report.NewJSON(), nil
	}
	mode, err := detector.ParseColorMode(c.color)
	if err != nil {
		return nil, err
	}
	f, _ := w.(*os.File)
	return report.NewText(detector.ProfileFunc(detector.DetectEnvironment(f), mode), c.verbose), nil
}

// render writes the outcome to w and maps it to an exit status.
func (c *CLI) render(w io.Writer, outcome domain.Outcome, flags *analyzeFlags) error {
	if !outcome.OK() {
		failure := outcome.Failure
		if flags.json {
			if err := report.NewJSON().RenderFailure(w, failure); err != nil {
				return zerr.Wrap(err, "failed to write report")
			}
			return &ExitError{Code: failure.Code.ExitCode()}
		}
		return &ExitError{Code: failure.Code.ExitCode(), Err: failureCause(failure)}
	}

	r, err := c.reporter(w, flags.json)
	if err != nil {
		return err
	}
	if err := r.Render(w, outcome.Result); err != nil {
		return zerr.Wrap(err, "failed to write report")
	}
	if flags.failOnUnused && outcome.Result.HasUnused() {
		return &ExitError{Code: domain.ExitUnused}
	}
	return nil
}

// failureCause returns the error chain behind f for logging.
func failureCause(f *domain.Failure) error {
	if f.Err != nil {
		return f.Err
	}
	return f
}
