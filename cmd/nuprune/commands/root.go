// Package commands implements the CLI commands for nuprune.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/nuprune/internal/adapters/detector"
	"go.trai.ch/nuprune/internal/app"
	"go.trai.ch/nuprune/internal/build"
	"go.trai.ch/nuprune/internal/core/domain"
	"go.trai.ch/nuprune/internal/core/ports"
	"go.trai.ch/zerr"
)

// Application represents the application logic interface.
type Application interface {
	Analyze(ctx context.Context, req app.Request) domain.Outcome
	Watch(ctx context.Context, req app.Request, onResult func(domain.Outcome)) error
}

// configurable is implemented by loggers whose format and level can change at runtime.
type configurable interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// CLI represents the command line interface for nuprune.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command

	verbose   bool
	logFormat string
	color     string
}

// New creates a new CLI instance with the given app.
func New(a Application, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "nuprune",
		Short:         "Find unused NuGet package references in .NET solutions",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Show debug output and used packages")
	rootCmd.PersistentFlags().StringVar(&c.logFormat, "log-format", "text", "Log format: text or json")
	rootCmd.PersistentFlags().StringVar(&c.color, "color", string(detector.ColorAuto), "Colorize output: auto, always, or never")
	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		return c.configureLogger()
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return zerr.Wrap(domain.ErrInvalidRequest, err.Error())
	})

	rootCmd.AddCommand(c.newAnalyzeCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) configureLogger() error {
	var jsonLogs bool
	switch c.logFormat {
	case "text":
	case "json":
		jsonLogs = true
	default:
		return zerr.With(zerr.Wrap(domain.ErrInvalidRequest, "log format must be text or json"), "log-format", c.logFormat)
	}
	if _, err := detector.ParseColorMode(c.color); err != nil {
		return err
	}

	if l, ok := c.logger.(configurable); ok {
		l.SetJSON(jsonLogs)
		l.SetVerbose(c.verbose)
	}
	return nil
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
