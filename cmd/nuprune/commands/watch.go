package commands

import (
	"errors"

	"github.com/spf13/cobra"
	"go.trai.ch/nuprune/internal/core/domain"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	flags := &analyzeFlags{}
	cmd := &cobra.Command{
		Use:   "watch [path]",
		Short: "Analyze again whenever project or source files change",
		Args:  targetArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			err := c.app.Watch(cmd.Context(), flags.request(args), func(outcome domain.Outcome) {
				err := c.render(out, outcome, flags)
				if err == nil {
					return
				}
				var exit *ExitError
				if !errors.As(err, &exit) {
					c.logger.Error(err)
				} else if exit.Err != nil {
					c.logger.Error(exit.Err)
				}
			})
			var failure *domain.Failure
			if errors.As(err, &failure) {
				return &ExitError{Code: failure.Code.ExitCode(), Err: failureCause(failure)}
			}
			return err
		},
	}
	flags.register(cmd)
	return cmd
}
