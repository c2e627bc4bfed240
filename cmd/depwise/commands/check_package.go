package commands

import (
	"github.com/spf13/cobra"
	"github.com/zbowling/depwise/internal/app"
)

func (c *CLI) newCheckPackageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-package <wheel>",
		Short: "Check a wheel's bundled imports against its Requires-Dist metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.CheckPackage(cmd.Context(), args[0], app.CheckPackageOptions{
				Out: cmd.OutOrStdout(),
			})
		},
	}
}
