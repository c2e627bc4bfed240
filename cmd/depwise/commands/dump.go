package commands

import (
	"github.com/spf13/cobra"
	"github.com/zbowling/depwise/internal/app"
)

func (c *CLI) newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Report every importable module of the python environment as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fingerprint, _ := cmd.Flags().GetBool("fingerprint")

			return c.app.Dump(cmd.Context(), app.DumpOptions{
				Fingerprint: fingerprint,
				Out:         cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().Bool("fingerprint", false, "Print a short environment identity instead of the full report")
	return cmd
}
