package commands

import (
	"github.com/spf13/cobra"
	"github.com/zbowling/depwise/internal/app"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Check project imports against the declared dependencies",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			pyproject, _ := cmd.Flags().GetString("pyproject")
			requirements, _ := cmd.Flags().GetString("requirements")
			condayml, _ := cmd.Flags().GetString("condayml")

			envFile := pyproject
			if requirements != "" {
				envFile = requirements
			}
			if condayml != "" {
				envFile = condayml
			}

			return c.app.Check(cmd.Context(), dir, app.CheckOptions{
				EnvFile: envFile,
				Out:     cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().String("pyproject", "", "Check against this pyproject.toml")
	cmd.Flags().String("requirements", "", "Check against this requirements.txt")
	cmd.Flags().String("condayml", "", "Check against this conda environment.yml")
	cmd.MarkFlagsMutuallyExclusive("pyproject", "requirements", "condayml")
	return cmd
}
