package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newLatestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "latest <package>",
		Short: "Print the highest version of a package available from any source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := c.app.Latest(cmd.Context(), args[0], resolveOptions(cmd))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", args[0], v)
			return err
		},
	}
	cmd.Flags().Bool("prerelease", false, "Consider prerelease versions")
	cmd.Flags().Bool("unlisted", false, "Consider unlisted versions")
	return cmd
}
