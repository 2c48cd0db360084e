package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pkgr/internal/app"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install <package> [version]",
		Short: "Install a package and its dependencies into the project",
		Long: "Install a package and its dependencies into the project.\n" +
			"Without a version the highest version available from any source is installed.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Install(cmd.Context(), installOptions(cmd, args))
		},
	}
	addResolveFlags(cmd)
	cmd.Flags().BoolP("dry-run", "n", false, "Print the plan without applying it")
	cmd.Flags().StringP("project", "p", "", "Project directory (overrides the configuration)")
	cmd.Flags().String("metrics-file", "", "Write action metrics in Prometheus text format to this file")
	return cmd
}

func (c *CLI) newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <package> <version>",
		Short: "Print the plan for installing a package without applying it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := installOptions(cmd, args)
			opts.DryRun = true
			return c.app.Install(cmd.Context(), opts)
		},
	}
	addResolveFlags(cmd)
	cmd.Flags().StringP("project", "p", "", "Project directory (overrides the configuration)")
	return cmd
}

func installOptions(cmd *cobra.Command, args []string) app.InstallOptions {
	opts := app.InstallOptions{
		ResolveOptions: resolveOptions(cmd),
		PackageID:      args[0],
	}
	if len(args) > 1 {
		opts.Version = args[1]
	}
	opts.DryRun, _ = cmd.Flags().GetBool("dry-run")
	opts.ProjectDir, _ = cmd.Flags().GetString("project")
	opts.MetricsFile, _ = cmd.Flags().GetString("metrics-file")
	return opts
}
