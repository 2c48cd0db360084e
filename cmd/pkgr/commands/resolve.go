package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pkgr/internal/app"
)

func addResolveFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("behavior", "b", "", "Dependency behavior: ignore, lowest, highest-patch, highest-minor, highest")
	cmd.Flags().Bool("prerelease", false, "Consider prerelease versions")
	cmd.Flags().Bool("unlisted", false, "Consider unlisted versions")
}

func resolveOptions(cmd *cobra.Command) app.ResolveOptions {
	configPath, _ := cmd.Flags().GetString("config")
	behavior, _ := cmd.Flags().GetString("behavior")
	prerelease, _ := cmd.Flags().GetBool("prerelease")
	unlisted, _ := cmd.Flags().GetBool("unlisted")
	return app.ResolveOptions{
		ConfigPath: configPath,
		Behavior:   behavior,
		Prerelease: prerelease,
		Unlisted:   unlisted,
	}
}
