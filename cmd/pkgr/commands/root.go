// Package commands implements the CLI commands for the pkgr package installer.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/pkgr/internal/adapters/config"
	"go.trai.ch/pkgr/internal/app"
	"go.trai.ch/pkgr/internal/build"
)

// CLI represents the command line interface for pkgr.
type CLI struct {
	app     Application
	log     Logging
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Install(ctx context.Context, opts app.InstallOptions) error
	Latest(ctx context.Context, packageID string, opts app.ResolveOptions) (string, error)
}

// Logging is the part of the logger the global flags configure.
type Logging interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app. log may be nil.
func New(a Application, log Logging) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pkgr",
		Short:         "Resolve and install packages from static feeds",
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

	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultFilename, "Path to configuration file")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("json", false, "Log as JSON")

	c := &CLI{
		app:     a,
		log:     log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = c.configureLogging

	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newPreviewCmd())
	rootCmd.AddCommand(c.newLatestCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) configureLogging(cmd *cobra.Command, _ []string) error {
	if c.log == nil {
		return nil
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	jsonMode, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	c.log.SetVerbose(verbose)
	c.log.SetJSON(jsonMode)
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
