// Package commands implements the CLI commands for bbstatus.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/bbstatus/internal/app"
	"go.trai.ch/bbstatus/internal/build"
	"go.trai.ch/bbstatus/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for bbstatus.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "bbstatus",
		Short: "Report a Bitrise build status to Bitbucket Server",
		Long: "bbstatus reads the step inputs from the environment, validates them and posts\n" +
			"the build state of the current commit to the Bitbucket Server build-status API.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runReport,
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

	rootCmd.Flags().StringP("config", "c", "", "YAML file with step inputs; environment variables take precedence")
	rootCmd.Flags().String("env-file", "", "Dotenv file loaded before reading inputs; existing variables are kept")
	rootCmd.Flags().String("repo", ".", "Repository used when git_clone_commit_hash is not set")
	rootCmd.Flags().Bool("dry-run", false, "Validate and print the request without sending it")
	// -v belongs to --version.
	rootCmd.Flags().Bool("verbose", false, "Log the duration of each phase")
	rootCmd.Flags().String("log-format", app.LogFormatPretty, "Log format: pretty or json")
	rootCmd.Flags().String("color", "auto", "Colour diagnostics: auto, always or never")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runReport(cmd *cobra.Command, _ []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	envFile, _ := cmd.Flags().GetString("env-file")
	repoDir, _ := cmd.Flags().GetString("repo")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")
	logFormat, _ := cmd.Flags().GetString("log-format")
	colorMode, _ := cmd.Flags().GetString("color")

	if logFormat != app.LogFormatPretty && logFormat != app.LogFormatJSON {
		return zerr.With(domain.ErrInvalidLogFormat, "value", logFormat)
	}

	return c.app.Run(cmd.Context(), app.RunOptions{
		ConfigFile: configFile,
		EnvFile:    envFile,
		RepoDir:    repoDir,
		DryRun:     dryRun,
		Verbose:    verbose,
		LogFormat:  logFormat,
		Color:      colorMode,
	})
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
