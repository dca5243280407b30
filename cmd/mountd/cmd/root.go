package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "mountd [source] [items...]",
	Short: "Install AI agent skills and workflows into a project",
	Long: `mountd installs skills and workflows into every AI coding agent used in the
current project.

A source is a local path, a GitHub repository (owner/repo or URL), a GitHub
tree or blob URL, a zip URL, or any raw file URL. Sources that contain a
registry.json (or registry.yaml) are catalogs: name the items to install,
pass --all, or pick them interactively. Bundles expand to the items they
include.

Run without a source to reinstall everything recorded in .mountdrc.json.`,
	Example: `  mountd ./skills/lint
  mountd acme/skills core lint
  mountd https://github.com/acme/skills/tree/main/skills/lint --agents claude,cursor
  mountd https://example.com/release.md --type workflow
  mountd`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runAdd,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mountd %s (commit: %s, built: %s)\n", Version, Commit, Date)
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text, json or pretty")

	addAddFlags(rootCmd)

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
