package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mountd-cli/mountd/internal/core"
)

var removeCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove an installed skill or workflow",
	Long: `Remove a skill or workflow from .mountdrc.json and delete its files from
every configured agent.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps(cmd)
		if err != nil {
			return err
		}

		name := args[0]
		report, err := core.NewRemover(d.files, d.config, d.registry, d.log).Remove(name)
		if errors.Is(err, core.ErrNotInstalled) {
			return fmt.Errorf("skill %q not found in configuration", name)
		}
		if err != nil {
			return fmt.Errorf("removing %s: %w", name, err)
		}

		fmt.Fprintf(d.out, "Removed %q from configuration.\n", name)
		printReport(d.out, report)
		if report.Count(core.StatusRemoved) == 0 {
			fmt.Fprintln(d.out, "No associated files were found.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
