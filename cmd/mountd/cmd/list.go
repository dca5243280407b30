package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mountd-cli/mountd/internal/core/catalog"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List installed skills and workflows",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps(cmd)
		if err != nil {
			return err
		}

		cfg, err := d.config.Load()
		if err != nil {
			return err
		}

		if len(cfg.Installed) == 0 {
			fmt.Fprintln(d.out, "No skills installed yet.")
			return nil
		}

		if len(cfg.Agents) > 0 {
			fmt.Fprintf(d.out, "Configured agents: %s\n", strings.Join(cfg.Agents, ", "))
		}
		fmt.Fprintf(d.out, "\nInstalled (%d):\n", len(cfg.Installed))
		for _, s := range cfg.Installed {
			kind := s.Kind
			if kind == "" {
				kind = catalog.KindSkill
			}
			line := fmt.Sprintf("  - %s [%s]", s.Name, kind)
			if s.Version != "" {
				line += " " + s.Version
			}
			fmt.Fprintf(d.out, "%s (from: %s)\n", line, s.Source)
			if s.InstalledAt != "" {
				fmt.Fprintf(d.out, "    Installed: %s\n", formatInstalledAt(s.InstalledAt))
			}
		}
		return nil
	},
}

// formatInstalledAt renders an RFC 3339 timestamp in local time, leaving
// unparseable values untouched.
func formatInstalledAt(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

func init() {
	rootCmd.AddCommand(listCmd)
}
