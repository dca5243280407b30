package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mountd-cli/mountd/internal/tui"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List supported agents and which are detected here",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps(cmd)
		if err != nil {
			return err
		}

		cfg, err := d.config.Load()
		if err != nil {
			return err
		}
		configured := make(map[string]bool, len(cfg.Agents))
		for _, name := range cfg.Agents {
			configured[name] = true
		}

		workDir := d.config.Dir()
		tw := tabwriter.NewWriter(d.out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tAGENT\tSKILLS\tWORKFLOWS\tDETECTED")
		for _, a := range d.registry.All() {
			detected := ""
			if a.Detect(workDir) {
				detected = "✓"
			}
			name := a.Name()
			if configured[name] {
				name += "*"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", name, a.DisplayName(),
				a.SkillPath(".", "<name>"), a.WorkflowPath(".", "<name>"), detected)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(d.out, "\n"+tui.Muted("* configured in .mountdrc.json"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(agentsCmd)
}
