package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mountd-cli/mountd/internal/core"
	"github.com/mountd-cli/mountd/internal/core/catalog"
)

// addAddFlags registers the install flags on the root command.
func addAddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("force", "f", false, "Overwrite existing files")
	cmd.Flags().String("agents", "", "Comma-separated agent names (e.g. claude,cursor); skips the agent prompt")
	cmd.Flags().BoolP("yes", "y", false, "Use configured or detected agents without prompting")
	cmd.Flags().Bool("all", false, "Install every item of a registry")
	cmd.Flags().String("type", "", "Item type for single-item sources: skill or workflow (default skill)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	d, err := newDeps(cmd)
	if err != nil {
		return err
	}

	opts, err := addOptions(cmd, args, d)
	if err != nil {
		return err
	}

	report, err := d.orchestrator().Add(cmd.Context(), opts)
	if err != nil {
		return err
	}

	printReport(d.out, report)
	if opts.Source == "" && report.Count(core.StatusInstalled)+report.Count(core.StatusSkipped) > 0 {
		fmt.Fprintln(d.out, "Reinstall complete.")
	}
	return nil
}

func addOptions(cmd *cobra.Command, args []string, d *deps) (core.AddOptions, error) {
	opts := core.AddOptions{}
	if len(args) > 0 {
		opts.Source = args[0]
		opts.Items = args[1:]
	}

	force, _ := cmd.Flags().GetBool("force")
	cfg, err := d.config.Load()
	if err != nil {
		return opts, err
	}
	opts.Force = force || d.settings.Force || (cfg.Defaults != nil && cfg.Defaults.Overwrite)

	opts.All, _ = cmd.Flags().GetBool("all")

	kind, _ := cmd.Flags().GetString("type")
	switch catalog.Kind(kind) {
	case "", catalog.KindSkill, catalog.KindWorkflow:
		opts.Kind = catalog.Kind(kind)
	default:
		return opts, fmt.Errorf("invalid --type %q: must be skill or workflow", kind)
	}

	yes, _ := cmd.Flags().GetBool("yes")
	opts.Agents = core.AgentOptions{
		Names:       splitList(cmd, "agents"),
		Yes:         yes,
		Interactive: d.interactive,
	}
	return opts, nil
}

// splitList parses a comma-separated flag into trimmed, non-empty values.
func splitList(cmd *cobra.Command, name string) []string {
	raw, _ := cmd.Flags().GetString(name)
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
