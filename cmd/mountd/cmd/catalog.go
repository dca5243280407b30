package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/mountd-cli/mountd/internal/core/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog <source>",
	Short: "Show the items of a registry without installing",
	Long: `Load the registry of a local directory or GitHub repository and print its
items: name, type, version, description and, for bundles, what they include.`,
	Example: `  mountd catalog acme/skills
  mountd catalog ./registry --raw`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps(cmd)
		if err != nil {
			return err
		}

		cat, cleanup, err := d.orchestrator().LoadCatalog(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		defer cleanup()

		md := catalogMarkdown(cat, args[0])
		if raw, _ := cmd.Flags().GetBool("raw"); raw {
			fmt.Fprint(d.out, md)
			return nil
		}

		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return fmt.Errorf("creating markdown renderer: %w", err)
		}
		out, err := r.Render(md)
		if err != nil {
			return fmt.Errorf("rendering catalog: %w", err)
		}
		fmt.Fprint(d.out, out)
		return nil
	},
}

// catalogMarkdown renders a registry as a markdown document with one table
// row per item.
func catalogMarkdown(cat *catalog.Catalog, source string) string {
	var b strings.Builder

	title := cat.Name
	if title == "" {
		title = source
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	if cat.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", cat.Description)
	}

	if len(cat.Items) == 0 {
		b.WriteString("_No items._\n")
		return b.String()
	}

	b.WriteString("| Name | Type | Version | Description | Includes |\n")
	b.WriteString("|------|------|---------|-------------|----------|\n")
	for _, it := range cat.Items {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			cell(it.Name), it.Kind, cell(it.Version), cell(it.Description), cell(strings.Join(it.Includes, ", ")))
	}
	return b.String()
}

// cell escapes a value for a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

func init() {
	catalogCmd.Flags().Bool("raw", false, "Print markdown without terminal styling")
	rootCmd.AddCommand(catalogCmd)
}
