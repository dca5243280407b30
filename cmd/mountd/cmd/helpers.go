package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/mountd-cli/mountd/internal/core"
	"github.com/mountd-cli/mountd/internal/tui"
)

// printReport writes one line per result and a summary.
func printReport(w io.Writer, r *core.Report) {
	for _, res := range r.Results {
		fmt.Fprintln(w, formatResult(res))
	}

	var parts []string
	for _, s := range []core.Status{core.StatusInstalled, core.StatusRemoved, core.StatusSkipped, core.StatusFailed} {
		if n := r.Count(s); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, s))
		}
	}
	if len(parts) > 0 {
		fmt.Fprintf(w, "\n%s\n", strings.Join(parts, ", "))
	}
}

func formatResult(res core.Result) string {
	switch res.Status {
	case core.StatusInstalled:
		return fmt.Sprintf("%s Installed %s for %s %s", tui.SuccessMark, res.Item, res.Agent, tui.Muted("("+res.Target+")"))
	case core.StatusRemoved:
		return fmt.Sprintf("%s Deleted %s from %s %s", tui.SuccessMark, res.Item, res.Agent, tui.Muted("("+res.Target+")"))
	case core.StatusSkipped:
		return fmt.Sprintf("%s %s", tui.SkipMark, res.Message)
	case core.StatusFailed:
		msg := res.Message
		if msg == "" && res.Err != nil {
			msg = res.Err.Error()
		}
		return fmt.Sprintf("%s %s: %s", tui.FailMark, res.Item, msg)
	default:
		return fmt.Sprintf("%s Warning: %s", tui.WarnMark, res.Message)
	}
}
