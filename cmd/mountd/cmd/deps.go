package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mountd-cli/mountd/internal/core"
	"github.com/mountd-cli/mountd/internal/core/adapter"
	"github.com/mountd-cli/mountd/internal/logger"
	"github.com/mountd-cli/mountd/internal/settings"
	"github.com/mountd-cli/mountd/internal/tui"
)

// deps holds shared dependencies for CLI commands.
type deps struct {
	settings    *settings.Settings
	log         *slog.Logger
	files       *core.Files
	config      *core.ConfigManager
	registry    *adapter.Registry
	fetcher     core.Fetcher
	prompter    core.Selector
	interactive bool
	out         io.Writer
}

// newDeps creates shared dependencies rooted at the working directory.
// Called lazily by commands that need them.
func newDeps(cmd *cobra.Command) (*deps, error) {
	fsys := afero.NewOsFs()

	s, err := settings.Load(fsys, settings.FilePath())
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	if cmd.Flags().Changed("debug") {
		s.Debug, _ = cmd.Flags().GetBool("debug")
	}
	if cmd.Flags().Changed("log-format") {
		format, _ := cmd.Flags().GetString("log-format")
		if !logger.ValidFormat(format) {
			return nil, fmt.Errorf("invalid --log-format %q: must be one of %v", format, logger.Formats)
		}
		s.LogFormat = format
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}

	log := logger.New(
		logger.WithWriter(cmd.ErrOrStderr()),
		logger.WithDebug(s.Debug),
		logger.WithFormat(s.LogFormat),
	)

	return &deps{
		settings:    s,
		log:         log,
		files:       core.NewFiles(fsys),
		config:      core.NewConfigManager(fsys, cwd),
		registry:    adapter.Default(fsys),
		fetcher:     core.NewHTTPFetcher(s.HTTPTimeout),
		prompter:    tui.NewPrompter(os.Stdin, os.Stderr),
		interactive: isInteractive(),
		out:         cmd.OutOrStdout(),
	}, nil
}

func (d *deps) orchestrator() *core.Orchestrator {
	return core.NewOrchestrator(d.files, d.config, d.registry, d.fetcher, d.prompter, d.log)
}

// isInteractive reports whether both stdin and stdout are terminals.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
