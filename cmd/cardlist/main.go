package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gravitrone/cardlist/internal/cmd"
	"github.com/gravitrone/cardlist/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func newRootCmd() *cobra.Command {
	opts := &cmd.Options{}
	root := &cobra.Command{
		Use:   "cardlist",
		Short: "cardlist - browse tagged cards",
		Long:  "cardlist loads a dataset of tagged records once, then filters it by tag and pages through it ten at a time.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(*opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.Dataset, "dataset", "", "local JSON, YAML or TOML dataset file")
	flags.StringVar(&opts.URL, "url", "", "remote catalog base URL")
	flags.DurationVar(&opts.Timeout, "timeout", 0, "HTTP timeout for the remote catalog (default 30s)")
	flags.StringVar(&opts.LogFile, "log-file", "", "write JSON logs to this file")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(cmd.ListCmd(opts))
	root.AddCommand(cmd.ConfigCmd())
	root.AddCommand(cmd.HealthCmd(opts))
	return root
}

func runTUI(opts cmd.Options) error {
	settings, err := cmd.Resolve(opts)
	if err != nil {
		if !isInteractiveTerminal(os.Stdout) {
			fmt.Println("no dataset configured. run 'cardlist config set-dataset <path>' first.")
		}
		return err
	}

	logger, err := settings.Logger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting tui",
		zap.String("dataset", settings.DatasetPath),
		zap.String("url", settings.SourceURL),
	)

	app := ui.NewApp(settings.Source(logger), ui.Options{
		VimKeys: settings.VimKeys,
		Logger:  logger,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
