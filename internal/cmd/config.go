package cmd

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/gravitrone/cardlist/internal/catalog"
	"github.com/gravitrone/cardlist/internal/config"
)

// ConfigCmd returns the `cardlist config` command group.
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or edit ~/.cardlist/config",
	}
	cmd.AddCommand(configShowCmd())
	cmd.AddCommand(configSetDatasetCmd())
	cmd.AddCommand(configSetURLCmd())
	return cmd
}

// readOrEmpty reads the config, starting fresh when the file does not exist.
func readOrEmpty() (*config.Config, error) {
	cfg, err := config.Read()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &config.Config{}, nil
		}
		return nil, err
	}
	return cfg, nil
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Read()
			if err != nil {
				return err
			}
			printConfig(cmd.OutOrStdout(), cfg)
			return nil
		},
	}
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintf(out, "path:         %s\n", config.Path())
	fmt.Fprintf(out, "dataset_path: %s\n", orNone(cfg.DatasetPath))
	fmt.Fprintf(out, "source_url:   %s\n", orNone(cfg.SourceURL))
	fmt.Fprintf(out, "api_key:      %s\n", maskKey(cfg.APIKey))
	fmt.Fprintf(out, "timeout:      %s\n", orNone(durationString(cfg.Timeout)))
	fmt.Fprintf(out, "vim_keys:     %t\n", cfg.VimKeys)
	fmt.Fprintf(out, "log_file:     %s\n", orNone(cfg.LogFile))
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func durationString(d time.Duration) string {
	if d <= 0 {
		return ""
	}
	return d.String()
}

func maskKey(key string) string {
	switch {
	case key == "":
		return "(none)"
	case len(key) <= 6:
		return "******"
	default:
		return key[:6] + "..."
	}
}

func configSetDatasetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-dataset <path>",
		Short: "Use a local JSON, YAML or TOML file as the dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := catalog.FormatForPath(args[0]); err != nil {
				return err
			}
			path, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}

			cfg, err := readOrEmpty()
			if err != nil {
				return err
			}
			cfg.DatasetPath = path
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "dataset set to %s\n", path)
			return nil
		},
	}
}

func configSetURLCmd() *cobra.Command {
	var apiKey string
	cmd := &cobra.Command{
		Use:   "set-url <url>",
		Short: "Fetch the dataset from a remote catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := url.Parse(args[0])
			if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
				return fmt.Errorf("invalid url %q: want http(s)://host", args[0])
			}

			cfg, err := readOrEmpty()
			if err != nil {
				return err
			}
			cfg.SourceURL = args[0]
			// A URL only takes effect when no local file is configured.
			cfg.DatasetPath = ""
			if cmd.Flags().Changed("api-key") {
				cfg.APIKey = apiKey
			}
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "source url set to %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&apiKey, "api-key", "", "bearer token for the catalog")
	return cmd
}
