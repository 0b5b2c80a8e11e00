package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// HealthCmd returns the `cardlist health` command.
func HealthCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the remote catalog is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := Resolve(*opts)
			if err != nil {
				return err
			}
			if settings.SourceURL == "" {
				return fmt.Errorf("no source url configured: pass --url or run 'cardlist config set-url <url>'")
			}

			client := settings.Client()
			status, err := client.Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("health check: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", client.BaseURL(), status)
			return nil
		},
	}
}
