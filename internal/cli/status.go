package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check server connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			health, err := apiClient.Health(ctx)
			if err != nil {
				return fmt.Errorf("server unreachable: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(health)
			}

			fmt.Printf("Server:   %s\n", health.Status)
			if health.Database != "" {
				fmt.Printf("Database: %s\n", health.Database)
			}
			return nil
		},
	}
}
