package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewTokenCommand creates the token command.
func NewTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Print an access token",
		Long: `Authenticate with the configured credentials and print the resulting
access token. Useful for calling the API with other tooling.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			token, err := client.GetToken(context.Background())
			if err != nil {
				return fmt.Errorf("failed to obtain token: %w", err)
			}

			fmt.Println(token)

			return nil
		},
	}
}
