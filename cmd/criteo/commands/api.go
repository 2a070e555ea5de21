package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joepikowski/criteo-api-go-client/pkg/criteo"
)

// NewAPICommand creates the raw API command.
func NewAPICommand() *cobra.Command {
	var queryParams []string

	cmd := &cobra.Command{
		Use:   "api PATH",
		Short: "Issue a raw API request",
		Long: `Issue a GET request to an arbitrary retail media API path and print
the JSON response. Useful for endpoints the typed commands do not cover.

Example:
  criteo api accounts/123/line-items --query pageSize=50`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPICommand(args[0], queryParams)
		},
	}

	cmd.Flags().StringSliceVarP(&queryParams, "query", "q", nil, "query parameter as key=value")

	return cmd
}

func runAPICommand(path string, queryParams []string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	params := criteo.NewQueryParams()

	for _, pair := range queryParams {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			return fmt.Errorf("invalid query parameter %q (expected key=value)", pair)
		}

		params.WithFilter(key, value)
	}

	result, err := client.GetJSON(context.Background(), path, params)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	output := viper.GetString("output")
	if output == OutputFormatYAML {
		return StandardYAMLRenderer(result)
	}

	return StandardJSONRenderer(result)
}
