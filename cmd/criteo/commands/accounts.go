package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joepikowski/criteo-api-go-client/internal/constants"
	"github.com/joepikowski/criteo-api-go-client/pkg/criteo"
)

// NewAccountsCommand creates the accounts command group.
func NewAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"account"},
		Short:   "Manage retail media accounts",
		Long:    "List accounts and inspect their brands and retailers",
	}

	cmd.AddCommand(newAccountsListCommand())
	cmd.AddCommand(newAccountsGetCommand())
	cmd.AddCommand(newAccountsBrandsCommand())
	cmd.AddCommand(newAccountsRetailersCommand())

	return cmd
}

func newAccountsListCommand() *cobra.Command {
	var (
		pageIndex int
		pageSize  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Long:  "List all retail media accounts the credentials have access to",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccountsListCommand(pageIndex, pageSize)
		},
	}

	cmd.Flags().IntVar(&pageIndex, "page", 0, "zero-based page index")
	cmd.Flags().IntVar(&pageSize, "page-size", constants.DefaultPageSize, "results per page")

	return cmd
}

func runAccountsListCommand(pageIndex, pageSize int) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	params := criteo.NewQueryParams().WithPageIndex(pageIndex).WithPageSize(pageSize)

	accounts, err := client.Accounts().List(context.Background(), params)
	if err != nil {
		return fmt.Errorf("failed to list accounts: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(accounts.Data)
	case OutputFormatYAML:
		return StandardYAMLRenderer(accounts.Data)
	default:
		return renderAccountTable(accounts)
	}
}

func renderAccountTable(accounts *criteo.ListEnvelope[criteo.Account]) error {
	if len(accounts.Data) == 0 {
		_, _ = os.Stdout.WriteString("No accounts found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Type", "Currency", "Countries")

	for _, account := range accounts.Data {
		_ = table.Append(account.ID, account.Attributes.Name,
			account.Attributes.Type, account.Attributes.CurrencyID,
			strings.Join(account.Attributes.CountryIDs, ","))
	}

	_ = table.Render()

	renderPageFooter(accounts.Metadata)

	return nil
}

// renderPageFooter prints a pagination hint below a table when the list
// spans more than one page.
func renderPageFooter(metadata *criteo.PageMetadata) {
	if metadata == nil || metadata.TotalPages <= 1 {
		return
	}

	_, _ = fmt.Fprintf(os.Stdout, "\nShowing page %d of %d (%d items total). Use --page to fetch more.\n",
		metadata.CurrentPageIndex+1, metadata.TotalPages, metadata.TotalItemsAcrossAllPages)
}

func newAccountsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ACCOUNT_ID",
		Short: "Get account details",
		Long:  "Display detailed information about a specific account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccountsGetCommand(args[0])
		},
	}
}

func runAccountsGetCommand(accountID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	account, err := client.Accounts().Get(context.Background(), accountID)
	if err != nil {
		return fmt.Errorf("failed to get account: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(account.Data)
	case OutputFormatYAML:
		return StandardYAMLRenderer(account.Data)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")

		_ = table.Append("ID", account.Data.ID)
		_ = table.Append("Name", account.Data.Attributes.Name)
		_ = table.Append("Type", account.Data.Attributes.Type)
		_ = table.Append("Subtype", account.Data.Attributes.Subtype)
		_ = table.Append("Currency", account.Data.Attributes.CurrencyID)
		_ = table.Append("Countries", strings.Join(account.Data.Attributes.CountryIDs, ","))
		_ = table.Append("Parent", account.Data.Attributes.ParentAccountLabel)

		_ = table.Render()

		return nil
	}
}

func newAccountsBrandsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "brands ACCOUNT_ID",
		Short: "List account brands",
		Long:  "List the brands an account can advertise for",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccountsBrandsCommand(args[0])
		},
	}
}

func runAccountsBrandsCommand(accountID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	brands, err := client.Accounts().ListBrands(context.Background(), accountID, nil)
	if err != nil {
		return fmt.Errorf("failed to list brands: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(brands.Data)
	case OutputFormatYAML:
		return StandardYAMLRenderer(brands.Data)
	default:
		if len(brands.Data) == 0 {
			_, _ = os.Stdout.WriteString("No brands found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Name")

		for _, brand := range brands.Data {
			_ = table.Append(brand.ID, brand.Attributes.Name)
		}

		_ = table.Render()

		renderPageFooter(brands.Metadata)

		return nil
	}
}

func newAccountsRetailersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "retailers ACCOUNT_ID",
		Short: "List account retailers",
		Long:  "List the retailers an account can run campaigns on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccountsRetailersCommand(args[0])
		},
	}
}

func runAccountsRetailersCommand(accountID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	retailers, err := client.Accounts().ListRetailers(context.Background(), accountID, nil)
	if err != nil {
		return fmt.Errorf("failed to list retailers: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(retailers.Data)
	case OutputFormatYAML:
		return StandardYAMLRenderer(retailers.Data)
	default:
		if len(retailers.Data) == 0 {
			_, _ = os.Stdout.WriteString("No retailers found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Name", "Eligibilities")

		for _, retailer := range retailers.Data {
			_ = table.Append(retailer.ID, retailer.Attributes.Name,
				strings.Join(retailer.Attributes.CampaignEligibilities, ","))
		}

		_ = table.Render()

		renderPageFooter(retailers.Metadata)

		return nil
	}
}
