package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joepikowski/criteo-api-go-client/internal/constants"
	"github.com/joepikowski/criteo-api-go-client/pkg/criteo"
)

// NewCampaignsCommand creates the campaigns command group.
func NewCampaignsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "campaigns",
		Aliases: []string{"campaign"},
		Short:   "Manage campaigns",
		Long:    "List, create, and update retail media campaigns",
	}

	cmd.AddCommand(newCampaignsListCommand())
	cmd.AddCommand(newCampaignsGetCommand())
	cmd.AddCommand(newCampaignsCreateCommand())
	cmd.AddCommand(newCampaignsUpdateCommand())

	return cmd
}

func newCampaignsListCommand() *cobra.Command {
	var (
		pageIndex int
		pageSize  int
	)

	cmd := &cobra.Command{
		Use:   "list ACCOUNT_ID",
		Short: "List campaigns",
		Long:  "List the campaigns belonging to an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCampaignsListCommand(args[0], pageIndex, pageSize)
		},
	}

	cmd.Flags().IntVar(&pageIndex, "page", 0, "zero-based page index")
	cmd.Flags().IntVar(&pageSize, "page-size", constants.DefaultPageSize, "results per page")

	return cmd
}

func runCampaignsListCommand(accountID string, pageIndex, pageSize int) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	params := criteo.NewQueryParams().WithPageIndex(pageIndex).WithPageSize(pageSize)

	campaigns, err := client.Campaigns().List(context.Background(), accountID, params)
	if err != nil {
		return fmt.Errorf("failed to list campaigns: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(campaigns.Data)
	case OutputFormatYAML:
		return StandardYAMLRenderer(campaigns.Data)
	default:
		return renderCampaignTable(campaigns)
	}
}

func renderCampaignTable(campaigns *criteo.ListEnvelope[criteo.Campaign]) error {
	if len(campaigns.Data) == 0 {
		_, _ = os.Stdout.WriteString("No campaigns found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Status", "Budget", "Spent", "Start", "End")

	for _, campaign := range campaigns.Data {
		_ = table.Append(campaign.ID, campaign.Attributes.Name,
			campaign.Attributes.Status,
			formatBudget(campaign.Attributes.Budget),
			strconv.FormatFloat(campaign.Attributes.BudgetSpent, 'f', 2, 64),
			campaign.Attributes.StartDate, campaign.Attributes.EndDate)
	}

	_ = table.Render()

	renderPageFooter(campaigns.Metadata)

	return nil
}

// formatBudget renders an optional budget, showing uncapped budgets as a
// dash.
func formatBudget(budget *float64) string {
	if budget == nil {
		return "-"
	}

	return strconv.FormatFloat(*budget, 'f', 2, 64)
}

func newCampaignsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CAMPAIGN_ID",
		Short: "Get campaign details",
		Long:  "Display detailed information about a specific campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCampaignsGetCommand(args[0])
		},
	}
}

func runCampaignsGetCommand(campaignID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	campaign, err := client.Campaigns().Get(context.Background(), campaignID)
	if err != nil {
		return fmt.Errorf("failed to get campaign: %w", err)
	}

	return outputCampaign(campaign)
}

func outputCampaign(campaign *criteo.Envelope[criteo.Campaign]) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(campaign.Data)
	case OutputFormatYAML:
		return StandardYAMLRenderer(campaign.Data)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")

		_ = table.Append("ID", campaign.Data.ID)
		_ = table.Append("Name", campaign.Data.Attributes.Name)
		_ = table.Append("Account", campaign.Data.Attributes.AccountID)
		_ = table.Append("Status", campaign.Data.Attributes.Status)
		_ = table.Append("Budget", formatBudget(campaign.Data.Attributes.Budget))
		_ = table.Append("Spent", strconv.FormatFloat(campaign.Data.Attributes.BudgetSpent, 'f', 2, 64))
		_ = table.Append("Start", campaign.Data.Attributes.StartDate)
		_ = table.Append("End", campaign.Data.Attributes.EndDate)
		_ = table.Append("Click window", campaign.Data.Attributes.ClickAttributionWindow)
		_ = table.Append("View window", campaign.Data.Attributes.ViewAttributionWindow)

		_ = table.Render()

		return nil
	}
}

func newCampaignsCreateCommand() *cobra.Command {
	var (
		name      string
		startDate string
		endDate   string
		budget    float64
	)

	cmd := &cobra.Command{
		Use:   "create ACCOUNT_ID",
		Short: "Create a campaign",
		Long:  "Create a new campaign under an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &criteo.CampaignCreate{
				Name:      name,
				StartDate: startDate,
				EndDate:   endDate,
			}
			if cmd.Flags().Changed("budget") {
				request.Budget = &budget
			}

			return runCampaignsCreateCommand(args[0], request)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "campaign name")
	cmd.Flags().StringVar(&startDate, "start-date", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "end date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&budget, "budget", 0, "total budget")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runCampaignsCreateCommand(accountID string, request *criteo.CampaignCreate) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	campaign, err := client.Campaigns().Create(context.Background(), accountID, request)
	if err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}

	return outputCampaign(campaign)
}

func newCampaignsUpdateCommand() *cobra.Command {
	var (
		name      string
		startDate string
		endDate   string
		budget    float64
	)

	cmd := &cobra.Command{
		Use:   "update CAMPAIGN_ID",
		Short: "Update a campaign",
		Long:  "Update an existing campaign's name, dates, or budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &criteo.CampaignUpdate{
				Name:      name,
				StartDate: startDate,
				EndDate:   endDate,
			}
			if cmd.Flags().Changed("budget") {
				request.Budget = &budget
			}

			return runCampaignsUpdateCommand(args[0], request)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "campaign name")
	cmd.Flags().StringVar(&startDate, "start-date", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "end date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&budget, "budget", 0, "total budget")

	return cmd
}

func runCampaignsUpdateCommand(campaignID string, request *criteo.CampaignUpdate) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	campaign, err := client.Campaigns().Update(context.Background(), campaignID, request)
	if err != nil {
		return fmt.Errorf("failed to update campaign: %w", err)
	}

	return outputCampaign(campaign)
}
