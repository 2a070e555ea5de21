package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joepikowski/criteo-api-go-client/pkg/criteo"
)

// NewReportsCommand creates the reports command group.
func NewReportsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reports",
		Aliases: []string{"report"},
		Short:   "Manage analytics reports",
		Long:    "Request asynchronous analytics reports, poll their status, and download results",
	}

	cmd.AddCommand(newReportsRequestCommand())
	cmd.AddCommand(newReportsStatusCommand())
	cmd.AddCommand(newReportsOutputCommand())
	cmd.AddCommand(newReportsDownloadCommand())

	return cmd
}

func newReportsRequestCommand() *cobra.Command {
	var (
		level      string
		ids        []string
		startDate  string
		endDate    string
		timezone   string
		format     string
		dimensions []string
		metrics    []string
		wait       bool
	)

	cmd := &cobra.Command{
		Use:   "request",
		Short: "Request a report",
		Long:  "Request a campaign-level or line-item-level analytics report",
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &criteo.ReportRequest{
				IDs:        ids,
				StartDate:  startDate,
				EndDate:    endDate,
				Timezone:   timezone,
				Format:     format,
				Dimensions: dimensions,
				Metrics:    metrics,
			}

			return runReportsRequestCommand(level, request, wait)
		},
	}

	cmd.Flags().StringVar(&level, "level", "campaigns", "report level (campaigns or line-items)")
	cmd.Flags().StringSliceVar(&ids, "id", nil, "campaign or line item IDs to report on")
	cmd.Flags().StringVar(&startDate, "start-date", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&timezone, "timezone", "", "report timezone")
	cmd.Flags().StringVar(&format, "format", "", "output format requested from the API (json or csv)")
	cmd.Flags().StringSliceVar(&dimensions, "dimension", nil, "report dimensions")
	cmd.Flags().StringSliceVar(&metrics, "metric", nil, "report metrics")
	cmd.Flags().BoolVar(&wait, "wait", false, "poll until the report completes")
	_ = cmd.MarkFlagRequired("start-date")
	_ = cmd.MarkFlagRequired("end-date")

	return cmd
}

func runReportsRequestCommand(level string, request *criteo.ReportRequest, wait bool) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	var report *criteo.Envelope[criteo.ReportStatus]

	switch level {
	case "campaigns":
		report, err = client.Reports().RequestCampaignReport(ctx, request)
	case "line-items":
		report, err = client.Reports().RequestLineItemReport(ctx, request)
	default:
		return fmt.Errorf("unknown report level %q (expected campaigns or line-items)", level)
	}

	if err != nil {
		return fmt.Errorf("failed to request report: %w", err)
	}

	if wait {
		report, err = client.Reports().WaitForReport(ctx, report.Data.ID)
		if err != nil {
			return fmt.Errorf("failed waiting for report: %w", err)
		}
	}

	return outputReportStatus(report)
}

func newReportsStatusCommand() *cobra.Command {
	var wait bool

	cmd := &cobra.Command{
		Use:   "status REPORT_ID",
		Short: "Check report status",
		Long:  "Display the processing status of an asynchronous report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReportsStatusCommand(args[0], wait)
		},
	}

	cmd.Flags().BoolVar(&wait, "wait", false, "poll until the report completes")

	return cmd
}

func runReportsStatusCommand(reportID string, wait bool) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	var report *criteo.Envelope[criteo.ReportStatus]
	if wait {
		report, err = client.Reports().WaitForReport(ctx, reportID)
	} else {
		report, err = client.Reports().Status(ctx, reportID)
	}

	if err != nil {
		return fmt.Errorf("failed to get report status: %w", err)
	}

	return outputReportStatus(report)
}

func outputReportStatus(report *criteo.Envelope[criteo.ReportStatus]) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(report.Data)
	case OutputFormatYAML:
		return StandardYAMLRenderer(report.Data)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")

		_ = table.Append("ID", report.Data.ID)
		_ = table.Append("Status", report.Data.Attributes.Status)

		if report.Data.Attributes.RowCount != nil {
			_ = table.Append("Rows", strconv.FormatInt(*report.Data.Attributes.RowCount, 10))
		}

		if report.Data.Attributes.FileSizeBytes != nil {
			_ = table.Append("Size", strconv.FormatInt(*report.Data.Attributes.FileSizeBytes, 10))
		}

		if report.Data.Attributes.Message != "" {
			_ = table.Append("Message", report.Data.Attributes.Message)
		}

		if report.Data.Attributes.ExpiresAt != nil {
			_ = table.Append("Expires", report.Data.Attributes.ExpiresAt.Format("2006-01-02 15:04:05"))
		}

		_ = table.Render()

		return nil
	}
}

func newReportsOutputCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "output REPORT_ID",
		Short: "Print report output",
		Long:  "Print the raw output of a completed report to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			output, err := client.Reports().Output(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to fetch report output: %w", err)
			}

			_, _ = os.Stdout.WriteString(output)

			if !strings.HasSuffix(output, "\n") {
				_, _ = os.Stdout.WriteString("\n")
			}

			return nil
		},
	}
}

func newReportsDownloadCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "download REPORT_ID",
		Short: "Download report output",
		Long:  "Download the output of a completed report to a local file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReportsDownloadCommand(args[0], path)
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", "destination file path")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runReportsDownloadCommand(reportID, path string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	confirmation, err := client.Reports().Download(context.Background(), reportID, path)
	if err != nil {
		return fmt.Errorf("failed to download report: %w", err)
	}

	fmt.Println(confirmation)

	return nil
}
