package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ecomsynth/ecomsynth/internal/report"
	"github.com/ecomsynth/ecomsynth/internal/store"
)

// ReportOptions holds flags for the report command.
type ReportOptions struct {
	*RootOptions
	Database string
	Output   string
}

// ReportSummary is the JSON payload of a report run.
type ReportSummary struct {
	Rows   int    `json:"rows"`
	Output string `json:"output,omitempty"`
}

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run the sales detail report",
		Long: `Run the fixed sales detail join (customers, orders, payments,
order_items, products), print the result as a table, and write the same
rows to a CSV file.

Only orders whose payment amount is greater than zero appear. Rows are
ordered by order date, newest first.

Example:
  ecomsynth report --db ./db/ecom.db --out ./data/final_report.csv`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().StringVar(&opts.Output, "out", "data/final_report.csv", "report CSV output path")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runReport(opts *ReportOptions, cmd *cobra.Command) error {
	// The report never creates the database; a missing file means the load
	// stage has not run.
	if _, err := os.Stat(opts.Database); err != nil {
		return WrapExitError(ExitCommandError, "database not found, run 'ecomsynth load' first", err)
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	rows, err := report.Run(cmd.Context(), st)
	if err != nil {
		return WrapExitError(ExitFailure, "report query failed", err)
	}
	slog.Info("report computed", "rows", len(rows))

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

	if len(rows) == 0 {
		formatter.Textf("No rows returned by the report.")
		if opts.Format == "json" {
			return formatter.Success(ReportSummary{Rows: 0})
		}
		return nil
	}

	if opts.Format != "json" {
		report.RenderTable(cmd.OutOrStdout(), rows)
	}

	if err := report.WriteCSV(opts.Output, rows); err != nil {
		return WrapExitError(ExitCommandError, "failed to write report CSV", err)
	}
	formatter.Textf("Report saved to %s", opts.Output)

	if opts.Format == "json" {
		return formatter.Success(ReportSummary{Rows: len(rows), Output: opts.Output})
	}
	return nil
}
