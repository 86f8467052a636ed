package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ecomsynth/ecomsynth/internal/dataset"
	"github.com/ecomsynth/ecomsynth/internal/store"
)

// LoadOptions holds flags for the load command.
type LoadOptions struct {
	*RootOptions
	Database string
	DataDir  string
}

// LoadSummary is the result payload of a load run.
type LoadSummary struct {
	Database  string             `json:"database"`
	Tables    []store.TableCount `json:"tables"`
	TotalRows int64              `json:"total_rows"`
}

func (s LoadSummary) String() string {
	var b strings.Builder
	for _, tc := range s.Tables {
		fmt.Fprintf(&b, "Loaded %d rows into '%s'\n", tc.Rows, tc.Table)
	}
	fmt.Fprintf(&b, "All tables loaded into %s (total rows: %d)", s.Database, s.TotalRows)
	return b.String()
}

// NewLoadCommand creates the load command.
func NewLoadCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LoadOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load generated CSV fixtures into SQLite",
		Long: `Load the five CSV files into an embedded SQLite database under a fixed
schema with enforced foreign keys.

Existing tables are dropped and recreated, then loaded in dependency order:
customers, products, orders, order_items, payments. After each table the
inserted row count is verified against the file's record count; a mismatch
aborts the run. If manifest.yaml is present its counts are checked too.

Example:
  ecomsynth load --db ./db/ecom.db --data ./data`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().StringVar(&opts.DataDir, "data", "data", "directory holding the generated CSV files")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runLoad(opts *LoadOptions, cmd *cobra.Command) error {
	slog.Info("reading dataset", "dir", opts.DataDir)
	d, err := dataset.ReadAll(opts.DataDir)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read dataset", err)
	}

	if err := checkManifest(opts.DataDir, d); err != nil {
		return WrapExitError(ExitFailure, "dataset does not match its manifest", err)
	}

	slog.Info("opening database", "path", opts.Database)
	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	ctx := cmd.Context()
	if err := st.Reset(ctx); err != nil {
		return WrapExitError(ExitFailure, "failed to reset schema", err)
	}

	counts, err := st.LoadDataset(ctx, d)
	if err != nil {
		return WrapExitError(ExitFailure, "ingestion failed", err)
	}

	var total int64
	for _, tc := range counts {
		slog.Debug("table loaded", "table", tc.Table, "rows", tc.Rows)
		total += tc.Rows
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	return formatter.Success(LoadSummary{
		Database:  opts.Database,
		Tables:    counts,
		TotalRows: total,
	})
}

// checkManifest verifies CSV record counts against manifest.yaml when the
// manifest exists. A missing manifest only warns: hand-edited fixture
// directories are legitimate input.
func checkManifest(dir string, d *dataset.Dataset) error {
	m, err := dataset.ReadManifest(dir)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("no manifest.yaml found, skipping count cross-check", "dir", dir)
			return nil
		}
		return err
	}
	counts := d.Counts()
	for _, table := range dataset.TableOrder {
		if want, ok := m.Tables[table]; ok && want != counts[table] {
			return fmt.Errorf("%s: manifest records %d rows, files hold %d", table, want, counts[table])
		}
	}
	slog.Debug("manifest counts verified", "run_id", m.RunID)
	return nil
}
