package cli

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ecomsynth/ecomsynth/internal/dataset"
	"github.com/ecomsynth/ecomsynth/internal/gen"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	ConfigPath string
	OutDir     string
	Seed       int64
	Customers  int
	Products   int
}

// GenerateSummary is the result payload of a generate run.
type GenerateSummary struct {
	RunID  string         `json:"run_id"`
	Seed   int64          `json:"seed"`
	OutDir string         `json:"out_dir"`
	Tables map[string]int `json:"tables"`
}

func (s GenerateSummary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generated dataset %s (seed %d) in %s\n", s.RunID, s.Seed, s.OutDir)
	names := make([]string, 0, len(s.Tables))
	for name := range s.Tables {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "  %-12s %d rows", name, s.Tables[name])
		if name != names[len(names)-1] {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate synthetic e-commerce CSV fixtures",
		Long: `Generate five related CSV files (customers, products, orders,
order_items, payments) with consistent cross-references, plus a
manifest.yaml recording the seed and row counts.

Every payment amount equals the exact sum of its order's item line totals.
A zero --seed produces a fresh dataset each run; any other value is fully
reproducible.

Example:
  ecomsynth generate --out ./data --seed 2024
  ecomsynth generate --config gen.yaml --customers 50`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to YAML generation config")
	cmd.Flags().StringVar(&opts.OutDir, "out", "data", "output directory for CSV files")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "random seed (0 = non-deterministic)")
	cmd.Flags().IntVar(&opts.Customers, "customers", 0, "override customer count")
	cmd.Flags().IntVar(&opts.Products, "products", 0, "override product count")

	return cmd
}

func runGenerate(opts *GenerateOptions, cmd *cobra.Command) error {
	cfg, err := buildConfig(opts, cmd)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load generation config", err)
	}

	g, err := gen.New(cfg, time.Now())
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid generation config", err)
	}

	slog.Info("generating dataset", "seed", g.Seed(), "customers", cfg.Customers, "products", cfg.Products)
	d, err := g.Generate()
	if err != nil {
		return WrapExitError(ExitFailure, "generation failed", err)
	}

	// Self-check before anything touches disk.
	if err := d.Validate(); err != nil {
		return WrapExitError(ExitFailure, "generated dataset failed integrity check", err)
	}

	if err := dataset.WriteAll(opts.OutDir, d); err != nil {
		return WrapExitError(ExitCommandError, "failed to write dataset", err)
	}

	manifest := dataset.Manifest{
		RunID:       uuid.NewString(),
		Seed:        g.Seed(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Tables:      d.Counts(),
	}
	if err := dataset.WriteManifest(opts.OutDir, manifest); err != nil {
		return WrapExitError(ExitCommandError, "failed to write manifest", err)
	}
	slog.Debug("manifest written", "run_id", manifest.RunID)

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	return formatter.Success(GenerateSummary{
		RunID:  manifest.RunID,
		Seed:   g.Seed(),
		OutDir: opts.OutDir,
		Tables: d.Counts(),
	})
}

// buildConfig layers flag overrides on top of the YAML config (or defaults).
func buildConfig(opts *GenerateOptions, cmd *cobra.Command) (gen.Config, error) {
	cfg := gen.DefaultConfig()
	if opts.ConfigPath != "" {
		var err error
		if cfg, err = gen.LoadConfig(opts.ConfigPath); err != nil {
			return gen.Config{}, err
		}
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = opts.Seed
	}
	if cmd.Flags().Changed("customers") {
		cfg.Customers = opts.Customers
	}
	if cmd.Flags().Changed("products") {
		cfg.Products = opts.Products
	}
	return cfg, nil
}
