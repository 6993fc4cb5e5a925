// Package main provides the CLI entry point for salesextract.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/salesextract-go/internal/config"
	"github.com/ukaji3/salesextract-go/internal/logging"
	"github.com/ukaji3/salesextract-go/internal/telemetry"
	"github.com/ukaji3/salesextract-go/pkg/salesextract"
	"github.com/ukaji3/salesextract-go/pkg/salesextract/output"
	"github.com/ukaji3/salesextract-go/pkg/salesextract/stores"
)

var version = "dev"

var (
	configPath  string
	envFile     string
	outputPath  string
	format      string
	pretty      bool
	storesFile  string
	metricsFile string
	trace       bool
	logLevel    string
	quiet       bool
	monthAfter  bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "salesextract [file...]",
		Short: "Extract store sales figures from POS sales summary spreadsheets",
		Long: `salesextract scans POS sales summary exports (.xlsx, .xls, .csv) for the
store number, reporting month, net sales, order count and revenue categories,
and prints one row per store plus a totals row.`,
		Version:      version,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "YAML config file")
	flags.StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading SALESX_* variables")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&storesFile, "stores", "", "YAML store address table replacing the built-in one")

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json, csv, xlsx")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus metrics to this file")
	rootCmd.Flags().BoolVar(&trace, "trace", false, "Print trace spans to stderr")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print the extraction log")
	rootCmd.Flags().BoolVar(&monthAfter, "month-after-store", false, "Keep looking for the month below the store line")

	rootCmd.AddCommand(newSampleCmd(), newStoresCmd())
	return rootCmd
}

// loadConfig reads the configuration and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath, envFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if flags.Changed("format") {
		cfg.Output.Format = format
	}
	if flags.Changed("pretty") {
		cfg.Output.Pretty = pretty
	}
	if flags.Changed("stores") {
		cfg.Extract.StoresFile = storesFile
	}
	if flags.Changed("metrics-file") {
		cfg.Telemetry.MetricsFile = metricsFile
	}
	if flags.Changed("trace") {
		cfg.Telemetry.Trace = trace
	}
	if flags.Changed("month-after-store") {
		cfg.Extract.MonthAfterStore = monthAfter
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Logging, cmd.ErrOrStderr())
	slog.SetDefault(logger)

	runID := uuid.NewString()
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	ctx = logging.WithRunID(ctx, runID)

	if cfg.Telemetry.Trace {
		shutdown, err := telemetry.InitTracing(cmd.ErrOrStderr(), version)
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Warn("trace shutdown failed", "error", err)
			}
		}()
	}

	opts := salesextract.DefaultOptions()
	opts.Limits = cfg.Extract.Limits()
	opts.Logger = logger
	opts.RunID = runID

	if cfg.Extract.StoresFile != "" {
		table, err := loadStores(cfg.Extract.StoresFile)
		if err != nil {
			return err
		}
		opts.Stores = table
	}

	registry := prometheus.NewRegistry()
	opts.Metrics = salesextract.NewMetrics(registry)

	// Validate input files exist
	inputs, err := salesextract.ReadFiles(args)
	if err != nil {
		return err
	}

	res, err := salesextract.Extract(ctx, inputs, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if !quiet {
		for _, line := range res.Log {
			fmt.Fprintln(cmd.ErrOrStderr(), line)
		}
	}

	data, err := render(res, cfg.Output)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if err := writeOutput(cmd.OutOrStdout(), data); err != nil {
		return err
	}

	if cfg.Telemetry.MetricsFile != "" {
		if err := telemetry.WriteMetrics(cfg.Telemetry.MetricsFile, registry); err != nil {
			return err
		}
	}

	logger.InfoContext(ctx, "done", "records", len(res.Records), "failures", len(res.Failures))
	return nil
}

func render(res *salesextract.Result, cfg config.OutputConfig) ([]byte, error) {
	var buf bytes.Buffer
	switch cfg.Format {
	case "csv":
		if err := output.WriteCSV(&buf, res.Records); err != nil {
			return nil, err
		}
	case "xlsx":
		if err := output.WriteXLSX(&buf, res.Records); err != nil {
			return nil, err
		}
	default:
		data, err := output.ToJSON(res, cfg.Pretty)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func writeOutput(stdout io.Writer, data []byte) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err := stdout.Write(data)
	return err
}

func loadStores(path string) (*stores.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store table: %w", err)
	}
	defer f.Close()
	return stores.Load(f)
}
