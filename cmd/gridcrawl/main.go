// Package main provides the CLI entry point for gridcrawl-go.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/gridcrawl-go/internal/config"
	"github.com/ukaji3/gridcrawl-go/internal/logging"
	"github.com/ukaji3/gridcrawl-go/internal/metrics"
	"github.com/ukaji3/gridcrawl-go/pkg/gridcrawl"
	"github.com/ukaji3/gridcrawl-go/pkg/gridcrawl/detector"
	"github.com/ukaji3/gridcrawl-go/pkg/gridcrawl/models"
	"github.com/ukaji3/gridcrawl-go/pkg/gridcrawl/output"
)

type flags struct {
	outputPath  string
	pretty      bool
	format      string
	sheets      []string
	sheetsDir   string
	cellRange   string
	printAreas  bool
	stagger     string
	configPath  string
	logLevel    string
	metricsFile string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	rootCmd := &cobra.Command{
		Use:   "gridcrawl [input.xlsx]",
		Short: "Detect tables laid out on Excel sheets",
		Long: `gridcrawl-go scans each sheet of an Excel file, groups the populated
cells into independent tables and outputs them as JSON.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f)
		},
	}

	rootCmd.Flags().StringVarP(&f.outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&f.format, "format", "keyed", "Output format: raw, positional, keyed, summary")
	rootCmd.Flags().StringSliceVar(&f.sheets, "sheet", nil, "Sheet to crawl (repeatable, default: all sheets)")
	rootCmd.Flags().StringVar(&f.sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	rootCmd.Flags().StringVar(&f.cellRange, "range", "", "Restrict every sheet to a cell range, e.g. A1:H40")
	rootCmd.Flags().BoolVar(&f.printAreas, "print-areas", false, "Restrict each sheet to its print area")
	rootCmd.Flags().StringVar(&f.stagger, "stagger", "flag", "Deep stair-step handling: flag, strict, resolve")
	rootCmd.Flags().StringVar(&f.configPath, "config", "", "YAML configuration file")
	rootCmd.Flags().StringVar(&f.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&f.metricsFile, "metrics-file", "", "Write crawl metrics in Prometheus text format to this file")

	return rootCmd
}

func run(cmd *cobra.Command, args []string, f *flags) error {
	inputPath := args[0]

	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	stagger, err := detector.ParseStaggerPolicy(cfg.Crawl.Stagger)
	if err != nil {
		return err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	logCfg.Development = cfg.Log.Development
	logger, err := logging.New(logCfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	reg := prometheus.NewRegistry()

	opts := gridcrawl.Options{
		Sheets:        f.sheets,
		Range:         f.cellRange,
		UsePrintAreas: cfg.Crawl.PrintAreas,
		Stagger:       stagger,
		Logger:        logger,
		Metrics:       metrics.NewCollector(reg),
	}

	// Detect grids
	wb, err := gridcrawl.Crawl(inputPath, opts)
	if err != nil {
		return fmt.Errorf("crawl failed: %w", err)
	}

	if f.metricsFile != "" {
		if err := prometheus.WriteToTextfile(f.metricsFile, reg); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	// Serialize to JSON
	view, err := output.RenderWorkbook(wb, format)
	if err != nil {
		return err
	}
	jsonData, err := output.ToJSON(view, cfg.Output.Pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Write output
	if f.outputPath != "" {
		if err := os.WriteFile(f.outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if f.sheetsDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	}

	// Write per-sheet files
	if f.sheetsDir != "" {
		if err := writeSheetFiles(wb, format, cfg.Output.Pretty, f.sheetsDir); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	return nil
}

// loadConfig reads the config file and environment, then applies the
// flags the user set explicitly.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("format") {
		cfg.Output.Format = f.format
	}
	if changed("pretty") {
		cfg.Output.Pretty = f.pretty
	}
	if changed("stagger") {
		cfg.Crawl.Stagger = f.stagger
	}
	if changed("print-areas") {
		cfg.Crawl.PrintAreas = f.printAreas
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func writeSheetFiles(wb *models.WorkbookGrids, format output.Format, pretty bool, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, sheetName := range wb.SheetOrder {
		sheet := wb.Sheets[sheetName]
		view, err := output.Render(&sheet, format)
		if err != nil {
			return err
		}
		jsonData, err := output.ToJSON(view, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sheetName+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}
