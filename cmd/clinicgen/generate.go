package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ovolkova/clinicgen/internal/exitcode"
	"github.com/ovolkova/clinicgen/internal/export"
	"github.com/ovolkova/clinicgen/internal/logging"
	"github.com/ovolkova/clinicgen/internal/run"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the dataset and write it to a file",
	RunE:  runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.IntVar(&cfg.Size, "size", cfg.Size, "Number of records to generate")
	f.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (same seed, same dataset)")
	f.StringVar(&cfg.Output, "output", cfg.Output, "Output file path")
	f.StringVar(&cfg.Format, "format", "", "Output format: xlsx, csv, or parquet (default: from extension)")
	f.Float64Var(&cfg.RepeatProbability, "repeat-probability", cfg.RepeatProbability, "Probability of a repeat visit once the client pool is warm")
	f.IntVar(&cfg.BatchSize, "batch-size", cfg.BatchSize, "Records per generation batch")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if cfgFile != "" {
		if err := cfg.LoadFromFile(cfgFile); err != nil {
			log.Error().Err(err).Str("config", cfgFile).Msg("config load failed")
			os.Exit(exitcode.UsageError)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	result, err := run.Generate(log, &cfg)
	if err != nil {
		var re *run.RunError
		if errors.As(err, &re) {
			log.Error().Err(re.Err).Str("phase", re.Phase).Msg("generation failed")
		} else {
			log.Error().Err(err).Msg("generation failed")
		}
		os.Exit(exitcode.GenerateError)
	}

	exportStart := time.Now()
	if err := export.Write(cfg.Output, cfg.Format, result.Records); err != nil {
		log.Error().Err(err).Str("output", cfg.Output).Msg("export failed")
		os.Exit(exitcode.ExportError)
	}
	sha, err := export.FileHash(cfg.Output)
	if err != nil {
		log.Error().Err(err).Str("output", cfg.Output).Msg("output hash failed")
		os.Exit(exitcode.ExportError)
	}

	summary := &result.Summary
	summary.OutputPath = cfg.Output
	summary.OutputSHA256 = sha
	summary.DurationExport = time.Since(exportStart)
	summary.DurationTotal = summary.DurationGenerate + summary.DurationExport

	log.Info().
		Str("output", cfg.Output).
		Str("format", export.ResolveFormat(cfg.Output, cfg.Format)).
		Str("sha256", sha).
		Str("duration", summary.DurationExport.String()).
		Msg("export complete")

	report := run.Report(summary)
	reportPath := reportPathFor(cfg.Output)
	if err := os.WriteFile(reportPath, []byte(report), 0o644); err != nil {
		log.Error().Err(err).Str("report", reportPath).Msg("report write failed")
		os.Exit(exitcode.ReportError)
	}

	fmt.Print(report)
	fmt.Printf("\nDataset written to %s, report to %s\n", cfg.Output, reportPath)
	return nil
}

// reportPathFor derives the report file name from the dataset path:
// clinic_dataset.xlsx becomes clinic_dataset_report.txt.
func reportPathFor(output string) string {
	ext := filepath.Ext(output)
	return strings.TrimSuffix(output, ext) + "_report.txt"
}
