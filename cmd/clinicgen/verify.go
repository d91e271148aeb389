package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ovolkova/clinicgen/internal/exitcode"
	"github.com/ovolkova/clinicgen/internal/export"
	"github.com/ovolkova/clinicgen/internal/logging"
	"github.com/ovolkova/clinicgen/internal/model"
	"github.com/ovolkova/clinicgen/internal/validate"
)

var verifyFile string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Re-validate a previously written dataset file",
	RunE:  runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyFile, "file", "", "Path to dataset file, csv or parquet (required)")
	_ = verifyCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if cfgFile != "" {
		if err := cfg.LoadFromFile(cfgFile); err != nil {
			log.Error().Err(err).Str("config", cfgFile).Msg("config load failed")
			os.Exit(exitcode.UsageError)
		}
	}

	var records []model.VisitRecord
	var err error
	switch ext := strings.ToLower(filepath.Ext(verifyFile)); ext {
	case ".csv":
		records, err = export.ReadCSV(verifyFile)
	case ".parquet":
		records, err = export.ReadParquet(verifyFile)
	default:
		log.Error().Str("file", verifyFile).Msg("verify supports csv and parquet files")
		os.Exit(exitcode.UsageError)
	}
	if err != nil {
		log.Error().Err(err).Str("file", verifyFile).Msg("failed to read dataset")
		os.Exit(exitcode.ValidationError)
	}

	sha, err := export.FileHash(verifyFile)
	if err != nil {
		log.Error().Err(err).Str("file", verifyFile).Msg("failed to hash file")
		os.Exit(exitcode.ValidationError)
	}

	var badRecords, validationErrs, businessErrs int
	for i := range records {
		rec := &records[i]
		ok, problems := validate.Record(rec)
		business := validate.Business(rec, cfg.Window)
		if !ok || len(business) > 0 {
			badRecords++
			validationErrs += len(problems)
			businessErrs += len(business)
			for _, p := range append(problems, business...) {
				log.Warn().Int("record", i+1).Str("fio", rec.FIO).Msg(p)
			}
		}
	}

	fmt.Println("=== clinicgen verify ===")
	fmt.Printf("File:       %s\n", verifyFile)
	fmt.Printf("SHA-256:    %s\n", sha)
	fmt.Printf("Records:    %d\n", len(records))
	fmt.Printf("Bad:        %d (%d validation, %d business-rule problems)\n",
		badRecords, validationErrs, businessErrs)
	if badRecords > 0 {
		os.Exit(exitcode.ValidationError)
	}
	fmt.Println("Validation: OK")
	return nil
}
