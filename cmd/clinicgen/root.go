package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ovolkova/clinicgen/internal/config"
	"github.com/ovolkova/clinicgen/internal/exitcode"
)

var (
	cfg     = config.Default()
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "clinicgen",
	Short: "Paid-clinic synthetic dataset generator",
	Long:  "Generates a synthetic paid-clinic patient visit dataset: identity documents, visit and analysis timestamps, costs, and payment cards.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text or json")
	pf.StringVar(&cfgFile, "config", "", "Path to YAML config file with generation knobs")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
