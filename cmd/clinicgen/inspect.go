package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ovolkova/clinicgen/internal/exitcode"
	"github.com/ovolkova/clinicgen/internal/logging"
	"github.com/ovolkova/clinicgen/internal/run"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Dry-run generation and print distribution stats (no file writes)",
	RunE:  runInspect,
}

func init() {
	f := inspectCmd.Flags()
	f.IntVar(&cfg.Size, "size", cfg.Size, "Number of records to generate")
	f.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (same seed, same dataset)")
	f.Float64Var(&cfg.RepeatProbability, "repeat-probability", cfg.RepeatProbability, "Probability of a repeat visit once the client pool is warm")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
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
		log.Error().Err(err).Msg("generation failed")
		os.Exit(exitcode.GenerateError)
	}

	doctors := make(map[string]int)
	countries := make(map[string]int)
	var costTotal, costCount, costMin, costMax int
	for i := range result.Records {
		rec := &result.Records[i]
		doctors[rec.DoctorChoice]++
		countries[rec.PassportCountry]++
		if cost, ok := parseCost(rec.AnalysisCost); ok {
			if costCount == 0 || cost < costMin {
				costMin = cost
			}
			if cost > costMax {
				costMax = cost
			}
			costTotal += cost
			costCount++
		}
	}

	total := len(result.Records)
	fmt.Println("=== clinicgen inspect ===")
	fmt.Printf("Records:   %d\n", total)
	fmt.Printf("Seed:      %d\n", cfg.Seed)
	fmt.Printf("Clients:   %d new, %d repeat visits\n", result.Summary.NewClients, result.Summary.RepeatVisits)
	fmt.Printf("Cards:     %d unique, %d charges, %d forced over limit\n",
		result.Summary.Tracker.CardsInUse, result.Summary.Tracker.TotalCardUsage, result.Summary.CardsForced)
	fmt.Println()

	fmt.Println("Passport countries:")
	printCounts(countries, total)
	fmt.Println()
	fmt.Println("Doctor choices:")
	printCounts(doctors, total)

	if costCount > 0 {
		fmt.Println()
		fmt.Println("Analysis costs:")
		fmt.Printf("  min %d, avg %.0f, max %d руб.\n", costMin, float64(costTotal)/float64(costCount), costMax)
	}

	if result.Summary.ValidationErrors > 0 || result.Summary.BusinessErrors > 0 {
		fmt.Printf("\nProblems: %d validation, %d business-rule\n",
			result.Summary.ValidationErrors, result.Summary.BusinessErrors)
	}
	return nil
}

// printCounts prints a count map sorted by descending frequency.
func printCounts(counts map[string]int, total int) {
	type entry struct {
		name  string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, entry{name, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})
	for _, e := range entries {
		fmt.Printf("  %-20s %6d  (%.1f%%)\n", e.name, e.count, float64(e.count)/float64(total)*100)
	}
}

// parseCost extracts the integer amount from a "1500 руб." cost string.
func parseCost(s string) (int, bool) {
	amount, _, found := strings.Cut(s, " ")
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(amount)
	if err != nil {
		return 0, false
	}
	return n, true
}
