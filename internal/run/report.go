package run

import (
	"fmt"
	"strings"

	"github.com/ovolkova/clinicgen/internal/model"
)

// Report renders the human-readable run report written next to the
// dataset file.
func Report(s *model.RunSummary) string {
	records := max(s.GeneratedRecords, 1)
	cards := max(s.Tracker.CardsInUse, 1)
	seconds := s.DurationGenerate.Seconds()
	if seconds <= 0 {
		seconds = 1e-9
	}

	var b strings.Builder
	fmt.Fprintf(&b, "PAID CLINIC DATASET GENERATION REPORT\n")
	fmt.Fprintf(&b, "=====================================\n\n")

	fmt.Fprintf(&b, "Run parameters:\n")
	fmt.Fprintf(&b, "- Run ID: %s\n", s.RunID)
	fmt.Fprintf(&b, "- Records: %d of %d requested (%d skipped)\n", s.GeneratedRecords, s.RequestedRecords, s.SkippedRecords)
	fmt.Fprintf(&b, "- Seed: %d\n", s.Seed)
	fmt.Fprintf(&b, "- Generation time: %.2f s\n\n", s.DurationGenerate.Seconds())

	fmt.Fprintf(&b, "Clients:\n")
	fmt.Fprintf(&b, "- New clients: %d\n", s.NewClients)
	fmt.Fprintf(&b, "- Repeat visits: %d\n", s.RepeatVisits)
	fmt.Fprintf(&b, "- Unique passports: %d\n", s.Tracker.UniquePassports)
	fmt.Fprintf(&b, "- Unique clients: %d\n\n", s.Tracker.UniqueClients)

	fmt.Fprintf(&b, "Payments:\n")
	fmt.Fprintf(&b, "- Unique cards: %d\n", s.Tracker.CardsInUse)
	fmt.Fprintf(&b, "- Total card charges: %d\n", s.Tracker.TotalCardUsage)
	fmt.Fprintf(&b, "- Average charges per card: %.2f\n", float64(s.Tracker.TotalCardUsage)/float64(cards))
	fmt.Fprintf(&b, "- Forced over-limit charges: %d\n\n", s.CardsForced)

	fmt.Fprintf(&b, "Data quality:\n")
	fmt.Fprintf(&b, "- Validation errors: %d\n", s.ValidationErrors)
	fmt.Fprintf(&b, "- Business-rule errors: %d\n", s.BusinessErrors)
	fmt.Fprintf(&b, "- Clean records: %.2f%%\n\n",
		float64(s.GeneratedRecords-s.ValidationErrors)/float64(records)*100)

	fmt.Fprintf(&b, "Throughput:\n")
	fmt.Fprintf(&b, "- Records per second: %.2f\n", float64(s.GeneratedRecords)/seconds)
	fmt.Fprintf(&b, "- Time per record: %.2f ms\n", seconds/float64(records)*1000)

	if s.OutputPath != "" {
		fmt.Fprintf(&b, "\nOutput:\n")
		fmt.Fprintf(&b, "- File: %s\n", s.OutputPath)
		fmt.Fprintf(&b, "- SHA-256: %s\n", s.OutputSHA256)
	}

	return b.String()
}
