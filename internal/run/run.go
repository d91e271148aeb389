// Package run drives a full generation run: batched record assembly,
// per-record validation, progress logging, and summary statistics.
package run

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ovolkova/clinicgen/internal/assemble"
	"github.com/ovolkova/clinicgen/internal/config"
	"github.com/ovolkova/clinicgen/internal/model"
	"github.com/ovolkova/clinicgen/internal/track"
	"github.com/ovolkova/clinicgen/internal/validate"
)

// RunError wraps an error with the phase where it occurred.
type RunError struct {
	Phase string
	Err   error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// Result is the outcome of one generation run.
type Result struct {
	Records []model.VisitRecord
	Summary model.RunSummary
}

// Generate produces the full dataset. Validation and business-rule
// problems are logged and counted but the records stay in the output;
// a record that fails to assemble is skipped. Only an exhausted client
// retry budget aborts the run.
func Generate(log zerolog.Logger, cfg *config.Config) (*Result, error) {
	start := time.Now()
	runID := uuid.New()

	log = log.With().Str("run_id", runID.String()).Logger()
	log.Info().
		Int("size", cfg.Size).
		Int64("seed", cfg.Seed).
		Float64("repeat_probability", cfg.RepeatProbability).
		Int("card_reuse_limit", cfg.CardReuseLimit).
		Msg("starting generation")

	// Single seeded stream: the run is deterministic per seed.
	rng := rand.New(rand.NewSource(cfg.Seed)) // #nosec G404 -- synthetic data, not security-sensitive
	tracker := track.New(cfg.CardReuseLimit)
	asm := assemble.New(rng, cfg, tracker)

	records := make([]model.VisitRecord, 0, cfg.Size)
	var validationErrs, businessErrs, skipped int

	for batchStart := 0; batchStart < cfg.Size; batchStart += cfg.BatchSize {
		batchEnd := min(batchStart+cfg.BatchSize, cfg.Size)
		log.Info().Int("from", batchStart+1).Int("to", batchEnd).Int("of", cfg.Size).Msg("generating batch")

		batchFirst := len(records)
		for i := batchStart; i < batchEnd; i++ {
			rec, err := asm.Next()
			if err != nil {
				if errors.Is(err, assemble.ErrRetryBudget) {
					return nil, &RunError{Phase: "generate", Err: err}
				}
				skipped++
				log.Error().Err(err).Int("record", i+1).Msg("record skipped")
				continue
			}

			if ok, problems := validate.Record(rec); !ok {
				validationErrs += len(problems)
				log.Warn().Int("record", i+1).Strs("problems", problems).Msg("validation errors")
			}
			if problems := validate.Business(rec, cfg.Window); len(problems) > 0 {
				businessErrs += len(problems)
				log.Warn().Int("record", i+1).Strs("problems", problems).Msg("business-rule errors")
			}

			records = append(records, *rec)
		}

		logSamples(log, records[batchFirst:])

		progress := float64(len(records)) / float64(cfg.Size) * 100
		log.Info().
			Int("generated", len(records)).
			Int("of", cfg.Size).
			Str("progress", fmt.Sprintf("%.1f%%", progress)).
			Msg("batch complete")
	}

	summary := model.RunSummary{
		RunID:            runID.String(),
		Seed:             cfg.Seed,
		RequestedRecords: cfg.Size,
		GeneratedRecords: len(records),
		SkippedRecords:   skipped,
		NewClients:       asm.NewClients(),
		RepeatVisits:     asm.RepeatVisits(),
		ValidationErrors: validationErrs,
		BusinessErrors:   businessErrs,
		CardsForced:      asm.CardsForced(),
		Tracker:          tracker.Stats(),
		DurationGenerate: time.Since(start),
	}

	log.Info().
		Int("records", summary.GeneratedRecords).
		Int("new_clients", summary.NewClients).
		Int("repeat_visits", summary.RepeatVisits).
		Int("validation_errors", summary.ValidationErrors).
		Int("unique_cards", summary.Tracker.CardsInUse).
		Str("duration", summary.DurationGenerate.String()).
		Msg("generation complete")

	return &Result{Records: records, Summary: summary}, nil
}

// logSamples logs one or two example passports per batch with their
// full breakdown, long-form fields included for RU.
func logSamples(log zerolog.Logger, batch []model.VisitRecord) {
	n := min(len(batch), 2)
	for i := 0; i < n; i++ {
		rec := &batch[i]
		ev := log.Info().
			Str("fio", rec.FIO).
			Str("country", rec.PassportCountry).
			Str("passport", rec.PassportData).
			Str("snils", rec.SNILS)
		if rec.PassportCountry == model.PrimaryCountry && rec.PassportIssueDate != "" {
			ev = ev.
				Str("issue_date", rec.PassportIssueDate).
				Str("department_code", rec.PassportDepartmentCode)
		}
		ev.Msg("sample passport")
	}
}
