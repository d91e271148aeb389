package run

import (
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ovolkova/clinicgen/internal/config"
)

var errTest = errors.New("boom")

func TestGenerate_Summary(t *testing.T) {
	cfg := config.Default()
	cfg.Size = 60
	cfg.BatchSize = 25
	cfg.Seed = 7

	result, err := Generate(zerolog.Nop(), &cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	s := result.Summary
	if len(result.Records) != 60 {
		t.Fatalf("generated %d records, want 60", len(result.Records))
	}
	if s.GeneratedRecords != 60 || s.RequestedRecords != 60 || s.SkippedRecords != 0 {
		t.Errorf("counts: %+v", s)
	}
	if s.NewClients+s.RepeatVisits != s.GeneratedRecords {
		t.Errorf("new %d + repeat %d != generated %d", s.NewClients, s.RepeatVisits, s.GeneratedRecords)
	}
	if s.Tracker.TotalCardUsage != s.GeneratedRecords {
		t.Errorf("card charges %d != records %d", s.Tracker.TotalCardUsage, s.GeneratedRecords)
	}
	if s.Tracker.UniquePassports == 0 || s.Tracker.CardsInUse == 0 {
		t.Errorf("empty tracker stats: %+v", s.Tracker)
	}
	if s.RunID == "" || s.Seed != 7 {
		t.Errorf("run metadata: id=%q seed=%d", s.RunID, s.Seed)
	}
	if s.DurationGenerate <= 0 {
		t.Errorf("DurationGenerate = %s", s.DurationGenerate)
	}
}

func TestGenerate_RecordFieldsPopulated(t *testing.T) {
	cfg := config.Default()
	cfg.Size = 20
	cfg.Seed = 1

	result, err := Generate(zerolog.Nop(), &cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for i, rec := range result.Records {
		if rec.FIO == "" || rec.PassportData == "" || rec.VisitDate == "" ||
			rec.AnalysisDate == "" || rec.AnalysisCost == "" || rec.PaymentCard == "" {
			t.Errorf("record %d has empty required fields: %+v", i, rec)
		}
	}
}

func TestRunError(t *testing.T) {
	inner := &RunError{Phase: "generate", Err: errTest}
	if !strings.Contains(inner.Error(), "generate") {
		t.Errorf("Error() = %q", inner.Error())
	}
	if inner.Unwrap() != errTest {
		t.Error("Unwrap lost the inner error")
	}
}

func TestReport_Content(t *testing.T) {
	cfg := config.Default()
	cfg.Size = 30
	cfg.Seed = 9

	result, err := Generate(zerolog.Nop(), &cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	result.Summary.OutputPath = "clinic_dataset.xlsx"
	result.Summary.OutputSHA256 = "abc123"

	report := Report(&result.Summary)
	for _, want := range []string{
		"Run parameters",
		"Seed: 9",
		"Records: 30 of 30 requested",
		"New clients:",
		"Unique cards:",
		"Validation errors:",
		"clinic_dataset.xlsx",
		"abc123",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}
