package assemble

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/ovolkova/clinicgen/internal/config"
	"github.com/ovolkova/clinicgen/internal/dict"
	"github.com/ovolkova/clinicgen/internal/track"
	"github.com/ovolkova/clinicgen/internal/validate"
)

// Wednesday noon anchors the visit window away from minute-boundary
// flakiness.
var testNow = time.Date(2025, time.August, 20, 12, 0, 0, 0, time.UTC)

func newTestAssembler(seed int64, mutate func(*config.Config)) *Assembler {
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	rng := rand.New(rand.NewSource(seed))
	a := New(rng, &cfg, track.New(cfg.CardReuseLimit))
	a.now = testNow
	return a
}

func TestNext_RecordShape(t *testing.T) {
	a := newTestAssembler(1, nil)

	for i := 0; i < 300; i++ {
		rec, err := a.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}

		if len(strings.Fields(rec.FIO)) != 3 {
			t.Errorf("FIO %q is not three parts", rec.FIO)
		}
		if !validate.PassportFormat(rec.PassportData, rec.PassportCountry) {
			t.Errorf("passport %q invalid for %s", rec.PassportData, rec.PassportCountry)
		}
		if !validate.SNILSValid(rec.SNILS) {
			t.Errorf("SNILS %q invalid", rec.SNILS)
		}
		if !validate.CardValid(rec.PaymentCard) {
			t.Errorf("card %q invalid", rec.PaymentCard)
		}
		if _, ok := validate.CostValid(rec.AnalysisCost); !ok {
			t.Errorf("cost %q invalid", rec.AnalysisCost)
		}
		if rec.Symptoms == "" || rec.Analyses == "" {
			t.Errorf("empty symptoms or analyses: %q / %q", rec.Symptoms, rec.Analyses)
		}
		if _, ok := dict.DoctorSymptoms[rec.DoctorChoice]; !ok {
			t.Errorf("unknown doctor %q", rec.DoctorChoice)
		}

		visit, err := validate.ParseTimestamp(rec.VisitDate)
		if err != nil {
			t.Fatalf("visit timestamp %q: %v", rec.VisitDate, err)
		}
		analysis, err := validate.ParseTimestamp(rec.AnalysisDate)
		if err != nil {
			t.Fatalf("analysis timestamp %q: %v", rec.AnalysisDate, err)
		}
		if !analysis.After(visit) {
			t.Errorf("analysis %s not after visit %s", rec.AnalysisDate, rec.VisitDate)
		}
		if analysis.Sub(visit).Hours() < 24 {
			t.Errorf("analysis only %.1fh after visit", analysis.Sub(visit).Hours())
		}
	}
}

func TestNext_NoRepeatsWhenDisabled(t *testing.T) {
	a := newTestAssembler(2, func(c *config.Config) { c.RepeatProbability = 0 })
	for i := 0; i < 100; i++ {
		if _, err := a.Next(); err != nil {
			t.Fatalf("Next: %v", err)
		}
	}
	if a.RepeatVisits() != 0 {
		t.Errorf("RepeatVisits = %d with repeat probability 0", a.RepeatVisits())
	}
	if a.NewClients() != 100 {
		t.Errorf("NewClients = %d, want 100", a.NewClients())
	}
}

func TestNext_RepeatVisits(t *testing.T) {
	a := newTestAssembler(3, func(c *config.Config) { c.RepeatProbability = 0.9 })
	for i := 0; i < 200; i++ {
		if _, err := a.Next(); err != nil {
			t.Fatalf("Next: %v", err)
		}
	}
	if a.RepeatVisits() == 0 {
		t.Error("no repeat visits at probability 0.9")
	}
	if a.PoolSize() < config.RepeatPoolThreshold {
		t.Errorf("pool size %d below threshold", a.PoolSize())
	}
	// at 0.9 the pool must stay well below one client per record
	if a.PoolSize() >= 150 {
		t.Errorf("pool size %d, repeat branch barely engaged", a.PoolSize())
	}
	if a.NewClients()+a.RepeatVisits() != 200 {
		t.Errorf("new %d + repeat %d != 200", a.NewClients(), a.RepeatVisits())
	}
}

func TestDrawUnique(t *testing.T) {
	a := newTestAssembler(4, nil)

	primary := []string{"a", "b"}
	general := []string{"b", "c", "d"}

	for i := 0; i < 50; i++ {
		got := a.drawUnique(primary, general, 4)
		if len(got) != 4 {
			t.Fatalf("drawUnique returned %d items: %v", len(got), got)
		}
		seen := make(map[string]bool)
		for _, item := range got {
			if seen[item] {
				t.Fatalf("duplicate %q in %v", item, got)
			}
			seen[item] = true
		}
	}

	// both pools exhausted: fewer items, never a duplicate
	got := a.drawUnique([]string{"x"}, nil, 3)
	if len(got) != 1 || got[0] != "x" {
		t.Errorf("drawUnique over dry pools = %v", got)
	}
}

func TestAnalysisCost_FixedPriceJitter(t *testing.T) {
	a := newTestAssembler(5, nil)
	base := dict.AnalysisCosts["ЭКГ"]

	for i := 0; i < 200; i++ {
		cost := a.analysisCost([]string{"ЭКГ"})
		lo := int(float64(base) * 0.8)
		hi := int(float64(base) * 1.2)
		if cost < lo-1 || cost > hi {
			t.Fatalf("cost %d outside jitter band [%d,%d]", cost, lo, hi)
		}
	}
}

func TestAnalysisCost_KeywordRange(t *testing.T) {
	a := newTestAssembler(6, nil)

	// not in the fixed table, classified by the МРТ keyword
	for i := 0; i < 200; i++ {
		cost := a.analysisCost([]string{"МРТ коленного сустава"})
		lo := int(3500 * 0.8)
		hi := int(8000 * 1.2)
		if cost < lo-1 || cost > hi {
			t.Fatalf("МРТ cost %d outside [%d,%d]", cost, lo, hi)
		}
	}

	// no keyword match falls back to the default range
	for i := 0; i < 200; i++ {
		cost := a.analysisCost([]string{"спирометрия"})
		lo := int(float64(dict.DefaultCostRange.Min) * 0.8)
		hi := int(float64(dict.DefaultCostRange.Max) * 1.2)
		if cost < lo-1 || cost > hi {
			t.Fatalf("default-range cost %d outside [%d,%d]", cost, lo, hi)
		}
	}
}

func TestSelectCard_ReuseLimit(t *testing.T) {
	a := newTestAssembler(7, nil)

	usage := make(map[string]int)
	for i := 0; i < 500; i++ {
		usage[a.selectCard()]++
	}
	for card, n := range usage {
		if n > a.cfg.CardReuseLimit {
			t.Errorf("card %q charged %d times, limit %d (forced %d)", card, n, a.cfg.CardReuseLimit, a.CardsForced())
		}
	}
	if a.CardsForced() != 0 {
		t.Errorf("forced charges %d with an unbounded card space", a.CardsForced())
	}
}

func TestSelectCard_ForcedAfterRetryBudget(t *testing.T) {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(9))
	// reuse limit 0: every fresh draw is rejected, so the full retry
	// budget is spent before the forced charge
	a := New(rng, &cfg, track.New(0))
	a.now = testNow

	card := a.selectCard()
	if !validate.CardValid(card) {
		t.Fatalf("forced card %q invalid", card)
	}
	if a.CardsForced() != 1 {
		t.Errorf("CardsForced = %d, want 1", a.CardsForced())
	}
	if a.tracker.ForcedUses() != 1 {
		t.Errorf("tracker ForcedUses = %d, want 1", a.tracker.ForcedUses())
	}
	if got := a.tracker.Stats().TotalCardUsage; got != 1 {
		t.Errorf("TotalCardUsage = %d, want 1", got)
	}
}

func TestFeminineSurname(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Ковалевский", "Ковалевская"},
		{"Иванов", "Иванова"},
		{"Андреев", "Андреева"},
		{"Никитин", "Никитина"},
		{"Шевченко", "Шевченко"},
	}
	for _, tc := range cases {
		if got := feminineSurname(tc.in); got != tc.want {
			t.Errorf("feminineSurname(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestGenerateFIO_GenderAgreement(t *testing.T) {
	a := newTestAssembler(8, nil)
	for i := 0; i < 200; i++ {
		fio, gender := a.generateFIO()
		parts := strings.Fields(fio)
		if len(parts) != 3 {
			t.Fatalf("FIO %q is not three parts", fio)
		}
		patronymic := parts[2]
		switch gender {
		case "F":
			if !strings.HasSuffix(patronymic, "на") {
				t.Errorf("female patronymic %q", patronymic)
			}
		default:
			if !strings.HasSuffix(patronymic, "ич") {
				t.Errorf("male patronymic %q", patronymic)
			}
		}
	}
}
