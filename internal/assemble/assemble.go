// Package assemble orchestrates single-record generation: client
// selection and creation, clinician and symptom/analysis picks,
// working-window timestamps, cost computation, and payment card reuse.
package assemble

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/ovolkova/clinicgen/internal/config"
	"github.com/ovolkova/clinicgen/internal/dict"
	"github.com/ovolkova/clinicgen/internal/idnum"
	"github.com/ovolkova/clinicgen/internal/model"
	"github.com/ovolkova/clinicgen/internal/pick"
	"github.com/ovolkova/clinicgen/internal/track"
)

// ErrRetryBudget signals that a unique client identity could not be
// created within the attempt budget. It aborts the run: a collision
// storm at realistic pool sizes means the configuration is broken.
var ErrRetryBudget = errors.New("client creation retry budget exhausted")

// Assembler builds visit records one at a time. Not safe for concurrent
// use; the run is single-threaded by design.
type Assembler struct {
	rng     *rand.Rand
	cfg     *config.Config
	tracker *track.Tracker
	pool    []*model.Client
	now     time.Time

	newClients   int
	repeatVisits int
	cardsForced  int
}

// New creates an assembler over the shared tracker. The current time
// anchors the trailing 30-day visit window.
func New(rng *rand.Rand, cfg *config.Config, tracker *track.Tracker) *Assembler {
	return &Assembler{
		rng:     rng,
		cfg:     cfg,
		tracker: tracker,
		now:     time.Now().Truncate(time.Minute),
	}
}

// Next assembles one complete visit record. A returned error other than
// ErrRetryBudget means this record failed and should be skipped; the
// caller decides skip-vs-abort.
func (a *Assembler) Next() (*model.VisitRecord, error) {
	client, err := a.selectClient()
	if err != nil {
		return nil, err
	}

	doctor := a.selectDoctor(client.Gender)
	symptoms := a.drawUnique(dict.DoctorSymptoms[doctor], dict.GeneralSymptoms, pick.Between(a.rng, 1, 3))
	visit := a.visitDateTime()
	analyses := a.drawUnique(dict.DoctorAnalyses[doctor], dict.GeneralAnalyses, pick.Between(a.rng, 1, 2))
	analysis := a.analysisDateTime(visit)
	cost := a.analysisCost(analyses)
	card := a.selectCard()

	rec := &model.VisitRecord{
		FIO:             client.FIO,
		PassportData:    client.Passport,
		PassportCountry: client.Country,
		SNILS:           client.SNILS,
		Symptoms:        strings.Join(symptoms, ", "),
		DoctorChoice:    doctor,
		VisitDate:       a.formatTimestamp(visit),
		Analyses:        strings.Join(analyses, ", "),
		AnalysisDate:    a.formatTimestamp(analysis),
		AnalysisCost:    formatCost(cost),
		PaymentCard:     card,
	}

	if client.Country == model.PrimaryCountry && !client.PassportIssueDate.IsZero() {
		rec.PassportIssueDate = client.PassportIssueDate.Format(model.DateLayout)
		rec.PassportDepartmentCode = client.PassportDepartmentCode
	}

	return rec, nil
}

// selectDoctor draws a specialization from the per-gender distribution.
func (a *Assembler) selectDoctor(g model.Gender) string {
	dist := dict.MaleDoctorDist
	if g == model.Female {
		dist = dict.FemaleDoctorDist
	}
	return pick.Weighted(a.rng, dist, dict.DefaultDoctor)
}

// drawUnique picks count distinct items, preferring the primary pool
// and refilling from the general pool once the primary is exhausted.
// Returns fewer than count when both pools run dry.
func (a *Assembler) drawUnique(primary, general []string, count int) []string {
	candidates := append([]string(nil), primary...)
	seen := make(map[string]bool, count)
	var selected []string

	for len(selected) < count {
		if len(candidates) == 0 {
			for _, item := range general {
				if !seen[item] {
					candidates = append(candidates, item)
				}
			}
			if len(candidates) == 0 {
				break
			}
		}
		i := a.rng.Intn(len(candidates))
		item := candidates[i]
		candidates = append(candidates[:i], candidates[i+1:]...)
		if seen[item] {
			continue
		}
		seen[item] = true
		selected = append(selected, item)
	}
	return selected
}

// analysisCost prices the analyses: fixed table first, then keyword
// ranges, with an independent ±20% jitter per analysis. Amounts are
// truncated to whole rubles per analysis before summing.
func (a *Assembler) analysisCost(analyses []string) int {
	total := 0
	for _, name := range analyses {
		base, ok := dict.AnalysisCosts[name]
		if !ok {
			r := dict.DefaultCostRange
			lower := strings.ToLower(name)
			for _, cr := range dict.CostRanges {
				if containsAny(lower, cr.Keywords) {
					r = cr
					break
				}
			}
			base = pick.Between(a.rng, r.Min, r.Max)
		}
		jitter := 0.8 + a.rng.Float64()*0.4
		total += int(float64(base) * jitter)
	}
	return total
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// selectCard returns the card charged for this visit. With a fixed
// probability an existing under-limit card is reused; otherwise fresh
// cards are drawn until one is accepted. When the retry budget runs out
// the last fresh card is force-charged past the limit; these breaches
// are counted in CardsForced.
func (a *Assembler) selectCard() string {
	if a.tracker.Stats().CardsInUse > 0 && a.rng.Float64() < config.CardReuseChance {
		if reusable := a.tracker.ReusableCards(); len(reusable) > 0 {
			card := reusable[a.rng.Intn(len(reusable))]
			a.tracker.UseCard(card)
			return card
		}
	}

	for attempt := 0; attempt < config.CardRetryAttempts; attempt++ {
		number, _, _ := idnum.Card(a.rng)
		if a.tracker.UseCard(number) {
			return number
		}
	}

	number, _, _ := idnum.Card(a.rng)
	a.tracker.ForceUseCard(number)
	a.cardsForced++
	return number
}

func (a *Assembler) formatTimestamp(t time.Time) string {
	return t.Format(model.TimeLayout) + a.cfg.Window.Timezone
}

func formatCost(cost int) string {
	return strconv.Itoa(cost) + " руб."
}

// NewClients returns how many fresh identities this assembler created.
func (a *Assembler) NewClients() int { return a.newClients }

// RepeatVisits returns how many records reused a pooled client.
func (a *Assembler) RepeatVisits() int { return a.repeatVisits }

// CardsForced returns how many cards were charged past the reuse limit.
func (a *Assembler) CardsForced() int { return a.cardsForced }

// PoolSize returns the current client pool size.
func (a *Assembler) PoolSize() int { return len(a.pool) }
