// Package track keeps the per-run identity registries: which passport a
// full name was issued, which SNILS a (name, passport) pair carries, and
// how many times each payment card has been charged.
package track

import "github.com/ovolkova/clinicgen/internal/model"

type clientKey struct {
	fio      string
	passport string
}

// Tracker is the sole authority over identity uniqueness and card reuse
// for one generation run. It is not safe for concurrent use; generation
// is single-threaded by design.
type Tracker struct {
	reuseLimit int

	passports     map[string]struct{} // global passport uniqueness
	passportByFIO map[string]string
	snilsByClient map[clientKey]string
	cardUsage     map[string]int
	cardOrder     []string // cards in first-use order, for deterministic reuse draws
	forcedUses    int
}

// New creates an empty tracker enforcing the given card reuse limit.
func New(reuseLimit int) *Tracker {
	return &Tracker{
		reuseLimit:    reuseLimit,
		passports:     make(map[string]struct{}),
		passportByFIO: make(map[string]string),
		snilsByClient: make(map[clientKey]string),
		cardUsage:     make(map[string]int),
	}
}

// LookupPassport returns the passport previously registered for the
// name, or ok=false if the name is unseen.
func (t *Tracker) LookupPassport(fio string) (string, bool) {
	p, ok := t.passportByFIO[fio]
	return p, ok
}

// Register binds a passport to a name. It fails when the name already
// has a passport, or when the passport number is already bound to some
// other name; callers must not overwrite an existing binding. On
// success the passport also enters the global uniqueness set.
func (t *Tracker) Register(fio, passport string) bool {
	if _, exists := t.passportByFIO[fio]; exists {
		return false
	}
	if !t.PassportUnique(passport) {
		return false
	}
	t.passportByFIO[fio] = passport
	t.passports[passport] = struct{}{}
	return true
}

// PassportUnique reports whether the passport has never been registered.
func (t *Tracker) PassportUnique(passport string) bool {
	_, seen := t.passports[passport]
	return !seen
}

// LookupSNILS returns the SNILS for a (name, passport) identity.
func (t *Tracker) LookupSNILS(fio, passport string) (string, bool) {
	s, ok := t.snilsByClient[clientKey{fio, passport}]
	return s, ok
}

// RegisterSNILS binds a SNILS to a (name, passport) identity; it fails
// if the pair already has one.
func (t *Tracker) RegisterSNILS(fio, passport, snils string) bool {
	key := clientKey{fio, passport}
	if _, exists := t.snilsByClient[key]; exists {
		return false
	}
	t.snilsByClient[key] = snils
	return true
}

// CanUseCard reports whether the card is still under the reuse limit.
// Unseen cards have usage 0.
func (t *Tracker) CanUseCard(card string) bool {
	return t.cardUsage[card] < t.reuseLimit
}

// UseCard atomically checks the limit and increments the usage count.
// Returns false, without incrementing, when the card is exhausted.
func (t *Tracker) UseCard(card string) bool {
	if !t.CanUseCard(card) {
		return false
	}
	t.recordUse(card)
	return true
}

// ForceUseCard increments the usage count regardless of the limit. This
// is the documented violation path taken when the card retry budget is
// exhausted; callers count these separately.
func (t *Tracker) ForceUseCard(card string) {
	if !t.CanUseCard(card) {
		t.forcedUses++
	}
	t.recordUse(card)
}

func (t *Tracker) recordUse(card string) {
	if _, seen := t.cardUsage[card]; !seen {
		t.cardOrder = append(t.cardOrder, card)
	}
	t.cardUsage[card]++
}

// ReusableCards returns the cards still under the reuse limit, in
// first-use order so that seeded runs stay reproducible.
func (t *Tracker) ReusableCards() []string {
	var out []string
	for _, card := range t.cardOrder {
		if t.CanUseCard(card) {
			out = append(out, card)
		}
	}
	return out
}

// ForcedUses returns how many charges exceeded the reuse limit via
// ForceUseCard.
func (t *Tracker) ForcedUses() int {
	return t.forcedUses
}

// Stats snapshots the registry sizes.
func (t *Tracker) Stats() model.TrackerStats {
	total := 0
	for _, n := range t.cardUsage {
		total += n
	}
	return model.TrackerStats{
		UniquePassports: len(t.passports),
		UniqueClients:   len(t.snilsByClient),
		CardsInUse:      len(t.cardUsage),
		TotalCardUsage:  total,
	}
}
