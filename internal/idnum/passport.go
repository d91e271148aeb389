// Package idnum generates checksum-correct synthetic identifiers:
// national passport numbers, SNILS insurance numbers, and Luhn-valid
// payment card numbers. All functions are pure over the injected RNG.
package idnum

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ovolkova/clinicgen/internal/dict"
	"github.com/ovolkova/clinicgen/internal/pick"
)

// RUIssueCutoff is the earliest admissible RU passport issue date.
var RUIssueCutoff = time.Date(1997, time.October, 1, 0, 0, 0, 0, time.UTC)

// RU passport region codes run 01..92.
const (
	minRegion = 1
	maxRegion = 92
)

// Passport generates a short-form passport number for the given country.
//
//	ru: "DDDD DDDDDD"
//	by: two-letter series + 7 digits
//	kz: "N" + 8 digits
func Passport(rng *rand.Rand, country string) (string, error) {
	switch country {
	case "ru":
		series := pick.Between(rng, 1000, 9999)
		number := pick.Between(rng, 100000, 999999)
		return fmt.Sprintf("%04d %06d", series, number), nil
	case "by":
		prefix := pick.One(rng, dict.BYPassportPrefixes)
		number := pick.Between(rng, 1000000, 9999999)
		return fmt.Sprintf("%s%07d", prefix, number), nil
	case "kz":
		number := pick.Between(rng, 10000000, 99999999)
		return fmt.Sprintf("N%08d", number), nil
	default:
		return "", fmt.Errorf("unsupported passport country %q", country)
	}
}

// RUPassport carries the long-form RU passport data. The series encodes
// the issuing region (first two digits) and the issue year (last two),
// and the department code repeats the region as its first group.
type RUPassport struct {
	Number         string // "RRYY NNNNNN"
	IssueDate      time.Time
	DepartmentCode string // "0RR-DDD"
	BirthDate      time.Time
}

// LongFormRU generates an internally consistent RU passport. ref bounds
// the issue date from above (a passport cannot postdate the visit it is
// presented at); the issue date never precedes RUIssueCutoff.
func LongFormRU(rng *rand.Rand, ref time.Time) RUPassport {
	if ref.Before(RUIssueCutoff) {
		ref = RUIssueCutoff
	}

	region := pick.Between(rng, minRegion, maxRegion)

	// Uniform issue day in [cutoff, ref].
	spanDays := int(ref.Sub(RUIssueCutoff).Hours() / 24)
	issue := RUIssueCutoff.AddDate(0, 0, pick.Between(rng, 0, spanDays))

	number := pick.Between(rng, 100000, 999999)
	series := fmt.Sprintf("%02d%02d", region, issue.Year()%100)

	// Holder is 18-70 years old at issue.
	age := pick.Between(rng, 18, 70)
	birth := issue.AddDate(-age, 0, -pick.Between(rng, 0, 364))

	return RUPassport{
		Number:         fmt.Sprintf("%s %06d", series, number),
		IssueDate:      issue,
		DepartmentCode: fmt.Sprintf("%03d-%03d", region, pick.Between(rng, 0, 999)),
		BirthDate:      birth,
	}
}
