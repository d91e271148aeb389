package idnum

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/ovolkova/clinicgen/internal/model"
)

func TestPassport_Formats(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, country := range []string{"ru", "by", "kz"} {
		c, ok := model.CountryByCode(country)
		if !ok {
			t.Fatalf("unknown country %s", country)
		}
		for i := 0; i < 100; i++ {
			p, err := Passport(rng, country)
			if err != nil {
				t.Fatalf("Passport(%s): %v", country, err)
			}
			if !c.Pattern.MatchString(p) {
				t.Fatalf("passport %q does not match %s pattern", p, country)
			}
		}
	}
}

func TestPassport_UnknownCountry(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	if _, err := Passport(rng, "us"); err == nil {
		t.Fatal("expected error for unsupported country")
	}
}

func TestLongFormRU_Consistency(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	ref := time.Date(2025, time.August, 20, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 500; i++ {
		p := LongFormRU(rng, ref)

		if p.IssueDate.Before(RUIssueCutoff) {
			t.Fatalf("issue date %s before cutoff", p.IssueDate)
		}
		if p.IssueDate.After(ref) {
			t.Fatalf("issue date %s after reference %s", p.IssueDate, ref)
		}

		// series: region + issue year
		region := p.Number[:2]
		yearSuffix := p.Number[2:4]
		if want := fmt.Sprintf("%02d", p.IssueDate.Year()%100); yearSuffix != want {
			t.Fatalf("series year %s does not match issue year %s (passport %s)", yearSuffix, want, p.Number)
		}

		// department code repeats the region
		if p.DepartmentCode[:3] != "0"+region {
			t.Fatalf("department code %s does not match region %s", p.DepartmentCode, region)
		}

		// holder age at issue within 18-70 years
		age := p.IssueDate.Year() - p.BirthDate.Year()
		if age < 18 || age > 71 {
			t.Fatalf("holder age %d at issue out of range (birth %s, issue %s)", age, p.BirthDate, p.IssueDate)
		}
	}
}

func TestLongFormRU_RefBeforeCutoff(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	p := LongFormRU(rng, time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC))
	if !p.IssueDate.Equal(RUIssueCutoff) {
		t.Errorf("issue date %s, want cutoff %s", p.IssueDate, RUIssueCutoff)
	}
}
