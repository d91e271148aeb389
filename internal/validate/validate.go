// Package validate re-parses assembled visit records and checks every
// cross-field invariant independently of how the record was produced.
// Validation never fails hard: malformed input only yields error
// descriptions.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ovolkova/clinicgen/internal/config"
	"github.com/ovolkova/clinicgen/internal/idnum"
	"github.com/ovolkova/clinicgen/internal/model"
)

const costSuffix = " руб."

var (
	timestampRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}[+-]\d{2}:\d{2}$`)
	snilsRe      = regexp.MustCompile(`^\d{3}-\d{3}-\d{3} \d{2}$`)
	departmentRe = regexp.MustCompile(`^\d{3}-\d{3}$`)
)

// PassportFormat reports whether the passport matches the country's
// external pattern.
func PassportFormat(passport, country string) bool {
	c, ok := model.CountryByCode(country)
	if !ok {
		return false
	}
	return c.Pattern.MatchString(passport)
}

// SNILSValid checks both the external format and the embedded checksum.
func SNILSValid(snils string) bool {
	if !snilsRe.MatchString(snils) {
		return false
	}
	digits := strings.NewReplacer("-", "", " ", "").Replace(snils)
	control, err := strconv.Atoi(digits[9:11])
	if err != nil {
		return false
	}
	return idnum.SNILSChecksum(digits[:9]) == control
}

// CardValid reports whether the card number is 16 digits (interior
// spaces ignored) and Luhn-valid.
func CardValid(card string) bool {
	digits := strings.ReplaceAll(card, " ", "")
	if len(digits) != 16 {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return idnum.LuhnValid(digits)
}

// TimestampFormat reports whether s matches the exact external
// timestamp format "YYYY-MM-DDTHH:MM±HH:MM".
func TimestampFormat(s string) bool {
	return timestampRe.MatchString(s)
}

// ParseTimestamp parses an external timestamp, ignoring the fixed
// offset suffix.
func ParseTimestamp(s string) (time.Time, error) {
	if !TimestampFormat(s) {
		return time.Time{}, fmt.Errorf("timestamp %q does not match %s±HH:MM", s, model.TimeLayout)
	}
	return time.Parse(model.TimeLayout, s[:len(s)-6])
}

// CostValid parses the cost string and reports whether it carries the
// currency suffix and a positive integer amount.
func CostValid(cost string) (int, bool) {
	if !strings.HasSuffix(cost, costSuffix) {
		return 0, false
	}
	amount, err := strconv.Atoi(strings.TrimSuffix(cost, costSuffix))
	if err != nil || amount < 1 {
		return 0, false
	}
	return amount, true
}

// Record validates every cross-field invariant of one assembled record
// and returns the ordered list of human-readable problems found.
func Record(rec *model.VisitRecord) (bool, []string) {
	var errs []string

	if len(strings.Fields(rec.FIO)) != 3 {
		errs = append(errs, "ФИО должно содержать фамилию, имя и отчество")
	}

	if !PassportFormat(rec.PassportData, rec.PassportCountry) {
		errs = append(errs, fmt.Sprintf("неверный формат паспорта для страны %s", rec.PassportCountry))
	}

	// SNILS is mandatory for the primary country; for the others an
	// absent value is accepted but a present one must still be valid.
	if rec.PassportCountry == model.PrimaryCountry || rec.SNILS != "" {
		if !SNILSValid(rec.SNILS) {
			errs = append(errs, "неверный формат или контрольная сумма СНИЛС")
		}
	}

	if !TimestampFormat(rec.VisitDate) {
		errs = append(errs, "неверный формат даты визита")
	}
	if !TimestampFormat(rec.AnalysisDate) {
		errs = append(errs, "неверный формат даты анализов")
	}

	if !CardValid(rec.PaymentCard) {
		errs = append(errs, "неверный номер банковской карты")
	}

	if _, ok := CostValid(rec.AnalysisCost); !ok {
		errs = append(errs, "стоимость должна быть положительной суммой в рублях")
	}

	if rec.PassportCountry == model.PrimaryCountry {
		errs = append(errs, ruLongForm(rec)...)
	}

	return len(errs) == 0, errs
}

// ruLongForm cross-checks the long-form RU passport fields: department
// code format, region tie between the passport series and the
// department code, year tie between the series and the issue date, the
// historical issue cutoff, and issue-before-visit ordering. Records for
// repeat identities may legitimately omit the long-form fields; both
// blank means nothing to check.
func ruLongForm(rec *model.VisitRecord) []string {
	if rec.PassportIssueDate == "" && rec.PassportDepartmentCode == "" {
		return nil
	}

	var errs []string

	if !departmentRe.MatchString(rec.PassportDepartmentCode) {
		errs = append(errs, "неверный формат кода подразделения")
	} else if PassportFormat(rec.PassportData, "ru") {
		region := rec.PassportData[:2]
		if rec.PassportDepartmentCode[:3] != "0"+region {
			errs = append(errs, "код подразделения не соответствует региону паспорта")
		}
	}

	issue, err := time.Parse(model.DateLayout, rec.PassportIssueDate)
	if err != nil {
		errs = append(errs, "неверный формат даты выдачи паспорта")
		return errs
	}

	if issue.Before(idnum.RUIssueCutoff) {
		errs = append(errs, "дата выдачи паспорта раньше допустимой")
	}

	if PassportFormat(rec.PassportData, "ru") {
		yearSuffix := rec.PassportData[2:4]
		if yearSuffix != fmt.Sprintf("%02d", issue.Year()%100) {
			errs = append(errs, "серия паспорта не соответствует году выдачи")
		}
	}

	if visit, verr := ParseTimestamp(rec.VisitDate); verr == nil {
		if issue.After(visit) {
			errs = append(errs, "паспорт выдан позже даты визита")
		}
	}

	return errs
}

// Business checks the date-ordering and working-window rules that sit
// above pure format validation: results strictly after the visit,
// within the configured hour window, landing on a working slot.
func Business(rec *model.VisitRecord, w config.Window) []string {
	var errs []string

	visit, err := ParseTimestamp(rec.VisitDate)
	if err != nil {
		return []string{"дата визита не разбирается: " + err.Error()}
	}
	analysis, err := ParseTimestamp(rec.AnalysisDate)
	if err != nil {
		return []string{"дата анализов не разбирается: " + err.Error()}
	}

	if !analysis.After(visit) {
		errs = append(errs, "дата анализов должна быть после даты визита")
	}

	diff := analysis.Sub(visit).Hours()
	if diff < float64(w.AnalysisMinHours) || diff > float64(w.AnalysisMaxHours) {
		errs = append(errs, fmt.Sprintf("анализы должны быть получены через %d-%d часов, получено: %.1f",
			w.AnalysisMinHours, w.AnalysisMaxHours, diff))
	}

	for _, ts := range []struct {
		name string
		t    time.Time
	}{{"визита", visit}, {"анализов", analysis}} {
		if !w.IsWorkDay(ts.t.Weekday()) {
			errs = append(errs, fmt.Sprintf("дата %s приходится на нерабочий день", ts.name))
		}
		if ts.t.Hour() < w.WorkHoursStart || ts.t.Hour() >= w.WorkHoursEnd {
			errs = append(errs, fmt.Sprintf("время %s вне рабочих часов", ts.name))
		}
	}

	return errs
}
