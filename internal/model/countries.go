package model

import "regexp"

// Country describes one supported passport-issuing country.
type Country struct {
	Code    string         // e.g. "ru"
	Pattern *regexp.Regexp // full-match passport number pattern
}

// AllCountries lists the supported countries in canonical order.
// RU is the primary country: it is the only one with long-form passport
// data (issue date, department code) and a mandatory SNILS.
var AllCountries = []Country{
	{Code: "ru", Pattern: regexp.MustCompile(`^\d{4} \d{6}$`)},
	{Code: "by", Pattern: regexp.MustCompile(`^[A-Z]{2}\d{7}$`)},
	{Code: "kz", Pattern: regexp.MustCompile(`^N\d{8}$`)},
}

// PrimaryCountry is the country receiving long-form passport treatment.
const PrimaryCountry = "ru"

// CountryByCode returns the Country for the given code, or ok=false.
func CountryByCode(code string) (Country, bool) {
	for _, c := range AllCountries {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}

// CountryOfPassport matches a passport number against the known formats
// and returns the country code, or ok=false when no format matches.
func CountryOfPassport(passport string) (string, bool) {
	for _, c := range AllCountries {
		if c.Pattern.MatchString(passport) {
			return c.Code, true
		}
	}
	return "", false
}
