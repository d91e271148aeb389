package assemble

import (
	"strings"

	"github.com/ovolkova/clinicgen/internal/config"
	"github.com/ovolkova/clinicgen/internal/dict"
	"github.com/ovolkova/clinicgen/internal/idnum"
	"github.com/ovolkova/clinicgen/internal/model"
	"github.com/ovolkova/clinicgen/internal/pick"
)

// selectClient returns the client for the next record: a uniformly
// drawn pool member for a repeat visit once the pool is large enough,
// otherwise a newly created identity appended to the pool.
func (a *Assembler) selectClient() (*model.Client, error) {
	if len(a.pool) >= config.RepeatPoolThreshold && a.rng.Float64() < a.cfg.RepeatProbability {
		client := a.pool[a.rng.Intn(len(a.pool))]
		a.repeatVisits++
		return client, nil
	}

	client, err := a.createClient()
	if err != nil {
		return nil, err
	}
	a.pool = append(a.pool, client)
	a.newClients++
	return client, nil
}

// createClient builds a new identity. A generated name that already
// carries a passport reuses that identity verbatim; otherwise a fresh
// passport is generated and registered. Registration collisions retry
// with a new name, up to the attempt budget.
func (a *Assembler) createClient() (*model.Client, error) {
	for attempt := 0; attempt < config.ClientCreateAttempts; attempt++ {
		fio, gender := a.generateFIO()

		if passport, ok := a.tracker.LookupPassport(fio); ok {
			country, known := model.CountryOfPassport(passport)
			if !known {
				country = model.PrimaryCountry
			}
			snils, _ := a.tracker.LookupSNILS(fio, passport)
			return &model.Client{
				FIO:      fio,
				Gender:   gender,
				Country:  country,
				Passport: passport,
				SNILS:    snils,
			}, nil
		}

		country := pick.Weighted(a.rng, a.cfg.Countries, model.PrimaryCountry)
		client := model.Client{FIO: fio, Gender: gender, Country: country}

		if country == model.PrimaryCountry {
			// The reference visit timestamp only scales the issue date;
			// the actual visit time is drawn later per record.
			p := idnum.LongFormRU(a.rng, a.visitDateTime())
			client.Passport = p.Number
			client.PassportIssueDate = p.IssueDate
			client.PassportDepartmentCode = p.DepartmentCode
			client.BirthDate = p.BirthDate
		} else {
			number, err := idnum.Passport(a.rng, country)
			if err != nil {
				return nil, err
			}
			client.Passport = number
		}

		if !a.tracker.Register(fio, client.Passport) {
			continue
		}

		// Every country gets a SNILS, not only the primary one.
		client.SNILS = idnum.SNILS(a.rng)
		a.tracker.RegisterSNILS(fio, client.Passport, client.SNILS)
		return &client, nil
	}

	return nil, ErrRetryBudget
}

// generateFIO produces a Slavic full name: surname, given name,
// patronymic. Female surnames are inflected from the masculine base.
func (a *Assembler) generateFIO() (string, model.Gender) {
	gender := model.Male
	if a.rng.Intn(2) == 1 {
		gender = model.Female
	}

	surname := pick.One(a.rng, dict.Surnames)
	var name, patronymic string
	if gender == model.Male {
		name = pick.One(a.rng, dict.MaleNames)
		patronymic = pick.One(a.rng, dict.MalePatronymics)
	} else {
		name = pick.One(a.rng, dict.FemaleNames)
		patronymic = pick.One(a.rng, dict.FemalePatronymics)
		surname = feminineSurname(surname)
	}

	return surname + " " + name + " " + patronymic, gender
}

// feminineSurname inflects a masculine surname for a female holder.
func feminineSurname(s string) string {
	switch {
	case strings.HasSuffix(s, "ский"):
		return strings.TrimSuffix(s, "ский") + "ская"
	case strings.HasSuffix(s, "ов"):
		return s + "а"
	case strings.HasSuffix(s, "ев"):
		return s + "а"
	case strings.HasSuffix(s, "ин"):
		return s + "а"
	default:
		return s
	}
}
