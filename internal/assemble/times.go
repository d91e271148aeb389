package assemble

import (
	"time"

	"github.com/ovolkova/clinicgen/internal/config"
	"github.com/ovolkova/clinicgen/internal/pick"
)

var quarterHours = []int{0, 15, 30, 45}

// visitDateTime draws a visit timestamp: a uniform day in the trailing
// 30-day window, snapped forward to the next working weekday, with the
// time of day uniform over working hours at 15-minute granularity.
// A snap that would overshoot the current day falls back to the last
// working day instead, so visits never land in the future.
func (a *Assembler) visitDateTime() time.Time {
	w := a.cfg.Window

	day := a.now.AddDate(0, 0, -pick.Between(a.rng, 0, 30))
	for !w.IsWorkDay(day.Weekday()) {
		day = day.AddDate(0, 0, 1)
	}
	if day.After(a.now) {
		day = a.now
		for !w.IsWorkDay(day.Weekday()) {
			day = day.AddDate(0, 0, -1)
		}
	}

	hour := pick.Between(a.rng, w.WorkHoursStart, w.WorkHoursEnd-1)
	minute := quarterHours[a.rng.Intn(len(quarterHours))]

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

// analysisDateTime draws the results timestamp: visit plus a uniform
// offset in the configured hour window, corrected onto the next working
// slot. When correction pushes the elapsed time past the maximum, a
// smaller offset is redrawn, up to the attempt budget; the final
// attempt is accepted as-is.
func (a *Assembler) analysisDateTime(visit time.Time) time.Time {
	w := a.cfg.Window

	hours := pick.Between(a.rng, w.AnalysisMinHours, w.AnalysisMaxHours)
	t := a.correctToWorkingSlot(visit.Add(time.Duration(hours) * time.Hour))

	redrawMax := w.AnalysisMaxHours
	if redrawMax > 60 {
		redrawMax = 60
	}
	for attempt := 0; attempt < config.AnalysisTimeAttempts; attempt++ {
		if t.Sub(visit).Hours() <= float64(w.AnalysisMaxHours) {
			break
		}
		hours = pick.Between(a.rng, w.AnalysisMinHours, redrawMax)
		t = a.correctToWorkingSlot(visit.Add(time.Duration(hours) * time.Hour))
	}
	return t
}

// correctToWorkingSlot moves a timestamp forward onto a working weekday
// and clamps the time of day into working hours: before opening clamps
// to opening, at/after closing rolls to opening on the next day. Each
// correction only moves time forward, so the loop terminates.
func (a *Assembler) correctToWorkingSlot(t time.Time) time.Time {
	w := a.cfg.Window
	for {
		switch {
		case !w.IsWorkDay(t.Weekday()):
			t = t.AddDate(0, 0, 1)
		case t.Hour() < w.WorkHoursStart:
			t = atHour(t, w.WorkHoursStart)
		case t.Hour() >= w.WorkHoursEnd:
			t = atHour(t, w.WorkHoursStart).AddDate(0, 0, 1)
		default:
			return t
		}
	}
}

func atHour(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
}
