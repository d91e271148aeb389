package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ovolkova/clinicgen/internal/dict"
	"github.com/ovolkova/clinicgen/internal/model"
	"github.com/ovolkova/clinicgen/internal/pick"
)

// Named retry budgets and policy constants for one generation run.
const (
	ClientCreateAttempts = 100 // new-client name/passport collisions before fatal error
	CardRetryAttempts    = 50  // fresh-card draws before the forced-use fallback
	AnalysisTimeAttempts = 10  // analysis timestamp redraws after working-window correction
	RepeatPoolThreshold  = 50  // minimum pool size before repeat visits engage
	CardReuseChance      = 0.4 // probability of attempting to reuse an existing card
)

// Window describes when the clinic accepts visits and hands out results.
type Window struct {
	WorkDays         []time.Weekday `yaml:"work_days"` // time.Weekday values, Monday=1
	WorkHoursStart   int            `yaml:"work_hours_start"`
	WorkHoursEnd     int            `yaml:"work_hours_end"`
	AnalysisMinHours int            `yaml:"analysis_min_hours"`
	AnalysisMaxHours int            `yaml:"analysis_max_hours"`
	Timezone         string         `yaml:"timezone"` // fixed UTC-offset suffix, e.g. "+03:00"
}

// IsWorkDay reports whether the weekday is in the working-day set.
func (w *Window) IsWorkDay(d time.Weekday) bool {
	for _, wd := range w.WorkDays {
		if wd == d {
			return true
		}
	}
	return false
}

// Config holds all runtime configuration for a clinicgen run.
type Config struct {
	Size              int
	Seed              int64
	Output            string
	Format            string // "xlsx", "csv", "parquet", or "" to infer from Output
	LogFormat         string // "text" or "json"
	RepeatProbability float64
	CardReuseLimit    int
	BatchSize         int

	Window    Window
	Countries []pick.Entry
}

// Default returns the standard clinic configuration: Mon-Fri 9:00-18:00,
// results 24-72h after the visit, Moscow offset.
func Default() Config {
	return Config{
		Size:              1000,
		Seed:              42,
		Output:            "clinic_dataset.xlsx",
		LogFormat:         "text",
		RepeatProbability: 0.3,
		CardReuseLimit:    5,
		BatchSize:         1000,
		Window: Window{
			WorkDays:         []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
			WorkHoursStart:   9,
			WorkHoursEnd:     18,
			AnalysisMinHours: 24,
			AnalysisMaxHours: 72,
			Timezone:         "+03:00",
		},
		Countries: dict.CountryDist,
	}
}

// yamlConfig is the on-disk YAML structure. Only the knobs that make
// sense to pin per-dataset are exposed; flags cover the rest.
type yamlConfig struct {
	RepeatProbability *float64 `yaml:"repeat_probability"`
	CardReuseLimit    *int     `yaml:"card_reuse_limit"`
	Window            *Window  `yaml:"window"`
	Countries         []struct {
		Code string  `yaml:"code"`
		Prob float64 `yaml:"prob"`
	} `yaml:"countries"`
}

// LoadFromFile reads a YAML config file and merges its values into the
// Config. Absent keys keep their current values.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if yc.RepeatProbability != nil {
		c.RepeatProbability = *yc.RepeatProbability
	}
	if yc.CardReuseLimit != nil {
		c.CardReuseLimit = *yc.CardReuseLimit
	}
	if yc.Window != nil {
		merged := c.Window
		if len(yc.Window.WorkDays) > 0 {
			merged.WorkDays = yc.Window.WorkDays
		}
		if yc.Window.WorkHoursStart != 0 {
			merged.WorkHoursStart = yc.Window.WorkHoursStart
		}
		if yc.Window.WorkHoursEnd != 0 {
			merged.WorkHoursEnd = yc.Window.WorkHoursEnd
		}
		if yc.Window.AnalysisMinHours != 0 {
			merged.AnalysisMinHours = yc.Window.AnalysisMinHours
		}
		if yc.Window.AnalysisMaxHours != 0 {
			merged.AnalysisMaxHours = yc.Window.AnalysisMaxHours
		}
		if yc.Window.Timezone != "" {
			merged.Timezone = yc.Window.Timezone
		}
		c.Window = merged
	}
	if len(yc.Countries) > 0 {
		entries := make([]pick.Entry, len(yc.Countries))
		for i, e := range yc.Countries {
			entries[i] = pick.Entry{Category: e.Code, Prob: e.Prob}
		}
		c.Countries = entries
	}
	return nil
}

var knownFormats = map[string]bool{"": true, "xlsx": true, "csv": true, "parquet": true}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("--size must be at least 1, got %d", c.Size)
	}
	if c.RepeatProbability < 0 || c.RepeatProbability > 1 {
		return fmt.Errorf("--repeat-probability must be in [0,1], got %g", c.RepeatProbability)
	}
	if c.CardReuseLimit < 1 {
		return fmt.Errorf("card reuse limit must be at least 1, got %d", c.CardReuseLimit)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("--batch-size must be at least 1, got %d", c.BatchSize)
	}
	if !knownFormats[c.Format] {
		return fmt.Errorf("unknown output format %q (want xlsx, csv, or parquet)", c.Format)
	}
	w := &c.Window
	if len(w.WorkDays) == 0 {
		return fmt.Errorf("working-day set must not be empty")
	}
	if w.WorkHoursStart < 0 || w.WorkHoursEnd > 24 || w.WorkHoursStart >= w.WorkHoursEnd {
		return fmt.Errorf("working hours %d-%d are not a valid range", w.WorkHoursStart, w.WorkHoursEnd)
	}
	if w.AnalysisMinHours < 1 || w.AnalysisMinHours >= w.AnalysisMaxHours {
		return fmt.Errorf("analysis window %d-%dh is not a valid range", w.AnalysisMinHours, w.AnalysisMaxHours)
	}
	for _, e := range c.Countries {
		if _, ok := model.CountryByCode(e.Category); !ok {
			return fmt.Errorf("unknown country %q in distribution", e.Category)
		}
	}
	return nil
}
