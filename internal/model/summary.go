package model

import "time"

// TrackerStats is a snapshot of the identity tracker registries.
type TrackerStats struct {
	UniquePassports int
	UniqueClients   int
	CardsInUse      int
	TotalCardUsage  int
}

// RunSummary captures metrics from a single generation run.
type RunSummary struct {
	RunID            string
	Seed             int64
	RequestedRecords int
	GeneratedRecords int
	SkippedRecords   int
	NewClients       int
	RepeatVisits     int
	ValidationErrors int
	BusinessErrors   int
	CardsForced      int
	Tracker          TrackerStats
	OutputPath       string
	OutputSHA256     string
	DurationGenerate time.Duration
	DurationExport   time.Duration
	DurationTotal    time.Duration
}
