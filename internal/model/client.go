package model

import "time"

// Gender of a generated client.
type Gender string

const (
	Male   Gender = "M"
	Female Gender = "F"
)

// Client is a generated identity. Created on the first appearance of a
// full name and reused verbatim for every repeat visit; never mutated
// after the SNILS is assigned.
type Client struct {
	FIO      string
	Gender   Gender
	Country  string
	Passport string
	SNILS    string

	// Long-form passport data, RU only. Zero values otherwise.
	PassportIssueDate      time.Time
	PassportDepartmentCode string
	BirthDate              time.Time
}
