// Package logging configures the zerolog logger shared by all clinicgen
// subcommands.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup returns a logger writing to stderr in the requested format:
// "text" for a human-friendly console, anything else for JSON lines.
func Setup(format string) zerolog.Logger {
	var logger zerolog.Logger
	if format == "text" {
		logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.With().Timestamp().Logger()
}
