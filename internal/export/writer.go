// Package export serializes the generated dataset to its output
// formats and reads it back for standalone verification.
package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ovolkova/clinicgen/internal/model"
)

// ResolveFormat returns the effective output format: an explicit format
// wins, otherwise the file extension decides, defaulting to xlsx.
func ResolveFormat(path, format string) string {
	if format != "" {
		return format
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return "csv"
	case ".parquet":
		return "parquet"
	default:
		return "xlsx"
	}
}

// Write serializes the records to path in the resolved format.
func Write(path, format string, records []model.VisitRecord) error {
	switch f := ResolveFormat(path, format); f {
	case "xlsx":
		return WriteXLSX(path, records)
	case "csv":
		return WriteCSV(path, records)
	case "parquet":
		return WriteParquet(path, records)
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}
