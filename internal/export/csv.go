package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/ovolkova/clinicgen/internal/model"
)

// utf8BOM keeps Cyrillic content readable when the CSV is opened in
// spreadsheet applications.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes all record columns, debug columns included, with a
// UTF-8 BOM and a header row.
func WriteCSV(path string, records []model.VisitRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return fmt.Errorf("write bom: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(model.Columns()); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i := range records {
		if err := w.Write(records[i].Values()); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ReadCSV reads a dataset CSV back into records, mapping columns by
// header name so column order does not matter.
func ReadCSV(path string) ([]model.VisitRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	// skip the BOM if present
	bom := make([]byte, 3)
	if n, _ := io.ReadFull(f, bom); n != 3 || string(bom) != string(utf8BOM) {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("rewind csv: %w", err)
		}
	}

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var records []model.VisitRecord
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", len(records)+2, err)
		}
		records = append(records, model.VisitRecord{
			FIO:                    field(row, "fio"),
			PassportData:           field(row, "passport_data"),
			PassportCountry:        field(row, "passport_country"),
			SNILS:                  field(row, "snils"),
			Symptoms:               field(row, "symptoms"),
			DoctorChoice:           field(row, "doctor_choice"),
			VisitDate:              field(row, "visit_date"),
			Analyses:               field(row, "analyses"),
			AnalysisDate:           field(row, "analysis_date"),
			AnalysisCost:           field(row, "analysis_cost"),
			PaymentCard:            field(row, "payment_card"),
			PassportIssueDate:      field(row, "passport_issue_date"),
			PassportDepartmentCode: field(row, "passport_department_code"),
		})
	}
	return records, nil
}
