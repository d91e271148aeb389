package export

import (
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/ovolkova/clinicgen/internal/model"
)

// SheetName is the single worksheet holding the dataset.
const SheetName = "Датасет поликлиники"

const maxColumnWidth = 50

// xlsxColumn pairs a display header with its record field accessor.
// The passport country and long-form debug columns are dropped from the
// spreadsheet; CSV and Parquet keep them.
type xlsxColumn struct {
	header string
	value  func(*model.VisitRecord) string
}

var xlsxColumns = []xlsxColumn{
	{"ФИО", func(r *model.VisitRecord) string { return r.FIO }},
	{"Паспортные данные", func(r *model.VisitRecord) string { return r.PassportData }},
	{"СНИЛС", func(r *model.VisitRecord) string { return r.SNILS }},
	{"Симптомы", func(r *model.VisitRecord) string { return r.Symptoms }},
	{"Выбор врача", func(r *model.VisitRecord) string { return r.DoctorChoice }},
	{"Дата посещения врача", func(r *model.VisitRecord) string { return r.VisitDate }},
	{"Анализы", func(r *model.VisitRecord) string { return r.Analyses }},
	{"Дата получения анализов", func(r *model.VisitRecord) string { return r.AnalysisDate }},
	{"Стоимость анализов", func(r *model.VisitRecord) string { return r.AnalysisCost }},
	{"Карта оплаты", func(r *model.VisitRecord) string { return r.PaymentCard }},
}

// WriteXLSX writes the dataset as a spreadsheet with Russian display
// headers and auto-sized columns.
func WriteXLSX(path string, records []model.VisitRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	widths := make([]int, len(xlsxColumns))
	for c, col := range xlsxColumns {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, col.header); err != nil {
			return fmt.Errorf("write header %q: %w", col.header, err)
		}
		widths[c] = utf8.RuneCountInString(col.header)
	}

	for r := range records {
		for c, col := range xlsxColumns {
			v := col.value(&records[r])
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("cell %d,%d: %w", c+1, r+2, err)
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return fmt.Errorf("write cell %s: %w", cell, err)
			}
			if n := utf8.RuneCountInString(v); n > widths[c] {
				widths[c] = n
			}
		}
	}

	for c := range xlsxColumns {
		name, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return fmt.Errorf("column name %d: %w", c+1, err)
		}
		width := min(widths[c]+2, maxColumnWidth)
		if err := f.SetColWidth(SheetName, name, name, float64(width)); err != nil {
			return fmt.Errorf("set column width %s: %w", name, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx: %w", err)
	}
	return nil
}
