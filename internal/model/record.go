package model

// External formats shared by the assembler and the validator.
const (
	// TimeLayout is the timestamp format without the fixed UTC-offset
	// suffix appended after formatting.
	TimeLayout = "2006-01-02T15:04"

	// DateLayout is the passport issue date format.
	DateLayout = "2006-01-02"
)

// VisitRecord is one fully formatted dataset row. All fields carry their
// external string representation: the validator re-parses them and the
// export layer writes them verbatim. Optional fields are empty strings.
type VisitRecord struct {
	FIO             string `parquet:"fio"`
	PassportData    string `parquet:"passport_data"`
	PassportCountry string `parquet:"passport_country"`
	SNILS           string `parquet:"snils"`
	Symptoms        string `parquet:"symptoms"`
	DoctorChoice    string `parquet:"doctor_choice"`
	VisitDate       string `parquet:"visit_date"`
	Analyses        string `parquet:"analyses"`
	AnalysisDate    string `parquet:"analysis_date"`
	AnalysisCost    string `parquet:"analysis_cost"`
	PaymentCard     string `parquet:"payment_card"`

	// Populated for RU passports only.
	PassportIssueDate      string `parquet:"passport_issue_date"`
	PassportDepartmentCode string `parquet:"passport_department_code"`
}

// Columns returns the record column names in canonical output order.
func Columns() []string {
	return []string{
		"fio",
		"passport_data",
		"passport_country",
		"snils",
		"symptoms",
		"doctor_choice",
		"visit_date",
		"analyses",
		"analysis_date",
		"analysis_cost",
		"payment_card",
		"passport_issue_date",
		"passport_department_code",
	}
}

// Values returns the field values in the same order as Columns.
func (r *VisitRecord) Values() []string {
	return []string{
		r.FIO,
		r.PassportData,
		r.PassportCountry,
		r.SNILS,
		r.Symptoms,
		r.DoctorChoice,
		r.VisitDate,
		r.Analyses,
		r.AnalysisDate,
		r.AnalysisCost,
		r.PaymentCard,
		r.PassportIssueDate,
		r.PassportDepartmentCode,
	}
}
