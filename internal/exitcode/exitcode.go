package exitcode

const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	GenerateError   = 3
	ExportError     = 4
	ReportError     = 5
)
