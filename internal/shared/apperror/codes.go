package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeSchemaError  = "SCHEMA_ERROR"
	CodeNotFound     = "NOT_FOUND"

	// Server errors (5xx)
	CodeInternalError = "INTERNAL_ERROR"
	CodeReportError   = "REPORT_ERROR"
	CodeImportError   = "IMPORT_ERROR"
)
