package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldPaths = "paths"
	FieldFiles = "files"

	// Configuration fields.
	FieldFormat = "format"
	FieldStrict = "strict"
	FieldConfig = "config"

	// Statistics fields.
	FieldFilesProcessed    = "files_processed"
	FieldFilesWithFindings = "files_with_findings"
	FieldFindingsTotal     = "findings_total"
	FieldErrors            = "errors"
	FieldWarnings          = "warnings"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Check fields.
	FieldName        = "name"
	FieldSeverity    = "severity"
	FieldDescription = "description"
)
