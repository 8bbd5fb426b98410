// Package check provides the check engine, findings, and registry for mdvet.
package check

import (
	"github.com/yaklabco/mdvet/pkg/config"
)

// Finding represents a single style issue found in a document.
type Finding struct {
	// CheckID is the identifier of the check that produced this finding.
	CheckID string

	// CheckName is the human-readable name of the check
	// (e.g., "no-trailing-whitespace").
	CheckName string

	// Message is the human-readable description of the issue.
	Message string

	// Severity indicates the importance of the finding.
	Severity config.Severity

	// FilePath is the path to the file containing the issue.
	FilePath string

	// Lines holds the 1-based line numbers affected by the issue, in
	// ascending order. Empty for document-global findings such as the
	// consecutive-blank-lines check.
	Lines []int

	// Suggestion is an optional human-readable remediation hint.
	Suggestion string
}

// IsError reports whether the finding carries error severity.
func (f *Finding) IsError() bool {
	return f.Severity == config.SeverityError
}
