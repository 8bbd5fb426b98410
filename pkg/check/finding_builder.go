package check

import (
	"slices"

	"github.com/yaklabco/mdvet/pkg/config"
)

// FindingBuilder helps construct Finding values.
type FindingBuilder struct {
	finding Finding
}

// NewFinding starts building a finding for the given check and file.
func NewFinding(checkID, filePath, message string) *FindingBuilder {
	return &FindingBuilder{
		finding: Finding{
			CheckID:  checkID,
			FilePath: filePath,
			Message:  message,
			Severity: config.SeverityWarning,
		},
	}
}

// WithSeverity sets the severity.
func (b *FindingBuilder) WithSeverity(s config.Severity) *FindingBuilder {
	b.finding.Severity = s
	return b
}

// WithLines sets the affected line numbers, sorted ascending.
func (b *FindingBuilder) WithLines(lines ...int) *FindingBuilder {
	if len(lines) == 0 {
		return b
	}
	sorted := slices.Clone(lines)
	slices.Sort(sorted)
	b.finding.Lines = sorted
	return b
}

// WithSuggestion sets a human-readable remediation hint.
func (b *FindingBuilder) WithSuggestion(s string) *FindingBuilder {
	b.finding.Suggestion = s
	return b
}

// Build returns the constructed Finding.
func (b *FindingBuilder) Build() Finding {
	return b.finding
}
