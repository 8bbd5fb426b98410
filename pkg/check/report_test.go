package check

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdvet/pkg/config"
)

func TestNewReportDerivesTotals(t *testing.T) {
	findings := []Finding{
		{Severity: config.SeverityWarning},
		{Severity: config.SeverityError},
		{Severity: config.SeverityWarning},
	}

	report := NewReport("doc.md", findings)

	assert.Equal(t, 1, report.Totals.Errors)
	assert.Equal(t, 2, report.Totals.Warnings)
	assert.Equal(t, 3, report.Totals.Findings())
	assert.True(t, report.HasFindings())
	assert.True(t, report.HasErrors())
}

func TestNewReportEmpty(t *testing.T) {
	report := NewReport("doc.md", nil)

	assert.Equal(t, 0, report.Totals.Findings())
	assert.False(t, report.HasFindings())
	assert.False(t, report.HasErrors())
}

func TestNewReportUnsetSeverityCountsAsWarning(t *testing.T) {
	report := NewReport("doc.md", []Finding{{Message: "x"}})

	assert.Equal(t, 1, report.Totals.Warnings)
	assert.Equal(t, 0, report.Totals.Errors)
}

func TestFindingBuilderSortsLines(t *testing.T) {
	finding := NewFinding("T001", "doc.md", "message").
		WithLines(5, 1, 3).
		WithSeverity(config.SeverityError).
		WithSuggestion("fix it").
		Build()

	assert.Equal(t, []int{1, 3, 5}, finding.Lines)
	assert.Equal(t, config.SeverityError, finding.Severity)
	assert.Equal(t, "fix it", finding.Suggestion)
	assert.True(t, finding.IsError())
}
