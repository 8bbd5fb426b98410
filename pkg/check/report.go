package check

import "github.com/yaklabco/mdvet/pkg/config"

// Totals holds aggregate finding counts partitioned by severity.
type Totals struct {
	Errors   int
	Warnings int
}

// Findings returns the total number of findings.
func (t Totals) Findings() int {
	return t.Errors + t.Warnings
}

// Report is the complete ordered collection of findings for one validated
// document. It is immutable after construction; totals are derived from the
// final findings list rather than accumulated in shared counters.
type Report struct {
	// Path is the file path the report was produced for.
	Path string

	// Findings contains all issues found, in check order.
	Findings []Finding

	// Totals contains aggregate counts derived from Findings.
	Totals Totals
}

// NewReport builds a Report from a findings list, deriving totals by
// reduction over the list.
func NewReport(path string, findings []Finding) *Report {
	report := &Report{
		Path:     path,
		Findings: findings,
	}

	for i := range findings {
		switch findings[i].Severity {
		case config.SeverityError:
			report.Totals.Errors++
		default:
			report.Totals.Warnings++
		}
	}

	return report
}

// HasFindings reports whether any findings were collected.
func (r *Report) HasFindings() bool {
	return r != nil && len(r.Findings) > 0
}

// HasErrors reports whether any error-severity findings were collected.
// Only error findings affect the process exit status.
func (r *Report) HasErrors() bool {
	return r != nil && r.Totals.Errors > 0
}
