package runner

import "github.com/yaklabco/mdvet/pkg/check"

// FileOutcome is the result of validating one file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Report contains the findings for this file.
	// Nil if the file could not be read.
	Report *check.Report

	// Error is set if the file could not be processed. A read failure is a
	// boundary error: no partial report is ever attached alongside it.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesProcessed is the number of files successfully validated.
	FilesProcessed int

	// FilesErrored is the number of files that could not be read.
	FilesErrored int

	// FilesWithFindings is the number of files with at least one finding.
	FilesWithFindings int

	// Errors is the total error-severity finding count across all files.
	Errors int

	// Warnings is the total warning-severity finding count across all files.
	Warnings int
}

// Findings returns the total finding count.
func (s Stats) Findings() int {
	return s.Errors + s.Warnings
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, in input order.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether the run should fail: any file-level error or
// any error-severity finding. Warnings alone do not fail a run.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0 || r.Stats.Errors > 0
}

// HasWarnings reports whether any warning-severity findings occurred.
func (r *Result) HasWarnings() bool {
	if r == nil {
		return false
	}
	return r.Stats.Warnings > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	if outcome.Report == nil {
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.Errors += outcome.Report.Totals.Errors
	r.Stats.Warnings += outcome.Report.Totals.Warnings

	if outcome.Report.HasFindings() {
		r.Stats.FilesWithFindings++
	}
}
