package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/mdvet/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path     string        `json:"path"`
	Findings []JSONFinding `json:"findings"`
	Error    string        `json:"error,omitempty"`
}

// JSONFinding represents a single finding.
type JSONFinding struct {
	CheckID    string `json:"checkId"`
	CheckName  string `json:"checkName"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Lines      []int  `json:"lines,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked      int `json:"filesChecked"`
	FilesWithFindings int `json:"filesWithFindings"`
	FilesErrored      int `json:"filesErrored"`
	TotalFindings     int `json:"totalFindings"`
	Errors            int `json:"errors"`
	Warnings          int `json:"warnings"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalFindings, nil
}

func buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
	}

	if result == nil {
		return output
	}

	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:     file.Path,
			Findings: make([]JSONFinding, 0),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
			output.Summary.FilesErrored++
		}

		if file.Report != nil {
			for _, finding := range file.Report.Findings {
				fileResult.Findings = append(fileResult.Findings, JSONFinding{
					CheckID:    finding.CheckID,
					CheckName:  finding.CheckName,
					Severity:   string(finding.Severity),
					Message:    finding.Message,
					Lines:      finding.Lines,
					Suggestion: finding.Suggestion,
				})
				output.Summary.TotalFindings++

				if finding.IsError() {
					output.Summary.Errors++
				} else {
					output.Summary.Warnings++
				}
			}
		}

		if len(fileResult.Findings) > 0 {
			output.Summary.FilesWithFindings++
		}

		output.Files = append(output.Files, fileResult)
		output.Summary.FilesChecked++
	}

	return output
}
