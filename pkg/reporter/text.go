package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/mdvet/internal/ui/pretty"
	"github.com/yaklabco/mdvet/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to validate."))
		}
		return 0, nil
	}

	total := r.reportFiles(result)

	if r.opts.ShowSummary {
		r.writeSummary(result)
	}

	return total, nil
}

// reportFiles writes findings grouped by file.
func (r *TextReporter) reportFiles(result *runner.Result) int {
	var total int

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(file.Path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if file.Report == nil || len(file.Report.Findings) == 0 {
			continue
		}

		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(file.Path, len(file.Report.Findings)))

		for i := range file.Report.Findings {
			fmt.Fprint(r.bw, r.styles.FormatFinding(&file.Report.Findings[i], r.opts.ShowSuggestions))
			total++
		}

		// Blank line between files
		fmt.Fprintln(r.bw)
	}

	return total
}

// writeSummary writes the trailing summary line with totals and a terminal verdict.
func (r *TextReporter) writeSummary(result *runner.Result) {
	stats := result.Stats

	fmt.Fprintln(r.bw, r.styles.Separator.Render(summarySeparator(r.opts.Writer)))

	fmt.Fprintf(r.bw, "%d %s checked, %d %s, %d %s\n",
		stats.FilesProcessed, pluralize(stats.FilesProcessed, "file", "files"),
		stats.Errors, pluralize(stats.Errors, "error", "errors"),
		stats.Warnings, pluralize(stats.Warnings, "warning", "warnings"),
	)

	switch {
	case stats.Errors > 0 || stats.FilesErrored > 0:
		fmt.Fprintln(r.bw, r.styles.Failure.Render("validation failed"))
	case stats.Warnings > 0:
		fmt.Fprintln(r.bw, r.styles.Warning.Render("completed with warnings"))
	default:
		fmt.Fprintln(r.bw, r.styles.Success.Render("no issues"))
	}
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
