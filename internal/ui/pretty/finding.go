package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/mdvet/pkg/check"
	"github.com/yaklabco/mdvet/pkg/config"
)

// FormatFinding formats a single finding for terminal output:
//
//	severity  message (lines 3, 7)  (check-name)
func (s *Styles) FormatFinding(f *check.Finding, showSuggestion bool) string {
	var builder strings.Builder

	severity := s.FormatSeverity(f.Severity)

	message := f.Message
	if lineList := FormatLineList(f.Lines); lineList != "" {
		message += " " + s.Lines.Render("("+lineList+")")
	}

	name := f.CheckName
	if name == "" {
		name = f.CheckID
	}

	builder.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		severity,
		s.Message.Render(message),
		s.CheckID.Render("("+name+")"),
	))

	if showSuggestion && f.Suggestion != "" {
		builder.WriteString("    " + s.Dim.Render("Suggestion:") + " " +
			s.Suggestion.Render(f.Suggestion) + "\n")
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	default:
		return string(sev)
	}
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, findingCount int) string {
	header := s.FilePath.Render(path)
	if findingCount > 0 {
		noun := "issues"
		if findingCount == 1 {
			noun = "issue"
		}
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", findingCount, noun))
	}
	return header
}

// FormatLineList renders line numbers as "line 3" or "lines 3, 7, 12".
// Returns the empty string for document-global findings.
func FormatLineList(lines []int) string {
	switch len(lines) {
	case 0:
		return ""
	case 1:
		return "line " + strconv.Itoa(lines[0])
	default:
		parts := make([]string, len(lines))
		for i, n := range lines {
			parts[i] = strconv.Itoa(n)
		}
		return "lines " + strings.Join(parts, ", ")
	}
}
