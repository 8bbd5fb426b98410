package checks

import (
	"fmt"

	"github.com/yaklabco/mdvet/pkg/check"
)

// FinalNewlineCheck ensures files end with a newline character.
type FinalNewlineCheck struct {
	check.BaseCheck
}

// NewFinalNewlineCheck creates a new final newline check.
func NewFinalNewlineCheck() *FinalNewlineCheck {
	return &FinalNewlineCheck{
		BaseCheck: check.NewBaseCheck(
			"MV001",
			"final-newline",
			"Files should end with a newline character",
			[]string{"whitespace"},
			true,
		),
	}
}

// Apply checks that the last byte of the file is a newline.
// Empty files are exempt.
func (c *FinalNewlineCheck) Apply(ctx *check.CheckContext) ([]check.Finding, error) {
	if ctx.Doc == nil || ctx.Doc.EndsWithNewline() {
		return nil, nil
	}

	finding := check.NewFinding(c.ID(), ctx.Doc.Path, "File does not end with a newline").
		WithLines(ctx.Doc.LineCount()).
		WithSuggestion("Add a newline at end of file").
		Build()
	return []check.Finding{finding}, nil
}

// TrailingWhitespaceCheck flags lines ending in spaces or tabs.
type TrailingWhitespaceCheck struct {
	check.BaseCheck
}

// NewTrailingWhitespaceCheck creates a new trailing whitespace check.
func NewTrailingWhitespaceCheck() *TrailingWhitespaceCheck {
	return &TrailingWhitespaceCheck{
		BaseCheck: check.NewBaseCheck(
			"MV002",
			"no-trailing-whitespace",
			"Lines should not have trailing spaces or tabs",
			[]string{"whitespace"},
			true,
		),
	}
}

// Apply collects every line with trailing whitespace into one finding.
func (c *TrailingWhitespaceCheck) Apply(ctx *check.CheckContext) ([]check.Finding, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	var lines []int
	for lineNum := 1; lineNum <= ctx.Doc.LineCount(); lineNum++ {
		if ctx.Cancelled() {
			return nil, fmt.Errorf("check cancelled: %w", ctx.Ctx.Err())
		}

		content := ctx.Doc.LineContent(lineNum)
		if len(content) == 0 {
			continue
		}
		if check.TrailingWhitespaceWidth(content) > 0 {
			lines = append(lines, lineNum)
		}
	}

	if len(lines) == 0 {
		return nil, nil
	}

	finding := check.NewFinding(c.ID(), ctx.Doc.Path, "Trailing whitespace").
		WithLines(lines...).
		WithSuggestion("Remove trailing spaces and tabs").
		Build()
	return []check.Finding{finding}, nil
}

// HardTabsCheck flags lines containing literal tab characters.
// It does not distinguish tabs inside code fences.
type HardTabsCheck struct {
	check.BaseCheck
}

// NewHardTabsCheck creates a new hard tabs check.
func NewHardTabsCheck() *HardTabsCheck {
	return &HardTabsCheck{
		BaseCheck: check.NewBaseCheck(
			"MV003",
			"no-tabs",
			"Lines should use spaces, not tab characters",
			[]string{"whitespace"},
			true,
		),
	}
}

// Apply collects every line containing a tab into one finding.
func (c *HardTabsCheck) Apply(ctx *check.CheckContext) ([]check.Finding, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	var lines []int
	for lineNum := 1; lineNum <= ctx.Doc.LineCount(); lineNum++ {
		if ctx.Cancelled() {
			return nil, fmt.Errorf("check cancelled: %w", ctx.Ctx.Err())
		}

		for _, b := range ctx.Doc.LineContent(lineNum) {
			if b == '\t' {
				lines = append(lines, lineNum)
				break
			}
		}
	}

	if len(lines) == 0 {
		return nil, nil
	}

	finding := check.NewFinding(c.ID(), ctx.Doc.Path, "Tab characters present").
		WithLines(lines...).
		WithSuggestion("Replace tabs with spaces").
		Build()
	return []check.Finding{finding}, nil
}

// MultipleBlankLinesCheck flags runs of two or more fully blank lines.
// The signal is document-global: one finding, no line numbers.
type MultipleBlankLinesCheck struct {
	check.BaseCheck
}

// NewMultipleBlankLinesCheck creates a new multiple blank lines check.
func NewMultipleBlankLinesCheck() *MultipleBlankLinesCheck {
	return &MultipleBlankLinesCheck{
		BaseCheck: check.NewBaseCheck(
			"MV005",
			"no-multiple-blank-lines",
			"Multiple consecutive blank lines should be collapsed to one",
			[]string{"whitespace", "layout"},
			true,
		),
	}
}

// Apply scans for a streak of blank lines longer than one.
func (c *MultipleBlankLinesCheck) Apply(ctx *check.CheckContext) ([]check.Finding, error) {
	if ctx.Doc == nil || ctx.Doc.LineCount() == 0 {
		return nil, nil
	}

	streak := 0
	for lineNum := 1; lineNum <= ctx.Doc.LineCount(); lineNum++ {
		if ctx.Cancelled() {
			return nil, fmt.Errorf("check cancelled: %w", ctx.Ctx.Err())
		}

		if len(ctx.Doc.LineContent(lineNum)) == 0 {
			streak++
			if streak >= 2 {
				finding := check.NewFinding(c.ID(), ctx.Doc.Path,
					"Multiple consecutive blank lines").
					WithSuggestion("Collapse runs of blank lines to a single blank line").
					Build()
				return []check.Finding{finding}, nil
			}
		} else {
			streak = 0
		}
	}

	return nil, nil
}
