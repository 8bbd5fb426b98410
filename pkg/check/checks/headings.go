package checks

import (
	"fmt"

	"github.com/yaklabco/mdvet/pkg/check"
)

// SetextHeadingCheck flags underline-style (setext) headings.
//
// Detection is line-pair based and best-effort: a non-blank line followed by
// a pure run of '=' or '-' characters. Table separator rows are excluded by
// skipping pairs whose first line contains a pipe; horizontal rules preceded
// by text can still false-positive.
type SetextHeadingCheck struct {
	check.BaseCheck
}

// NewSetextHeadingCheck creates a new setext heading check.
func NewSetextHeadingCheck() *SetextHeadingCheck {
	return &SetextHeadingCheck{
		BaseCheck: check.NewBaseCheck(
			"MV006",
			"no-setext-headings",
			"Headings should use ATX style (#), not setext underlines",
			[]string{"headings"},
			true,
		),
	}
}

// Apply collects the underline line number of every detected setext heading.
func (c *SetextHeadingCheck) Apply(ctx *check.CheckContext) ([]check.Finding, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	var lines []int
	for lineNum := 2; lineNum <= ctx.Doc.LineCount(); lineNum++ {
		if ctx.Cancelled() {
			return nil, fmt.Errorf("check cancelled: %w", ctx.Ctx.Err())
		}

		underline := ctx.Doc.LineContent(lineNum)
		if !check.IsSetextUnderline(underline) {
			continue
		}

		prev := ctx.Doc.LineContent(lineNum - 1)
		if ctx.Doc.IsBlank(lineNum - 1) {
			continue
		}
		if check.LooksLikeTableRow(prev) {
			continue
		}
		// An underline under another underline is a horizontal rule stack,
		// not a heading.
		if check.IsSetextUnderline(prev) {
			continue
		}

		lines = append(lines, lineNum)
	}

	if len(lines) == 0 {
		return nil, nil
	}

	finding := check.NewFinding(c.ID(), ctx.Doc.Path, "Setext-style heading underline").
		WithLines(lines...).
		WithSuggestion("Rewrite as an ATX heading (# Title)").
		Build()
	return []check.Finding{finding}, nil
}
