package checks

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/yaklabco/mdvet/pkg/check"
)

// boldUnderscorePattern matches text wrapped in double underscores.
//
//nolint:gochecknoglobals // Compiled once, read-only.
var boldUnderscorePattern = regexp.MustCompile(`__[^_]+__`)

// italicUnderscorePattern matches text wrapped in single underscores at word
// boundaries.
//
//nolint:gochecknoglobals // Compiled once, read-only.
var italicUnderscorePattern = regexp.MustCompile(`\b_[^_]+_\b`)

// UnderscoreEmphasisCheck flags underscore-style emphasis.
//
// The single-underscore form is a heuristic: lines containing anything that
// looks like a URL are skipped entirely, since underscores are common in
// paths and anchors. False positives and negatives are possible.
type UnderscoreEmphasisCheck struct {
	check.BaseCheck
}

// NewUnderscoreEmphasisCheck creates a new underscore emphasis check.
func NewUnderscoreEmphasisCheck() *UnderscoreEmphasisCheck {
	return &UnderscoreEmphasisCheck{
		BaseCheck: check.NewBaseCheck(
			"MV011",
			"no-underscore-emphasis",
			"Emphasis should use asterisks, not underscores",
			[]string{"emphasis"},
			true,
		),
	}
}

// Apply collects every line using underscore emphasis.
func (c *UnderscoreEmphasisCheck) Apply(ctx *check.CheckContext) ([]check.Finding, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	var lines []int
	for lineNum := 1; lineNum <= ctx.Doc.LineCount(); lineNum++ {
		if ctx.Cancelled() {
			return nil, fmt.Errorf("check cancelled: %w", ctx.Ctx.Err())
		}

		content := ctx.Doc.LineContent(lineNum)

		if boldUnderscorePattern.Match(content) {
			lines = append(lines, lineNum)
			continue
		}

		// URL-bearing lines are excluded from the single-underscore form.
		if bytes.Contains(content, []byte("://")) {
			continue
		}
		if italicUnderscorePattern.Match(content) {
			lines = append(lines, lineNum)
		}
	}

	if len(lines) == 0 {
		return nil, nil
	}

	finding := check.NewFinding(c.ID(), ctx.Doc.Path, "Underscore-style emphasis").
		WithLines(lines...).
		WithSuggestion("Use *italic* and **bold**").
		Build()
	return []check.Finding{finding}, nil
}
