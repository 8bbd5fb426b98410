package checks

import (
	"fmt"

	"github.com/yaklabco/mdvet/pkg/check"
)

// ConsistentListMarkersCheck flags documents mixing '*' and '-' top-level
// list markers. It reports per-marker counts rather than line numbers.
type ConsistentListMarkersCheck struct {
	check.BaseCheck
}

// NewConsistentListMarkersCheck creates a new consistent list markers check.
func NewConsistentListMarkersCheck() *ConsistentListMarkersCheck {
	return &ConsistentListMarkersCheck{
		BaseCheck: check.NewBaseCheck(
			"MV007",
			"consistent-list-markers",
			"Top-level list markers should be consistent within a document",
			[]string{"lists"},
			true,
		),
	}
}

// Apply counts '*' and '-' list lines and flags the document when both occur.
func (c *ConsistentListMarkersCheck) Apply(ctx *check.CheckContext) ([]check.Finding, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	asterisks, dashes := 0, 0
	for lineNum := 1; lineNum <= ctx.Doc.LineCount(); lineNum++ {
		if ctx.Cancelled() {
			return nil, fmt.Errorf("check cancelled: %w", ctx.Ctx.Err())
		}

		marker, ok := check.ListMarker(ctx.Doc.LineContent(lineNum))
		if !ok {
			continue
		}
		switch marker {
		case '*':
			asterisks++
		case '-':
			dashes++
		}
	}

	if asterisks == 0 || dashes == 0 {
		return nil, nil
	}

	finding := check.NewFinding(c.ID(), ctx.Doc.Path,
		fmt.Sprintf("Mixed list markers: %d asterisk, %d dash", asterisks, dashes)).
		WithSuggestion("Pick one marker style for the whole document").
		Build()
	return []check.Finding{finding}, nil
}

// PlusListMarkerCheck flags '+'-prefixed top-level list lines.
type PlusListMarkerCheck struct {
	check.BaseCheck
}

// NewPlusListMarkerCheck creates a new plus list marker check.
func NewPlusListMarkerCheck() *PlusListMarkerCheck {
	return &PlusListMarkerCheck{
		BaseCheck: check.NewBaseCheck(
			"MV008",
			"no-plus-list-markers",
			"List items should not use the '+' marker",
			[]string{"lists"},
			true,
		),
	}
}

// Apply counts '+' list lines and flags the document when any occur.
func (c *PlusListMarkerCheck) Apply(ctx *check.CheckContext) ([]check.Finding, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	count := 0
	for lineNum := 1; lineNum <= ctx.Doc.LineCount(); lineNum++ {
		if ctx.Cancelled() {
			return nil, fmt.Errorf("check cancelled: %w", ctx.Ctx.Err())
		}

		if marker, ok := check.ListMarker(ctx.Doc.LineContent(lineNum)); ok && marker == '+' {
			count++
		}
	}

	if count == 0 {
		return nil, nil
	}

	finding := check.NewFinding(c.ID(), ctx.Doc.Path,
		fmt.Sprintf("List items use the '+' marker (%d occurrence(s))", count)).
		WithSuggestion("Use '-' or '*' list markers").
		Build()
	return []check.Finding{finding}, nil
}
