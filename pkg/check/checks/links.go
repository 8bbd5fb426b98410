package checks

import (
	"fmt"
	"regexp"

	"github.com/yaklabco/mdvet/pkg/check"
)

// nonDescriptiveLinkPattern matches links whose visible text is exactly
// "click here" or "here", case-insensitive.
//
//nolint:gochecknoglobals // Compiled once, read-only.
var nonDescriptiveLinkPattern = regexp.MustCompile(`(?i)\[(click here|here)\]\(`)

// emptyAltImagePattern matches image references with empty bracket text.
//
//nolint:gochecknoglobals // Compiled once, read-only.
var emptyAltImagePattern = regexp.MustCompile(`!\[\]\(`)

// DescriptiveLinkTextCheck flags links with non-descriptive visible text.
type DescriptiveLinkTextCheck struct {
	check.BaseCheck
}

// NewDescriptiveLinkTextCheck creates a new descriptive link text check.
func NewDescriptiveLinkTextCheck() *DescriptiveLinkTextCheck {
	return &DescriptiveLinkTextCheck{
		BaseCheck: check.NewBaseCheck(
			"MV009",
			"descriptive-link-text",
			`Link text should describe the destination, not "click here"`,
			[]string{"links"},
			true,
		),
	}
}

// Apply collects every line containing a non-descriptive link.
func (c *DescriptiveLinkTextCheck) Apply(ctx *check.CheckContext) ([]check.Finding, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	var lines []int
	for lineNum := 1; lineNum <= ctx.Doc.LineCount(); lineNum++ {
		if ctx.Cancelled() {
			return nil, fmt.Errorf("check cancelled: %w", ctx.Ctx.Err())
		}

		if nonDescriptiveLinkPattern.Match(ctx.Doc.LineContent(lineNum)) {
			lines = append(lines, lineNum)
		}
	}

	if len(lines) == 0 {
		return nil, nil
	}

	finding := check.NewFinding(c.ID(), ctx.Doc.Path,
		`Non-descriptive link text ("click here" or "here")`).
		WithLines(lines...).
		WithSuggestion("Name the destination in the link text").
		Build()
	return []check.Finding{finding}, nil
}

// ImageAltTextCheck flags images with empty alt text.
type ImageAltTextCheck struct {
	check.BaseCheck
}

// NewImageAltTextCheck creates a new image alt text check.
func NewImageAltTextCheck() *ImageAltTextCheck {
	return &ImageAltTextCheck{
		BaseCheck: check.NewBaseCheck(
			"MV010",
			"image-alt-text",
			"Images should have alternative text",
			[]string{"images", "accessibility"},
			true,
		),
	}
}

// Apply collects every line containing an image with empty alt text.
func (c *ImageAltTextCheck) Apply(ctx *check.CheckContext) ([]check.Finding, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	var lines []int
	for lineNum := 1; lineNum <= ctx.Doc.LineCount(); lineNum++ {
		if ctx.Cancelled() {
			return nil, fmt.Errorf("check cancelled: %w", ctx.Ctx.Err())
		}

		if emptyAltImagePattern.Match(ctx.Doc.LineContent(lineNum)) {
			lines = append(lines, lineNum)
		}
	}

	if len(lines) == 0 {
		return nil, nil
	}

	finding := check.NewFinding(c.ID(), ctx.Doc.Path, "Image missing alt text").
		WithLines(lines...).
		WithSuggestion("Describe the image inside the square brackets").
		Build()
	return []check.Finding{finding}, nil
}
