package checks

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yaklabco/mdvet/pkg/check"
	"github.com/yaklabco/mdvet/pkg/document"
	"github.com/yaklabco/mdvet/pkg/langdetect"
)

// fenceBlock describes one fenced code block found in a document.
type fenceBlock struct {
	// openLine is the 1-based line number of the opening fence.
	openLine int

	// info is the info string on the opening fence, trimmed.
	info string

	// body holds the block content between the fences.
	body []byte
}

// scanFences walks the document tracking fence open/close state and returns
// every fenced block, including an unterminated trailing block. Tracking
// pairing state is what lets the checks flag only opening fences: a bare
// closing fence is legal.
func scanFences(doc *document.Document) []fenceBlock {
	var blocks []fenceBlock
	var open *check.Fence
	var current fenceBlock
	var body bytes.Buffer

	for lineNum := 1; lineNum <= doc.LineCount(); lineNum++ {
		line := doc.LineContent(lineNum)
		fence, ok := check.ParseFence(line)

		if open == nil {
			if ok {
				open = &fence
				current = fenceBlock{openLine: lineNum, info: fence.Info}
				body.Reset()
			}
			continue
		}

		if ok && fence.IsClosingFor(*open) {
			current.body = append([]byte(nil), body.Bytes()...)
			blocks = append(blocks, current)
			open = nil
			continue
		}

		body.Write(line)
		body.WriteByte('\n')
	}

	// Unterminated block at EOF still counts as opened.
	if open != nil {
		current.body = append([]byte(nil), body.Bytes()...)
		blocks = append(blocks, current)
	}

	return blocks
}

// FenceLanguageCheck flags opening fences without a language label.
type FenceLanguageCheck struct {
	check.BaseCheck
}

// NewFenceLanguageCheck creates a new fence language check.
func NewFenceLanguageCheck() *FenceLanguageCheck {
	return &FenceLanguageCheck{
		BaseCheck: check.NewBaseCheck(
			"MV004",
			"fence-language",
			"Fenced code blocks should declare a language after the opening fence",
			[]string{"code"},
			true,
		),
	}
}

// Apply flags every unlabeled opening fence. When the block content permits,
// the suggestion names a detected language.
func (c *FenceLanguageCheck) Apply(ctx *check.CheckContext) ([]check.Finding, error) {
	if ctx.Doc == nil {
		return nil, nil
	}
	if ctx.Cancelled() {
		return nil, fmt.Errorf("check cancelled: %w", ctx.Ctx.Err())
	}

	var lines []int
	suggestion := "Add a language tag after the opening fence"

	for _, block := range scanFences(ctx.Doc) {
		if block.info != "" {
			continue
		}
		lines = append(lines, block.openLine)

		if lang := langdetect.Detect(block.body); lang != "" && lang != "text" {
			suggestion = fmt.Sprintf("Add a language tag, e.g. ```%s", lang)
		}
	}

	if len(lines) == 0 {
		return nil, nil
	}

	finding := check.NewFinding(c.ID(), ctx.Doc.Path,
		"Fenced code block without a language label").
		WithLines(lines...).
		WithSuggestion(suggestion).
		Build()
	return []check.Finding{finding}, nil
}

// KnownFenceLanguageCheck flags fence labels that are not recognized
// language aliases.
type KnownFenceLanguageCheck struct {
	check.BaseCheck
}

// NewKnownFenceLanguageCheck creates a new known fence language check.
func NewKnownFenceLanguageCheck() *KnownFenceLanguageCheck {
	return &KnownFenceLanguageCheck{
		BaseCheck: check.NewBaseCheck(
			"MV012",
			"known-fence-language",
			"Fence language labels should name a recognized language",
			[]string{"code"},
			true,
		),
	}
}

// Apply emits one finding per distinct unrecognized label.
func (c *KnownFenceLanguageCheck) Apply(ctx *check.CheckContext) ([]check.Finding, error) {
	if ctx.Doc == nil {
		return nil, nil
	}
	if ctx.Cancelled() {
		return nil, fmt.Errorf("check cancelled: %w", ctx.Ctx.Err())
	}

	unknown := make(map[string][]int)
	var order []string

	for _, block := range scanFences(ctx.Doc) {
		if block.info == "" {
			continue
		}
		// Only the first token of the info string names the language.
		tag := strings.Fields(block.info)[0]
		if langdetect.KnownTag(tag) {
			continue
		}
		if _, seen := unknown[tag]; !seen {
			order = append(order, tag)
		}
		unknown[tag] = append(unknown[tag], block.openLine)
	}

	var findings []check.Finding
	for _, tag := range order {
		finding := check.NewFinding(c.ID(), ctx.Doc.Path,
			fmt.Sprintf("Unrecognized fence language %q", tag)).
			WithLines(unknown[tag]...).
			WithSuggestion("Use a known language alias or `text`").
			Build()
		findings = append(findings, finding)
	}

	return findings, nil
}
