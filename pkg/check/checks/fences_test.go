package checks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFenceLanguageCheck(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLines []int
	}{
		{
			name:      "labeled fence",
			input:     "```go\nfunc main() {}\n```\n",
			wantLines: nil,
		},
		{
			name:      "unlabeled fence",
			input:     "```\ncode\n```\n",
			wantLines: []int{1},
		},
		{
			name:      "closing fence not flagged",
			input:     "```go\ncode\n```\n\n```python\nmore\n```\n",
			wantLines: nil,
		},
		{
			name:      "two unlabeled blocks",
			input:     "```\na\n```\n\n```\nb\n```\n",
			wantLines: []int{1, 5},
		},
		{
			name:      "unterminated unlabeled fence",
			input:     "```\ncode\n",
			wantLines: []int{1},
		},
		{
			name:      "tilde fence",
			input:     "~~~\ncode\n~~~\n",
			wantLines: []int{1},
		},
		{
			name:      "no fences",
			input:     "just text\n",
			wantLines: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := applyCheck(t, NewFenceLanguageCheck(), tt.input)
			if tt.wantLines == nil {
				assert.Empty(t, findings)
				return
			}
			require.Len(t, findings, 1)
			assert.Equal(t, tt.wantLines, findings[0].Lines)
		})
	}
}

func TestFenceLanguageCheckSuggestsDetectedLanguage(t *testing.T) {
	findings := applyCheck(t, NewFenceLanguageCheck(),
		"```\npackage main\n\nfunc main() {}\n```\n")

	require.Len(t, findings, 1)
	assert.True(t, strings.Contains(findings[0].Suggestion, "go"),
		"suggestion should name the detected language: %q", findings[0].Suggestion)
}

func TestKnownFenceLanguageCheck(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantFindings int
	}{
		{name: "known language", input: "```go\ncode\n```\n", wantFindings: 0},
		{name: "conventional tag", input: "```text\nnotes\n```\n", wantFindings: 0},
		{name: "unknown tag", input: "```blorkscript\ncode\n```\n", wantFindings: 1},
		{name: "unlabeled fence ignored", input: "```\ncode\n```\n", wantFindings: 0},
		{
			name:         "distinct unknown tags",
			input:        "```blork\na\n```\n\n```zorp\nb\n```\n",
			wantFindings: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := applyCheck(t, NewKnownFenceLanguageCheck(), tt.input)
			assert.Len(t, findings, tt.wantFindings)
		})
	}
}

func TestScanFences(t *testing.T) {
	doc := docFromContent("```go\nline one\nline two\n```\n")
	blocks := scanFences(doc)

	require.Len(t, blocks, 1)
	assert.Equal(t, 1, blocks[0].openLine)
	assert.Equal(t, "go", blocks[0].info)
	assert.Equal(t, "line one\nline two\n", string(blocks[0].body))
}

func TestScanFencesShorterCloseDoesNotClose(t *testing.T) {
	// A four-backtick fence can only be closed by four or more backticks.
	doc := docFromContent("````\n```\nstill inside\n````\n")
	blocks := scanFences(doc)

	require.Len(t, blocks, 1)
	assert.Equal(t, "```\nstill inside\n", string(blocks[0].body))
}
