package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnderscoreEmphasisCheck(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLines []int
	}{
		{
			name:      "asterisk emphasis",
			input:     "This is *fine* and **also fine**\n",
			wantLines: nil,
		},
		{
			name:      "double underscore bold",
			input:     "This is __bold__\n",
			wantLines: []int{1},
		},
		{
			name:      "single underscore italic",
			input:     "This is _italic_\n",
			wantLines: []int{1},
		},
		{
			name:      "underscores in url skipped",
			input:     "See https://example.com/docs/_generated_/index.html\n",
			wantLines: nil,
		},
		{
			name:      "snake_case identifiers not flagged",
			input:     "Use the snake_case_name variable\n",
			wantLines: nil,
		},
		{
			name:      "bold flagged even on url line",
			input:     "See https://example.com and __bold__\n",
			wantLines: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := applyCheck(t, NewUnderscoreEmphasisCheck(), tt.input)
			if tt.wantLines == nil {
				assert.Empty(t, findings)
				return
			}
			require.Len(t, findings, 1)
			assert.Equal(t, tt.wantLines, findings[0].Lines)
		})
	}
}
