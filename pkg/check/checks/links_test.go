package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptiveLinkTextCheck(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLines []int
	}{
		{
			name:      "descriptive text",
			input:     "[installation guide](http://x)\n",
			wantLines: nil,
		},
		{
			name:      "click here",
			input:     "[click here](http://x)\n",
			wantLines: []int{1},
		},
		{
			name:      "bare here",
			input:     "See [here](http://x) for details\n",
			wantLines: []int{1},
		},
		{
			name:      "case insensitive",
			input:     "[Click Here](http://x)\n[HERE](http://x)\n",
			wantLines: []int{1, 2},
		},
		{
			name:      "here as part of longer text",
			input:     "[adherence policy](http://x)\n",
			wantLines: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := applyCheck(t, NewDescriptiveLinkTextCheck(), tt.input)
			if tt.wantLines == nil {
				assert.Empty(t, findings)
				return
			}
			require.Len(t, findings, 1)
			assert.Equal(t, tt.wantLines, findings[0].Lines)
		})
	}
}

func TestImageAltTextCheck(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLines []int
	}{
		{
			name:      "image with alt text",
			input:     "![A dashboard chart](img.png)\n",
			wantLines: nil,
		},
		{
			name:      "empty alt text",
			input:     "![](img.png)\n",
			wantLines: []int{1},
		},
		{
			name:      "mixed",
			input:     "![ok](a.png)\n![](b.png)\ntext\n![](c.png)\n",
			wantLines: []int{2, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := applyCheck(t, NewImageAltTextCheck(), tt.input)
			if tt.wantLines == nil {
				assert.Empty(t, findings)
				return
			}
			require.Len(t, findings, 1)
			assert.Equal(t, tt.wantLines, findings[0].Lines)
		})
	}
}
