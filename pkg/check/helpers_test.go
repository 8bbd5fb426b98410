package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrailingWhitespaceWidth(t *testing.T) {
	assert.Equal(t, 0, TrailingWhitespaceWidth([]byte("text")))
	assert.Equal(t, 3, TrailingWhitespaceWidth([]byte("text   ")))
	assert.Equal(t, 1, TrailingWhitespaceWidth([]byte("text\t")))
	assert.Equal(t, 2, TrailingWhitespaceWidth([]byte("text \t")))
	assert.Equal(t, 0, TrailingWhitespaceWidth(nil))
}

func TestListMarker(t *testing.T) {
	tests := []struct {
		line       string
		wantMarker byte
		wantOK     bool
	}{
		{line: "- item", wantMarker: '-', wantOK: true},
		{line: "* item", wantMarker: '*', wantOK: true},
		{line: "+ item", wantMarker: '+', wantOK: true},
		{line: "-no space", wantOK: false},
		{line: "  - nested", wantOK: false},
		{line: "plain", wantOK: false},
		{line: "-", wantOK: false},
		{line: "", wantOK: false},
	}

	for _, tt := range tests {
		marker, ok := ListMarker([]byte(tt.line))
		assert.Equal(t, tt.wantOK, ok, "line %q", tt.line)
		if tt.wantOK {
			assert.Equal(t, tt.wantMarker, marker, "line %q", tt.line)
		}
	}
}

func TestParseFence(t *testing.T) {
	tests := []struct {
		line   string
		wantOK bool
		want   Fence
	}{
		{line: "```", wantOK: true, want: Fence{Marker: '`', Length: 3}},
		{line: "```go", wantOK: true, want: Fence{Marker: '`', Length: 3, Info: "go"}},
		{line: "```  go  ", wantOK: true, want: Fence{Marker: '`', Length: 3, Info: "go"}},
		{line: "````", wantOK: true, want: Fence{Marker: '`', Length: 4}},
		{line: "~~~python", wantOK: true, want: Fence{Marker: '~', Length: 3, Info: "python"}},
		{line: "  ```go", wantOK: true, want: Fence{Marker: '`', Length: 3, Info: "go"}},
		{line: "``", wantOK: false},
		{line: "text", wantOK: false},
		{line: "``` with ` backtick", wantOK: false},
		{line: "", wantOK: false},
	}

	for _, tt := range tests {
		fence, ok := ParseFence([]byte(tt.line))
		require.Equal(t, tt.wantOK, ok, "line %q", tt.line)
		if tt.wantOK {
			assert.Equal(t, tt.want, fence, "line %q", tt.line)
		}
	}
}

func TestFenceIsClosingFor(t *testing.T) {
	open := Fence{Marker: '`', Length: 3}

	assert.True(t, Fence{Marker: '`', Length: 3}.IsClosingFor(open))
	assert.True(t, Fence{Marker: '`', Length: 4}.IsClosingFor(open))
	assert.False(t, Fence{Marker: '~', Length: 3}.IsClosingFor(open))
	assert.False(t, Fence{Marker: '`', Length: 3, Info: "go"}.IsClosingFor(open))

	longOpen := Fence{Marker: '`', Length: 4}
	assert.False(t, Fence{Marker: '`', Length: 3}.IsClosingFor(longOpen))
}

func TestIsSetextUnderline(t *testing.T) {
	assert.True(t, IsSetextUnderline([]byte("===")))
	assert.True(t, IsSetextUnderline([]byte("-")))
	assert.True(t, IsSetextUnderline([]byte("  ====  ")))
	assert.False(t, IsSetextUnderline([]byte("=-=")))
	assert.False(t, IsSetextUnderline([]byte("text")))
	assert.False(t, IsSetextUnderline([]byte("")))
	assert.False(t, IsSetextUnderline([]byte("   ")))
}

func TestLooksLikeTableRow(t *testing.T) {
	assert.True(t, LooksLikeTableRow([]byte("| a | b |")))
	assert.False(t, LooksLikeTableRow([]byte("plain text")))
}
