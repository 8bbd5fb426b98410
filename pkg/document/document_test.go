package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuildsLineIndex(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantCount int
	}{
		{name: "empty file", content: "", wantCount: 0},
		{name: "single line with newline", content: "hello\n", wantCount: 1},
		{name: "single line without newline", content: "hello", wantCount: 1},
		{name: "multiple lines", content: "a\nb\nc\n", wantCount: 3},
		{name: "trailing blank line", content: "a\n\n", wantCount: 2},
		{name: "crlf endings", content: "a\r\nb\r\n", wantCount: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := New("test.md", []byte(tt.content))
			assert.Equal(t, tt.wantCount, doc.LineCount())
		})
	}
}

func TestLineContent(t *testing.T) {
	doc := New("test.md", []byte("first\nsecond\r\nthird"))

	assert.Equal(t, "first", string(doc.LineContent(1)))
	assert.Equal(t, "second", string(doc.LineContent(2)))
	assert.Equal(t, "third", string(doc.LineContent(3)))
	assert.Nil(t, doc.LineContent(0))
	assert.Nil(t, doc.LineContent(4))
}

func TestIsBlank(t *testing.T) {
	doc := New("test.md", []byte("text\n\n   \n\t\nend\n"))

	assert.False(t, doc.IsBlank(1))
	assert.True(t, doc.IsBlank(2))
	assert.True(t, doc.IsBlank(3))
	assert.True(t, doc.IsBlank(4))
	assert.False(t, doc.IsBlank(5))
	assert.False(t, doc.IsBlank(99))
}

func TestEndsWithNewline(t *testing.T) {
	assert.True(t, New("a.md", []byte("")).EndsWithNewline())
	assert.True(t, New("a.md", []byte("x\n")).EndsWithNewline())
	assert.False(t, New("a.md", []byte("x")).EndsWithNewline())
}

func TestLineAt(t *testing.T) {
	doc := New("test.md", []byte("ab\ncd\n"))

	assert.Equal(t, 1, doc.LineAt(0))
	assert.Equal(t, 1, doc.LineAt(2))
	assert.Equal(t, 2, doc.LineAt(3))
	assert.Equal(t, 0, doc.LineAt(-1))
	assert.Equal(t, 0, doc.LineAt(6))
}
