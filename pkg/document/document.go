// Package document provides the immutable, line-indexed representation of a
// file under validation. The model is deliberately line-oriented: mdvet's
// checks operate on raw lines, not on a parsed Markdown tree.
package document

import (
	"bytes"
	"sort"
)

// LineInfo describes the byte extents of a single line.
type LineInfo struct {
	// StartOffset is the byte offset of the first character of the line.
	StartOffset int

	// NewlineStart is the byte offset where the line terminator begins.
	// For the last line of a file without a trailing newline, this equals
	// EndOffset.
	NewlineStart int

	// EndOffset is the byte offset one past the line terminator.
	EndOffset int
}

// Document is the content of one file plus its line index.
// It is immutable for the duration of a validation run.
type Document struct {
	// Path is the file path the content was loaded from.
	Path string

	// Content is the raw file content.
	Content []byte

	// Lines holds per-line byte extents, in order. Line numbers are 1-based
	// throughout; Lines[0] is line 1.
	Lines []LineInfo
}

// New builds a Document from raw content.
func New(path string, content []byte) *Document {
	return &Document{
		Path:    path,
		Content: content,
		Lines:   buildLines(content),
	}
}

// buildLines constructs the line index. It handles both LF and CRLF
// terminators. Empty content produces an empty index.
func buildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx, char := range content {
		if char == '\n' {
			newlineStart := idx
			if idx > 0 && content[idx-1] == '\r' {
				newlineStart = idx - 1
			}

			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: newlineStart,
				EndOffset:    idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Last line may lack a trailing newline.
	if lineStart < len(content) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}

	return lines
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// LineContent returns the content of a 1-based line number, excluding the
// line terminator. Returns nil if the line number is out of range.
func (d *Document) LineContent(line int) []byte {
	if line < 1 || line > len(d.Lines) {
		return nil
	}

	info := d.Lines[line-1]
	return d.Content[info.StartOffset:info.NewlineStart]
}

// IsBlank reports whether a 1-based line is empty or whitespace-only.
// Out-of-range lines are not blank.
func (d *Document) IsBlank(line int) bool {
	content := d.LineContent(line)
	if content == nil {
		return false
	}
	return len(bytes.TrimSpace(content)) == 0
}

// EndsWithNewline reports whether the final byte of the content is a
// newline. An empty document reports true: there is no final line to
// terminate.
func (d *Document) EndsWithNewline() bool {
	if len(d.Content) == 0 {
		return true
	}
	return d.Content[len(d.Content)-1] == '\n'
}

// LineAt converts a byte offset to a 1-based line number.
// Returns 0 if the offset is out of range.
func (d *Document) LineAt(offset int) int {
	if offset < 0 || offset >= len(d.Content) || len(d.Lines) == 0 {
		return 0
	}

	idx := sort.Search(len(d.Lines), func(i int) bool {
		return d.Lines[i].EndOffset > offset
	})
	if idx >= len(d.Lines) {
		return 0
	}
	return idx + 1
}
