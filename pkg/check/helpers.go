package check

import "bytes"

// Line-level helpers shared by the built-in checks. All helpers operate on
// raw line content without the line terminator.

// TrailingWhitespaceWidth returns the number of trailing space or tab bytes
// on the line.
func TrailingWhitespaceWidth(line []byte) int {
	width := 0
	for i := len(line) - 1; i >= 0; i-- {
		if line[i] != ' ' && line[i] != '\t' {
			break
		}
		width++
	}
	return width
}

// ListMarker returns the top-level list marker character ('*', '-' or '+')
// for a line of the form "<marker> <text>", and whether the line is such a
// list item. Indented (nested) items are not considered top-level.
func ListMarker(line []byte) (byte, bool) {
	if len(line) < 2 {
		return 0, false
	}
	marker := line[0]
	if marker != '*' && marker != '-' && marker != '+' {
		return 0, false
	}
	if line[1] != ' ' {
		return 0, false
	}
	return marker, true
}

// Fence describes a fenced code block delimiter line.
type Fence struct {
	// Marker is the fence character, '`' or '~'.
	Marker byte

	// Length is the number of marker characters.
	Length int

	// Info is the info string following the markers, trimmed of whitespace.
	// Empty for unlabeled and closing fences.
	Info string
}

// ParseFence parses a line as a fence delimiter: three or more backticks or
// tildes, optionally indented up to three spaces, optionally followed by an
// info string. Returns false if the line is not a fence.
func ParseFence(line []byte) (Fence, bool) {
	// Up to three leading spaces are allowed by CommonMark.
	indent := 0
	for indent < len(line) && indent < 3 && line[indent] == ' ' {
		indent++
	}
	rest := line[indent:]

	if len(rest) < 3 {
		return Fence{}, false
	}

	marker := rest[0]
	if marker != '`' && marker != '~' {
		return Fence{}, false
	}

	length := 0
	for length < len(rest) && rest[length] == marker {
		length++
	}
	if length < 3 {
		return Fence{}, false
	}

	info := bytes.TrimSpace(rest[length:])

	// Backtick info strings may not contain backticks.
	if marker == '`' && bytes.IndexByte(info, '`') >= 0 {
		return Fence{}, false
	}

	return Fence{Marker: marker, Length: length, Info: string(info)}, true
}

// IsClosingFor reports whether f can close an open fence opened by other:
// same marker and at least as long.
func (f Fence) IsClosingFor(other Fence) bool {
	return f.Marker == other.Marker && f.Length >= other.Length && f.Info == ""
}

// IsSetextUnderline reports whether the line consists solely of one or more
// '=' characters or one or more '-' characters (ignoring surrounding
// whitespace).
func IsSetextUnderline(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	first := trimmed[0]
	if first != '=' && first != '-' {
		return false
	}
	for _, b := range trimmed {
		if b != first {
			return false
		}
	}
	return true
}

// LooksLikeTableRow reports whether the line looks like a Markdown table
// row, used to suppress setext false positives on separator rows.
func LooksLikeTableRow(line []byte) bool {
	return bytes.IndexByte(line, '|') >= 0
}
