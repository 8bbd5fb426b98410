package reporter

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Separator width bounds for summary output.
const (
	defaultSeparatorWidth = 60
	maxSeparatorWidth     = 100
)

// summarySeparator returns a horizontal rule sized to the output terminal.
// Non-terminal writers get the default width.
func summarySeparator(writer io.Writer) string {
	width := defaultSeparatorWidth

	if f, ok := writer.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	if width > maxSeparatorWidth {
		width = maxSeparatorWidth
	}

	return strings.Repeat("─", width)
}
