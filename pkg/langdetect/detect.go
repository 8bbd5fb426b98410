// Package langdetect provides language detection for code content.
// It uses go-enry to detect programming languages from code snippets and to
// validate fence language tags, primarily in service of the fence checks.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language constants for common detected languages.
const (
	langGo   = "go"
	langJSON = "json"
	langText = "text"
	langBash = "bash"
	langYAML = "yaml"
)

// extraTags are fence tags that are conventional but not languages go-enry
// knows about.
//
//nolint:gochecknoglobals // Read-only lookup table.
var extraTags = map[string]bool{
	"text":    true,
	"plain":   true,
	"output":  true,
	"console": true,
	"mermaid": true,
	"diff":    true,
	"sh":      true,
	"shell":   true,
}

// Detect returns the detected language for code content.
// Returns "text" if detection fails or confidence is low.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return langText
	}

	// Strategy 1: Check shebang first (most reliable).
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	// Strategy 2: Check for highly indicative patterns.
	if lang := detectByPattern(content); lang != "" {
		return lang
	}

	// Strategy 3: Use classifier with common language candidates.
	// Only use the result if confidence is high (safe == true).
	candidates := []string{
		"Go", "Python", "Shell", "JavaScript", "TypeScript",
		"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
		"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
	}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return langText
}

// KnownTag reports whether a fence info tag names a language go-enry
// recognizes, or one of the conventional non-language tags.
func KnownTag(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return false
	}
	if extraTags[tag] {
		return true
	}
	_, ok := enry.GetLanguageByAlias(tag)
	return ok
}

// detectByPattern checks for language-specific patterns.
func detectByPattern(content []byte) string {
	trimmed := bytes.TrimSpace(content)

	if bytes.HasPrefix(trimmed, []byte("package ")) {
		return langGo
	}
	if (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`"`)) {
		return langJSON
	}
	if bytes.HasPrefix(trimmed, []byte("#!/")) {
		return langBash
	}
	if countYAMLKeys(content) >= 2 {
		return langYAML
	}

	return ""
}

// countYAMLKeys counts lines that look like top-level YAML key: value pairs
// or list items.
func countYAMLKeys(content []byte) int {
	count := 0
	for _, line := range bytes.Split(content, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || bytes.HasPrefix(line, []byte("#")) {
			continue
		}
		if bytes.Contains(line, []byte(": ")) &&
			!bytes.Contains(line, []byte("(")) &&
			!bytes.HasPrefix(line, []byte(`"`)) {
			count++
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			count++
		}
	}
	return count
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return langBash
	}
	return strings.ToLower(lang)
}
