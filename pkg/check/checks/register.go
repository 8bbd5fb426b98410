package checks

import "github.com/yaklabco/mdvet/pkg/check"

// RegisterAll registers all built-in checks with the given registry.
func RegisterAll(registry *check.Registry) {
	// Whitespace and layout
	registry.Register(NewFinalNewlineCheck())       // MV001
	registry.Register(NewTrailingWhitespaceCheck()) // MV002
	registry.Register(NewHardTabsCheck())           // MV003
	registry.Register(NewMultipleBlankLinesCheck()) // MV005

	// Code fences
	registry.Register(NewFenceLanguageCheck())      // MV004
	registry.Register(NewKnownFenceLanguageCheck()) // MV012

	// Headings
	registry.Register(NewSetextHeadingCheck()) // MV006

	// Lists
	registry.Register(NewConsistentListMarkersCheck()) // MV007
	registry.Register(NewPlusListMarkerCheck())        // MV008

	// Links and images
	registry.Register(NewDescriptiveLinkTextCheck()) // MV009
	registry.Register(NewImageAltTextCheck())        // MV010

	// Emphasis
	registry.Register(NewUnderscoreEmphasisCheck()) // MV011
}

//nolint:gochecknoinits // Registration at import time mirrors the CLI's blank import.
func init() {
	RegisterAll(check.DefaultRegistry)
}
