// Package checks provides the built-in style checks for mdvet.
//
// # Check battery
//
//   - MV001: final-newline - Files should end with a newline character
//   - MV002: no-trailing-whitespace - Lines should not have trailing spaces or tabs
//   - MV003: no-tabs - Lines should use spaces, not tab characters
//   - MV004: fence-language - Fenced code blocks should declare a language
//   - MV005: no-multiple-blank-lines - Multiple consecutive blank lines
//   - MV006: no-setext-headings - Headings should use ATX style
//   - MV007: consistent-list-markers - Top-level list markers should be consistent
//   - MV008: no-plus-list-markers - List items should not use the '+' marker
//   - MV009: descriptive-link-text - Link text should describe the destination
//   - MV010: image-alt-text - Images should have alternative text
//   - MV011: no-underscore-emphasis - Emphasis should use asterisks
//   - MV012: known-fence-language - Fence labels should name a recognized language
//
// Checks are independent: every enabled check runs against the whole
// document and all findings are collected, never failing fast on the first
// issue. IDs fix the presentation order of findings in a report.
//
// Several checks are deliberate heuristics. MV006 matches adjacent line
// pairs and can false-positive on horizontal rules preceded by text; MV011
// skips URL-bearing lines for the single-underscore form by substring match,
// not URL grammar. These trade precision for simplicity and are documented
// on the individual checks.
//
// # Registration
//
// Checks are registered with the default registry via RegisterAll, which
// also runs at import time. Each check embeds check.BaseCheck and uses the
// CheckContext and FindingBuilder infrastructure.
package checks
