package cli

import "github.com/yaklabco/mdvet/pkg/runner"

// Exit codes for mdvet.
const (
	// ExitSuccess indicates a clean run, or warnings outside strict mode.
	ExitSuccess = 0

	// ExitValidationErrors indicates error findings or unreadable files.
	ExitValidationErrors = 1

	// ExitStrictWarnings indicates warning findings under --strict.
	ExitStrictWarnings = 2
)

// ExitCodeFromResult determines the exit code based on result and strict mode.
// File-level failures count the same as error findings.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasFailures() {
		return ExitValidationErrors
	}

	if strict && result.HasWarnings() {
		return ExitStrictWarnings
	}

	return ExitSuccess
}
