// Package main is the entry point for the mdvet CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/mdvet/internal/cli"
	"github.com/yaklabco/mdvet/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Validation outcomes are signaled through sentinel errors so the
		// exit status can distinguish them; they are already reported.
		switch {
		case errors.Is(err, cli.ErrStrictWarnings):
			return cli.ExitStrictWarnings
		case errors.Is(err, cli.ErrIssuesFound):
			return cli.ExitValidationErrors
		default:
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
			return cli.ExitValidationErrors
		}
	}

	return cli.ExitSuccess
}
