package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdvet/internal/configloader"
	"github.com/yaklabco/mdvet/internal/logging"
	"github.com/yaklabco/mdvet/pkg/check"
	"github.com/yaklabco/mdvet/pkg/config"
	"github.com/yaklabco/mdvet/pkg/reporter"
	"github.com/yaklabco/mdvet/pkg/runner"

	// Register built-in checks.
	_ "github.com/yaklabco/mdvet/pkg/check/checks"
)

// ErrIssuesFound is returned when validation finds error-severity issues
// or files that could not be read.
var ErrIssuesFound = errors.New("validation issues found")

// ErrStrictWarnings is returned when warnings are found under --strict.
var ErrStrictWarnings = errors.New("warnings found in strict mode")

type checkFlags struct {
	format    string
	enable    []string
	disable   []string
	strict    bool
	noSummary bool
	compact   bool
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check <path>...",
		Short: "Validate Markdown files",
		Long:  checkLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	addCheckFlags(cmd, flags)

	return cmd
}

const checkLongDescription = `Validate Markdown files against the built-in style checks.

Each named file is read and validated independently; findings are
grouped per file with the affected line numbers. Files that cannot be
read are reported and fail the run without aborting the other files.

Examples:
  mdvet check README.md              # Validate a single file
  mdvet check docs/*.md              # Validate several files
  mdvet check --format json doc.md   # Output as JSON for CI
  mdvet check --strict doc.md        # Treat warnings as failures
  mdvet check --disable MV003 doc.md # Skip the no-tabs check`

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	logger := logging.Default()

	// Map CLI flags to config values with highest precedence.
	// Format is only forwarded when set explicitly so MDVET_FORMAT can apply.
	cliCfg := &config.Config{
		Strict:        flags.strict,
		EnableChecks:  flags.enable,
		DisableChecks: flags.disable,
	}
	if cmd.Flags().Changed("format") {
		cliCfg.Format = config.OutputFormat(flags.format)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}
	logger.Debug("configuration loaded",
		logging.FieldSeverity, finalCfg.SeverityDefault,
		logging.FieldFormat, finalCfg.Format,
		logging.FieldStrict, finalCfg.Strict,
	)

	engine := check.NewEngine(check.DefaultRegistry)
	checkRunner := runner.New(engine)

	logger.Debug("starting validation run", logging.FieldPaths, args)

	result, err := checkRunner.Run(ctx, runner.Options{
		Paths:  args,
		Config: finalCfg,
	})
	if err != nil {
		return errors.Join(errors.New("validation run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(string(finalCfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:          cmd.OutOrStdout(),
		ErrorWriter:     cmd.ErrOrStderr(),
		Format:          format,
		Color:           colorMode,
		ShowSummary:     !flags.noSummary,
		ShowSuggestions: true,
		Compact:         flags.compact,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	switch ExitCodeFromResult(result, finalCfg.Strict) {
	case ExitValidationErrors:
		return ErrIssuesFound
	case ExitStrictWarnings:
		return ErrStrictWarnings
	default:
		return nil
	}
}

func addCheckFlags(cmd *cobra.Command, flags *checkFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "check IDs or names to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "check IDs or names to disable")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as failures for exit code")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "hide the trailing summary")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output where applicable")
}
