package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdvet/pkg/check"
	"github.com/yaklabco/mdvet/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "checks.MV002.severity").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown checks).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// knownSeverities lists valid severity values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownSeverities = map[string]bool{
	"error":   true,
	"warning": true,
}

// knownFormats lists valid output format values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownFormats = map[config.OutputFormat]bool{
	config.FormatText: true,
	config.FormatJSON: true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	if cfg.SeverityDefault != "" && !knownSeverities[cfg.SeverityDefault] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "severity_default",
			Value:   cfg.SeverityDefault,
			Message: fmt.Sprintf("invalid severity %q; must be one of: error, warning", cfg.SeverityDefault),
		})
	}

	if cfg.Format != "" && !knownFormats[cfg.Format] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, json", cfg.Format),
		})
	}

	validateChecks(cfg, result)

	return result
}

// validateChecks checks per-check configurations for errors and warnings.
func validateChecks(cfg *config.Config, result *ValidationResult) {
	registry := check.DefaultRegistry

	for checkID, checkCfg := range cfg.Checks {
		if _, exists := registry.Get(checkID); !exists {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "checks." + checkID,
				Value:   checkID,
				Message: fmt.Sprintf("unknown check %q; it will be ignored", checkID),
			})
		}

		if checkCfg.Severity != nil && !knownSeverities[*checkCfg.Severity] {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "checks." + checkID + ".severity",
				Value:   *checkCfg.Severity,
				Message: fmt.Sprintf("invalid severity %q; must be one of: error, warning", *checkCfg.Severity),
			})
		}
	}
}

// IsValidSeverity returns true if the severity string is valid.
func IsValidSeverity(s string) bool {
	return knownSeverities[s]
}

// IsValidFormat returns true if the format is valid.
func IsValidFormat(f config.OutputFormat) bool {
	return knownFormats[f]
}
