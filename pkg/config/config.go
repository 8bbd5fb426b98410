// Package config defines core configuration types for mdvet.
// These types are pure data structures; discovery and merging live in
// internal/configloader.
package config

// Severity represents the severity level of a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// IsValid reports whether the severity is a known level.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning:
		return true
	default:
		return false
	}
}

// CheckConfig holds per-check configuration.
type CheckConfig struct {
	Enabled  *bool          `yaml:"enabled"`
	Severity *string        `yaml:"severity"`
	Options  map[string]any `yaml:"options"`
}

// OutputFormat specifies the output format for findings.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Config is the root configuration structure for mdvet.
type Config struct {
	// SeverityDefault is the severity for checks that don't specify one.
	SeverityDefault string `yaml:"severity_default"`

	// Checks contains per-check configuration keyed by check ID or name.
	Checks map[string]CheckConfig `yaml:"checks"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Strict makes warning findings fail the run.
	Strict bool `yaml:"-"`

	// EnableChecks contains check IDs to explicitly enable.
	EnableChecks []string `yaml:"-"`

	// DisableChecks contains check IDs to explicitly disable.
	DisableChecks []string `yaml:"-"`
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		SeverityDefault: string(SeverityWarning),
		Checks:          make(map[string]CheckConfig),
		Format:          FormatText,
	}
}

// CheckFor returns the per-check configuration for the given key, if any.
func (c *Config) CheckFor(key string) (CheckConfig, bool) {
	if c == nil || c.Checks == nil {
		return CheckConfig{}, false
	}
	cc, ok := c.Checks[key]
	return cc, ok
}
