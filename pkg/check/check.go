package check

import "github.com/yaklabco/mdvet/pkg/config"

// Check defines the interface that all style checks must implement.
type Check interface {
	// ID returns the unique identifier for this check (e.g., "MV002").
	ID() string

	// Name returns the human-readable name of the check.
	Name() string

	// Description returns a detailed description of what the check looks for.
	Description() string

	// DefaultEnabled returns whether the check is enabled by default.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this check.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags for this check (e.g., ["whitespace"]).
	Tags() []string

	// Apply executes the check against the given context and returns findings.
	//
	// Checks must:
	//   - Return findings for each issue found, never an error for content.
	//   - Respect context cancellation.
	//   - Return error only for internal failures.
	Apply(ctx *CheckContext) ([]Finding, error)
}

// BaseCheck provides a default implementation of the Check interface.
// Embed this in check implementations and override methods as needed.
type BaseCheck struct {
	id      string
	name    string
	desc    string
	tags    []string
	enabled bool
}

// NewBaseCheck creates a BaseCheck with the given properties.
func NewBaseCheck(id, name, desc string, tags []string, enabled bool) BaseCheck {
	return BaseCheck{
		id:      id,
		name:    name,
		desc:    desc,
		tags:    tags,
		enabled: enabled,
	}
}

// ID returns the unique identifier for this check.
func (c *BaseCheck) ID() string {
	return c.id
}

// Name returns the human-readable name of the check.
func (c *BaseCheck) Name() string {
	return c.name
}

// Description returns a detailed description of what the check looks for.
func (c *BaseCheck) Description() string {
	return c.desc
}

// DefaultEnabled returns whether the check is enabled by default.
func (c *BaseCheck) DefaultEnabled() bool {
	return c.enabled
}

// DefaultSeverity returns the default severity for this check.
// No built-in check escalates to error on its own; overrides come from
// configuration.
func (c *BaseCheck) DefaultSeverity() config.Severity {
	return config.SeverityWarning
}

// Tags returns categorization tags for this check.
func (c *BaseCheck) Tags() []string {
	return c.tags
}

// Apply must be overridden by concrete check implementations.
func (c *BaseCheck) Apply(_ *CheckContext) ([]Finding, error) {
	return nil, nil
}
