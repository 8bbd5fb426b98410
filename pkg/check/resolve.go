package check

import "github.com/yaklabco/mdvet/pkg/config"

// ResolvedCheck pairs a Check with its resolved configuration.
type ResolvedCheck struct {
	// Check is the underlying check implementation.
	Check Check

	// Enabled indicates whether the check should be run.
	Enabled bool

	// Severity is the resolved severity for findings from this check.
	Severity config.Severity

	// Config is the check-specific configuration (may be nil).
	Config *config.CheckConfig
}

// ResolveChecks determines which checks to run based on registry and config.
// Returns only enabled checks with their resolved configuration, in registry
// (ID) order.
func ResolveChecks(registry *Registry, cfg *config.Config) []ResolvedCheck {
	var resolved []ResolvedCheck

	for _, c := range registry.Checks() {
		rc := resolveCheck(c, cfg)
		if rc.Enabled {
			resolved = append(resolved, rc)
		}
	}

	return resolved
}

// resolveCheck resolves the configuration for a single check.
func resolveCheck(c Check, cfg *config.Config) ResolvedCheck {
	rc := ResolvedCheck{
		Check:    c,
		Enabled:  c.DefaultEnabled(),
		Severity: c.DefaultSeverity(),
		Config:   nil,
	}

	if cfg == nil {
		return rc
	}

	// Explicit enable/disable from the CLI, matched by ID or name.
	for _, key := range cfg.EnableChecks {
		if key == c.ID() || key == c.Name() {
			rc.Enabled = true
			break
		}
	}
	for _, key := range cfg.DisableChecks {
		if key == c.ID() || key == c.Name() {
			rc.Enabled = false
			break
		}
	}

	// Check-specific config, keyed by ID or name.
	checkCfg, ok := cfg.CheckFor(c.ID())
	if !ok {
		checkCfg, ok = cfg.CheckFor(c.Name())
	}
	if ok {
		rc.Config = &checkCfg

		if checkCfg.Enabled != nil {
			rc.Enabled = *checkCfg.Enabled
		}
		if checkCfg.Severity != nil {
			sev := config.Severity(*checkCfg.Severity)
			if sev.IsValid() {
				rc.Severity = sev
			}
		}
	}

	return rc
}
