package configloader

import "github.com/yaklabco/mdvet/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Maps: deep merge, with override's values taking precedence
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.SeverityDefault != "" {
		result.SeverityDefault = override.SeverityDefault
	}
	if override.Format != "" {
		result.Format = override.Format
	}

	// Strict is a bool; a true override wins, a config file cannot unset it.
	if override.Strict {
		result.Strict = override.Strict
	}

	result.Checks = mergeChecks(base.Checks, override.Checks)

	if override.EnableChecks != nil {
		result.EnableChecks = override.EnableChecks
	}
	if override.DisableChecks != nil {
		result.DisableChecks = override.DisableChecks
	}

	return &result
}

// mergeChecks performs deep merge of check configurations.
func mergeChecks(base, override map[string]config.CheckConfig) map[string]config.CheckConfig {
	if base == nil && override == nil {
		return nil
	}
	if base == nil {
		result := make(map[string]config.CheckConfig, len(override))
		for key, val := range override {
			result[key] = val
		}
		return result
	}
	if override == nil {
		result := make(map[string]config.CheckConfig, len(base))
		for key, val := range base {
			result[key] = val
		}
		return result
	}

	result := make(map[string]config.CheckConfig, len(base)+len(override))

	for key, val := range base {
		result[key] = val
	}

	for key, val := range override {
		if existing, ok := result[key]; ok {
			result[key] = mergeCheckConfig(existing, val)
		} else {
			result[key] = val
		}
	}

	return result
}

// mergeCheckConfig merges individual check configurations.
// override's values take precedence over base's values.
func mergeCheckConfig(base, override config.CheckConfig) config.CheckConfig {
	result := base

	if override.Enabled != nil {
		result.Enabled = override.Enabled
	}
	if override.Severity != nil {
		result.Severity = override.Severity
	}

	if override.Options != nil {
		if result.Options == nil {
			result.Options = make(map[string]any)
		}
		for key, val := range override.Options {
			result.Options[key] = val
		}
	}

	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
