package check

import (
	"context"

	"github.com/yaklabco/mdvet/pkg/config"
	"github.com/yaklabco/mdvet/pkg/document"
)

// CheckContext provides all context needed by a check to run.
//
// CheckContext stores context.Context as a field (Ctx) rather than passing it
// as a method parameter. It is a short-lived parameter object created per
// check invocation, which keeps the Check interface to a single Apply method
// while still supporting cancellation via the Cancelled() helper.
type CheckContext struct {
	// Ctx is the context for cancellation and timeouts.
	Ctx context.Context

	// Doc is the document under validation.
	Doc *document.Document

	// Config is the resolved configuration.
	Config *config.Config

	// CheckConfig is the check-specific configuration (may be nil).
	CheckConfig *config.CheckConfig
}

// NewCheckContext creates a CheckContext for the given document and
// configuration.
func NewCheckContext(
	ctx context.Context,
	doc *document.Document,
	cfg *config.Config,
	checkCfg *config.CheckConfig,
) *CheckContext {
	return &CheckContext{
		Ctx:         ctx,
		Doc:         doc,
		Config:      cfg,
		CheckConfig: checkCfg,
	}
}

// Cancelled returns true if the context has been cancelled.
func (cc *CheckContext) Cancelled() bool {
	select {
	case <-cc.Ctx.Done():
		return true
	default:
		return false
	}
}

// Option returns a check-specific option value, or the default if not set.
func (cc *CheckContext) Option(key string, defaultValue any) any {
	if cc.CheckConfig == nil || cc.CheckConfig.Options == nil {
		return defaultValue
	}
	if v, ok := cc.CheckConfig.Options[key]; ok {
		return v
	}
	return defaultValue
}

// OptionInt returns a check-specific integer option, or the default.
func (cc *CheckContext) OptionInt(key string, defaultValue int) int {
	v := cc.Option(key, defaultValue)
	switch val := v.(type) {
	case int:
		return val
	case float64:
		return int(val)
	default:
		return defaultValue
	}
}

// OptionBool returns a check-specific boolean option, or the default.
func (cc *CheckContext) OptionBool(key string, defaultValue bool) bool {
	v := cc.Option(key, defaultValue)
	if b, ok := v.(bool); ok {
		return b
	}
	return defaultValue
}

// OptionString returns a check-specific string option, or the default.
func (cc *CheckContext) OptionString(key string, defaultValue string) string {
	v := cc.Option(key, defaultValue)
	if s, ok := v.(string); ok {
		return s
	}
	return defaultValue
}
