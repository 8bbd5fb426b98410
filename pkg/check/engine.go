package check

import (
	"context"
	"fmt"

	"github.com/yaklabco/mdvet/pkg/config"
	"github.com/yaklabco/mdvet/pkg/document"
)

// Engine coordinates check execution for validation.
type Engine struct {
	// Registry holds all available checks.
	Registry *Registry
}

// NewEngine creates a new Engine with the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{Registry: registry}
}

// Validate runs every enabled check against the document and collects the
// results into a Report. Checks are independent and all of them run; a
// finding from one check never short-circuits another. Only internal
// failures (such as cancellation) produce an error.
func (e *Engine) Validate(
	ctx context.Context,
	doc *document.Document,
	cfg *config.Config,
) (*Report, error) {
	resolved := ResolveChecks(e.Registry, cfg)

	var findings []Finding

	for _, rc := range resolved {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("validation cancelled: %w", ctx.Err())
		default:
		}

		checkCtx := NewCheckContext(ctx, doc, cfg, rc.Config)

		results, err := rc.Check.Apply(checkCtx)
		if err != nil {
			return nil, fmt.Errorf("check %s: %w", rc.Check.ID(), err)
		}

		for i := range results {
			// Apply resolved severity and fill in identity fields the
			// check left blank.
			results[i].Severity = rc.Severity
			if results[i].FilePath == "" {
				results[i].FilePath = doc.Path
			}
			if results[i].CheckName == "" {
				results[i].CheckName = rc.Check.Name()
			}
		}

		findings = append(findings, results...)
	}

	return NewReport(doc.Path, findings), nil
}
