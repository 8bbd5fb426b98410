// Package runner orchestrates validation across one or more files.
package runner

import (
	"context"
	"fmt"

	"github.com/yaklabco/mdvet/pkg/check"
	"github.com/yaklabco/mdvet/pkg/config"
	"github.com/yaklabco/mdvet/pkg/document"
	"github.com/yaklabco/mdvet/pkg/fsutil"
)

// Runner executes validation over a set of files.
// Each file is validated independently: its own Document, its own Report,
// no shared counters, so results are order-independent and reproducible.
type Runner struct {
	engine *check.Engine
}

// New creates a Runner around a check engine.
func New(engine *check.Engine) *Runner {
	return &Runner{engine: engine}
}

// Options controls a validation run.
type Options struct {
	// Paths are the files to validate, in invocation order.
	Paths []string

	// Config is the resolved configuration for the run.
	Config *config.Config
}

// Run validates each path in order. Per-file read failures are captured in
// the corresponding FileOutcome rather than aborting the whole run; only
// context cancellation returns an error.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewConfig()
	}

	result := &Result{}

	for _, path := range opts.Paths {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("run cancelled: %w", ctx.Err())
		default:
		}

		outcome := r.runFile(ctx, path, cfg)
		result.accumulate(outcome)
	}

	return result, nil
}

// runFile validates a single file.
func (r *Runner) runFile(ctx context.Context, path string, cfg *config.Config) FileOutcome {
	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return FileOutcome{Path: path, Error: err}
	}

	doc := document.New(path, content)

	report, err := r.engine.Validate(ctx, doc, cfg)
	if err != nil {
		return FileOutcome{Path: path, Error: err}
	}

	return FileOutcome{Path: path, Report: report}
}
