package check

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdvet/pkg/config"
	"github.com/yaklabco/mdvet/pkg/document"
)

// stubCheck is a configurable check for engine tests.
type stubCheck struct {
	BaseCheck
	findings []Finding
	err      error
	applied  *int
}

func (s *stubCheck) Apply(_ *CheckContext) ([]Finding, error) {
	if s.applied != nil {
		*s.applied++
	}
	return s.findings, s.err
}

func newStubCheck(id, name string, findings []Finding) *stubCheck {
	return &stubCheck{
		BaseCheck: NewBaseCheck(id, name, "stub", nil, true),
		findings:  findings,
	}
}

func TestEngineValidateCollectsAllFindings(t *testing.T) {
	registry := NewRegistry()
	registry.Register(newStubCheck("T001", "first", []Finding{
		{Message: "issue one", Lines: []int{1}},
	}))
	registry.Register(newStubCheck("T002", "second", []Finding{
		{Message: "issue two"},
		{Message: "issue three"},
	}))

	engine := NewEngine(registry)
	doc := document.New("test.md", []byte("content\n"))

	report, err := engine.Validate(context.Background(), doc, config.NewConfig())
	require.NoError(t, err)

	// All checks run; no early exit on findings.
	require.Len(t, report.Findings, 3)
	assert.Equal(t, "issue one", report.Findings[0].Message)

	// Identity fields are filled in by the engine.
	assert.Equal(t, "test.md", report.Findings[0].FilePath)
	assert.Equal(t, "first", report.Findings[0].CheckName)

	// Totals match the severity partition.
	assert.Equal(t, 0, report.Totals.Errors)
	assert.Equal(t, 3, report.Totals.Warnings)
}

func TestEngineValidateAppliesResolvedSeverity(t *testing.T) {
	registry := NewRegistry()
	registry.Register(newStubCheck("T001", "first", []Finding{{Message: "x"}}))

	cfg := config.NewConfig()
	sev := "error"
	cfg.Checks["T001"] = config.CheckConfig{Severity: &sev}

	engine := NewEngine(registry)
	doc := document.New("test.md", []byte("content\n"))

	report, err := engine.Validate(context.Background(), doc, cfg)
	require.NoError(t, err)

	require.Len(t, report.Findings, 1)
	assert.Equal(t, config.SeverityError, report.Findings[0].Severity)
	assert.Equal(t, 1, report.Totals.Errors)
	assert.True(t, report.HasErrors())
}

func TestEngineValidateEmptyDocument(t *testing.T) {
	registry := NewRegistry()
	engine := NewEngine(registry)
	doc := document.New("empty.md", nil)

	report, err := engine.Validate(context.Background(), doc, config.NewConfig())
	require.NoError(t, err)

	assert.Empty(t, report.Findings)
	assert.Equal(t, 0, report.Totals.Findings())
	assert.False(t, report.HasFindings())
}

func TestEngineValidateIsIdempotent(t *testing.T) {
	registry := NewRegistry()
	registry.Register(newStubCheck("T001", "first", []Finding{{Message: "x", Lines: []int{2}}}))

	engine := NewEngine(registry)
	doc := document.New("test.md", []byte("a\nb \n"))
	cfg := config.NewConfig()

	first, err := engine.Validate(context.Background(), doc, cfg)
	require.NoError(t, err)
	second, err := engine.Validate(context.Background(), doc, cfg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEngineValidateCancellation(t *testing.T) {
	applied := 0
	stub := newStubCheck("T001", "first", nil)
	stub.applied = &applied

	registry := NewRegistry()
	registry.Register(stub)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := NewEngine(registry)
	doc := document.New("test.md", []byte("content\n"))

	_, err := engine.Validate(ctx, doc, config.NewConfig())
	require.Error(t, err)
	assert.Zero(t, applied)
}

func TestEngineValidateDisabledCheckSkipped(t *testing.T) {
	applied := 0
	stub := newStubCheck("T001", "first", []Finding{{Message: "x"}})
	stub.applied = &applied

	registry := NewRegistry()
	registry.Register(stub)

	cfg := config.NewConfig()
	cfg.DisableChecks = []string{"T001"}

	engine := NewEngine(registry)
	doc := document.New("test.md", []byte("content\n"))

	report, err := engine.Validate(context.Background(), doc, cfg)
	require.NoError(t, err)

	assert.Empty(t, report.Findings)
	assert.Zero(t, applied)
}
