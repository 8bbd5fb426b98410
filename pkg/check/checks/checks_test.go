package checks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdvet/pkg/check"
	"github.com/yaklabco/mdvet/pkg/config"
	"github.com/yaklabco/mdvet/pkg/document"
)

// docFromContent builds a document for direct helper tests.
func docFromContent(content string) *document.Document {
	return document.New("test.md", []byte(content))
}

// applyCheck runs a single check against raw content with default config.
func applyCheck(t *testing.T, c check.Check, content string) []check.Finding {
	t.Helper()

	doc := document.New("test.md", []byte(content))
	ctx := check.NewCheckContext(context.Background(), doc, config.NewConfig(), nil)

	findings, err := c.Apply(ctx)
	require.NoError(t, err)
	return findings
}
