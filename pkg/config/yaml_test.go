package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromYAML(t *testing.T) {
	data := []byte(`
severity_default: warning
checks:
  MV002:
    enabled: false
  no-tabs:
    severity: error
`)

	cfg, err := FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, "warning", cfg.SeverityDefault)

	cc, ok := cfg.CheckFor("MV002")
	require.True(t, ok)
	require.NotNil(t, cc.Enabled)
	assert.False(t, *cc.Enabled)

	cc, ok = cfg.CheckFor("no-tabs")
	require.True(t, ok)
	require.NotNil(t, cc.Severity)
	assert.Equal(t, "error", *cc.Severity)
}

func TestFromYAMLInvalid(t *testing.T) {
	_, err := FromYAML([]byte("checks: [not a map"))
	assert.Error(t, err)
}

func TestYAMLRoundTrip(t *testing.T) {
	enabled := false
	cfg := NewConfig()
	cfg.Checks["MV005"] = CheckConfig{Enabled: &enabled}

	data, err := cfg.ToYAML()
	require.NoError(t, err)

	parsed, err := FromYAML(data)
	require.NoError(t, err)

	cc, ok := parsed.CheckFor("MV005")
	require.True(t, ok)
	require.NotNil(t, cc.Enabled)
	assert.False(t, *cc.Enabled)
}

func TestSeverityIsValid(t *testing.T) {
	assert.True(t, SeverityWarning.IsValid())
	assert.True(t, SeverityError.IsValid())
	assert.False(t, Severity("fatal").IsValid())
}
