package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdvet/internal/cli"
)

// testMarkdownWithTrailingSpaces has trailing spaces on line 1, which
// triggers no-trailing-whitespace.
const testMarkdownWithTrailingSpaces = "# Hello World   \n\nSome text.\n"

const testMarkdownClean = "# Hello World\n\nSome text.\n"

func writeMarkdownFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func executeCheck(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	cmd.SetArgs(append([]string{"check", "--color", "never"}, args...))
	err := cmd.Execute()

	return stdout.String() + stderr.String(), err
}

func TestCheckCleanFile(t *testing.T) {
	t.Parallel()

	path := writeMarkdownFile(t, testMarkdownClean)

	output, err := executeCheck(t, path)
	require.NoError(t, err)
	assert.Contains(t, output, "no issues")
}

func TestCheckWarningsDoNotFail(t *testing.T) {
	t.Parallel()

	path := writeMarkdownFile(t, testMarkdownWithTrailingSpaces)

	output, err := executeCheck(t, path)
	require.NoError(t, err)
	assert.Contains(t, output, "Trailing whitespace")
	assert.Contains(t, output, "line 1")
	assert.Contains(t, output, "completed with warnings")
}

func TestCheckStrictFailsOnWarnings(t *testing.T) {
	t.Parallel()

	path := writeMarkdownFile(t, testMarkdownWithTrailingSpaces)

	_, err := executeCheck(t, "--strict", path)
	require.ErrorIs(t, err, cli.ErrStrictWarnings)
}

func TestCheckMissingFileFails(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "absent.md")

	output, err := executeCheck(t, missing)
	require.ErrorIs(t, err, cli.ErrIssuesFound)
	assert.Contains(t, output, "validation failed")
}

func TestCheckDisableSilencesCheck(t *testing.T) {
	t.Parallel()

	path := writeMarkdownFile(t, testMarkdownWithTrailingSpaces)

	output, err := executeCheck(t, "--disable", "MV002", path)
	require.NoError(t, err)
	assert.NotContains(t, output, "Trailing whitespace")
	assert.Contains(t, output, "no issues")
}

func TestCheckJSONOutput(t *testing.T) {
	t.Parallel()

	path := writeMarkdownFile(t, testMarkdownWithTrailingSpaces)

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"check", "--color", "never", "--format", "json", path})

	require.NoError(t, cmd.Execute())
	output := stdout.String()

	var parsed struct {
		Files []struct {
			Path     string `json:"path"`
			Findings []struct {
				CheckID string `json:"checkId"`
				Lines   []int  `json:"lines"`
			} `json:"findings"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &parsed))
	require.Len(t, parsed.Files, 1)
	require.NotEmpty(t, parsed.Files[0].Findings)
	assert.Equal(t, "MV002", parsed.Files[0].Findings[0].CheckID)
	assert.Equal(t, []int{1}, parsed.Files[0].Findings[0].Lines)
}

func TestCheckConfigSeverityEscalation(t *testing.T) {
	t.Parallel()

	path := writeMarkdownFile(t, testMarkdownWithTrailingSpaces)

	cfgFile := filepath.Join(t.TempDir(), "mdvet.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(`
checks:
  no-trailing-whitespace:
    severity: error
`), 0o644))

	output, err := executeCheck(t, "--config", cfgFile, path)
	require.ErrorIs(t, err, cli.ErrIssuesFound)
	assert.Contains(t, output, "validation failed")
}

func TestCheckRequiresPath(t *testing.T) {
	t.Parallel()

	_, err := executeCheck(t)
	require.Error(t, err)
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeFromResult(nil, false))
}
