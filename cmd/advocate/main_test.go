package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("REFERENCE_FILE", "")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestClassifyCommand(t *testing.T) {
	out, err := run(t, "classify", "someone", "stole", "my", "phone")
	require.NoError(t, err)

	var advice map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &advice))
	assert.Equal(t, "success", advice["status"])
	assert.Equal(t, []interface{}{"theft", "robbery"}, advice["issues_identified"])
}

func TestClassifyCommand_IssuesOnly(t *testing.T) {
	out, err := run(t, "classify", "--issues-only", "nuisance")
	require.NoError(t, err)
	assert.Equal(t, "source: fallback\nnuisance\n", out)
}

func TestClassifyCommand_Blank(t *testing.T) {
	_, err := run(t, "classify", "   ")
	assert.Error(t, err)
}

func TestIssuesCommand(t *testing.T) {
	out, err := run(t, "issues")
	require.NoError(t, err)
	assert.Contains(t, out, "ISSUE")
	assert.Contains(t, out, "Section 378")
	assert.Contains(t, out, "criminal breach of trust")
}

func TestExportThenValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reference.yaml")

	_, err := run(t, "export", "--output", path)
	require.NoError(t, err)

	out, err := run(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "OK (17 issues, 39 keywords)")

	out, err = run(t, "--reference", path, "classify", "--issues-only", "my neighbor plays loud music all night")
	require.NoError(t, err)
	assert.Equal(t, "source: keyword\nnuisance\ntrespass\n", out)
}

func TestValidateCommand_RejectsUnknownIssue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
issues:
  - id: theft
    section: Section 378
keywords:
  - keyword: stole
    issues: [theft, burglary]
`), 0o644))

	_, err := run(t, "validate", path)
	assert.ErrorContains(t, err, "burglary")
}
