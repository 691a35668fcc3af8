package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalBatch = `{"batchID": "B-1", "actions": [{"actionName": "AddAction", "startTime": "2024-01-01T00:00:00Z"}]}`

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunWritesConfiguredFormats(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	input := writeInput(t, dir, "b1.json", minimalBatch)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-out", out, "-verify", input}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	turtle, err := os.ReadFile(filepath.Join(out, "b1.ttl"))
	require.NoError(t, err)
	assert.Contains(t, string(turtle), "@prefix cat: <http://example.org/cat#> .")
	assert.Contains(t, string(turtle), `schema:name "B-1"`)
	assert.Contains(t, string(turtle), "a cat:AddAction")

	doc, err := os.ReadFile(filepath.Join(out, "b1.jsonld"))
	require.NoError(t, err)
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(doc, &parsed))
	assert.Contains(t, parsed, "@context")

	assert.NoFileExists(t, filepath.Join(out, "b1.nt"))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "converted batch")
	assert.Contains(t, stderr.String(), "media_type=text/turtle")
	assert.Contains(t, stderr.String(), "blank_nodes=2")
}

func TestRunToStdout(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "b1.json", minimalBatch)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-out", "-", "-format", "nt", "-log-level", "error", input}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	assert.Len(t, lines, 5)
	assert.Empty(t, stderr.String())
}

func TestRunNamedActionsFromConfig(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "b1.json", minimalBatch)
	cfg := writeInput(t, dir, "synth2rdf.yaml", "formats: [ntriples]\nnamed_actions: true\naction_base: http://example.org/run/\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", cfg, "-out", "-", input}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "<http://example.org/run/AddAction_1>")
}

func TestRunReportsFailures(t *testing.T) {
	dir := t.TempDir()
	good := writeInput(t, dir, "good.json", minimalBatch)
	bad := writeInput(t, dir, "bad.json", `{"actions": []}`)
	out := filepath.Join(dir, "out")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-out", out, "-format", "turtle", bad, good}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "conversion failed")
	assert.NoFileExists(t, filepath.Join(out, "bad.ttl"))
	assert.FileExists(t, filepath.Join(out, "good.ttl"))
}

func TestRunUsageErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(nil, &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"-no-such-flag", "x.json"}, &stdout, &stderr))
	assert.Equal(t, 1, run([]string{"-format", "rdfxml", "x.json"}, &stdout, &stderr))
	assert.Equal(t, 1, run([]string{"-out", "-", "-format", "turtle,jsonld", "x.json"}, &stdout, &stderr))
}

func TestRunStdoutWithFormatAliases(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "b1.json", minimalBatch)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-out", "-", "-format", "turtle,ttl", input}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, 1, strings.Count(stdout.String(), "@prefix cat:"))
}
