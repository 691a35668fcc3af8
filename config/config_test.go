package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/synth-rdf/rdf"
)

func envLoader(env map[string]string) *Loader {
	return &Loader{getenv: func(key string) string { return env[key] }}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	formats, err := cfg.OutputFormats()
	require.NoError(t, err)
	assert.Equal(t, []rdf.Format{rdf.FormatTurtle, rdf.FormatJSONLD}, formats)
	assert.Equal(t, rdf.BlankNodeCounter, cfg.BlankNodeStrategy())
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
formats: [ttl, nt, turtle]
output_dir: out
indent: "  "
named_actions: true
action_base: http://example.org/run/
blank_nodes: uuid
verify: true
log_level: debug
prefixes:
  ex: http://example.org/extra#
`))
	require.NoError(t, err)

	formats, err := cfg.OutputFormats()
	require.NoError(t, err)
	assert.Equal(t, []rdf.Format{rdf.FormatTurtle, rdf.FormatNTriples}, formats)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "  ", cfg.Indent)
	assert.True(t, cfg.NamedActions)
	assert.True(t, cfg.Verify)
	assert.Equal(t, rdf.BlankNodeUUID, cfg.BlankNodeStrategy())
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, "http://example.org/extra#", cfg.Prefixes["ex"])
}

func TestParseEmptyKeepsDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestValidationErrors(t *testing.T) {
	tests := map[string]string{
		"unknown field":      "colour: blue\n",
		"unknown format":     "formats: [rdfxml]\n",
		"no formats":         "formats: []\n",
		"empty output dir":   "output_dir: \"\"\n",
		"stdout two formats": "output_dir: \"-\"\nformats: [turtle, jsonld]\n",
		"bad strategy":       "blank_nodes: random\n",
		"bad level":          "log_level: loud\n",
		"bad action base":    "named_actions: true\naction_base: not an iri\n",
		"redefined prefix":   "prefixes:\n  cat: http://example.org/other#\n",
		"bad prefix base":    "prefixes:\n  ex: relative/path\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestStdoutAcceptsAliasesOfOneFormat(t *testing.T) {
	cfg, err := Parse([]byte("output_dir: \"-\"\nformats: [turtle, ttl, TTL]\n"))
	require.NoError(t, err)
	formats, err := cfg.OutputFormats()
	require.NoError(t, err)
	assert.Equal(t, []rdf.Format{rdf.FormatTurtle}, formats)
}

func TestActionBaseIgnoredWithoutNamedActions(t *testing.T) {
	_, err := Parse([]byte("action_base: not an iri\n"))
	assert.NoError(t, err)
}

func TestLoadLayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "synth2rdf.yaml")
	require.NoError(t, os.WriteFile(path, []byte("formats: [jsonld]\noutput_dir: from-file\nlog_level: warn\n"), 0o644))

	cfg, err := envLoader(map[string]string{
		"SYNTH2RDF_OUTPUT_DIR":    "from-env",
		"SYNTH2RDF_NAMED_ACTIONS": "true",
		"SYNTH2RDF_FORMATS":       "turtle, ntriples",
	}).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.OutputDir)
	assert.Equal(t, []string{"turtle", "ntriples"}, cfg.Formats)
	assert.True(t, cfg.NamedActions)
	assert.Equal(t, slog.LevelWarn, cfg.Level())
	assert.False(t, cfg.Verify)
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := envLoader(nil).Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	_, err := envLoader(nil).Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = envLoader(map[string]string{"SYNTH2RDF_VERIFY": "sometimes"}).Load("")
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = envLoader(map[string]string{"SYNTH2RDF_BLANK_NODES": "sequential"}).Load("")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestStringIsYAML(t *testing.T) {
	cfg := Default()
	again, err := Parse([]byte(cfg.String()))
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}
