// Package config loads converter settings from defaults, an optional YAML
// file and SYNTH2RDF_* environment variables, in that order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/geoknoesis/synth-rdf/ontology"
	"github.com/geoknoesis/synth-rdf/rdf"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SYNTH2RDF_"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the complete converter configuration.
type Config struct {
	Formats      []string `yaml:"formats"`       // output formats: turtle, jsonld, ntriples
	OutputDir    string   `yaml:"output_dir"`    // "-" writes to stdout
	Indent       string   `yaml:"indent"`        // indentation for Turtle and JSON-LD
	NamedActions bool     `yaml:"named_actions"` // mint action IRIs instead of blank nodes
	ActionBase   string   `yaml:"action_base"`   // base IRI for named actions
	BlankNodes   string   `yaml:"blank_nodes"`   // counter or uuid
	Verify       bool     `yaml:"verify"`        // check JSON-LD output against the graph
	LogLevel     string   `yaml:"log_level"`     // debug, info, warn, error

	// Prefixes adds namespace bindings to the fixed cat+ table.
	Prefixes map[string]string `yaml:"prefixes,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Formats:    []string{string(rdf.FormatTurtle), string(rdf.FormatJSONLD)},
		OutputDir:  ".",
		Indent:     "    ",
		ActionBase: "http://example.org/cat/resource/",
		BlankNodes: string(rdf.BlankNodeCounter),
		LogLevel:   "info",
	}
}

// Validate checks every field and returns the first problem found.
func (c *Config) Validate() error {
	if len(c.Formats) == 0 {
		return fmt.Errorf("%w: at least one format is required", ErrInvalidConfig)
	}
	formats, err := c.OutputFormats()
	if err != nil {
		return err
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir is empty", ErrInvalidConfig)
	}
	if c.OutputDir == "-" && len(formats) > 1 {
		return fmt.Errorf("%w: stdout output takes a single format", ErrInvalidConfig)
	}
	if _, ok := rdf.ParseBlankNodeStrategy(c.BlankNodes); !ok {
		return fmt.Errorf("%w: unknown blank_nodes strategy %q", ErrInvalidConfig, c.BlankNodes)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.NamedActions {
		if err := rdf.ValidateIRI(c.ActionBase); err != nil {
			return fmt.Errorf("%w: action_base: %w", ErrInvalidConfig, err)
		}
	}
	if _, err := ontology.NewRegistryWith(c.Prefixes); err != nil {
		return fmt.Errorf("%w: prefixes: %w", ErrInvalidConfig, err)
	}
	return nil
}

// OutputFormats returns Formats parsed into rdf formats, duplicates removed.
func (c *Config) OutputFormats() ([]rdf.Format, error) {
	seen := map[rdf.Format]bool{}
	var formats []rdf.Format
	for _, name := range c.Formats {
		format, ok := rdf.ParseFormat(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, name)
		}
		if seen[format] {
			continue
		}
		seen[format] = true
		formats = append(formats, format)
	}
	return formats, nil
}

// BlankNodeStrategy returns the configured blank node strategy.
func (c *Config) BlankNodeStrategy() rdf.BlankNodeStrategy {
	strategy, ok := rdf.ParseBlankNodeStrategy(c.BlankNodes)
	if !ok {
		return rdf.BlankNodeCounter
	}
	return strategy
}

// Level returns the configured log level, info when unset or unknown.
func (c *Config) Level() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// String returns the YAML form of the configuration.
func (c *Config) String() string {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return string(data)
}

func parseLevel(value string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, value)
	}
	return level, nil
}

// Loader builds a Config from layered sources.
type Loader struct {
	getenv func(string) string
}

// NewLoader returns a loader reading the process environment.
func NewLoader() *Loader {
	return &Loader{getenv: os.Getenv}
}

// Load applies defaults, then the YAML file at path (skipped when path is
// empty), then environment overrides, and validates the result.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := decodeInto(cfg, bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	if err := l.applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := decodeInto(cfg, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeInto(cfg *Config, r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (l *Loader) applyEnvOverrides(cfg *Config) error {
	if v := l.getenv(EnvPrefix + "FORMATS"); v != "" {
		cfg.Formats = splitList(v)
	}
	if v := l.getenv(EnvPrefix + "OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := l.getenv(EnvPrefix + "ACTION_BASE"); v != "" {
		cfg.ActionBase = v
	}
	if v := l.getenv(EnvPrefix + "BLANK_NODES"); v != "" {
		cfg.BlankNodes = v
	}
	if v := l.getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	for name, target := range map[string]*bool{
		"NAMED_ACTIONS": &cfg.NamedActions,
		"VERIFY":        &cfg.Verify,
	} {
		v := l.getenv(EnvPrefix + name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrInvalidConfig, EnvPrefix, name, v)
		}
		*target = b
	}
	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
