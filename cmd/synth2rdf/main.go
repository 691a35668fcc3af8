// Command synth2rdf converts synthesis batch JSON records into cat+ RDF.
//
// Usage:
//
//	synth2rdf [flags] batch.json...
//
// Each input is written next to the others in the output directory as
// <name>.ttl, <name>.jsonld and/or <name>.nt depending on -format.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/geoknoesis/synth-rdf/batch"
	"github.com/geoknoesis/synth-rdf/config"
	"github.com/geoknoesis/synth-rdf/mapper"
	"github.com/geoknoesis/synth-rdf/ontology"
	"github.com/geoknoesis/synth-rdf/rdf"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("synth2rdf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML configuration file")
	formats := fs.String("format", "", "comma-separated output formats (turtle, jsonld, ntriples)")
	outDir := fs.String("out", "", "output directory, - for stdout")
	namedActions := fs.Bool("named-actions", false, "mint named nodes for actions")
	actionBase := fs.String("action-base", "", "base IRI for named actions")
	blankNodes := fs.String("bnode", "", "blank node labels: counter or uuid")
	verify := fs.Bool("verify", false, "check that JSON-LD output encodes the same graph")
	logLevel := fs.String("log-level", "", "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "synth2rdf: no input files")
		fs.Usage()
		return 2
	}

	cfg, err := config.NewLoader().Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "synth2rdf: %v\n", err)
		return 1
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Formats = strings.Split(*formats, ",")
		case "out":
			cfg.OutputDir = *outDir
		case "named-actions":
			cfg.NamedActions = *namedActions
		case "action-base":
			cfg.ActionBase = *actionBase
		case "bnode":
			cfg.BlankNodes = *blankNodes
		case "verify":
			cfg.Verify = *verify
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "synth2rdf: %v\n", err)
		return 1
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	conv, err := newConverter(cfg, logger)
	if err != nil {
		logger.Error("setup failed", "error", err)
		return 1
	}

	failed := 0
	for _, path := range fs.Args() {
		if err := conv.convertFile(path, stdout); err != nil {
			logger.Error("conversion failed", "input", path, "code", rdf.Code(err), "error", err)
			failed++
		}
	}
	if failed > 0 {
		return 1
	}
	return 0
}

type converter struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *rdf.Registry
	formats  []rdf.Format
}

func newConverter(cfg *config.Config, logger *slog.Logger) (*converter, error) {
	registry, err := ontology.NewRegistryWith(cfg.Prefixes)
	if err != nil {
		return nil, err
	}
	formats, err := cfg.OutputFormats()
	if err != nil {
		return nil, err
	}
	return &converter{cfg: cfg, logger: logger, registry: registry, formats: formats}, nil
}

// convertFile maps one batch file and writes every configured format.
// Nothing is written for a file whose conversion or rendering fails.
func (c *converter) convertFile(path string, stdout io.Writer) error {
	b, err := batch.DecodeFile(path)
	if err != nil {
		return err
	}
	ids := rdf.NewIdentityGenerator(
		rdf.WithBlankNodeStrategy(c.cfg.BlankNodeStrategy()),
		rdf.WithNamedNodeBase(c.cfg.ActionBase),
	)
	res, err := mapper.Convert(b, c.registry, ids,
		mapper.WithLogger(c.logger.With("input", path)),
		mapper.WithNamedActions(c.cfg.NamedActions),
	)
	if err != nil {
		return err
	}

	rendered := make(map[rdf.Format][]byte, len(c.formats))
	for _, format := range c.formats {
		var buf bytes.Buffer
		if err := res.Serialize(&buf, format, rdf.OptIndent(c.cfg.Indent)); err != nil {
			return err
		}
		if format == rdf.FormatJSONLD && c.cfg.Verify {
			if err := rdf.VerifyJSONLD(res.Graph, bytes.NewReader(buf.Bytes())); err != nil {
				return err
			}
		}
		rendered[format] = buf.Bytes()
	}

	if c.cfg.OutputDir != "-" {
		if err := os.MkdirAll(c.cfg.OutputDir, 0o755); err != nil {
			return err
		}
	}
	for _, format := range c.formats {
		if c.cfg.OutputDir == "-" {
			if _, err := stdout.Write(rendered[format]); err != nil {
				return err
			}
			continue
		}
		target := outputPath(c.cfg.OutputDir, path, format)
		if err := os.WriteFile(target, rendered[format], 0o644); err != nil {
			return err
		}
		c.logger.Info("wrote output", "input", path, "output", target, "format", format, "media_type", format.MediaType())
	}
	c.logger.Info("converted batch", "input", path, "batch", b.BatchID, "triples", res.Graph.Len(), "blank_nodes", ids.Minted())
	return nil
}

func outputPath(dir, input string, format rdf.Format) string {
	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, name+format.Extension())
}
