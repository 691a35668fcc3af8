package rdf

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	ld "github.com/piprate/json-gold/ld"
)

const nquadsFormat = "application/n-quads"

// jsonldEncoder renders the graph as compacted JSON-LD: one node object per
// subject, property names shortened through an @context built from the
// prefix map.
type jsonldEncoder struct {
	writer *bufio.Writer
	opts   EncodeOptions
}

func newJSONLDEncoder(w io.Writer, opts EncodeOptions) Encoder {
	return &jsonldEncoder{writer: bufio.NewWriter(w), opts: opts}
}

func (e *jsonldEncoder) Encode(g *Graph, prefixes map[string]string) error {
	doc, err := CompactJSONLD(g, prefixes)
	if err != nil {
		return serializationError(FormatJSONLD, err)
	}
	enc := json.NewEncoder(e.writer)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", e.opts.Indent)
	if err := enc.Encode(doc); err != nil {
		return serializationError(FormatJSONLD, err)
	}
	return serializationError(FormatJSONLD, e.writer.Flush())
}

// CompactJSONLD converts g into a compacted JSON-LD document whose @context
// declares prefixes.
func CompactJSONLD(g *Graph, prefixes map[string]string) (map[string]interface{}, error) {
	nquads, err := SerializeString(FormatNTriples, g, nil)
	if err != nil {
		return nil, err
	}

	proc := ld.NewJsonLdProcessor()
	fromOpts := ld.NewJsonLdOptions("")
	fromOpts.Format = nquadsFormat
	expanded, err := proc.FromRDF(nquads, fromOpts)
	if err != nil {
		return nil, fmt.Errorf("jsonld: from RDF: %w", err)
	}

	context := make(map[string]interface{}, len(prefixes))
	for prefix, base := range prefixes {
		context[prefix] = base
	}
	compactOpts := ld.NewJsonLdOptions("")
	compacted, err := proc.Compact(expanded, map[string]interface{}{"@context": context}, compactOpts)
	if err != nil {
		return nil, fmt.Errorf("jsonld: compact: %w", err)
	}
	return compacted, nil
}
