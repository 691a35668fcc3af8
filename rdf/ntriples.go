package rdf

import (
	"bufio"
	"io"
)

type ntEncoder struct {
	writer *bufio.Writer
}

func newNTriplesEncoder(w io.Writer) Encoder {
	return &ntEncoder{writer: bufio.NewWriter(w)}
}

// Encode writes one line per triple in insertion order. Prefixes are ignored.
func (e *ntEncoder) Encode(g *Graph, _ map[string]string) error {
	for t := range g.Triples() {
		if _, err := e.writer.WriteString(t.String() + "\n"); err != nil {
			return serializationError(FormatNTriples, err)
		}
	}
	return serializationError(FormatNTriples, e.writer.Flush())
}

func renderIRI(iri IRI) string {
	return "<" + iri.value + ">"
}

func renderTerm(term Term) string {
	switch value := term.(type) {
	case IRI:
		return renderIRI(value)
	case BlankNode:
		return value.String()
	case Literal:
		return value.String()
	default:
		return ""
	}
}
