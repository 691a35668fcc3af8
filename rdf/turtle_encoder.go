package rdf

import (
	"bufio"
	"io"
	"sort"
)

// turtleEncoder writes an indented Turtle document: a sorted @prefix header
// followed by one block per subject in first-seen order.
type turtleEncoder struct {
	writer *bufio.Writer
	opts   EncodeOptions
	err    error
}

func newTurtleEncoder(w io.Writer, opts EncodeOptions) Encoder {
	return &turtleEncoder{writer: bufio.NewWriter(w), opts: opts}
}

func (e *turtleEncoder) Encode(g *Graph, prefixes map[string]string) error {
	e.writeHeader(prefixes)
	subjects, groups := g.GroupBySubject()
	for i, subject := range subjects {
		if i > 0 || len(prefixes) > 0 {
			e.writeString("\n")
		}
		e.writeSubject(subject, groups[subject], prefixes)
	}
	if e.err != nil {
		return serializationError(FormatTurtle, e.err)
	}
	return serializationError(FormatTurtle, e.writer.Flush())
}

func (e *turtleEncoder) writeHeader(prefixes map[string]string) {
	for _, prefix := range sortedPrefixKeys(prefixes) {
		e.writeString("@prefix " + prefix + ": <" + prefixes[prefix] + "> .\n")
	}
}

func (e *turtleEncoder) writeSubject(subject Term, triples []Triple, prefixes map[string]string) {
	e.writeString(renderTermWithPrefixes(subject, prefixes))
	for i, t := range triples {
		if i == 0 {
			e.writeString(" ")
		} else {
			e.writeString(" ;\n" + e.opts.Indent)
		}
		e.writeString(renderPredicateWithPrefixes(t.P, prefixes) + " " + renderTermWithPrefixes(t.O, prefixes))
	}
	e.writeString(" .\n")
}

func (e *turtleEncoder) writeString(s string) {
	if e.err != nil {
		return
	}
	_, e.err = e.writer.WriteString(s)
}

func sortedPrefixKeys(prefixes map[string]string) []string {
	keys := make([]string, 0, len(prefixes))
	for key := range prefixes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func renderPredicateWithPrefixes(iri IRI, prefixes map[string]string) string {
	if iri == RDFType {
		return "a"
	}
	return renderIRIWithPrefixes(iri, prefixes)
}

func renderIRIWithPrefixes(iri IRI, prefixes map[string]string) string {
	if qname, ok := abbreviateQName(iri.value, prefixes); ok {
		return qname
	}
	return renderIRI(iri)
}

func renderTermWithPrefixes(term Term, prefixes map[string]string) string {
	switch value := term.(type) {
	case IRI:
		return renderIRIWithPrefixes(value, prefixes)
	case BlankNode:
		return value.String()
	case Literal:
		if !value.datatype.IsZero() {
			return quoteLiteral(value.lexical) + "^^" + renderIRIWithPrefixes(value.datatype, prefixes)
		}
		return quoteLiteral(value.lexical)
	default:
		return ""
	}
}
