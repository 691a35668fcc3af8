package rdf

import "strings"

// Format identifies RDF serialization formats.
type Format string

const (
	FormatTurtle   Format = "turtle"
	FormatJSONLD   Format = "jsonld"
	FormatNTriples Format = "ntriples"
)

// Formats lists every supported output format.
var Formats = []Format{FormatTurtle, FormatJSONLD, FormatNTriples}

// ParseFormat normalizes a format string.
func ParseFormat(value string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "turtle", "ttl":
		return FormatTurtle, true
	case "ntriples", "nt":
		return FormatNTriples, true
	case "jsonld", "json-ld", "json":
		return FormatJSONLD, true
	default:
		return "", false
	}
}

// Extension returns the conventional file extension, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatTurtle:
		return ".ttl"
	case FormatJSONLD:
		return ".jsonld"
	case FormatNTriples:
		return ".nt"
	default:
		return ""
	}
}

// MediaType returns the registered media type of the format.
func (f Format) MediaType() string {
	switch f {
	case FormatTurtle:
		return "text/turtle"
	case FormatJSONLD:
		return "application/ld+json"
	case FormatNTriples:
		return "application/n-triples"
	default:
		return ""
	}
}
