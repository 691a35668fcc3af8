package rdf

import (
	"bytes"
	"fmt"
	"io"
)

// Encoder renders a completed graph. Encoders read the graph only; the same
// graph encoded twice yields byte-identical output.
type Encoder interface {
	// Encode writes g using prefixes for compact names. prefixes must be the
	// map the graph was built with, so declarations match the IRIs emitted.
	Encode(g *Graph, prefixes map[string]string) error
}

// EncodeOption configures encoders.
type EncodeOption func(*EncodeOptions)

// EncodeOptions configures encoder behavior.
type EncodeOptions struct {
	// Indent is the per-level indentation for Turtle predicate lists and JSON-LD.
	Indent string
}

func defaultEncodeOptions() EncodeOptions {
	return EncodeOptions{Indent: "    "}
}

// OptIndent sets the indentation string.
func OptIndent(indent string) EncodeOption {
	return func(opts *EncodeOptions) {
		opts.Indent = indent
	}
}

// NewEncoder creates an encoder writing format to w.
func NewEncoder(w io.Writer, format Format, opts ...EncodeOption) (Encoder, error) {
	options := defaultEncodeOptions()
	for _, opt := range opts {
		opt(&options)
	}
	switch format {
	case FormatTurtle:
		return newTurtleEncoder(w, options), nil
	case FormatJSONLD:
		return newJSONLDEncoder(w, options), nil
	case FormatNTriples:
		return newNTriplesEncoder(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Serialize encodes g to w in format.
func Serialize(w io.Writer, format Format, g *Graph, prefixes map[string]string, opts ...EncodeOption) error {
	enc, err := NewEncoder(w, format, opts...)
	if err != nil {
		return err
	}
	return enc.Encode(g, prefixes)
}

// SerializeString encodes g in format and returns the text.
func SerializeString(format Format, g *Graph, prefixes map[string]string, opts ...EncodeOption) (string, error) {
	var buf bytes.Buffer
	if err := Serialize(&buf, format, g, prefixes, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}
