package rdf

import (
	"encoding/json"
	"fmt"
	"io"

	ld "github.com/piprate/json-gold/ld"
)

func canonicalOptions() *ld.JsonLdOptions {
	opts := ld.NewJsonLdOptions("")
	opts.Format = nquadsFormat
	opts.Algorithm = ld.AlgorithmURDNA2015
	return opts
}

// CanonicalNQuads returns the URDNA2015 canonical N-Quads of g. Two graphs
// that differ only in blank node labels produce the same text.
func CanonicalNQuads(g *Graph) (string, error) {
	nquads, err := SerializeString(FormatNTriples, g, nil)
	if err != nil {
		return "", err
	}
	return CanonicalFromNQuads(nquads)
}

// CanonicalFromNQuads canonicalizes an N-Triples or N-Quads document.
func CanonicalFromNQuads(nquads string) (string, error) {
	serializer := &ld.NQuadRDFSerializer{}
	dataset, err := serializer.Parse(nquads)
	if err != nil {
		return "", fmt.Errorf("canonical: parse n-quads: %w", err)
	}
	normalized, err := ld.NewJsonLdApi().Normalize(dataset, canonicalOptions())
	if err != nil {
		return "", fmt.Errorf("canonical: normalize: %w", err)
	}
	value, ok := normalized.(string)
	if !ok {
		return "", fmt.Errorf("canonical: unexpected normalization result %T", normalized)
	}
	return value, nil
}

// CanonicalFromJSONLD canonicalizes a JSON-LD document read from r.
func CanonicalFromJSONLD(r io.Reader) (string, error) {
	var doc interface{}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return "", fmt.Errorf("canonical: decode json-ld: %w", err)
	}
	normalized, err := ld.NewJsonLdProcessor().Normalize(doc, canonicalOptions())
	if err != nil {
		return "", fmt.Errorf("canonical: normalize: %w", err)
	}
	value, ok := normalized.(string)
	if !ok {
		return "", fmt.Errorf("canonical: unexpected normalization result %T", normalized)
	}
	return value, nil
}

// VerifyJSONLD reports whether the JSON-LD document in r encodes exactly the
// triples of g.
func VerifyJSONLD(g *Graph, r io.Reader) error {
	want, err := CanonicalNQuads(g)
	if err != nil {
		return err
	}
	got, err := CanonicalFromJSONLD(r)
	if err != nil {
		return err
	}
	if want != got {
		return fmt.Errorf("%w: json-ld output does not match graph", ErrSerialization)
	}
	return nil
}
