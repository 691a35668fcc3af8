package rdf

import (
	"fmt"
	"net/url"
)

// ValidateIRI checks that iri is an absolute IRI.
// Returns an error wrapping ErrInvalidIRI if it is not, nil otherwise.
//
// The check is structural:
//   - a scheme is required and must start with a letter
//   - the remainder must parse with url.Parse
//   - whitespace, control characters and the delimiters <>"{}|^`\ are rejected
//
// Percent-encoding and non-ASCII characters are accepted as-is.
func ValidateIRI(iri string) error {
	if iri == "" {
		return fmt.Errorf("%w: empty IRI", ErrInvalidIRI)
	}

	for i, r := range iri {
		if r <= 0x20 || r == 0x7f {
			return fmt.Errorf("%w: control or space character at position %d", ErrInvalidIRI, i)
		}
		switch r {
		case '<', '>', '"', '{', '}', '|', '^', '`', '\\':
			return fmt.Errorf("%w: character '%c' at position %d should be percent-encoded", ErrInvalidIRI, r, i)
		}
	}

	parsed, err := url.Parse(iri)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidIRI, err)
	}
	if parsed.Scheme == "" {
		return fmt.Errorf("%w: missing scheme", ErrInvalidIRI)
	}
	first := parsed.Scheme[0]
	if !((first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z')) {
		return fmt.Errorf("%w: scheme must start with a letter", ErrInvalidIRI)
	}
	for i := 1; i < len(parsed.Scheme); i++ {
		r := parsed.Scheme[i]
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '+' || r == '-' || r == '.') {
			return fmt.Errorf("%w: invalid scheme character '%c'", ErrInvalidIRI, r)
		}
	}
	if parsed.Opaque == "" && parsed.Host == "" && parsed.Path == "" {
		return fmt.Errorf("%w: nothing after scheme", ErrInvalidIRI)
	}
	return nil
}
