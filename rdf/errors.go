package rdf

import (
	"errors"
	"fmt"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeInvalidIRI indicates a malformed IRI was passed to a named node constructor.
	ErrCodeInvalidIRI ErrorCode = "INVALID_IRI"
	// ErrCodeUnknownPrefix indicates a namespace prefix that was never registered.
	ErrCodeUnknownPrefix ErrorCode = "UNKNOWN_PREFIX"
	// ErrCodeInvalidTriplePosition indicates a term kind not allowed in its triple position.
	ErrCodeInvalidTriplePosition ErrorCode = "INVALID_TRIPLE_POSITION"
	// ErrCodeSerialization indicates a renderer could not produce output.
	ErrCodeSerialization ErrorCode = "SERIALIZATION_FAILURE"
	// ErrCodeUnsupportedFormat indicates an unsupported output format.
	ErrCodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	// ErrCodeUnknown is returned for errors that did not originate in this package.
	ErrCodeUnknown ErrorCode = "UNKNOWN"
)

var (
	// ErrInvalidIRI indicates a malformed IRI.
	ErrInvalidIRI = errors.New("rdf: invalid IRI")
	// ErrUnknownPrefix indicates the registry has no entry for a prefix.
	ErrUnknownPrefix = errors.New("rdf: unknown prefix")
	// ErrInvalidTriplePosition indicates a literal subject or a non-IRI predicate.
	ErrInvalidTriplePosition = errors.New("rdf: invalid term in triple position")
	// ErrSerialization indicates a renderer failure.
	ErrSerialization = errors.New("rdf: serialization failure")
	// ErrUnsupportedFormat indicates an unsupported RDF format.
	ErrUnsupportedFormat = errors.New("rdf: unsupported format")
)

// Code returns the error code for an error.
// Returns empty string for nil errors.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, ErrInvalidIRI):
		return ErrCodeInvalidIRI
	case errors.Is(err, ErrUnknownPrefix):
		return ErrCodeUnknownPrefix
	case errors.Is(err, ErrInvalidTriplePosition):
		return ErrCodeInvalidTriplePosition
	case errors.Is(err, ErrSerialization):
		return ErrCodeSerialization
	case errors.Is(err, ErrUnsupportedFormat):
		return ErrCodeUnsupportedFormat
	}
	return ErrCodeUnknown
}

// TermError provides structured context for a term that could not be built
// or placed.
type TermError struct {
	Kind     TermKind // Kind of the offending term
	Value    string   // Offending value (IRI string, prefix, rendered term)
	Position string   // Triple position ("subject", "predicate", "object"), if any
	Err      error    // Underlying error
}

func (e *TermError) Error() string {
	if e.Position != "" {
		return fmt.Sprintf("%s %s %q: %v", e.Position, e.Kind, e.Value, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Kind, e.Value, e.Err)
}

// Unwrap returns the sentinel error. ValidateIRI failures unwrap to ErrInvalidIRI.
func (e *TermError) Unwrap() error { return e.Err }

// serializationError wraps a renderer failure so errors.Is matches ErrSerialization.
func serializationError(format Format, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrSerialization) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrSerialization, format, err)
}
