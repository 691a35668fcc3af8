package rdf

import (
	"math"
	"strconv"
	"strings"
)

// TermKind identifies RDF term types.
type TermKind uint8

const (
	// TermIRI represents an IRI (named node) term.
	TermIRI TermKind = iota
	// TermBlankNode represents a blank node term.
	TermBlankNode
	// TermLiteral represents a literal term.
	TermLiteral
)

// String returns the kind name.
func (k TermKind) String() string {
	switch k {
	case TermIRI:
		return "iri"
	case TermBlankNode:
		return "blank node"
	case TermLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// Term is a value that can appear in RDF statements.
type Term interface {
	Kind() TermKind
	String() string
}

// XSD datatype IRIs used by the converter.
var (
	XSDString   = MustIRI("http://www.w3.org/2001/XMLSchema#string")
	XSDDateTime = MustIRI("http://www.w3.org/2001/XMLSchema#dateTime")
	XSDDouble   = MustIRI("http://www.w3.org/2001/XMLSchema#double")
	RDFType     = MustIRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type")
)

// IRI represents an RDF named node. The zero value is not a valid IRI.
type IRI struct {
	value string
}

// NewIRI validates value as an absolute IRI and returns it as a named node.
func NewIRI(value string) (IRI, error) {
	if err := ValidateIRI(value); err != nil {
		return IRI{}, &TermError{Kind: TermIRI, Value: value, Err: err}
	}
	return IRI{value: value}, nil
}

// MustIRI is like NewIRI but panics on invalid input.
// It is meant for package-level vocabulary tables.
func MustIRI(value string) IRI {
	iri, err := NewIRI(value)
	if err != nil {
		panic(err)
	}
	return iri
}

// Kind returns TermIRI.
func (i IRI) Kind() TermKind { return TermIRI }

// String returns the IRI value.
func (i IRI) String() string { return i.value }

// Value returns the IRI string.
func (i IRI) Value() string { return i.value }

// IsZero reports whether the IRI was never initialised.
func (i IRI) IsZero() bool { return i.value == "" }

// BlankNode represents an RDF blank node. Blank nodes are minted by an
// IdentityGenerator; there is no exported constructor.
type BlankNode struct {
	id string
}

// Kind returns TermBlankNode.
func (b BlankNode) Kind() TermKind { return TermBlankNode }

// String returns the blank node identifier prefixed with "_:".
func (b BlankNode) String() string { return "_:" + b.id }

// ID returns the blank node label without the "_:" prefix.
func (b BlankNode) ID() string { return b.id }

// Literal represents an RDF literal. A literal without a datatype has plain
// string semantics.
type Literal struct {
	lexical  string
	datatype IRI
}

// NewLiteral returns an untyped literal.
func NewLiteral(lexical string) Literal {
	return Literal{lexical: lexical}
}

// NewTypedLiteral returns a literal tagged with datatype.
// The lexical form is not checked against the datatype.
func NewTypedLiteral(lexical string, datatype IRI) Literal {
	if datatype == XSDString {
		return Literal{lexical: lexical}
	}
	return Literal{lexical: lexical, datatype: datatype}
}

// NewDoubleLiteral returns an xsd:double literal for value. Infinities are
// written INF and -INF.
func NewDoubleLiteral(value float64) Literal {
	var lexical string
	switch {
	case math.IsInf(value, 1):
		lexical = "INF"
	case math.IsInf(value, -1):
		lexical = "-INF"
	default:
		lexical = strconv.FormatFloat(value, 'f', -1, 64)
	}
	return Literal{lexical: lexical, datatype: XSDDouble}
}

// Kind returns TermLiteral.
func (l Literal) Kind() TermKind { return TermLiteral }

// Lexical returns the lexical form.
func (l Literal) Lexical() string { return l.lexical }

// Datatype returns the datatype IRI; the zero IRI for plain literals.
func (l Literal) Datatype() IRI { return l.datatype }

// String returns an N-Triples style representation of the literal.
func (l Literal) String() string {
	if l.datatype.value != "" {
		return quoteLiteral(l.lexical) + "^^<" + l.datatype.value + ">"
	}
	return quoteLiteral(l.lexical)
}

// Triple is an RDF triple. Triples are created by Graph.Insert, which
// enforces the positional rules on S and P.
type Triple struct {
	// S is the subject: an IRI or a blank node.
	S Term
	// P is the predicate.
	P IRI
	// O is the object.
	O Term
}

// String renders the triple as an N-Triples line without the trailing newline.
func (t Triple) String() string {
	return renderTerm(t.S) + " " + renderIRI(t.P) + " " + renderTerm(t.O) + " ."
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func quoteLiteral(lexical string) string {
	return `"` + literalEscaper.Replace(lexical) + `"`
}
