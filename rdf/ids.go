package rdf

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// BlankNodeStrategy selects how blank node labels are produced.
type BlankNodeStrategy string

const (
	// BlankNodeCounter labels blank nodes b1, b2, ... in mint order.
	BlankNodeCounter BlankNodeStrategy = "counter"
	// BlankNodeUUID labels blank nodes with a random UUID.
	BlankNodeUUID BlankNodeStrategy = "uuid"
)

// ParseBlankNodeStrategy normalizes a strategy name.
func ParseBlankNodeStrategy(value string) (BlankNodeStrategy, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "counter":
		return BlankNodeCounter, true
	case "uuid":
		return BlankNodeUUID, true
	default:
		return "", false
	}
}

// IdentityGenerator mints blank nodes and synthesized named nodes for one
// conversion. It is not safe for concurrent use; give every conversion its own.
type IdentityGenerator struct {
	strategy BlankNodeStrategy
	base     string
	counter  int
	hints    map[string]int
}

// IdentityOption configures an IdentityGenerator.
type IdentityOption func(*IdentityGenerator)

// WithBlankNodeStrategy sets the blank node labelling strategy.
func WithBlankNodeStrategy(strategy BlankNodeStrategy) IdentityOption {
	return func(g *IdentityGenerator) {
		g.strategy = strategy
	}
}

// WithNamedNodeBase sets the base IRI used by NewNamedNode.
func WithNamedNodeBase(base string) IdentityOption {
	return func(g *IdentityGenerator) {
		g.base = base
	}
}

// NewIdentityGenerator creates a generator with counter-labelled blank nodes.
func NewIdentityGenerator(opts ...IdentityOption) *IdentityGenerator {
	g := &IdentityGenerator{strategy: BlankNodeCounter, hints: map[string]int{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewBlankNode returns a blank node whose label has not been returned by this
// generator before. Labels match [A-Za-z][A-Za-z0-9]*.
func (g *IdentityGenerator) NewBlankNode() BlankNode {
	g.counter++
	if g.strategy == BlankNodeUUID {
		return BlankNode{id: "b" + strings.ReplaceAll(uuid.NewString(), "-", "")}
	}
	return BlankNode{id: fmt.Sprintf("b%d", g.counter)}
}

// NewNamedNode derives a named node from hint: base + hint + "_" + n, where n
// counts how many times hint has been requested. Repeated hints never collide.
func (g *IdentityGenerator) NewNamedNode(hint string) (IRI, error) {
	if g.base == "" {
		return IRI{}, &TermError{Kind: TermIRI, Value: hint, Err: fmt.Errorf("%w: no named node base configured", ErrInvalidIRI)}
	}
	local := sanitizeHint(hint)
	g.hints[local]++
	return NewIRI(fmt.Sprintf("%s%s_%d", g.base, local, g.hints[local]))
}

// Minted returns how many blank nodes were minted since the last reset.
func (g *IdentityGenerator) Minted() int { return g.counter }

// Reset clears all counters; call it when a new graph begins.
func (g *IdentityGenerator) Reset() {
	g.counter = 0
	clear(g.hints)
}

func sanitizeHint(hint string) string {
	var b strings.Builder
	for i := 0; i < len(hint); i++ {
		ch := hint[i]
		if isNameStartChar(ch) || isDigit(ch) || ch == '-' {
			b.WriteByte(ch)
		} else {
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "node"
	}
	return b.String()
}
