package rdf

import "iter"

// Graph is an insertion-ordered multiset of triples. Triples are never
// removed or mutated; inserting the same triple twice stores it twice.
type Graph struct {
	triples []Triple
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// Insert appends the triple (s, p, o).
// It fails with ErrInvalidTriplePosition when s is not an IRI or blank node,
// p is not a non-zero IRI, or o is missing.
func (g *Graph) Insert(s, p, o Term) error {
	switch subject := s.(type) {
	case IRI:
		if subject.IsZero() {
			return positionError("subject", s)
		}
	case BlankNode:
		if subject.id == "" {
			return positionError("subject", s)
		}
	default:
		return positionError("subject", s)
	}
	predicate, ok := p.(IRI)
	if !ok || predicate.IsZero() {
		return positionError("predicate", p)
	}
	switch object := o.(type) {
	case IRI:
		if object.IsZero() {
			return positionError("object", o)
		}
	case BlankNode:
		if object.id == "" {
			return positionError("object", o)
		}
	case Literal:
	default:
		return positionError("object", o)
	}
	g.triples = append(g.triples, Triple{S: s, P: predicate, O: o})
	return nil
}

// Triples yields every triple in insertion order. The sequence can be ranged
// over any number of times; the graph must not be mutated meanwhile.
func (g *Graph) Triples() iter.Seq[Triple] {
	return func(yield func(Triple) bool) {
		for _, t := range g.triples {
			if !yield(t) {
				return
			}
		}
	}
}

// Len returns the number of stored triples, duplicates included.
func (g *Graph) Len() int { return len(g.triples) }

// GroupBySubject partitions the triples by subject in a single pass. It
// returns the distinct subjects in first-seen order and, for each subject,
// its triples in insertion order.
func (g *Graph) GroupBySubject() ([]Term, map[Term][]Triple) {
	var subjects []Term
	groups := make(map[Term][]Triple)
	for _, t := range g.triples {
		group, seen := groups[t.S]
		if !seen {
			subjects = append(subjects, t.S)
		}
		groups[t.S] = append(group, t)
	}
	return subjects, groups
}

// BlankNodes returns the distinct blank nodes in subject or object position,
// in first-seen order.
func (g *Graph) BlankNodes() []BlankNode {
	seen := map[BlankNode]struct{}{}
	var out []BlankNode
	add := func(term Term) {
		b, ok := term.(BlankNode)
		if !ok {
			return
		}
		if _, dup := seen[b]; dup {
			return
		}
		seen[b] = struct{}{}
		out = append(out, b)
	}
	for _, t := range g.triples {
		add(t.S)
		add(t.O)
	}
	return out
}

func positionError(position string, term Term) error {
	if term == nil {
		return &TermError{Position: position, Value: "<nil>", Err: ErrInvalidTriplePosition}
	}
	return &TermError{Kind: term.Kind(), Position: position, Value: term.String(), Err: ErrInvalidTriplePosition}
}
