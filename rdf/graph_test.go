package rdf

import (
	"errors"
	"testing"
)

func TestGraphInsertPositions(t *testing.T) {
	ids := NewIdentityGenerator()
	s := ids.NewBlankNode()
	p := MustIRI("http://example.org/p")
	o := NewLiteral("v")

	tests := []struct {
		name    string
		s, p, o Term
		wantErr bool
	}{
		{"blank subject", s, p, o, false},
		{"iri subject", MustIRI("http://example.org/s"), p, s, false},
		{"literal subject", NewLiteral("s"), p, o, true},
		{"nil subject", nil, p, o, true},
		{"zero iri subject", IRI{}, p, o, true},
		{"zero blank subject", BlankNode{}, p, o, true},
		{"blank predicate", s, ids.NewBlankNode(), o, true},
		{"literal predicate", s, NewLiteral("p"), o, true},
		{"zero predicate", s, IRI{}, o, true},
		{"nil object", s, p, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGraph()
			err := g.Insert(tt.s, tt.p, tt.o)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTriplePosition) {
					t.Fatalf("expected ErrInvalidTriplePosition, got %v", err)
				}
				if g.Len() != 0 {
					t.Fatal("failed insert must not store a triple")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if g.Len() != 1 {
				t.Fatalf("Len = %d", g.Len())
			}
		})
	}
}

func TestGraphKeepsDuplicates(t *testing.T) {
	g := NewGraph()
	s := NewIdentityGenerator().NewBlankNode()
	p := MustIRI("http://example.org/p")
	for i := 0; i < 2; i++ {
		if err := g.Insert(s, p, NewLiteral("v")); err != nil {
			t.Fatal(err)
		}
	}
	if g.Len() != 2 {
		t.Fatalf("Len = %d, want 2", g.Len())
	}
}

func TestGraphTriplesOrderAndRestart(t *testing.T) {
	g := NewGraph()
	ids := NewIdentityGenerator()
	p := MustIRI("http://example.org/p")
	var want []Triple
	for i := 0; i < 5; i++ {
		s := ids.NewBlankNode()
		if err := g.Insert(s, p, NewLiteral(s.ID())); err != nil {
			t.Fatal(err)
		}
		want = append(want, Triple{S: s, P: p, O: NewLiteral(s.ID())})
	}

	for pass := 0; pass < 2; pass++ {
		i := 0
		for tr := range g.Triples() {
			if tr != want[i] {
				t.Fatalf("pass %d: triple %d = %v, want %v", pass, i, tr, want[i])
			}
			i++
		}
		if i != len(want) {
			t.Fatalf("pass %d: yielded %d triples", pass, i)
		}
	}

	count := 0
	for range g.Triples() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Fatalf("early break yielded %d", count)
	}
}

func TestGraphGroupBySubjectAndBlankNodes(t *testing.T) {
	g := NewGraph()
	ids := NewIdentityGenerator()
	p := MustIRI("http://example.org/p")
	a, b, c := ids.NewBlankNode(), ids.NewBlankNode(), ids.NewBlankNode()
	named := MustIRI("http://example.org/n")

	mustInsert(t, g, b, p, a)
	mustInsert(t, g, a, p, NewLiteral("x"))
	mustInsert(t, g, b, p, c)
	mustInsert(t, g, named, p, b)

	subjects, groups := g.GroupBySubject()
	if len(subjects) != 3 || subjects[0] != b || subjects[1] != a || subjects[2] != named {
		t.Fatalf("subjects = %v", subjects)
	}
	if len(groups) != 3 {
		t.Fatalf("groups = %d", len(groups))
	}
	if got := groups[b]; len(got) != 2 || got[0].O != a || got[1].O != c {
		t.Fatalf("groups[b] = %v", got)
	}
	blanks := g.BlankNodes()
	if len(blanks) != 3 || blanks[0] != b || blanks[1] != a || blanks[2] != c {
		t.Fatalf("BlankNodes = %v", blanks)
	}
}

func mustInsert(t *testing.T, g *Graph, s, p, o Term) {
	t.Helper()
	if err := g.Insert(s, p, o); err != nil {
		t.Fatalf("Insert: %v", err)
	}
}
