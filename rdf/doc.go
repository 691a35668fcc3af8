// Package rdf provides the in-memory RDF model used by the converter: terms,
// a namespace registry, an identity generator for synthesized nodes, an
// insertion-ordered triple store and the encoders that render it.
//
// Terms come in three kinds. Named nodes (IRI) are built with NewIRI, which
// rejects anything that is not an absolute IRI. Literals are built with
// NewLiteral or NewTypedLiteral. Blank nodes can only be minted by an
// IdentityGenerator, so two distinct entities never share a label by accident.
//
// A conversion owns one Graph and one IdentityGenerator; a Registry is
// read-only after construction and may be shared:
//
//	reg, err := rdf.NewRegistry(map[string]string{"ex": "http://example.org/"})
//	if err != nil {
//	    // handle error
//	}
//	ids := rdf.NewIdentityGenerator()
//	g := rdf.NewGraph()
//
//	name, _ := reg.Resolve("ex", "name")
//	node := ids.NewBlankNode()
//	if err := g.Insert(node, name, rdf.NewLiteral("B-1")); err != nil {
//	    // handle error
//	}
//
//	err = rdf.Serialize(os.Stdout, rdf.FormatTurtle, g, reg.Prefixes())
//
// Supported output formats are Turtle, JSON-LD and N-Triples. Every encoder
// is deterministic for a given insertion order. JSON-LD is produced with
// github.com/piprate/json-gold, which also backs CanonicalNQuads for
// comparing graphs independently of blank node labels.
package rdf
