package mapper

import (
	"io"

	"github.com/geoknoesis/synth-rdf/batch"
	"github.com/geoknoesis/synth-rdf/rdf"
)

// Result is a completed conversion: the graph, the registry it was built
// with and the batch node.
type Result struct {
	Graph    *rdf.Graph
	Registry *rdf.Registry
	Root     rdf.BlankNode
}

// Convert maps b into a fresh graph. ids may be nil, in which case a
// counter-based generator is used; a non-nil generator is reset first.
// On error the partial graph is dropped and a nil Result is returned.
func Convert(b *batch.Batch, reg *rdf.Registry, ids *rdf.IdentityGenerator, opts ...Option) (*Result, error) {
	if ids == nil {
		ids = rdf.NewIdentityGenerator()
	}
	ids.Reset()
	g := rdf.NewGraph()
	root, err := New(g, reg, ids, opts...).MapBatch(b)
	if err != nil {
		return nil, err
	}
	return &Result{Graph: g, Registry: reg, Root: root}, nil
}

// Serialize renders the result with the registry's own prefix map.
func (r *Result) Serialize(w io.Writer, format rdf.Format, opts ...rdf.EncodeOption) error {
	return rdf.Serialize(w, format, r.Graph, r.Registry.Prefixes(), opts...)
}

// String renders the result in format and returns the text.
func (r *Result) String(format rdf.Format, opts ...rdf.EncodeOption) (string, error) {
	return rdf.SerializeString(format, r.Graph, r.Registry.Prefixes(), opts...)
}
