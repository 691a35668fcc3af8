package rdf

import (
	"fmt"
	"maps"
	"strings"
)

// Registry maps namespace prefixes to base IRIs. It is fixed at construction
// and safe for concurrent reads.
type Registry struct {
	prefixes map[string]string
}

// NewRegistry builds a registry from prefix → base IRI bindings.
// Every base must be a valid absolute IRI and every prefix a valid prefix label.
func NewRegistry(prefixes map[string]string) (*Registry, error) {
	r := &Registry{prefixes: make(map[string]string, len(prefixes))}
	for _, prefix := range sortedPrefixKeys(prefixes) {
		base := prefixes[prefix]
		if !isPrefixName(prefix) {
			return nil, &TermError{Kind: TermIRI, Value: prefix, Err: fmt.Errorf("%w: bad prefix label", ErrInvalidIRI)}
		}
		if err := ValidateIRI(base); err != nil {
			return nil, &TermError{Kind: TermIRI, Value: base, Err: err}
		}
		r.prefixes[prefix] = base
	}
	return r, nil
}

// Resolve joins the base IRI bound to prefix with local and returns the
// resulting named node.
func (r *Registry) Resolve(prefix, local string) (IRI, error) {
	base, ok := r.prefixes[prefix]
	if !ok {
		return IRI{}, &TermError{Kind: TermIRI, Value: prefix + ":" + local, Err: ErrUnknownPrefix}
	}
	return NewIRI(base + local)
}

// Prefixes returns a copy of the prefix map, for serializers.
func (r *Registry) Prefixes() map[string]string {
	return maps.Clone(r.prefixes)
}

// Len returns the number of registered prefixes.
func (r *Registry) Len() int { return len(r.prefixes) }

// Compact renders iri as prefix:local when a registered base matches.
// The longest matching base wins.
func (r *Registry) Compact(iri IRI) (string, bool) {
	return abbreviateQName(iri.value, r.prefixes)
}

func abbreviateQName(iri string, prefixes map[string]string) (string, bool) {
	bestNS := ""
	bestPrefix := ""
	found := false
	for prefix, ns := range prefixes {
		if !strings.HasPrefix(iri, ns) {
			continue
		}
		if !isQNameLocal(iri[len(ns):]) {
			continue
		}
		// ties on length go to the lexically smaller prefix so output is stable
		if len(ns) > len(bestNS) || (len(ns) == len(bestNS) && prefix < bestPrefix) {
			bestNS = ns
			bestPrefix = prefix
			found = true
		}
	}
	if !found {
		return "", false
	}
	return bestPrefix + ":" + iri[len(bestNS):], true
}
