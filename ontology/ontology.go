// Package ontology holds the cat+ vocabulary the batch mapper targets: the
// fixed namespace table and the class and property terms, each expressed as a
// prefix and a local name so that every IRI is resolved through one registry.
package ontology

import (
	"errors"
	"maps"

	"github.com/geoknoesis/synth-rdf/rdf"
)

// Namespace prefixes.
const (
	Cat      = "cat"
	AlloRes  = "allores"
	AlloQual = "alloqual"
	QUDT     = "qudt"
	Purl     = "purl"
	OBO      = "obo"
	Schema   = "schema"
	RDF      = "rdf"
	XSD      = "xsd"
)

// Namespaces is the fixed prefix table. The base IRIs must match the published
// ontologies character for character.
var Namespaces = map[string]string{
	Cat:      "http://example.org/cat#",
	AlloRes:  "http://purl.allotrope.org/ontologies/result#",
	AlloQual: "http://purl.allotrope.org/ontologies/quality#",
	QUDT:     "http://qudt.org/schema/qudt/",
	Purl:     "http://purl.org/dc/terms/",
	OBO:      "http://purl.obolibrary.org/obo/",
	Schema:   "https://schema.org/",
	RDF:      "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
	XSD:      "http://www.w3.org/2001/XMLSchema#",
}

// ErrPrefixRedefined is returned when extra bindings try to rebind a cat+ prefix.
var ErrPrefixRedefined = errors.New("ontology: prefix already bound to a different base")

// Term names one vocabulary IRI by prefix and local name.
type Term struct {
	Prefix string
	Local  string
}

// String returns the prefixed form, e.g. "cat:Batch".
func (t Term) String() string { return t.Prefix + ":" + t.Local }

// Classes.
var (
	Batch                        = Term{Cat, "Batch"}
	AddAction                    = Term{Cat, "AddAction"}
	SetTemperatureAction         = Term{Cat, "setTemperatureAction"}
	Sample                       = Term{Cat, "Sample"}
	ContainerPositionAndQuantity = Term{Cat, "ContainerPositionAndQuantity"}
	// RegisteredAction is the generic action class used for every action kind
	// the vocabulary does not model.
	RegisteredAction = Term{AlloRes, "AFRE_0000001"}
	// ChemicalEntity is CHEBI "chemical entity".
	ChemicalEntity = Term{OBO, "CHEBI_25367"}
)

// cat: properties.
var (
	HasBatch                        = Term{Cat, "hasBatch"}
	HasSample                       = Term{Cat, "hasSample"}
	HasChemical                     = Term{Cat, "has_chemical"}
	HasContainerPositionAndQuantity = Term{Cat, "hasContainerPositionAndQuantity"}
	ContainerID                     = Term{Cat, "containerID"}
	ContainerBarcode                = Term{Cat, "containerBarcode"}
	ChemicalName                    = Term{Cat, "chemicalName"}
	CASNumber                       = Term{Cat, "casNumber"}
	VialShape                       = Term{Cat, "vialShape"}
	DispenseType                    = Term{Cat, "dispenseType"}
	LocalEquipmentName              = Term{Cat, "localEquipmentName"}
	Role                            = Term{Cat, "role"}
	InternalBarCode                 = Term{Cat, "internalBarCode"}
	ExpectedDatum                   = Term{Cat, "expectedDatum"}
	TemperatureShakerShape          = Term{Cat, "temperatureShakerShape"}
	TemperatureTumbleStirrerShape   = Term{Cat, "temperatureTumbleStirrerShape"}
	SpeedInRPM                      = Term{Cat, "speedInRPM"}
)

// Allotrope result and quality properties.
var (
	StartTime     = Term{AlloRes, "AFX_0000622"}
	EndTime       = Term{AlloRes, "AFR_0002423"}
	MethodName    = Term{AlloRes, "AFR_0001606"}
	EquipmentName = Term{AlloRes, "AFR_0001723"}
	Position      = Term{AlloRes, "AFR_0002240"}
	VialID        = Term{AlloRes, "AFR_0002464"}
	Smiles        = Term{AlloRes, "AFR_0002295"}
	MolecularMass = Term{AlloRes, "AFR_0002294"}
	PhysicalState = Term{AlloQual, "AFQ_0000111"}
)

// Generic vocabularies.
var (
	Unit       = Term{QUDT, "unit"}
	Value      = Term{QUDT, "value"}
	Quantity   = Term{QUDT, "quantity"}
	Identifier = Term{Purl, "identifier"}
	Name       = Term{Schema, "name"}
	Type       = Term{RDF, "type"}
)

// NewRegistry returns a registry holding the fixed cat+ namespace table.
func NewRegistry() *rdf.Registry {
	reg, err := rdf.NewRegistry(Namespaces)
	if err != nil {
		// the table above is static; a failure here is a programming error
		panic(err)
	}
	return reg
}

// NewRegistryWith returns the cat+ registry extended with extra bindings.
// Extra bindings may not redefine a cat+ prefix.
func NewRegistryWith(extra map[string]string) (*rdf.Registry, error) {
	all := maps.Clone(Namespaces)
	for prefix, base := range extra {
		if existing, ok := all[prefix]; ok && existing != base {
			return nil, &rdf.TermError{Kind: rdf.TermIRI, Value: prefix, Err: ErrPrefixRedefined}
		}
		all[prefix] = base
	}
	return rdf.NewRegistry(all)
}
