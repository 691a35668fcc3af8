// Package mapper turns a batch record into cat+ triples.
//
// Every record level follows the same steps: mint the node for the record,
// emit its scalar fields, emit optional fields only when present, then
// recurse into nested records, linking each child to its parent. The first
// failing insertion aborts the conversion; the partially built graph must be
// discarded by the caller.
package mapper

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/geoknoesis/synth-rdf/batch"
	"github.com/geoknoesis/synth-rdf/ontology"
	"github.com/geoknoesis/synth-rdf/rdf"
)

// Mapper writes the triples of one batch into a graph. A Mapper and its
// graph and identity generator belong to a single conversion.
type Mapper struct {
	graph        *rdf.Graph
	ns           *rdf.Registry
	ids          *rdf.IdentityGenerator
	logger       *slog.Logger
	namedActions bool
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithLogger sets the logger used for per-record debug events.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Mapper) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithNamedActions makes action nodes named nodes minted from the action
// name (base/AddAction_1, base/AddAction_2, ...) instead of blank nodes.
// The identity generator must have a named node base.
func WithNamedActions(enabled bool) Option {
	return func(m *Mapper) {
		m.namedActions = enabled
	}
}

// New returns a mapper writing into g, resolving vocabulary through ns and
// minting nodes with ids.
func New(g *rdf.Graph, ns *rdf.Registry, ids *rdf.IdentityGenerator, opts ...Option) *Mapper {
	m := &Mapper{
		graph:  g,
		ns:     ns,
		ids:    ids,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// MapBatch maps b and returns the batch node.
func (m *Mapper) MapBatch(b *batch.Batch) (rdf.BlankNode, error) {
	node := m.ids.NewBlankNode()
	if err := m.emitClass("batch", node, ontology.Batch); err != nil {
		return rdf.BlankNode{}, err
	}
	if err := m.emitString("batch", node, ontology.Name, b.BatchID); err != nil {
		return rdf.BlankNode{}, err
	}
	for i := range b.Actions {
		if err := m.mapAction(fmt.Sprintf("actions[%d]", i), node, &b.Actions[i]); err != nil {
			return rdf.BlankNode{}, err
		}
	}
	m.logger.Debug("mapped batch", "batch", b.BatchID, "actions", len(b.Actions), "triples", m.graph.Len())
	return node, nil
}

func (m *Mapper) actionNode(a *batch.Action) (rdf.Term, error) {
	if !m.namedActions {
		return m.ids.NewBlankNode(), nil
	}
	hint := a.ActionName
	if hint == "" {
		hint = "action"
	}
	return m.ids.NewNamedNode(hint)
}

func (m *Mapper) mapAction(path string, batchNode rdf.BlankNode, a *batch.Action) error {
	node, err := m.actionNode(a)
	if err != nil {
		return &MappingError{Path: path, Err: err}
	}

	if err := m.emit(path, node, ontology.HasBatch, batchNode); err != nil {
		return err
	}
	if err := m.emitDateTime(path, node, ontology.StartTime, a.StartTime); err != nil {
		return err
	}
	if err := m.emitDateTime(path, node, ontology.EndTime, a.EndingTime); err != nil {
		return err
	}
	if err := m.emitString(path, node, ontology.MethodName, a.MethodName); err != nil {
		return err
	}
	if err := m.emitString(path, node, ontology.EquipmentName, a.EquipmentName); err != nil {
		return err
	}
	if err := m.emitString(path, node, ontology.LocalEquipmentName, a.SubEquipmentName); err != nil {
		return err
	}

	if a.ContainerInfo != nil {
		if err := m.mapContainer(path+".containerInfo", node, a.ContainerInfo); err != nil {
			return err
		}
	}
	if a.TemperatureShaker != nil {
		if err := m.mapObservation(path+".temperatureShaker", node, ontology.TemperatureShakerShape, a.TemperatureShaker); err != nil {
			return err
		}
	}
	if a.TemperatureTumbleStirrer != nil {
		if err := m.mapObservation(path+".temperatureTumbleStirrer", node, ontology.TemperatureTumbleStirrerShape, a.TemperatureTumbleStirrer); err != nil {
			return err
		}
	}
	if a.SpeedShaker != nil {
		if err := m.mapObservation(path+".speedShaker", node, ontology.SpeedInRPM, a.SpeedShaker); err != nil {
			return err
		}
	}
	if a.DispenseType != nil {
		if err := m.emitString(path, node, ontology.DispenseType, *a.DispenseType); err != nil {
			return err
		}
	}
	if a.DispenseState != nil {
		if err := m.emitString(path, node, ontology.PhysicalState, *a.DispenseState); err != nil {
			return err
		}
	}
	for i := range a.HasContainerPositionAndQuantity {
		p := fmt.Sprintf("%s.hasContainerPositionAndQuantity[%d]", path, i)
		if err := m.mapContainerPosition(p, node, &a.HasContainerPositionAndQuantity[i]); err != nil {
			return err
		}
	}
	if a.HasSample != nil {
		if err := m.mapSample(path+".hasSample", node, a.HasSample); err != nil {
			return err
		}
	}

	kind := a.Kind()
	if kind == batch.ActionUnrecognized {
		m.logger.Debug("action kind not modeled, using generic class", "path", path, "action", a.ActionName)
	}
	if err := m.emitClass(path, node, actionClass(kind)); err != nil {
		return err
	}
	m.logger.Debug("mapped action", "path", path, "kind", kind, "node", m.label(node))
	return nil
}

// label renders a node for log output, prefixed when the registry knows its base.
func (m *Mapper) label(node rdf.Term) string {
	if iri, ok := node.(rdf.IRI); ok {
		if qname, ok := m.ns.Compact(iri); ok {
			return qname
		}
	}
	return node.String()
}

// actionClass is total over ActionKind: unmodeled kinds get the generic class.
func actionClass(kind batch.ActionKind) ontology.Term {
	switch kind {
	case batch.ActionAdd:
		return ontology.AddAction
	case batch.ActionSetTemperature:
		return ontology.SetTemperatureAction
	default:
		return ontology.RegisteredAction
	}
}

func (m *Mapper) mapContainer(path string, subject rdf.Term, c *batch.ContainerInfo) error {
	if err := m.emitString(path, subject, ontology.ContainerID, c.ContainerID); err != nil {
		return err
	}
	return m.emitString(path, subject, ontology.ContainerBarcode, c.ContainerBarcode)
}

// mapObservation links subject to a fresh node carrying exactly a unit and a value.
func (m *Mapper) mapObservation(path string, subject rdf.Term, property ontology.Term, o *batch.Observation) error {
	node := m.ids.NewBlankNode()
	if err := m.emit(path, subject, property, node); err != nil {
		return err
	}
	if err := m.emit(path, node, ontology.Unit, rdf.NewLiteral(o.Unit)); err != nil {
		return err
	}
	return m.emit(path, node, ontology.Value, rdf.NewDoubleLiteral(o.Value))
}

func (m *Mapper) mapContainerPosition(path string, subject rdf.Term, p *batch.ContainerPosition) error {
	node := m.ids.NewBlankNode()
	if err := m.emit(path, subject, ontology.HasContainerPositionAndQuantity, node); err != nil {
		return err
	}
	if err := m.emitClass(path, node, ontology.ContainerPositionAndQuantity); err != nil {
		return err
	}
	if err := m.emitString(path, node, ontology.Position, p.Position); err != nil {
		return err
	}
	return m.mapObservation(path+".quantity", node, ontology.Quantity, &p.Quantity)
}

func (m *Mapper) mapSample(path string, subject rdf.Term, s *batch.Sample) error {
	node := m.ids.NewBlankNode()
	if err := m.emit(path, subject, ontology.HasSample, node); err != nil {
		return err
	}
	if err := m.emitClass(path, node, ontology.Sample); err != nil {
		return err
	}
	if err := m.mapContainer(path+".container", node, &s.Container); err != nil {
		return err
	}
	if err := m.mapObservation(path+".expectedDatum", node, ontology.ExpectedDatum, &s.ExpectedDatum); err != nil {
		return err
	}
	if err := m.emitString(path, node, ontology.VialShape, s.VialType); err != nil {
		return err
	}
	if err := m.emitString(path, node, ontology.VialID, s.VialID); err != nil {
		return err
	}
	if err := m.emitString(path, node, ontology.Role, s.Role); err != nil {
		return err
	}
	for i := range s.HasSample {
		if err := m.mapSampleItem(fmt.Sprintf("%s.hasSample[%d]", path, i), node, &s.HasSample[i]); err != nil {
			return err
		}
	}
	m.logger.Debug("mapped sample", "path", path, "items", len(s.HasSample))
	return nil
}

func (m *Mapper) mapSampleItem(path string, subject rdf.Term, item *batch.SampleItem) error {
	node := m.ids.NewBlankNode()
	if err := m.emit(path, subject, ontology.HasSample, node); err != nil {
		return err
	}
	if err := m.emitClass(path, node, ontology.Sample); err != nil {
		return err
	}
	if err := m.emitString(path, node, ontology.Role, item.Role); err != nil {
		return err
	}
	if item.ExpectedDatum != nil {
		if err := m.mapObservation(path+".expectedDatum", node, ontology.ExpectedDatum, item.ExpectedDatum); err != nil {
			return err
		}
	}
	if err := m.emitString(path, node, ontology.Identifier, item.SampleID); err != nil {
		return err
	}
	if err := m.emitString(path, node, ontology.PhysicalState, item.PhysicalState); err != nil {
		return err
	}
	if err := m.emitString(path, node, ontology.InternalBarCode, item.InternalBarCode); err != nil {
		return err
	}
	return m.mapChemical(path+".hasChemical", node, &item.HasChemical)
}

func (m *Mapper) mapChemical(path string, subject rdf.Term, c *batch.Chemical) error {
	node := m.ids.NewBlankNode()
	if err := m.emit(path, subject, ontology.HasChemical, node); err != nil {
		return err
	}
	if err := m.emitClass(path, node, ontology.ChemicalEntity); err != nil {
		return err
	}
	if err := m.emitString(path, node, ontology.Identifier, c.ChemicalID); err != nil {
		return err
	}
	if err := m.emitString(path, node, ontology.ChemicalName, c.ChemicalName); err != nil {
		return err
	}
	if err := m.emitString(path, node, ontology.CASNumber, c.CASNumber); err != nil {
		return err
	}
	if err := m.emitString(path, node, ontology.Smiles, c.Smiles); err != nil {
		return err
	}
	// molecular mass is recorded as its bare value, without the unit node
	return m.emit(path, node, ontology.MolecularMass, rdf.NewLiteral(strconv.FormatFloat(c.MolecularMass.Value, 'f', -1, 64)))
}

func (m *Mapper) emit(path string, subject rdf.Term, predicate ontology.Term, object rdf.Term) error {
	p, err := m.ns.Resolve(predicate.Prefix, predicate.Local)
	if err != nil {
		return &MappingError{Path: path, Predicate: predicate.String(), Err: err}
	}
	if err := m.graph.Insert(subject, p, object); err != nil {
		return &MappingError{Path: path, Predicate: predicate.String(), Err: err}
	}
	return nil
}

func (m *Mapper) emitClass(path string, subject rdf.Term, class ontology.Term) error {
	c, err := m.ns.Resolve(class.Prefix, class.Local)
	if err != nil {
		return &MappingError{Path: path, Predicate: ontology.Type.String(), Err: err}
	}
	return m.emit(path, subject, ontology.Type, c)
}

// emitString emits a plain literal. An empty value counts as absent.
func (m *Mapper) emitString(path string, subject rdf.Term, predicate ontology.Term, value string) error {
	if value == "" {
		return nil
	}
	return m.emit(path, subject, predicate, rdf.NewLiteral(value))
}

// emitDateTime passes value through verbatim as an xsd:dateTime literal.
// An empty value counts as absent.
func (m *Mapper) emitDateTime(path string, subject rdf.Term, predicate ontology.Term, value string) error {
	if value == "" {
		return nil
	}
	return m.emit(path, subject, predicate, rdf.NewTypedLiteral(value, rdf.XSDDateTime))
}
