package rdf

import (
	"unicode/utf8"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Object is the value of one property: a single term, or a collection of
// values folded from an rdf:first/rdf:rest chain.
type Object struct {
	Term  Term
	Items []Object
	list  bool
}

// TermObject wraps a single term.
func TermObject(t Term) Object { return Object{Term: t} }

// ListObject wraps a collection; items may be empty.
func ListObject(items ...Object) Object {
	if items == nil {
		items = []Object{}
	}
	return Object{Items: items, list: true}
}

// IsList reports whether the object is a collection.
func (o Object) IsList() bool { return o.list }

// Property is one (predicate, object) pair of a description.
type Property struct {
	Predicate Term
	Object    Object
}

// Description holds the properties of one subject within one graph,
// in the order they were enqueued.
type Description struct {
	Subject    Term
	Properties []Property
}

// Graph maps subjects to their descriptions in first-seen order.
type Graph struct {
	// Name is nil for the default graph.
	Name     Term
	subjects *linkedhashmap.Map
}

func newGraph(name Term) *Graph {
	return &Graph{Name: name, subjects: linkedhashmap.New()}
}

// IsDefault reports whether g is the default graph.
func (g *Graph) IsDefault() bool { return g.Name == nil }

// Len returns the number of subjects in g.
func (g *Graph) Len() int { return g.subjects.Size() }

// Description returns the description of subject, if any.
func (g *Graph) Description(subject Term) (*Description, bool) {
	v, ok := g.subjects.Get(subject)
	if !ok {
		return nil, false
	}
	return v.(*Description), true
}

// Descriptions returns every description in first-seen subject order.
func (g *Graph) Descriptions() []*Description {
	values := g.subjects.Values()
	out := make([]*Description, 0, len(values))
	for _, v := range values {
		out = append(out, v.(*Description))
	}
	return out
}

// add records the statement unless the description already holds it.
func (g *Graph) add(s, p, o Term) bool {
	d, ok := g.Description(s)
	if !ok {
		d = &Description{Subject: s}
		g.subjects.Put(s, d)
	}
	for _, prop := range d.Properties {
		if termEqual(prop.Predicate, p) && termEqual(prop.Object.Term, o) {
			return false
		}
	}
	d.Properties = append(d.Properties, Property{Predicate: p, Object: TermObject(o)})
	return true
}

func (g *Graph) remove(subject Term) { g.subjects.Remove(subject) }

// Dataset is the aggregated form of a quad stream: graph, then subject,
// then ordered properties.
type Dataset struct {
	def   *Graph
	named *linkedhashmap.Map
}

// NewDataset returns an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{def: newGraph(nil), named: linkedhashmap.New()}
}

// Default returns the default graph.
func (d *Dataset) Default() *Graph { return d.def }

// Graph returns the graph with the given name; nil names the default graph.
func (d *Dataset) Graph(name Term) (*Graph, bool) {
	if name == nil {
		return d.def, true
	}
	v, ok := d.named.Get(name)
	if !ok {
		return nil, false
	}
	return v.(*Graph), true
}

// Graphs returns the default graph, when it has subjects, followed by the
// named graphs in first-seen order.
func (d *Dataset) Graphs() []*Graph {
	out := make([]*Graph, 0, d.named.Size()+1)
	if d.def.Len() > 0 {
		out = append(out, d.def)
	}
	for _, v := range d.named.Values() {
		out = append(out, v.(*Graph))
	}
	return out
}

// NamedGraphs returns only the named graphs.
func (d *Dataset) NamedGraphs() []*Graph {
	values := d.named.Values()
	out := make([]*Graph, 0, len(values))
	for _, v := range values {
		out = append(out, v.(*Graph))
	}
	return out
}

func (d *Dataset) graphFor(name Term) *Graph {
	g, ok := d.Graph(name)
	if !ok {
		g = newGraph(name)
		d.named.Put(name, g)
	}
	return g
}

// kindSet is a bitmask of TermKinds.
type kindSet uint8

func kinds(ks ...TermKind) kindSet {
	var s kindSet
	for _, k := range ks {
		s |= 1 << k
	}
	return s
}

func (s kindSet) has(k TermKind) bool { return s&(1<<k) != 0 }

// nodePolicy lists the term kinds a format accepts in each quad position.
// A zero graph set means the format only has a default graph.
type nodePolicy struct {
	subject, predicate, object, graph kindSet
}

func policyFor(f Format) nodePolicy {
	p := nodePolicy{
		subject:   kinds(TermIRI, TermBlankNode),
		predicate: kinds(TermIRI),
		object:    kinds(TermIRI, TermBlankNode, TermLiteral),
	}
	switch f {
	case FormatTriG, FormatNQuads, FormatJSONLD:
		p.graph = kinds(TermIRI, TermBlankNode)
	case FormatXRDF:
		p.subject |= kinds(TermVariable, TermDynamic)
		p.predicate |= kinds(TermVariable, TermDynamic)
		p.object |= kinds(TermVariable, TermDynamic)
		p.graph = kinds(TermIRI, TermBlankNode, TermVariable, TermDynamic)
	case FormatTurtle, FormatNTriples, FormatRDFXML:
	}
	return p
}

// Aggregator groups a quad stream into a Dataset, validating node kinds for
// the target format and registering every IRI and blank node it sees.
type Aggregator struct {
	format Format
	policy nodePolicy
	ns     *Namespaces
	blanks *BlankRenamer
	ds     *Dataset
	count  int
}

// NewAggregator returns an aggregator for format that registers names with
// ns and blanks.
func NewAggregator(format Format, ns *Namespaces, blanks *BlankRenamer) *Aggregator {
	return &Aggregator{
		format: format,
		policy: policyFor(format),
		ns:     ns,
		blanks: blanks,
		ds:     NewDataset(),
	}
}

// Enqueue adds q to the dataset. On error the dataset and the name tables
// are left unchanged. A quad already in the dataset is accepted and ignored.
func (a *Aggregator) Enqueue(q Quad) error {
	if err := a.check(q); err != nil {
		return err
	}
	q.O = normalizeLiteral(q.O)
	a.register(q.S)
	a.register(q.P)
	a.register(q.O)
	if q.G != nil {
		a.register(q.G)
	}
	if a.ds.graphFor(q.G).add(q.S, q.P, q.O) {
		a.count++
	}
	return nil
}

// Dataset returns the aggregated data.
func (a *Aggregator) Dataset() *Dataset { return a.ds }

// Count returns the number of distinct quads accepted so far.
func (a *Aggregator) Count() int { return a.count }

func (a *Aggregator) check(q Quad) error {
	for _, slot := range []struct {
		pos   Position
		term  Term
		allow kindSet
	}{
		{PositionSubject, q.S, a.policy.subject},
		{PositionPredicate, q.P, a.policy.predicate},
		{PositionObject, q.O, a.policy.object},
	} {
		if slot.term == nil {
			return &NodeError{Format: a.format, Position: slot.pos, Err: ErrInvalidQuad}
		}
		if !slot.allow.has(slot.term.Kind()) || !validUTF8(slot.term) {
			return unsupportedNode(a.format, slot.pos, slot.term)
		}
	}
	if l, ok := q.O.(Literal); ok && l.Lang != "" && l.Datatype.Value != "" && l.Datatype.Value != RDFLangString {
		return &NodeError{Format: a.format, Position: PositionObject, Term: l, Err: ErrConflictingLiteral}
	}
	if q.G != nil && (!a.policy.graph.has(q.G.Kind()) || !validUTF8(q.G)) {
		return unsupportedNode(a.format, PositionGraph, q.G)
	}
	return nil
}

// validUTF8 reports whether every string carried by t is valid UTF-8; the
// line-based and JSON writers cannot represent anything else.
func validUTF8(t Term) bool {
	switch v := t.(type) {
	case IRI:
		return utf8.ValidString(v.Value)
	case Literal:
		return utf8.ValidString(v.Lexical) && utf8.ValidString(v.Lang) && utf8.ValidString(v.Datatype.Value)
	case Variable:
		return utf8.ValidString(v.Name)
	case Dynamic:
		return utf8.ValidString(v.Expression)
	default:
		return true
	}
}

func (a *Aggregator) register(t Term) {
	switch v := t.(type) {
	case IRI:
		a.ns.Observe(v.Value)
	case BlankNode:
		a.blanks.IDFor(v)
	case Literal:
		if v.Datatype.Value != "" {
			a.ns.Observe(v.Datatype.Value)
		}
	case Variable, Dynamic:
	}
}

// normalizeLiteral drops an explicit xsd:string datatype so equal literals
// compare equal.
func normalizeLiteral(t Term) Term {
	if l, ok := t.(Literal); ok && l.Lang == "" && l.Datatype.Value == XSDString {
		l.Datatype = IRI{}
		return l
	}
	return t
}
