package rdf

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/piprate/json-gold/ld"
)

const jsonldDefaultGraph = "@default"

// compactJSONLD compacts an expanded document against context using json-gold.
func compactJSONLD(doc interface{}, context map[string]interface{}) (map[string]interface{}, error) {
	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions("")
	compacted, err := proc.Compact(doc, map[string]interface{}{"@context": context}, opts)
	if err != nil {
		return nil, fmt.Errorf("jsonld: compact: %w", err)
	}
	return compacted, nil
}

// ReadNQuads parses N-Quads with json-gold and returns an iterator over the
// result. Blank node labels are mapped to fresh nodes from blanks.
func ReadNQuads(r io.Reader, blanks *BlankNodes) (QuadIterator, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	serializer := &ld.NQuadRDFSerializer{}
	dataset, err := serializer.Parse(string(input))
	if err != nil {
		return nil, fmt.Errorf("nquads: %w", err)
	}
	return NewDatasetIterator(dataset, blanks), nil
}

// ReadJSONLD converts a JSON-LD document to RDF with json-gold and returns an
// iterator over the result.
func ReadJSONLD(ctx context.Context, r io.Reader, blanks *BlankNodes) (QuadIterator, error) {
	var doc interface{}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("jsonld: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	proc := ld.NewJsonLdProcessor()
	result, err := proc.ToRDF(doc, ld.NewJsonLdOptions(""))
	if err != nil {
		return nil, fmt.Errorf("jsonld: %w", err)
	}
	dataset, ok := result.(*ld.RDFDataset)
	if !ok {
		return nil, fmt.Errorf("jsonld: unexpected ToRDF result %T", result)
	}
	return NewDatasetIterator(dataset, blanks), nil
}

// NewDatasetIterator iterates a json-gold dataset: the default graph first,
// then named graphs in name order. Blank node labels share one scope across
// graphs, so the same label names the same node everywhere in the dataset.
func NewDatasetIterator(dataset *ld.RDFDataset, blanks *BlankNodes) QuadIterator {
	if blanks == nil {
		blanks = &BlankNodes{}
	}
	var names []string
	for name := range dataset.Graphs {
		if name != jsonldDefaultGraph {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := dataset.Graphs[jsonldDefaultGraph]; ok {
		names = append([]string{jsonldDefaultGraph}, names...)
	}
	return &datasetIterator{
		dataset: dataset,
		names:   names,
		blanks:  blanks,
		scope:   make(map[string]BlankNode),
	}
}

type datasetIterator struct {
	dataset *ld.RDFDataset
	names   []string
	graph   int
	pos     int
	blanks  *BlankNodes
	scope   map[string]BlankNode
}

func (it *datasetIterator) Next() (Quad, error) {
	for it.graph < len(it.names) {
		name := it.names[it.graph]
		quads := it.dataset.Graphs[name]
		if it.pos >= len(quads) {
			it.graph++
			it.pos = 0
			continue
		}
		lq := quads[it.pos]
		it.pos++
		if lq == nil {
			continue
		}
		q := Quad{
			S: it.term(lq.Subject),
			P: it.term(lq.Predicate),
			O: it.term(lq.Object),
		}
		if name != jsonldDefaultGraph {
			q.G = it.graphTerm(name)
		}
		return q, nil
	}
	return Quad{}, io.EOF
}

func (it *datasetIterator) graphTerm(name string) Term {
	if strings.HasPrefix(name, "_:") {
		return it.blanks.Named(it.scope, name)
	}
	return IRI{Value: name}
}

func (it *datasetIterator) term(n ld.Node) Term {
	switch v := n.(type) {
	case *ld.IRI:
		return IRI{Value: v.Value}
	case *ld.BlankNode:
		return it.blanks.Named(it.scope, v.Attribute)
	case *ld.Literal:
		l := Literal{Lexical: v.Value, Lang: v.Language}
		if v.Language == "" && v.Datatype != XSDString {
			l.Datatype = IRI{Value: v.Datatype}
		}
		return l
	default:
		return nil
	}
}

// ToLDDataset converts quads into a json-gold dataset, the inverse of
// NewDatasetIterator. Blank nodes are labelled by their identity.
func ToLDDataset(quads []Quad) (*ld.RDFDataset, error) {
	dataset := ld.NewRDFDataset()
	for _, q := range quads {
		s, err := toLDNode(q.S)
		if err != nil {
			return nil, err
		}
		p, err := toLDNode(q.P)
		if err != nil {
			return nil, err
		}
		o, err := toLDNode(q.O)
		if err != nil {
			return nil, err
		}
		graph := jsonldDefaultGraph
		if q.G != nil {
			g, err := toLDNode(q.G)
			if err != nil {
				return nil, err
			}
			graph = g.GetValue()
		}
		dataset.Graphs[graph] = append(dataset.Graphs[graph], ld.NewQuad(s, p, o, graph))
	}
	return dataset, nil
}

func toLDNode(t Term) (ld.Node, error) {
	switch v := t.(type) {
	case IRI:
		return ld.NewIRI(v.Value), nil
	case BlankNode:
		return ld.NewBlankNode(v.String()), nil
	case Literal:
		datatype := v.Datatype.Value
		switch {
		case v.Lang != "":
			datatype = RDFLangString
		case datatype == "":
			datatype = XSDString
		}
		return ld.NewLiteral(v.Lexical, datatype, v.Lang), nil
	case Variable:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedNode, v)
	case Dynamic:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedNode, v)
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuad, t)
	}
}
