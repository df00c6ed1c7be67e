package rdf

import (
	"go.uber.org/zap"

	"github.com/geoknoesis/rdf-serializer/logger"
)

// ListPolicy selects how rdf:first/rdf:rest chains are folded into collections.
type ListPolicy uint8

const (
	// ListFoldFirst folds a chain at the first reference encountered. Later
	// references to any of its cells render as plain blank node references.
	ListFoldFirst ListPolicy = iota
	// ListKeepShared never folds a chain containing a cell that is
	// referenced more than once, so no statement is lost.
	ListKeepShared
	// ListFlat disables folding.
	ListFlat
)

func (p ListPolicy) String() string {
	switch p {
	case ListFoldFirst:
		return "fold-first"
	case ListKeepShared:
		return "keep-shared"
	case ListFlat:
		return "flat"
	default:
		return "unknown"
	}
}

// ParseListPolicy parses the names returned by ListPolicy.String.
func ParseListPolicy(s string) (ListPolicy, bool) {
	for _, p := range []ListPolicy{ListFoldFirst, ListKeepShared, ListFlat} {
		if p.String() == s {
			return p, true
		}
	}
	return 0, false
}

// listCell is the payload of a blank node whose only statements are exactly
// one rdf:first and one rdf:rest.
type listCell struct {
	first Term
	rest  Term
}

type listFolder struct {
	graph    *Graph
	policy   ListPolicy
	log      logger.Logger
	cells    map[BlankNode]listCell
	refs     map[BlankNode]int
	consumed map[BlankNode]bool
	folded   int
}

// ReconstructLists replaces object references to well-formed collections
// with folded list objects and removes the consumed cells from each graph.
// Chains that are cyclic, branch into extra statements, or do not end in
// rdf:nil are left as plain statements. It returns the number of folded
// collections, empty ones included.
func ReconstructLists(ds *Dataset, policy ListPolicy, log logger.Logger) int {
	if policy == ListFlat {
		return 0
	}
	log = logger.OrNoop(log)
	total := 0
	for _, g := range ds.Graphs() {
		f := newListFolder(g, policy, log)
		f.run()
		total += f.folded
	}
	return total
}

func newListFolder(g *Graph, policy ListPolicy, log logger.Logger) *listFolder {
	f := &listFolder{
		graph:    g,
		policy:   policy,
		log:      log,
		cells:    make(map[BlankNode]listCell),
		refs:     make(map[BlankNode]int),
		consumed: make(map[BlankNode]bool),
	}
	for _, d := range g.Descriptions() {
		if b, ok := d.Subject.(BlankNode); ok {
			if cell, ok := asListCell(d); ok {
				f.cells[b] = cell
			}
		}
		for _, p := range d.Properties {
			if b, ok := p.Object.Term.(BlankNode); ok {
				f.refs[b]++
			}
		}
	}
	return f
}

func asListCell(d *Description) (listCell, bool) {
	if len(d.Properties) != 2 {
		return listCell{}, false
	}
	var cell listCell
	for _, p := range d.Properties {
		switch {
		case isIRI(p.Predicate, RDFFirst) && cell.first == nil:
			cell.first = p.Object.Term
		case isIRI(p.Predicate, RDFRest) && cell.rest == nil:
			cell.rest = p.Object.Term
		default:
			return listCell{}, false
		}
	}
	return cell, true
}

func (f *listFolder) run() {
	for _, d := range f.graph.Descriptions() {
		if b, ok := d.Subject.(BlankNode); ok {
			if _, isCell := f.cells[b]; isCell {
				continue
			}
		}
		for i := range d.Properties {
			// A malformed cell keeps its rdf:nil terminator as written.
			if isListLink(d.Properties[i].Predicate) && isIRI(d.Properties[i].Object.Term, RDFNil) {
				continue
			}
			if obj, ok := f.fold(d.Properties[i].Object.Term); ok {
				d.Properties[i].Object = obj
			}
		}
	}
	for b := range f.consumed {
		f.graph.remove(b)
	}
}

func isListLink(p Term) bool {
	return isIRI(p, RDFFirst) || isIRI(p, RDFRest)
}

// fold returns the collection headed by t when t is rdf:nil or the head of
// a well-formed chain that has not been folded yet.
func (f *listFolder) fold(t Term) (Object, bool) {
	if isIRI(t, RDFNil) {
		f.folded++
		return ListObject(), true
	}
	head, ok := t.(BlankNode)
	if !ok {
		return Object{}, false
	}
	if _, isCell := f.cells[head]; !isCell {
		return Object{}, false
	}
	if f.consumed[head] {
		f.log.Warn("list cell already folded at an earlier reference; keeping node reference",
			zap.Stringer("node", head))
		return Object{}, false
	}

	var (
		chain []BlankNode
		items []Term
		seen  = make(map[BlankNode]bool)
		cur   = t
	)
	for !isIRI(cur, RDFNil) {
		b, ok := cur.(BlankNode)
		if !ok {
			f.log.Debug("list chain does not end in rdf:nil", zap.Stringer("head", head), zap.Stringer("tail", cur))
			return Object{}, false
		}
		cell, isCell := f.cells[b]
		switch {
		case !isCell:
			f.log.Debug("list chain reaches a node with extra statements", zap.Stringer("head", head), zap.Stringer("node", b))
			return Object{}, false
		case seen[b]:
			f.log.Debug("list chain is cyclic", zap.Stringer("head", head), zap.Stringer("node", b))
			return Object{}, false
		case f.consumed[b]:
			f.log.Warn("list chain joins a collection folded earlier; keeping node reference",
				zap.Stringer("head", head), zap.Stringer("node", b))
			return Object{}, false
		case f.policy == ListKeepShared && f.refs[b] > 1:
			f.log.Debug("list cell is shared; keeping chain flat", zap.Stringer("head", head), zap.Stringer("node", b))
			return Object{}, false
		}
		seen[b] = true
		chain = append(chain, b)
		items = append(items, cell.first)
		cur = cell.rest
	}

	for _, b := range chain {
		f.consumed[b] = true
	}
	f.folded++
	out := make([]Object, len(items))
	for i, item := range items {
		if nested, ok := f.fold(item); ok {
			out[i] = nested
			continue
		}
		out[i] = TermObject(item)
	}
	return ListObject(out...), true
}
