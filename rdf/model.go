package rdf

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// TermKind identifies RDF term types.
type TermKind uint8

const (
	// TermIRI represents an IRI term.
	TermIRI TermKind = iota
	// TermBlankNode represents a blank node term.
	TermBlankNode
	// TermLiteral represents a literal term.
	TermLiteral
	// TermVariable represents a query variable (xRDF only).
	TermVariable
	// TermDynamic represents a node computed at evaluation time (xRDF only).
	TermDynamic
)

func (k TermKind) String() string {
	switch k {
	case TermIRI:
		return "iri"
	case TermBlankNode:
		return "blank"
	case TermLiteral:
		return "literal"
	case TermVariable:
		return "variable"
	case TermDynamic:
		return "dynamic"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Term is a value that can appear in RDF statements.
type Term interface {
	Kind() TermKind
	String() string
}

// IRI represents an RDF IRI.
type IRI struct {
	// Value is the IRI string value.
	Value string
}

// Kind returns TermIRI.
func (i IRI) Kind() TermKind { return TermIRI }

// String returns the IRI value.
func (i IRI) String() string { return i.Value }

// BlankNode represents an RDF blank node. Two blank nodes are the same node
// exactly when their IDs are equal; the ID is never written to output, it is
// replaced by a label from BlankRenamer.
type BlankNode struct {
	ID uint64
}

// Kind returns TermBlankNode.
func (b BlankNode) Kind() TermKind { return TermBlankNode }

// String returns the blank node identifier prefixed with "_:".
func (b BlankNode) String() string { return "_:n" + strconv.FormatUint(b.ID, 10) }

// BlankNodes hands out blank nodes with distinct identities.
// The zero value is ready to use.
type BlankNodes struct {
	next atomic.Uint64
}

// New returns a blank node that differs from every other node from b.
func (b *BlankNodes) New() BlankNode {
	return BlankNode{ID: b.next.Add(1) - 1}
}

// Named returns the blank node b associates with label. The same label always
// maps to the same node within a scope; scopes keep labels from separate
// documents apart.
func (b *BlankNodes) Named(scope map[string]BlankNode, label string) BlankNode {
	if n, ok := scope[label]; ok {
		return n
	}
	n := b.New()
	scope[label] = n
	return n
}

// Literal represents an RDF literal.
type Literal struct {
	// Lexical is the lexical form of the literal.
	Lexical string
	// Datatype is the datatype IRI, if any. Empty means xsd:string.
	Datatype IRI
	// Lang is the language tag, if any. Lang and Datatype are exclusive.
	Lang string
}

// Kind returns TermLiteral.
func (l Literal) Kind() TermKind { return TermLiteral }

// String returns a string representation of the literal.
func (l Literal) String() string {
	if l.Lang != "" {
		return fmt.Sprintf("%q@%s", l.Lexical, l.Lang)
	}
	if !l.IsPlain() {
		return fmt.Sprintf("%q^^<%s>", l.Lexical, l.Datatype.Value)
	}
	return fmt.Sprintf("%q", l.Lexical)
}

// IsPlain reports whether the literal is a simple string: no language tag
// and either no datatype or xsd:string.
func (l Literal) IsPlain() bool {
	return l.Lang == "" && (l.Datatype.Value == "" || l.Datatype.Value == XSDString)
}

// Variable is a named query variable. It renders as ?Name in xRDF.
type Variable struct {
	Name string
}

// Kind returns TermVariable.
func (v Variable) Kind() TermKind { return TermVariable }

// String returns the variable prefixed with "?".
func (v Variable) String() string { return "?" + v.Name }

// Dynamic is a node whose value is produced by an expression at evaluation
// time. It renders as $(Expression) in xRDF.
type Dynamic struct {
	Expression string
}

// Kind returns TermDynamic.
func (d Dynamic) Kind() TermKind { return TermDynamic }

// String returns the expression wrapped in "$(...)".
func (d Dynamic) String() string { return "$(" + d.Expression + ")" }

// Triple is an RDF triple.
type Triple struct {
	S Term
	P Term
	O Term
}

// Quad is an RDF quad (triple + optional graph name).
type Quad struct {
	// S is the subject.
	S Term
	// P is the predicate.
	P Term
	// O is the object.
	O Term
	// G is the graph name, or nil for the default graph.
	G Term
}

// NewQuad builds a quad from IRIs and terms; graph may be nil.
func NewQuad(s Term, p IRI, o Term, g Term) Quad {
	return Quad{S: s, P: p, O: o, G: g}
}

// IsZero reports whether the quad has no subject/predicate/object.
func (q Quad) IsZero() bool {
	return q.S == nil && q.P == nil && q.O == nil && q.G == nil
}

// ToTriple extracts the triple from a quad (ignores graph).
func (q Quad) ToTriple() Triple {
	return Triple{S: q.S, P: q.P, O: q.O}
}

// InDefaultGraph reports whether the quad is in the default graph.
func (q Quad) InDefaultGraph() bool {
	return q.G == nil
}

// String renders the quad in an N-Quads-like debugging form.
func (q Quad) String() string {
	if q.G == nil {
		return fmt.Sprintf("%v %v %v .", q.S, q.P, q.O)
	}
	return fmt.Sprintf("%v %v %v %v .", q.S, q.P, q.O, q.G)
}

// ToQuad converts a triple to a quad in the default graph.
func (t Triple) ToQuad() Quad {
	return Quad{S: t.S, P: t.P, O: t.O}
}

// ToQuadInGraph converts a triple to a quad in a named graph.
func (t Triple) ToQuadInGraph(graph Term) Quad {
	return Quad{S: t.S, P: t.P, O: t.O, G: graph}
}

// termEqual compares two terms by value; blank nodes compare by identity,
// which for BlankNode is its ID.
func termEqual(a, b Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a == b
}

// isIRI reports whether t is the IRI v.
func isIRI(t Term, v string) bool {
	i, ok := t.(IRI)
	return ok && i.Value == v
}
