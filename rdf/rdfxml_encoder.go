package rdf

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// rdfxmlWriter writes one rdf:Description per subject with one property
// element per statement. Collections are not folded: rdf:parseType
// "Collection" cannot hold literals.
type rdfxmlWriter struct{}

// rdfxmlRun holds the element-local prefixes invented for predicates whose
// namespace has no binding.
type rdfxmlRun struct {
	ec      *emitContext
	auto    map[string]string
	autoSeq int
}

func (rdfxmlWriter) writeDataset(ec *emitContext, ds *Dataset) error {
	run := &rdfxmlRun{ec: ec, auto: make(map[string]string)}

	ec.out.WriteString(xmlDeclaration)
	var root strings.Builder
	root.WriteString("<rdf:RDF")
	for _, b := range ec.ns.Bindings() {
		if b.Prefix == "" {
			root.WriteString(` xmlns="` + escapeXMLAttr(b.Namespace) + `"`)
			continue
		}
		root.WriteString(` xmlns:` + b.Prefix + `="` + escapeXMLAttr(b.Namespace) + `"`)
	}
	root.WriteString(">\n")
	ec.out.WriteString(root.String())

	for _, d := range ds.Default().Descriptions() {
		run.writeDescription(d)
	}
	ec.out.WriteString("</rdf:RDF>\n")
	return nil
}

func (r *rdfxmlRun) writeDescription(d *Description) {
	ec := r.ec
	subject, err := r.nodeAttr(d.Subject, "rdf:about")
	if err != nil {
		ec.log.Error("skipping subject", zap.Error(err))
		return
	}

	indent := ec.opts.Indent
	var body strings.Builder
	for _, p := range d.Properties {
		elem, err := r.propertyElement(p)
		if err != nil {
			ec.log.Error("skipping statement", zap.Error(err), zap.Stringer("subject", d.Subject))
			continue
		}
		body.WriteString(indent + indent + elem + "\n")
	}
	if body.Len() == 0 {
		return
	}
	ec.out.WriteString(indent + "<rdf:Description " + subject + ">\n")
	ec.out.WriteString(body.String())
	ec.out.WriteString(indent + "</rdf:Description>\n")
}

// nodeAttr renders a resource reference as an attribute: about or resource
// for IRIs, nodeID for blank nodes.
func (r *rdfxmlRun) nodeAttr(t Term, iriAttr string) (string, error) {
	switch v := t.(type) {
	case IRI:
		if !validXMLChars(v.Value) {
			return "", unsupportedNode(r.ec.format, PositionSubject, v)
		}
		return iriAttr + `="` + escapeXMLAttr(v.Value) + `"`, nil
	case BlankNode:
		return `rdf:nodeID="` + r.ec.blanks.Label(v) + `"`, nil
	case Literal:
		return "", unsupportedNode(r.ec.format, PositionSubject, v)
	case Variable:
		return "", unsupportedNode(r.ec.format, PositionSubject, v)
	case Dynamic:
		return "", unsupportedNode(r.ec.format, PositionSubject, v)
	default:
		return "", unsupportedNode(r.ec.format, PositionSubject, t)
	}
}

func (r *rdfxmlRun) propertyElement(p Property) (string, error) {
	name, decl, err := r.predicateName(p.Predicate)
	if err != nil {
		return "", err
	}
	open := "<" + name + decl

	switch o := p.Object.Term.(type) {
	case IRI:
		if !validXMLChars(o.Value) {
			return "", unsupportedNode(r.ec.format, PositionObject, o)
		}
		return open + ` rdf:resource="` + escapeXMLAttr(o.Value) + `"/>`, nil
	case BlankNode:
		return open + ` rdf:nodeID="` + r.ec.blanks.Label(o) + `"/>`, nil
	case Literal:
		if !validXMLChars(o.Lexical) || !validXMLChars(o.Datatype.Value) {
			return "", unsupportedNode(r.ec.format, PositionObject, o)
		}
		switch {
		case o.Lang != "":
			open += ` xml:lang="` + escapeXMLAttr(o.Lang) + `"`
		case !o.IsPlain():
			open += ` rdf:datatype="` + escapeXMLAttr(o.Datatype.Value) + `"`
		}
		return open + ">" + escapeXMLText(o.Lexical) + "</" + name + ">", nil
	case Variable:
		return "", unsupportedNode(r.ec.format, PositionObject, o)
	case Dynamic:
		return "", unsupportedNode(r.ec.format, PositionObject, o)
	default:
		return "", unsupportedNode(r.ec.format, PositionObject, p.Object.Term)
	}
}

// predicateName returns the element name for a predicate and, when its
// namespace is not declared on rdf:RDF, an xmlns attribute to add locally.
func (r *rdfxmlRun) predicateName(t Term) (name, decl string, err error) {
	iri, ok := t.(IRI)
	if !ok {
		return "", "", unsupportedNode(r.ec.format, PositionPredicate, t)
	}
	ns, local, ok := splitHashIRI(iri.Value)
	if !ok {
		ns, local, ok = splitXMLName(iri.Value)
	}
	if !ok || !validXMLChars(ns) {
		return "", "", &NodeError{
			Format:   r.ec.format,
			Position: PositionPredicate,
			Term:     iri,
			Err:      fmt.Errorf("%w: no XML name for predicate", ErrUnsupportedNode),
		}
	}
	if prefix, bound := r.ec.ns.Lookup(ns); bound {
		if prefix == "" {
			return local, "", nil
		}
		return prefix + ":" + local, "", nil
	}
	prefix, seen := r.auto[ns]
	if !seen {
		for {
			prefix = fmt.Sprintf("ns%d", r.autoSeq)
			r.autoSeq++
			if _, taken := r.ec.ns.byPrefix[prefix]; !taken {
				break
			}
		}
		r.auto[ns] = prefix
	}
	return prefix + ":" + local, ` xmlns:` + prefix + `="` + escapeXMLAttr(ns) + `"`, nil
}
