package rdf

import (
	"go.uber.org/zap"
)

// ntWriter writes N-Triples and N-Quads: one line per statement, full IRIs,
// no grouping.
type ntWriter struct{}

func (ntWriter) writeDataset(ec *emitContext, ds *Dataset) error {
	for _, g := range ds.Graphs() {
		graph := ""
		if !g.IsDefault() {
			name, err := renderNTTerm(ec, g.Name)
			if err != nil {
				ec.log.Error("dropping named graph", zap.Error(err))
				continue
			}
			graph = " " + name
		}
		for _, d := range g.Descriptions() {
			subject, err := renderNTTerm(ec, d.Subject)
			if err != nil {
				ec.log.Error("skipping subject", zap.Error(err))
				continue
			}
			for _, p := range d.Properties {
				pred, err := renderNTTerm(ec, p.Predicate)
				if err != nil {
					ec.log.Error("skipping statement", zap.Error(err))
					continue
				}
				obj, err := renderNTTerm(ec, p.Object.Term)
				if err != nil {
					ec.log.Error("skipping statement", zap.Error(err))
					continue
				}
				ec.out.WriteString(subject + " " + pred + " " + obj + graph + " .\n")
			}
		}
	}
	return nil
}

func renderNTTerm(ec *emitContext, t Term) (string, error) {
	switch v := t.(type) {
	case IRI:
		return renderIRI(v), nil
	case BlankNode:
		return "_:" + ec.blanks.Label(v), nil
	case Literal:
		return renderNTLiteral(v), nil
	case Variable:
		return "", unsupportedNode(ec.format, PositionObject, v)
	case Dynamic:
		return "", unsupportedNode(ec.format, PositionObject, v)
	default:
		return "", unsupportedNode(ec.format, PositionObject, t)
	}
}

func renderIRI(iri IRI) string {
	return "<" + escapeIRI(iri.Value) + ">"
}

func renderNTLiteral(l Literal) string {
	s := `"` + escapeString(l.Lexical) + `"`
	switch {
	case l.Lang != "":
		return s + "@" + l.Lang
	case l.IsPlain():
		return s
	default:
		return s + "^^" + renderIRI(l.Datatype)
	}
}
