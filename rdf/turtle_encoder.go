package rdf

import (
	"strings"

	"go.uber.org/zap"
)

// nodeRenderer turns one term into its textual form. It returns a
// *NodeError for kinds the syntax has no form for.
type nodeRenderer interface {
	render(ec *emitContext, t Term) (string, error)
}

// graphWrapper decides how each graph's block is framed.
type graphWrapper interface {
	// open writes the graph header and returns the indentation for its statements.
	open(ec *emitContext, nodes nodeRenderer, g *Graph) (string, bool)
	close(ec *emitContext, g *Graph)
}

// turtleWriter writes Turtle, TriG and xRDF. The formats differ only in how
// nodes render and whether named graphs are wrapped.
type turtleWriter struct {
	nodes  nodeRenderer
	graphs graphWrapper
}

func (w *turtleWriter) writeDataset(ec *emitContext, ds *Dataset) error {
	for _, b := range ec.ns.Bindings() {
		ec.out.WriteString("@prefix " + b.Prefix + ": <" + escapeIRI(b.Namespace) + "> .\n")
	}
	for _, g := range ds.Graphs() {
		indent, ok := w.graphs.open(ec, w.nodes, g)
		if !ok {
			continue
		}
		for i, d := range g.Descriptions() {
			if i > 0 || g.IsDefault() {
				ec.out.WriteString("\n")
			}
			w.writeDescription(ec, d, indent)
		}
		w.graphs.close(ec, g)
	}
	return nil
}

type predicateGroup struct {
	predicate Term
	objects   []Object
}

// groupByPredicate keeps predicates in first-appearance order.
func groupByPredicate(props []Property) []*predicateGroup {
	var groups []*predicateGroup
	index := make(map[Term]*predicateGroup, len(props))
	for _, p := range props {
		g, ok := index[p.Predicate]
		if !ok {
			g = &predicateGroup{predicate: p.Predicate}
			index[p.Predicate] = g
			groups = append(groups, g)
		}
		g.objects = append(g.objects, p.Object)
	}
	return groups
}

func (w *turtleWriter) writeDescription(ec *emitContext, d *Description, indent string) {
	subject, err := w.nodes.render(ec, d.Subject)
	if err != nil {
		ec.log.Error("skipping subject", zap.Error(err))
		return
	}

	var lines []string
	for _, g := range groupByPredicate(d.Properties) {
		pred, err := w.renderPredicate(ec, g.predicate)
		if err != nil {
			ec.log.Error("skipping predicate", zap.Error(err), zap.String("subject", subject))
			continue
		}
		objs := make([]string, 0, len(g.objects))
		for _, o := range g.objects {
			s, err := w.renderObject(ec, o)
			if err != nil {
				ec.log.Error("skipping object", zap.Error(err), zap.String("subject", subject), zap.String("predicate", pred))
				continue
			}
			objs = append(objs, s)
		}
		if len(objs) == 0 {
			continue
		}
		lines = append(lines, pred+" "+strings.Join(objs, ", "))
	}
	if len(lines) == 0 {
		return
	}

	ec.out.WriteString(indent + subject + " " + lines[0])
	for _, line := range lines[1:] {
		ec.out.WriteString(" ;\n" + indent + ec.opts.Indent + line)
	}
	ec.out.WriteString(" .\n")
}

func (w *turtleWriter) renderPredicate(ec *emitContext, p Term) (string, error) {
	if isIRI(p, RDFType) {
		return "a", nil
	}
	return w.nodes.render(ec, p)
}

func (w *turtleWriter) renderObject(ec *emitContext, o Object) (string, error) {
	if !o.IsList() {
		return w.nodes.render(ec, o.Term)
	}
	if len(o.Items) == 0 {
		return "()", nil
	}
	items := make([]string, len(o.Items))
	for i, item := range o.Items {
		s, err := w.renderObject(ec, item)
		if err != nil {
			return "", err
		}
		items[i] = s
	}
	return "( " + strings.Join(items, " ") + " )", nil
}

// turtleNodes renders the terms Turtle and TriG can express.
type turtleNodes struct{}

func (turtleNodes) render(ec *emitContext, t Term) (string, error) {
	switch v := t.(type) {
	case IRI:
		return renderCompactIRI(ec.ns, v.Value), nil
	case BlankNode:
		return "_:" + ec.blanks.Label(v), nil
	case Literal:
		return renderTurtleLiteral(ec.ns, v), nil
	case Variable:
		return "", unsupportedNode(ec.format, PositionObject, v)
	case Dynamic:
		return "", unsupportedNode(ec.format, PositionObject, v)
	default:
		return "", unsupportedNode(ec.format, PositionObject, t)
	}
}

// xrdfNodes adds variables and dynamic nodes to the Turtle terms.
type xrdfNodes struct {
	turtleNodes
}

func (n xrdfNodes) render(ec *emitContext, t Term) (string, error) {
	switch v := t.(type) {
	case Variable:
		return "?" + v.Name, nil
	case Dynamic:
		return "$(" + v.Expression + ")", nil
	default:
		return n.turtleNodes.render(ec, t)
	}
}

func renderCompactIRI(ns *Namespaces, iri string) string {
	if qname, ok := ns.compactBound(iri); ok {
		return qname
	}
	return "<" + escapeIRI(iri) + ">"
}

func renderTurtleLiteral(ns *Namespaces, l Literal) string {
	s := `"` + escapeString(l.Lexical) + `"`
	switch {
	case l.Lang != "":
		return s + "@" + l.Lang
	case l.IsPlain():
		return s
	default:
		return s + "^^" + renderCompactIRI(ns, l.Datatype.Value)
	}
}

// flatGraphs writes only the default graph; Turtle has no named graphs.
type flatGraphs struct{}

func (flatGraphs) open(ec *emitContext, _ nodeRenderer, g *Graph) (string, bool) {
	if !g.IsDefault() {
		ec.log.Error("dropping named graph", zap.Error(unsupportedNode(ec.format, PositionGraph, g.Name)))
		return "", false
	}
	return "", true
}

func (flatGraphs) close(*emitContext, *Graph) {}

// trigGraphs wraps each named graph in GRAPH <name> { ... }.
type trigGraphs struct{}

func (trigGraphs) open(ec *emitContext, nodes nodeRenderer, g *Graph) (string, bool) {
	if g.IsDefault() {
		return "", true
	}
	name, err := nodes.render(ec, g.Name)
	if err != nil {
		ec.log.Error("dropping named graph", zap.Error(err))
		return "", false
	}
	ec.out.WriteString("\nGRAPH " + name + " {\n")
	return ec.opts.Indent, true
}

func (trigGraphs) close(ec *emitContext, g *Graph) {
	if !g.IsDefault() {
		ec.out.WriteString("}\n")
	}
}
