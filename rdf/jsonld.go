package rdf

import (
	"encoding/json"

	"go.uber.org/zap"
)

// jsonldWriter writes expanded JSON-LD: a top-level array of node objects,
// with each named graph attached through @graph to the node object that
// shares its @id.
type jsonldWriter struct{}

func (jsonldWriter) writeDataset(ec *emitContext, ds *Dataset) error {
	top := jsonldNodes(ec, ds.Default())
	byID := make(map[string]map[string]interface{}, len(top))
	for _, n := range top {
		byID[n["@id"].(string)] = n
	}

	for _, g := range ds.NamedGraphs() {
		id, err := jsonldID(ec, g.Name)
		if err != nil {
			ec.log.Error("dropping named graph", zap.Error(err))
			continue
		}
		members := jsonldNodes(ec, g)
		graph := make([]interface{}, len(members))
		for i, m := range members {
			graph[i] = m
		}
		if node, ok := byID[id]; ok {
			node["@graph"] = graph
			continue
		}
		node := map[string]interface{}{"@id": id, "@graph": graph}
		byID[id] = node
		top = append(top, node)
	}

	doc := make([]interface{}, len(top))
	for i, n := range top {
		doc[i] = n
	}

	var out interface{} = doc
	if ec.opts.JSONLDCompact {
		compacted, err := compactJSONLD(doc, jsonldContext(ec))
		if err != nil {
			return err
		}
		out = compacted
	}

	enc := json.NewEncoder(ec.out)
	enc.SetEscapeHTML(false)
	if ec.opts.Pretty {
		enc.SetIndent("", ec.opts.Indent)
	}
	// Encode only fails on unsupported values or sink errors; the sink keeps
	// its own error for the caller.
	if err := enc.Encode(out); err != nil && ec.out.err == nil {
		return err
	}
	return nil
}

// jsonldNodes builds one node object per description of g.
func jsonldNodes(ec *emitContext, g *Graph) []map[string]interface{} {
	var nodes []map[string]interface{}
	for _, d := range g.Descriptions() {
		id, err := jsonldID(ec, d.Subject)
		if err != nil {
			ec.log.Error("skipping subject", zap.Error(err))
			continue
		}
		node := map[string]interface{}{"@id": id}
		for _, p := range d.Properties {
			pred, ok := p.Predicate.(IRI)
			if !ok {
				ec.log.Error("skipping statement", zap.Error(unsupportedNode(ec.format, PositionPredicate, p.Predicate)))
				continue
			}
			if pred.Value == RDFType && !p.Object.IsList() {
				if typ, err := jsonldID(ec, p.Object.Term); err == nil {
					node["@type"] = appendValue(node["@type"], typ)
					continue
				}
			}
			value, err := jsonldValue(ec, p.Object)
			if err != nil {
				ec.log.Error("skipping statement", zap.Error(err), zap.String("subject", id))
				continue
			}
			node[pred.Value] = appendValue(node[pred.Value], value)
		}
		nodes = append(nodes, node)
	}
	return nodes
}

func appendValue(existing interface{}, v interface{}) []interface{} {
	list, _ := existing.([]interface{})
	return append(list, v)
}

// jsonldID renders a node reference: the IRI itself or a _:bN label.
func jsonldID(ec *emitContext, t Term) (string, error) {
	switch v := t.(type) {
	case IRI:
		return v.Value, nil
	case BlankNode:
		return "_:" + ec.blanks.Label(v), nil
	case Literal:
		return "", unsupportedNode(ec.format, PositionSubject, v)
	case Variable:
		return "", unsupportedNode(ec.format, PositionSubject, v)
	case Dynamic:
		return "", unsupportedNode(ec.format, PositionSubject, v)
	default:
		return "", unsupportedNode(ec.format, PositionSubject, t)
	}
}

func jsonldValue(ec *emitContext, o Object) (interface{}, error) {
	if o.IsList() {
		items := make([]interface{}, len(o.Items))
		for i, item := range o.Items {
			v, err := jsonldValue(ec, item)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return map[string]interface{}{"@list": items}, nil
	}
	switch v := o.Term.(type) {
	case IRI, BlankNode:
		id, err := jsonldID(ec, v)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"@id": id}, nil
	case Literal:
		value := map[string]interface{}{"@value": v.Lexical}
		switch {
		case v.Lang != "":
			value["@language"] = v.Lang
		case !v.IsPlain():
			value["@type"] = v.Datatype.Value
		}
		return value, nil
	case Variable:
		return nil, unsupportedNode(ec.format, PositionObject, v)
	case Dynamic:
		return nil, unsupportedNode(ec.format, PositionObject, v)
	default:
		return nil, unsupportedNode(ec.format, PositionObject, o.Term)
	}
}

// jsonldContext returns the caller's context, or one mapping every bound
// prefix to its namespace.
func jsonldContext(ec *emitContext) map[string]interface{} {
	if ec.opts.JSONLDContext != nil {
		return ec.opts.JSONLDContext
	}
	ctx := make(map[string]interface{})
	for _, b := range ec.ns.Bindings() {
		if b.Prefix == "" {
			ctx["@vocab"] = b.Namespace
			continue
		}
		ctx[b.Prefix] = b.Namespace
	}
	return ctx
}
