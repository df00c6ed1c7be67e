package rdf

import (
	"strconv"
	"strings"
)

// NamespaceMode controls what happens when an IRI's namespace has no prefix.
type NamespaceMode uint8

const (
	// NamespaceSynthesize binds unmapped namespaces to fresh nmN prefixes.
	NamespaceSynthesize NamespaceMode = iota
	// NamespaceLookup leaves unmapped namespaces without a compact form.
	NamespaceLookup
)

// Binding associates a prefix with a namespace IRI.
type Binding struct {
	Prefix    string
	Namespace string
}

// Namespaces is the per-run namespace table. Bindings are append-only:
// once a prefix or namespace is bound it keeps that binding.
type Namespaces struct {
	mode     NamespaceMode
	byNS     map[string]string
	byPrefix map[string]string
	order    []Binding
	next     int
}

// NewNamespaces returns a table pre-seeded with rdf, rdfs, xsd and owl.
func NewNamespaces(mode NamespaceMode) *Namespaces {
	n := &Namespaces{
		mode:     mode,
		byNS:     make(map[string]string),
		byPrefix: make(map[string]string),
	}
	for _, b := range wellKnownPrefixes {
		n.Register(b.Prefix, b.Namespace)
	}
	return n
}

// Register binds prefix to namespace. It reports false when either side is
// already bound to something else.
func (n *Namespaces) Register(prefix, namespace string) bool {
	if ns, ok := n.byPrefix[prefix]; ok {
		return ns == namespace
	}
	if _, ok := n.byNS[namespace]; ok {
		return false
	}
	n.byPrefix[prefix] = namespace
	n.byNS[namespace] = prefix
	n.order = append(n.order, Binding{Prefix: prefix, Namespace: namespace})
	return true
}

// Lookup returns the prefix bound to namespace.
func (n *Namespaces) Lookup(namespace string) (string, bool) {
	p, ok := n.byNS[namespace]
	return p, ok
}

// Bindings returns the bindings in registration order.
func (n *Namespaces) Bindings() []Binding {
	out := make([]Binding, len(n.order))
	copy(out, n.order)
	return out
}

// Observe registers the namespace of iri when the table synthesizes prefixes.
func (n *Namespaces) Observe(iri string) {
	n.ShortName(iri)
}

// ShortName splits iri into a prefix and local part. IRIs without '#',
// or whose local part is not a valid prefixed-name local, are not compactable.
func (n *Namespaces) ShortName(iri string) (prefix, local string, ok bool) {
	ns, local, ok := splitHashIRI(iri)
	if !ok {
		return "", "", false
	}
	prefix, bound := n.byNS[ns]
	if !bound {
		if n.mode != NamespaceSynthesize {
			return "", "", false
		}
		prefix = n.synthesize()
		n.Register(prefix, ns)
	}
	return prefix, local, true
}

// Compact returns iri as prefix:local when it can be compacted.
func (n *Namespaces) Compact(iri string) (string, bool) {
	prefix, local, ok := n.ShortName(iri)
	if !ok {
		return "", false
	}
	return prefix + ":" + local, true
}

// compactBound is Compact without synthesizing; emitters use it once the
// prefix declarations have been written.
func (n *Namespaces) compactBound(iri string) (string, bool) {
	ns, local, ok := splitHashIRI(iri)
	if !ok {
		return "", false
	}
	prefix, bound := n.byNS[ns]
	if !bound {
		return "", false
	}
	return prefix + ":" + local, true
}

func (n *Namespaces) synthesize() string {
	for {
		p := "nm" + strconv.Itoa(n.next)
		n.next++
		if _, taken := n.byPrefix[p]; !taken {
			return p
		}
	}
}

// splitHashIRI splits at the last '#', keeping '#' with the namespace.
func splitHashIRI(iri string) (ns, local string, ok bool) {
	idx := strings.LastIndexByte(iri, '#')
	if idx < 0 {
		return "", "", false
	}
	ns, local = iri[:idx+1], iri[idx+1:]
	if !isQNameLocal(local) || strings.HasSuffix(local, ".") {
		return "", "", false
	}
	return ns, local, true
}
