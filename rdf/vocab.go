package rdf

// Namespaces pre-registered with every namespace table.
const (
	RDFNamespace  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"
	XSDNamespace  = "http://www.w3.org/2001/XMLSchema#"
	OWLNamespace  = "http://www.w3.org/2002/07/owl#"
)

// Frequently used vocabulary terms.
const (
	RDFType       = RDFNamespace + "type"
	RDFFirst      = RDFNamespace + "first"
	RDFRest       = RDFNamespace + "rest"
	RDFNil        = RDFNamespace + "nil"
	RDFLangString = RDFNamespace + "langString"

	XSDString  = XSDNamespace + "string"
	XSDInteger = XSDNamespace + "integer"
	XSDBoolean = XSDNamespace + "boolean"
	XSDDecimal = XSDNamespace + "decimal"
	XSDDouble  = XSDNamespace + "double"
)

var wellKnownPrefixes = []Binding{
	{Prefix: "rdf", Namespace: RDFNamespace},
	{Prefix: "rdfs", Namespace: RDFSNamespace},
	{Prefix: "xsd", Namespace: XSDNamespace},
	{Prefix: "owl", Namespace: OWLNamespace},
}
