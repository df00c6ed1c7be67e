package rdf

import "strings"

// Format identifies RDF serialization formats.
type Format string

const (
	FormatTurtle   Format = "turtle"
	FormatTriG     Format = "trig"
	FormatNTriples Format = "ntriples"
	FormatNQuads   Format = "nquads"
	FormatRDFXML   Format = "rdfxml"
	FormatJSONLD   Format = "jsonld"
	// FormatXRDF is TriG extended with query variables and dynamic nodes.
	FormatXRDF Format = "xrdf"
)

// Formats lists every output format in a stable order.
func Formats() []Format {
	return []Format{FormatTurtle, FormatTriG, FormatNTriples, FormatNQuads, FormatRDFXML, FormatJSONLD, FormatXRDF}
}

// ParseFormat normalizes a format string.
func ParseFormat(value string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "turtle", "ttl":
		return FormatTurtle, true
	case "trig":
		return FormatTriG, true
	case "ntriples", "nt":
		return FormatNTriples, true
	case "nquads", "nq":
		return FormatNQuads, true
	case "rdfxml", "rdf", "xml":
		return FormatRDFXML, true
	case "jsonld", "json-ld", "json":
		return FormatJSONLD, true
	case "xrdf", "xrdf-trig":
		return FormatXRDF, true
	default:
		return "", false
	}
}

// SupportsGraphs reports whether the format can express named graphs.
func (f Format) SupportsGraphs() bool {
	switch f {
	case FormatTriG, FormatNQuads, FormatJSONLD, FormatXRDF:
		return true
	default:
		return false
	}
}

// foldsLists reports whether the format has a compact collection syntax.
func (f Format) foldsLists() bool {
	switch f {
	case FormatTurtle, FormatTriG, FormatJSONLD, FormatXRDF:
		return true
	default:
		return false
	}
}

// compactsNames reports whether unmapped namespaces receive synthesized prefixes.
func (f Format) compactsNames() bool {
	switch f {
	case FormatTurtle, FormatTriG, FormatJSONLD, FormatXRDF:
		return true
	default:
		return false
	}
}
