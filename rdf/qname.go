package rdf

import "strings"

func isQNameLocal(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		ch := value[i]
		if i == 0 {
			if !isNameStartChar(ch) {
				return false
			}
		} else if !isNameChar(ch) {
			return false
		}
	}
	return true
}

func isNameStartChar(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || ch == '_'
}

func isNameChar(ch byte) bool {
	return isNameStartChar(ch) || (ch >= '0' && ch <= '9') || ch == '-' || ch == '.'
}

// splitXMLName splits an IRI into namespace and an XML-name local part at the
// last '#' or '/'. It is the RDF/XML fallback for predicates whose namespace
// has no binding.
func splitXMLName(iri string) (ns, local string, ok bool) {
	idx := strings.LastIndexAny(iri, "#/")
	if idx < 0 || idx == len(iri)-1 {
		return "", "", false
	}
	ns, local = iri[:idx+1], iri[idx+1:]
	if !isQNameLocal(local) || strings.HasSuffix(local, ".") {
		return "", "", false
	}
	return ns, local, true
}
