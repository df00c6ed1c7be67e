package rdf

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"
)

const rdfxmlRoot = `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"` +
	` xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#"` +
	` xmlns:xsd="http://www.w3.org/2001/XMLSchema#"` +
	` xmlns:owl="http://www.w3.org/2002/07/owl#"`

func TestRDFXMLDescriptions(t *testing.T) {
	var blanks BlankNodes
	b := blanks.New()
	quads := []Quad{
		{S: tst("s"), P: tst("name"), O: lit("a\tb & c")},
		{S: tst("s"), P: tst("rel"), O: IRI{Value: "http://ex.org/o?x=1&y=\"2\""}},
		{S: tst("s"), P: ex("p"), O: Literal{Lexical: "x<y", Lang: "en"}},
		{S: tst("s"), P: ex("q"), O: Literal{Lexical: "5", Datatype: IRI{Value: XSDInteger}}},
		{S: b, P: rdfIRI("type"), O: tst("Thing")},
		{S: tst("s"), P: tst("knows"), O: b},
	}
	got := serialize(t, FormatRDFXML, quads, OptPrefix("t", testNS))
	want := xmlDeclaration +
		rdfxmlRoot + ` xmlns:t="http://xowl.org/test#">` + "\n" +
		`    <rdf:Description rdf:about="http://xowl.org/test#s">` + "\n" +
		"        <t:name>a\tb &amp; c</t:name>\n" +
		`        <t:rel rdf:resource="http://ex.org/o?x=1&amp;y=&quot;2&quot;"/>` + "\n" +
		`        <ns0:p xmlns:ns0="http://ex.org/" xml:lang="en">x&lt;y</ns0:p>` + "\n" +
		`        <ns0:q xmlns:ns0="http://ex.org/" rdf:datatype="http://www.w3.org/2001/XMLSchema#integer">5</ns0:q>` + "\n" +
		`        <t:knows rdf:nodeID="b0"/>` + "\n" +
		"    </rdf:Description>\n" +
		`    <rdf:Description rdf:nodeID="b0">` + "\n" +
		`        <rdf:type rdf:resource="http://xowl.org/test#Thing"/>` + "\n" +
		"    </rdf:Description>\n" +
		"</rdf:RDF>\n"
	if got != want {
		t.Fatalf("unexpected rdfxml:\n%s\nwant:\n%s", got, want)
	}
	assertWellFormedXML(t, got)
}

func TestRDFXMLDoesNotSynthesizeRootPrefixes(t *testing.T) {
	got := serialize(t, FormatRDFXML, []Quad{
		{S: ex("s"), P: IRI{Value: "http://other.org/vocab#p"}, O: lit("v")},
	})
	if strings.Contains(got, "nm0") {
		t.Fatalf("expected no synthesized prefixes, got:\n%s", got)
	}
	if !strings.Contains(got, `<ns0:p xmlns:ns0="http://other.org/vocab#">v</ns0:p>`) {
		t.Fatalf("expected element-local namespace, got:\n%s", got)
	}
	assertWellFormedXML(t, got)
}

func TestRDFXMLSkipsUnrepresentableStatements(t *testing.T) {
	quads := []Quad{
		{S: ex("s"), P: IRI{Value: "http://ex.org/"}, O: lit("no local name")},
		{S: ex("s"), P: ex("p"), O: lit("bad \x00 char")},
		{S: ex("s"), P: ex("p"), O: lit("kept")},
		{S: ex("t"), P: IRI{Value: "urn:x"}, O: lit("dropped subject")},
	}
	got, logs := serializeLogged(t, FormatRDFXML, quads)
	want := xmlDeclaration +
		rdfxmlRoot + ">\n" +
		`    <rdf:Description rdf:about="http://ex.org/s">` + "\n" +
		`        <ns0:p xmlns:ns0="http://ex.org/">kept</ns0:p>` + "\n" +
		"    </rdf:Description>\n" +
		"</rdf:RDF>\n"
	if got != want {
		t.Fatalf("unexpected rdfxml:\n%s\nwant:\n%s", got, want)
	}
	if n := logs.FilterMessage("skipping statement").Len(); n != 3 {
		t.Fatalf("expected 3 skipped statements, got %d", n)
	}
	assertWellFormedXML(t, got)
}

func TestRDFXMLDoesNotFoldLists(t *testing.T) {
	var blanks BlankNodes
	cells := []BlankNode{blanks.New()}
	quads := append([]Quad{{S: ex("s"), P: tst("p"), O: cells[0]}}, chain(cells, lit("1"))...)
	got := serialize(t, FormatRDFXML, quads, OptPrefix("t", testNS))
	if !strings.Contains(got, `<rdf:rest rdf:resource="http://www.w3.org/1999/02/22-rdf-syntax-ns#nil"/>`) {
		t.Fatalf("expected flat list cells, got:\n%s", got)
	}
}

func TestXMLEscaping(t *testing.T) {
	if got := escapeXMLAttr("a\tb\"c\nd\r<&>"); got != "a&#9;b&quot;c&#10;d&#13;&lt;&amp;&gt;" {
		t.Fatalf("unexpected attribute escaping %q", got)
	}
	if got := escapeXMLText("a\tb\"c\nd\r<&>"); got != "a\tb\"c\nd&#13;&lt;&amp;&gt;" {
		t.Fatalf("unexpected text escaping %q", got)
	}
	if validXMLChars("a\x00b") || validXMLChars("\xff") || !validXMLChars("tab\there é") {
		t.Fatal("unexpected XML character validation")
	}
}

func assertWellFormedXML(t *testing.T, doc string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return
		}
		if err != nil {
			t.Fatalf("malformed XML: %v\n%s", err, doc)
		}
	}
}
