package rdf

import (
	"context"
	"io"
	"strconv"
	"testing"
)

func benchmarkQuads(n int) []Quad {
	var blanks BlankNodes
	quads := make([]Quad, 0, n*4)
	for i := 0; i < n; i++ {
		s := IRI{Value: "http://example.org/ns#s" + strconv.Itoa(i)}
		cell := blanks.New()
		quads = append(quads,
			Quad{S: s, P: IRI{Value: RDFType}, O: IRI{Value: "http://example.org/ns#Thing"}},
			Quad{S: s, P: IRI{Value: "http://example.org/ns#items"}, O: cell},
			Quad{S: cell, P: IRI{Value: RDFFirst}, O: Literal{Lexical: strconv.Itoa(i), Datatype: IRI{Value: XSDInteger}}},
			Quad{S: cell, P: IRI{Value: RDFRest}, O: IRI{Value: RDFNil}},
		)
	}
	return quads
}

func benchmarkSerialize(b *testing.B, format Format) {
	quads := benchmarkQuads(1000)
	s, err := NewSerializer(io.Discard, format)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.Serialize(context.Background(), nil, NewSliceIterator(quads)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTurtleSerialize(b *testing.B)   { benchmarkSerialize(b, FormatTurtle) }
func BenchmarkNTriplesSerialize(b *testing.B) { benchmarkSerialize(b, FormatNTriples) }
func BenchmarkRDFXMLSerialize(b *testing.B)   { benchmarkSerialize(b, FormatRDFXML) }
func BenchmarkJSONLDSerialize(b *testing.B)   { benchmarkSerialize(b, FormatJSONLD) }
