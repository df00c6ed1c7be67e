package rdf

import (
	"context"
	"fmt"
	"os"
)

func ExampleNewSerializer() {
	quads := []Quad{
		{S: IRI{Value: "http://example.org/ns#alice"}, P: IRI{Value: RDFType}, O: IRI{Value: "http://example.org/ns#Person"}},
		{S: IRI{Value: "http://example.org/ns#alice"}, P: IRI{Value: "http://example.org/ns#name"}, O: Literal{Lexical: "Alice", Lang: "en"}},
	}

	s, err := NewSerializer(os.Stdout, FormatTurtle, OptPrefix("ex", "http://example.org/ns#"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := s.Serialize(context.Background(), nil, NewSliceIterator(quads)); err != nil {
		fmt.Println("error:", err)
	}

	// Output:
	// @prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .
	// @prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
	// @prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
	// @prefix owl: <http://www.w3.org/2002/07/owl#> .
	// @prefix ex: <http://example.org/ns#> .
	//
	// ex:alice a ex:Person ;
	//     ex:name "Alice"@en .
}

func ExampleSerializeQuads() {
	var blanks BlankNodes
	list := []BlankNode{blanks.New(), blanks.New()}
	quads := []Quad{
		{S: IRI{Value: "http://example.org/s"}, P: IRI{Value: "http://example.org/p"}, O: list[0], G: IRI{Value: "http://example.org/g"}},
		{S: list[0], P: IRI{Value: RDFFirst}, O: Literal{Lexical: "1", Datatype: IRI{Value: XSDInteger}}, G: IRI{Value: "http://example.org/g"}},
		{S: list[0], P: IRI{Value: RDFRest}, O: list[1], G: IRI{Value: "http://example.org/g"}},
		{S: list[1], P: IRI{Value: RDFFirst}, O: Literal{Lexical: "2", Datatype: IRI{Value: XSDInteger}}, G: IRI{Value: "http://example.org/g"}},
		{S: list[1], P: IRI{Value: RDFRest}, O: IRI{Value: RDFNil}, G: IRI{Value: "http://example.org/g"}},
	}

	if err := SerializeQuads(context.Background(), os.Stdout, FormatTriG, quads, nil); err != nil {
		fmt.Println("error:", err)
	}

	// Output:
	// @prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .
	// @prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
	// @prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
	// @prefix owl: <http://www.w3.org/2002/07/owl#> .
	//
	// GRAPH <http://example.org/g> {
	//     <http://example.org/s> <http://example.org/p> ( "1"^^xsd:integer "2"^^xsd:integer ) .
	// }
}

func ExampleSerializeQuads_nquads() {
	quads := []Quad{
		{S: IRI{Value: "http://example.org/s"}, P: IRI{Value: "http://example.org/p"}, O: Literal{Lexical: "v"}, G: IRI{Value: "http://example.org/g"}},
	}
	if err := SerializeQuads(context.Background(), os.Stdout, FormatNQuads, quads, nil); err != nil {
		fmt.Println("error:", err)
	}

	// Output:
	// <http://example.org/s> <http://example.org/p> "v" <http://example.org/g> .
}
