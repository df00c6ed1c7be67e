// Package rdf renders streams of RDF quads as structured documents.
//
// A Serializer consumes a QuadIterator, groups the quads by graph and subject,
// folds rdf:first/rdf:rest chains into collections, and writes one of:
//   - Turtle and TriG, with @prefix declarations, predicate grouping and ( ... ) lists
//   - N-Triples and N-Quads, one fully expanded statement per line
//   - RDF/XML, one rdf:Description per subject
//   - JSON-LD in expanded form, optionally compacted
//   - xRDF, TriG extended with ?variables and $(dynamic) nodes
//
// Blank nodes are relabelled _:b0, _:b1, ... in the order they are first seen,
// and IRIs whose namespace ends in '#' are shortened to prefixed names. Each
// Serialize call starts from fresh namespace and blank node tables.
//
// Statements a format cannot express are reported to the logger and skipped;
// only iterator errors, cancellation and output failures end a run.
//
// Example:
//
//	s, err := rdf.NewSerializer(os.Stdout, rdf.FormatTurtle,
//	    rdf.OptPrefix("ex", "http://example.org/ns#"))
//	if err != nil {
//	    // handle error
//	}
//	err = s.Serialize(ctx, log, rdf.NewSliceIterator(quads))
package rdf
