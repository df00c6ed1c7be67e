package rdf

import (
	"io"
	"sort"
)

// QuadIterator yields quads one at a time. Next returns io.EOF after the
// last quad.
type QuadIterator interface {
	Next() (Quad, error)
}

// QuadIteratorFunc adapts a function to QuadIterator.
type QuadIteratorFunc func() (Quad, error)

// Next calls f.
func (f QuadIteratorFunc) Next() (Quad, error) { return f() }

type sliceIterator struct {
	quads []Quad
	pos   int
}

// NewSliceIterator iterates over quads in order.
func NewSliceIterator(quads []Quad) QuadIterator {
	return &sliceIterator{quads: quads}
}

func (it *sliceIterator) Next() (Quad, error) {
	if it.pos >= len(it.quads) {
		return Quad{}, io.EOF
	}
	q := it.quads[it.pos]
	it.pos++
	return q, nil
}

// Collect drains it into a slice.
func Collect(it QuadIterator) ([]Quad, error) {
	var out []Quad
	for {
		q, err := it.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, q)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
