package rdf

import "strconv"

// BlankRenamer assigns dense output labels to blank nodes in the order they
// are first seen. Labels start at 0 and never change within one run.
type BlankRenamer struct {
	ids map[uint64]int
}

// NewBlankRenamer returns an empty renamer.
func NewBlankRenamer() *BlankRenamer {
	return &BlankRenamer{ids: make(map[uint64]int)}
}

// IDFor returns the integer assigned to b, allocating the next one on first use.
func (r *BlankRenamer) IDFor(b BlankNode) int {
	if id, ok := r.ids[b.ID]; ok {
		return id
	}
	id := len(r.ids)
	r.ids[b.ID] = id
	return id
}

// Label returns the output label for b without the "_:" prefix.
func (r *BlankRenamer) Label(b BlankNode) string {
	return "b" + strconv.Itoa(r.IDFor(b))
}

// Len returns the number of blank nodes seen so far.
func (r *BlankRenamer) Len() int { return len(r.ids) }
