package rdf

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// detectSampleSize is how much input DetectInputFormat looks at.
const detectSampleSize = 512

// DetectInputFormat guesses whether r holds JSON-LD or N-Quads from its first
// bytes, without consuming them. Only the formats ReadQuads accepts are
// detected.
func DetectInputFormat(r *bufio.Reader) (Format, bool) {
	sample, err := r.Peek(detectSampleSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return "", false
	}
	sample = bytes.TrimLeft(sample, " \t\r\n\ufeff")
	if len(sample) == 0 {
		return "", false
	}

	switch {
	case sample[0] == '{' || sample[0] == '[':
		return FormatJSONLD, true
	case sample[0] == '<' || bytes.HasPrefix(sample, []byte("_:")) || sample[0] == '#':
		// N-Triples lines are valid N-Quads.
		return FormatNQuads, true
	default:
		return "", false
	}
}

// ReadQuads returns an iterator over r parsed as format. N-Triples and
// N-Quads go through the N-Quads loader; JSON-LD is converted to RDF first.
func ReadQuads(ctx context.Context, r io.Reader, format Format, blanks *BlankNodes) (QuadIterator, error) {
	switch format {
	case FormatNQuads, FormatNTriples:
		return ReadNQuads(r, blanks)
	case FormatJSONLD:
		return ReadJSONLD(ctx, r, blanks)
	default:
		return nil, fmt.Errorf("%w: cannot read %q", ErrUnsupportedFormat, format)
	}
}
