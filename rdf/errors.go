package rdf

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeUnsupportedFormat indicates an unsupported format.
	ErrCodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	// ErrCodeUnsupportedNode indicates a node kind the target format cannot express.
	ErrCodeUnsupportedNode ErrorCode = "UNSUPPORTED_NODE_TYPE"
	// ErrCodeInvalidQuad indicates a quad with a missing component.
	ErrCodeInvalidQuad ErrorCode = "INVALID_QUAD"
	// ErrCodeIOError indicates an I/O error.
	ErrCodeIOError ErrorCode = "IO_ERROR"
	// ErrCodeContextCanceled indicates the context was canceled.
	ErrCodeContextCanceled ErrorCode = "CONTEXT_CANCELED"
	// ErrCodeSerializeError indicates a general serialization error.
	ErrCodeSerializeError ErrorCode = "SERIALIZE_ERROR"
)

var (
	// ErrUnsupportedFormat indicates an unsupported format.
	ErrUnsupportedFormat = errors.New("unsupported RDF format")
	// ErrUnsupportedNode indicates a node kind that cannot appear in a position.
	ErrUnsupportedNode = errors.New("rdf: unsupported node type")
	// ErrInvalidQuad indicates a quad with a nil subject, predicate or object, or
	// a term that is malformed in itself.
	ErrInvalidQuad = errors.New("rdf: invalid quad")
	// ErrConflictingLiteral indicates a literal with both a language tag and a
	// datatype other than rdf:langString. It is an ErrInvalidQuad.
	ErrConflictingLiteral = fmt.Errorf("%w: literal has both a language and a datatype", ErrInvalidQuad)
)

// Code returns the error code for an error, or ErrCodeSerializeError if unknown.
// Returns empty string for nil errors or io.EOF.
func Code(err error) ErrorCode {
	if err == nil || err == io.EOF {
		return ""
	}

	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		return ErrCodeUnsupportedFormat
	case errors.Is(err, ErrUnsupportedNode):
		return ErrCodeUnsupportedNode
	case errors.Is(err, ErrInvalidQuad):
		return ErrCodeInvalidQuad
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ErrCodeContextCanceled
	}

	var writeErr *WriteError
	if errors.As(err, &writeErr) {
		return ErrCodeIOError
	}
	return ErrCodeSerializeError
}

// Position names the slot of a quad a term occupies.
type Position uint8

const (
	PositionSubject Position = iota
	PositionPredicate
	PositionObject
	PositionGraph
)

func (p Position) String() string {
	switch p {
	case PositionSubject:
		return "subject"
	case PositionPredicate:
		return "predicate"
	case PositionObject:
		return "object"
	case PositionGraph:
		return "graph"
	default:
		return "unknown"
	}
}

// NodeError reports a term that the target format cannot carry in its position.
type NodeError struct {
	Format   Format
	Position Position
	Term     Term
	Err      error
}

func (e *NodeError) Error() string {
	if e.Term == nil {
		return fmt.Sprintf("%s: missing %s: %v", e.Format, e.Position, e.Err)
	}
	return fmt.Sprintf("%s: %s %s in %s position: %v", e.Format, e.Term.Kind(), e.Term, e.Position, e.Err)
}

func (e *NodeError) Unwrap() error { return e.Err }

// WriteError reports a failure of the output sink.
type WriteError struct {
	Format Format
	Err    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s: write failed: %v", e.Format, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

func unsupportedNode(format Format, pos Position, t Term) error {
	return &NodeError{Format: format, Position: pos, Term: t, Err: ErrUnsupportedNode}
}
