package rdf

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/rdf-serializer/logger"
)

func TestNewSerializerUnsupportedFormat(t *testing.T) {
	_, err := NewSerializer(&bytes.Buffer{}, Format("bogus"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if Code(err) != ErrCodeUnsupportedFormat {
		t.Fatalf("unexpected code %s", Code(err))
	}
}

func TestNewSerializerNilWriter(t *testing.T) {
	if _, err := NewSerializer(nil, FormatTurtle); err == nil {
		t.Fatal("expected error for nil writer")
	}
}

func TestSerializersWriteEveryFormat(t *testing.T) {
	quad := Quad{S: ex("s"), P: ex("p"), O: lit("v")}
	for _, format := range Formats() {
		var buf bytes.Buffer
		s, err := NewSerializer(&buf, format)
		if err != nil {
			t.Fatalf("format %s: %v", format, err)
		}
		if s.Format() != format {
			t.Fatalf("format %s: Format() returned %s", format, s.Format())
		}
		if err := s.Serialize(context.Background(), nil, NewSliceIterator([]Quad{quad})); err != nil {
			t.Fatalf("format %s: serialize error %v", format, err)
		}
		if !strings.Contains(buf.String(), "v") {
			t.Fatalf("format %s: literal missing from output %q", format, buf.String())
		}
	}
}

func TestSerializersSkipInvalidUTF8(t *testing.T) {
	quads := []Quad{
		{S: ex("s"), P: ex("p"), O: lit("a\xffb")},
		{S: ex("s"), P: ex("p"), O: Literal{Lexical: "v", Lang: "e\xc3"}},
		{S: IRI{Value: "http://ex.org/\xfe"}, P: ex("p"), O: lit("v")},
		{S: ex("s"), P: ex("p"), O: lit("kept")},
	}
	for _, format := range Formats() {
		got, logs := serializeLogged(t, format, quads)
		if !utf8.ValidString(got) {
			t.Fatalf("format %s: output is not valid UTF-8: %q", format, got)
		}
		if strings.ContainsRune(got, utf8.RuneError) || strings.Contains(got, `\ufffd`) {
			t.Fatalf("format %s: invalid bytes were replaced instead of skipped: %q", format, got)
		}
		if !strings.Contains(got, "kept") {
			t.Fatalf("format %s: valid statement missing from %q", format, got)
		}
		if n := logs.FilterMessage("skipping statement").Len(); n != 3 {
			t.Fatalf("format %s: expected 3 skipped statements, got %d", format, n)
		}
	}
}

func TestSerializerWriteError(t *testing.T) {
	quad := Quad{S: ex("s"), P: ex("p"), O: lit("v")}
	for _, format := range Formats() {
		log, logs := logger.NewObserverLogger("debug")
		s, err := NewSerializer(failingWriter{}, format)
		if err != nil {
			t.Fatalf("format %s: %v", format, err)
		}
		err = s.Serialize(context.Background(), log, NewSliceIterator([]Quad{quad}))

		var writeErr *WriteError
		if !errors.As(err, &writeErr) {
			t.Fatalf("format %s: expected WriteError, got %v", format, err)
		}
		if !errors.Is(err, io.ErrClosedPipe) {
			t.Fatalf("format %s: expected the writer's error to be wrapped, got %v", format, err)
		}
		if Code(err) != ErrCodeIOError {
			t.Fatalf("format %s: unexpected code %s", format, Code(err))
		}
		if logs.FilterMessage("write failed").Len() != 1 {
			t.Fatalf("format %s: expected a write failure log", format)
		}
	}
}

func TestSerializerContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	s, err := NewSerializer(&buf, FormatTurtle)
	require.NoError(t, err)
	err = s.Serialize(ctx, nil, NewSliceIterator([]Quad{{S: ex("s"), P: ex("p"), O: lit("v")}}))
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, ErrCodeContextCanceled, Code(err))
	require.Zero(t, buf.Len())
}

func TestSerializerIteratorError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	it := QuadIteratorFunc(func() (Quad, error) {
		calls++
		if calls == 1 {
			return Quad{S: ex("s"), P: ex("p"), O: lit("v")}, nil
		}
		return Quad{}, boom
	})

	var buf bytes.Buffer
	s, err := NewSerializer(&buf, FormatNQuads)
	require.NoError(t, err)
	err = s.Serialize(context.Background(), nil, it)
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "reading quads")
	require.Equal(t, ErrCodeSerializeError, Code(err))
	require.Zero(t, buf.Len())
}

func TestSerializerReuseStartsFresh(t *testing.T) {
	var blanks BlankNodes
	b := blanks.New()
	quads := []Quad{
		{S: b, P: IRI{Value: "http://other.org/vocab#p"}, O: lit("v")},
		{S: ex("s"), P: ex("p"), O: b},
	}

	var buf bytes.Buffer
	s, err := NewSerializer(&buf, FormatTurtle)
	require.NoError(t, err)

	require.NoError(t, s.Serialize(context.Background(), nil, NewSliceIterator(quads)))
	first := buf.String()
	buf.Reset()
	require.NoError(t, s.Serialize(context.Background(), nil, NewSliceIterator(quads)))

	require.Equal(t, first, buf.String())
	require.Contains(t, first, "@prefix nm0: <http://other.org/vocab#> .\n")
	require.Contains(t, first, "_:b0 nm0:p \"v\" .\n")
}

func TestSerializerPrefixConflict(t *testing.T) {
	got, logs := serializeLogged(t, FormatTurtle,
		[]Quad{{S: ex("s"), P: rdfIRI("type"), O: tst("Foo")}},
		OptPrefix("rdf", "http://other.org/rdf#"),
		OptPrefix("t", testNS),
		OptPrefix("again", testNS),
	)
	require.True(t, strings.HasPrefix(got, wellKnownHeader+"@prefix t: <http://xowl.org/test#> .\n\n"), "output:\n%s", got)
	require.Contains(t, got, "<http://ex.org/s> a t:Foo .\n")
	require.Equal(t, 2, logs.FilterMessage("prefix binding conflicts with an earlier one; ignoring").Len())
}

func TestSerializerSummaryLog(t *testing.T) {
	var blanks BlankNodes
	cells := []BlankNode{blanks.New()}
	quads := append([]Quad{
		{S: ex("s"), P: ex("p"), O: cells[0]},
		{S: ex("s"), P: ex("p"), O: Variable{Name: "x"}},
	}, chain(cells, lit("1"))...)

	_, logs := serializeLogged(t, FormatTurtle, quads)
	entries := logs.FilterMessage("serialized dataset").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "turtle", fields["format"])
	require.EqualValues(t, 3, fields["quads"])
	require.EqualValues(t, 1, fields["skipped"])
	require.EqualValues(t, 1, fields["collections"])
	require.EqualValues(t, 1, fields["blank_nodes"])
}
