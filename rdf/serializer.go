package rdf

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/geoknoesis/rdf-serializer/logger"
)

// Serializer renders a quad stream in one output format.
//
// Each call to Serialize builds fresh namespace and blank node tables, so one
// Serializer may be reused for several sequential runs. It must not be used
// from multiple goroutines at once.
type Serializer interface {
	Format() Format
	// Serialize reads quads until io.EOF, then writes the whole document.
	// Statements the format cannot express are logged and skipped. Iterator
	// errors, context cancellation and write failures end the call.
	Serialize(ctx context.Context, log logger.Logger, quads QuadIterator) error
}

// datasetWriter renders a finished dataset. It writes through ec.out and
// may return an error only for failures that end the run.
type datasetWriter interface {
	writeDataset(ec *emitContext, ds *Dataset) error
}

// emitContext carries the per-run state shared by every format.
type emitContext struct {
	format Format
	out    *sink
	ns     *Namespaces
	blanks *BlankRenamer
	opts   Options
	log    logger.Logger
}

type serializer struct {
	w      io.Writer
	format Format
	opts   Options
	writer datasetWriter
}

// NewSerializer returns a serializer writing format to w.
func NewSerializer(w io.Writer, format Format, opts ...Option) (Serializer, error) {
	if w == nil {
		return nil, fmt.Errorf("rdf: nil writer")
	}
	dw, err := writerFor(format)
	if err != nil {
		return nil, err
	}
	return &serializer{w: w, format: format, opts: applyOptions(opts...), writer: dw}, nil
}

func writerFor(format Format) (datasetWriter, error) {
	switch format {
	case FormatTurtle:
		return &turtleWriter{nodes: turtleNodes{}, graphs: flatGraphs{}}, nil
	case FormatTriG:
		return &turtleWriter{nodes: turtleNodes{}, graphs: trigGraphs{}}, nil
	case FormatXRDF:
		return &turtleWriter{nodes: xrdfNodes{}, graphs: trigGraphs{}}, nil
	case FormatNTriples, FormatNQuads:
		return ntWriter{}, nil
	case FormatRDFXML:
		return &rdfxmlWriter{}, nil
	case FormatJSONLD:
		return jsonldWriter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func (s *serializer) Format() Format { return s.format }

func (s *serializer) Serialize(ctx context.Context, log logger.Logger, quads QuadIterator) error {
	log = logger.OrNoop(log).With(zap.String("format", string(s.format)))

	mode := NamespaceLookup
	if s.format.compactsNames() {
		mode = NamespaceSynthesize
	}
	ns := NewNamespaces(mode)
	for _, b := range s.opts.Prefixes {
		if !ns.Register(b.Prefix, b.Namespace) {
			log.Warn("prefix binding conflicts with an earlier one; ignoring",
				zap.String("prefix", b.Prefix), zap.String("namespace", b.Namespace))
		}
	}
	blanks := NewBlankRenamer()
	agg := NewAggregator(s.format, ns, blanks)

	skipped := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		q, err := quads.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%s: reading quads: %w", s.format, err)
		}
		if err := agg.Enqueue(q); err != nil {
			log.Error("skipping statement", zap.Error(err), zap.Stringer("quad", q))
			skipped++
		}
	}

	ds := agg.Dataset()
	folded := 0
	if s.format.foldsLists() {
		folded = ReconstructLists(ds, s.opts.ListPolicy, log)
	}

	ec := &emitContext{
		format: s.format,
		out:    newSink(s.w),
		ns:     ns,
		blanks: blanks,
		opts:   s.opts,
		log:    log,
	}
	err := s.writer.writeDataset(ec, ds)
	if err == nil {
		err = ec.out.flush()
	}
	if ec.out.err != nil {
		log.Error("write failed", zap.Error(ec.out.err))
		return &WriteError{Format: s.format, Err: ec.out.err}
	}
	if err != nil {
		return err
	}

	log.Debug("serialized dataset",
		zap.Int("quads", agg.Count()),
		zap.Int("skipped", skipped),
		zap.Int("collections", folded),
		zap.Int("blank_nodes", blanks.Len()))
	return nil
}

// sink is a buffered writer that remembers its first error; later writes
// become no-ops.
type sink struct {
	w   *bufio.Writer
	err error
}

func newSink(w io.Writer) *sink {
	return &sink{w: bufio.NewWriter(w)}
}

func (s *sink) WriteString(v string) {
	if s.err != nil {
		return
	}
	_, s.err = s.w.WriteString(v)
}

func (s *sink) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	s.err = err
	return n, err
}

func (s *sink) flush() error {
	if s.err != nil {
		return s.err
	}
	s.err = s.w.Flush()
	return s.err
}
