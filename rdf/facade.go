package rdf

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/geoknoesis/rdf-serializer/logger"
)

// ResolveFormatFromPath infers the output format from a filename extension.
func ResolveFormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttl":
		return FormatTurtle, nil
	case ".nt":
		return FormatNTriples, nil
	case ".trig":
		return FormatTriG, nil
	case ".nq":
		return FormatNQuads, nil
	case ".rdf", ".xml", ".owl":
		return FormatRDFXML, nil
	case ".jsonld", ".json":
		return FormatJSONLD, nil
	case ".xrdf":
		return FormatXRDF, nil
	default:
		return "", fmt.Errorf("%w: no format for path %q", ErrUnsupportedFormat, path)
	}
}

// ResolveFormatFromContentType infers the output format from a media type.
func ResolveFormatFromContentType(contentType string) (Format, error) {
	mediaType := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	switch mediaType {
	case "text/turtle":
		return FormatTurtle, nil
	case "application/n-triples":
		return FormatNTriples, nil
	case "application/trig":
		return FormatTriG, nil
	case "application/n-quads":
		return FormatNQuads, nil
	case "application/rdf+xml", "application/xml", "text/xml":
		return FormatRDFXML, nil
	case "application/ld+json":
		return FormatJSONLD, nil
	default:
		return "", fmt.Errorf("%w: no format for content type %q", ErrUnsupportedFormat, contentType)
	}
}

// SerializeQuads writes quads to w in the given format in one call.
func SerializeQuads(ctx context.Context, w io.Writer, format Format, quads []Quad, log logger.Logger, opts ...Option) error {
	s, err := NewSerializer(w, format, opts...)
	if err != nil {
		return err
	}
	return s.Serialize(ctx, log, NewSliceIterator(quads))
}

// SerializeToPath writes quads choosing the format from path's extension.
func SerializeToPath(ctx context.Context, w io.Writer, path string, quads []Quad, log logger.Logger, opts ...Option) error {
	format, err := ResolveFormatFromPath(path)
	if err != nil {
		return err
	}
	return SerializeQuads(ctx, w, format, quads, log, opts...)
}
