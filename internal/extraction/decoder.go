// Package extraction turns raw uploaded document bytes into plain text.
// Each supported format has its own decoder; the registry resolves the
// right one from the declared media type first and the filename extension
// second.
package extraction

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"
)

// Format identifies a supported document format.
type Format string

// Supported formats.
const (
	FormatPDF  Format = "pdf"
	FormatDocx Format = "docx"
	FormatText Format = "txt"
)

// Decoder extracts plain text from a raw document payload. Decoders are
// I/O-bound and honor context cancellation.
type Decoder interface {
	Decode(ctx context.Context, data []byte) (string, error)
}

var mediaTypeFormats = map[string]Format{
	"application/pdf": FormatPDF,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": FormatDocx,
	"text/plain": FormatText,
}

var extensionFormats = map[string]Format{
	".pdf":  FormatPDF,
	".docx": FormatDocx,
	".txt":  FormatText,
}

// DetectFormat resolves the document format from the declared media type,
// falling back to the filename extension. ok is false when neither matches.
func DetectFormat(mediaType, filename string) (Format, bool) {
	if f, found := mediaTypeFormats[strings.ToLower(strings.TrimSpace(mediaType))]; found {
		return f, true
	}
	if f, found := extensionFormats[strings.ToLower(filepath.Ext(filename))]; found {
		return f, true
	}
	return "", false
}

// Registry maps formats to decoder implementations.
type Registry struct {
	decoders map[Format]Decoder
}

// NewRegistry returns a registry with the built-in pdf, docx, and plain
// text decoders.
func NewRegistry() *Registry {
	return &Registry{decoders: map[Format]Decoder{
		FormatPDF:  &PDFDecoder{},
		FormatDocx: &DocxDecoder{},
		FormatText: &TextDecoder{},
	}}
}

// Decoder returns the decoder for a format, or ok=false when the format
// has no registered decoder.
func (r *Registry) Decoder(format Format) (Decoder, bool) {
	d, ok := r.decoders[format]
	return d, ok
}

// normalizeWhitespace collapses horizontal whitespace runs and newline
// runs while preserving line structure.
var (
	horizontalWS = regexp.MustCompile(`[ \t\r\f\v]+`)
	lineEdgeWS   = regexp.MustCompile(` *\n *`)
	newlineRuns  = regexp.MustCompile(`\n{3,}`)
)

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = horizontalWS.ReplaceAllString(s, " ")
	s = lineEdgeWS.ReplaceAllString(s, "\n")
	s = newlineRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
