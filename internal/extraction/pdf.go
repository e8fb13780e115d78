package extraction

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFDecoder extracts plain text from PDF bytes.
type PDFDecoder struct{}

// Decode implements Decoder. Library-level failures are pattern-matched by
// substring to produce specific messages for invalid structure, password
// protection, and encryption; anything else is wrapped generically.
func (d *PDFDecoder) Decode(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", &EmptyDocumentError{Format: FormatPDF}
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", classifyPDFError(err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", classifyPDFError(err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", &DecodeError{Format: FormatPDF, Message: "failed to read extracted text", Cause: err}
	}

	text := normalizeWhitespace(buf.String())
	if text == "" {
		return "", &NoTextError{Format: FormatPDF}
	}
	return text, nil
}

// classifyPDFError maps library error text onto domain-specific messages.
func classifyPDFError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "encrypt"):
		return &DecodeError{Format: FormatPDF, Message: "the document is encrypted", Cause: err}
	case strings.Contains(msg, "password"):
		return &DecodeError{Format: FormatPDF, Message: "the document is password protected", Cause: err}
	case strings.Contains(msg, "malformed") || strings.Contains(msg, "invalid") || strings.Contains(msg, "not a pdf"):
		return &DecodeError{Format: FormatPDF, Message: "the document structure is invalid", Cause: err}
	default:
		return &DecodeError{Format: FormatPDF, Message: "text extraction failed", Cause: err}
	}
}
