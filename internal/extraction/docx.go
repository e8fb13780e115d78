package extraction

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"log"
	"regexp"
	"strings"
)

// DocxDecoder extracts plain text from Word (.docx) bytes. A .docx file is
// a zip archive; the text lives in word/document.xml, which is stripped of
// markup rather than fully parsed.
type DocxDecoder struct{}

var xmlTagRe = regexp.MustCompile(`<[^>]+>`)

// Decode implements Decoder.
func (d *DocxDecoder) Decode(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", &EmptyDocumentError{Format: FormatDocx}
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", classifyDocxError(err)
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", classifyDocxError(err)
		}
		docXML, err = io.ReadAll(rc)
		if cerr := rc.Close(); cerr != nil {
			// Non-fatal: the payload was already read.
			log.Printf("docx: closing document.xml: %v", cerr)
		}
		if err != nil {
			return "", classifyDocxError(err)
		}
		break
	}
	if len(docXML) == 0 {
		return "", &DecodeError{Format: FormatDocx, Message: "the document structure is invalid: no document.xml found"}
	}

	// Paragraph and tab boundaries become whitespace before tags go.
	text := string(docXML)
	text = strings.ReplaceAll(text, "</w:p>", "\n")
	text = strings.ReplaceAll(text, "<w:tab/>", "\t")
	text = strings.ReplaceAll(text, "<w:br/>", "\n")
	text = xmlTagRe.ReplaceAllString(text, " ")

	text = normalizeWhitespace(text)
	if text == "" {
		return "", &NoTextError{Format: FormatDocx}
	}
	return text, nil
}

// classifyDocxError maps library error text onto domain-specific messages.
func classifyDocxError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "not a valid zip"):
		return &DecodeError{Format: FormatDocx, Message: "the document is corrupted", Cause: err}
	case strings.Contains(msg, "password"):
		return &DecodeError{Format: FormatDocx, Message: "the document is password protected", Cause: err}
	default:
		return &DecodeError{Format: FormatDocx, Message: "text extraction failed", Cause: err}
	}
}
