package extraction

import (
	"context"
	"strings"
	"unicode/utf8"
)

// minPlainTextLength is the floor below which a plain text upload is
// rejected as carrying too little content. This is a decoder-level check,
// separate from the later content-completeness pass.
const minPlainTextLength = 50

// TextDecoder handles plain text uploads.
type TextDecoder struct{}

// Decode implements Decoder.
func (d *TextDecoder) Decode(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", &EmptyDocumentError{Format: FormatText}
	}

	text := string(data)
	if !utf8.ValidString(text) {
		return "", &DecodeError{Format: FormatText, Message: "the file is not valid UTF-8 text"}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", &EmptyDocumentError{Format: FormatText}
	}
	if len(text) < minPlainTextLength {
		return "", &DecodeError{Format: FormatText, Message: "the file contains very little content"}
	}
	return text, nil
}
