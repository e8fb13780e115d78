package extraction

import "fmt"

// EmptyDocumentError indicates the raw byte buffer was zero-length before
// any text-extraction library was invoked.
type EmptyDocumentError struct {
	Format Format
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("%s document is empty", e.Format)
}

// NoTextError indicates decoding succeeded but produced no readable text,
// e.g. a scanned image-only PDF.
type NoTextError struct {
	Format Format
}

func (e *NoTextError) Error() string {
	return fmt.Sprintf("no readable text could be extracted from the %s document", e.Format)
}

// DecodeError wraps a lower-level decoding failure with a domain-specific
// message (corrupted structure, password protection, encryption).
type DecodeError struct {
	Format  Format
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s decode failed: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s decode failed: %s", e.Format, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
